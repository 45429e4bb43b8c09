package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/aura-guide/locais-service/internal/pkg/errors"
	"github.com/aura-guide/locais-service/internal/usecase/dto"
)

// failureInjectionEmail always fails, so the front-end error path can be
// exercised against a running service.
const failureInjectionEmail = "error@example.com"

// AuthUseCase is a mock authentication boundary: a fixed demo user table,
// bcrypt-checked passwords, short-lived HS256 tokens and a configurable
// artificial latency standing in for a real backend round trip. There is
// no persistence and no session store on purpose.
type AuthUseCase struct {
	logger     *zap.Logger
	signingKey []byte
	tokenTTL   time.Duration
	latency    time.Duration

	mu    sync.RWMutex
	users map[string]string // email -> bcrypt hash
}

func NewAuthUseCase(
	logger *zap.Logger,
	signingKey string,
	tokenTTL time.Duration,
	latency time.Duration,
) *AuthUseCase {
	// Demo account: demo@aura.guide / aura-demo
	demoHash, _ := bcrypt.GenerateFromPassword([]byte("aura-demo"), bcrypt.DefaultCost)

	return &AuthUseCase{
		logger:     logger,
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
		latency:    latency,
		users: map[string]string{
			"demo@aura.guide": string(demoHash),
		},
	}
}

// Login checks the credentials against the mock user table and issues a
// token. The artificial latency honors context cancellation.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := uc.simulateLatency(ctx); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == failureInjectionEmail {
		return nil, errors.ErrInvalidCredentials
	}

	uc.mu.RLock()
	hash, ok := uc.users[email]
	uc.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return uc.issueToken(email)
}

// Register adds a mock account and issues a token right away.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := uc.simulateLatency(ctx); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == failureInjectionEmail {
		return nil, errors.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.ErrInternalServer
	}

	uc.mu.Lock()
	if _, exists := uc.users[email]; exists {
		uc.mu.Unlock()
		return nil, errors.ErrEmailInUse
	}
	uc.users[email] = string(hash)
	uc.mu.Unlock()

	uc.logger.Info("Mock account registered", zap.String("email", email))
	return uc.issueToken(email)
}

// VerifyToken parses and validates a bearer token, returning the subject
// e-mail.
func (uc *AuthUseCase) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrInvalidCredentials
		}
		return uc.signingKey, nil
	})
	if err != nil || !token.Valid {
		return "", errors.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.ErrInvalidCredentials
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", errors.ErrInvalidCredentials
	}

	return email, nil
}

func (uc *AuthUseCase) issueToken(email string) (*dto.AuthResponse, error) {
	expiresAt := time.Now().Add(uc.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   expiresAt.Unix(),
	})

	tokenString, err := token.SignedString(uc.signingKey)
	if err != nil {
		uc.logger.Error("Failed to sign token", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &dto.AuthResponse{
		Token:     tokenString,
		Email:     email,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

func (uc *AuthUseCase) simulateLatency(ctx context.Context) error {
	if uc.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(uc.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
