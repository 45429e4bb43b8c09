package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/aura-guide/locais-service/internal/pkg/errors"
	"github.com/aura-guide/locais-service/internal/usecase"
	"github.com/aura-guide/locais-service/internal/usecase/dto"
)

func newAuthUC() *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(zap.NewNop(), "test-signing-key", time.Hour, 0)
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("demo account", func(t *testing.T) {
		uc := newAuthUC()

		resp, err := uc.Login(ctx, dto.LoginRequest{
			Email:    "demo@aura.guide",
			Password: "aura-demo",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "demo@aura.guide", resp.Email)
		assert.True(t, resp.ExpiresAt.After(time.Now()))
	})

	t.Run("email is case and whitespace insensitive", func(t *testing.T) {
		uc := newAuthUC()

		_, err := uc.Login(ctx, dto.LoginRequest{
			Email:    "  Demo@Aura.Guide ",
			Password: "aura-demo",
		})
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := newAuthUC()

		_, err := uc.Login(ctx, dto.LoginRequest{
			Email:    "demo@aura.guide",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown account", func(t *testing.T) {
		uc := newAuthUC()

		_, err := uc.Login(ctx, dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever1",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("failure injection address always fails", func(t *testing.T) {
		uc := newAuthUC()

		_, err := uc.Login(ctx, dto.LoginRequest{
			Email:    "error@example.com",
			Password: "irrelevant",
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("cancelled context aborts the simulated latency", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(zap.NewNop(), "test-signing-key", time.Hour, time.Minute)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := uc.Login(cancelled, dto.LoginRequest{
			Email:    "demo@aura.guide",
			Password: "aura-demo",
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("new account can log in afterwards", func(t *testing.T) {
		uc := newAuthUC()

		resp, err := uc.Register(ctx, dto.RegisterRequest{
			Email:           "nova@example.com",
			Password:        "segredo1",
			ConfirmPassword: "segredo1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		_, err = uc.Login(ctx, dto.LoginRequest{
			Email:    "nova@example.com",
			Password: "segredo1",
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate e-mail", func(t *testing.T) {
		uc := newAuthUC()

		_, err := uc.Register(ctx, dto.RegisterRequest{
			Email:           "demo@aura.guide",
			Password:        "segredo1",
			ConfirmPassword: "segredo1",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailInUse)
	})

	t.Run("failure injection address", func(t *testing.T) {
		uc := newAuthUC()

		_, err := uc.Register(ctx, dto.RegisterRequest{
			Email:           "error@example.com",
			Password:        "segredo1",
			ConfirmPassword: "segredo1",
		})
		assert.ErrorIs(t, err, apperrors.ErrEmailInUse)
	})
}

func TestAuthUseCase_VerifyToken(t *testing.T) {
	ctx := context.Background()
	uc := newAuthUC()

	resp, err := uc.Login(ctx, dto.LoginRequest{
		Email:    "demo@aura.guide",
		Password: "aura-demo",
	})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		email, err := uc.VerifyToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "demo@aura.guide", email)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := uc.VerifyToken("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other := usecase.NewAuthUseCase(zap.NewNop(), "another-key", time.Hour, 0)
		foreign, err := other.Login(ctx, dto.LoginRequest{
			Email:    "demo@aura.guide",
			Password: "aura-demo",
		})
		require.NoError(t, err)

		_, err = uc.VerifyToken(foreign.Token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
