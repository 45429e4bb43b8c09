package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/aura-guide/locais-service/internal/config"
	"github.com/aura-guide/locais-service/internal/domain"
	"github.com/aura-guide/locais-service/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewSourceClient creates the HTTP client for the static category JSON
// documents. Each category maps 1:1 onto <baseURL>/<category>.json.
func NewSourceClient(cfg *config.CatalogConfig, logger *zap.Logger) repository.SourceRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.FetchTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// FetchCategory downloads and decodes one category source. A non-200
// status, a non-JSON content type or a payload that is not a list all
// return an error; the catalog use case decides whether that error is
// tolerated or fatal for the load.
func (c *client) FetchCategory(ctx context.Context, category string) ([]domain.Place, error) {
	url := fmt.Sprintf("%s/%s.json", c.baseURL, category)

	c.logger.Debug("Fetching catalog source",
		zap.String("category", category),
		zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("source %s returned status %d: %s", category, resp.StatusCode, string(body))
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return nil, fmt.Errorf("source %s returned non-JSON content type %q", category, contentType)
	}

	var places []domain.Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("source %s payload is not a place list: %w", category, err)
	}

	c.logger.Debug("Catalog source fetched",
		zap.String("category", category),
		zap.Int("places", len(places)))

	return places, nil
}
