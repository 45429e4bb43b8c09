package dto

import (
	"time"

	"github.com/aura-guide/locais-service/internal/domain"
)

// RankedListResponse carries the ordered entries plus the position
// lifecycle flags the presentation layer renders next to the sort controls.
type RankedListResponse struct {
	Entries       []domain.RankedEntry `json:"entries"`
	SortCriterion domain.SortCriterion `json:"sort_criterion"`
	Total         int                  `json:"total"`
	PositionState domain.PositionState `json:"position_state"`
	PositionError string               `json:"position_error,omitempty"`
}

type SearchResponse struct {
	Results []domain.Place `json:"results"`
	Total   int            `json:"total"`
}

type CategoryStats struct {
	Category      string  `json:"category"`
	Places        int     `json:"places"`
	AverageRating float64 `json:"average_rating"`
}

type StatsResponse struct {
	TotalPlaces int             `json:"total_places"`
	Categories  []CategoryStats `json:"categories"`
	GeneratedAt time.Time       `json:"generated_at"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
