package dto

// RankingRequest drives one ranked listing computation. SessionID is
// optional: without it (or before the session position resolves) every
// entry carries a null distance.
type RankingRequest struct {
	Category  string `json:"category" validate:"required"`
	Sort      string `json:"sort"`
	SessionID string `json:"session_id"`
}

// SearchRequest is a free-text search over an optionally category-scoped
// subset. Limit caps the result after matching; 0 means the default cap.
type SearchRequest struct {
	Query    string `json:"q"`
	Category string `json:"category"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

// ReportPositionRequest is the geolocation collaborator's callback: either
// a resolved coordinate pair or a failure reason, never both.
type ReportPositionRequest struct {
	Latitude      *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	FailureReason string   `json:"failure_reason" validate:"omitempty,oneof=permission_denied position_unavailable timeout unsupported"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}
