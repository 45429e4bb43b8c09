package domain

import "time"

// PositionState tracks the per-session geolocation lifecycle:
// unrequested -> pending -> resolved | failed. A failed position stays
// failed for the session unless re-requested.
type PositionState string

const (
	PositionUnrequested PositionState = "unrequested"
	PositionPending     PositionState = "pending"
	PositionResolved    PositionState = "resolved"
	PositionFailed      PositionState = "failed"
)

// Failure reasons reported by the geolocation collaborator.
const (
	PositionReasonPermissionDenied    = "permission_denied"
	PositionReasonUnavailable         = "position_unavailable"
	PositionReasonTimeout             = "timeout"
	PositionReasonUnsupported         = "unsupported"
)

// UserPosition is the session-scoped position record. Coordinates is set
// only in the resolved state; FailureReason only in the failed state.
type UserPosition struct {
	SessionID     string        `json:"session_id"`
	State         PositionState `json:"state"`
	Coordinates   *Coordinates  `json:"coordinates,omitempty"`
	FailureReason string        `json:"failure_reason,omitempty"`
	RequestedAt   time.Time     `json:"requested_at,omitempty"`
	ResolvedAt    time.Time     `json:"resolved_at,omitempty"`
}

// IsResolved reports whether the position can be used for distance math.
func (p *UserPosition) IsResolved() bool {
	return p != nil && p.State == PositionResolved && p.Coordinates != nil
}

// Expired reports whether a pending request has outlived the resolve
// timeout and must transition to failed/timeout.
func (p *UserPosition) Expired(timeout time.Duration, now time.Time) bool {
	return p.State == PositionPending && now.Sub(p.RequestedAt) > timeout
}

// ValidFailureReason reports whether reason is one of the known reason codes.
func ValidFailureReason(reason string) bool {
	switch reason {
	case PositionReasonPermissionDenied,
		PositionReasonUnavailable,
		PositionReasonTimeout,
		PositionReasonUnsupported:
		return true
	}
	return false
}
