package errors

import "net/http"

var (
	// ErrEssentialSourceUnavailable is fatal to a catalog load: no partial
	// catalog is published when a required category source fails.
	ErrEssentialSourceUnavailable = New(
		"ESSENTIAL_SOURCE_UNAVAILABLE",
		"Essential catalog source could not be loaded",
		http.StatusServiceUnavailable,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	// ErrPositionRequired signals that a distance-based sort was requested
	// before the session position resolved. Advisory, not fatal.
	ErrPositionRequired = New(
		"POSITION_REQUIRED",
		"A resolved user position is required for distance sorting",
		http.StatusConflict,
	)

	ErrPositionUnavailable = New(
		"POSITION_UNAVAILABLE",
		"User position could not be determined",
		http.StatusConflict,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Session not found or expired",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidSort = New(
		"INVALID_SORT",
		"Invalid sort criterion",
		http.StatusBadRequest,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid e-mail or password",
		http.StatusUnauthorized,
	)

	ErrEmailInUse = New(
		"EMAIL_IN_USE",
		"This e-mail address is already registered",
		http.StatusConflict,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
