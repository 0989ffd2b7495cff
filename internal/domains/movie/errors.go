package movie

import "errors"

var (
	// Request errors
	ErrImdbIDRequired = errors.New("imdbId is required")
	ErrForbidden      = errors.New("Forbidden: only admins can modify the catalog")

	// Business rule errors
	ErrMovieNotFound = errors.New("Movie not found")
	ErrMovieExists   = errors.New("Movie already exists in database")

	// External provider errors
	ErrProviderNotConfigured = errors.New("OMDB API Key is not configured")
	ErrProviderUnavailable   = errors.New("External Movie Service is temporarily unavailable")
)

// ValidationError aggregates field violations into one human-readable
// message (all violations joined).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProviderNotFoundError carries the provider's own error message when a
// lookup returns its embedded not-found signal.
type ProviderNotFoundError struct {
	Message string
}

func (e *ProviderNotFoundError) Error() string {
	return "OMDB: " + e.Message
}

// ToErrorCode converts a domain error to an API error code.
func ToErrorCode(err error) string {
	var validationErr *ValidationError
	var providerNotFound *ProviderNotFoundError

	switch {
	case errors.Is(err, ErrImdbIDRequired):
		return "BAD_REQUEST"
	case errors.As(err, &validationErr):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrMovieNotFound), errors.As(err, &providerNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrMovieExists):
		return "CONFLICT"
	case errors.Is(err, ErrProviderUnavailable):
		return "SERVICE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	var validationErr *ValidationError
	var providerNotFound *ProviderNotFoundError

	switch {
	case errors.Is(err, ErrImdbIDRequired):
		return 400
	case errors.As(err, &validationErr):
		return 400
	case errors.Is(err, ErrForbidden):
		return 403
	case errors.Is(err, ErrMovieNotFound), errors.As(err, &providerNotFound):
		return 404
	case errors.Is(err, ErrMovieExists):
		return 409
	case errors.Is(err, ErrProviderUnavailable):
		return 503
	default:
		// Covers ErrProviderNotConfigured (operator misconfiguration)
		// and unclassified failures.
		return 500
	}
}
