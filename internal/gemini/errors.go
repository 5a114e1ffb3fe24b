package gemini

import "fmt"

type ErrorKind string

const (
	ProviderUnavailable ErrorKind = "provider_unavailable"
	QuotaExceeded       ErrorKind = "quota_exceeded"
	RateLimited         ErrorKind = "rate_limited"
	InvalidResponse     ErrorKind = "invalid_response"
)

// APIError carries the failure kind so callers can choose a degraded-mode
// rendering instead of a hard error. There is no automatic retry here.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("gemini %s (http %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini %s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func kindForStatus(status int, body string) ErrorKind {
	switch {
	case status == 429:
		if containsAny(body, "quota", "billing", "RESOURCE_EXHAUSTED") {
			return QuotaExceeded
		}
		return RateLimited
	case status == 402 || status == 403:
		return QuotaExceeded
	case status >= 500:
		return ProviderUnavailable
	default:
		return InvalidResponse
	}
}
