// Package error defines domain-specific errors for the sales dashboard.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidFrequency is returned when frequency is not valid.
	ErrInvalidFrequency = errors.New("frequency must be: yearly or quarterly")

	// ErrMissingFrequency is returned when frequency is not provided.
	ErrMissingFrequency = errors.New("frequency is required")

	// ErrInvalidRange is returned by the strict year range when end is before start.
	ErrInvalidRange = errors.New("end year must not be before start year")

	// ErrUnknownTimezone is returned when a timezone cannot be loaded.
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrInvalidYear is returned when a year parameter is not an integer
	// calendar year.
	ErrInvalidYear = errors.New("year must be an integer calendar year")

	// ErrInvalidRequestBody is returned when a request body cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrUpstreamUnavailable is returned when the sales backend cannot be reached
	// or answers with an error.
	ErrUpstreamUnavailable = errors.New("sales backend unavailable")

	// ErrRateLimited is returned when a client exceeded its request budget.
	ErrRateLimited = errors.New("too many requests")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFrequency   DashboardErrorCode = "DSH-010004"
	ErrCodeMissingFrequency   DashboardErrorCode = "DSH-010005"
	ErrCodeInvalidRange       DashboardErrorCode = "DSH-010007"
	ErrCodeUnknownTimezone    DashboardErrorCode = "DSH-010008"
	ErrCodeInvalidYear        DashboardErrorCode = "DSH-010009"
	ErrCodeInvalidRequestBody DashboardErrorCode = "DSH-010010"

	// Upstream errors (02XXXX)
	ErrCodeUpstreamUnavailable DashboardErrorCode = "DSH-020001"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited DashboardErrorCode = "DSH-030001"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
