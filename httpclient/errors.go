package httpclient

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTransport        = errors.New("httpclient: transport failure")
	ErrThrottled        = errors.New("httpclient: request still throttled")
	ErrCanceled         = errors.New("httpclient: request canceled")
	ErrRateLimited      = errors.New("httpclient: rate limiter refused request")
	ErrServiceError     = errors.New("httpclient: service error")
	ErrDecodeResponse   = errors.New("httpclient: failed to decode response")
	ErrCreateRequest    = errors.New("httpclient: failed to create request")
	ErrEncodeBody       = errors.New("httpclient: failed to encode request body")
	ErrResponseTooLarge = errors.New("httpclient: response body too large")
)

// TransportError reports that no response was obtained: connection refused,
// DNS, TLS, timeout or a broken body stream.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("httpclient: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport //nolint:errorlint
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) (*TransportError, bool) {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr, true
	}

	return nil, false
}

// ThrottledError is returned when a retry guard stops the call while the
// service is still throttling.
type ThrottledError struct {
	Attempts  int
	TotalWait time.Duration
	Message   string
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("httpclient: still throttled after %d attempts (waited %s): %s",
		e.Attempts, e.TotalWait, e.Message)
}

func (e *ThrottledError) Is(target error) bool {
	return target == ErrThrottled //nolint:errorlint
}

type ServiceError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("httpclient: service returned status %d", e.StatusCode)
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(target, ErrServiceError)
}

func (e *ServiceError) Unwrap() error {
	return ErrServiceError
}

func NewServiceError(statusCode int, message, requestID string) *ServiceError {
	return &ServiceError{
		StatusCode: statusCode,
		Message:    message,
		RequestID:  requestID,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}

	return nil, false
}
