package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Result is what the service answered. Value holds the decoded JSON when
// the body parsed; otherwise Raw is the only representation and String
// returns it unchanged.
type Result struct {
	StatusCode int
	Headers    http.Header
	Raw        []byte
	Value      any
	RequestID  string
	Attempts   int

	decoded bool
}

// ErrorResponse is the error document LiquidPlanner returns.
type ErrorResponse struct {
	Type    string `json:"type"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewResult(statusCode int, headers http.Header, raw []byte, requestID string) *Result {
	result := &Result{
		StatusCode: statusCode,
		Headers:    headers,
		Raw:        raw,
		Value:      nil,
		RequestID:  requestID,
		Attempts:   0,
		decoded:    false,
	}

	var value any
	if err := json.Unmarshal(raw, &value); err == nil {
		result.Value = value
		result.decoded = true
	}

	return result
}

func (r *Result) IsJSON() bool {
	return r.decoded
}

func (r *Result) String() string {
	return string(r.Raw)
}

func (r *Result) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Result) Map() (map[string]any, bool) {
	m, ok := r.Value.(map[string]any)

	return m, ok
}

func (r *Result) Slice() ([]any, bool) {
	s, ok := r.Value.([]any)

	return s, ok
}

// Decode unmarshals the raw body into target.
func (r *Result) Decode(target any) error {
	if !r.decoded {
		return fmt.Errorf("%w: body is not JSON", ErrDecodeResponse)
	}

	if err := json.Unmarshal(r.Raw, target); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}

// Err returns a *ServiceError for a non-2xx status and nil otherwise.
func (r *Result) Err() error {
	if r.IsSuccess() {
		return nil
	}

	var errResp ErrorResponse
	if r.decoded {
		if err := json.Unmarshal(r.Raw, &errResp); err == nil && errResp.Message != "" {
			return NewServiceError(r.StatusCode, errResp.Message, r.RequestID)
		}
	}

	return NewServiceError(r.StatusCode, string(r.Raw), r.RequestID)
}
