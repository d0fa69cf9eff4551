package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Doer = (*http.Client)(nil)

// WaitFunc blocks for d or until ctx is done.
type WaitFunc func(ctx context.Context, d time.Duration) error

// Credentials are sent with every request using HTTP basic authentication.
type Credentials struct {
	Username string
	Password string
}

type Client struct {
	baseURL         string
	httpClient      Doer
	credentials     Credentials
	requestIDKey    any
	defaultHeaders  map[string]string
	maxResponseSize int64 // 0 means no limit
	maxAttempts     int   // 0 means unbounded
	maxTotalWait    time.Duration
	debug           bool
	logger          zerolog.Logger
	observer        Observer
	limiter         *rate.Limiter
	wait            WaitFunc
	insecureTLS     bool
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{ //nolint:exhaustruct
			Timeout: DefaultTimeout,
		},
		credentials:  Credentials{Username: "", Password: ""},
		requestIDKey: nil,
		defaultHeaders: map[string]string{
			HeaderAccept: ContentTypeJSON,
		},
		maxResponseSize: 0,
		maxAttempts:     0,
		maxTotalWait:    0,
		debug:           false,
		logger:          log.Logger,
		observer:        nopObserver{},
		limiter:         nil,
		wait:            sleepContext,
		insecureTLS:     false,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.insecureTLS {
		c.logger.Warn().Str("base_url", c.baseURL).Msg("TLS certificate verification disabled")
	}

	return c
}

func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*Result, error) {
	return c.Execute(ctx, http.MethodGet, path, nil, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Result, error) {
	return c.executeValue(ctx, http.MethodPost, path, body, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Result, error) {
	return c.executeValue(ctx, http.MethodPut, path, body, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*Result, error) {
	return c.Execute(ctx, http.MethodDelete, path, nil, opts...)
}

func (c *Client) executeValue(
	ctx context.Context,
	method string,
	path string,
	body any,
	opts ...RequestOption,
) (*Result, error) {
	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	return c.Execute(ctx, method, path, payload, opts...)
}

// Execute sends the request and returns the decoded result. A throttled
// response is never returned: the request is re-sent after the wait named in
// the throttle message until the service answers with something else, a
// configured guard is exceeded, or ctx is done. Transport failures are
// returned as *TransportError and are not retried.
func (c *Client) Execute(
	ctx context.Context,
	method string,
	target string,
	body []byte,
	opts ...RequestOption,
) (*Result, error) {
	cfg := c.buildRequestConfig(ctx, opts...)

	fullURL, err := c.buildURL(target, cfg.query)
	if err != nil {
		return nil, err
	}

	var totalWait time.Duration

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
			}
		}

		result, err := c.send(ctx, method, fullURL, body, cfg)
		if err != nil {
			return nil, err
		}

		result.Attempts = attempt

		signal, throttled := DetectThrottle(result)
		if !throttled {
			return result, nil
		}

		if c.guardExceeded(attempt, totalWait, signal.Wait) {
			return nil, &ThrottledError{
				Attempts:  attempt,
				TotalWait: totalWait,
				Message:   signal.Message,
			}
		}

		c.notifyThrottled(ctx, ThrottleEvent{
			Method:    method,
			URL:       fullURL,
			RequestID: cfg.requestID,
			Message:   signal.Message,
			Attempt:   attempt,
			Wait:      signal.Wait,
		})

		if err := c.wait(ctx, signal.Wait); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
		}

		totalWait += signal.Wait
	}
}

func (c *Client) guardExceeded(attempt int, totalWait, next time.Duration) bool {
	if c.maxAttempts > 0 && attempt >= c.maxAttempts {
		return true
	}

	return c.maxTotalWait > 0 && totalWait+next > c.maxTotalWait
}

func (c *Client) notifyThrottled(ctx context.Context, event ThrottleEvent) {
	if c.debug {
		c.logger.Warn().
			Str("method", event.Method).
			Str("url", event.URL).
			Str("request_id", event.RequestID).
			Int("attempt", event.Attempt).
			Dur("wait", event.Wait).
			Str("message", event.Message).
			Msg("API throttling in effect")
	}

	c.observer.OnThrottled(ctx, event)
}

func (c *Client) send(
	ctx context.Context,
	method string,
	fullURL string,
	body []byte,
	cfg *requestConfig,
) (*Result, error) {
	reqCtx := ctx

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	req, err := c.buildRequest(reqCtx, method, fullURL, body, cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observer.OnRequest(ctx, RequestEvent{
			Method:     method,
			URL:        fullURL,
			StatusCode: 0,
			Duration:   time.Since(start),
		})

		return nil, &TransportError{Method: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	result, err := c.readResult(resp, method, fullURL, cfg.requestID)

	c.observer.OnRequest(ctx, RequestEvent{
		Method:     method,
		URL:        fullURL,
		StatusCode: resp.StatusCode,
		Duration:   time.Since(start),
	})

	return result, err
}

func (c *Client) buildRequestConfig(ctx context.Context, opts ...RequestOption) *requestConfig {
	cfg := &requestConfig{
		headers:   make(map[string]string),
		query:     nil,
		timeout:   0,
		requestID: "",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.requestID == "" {
		cfg.requestID = c.extractRequestID(ctx)
	}

	return cfg
}

func (c *Client) extractRequestID(ctx context.Context) string {
	if c.requestIDKey != nil {
		if id, ok := ctx.Value(c.requestIDKey).(string); ok && id != "" {
			return id
		}
	}

	return uuid.New().String()
}

func (c *Client) buildRequest(
	ctx context.Context,
	method string,
	fullURL string,
	body []byte,
	cfg *requestConfig,
) (*http.Request, error) {
	var bodyReader io.Reader

	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	for k, v := range c.defaultHeaders {
		req.Header.Set(k, v)
	}

	if body != nil {
		req.Header.Set(HeaderContentType, ContentTypeJSON)
	}

	for k, v := range cfg.headers {
		req.Header.Set(k, v)
	}

	if cfg.requestID != "" {
		req.Header.Set(HeaderXRequestID, cfg.requestID)
	}

	if c.credentials.Username != "" || c.credentials.Password != "" {
		req.SetBasicAuth(c.credentials.Username, c.credentials.Password)
	}

	return req, nil
}

func (c *Client) readResult(resp *http.Response, method, fullURL, requestID string) (*Result, error) {
	respRequestID := resp.Header.Get(HeaderXRequestID)
	if respRequestID == "" {
		respRequestID = requestID
	}

	body := io.Reader(resp.Body)
	if c.maxResponseSize > 0 {
		body = io.LimitReader(resp.Body, c.maxResponseSize+1)
	}

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: fullURL, Err: err}
	}

	if c.maxResponseSize > 0 && int64(len(bodyBytes)) > c.maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	return NewResult(resp.StatusCode, resp.Header, bodyBytes, respRequestID), nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// buildURL accepts an absolute URL or a path relative to the base URL and
// merges query into whatever query the target already carries.
func (c *Client) buildURL(target string, query url.Values) (string, error) {
	fullURL := target

	if !isAbsoluteURL(target) {
		if target != "" && !strings.HasPrefix(target, "/") {
			target = "/" + target
		}

		fullURL = c.baseURL + target
	}

	if len(query) == 0 {
		return fullURL, nil
	}

	parsed, err := url.Parse(fullURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	merged := parsed.Query()

	for k, values := range query {
		for _, v := range values {
			merged.Add(k, v)
		}
	}

	parsed.RawQuery = merged.Encode()

	return parsed.String(), nil
}

func isAbsoluteURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

func encodeBody(body any) ([]byte, error) {
	switch typed := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return typed, nil
	case json.RawMessage:
		return typed, nil
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
	}

	return payload, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
