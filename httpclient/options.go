package httpclient

import (
	"crypto/tls"
	"maps"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout    = 30 * time.Second
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderXRequestID  = "X-Request-ID"
	ContentTypeJSON   = "application/json"
)

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if httpClient, ok := c.httpClient.(*http.Client); ok {
			httpClient.Timeout = timeout
		}
	}
}

func WithHTTPClient(httpClient Doer) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
			c.insecureTLS = false
		}
	}
}

func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.credentials = Credentials{Username: username, Password: password}
	}
}

func WithCredentials(creds Credentials) Option {
	return WithBasicAuth(creds.Username, creds.Password)
}

// WithInsecureSkipVerify turns off TLS certificate verification on the
// default transport. Only meant for test servers with self-signed
// certificates; it has no effect when a custom Doer is installed.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) {
		if !skip {
			return
		}

		httpClient, ok := c.httpClient.(*http.Client)
		if !ok {
			return
		}

		roundTripper := httpClient.Transport
		if roundTripper == nil {
			roundTripper = http.DefaultTransport
		}

		base, ok := roundTripper.(*http.Transport)
		if !ok {
			return
		}

		transport := base.Clone()
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{} //nolint:exhaustruct,gosec
		}

		transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		httpClient.Transport = transport
		c.insecureTLS = true
	}
}

func WithRequestIDKey(key any) Option {
	return func(c *Client) {
		c.requestIDKey = key
	}
}

func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		maps.Copy(c.defaultHeaders, headers)
	}
}

func WithMaxResponseSize(size int64) Option {
	return func(c *Client) {
		c.maxResponseSize = size
	}
}

// WithMaxAttempts caps the number of sends per call, the first one
// included. Zero keeps retrying for as long as the service throttles.
func WithMaxAttempts(attempts int) Option {
	return func(c *Client) {
		if attempts >= 0 {
			c.maxAttempts = attempts
		}
	}
}

// WithMaxTotalWait caps the accumulated throttle wait per call. Zero means
// no cap.
func WithMaxTotalWait(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.maxTotalWait = d
		}
	}
}

func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithObserver(observer Observer) Option {
	return func(c *Client) {
		if observer == nil {
			c.observer = nopObserver{}

			return
		}

		c.observer = observer
	}
}

func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

func WithWaitFunc(wait WaitFunc) Option {
	return func(c *Client) {
		if wait != nil {
			c.wait = wait
		}
	}
}

type RequestOption func(*requestConfig)

type requestConfig struct {
	headers   map[string]string
	query     url.Values
	timeout   time.Duration
	requestID string
}

func WithRequestHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]string)
		}

		rc.headers[key] = value
	}
}

func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(rc *requestConfig) {
		rc.timeout = timeout
	}
}

func WithRequestID(requestID string) RequestOption {
	return func(rc *requestConfig) {
		rc.requestID = requestID
	}
}

func WithQuery(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.query == nil {
			rc.query = url.Values{}
		}

		rc.query.Add(key, value)
	}
}

func WithQueryValues(values url.Values) RequestOption {
	return func(rc *requestConfig) {
		if rc.query == nil {
			rc.query = url.Values{}
		}

		for k, vs := range values {
			for _, v := range vs {
				rc.query.Add(k, v)
			}
		}
	}
}
