// Package liquidplanner maps the LiquidPlanner REST routes onto methods.
// Every method builds a method, URL and optional JSON body, hands them to
// the executor and returns its result unchanged. Throttling, decoding and
// transport errors are the executor's concern.
package liquidplanner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/andyle182810/liquidplanner/httpclient"
	"github.com/andyle182810/liquidplanner/validator"
)

const DefaultBaseURL = "https://app.liquidplanner.com/api"

var (
	ErrInvalidInput = errors.New("liquidplanner: invalid input")
	ErrInvalidID    = errors.New("liquidplanner: id must be positive")
)

// Executor performs one logical API call. *httpclient.Client implements it.
type Executor interface {
	Execute(
		ctx context.Context,
		method string,
		target string,
		body []byte,
		opts ...httpclient.RequestOption,
	) (*httpclient.Result, error)
}

var _ Executor = (*httpclient.Client)(nil)

type Client struct {
	baseURL     string
	serviceURL  string
	workspaceID int
	executor    Executor
	httpOpts    []httpclient.Option
	validate    *validator.Validator
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithExecutor replaces the default executor. HTTP options are ignored when
// an executor is supplied.
func WithExecutor(executor Executor) Option {
	return func(c *Client) {
		c.executor = executor
	}
}

func WithHTTPOptions(opts ...httpclient.Option) Option {
	return func(c *Client) {
		c.httpOpts = append(c.httpOpts, opts...)
	}
}

type newClientInput struct {
	WorkspaceID int    `json:"workspace_id" validate:"gt=0"`
	Email       string `json:"email"        validate:"required"`
	Password    string `json:"password"     validate:"required"`
}

func New(workspaceID int, creds httpclient.Credentials, opts ...Option) (*Client, error) {
	client := &Client{
		baseURL:     DefaultBaseURL,
		serviceURL:  "",
		workspaceID: workspaceID,
		executor:    nil,
		httpOpts:    nil,
		validate:    validator.New(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if err := client.validate.Validate(newClientInput{
		WorkspaceID: workspaceID,
		Email:       creds.Username,
		Password:    creds.Password,
	}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	client.serviceURL = client.baseURL + "/workspaces/" + strconv.Itoa(workspaceID)

	if client.executor == nil {
		httpOpts := append([]httpclient.Option{httpclient.WithCredentials(creds)}, client.httpOpts...)
		client.executor = httpclient.New(client.baseURL, httpOpts...)
	}

	return client, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) ServiceURL() string {
	return c.serviceURL
}

func (c *Client) WorkspaceID() int {
	return c.workspaceID
}

func (c *Client) get(ctx context.Context, target string, params url.Values) (*httpclient.Result, error) {
	if len(params) > 0 {
		return c.executor.Execute(ctx, http.MethodGet, target, nil, httpclient.WithQueryValues(params))
	}

	return c.executor.Execute(ctx, http.MethodGet, target, nil)
}

func (c *Client) delete(ctx context.Context, target string) (*httpclient.Result, error) {
	return c.executor.Execute(ctx, http.MethodDelete, target, nil)
}

func (c *Client) post(ctx context.Context, target string, body any) (*httpclient.Result, error) {
	return c.send(ctx, http.MethodPost, target, body)
}

func (c *Client) put(ctx context.Context, target string, body any) (*httpclient.Result, error) {
	return c.send(ctx, http.MethodPut, target, body)
}

func (c *Client) send(ctx context.Context, method, target string, body any) (*httpclient.Result, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", httpclient.ErrEncodeBody, err)
	}

	return c.executor.Execute(ctx, method, target, payload)
}

func (c *Client) check(input any) error {
	if err := c.validate.Validate(input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

func (c *Client) workspacePath(segments ...any) string {
	var b strings.Builder

	b.WriteString(c.serviceURL)

	for _, segment := range segments {
		b.WriteByte('/')
		fmt.Fprint(&b, segment)
	}

	return b.String()
}

func requireID(ids ...int) error {
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidID, id)
		}
	}

	return nil
}
