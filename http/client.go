package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"
)

// Doer dispatches a single HTTP request. *net/http.Client satisfies it, and
// any substitute transport with the same shape can be injected via
// WithTransport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// PreRequestHook may rewrite the outgoing URL and options before dispatch.
// Its return values are used unconditionally.
type PreRequestHook func(url string, opts Options) (string, Options)

// PostResponseHook transforms a successful result before it is returned to
// the caller. It receives the decoded JSON value, or the *Response when
// RawResponse is set.
type PostResponseHook func(value any) any

// Client is an HTTP client that shares a mutable Config across requests.
// The composed base URL, default headers, and Authorization value are
// recomputed from the Config on every call, so configuration mutated after
// construction is honored by subsequent requests.
//
// Client holds no per-request state: multiple requests may be in flight
// concurrently. The configuration is captured once per call before any I/O;
// mutating the Config or the hook fields concurrently with in-flight calls
// gets last-write-visible semantics, and callers that need stricter
// consistency must serialize externally.
type Client struct {
	transport Doer
	config    *Config

	// PreRequest is the single-slot pre-request hook. Assign directly to
	// register or replace; set nil to remove.
	PreRequest PreRequestHook

	// PostResponse is the single-slot post-response hook.
	PostResponse PostResponseHook

	// RawResponse skips JSON decoding and makes successful calls return the
	// *Response itself.
	RawResponse bool
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// NewClient creates a new client with the given options.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		transport: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: &Config{},
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithConfig sets the shared configuration. The client keeps the pointer, so
// later mutations through it affect subsequent requests.
func WithConfig(cfg *Config) ClientOption {
	return func(c *Client) {
		if cfg != nil {
			c.config = cfg
		}
	}
}

// WithTimeout sets the timeout on the default transport. It has no effect on
// a transport installed with WithTransport.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if hc, ok := c.transport.(*http.Client); ok {
			hc.Timeout = timeout
		}
	}
}

// WithTransport replaces the underlying transport.
func WithTransport(d Doer) ClientOption {
	return func(c *Client) {
		if d != nil {
			c.transport = d
		}
	}
}

// Config returns the shared configuration for mutation between calls.
func (c *Client) Config() *Config {
	return c.config
}

// Get performs a GET request to the composed base URL plus path.
func (c *Client) Get(ctx context.Context, path string, override *Options) (any, error) {
	return c.do(ctx, http.MethodGet, path, nil, override)
}

// Post performs a POST request with a JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body any, override *Options) (any, error) {
	return c.do(ctx, http.MethodPost, path, body, override)
}

// Put performs a PUT request with a JSON-encoded body.
func (c *Client) Put(ctx context.Context, path string, body any, override *Options) (any, error) {
	return c.do(ctx, http.MethodPut, path, body, override)
}

// Delete performs a DELETE request. The body is optional; pass nil to send
// no body.
func (c *Client) Delete(ctx context.Context, path string, body any, override *Options) (any, error) {
	return c.do(ctx, http.MethodDelete, path, body, override)
}

// do runs the request pipeline: compose the URL from the current
// configuration, build and merge options, apply the pre-request hook,
// dispatch, and normalize the outcome. Exactly one of the return values is
// set; all failure causes surface as a *RequestError.
func (c *Client) do(ctx context.Context, method, path string, body any, override *Options) (any, error) {
	// Snapshot the configuration before any I/O so a mutation made while
	// this request is in flight cannot split it across two configurations.
	url := c.config.ComposedBaseURL() + path

	opts, err := defaultOptions(method, body, c.config.Authorization)
	if err != nil {
		return nil, &RequestError{Kind: ErrTransport, Err: err}
	}
	opts = opts.merge(override)

	if hook := c.PreRequest; hook != nil {
		url, opts = hook(url, opts)
	}

	resp, err := c.dispatch(ctx, url, opts)
	if err != nil {
		return nil, &RequestError{Kind: ErrTransport, Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &RequestError{Kind: ErrStatus, Response: resp}
	}

	if c.RawResponse {
		return c.applyPostHook(resp), nil
	}

	var value any
	if err := resp.GetBodyAsJSON(&value); err != nil {
		return nil, &RequestError{Kind: ErrDecode, Response: resp, Err: err}
	}

	return c.applyPostHook(value), nil
}

// dispatch performs the network call and reads the full body so the Response
// can be inspected repeatedly, including from inside a RequestError.
func (c *Client) dispatch(ctx context.Context, url string, opts Options) (*Response, error) {
	var bodyReader io.Reader
	if opts.Body != nil {
		bodyReader = bytes.NewReader(opts.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, opts.Method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	for key, value := range opts.Headers {
		httpReq.Header.Set(key, value)
	}

	start := time.Now()
	httpResp, err := c.transport.Do(httpReq)
	if err != nil {
		return nil, err
	}

	bodyBytes, err := io.ReadAll(httpResp.Body)
	httpResp.Body.Close()
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode:   httpResp.StatusCode,
		Status:       httpResp.Status,
		Headers:      httpResp.Header,
		Body:         io.NopCloser(bytes.NewReader(bodyBytes)),
		ResponseTime: time.Since(start),
		rawBody:      bodyBytes,
		parsed:       true,
	}, nil
}

func (c *Client) applyPostHook(value any) any {
	if hook := c.PostResponse; hook != nil {
		return hook(value)
	}
	return value
}
