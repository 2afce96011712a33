// Package http provides an HTTP client that shares a mutable configuration
// (base URL, port, base path, Authorization header) across requests, with
// pluggable pre-request and post-response hooks.
//
// This package is designed for programmatic use and provides:
//   - A configurable client with functional options
//   - A shared Config read fresh on every request, so late mutation applies
//   - Single-slot pre-request and post-response hooks
//   - JSON decoding by default, with a raw-response escape hatch
//   - A single RequestError type covering transport, status, and decode failures
//
// Basic Usage:
//
//	client := http.NewClient(
//	    http.WithConfig(&http.Config{
//	        BaseURL:       "https://api.example.com",
//	        BasePath:      "/v1",
//	        Authorization: "Bearer token",
//	    }),
//	    http.WithTimeout(30*time.Second),
//	)
//
//	value, err := client.Get(context.Background(), "/todos/1", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(value)
//
// Hooks:
//
//	client.PreRequest = func(url string, opts http.Options) (string, http.Options) {
//	    opts.Headers["X-Trace-Id"] = newTraceID()
//	    return url, opts
//	}
//
//	client.PostResponse = func(value any) any {
//	    // unwrap an envelope, collect metrics, etc.
//	    return value
//	}
//
// Raw responses:
//
//	client.RawResponse = true
//	value, err := client.Get(ctx, "/todos/1", nil)
//	resp := value.(*http.Response) // no JSON decoding performed
//
// Error handling:
//
//	_, err := client.Get(ctx, "/missing", nil)
//	var reqErr *http.RequestError
//	if errors.As(err, &reqErr) && reqErr.Kind == http.ErrStatus {
//	    fmt.Println("status:", reqErr.Response.StatusCode)
//	}
//
// Thread Safety:
//
// Client holds no per-request state and is safe for concurrent verb calls.
// Mutating the Config or hook fields while requests are in flight gets
// last-write-visible semantics; serialize externally if exact consistency
// between mutation and dispatch is required.
package http
