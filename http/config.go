package http

import "strconv"

// Config holds the shared request configuration for a Client. All fields are
// optional. The client keeps a pointer to the Config and reads it fresh on
// every request, so mutations made after construction apply to subsequent
// calls without rebuilding the client.
type Config struct {
	// BaseURL is the scheme and host portion of the request URL, e.g.
	// "https://api.example.com". When empty, requests are dispatched to the
	// bare path.
	BaseURL string

	// Port is appended to BaseURL as ":<port>" when greater than zero.
	Port int

	// BasePath is appended after the port, e.g. "/v1".
	BasePath string

	// Authorization is sent verbatim as the Authorization header value when
	// non-empty.
	Authorization string
}

// ComposedBaseURL returns BaseURL + ":" + Port + BasePath, omitting the port
// and path segments when unset. No slash normalization is performed; callers
// are responsible for syntactically correct segments.
func (c *Config) ComposedBaseURL() string {
	if c == nil || c.BaseURL == "" {
		return ""
	}

	url := c.BaseURL
	if c.Port > 0 {
		url += ":" + strconv.Itoa(c.Port)
	}
	if c.BasePath != "" {
		url += c.BasePath
	}

	return url
}
