package cli

import (
	"fmt"
	"net/url"
	"strings"
)

// parseURL splits a URL into base URL and path so the base can feed the
// client's shared configuration
func parseURL(fullURL string) (string, string) {
	// Add scheme if missing
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = "http://" + fullURL
	}

	parsedURL, err := url.Parse(fullURL)
	if err != nil {
		return fullURL, "/"
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)

	// Include user info in the base URL if present
	if parsedURL.User != nil {
		baseURL = fmt.Sprintf("%s://%s@%s", parsedURL.Scheme, parsedURL.User.String(), parsedURL.Host)
	}

	path := parsedURL.Path
	if path == "" {
		path = "/"
	}

	if parsedURL.RawQuery != "" {
		path = path + "?" + parsedURL.RawQuery
	}

	if parsedURL.Fragment != "" {
		path = path + "#" + parsedURL.Fragment
	}

	return baseURL, path
}

// parseHeaders converts "Key: Value" flag values into a header map, skipping
// malformed entries
func parseHeaders(headers []string) map[string]string {
	parsed := make(map[string]string)
	for _, header := range headers {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) == 2 {
			parsed[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
	return parsed
}
