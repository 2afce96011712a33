package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	http "github.com/wesleyorama2/riposte/http"
)

// Formatter is responsible for formatting requests, responses, and result
// values for terminal display
type Formatter struct {
	Verbose bool
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}

	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatRequest formats an outgoing request for display
func (f *Formatter) FormatRequest(url string, opts http.Options) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n", f.scheme.Method.Sprint(opts.Method), f.scheme.URL.Sprint(url)))

	if f.Verbose || len(opts.Headers) > 0 {
		buf.WriteString("  Headers:\n")
		for key, value := range opts.Headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), value))
		}
	}

	if opts.Body != nil {
		buf.WriteString("  Body: ")
		buf.WriteString(formatJSONString(string(opts.Body)))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatResponse formats a response for display
func (f *Formatter) FormatResponse(resp *http.Response) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusError
	if resp.IsSuccess() {
		statusColor = f.scheme.StatusOK
	} else if resp.IsRedirect() {
		statusColor = f.scheme.StatusWarn
	}

	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%dms)\n",
		statusColor.Sprint(resp.Status),
		resp.GetResponseTimeMillis()))

	if f.Verbose {
		buf.WriteString("  Headers:\n")
		for key, values := range resp.Headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), strings.Join(values, ", ")))
		}
	}

	body, err := resp.GetBodyAsString()
	if err == nil && body != "" {
		buf.WriteString("  Body: ")
		buf.WriteString(formatJSONString(body))
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatValue formats a decoded result value (the client's default return
// shape) as indented JSON
func (f *Formatter) FormatValue(value any) string {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v\n", value)
	}
	return string(encoded) + "\n"
}

// FormatError formats an error for display, surfacing the carried response
// status for request errors
func (f *Formatter) FormatError(err error) string {
	return fmt.Sprintf("%s %v\n", f.scheme.Error.Sprint("✗"), err)
}

// formatJSONString pretty-prints a JSON string, falling back to the raw
// string for non-JSON content
func formatJSONString(s string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "  ", "  "); err != nil {
		return s
	}
	return buf.String()
}
