package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	http "github.com/wesleyorama2/riposte/http"
	"github.com/wesleyorama2/riposte/internal/output"
	"github.com/wesleyorama2/riposte/pkg/jsonpath"
	"github.com/wesleyorama2/riposte/pkg/jsonschema"
)

// addVerbFlags registers the flag set shared by the verb commands. The body
// flag is only offered for verbs that can carry a payload.
func addVerbFlags(cmd *cobra.Command, withBody bool) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	cmd.Flags().String("auth", "", "Authorization header value, sent verbatim")
	cmd.Flags().Bool("raw", false, "Return the raw response instead of decoding JSON")
	cmd.Flags().String("extract", "", "JSONPath expression to extract from the response")
	cmd.Flags().String("schema", "", "JSON Schema file to validate the response against")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	if withBody {
		cmd.Flags().StringP("data", "d", "", "JSON request body")
	}
}

// runVerb executes a single verb command against the given URL, printing the
// dispatched request, the outcome, and any extraction or schema results.
func runVerb(cmd *cobra.Command, method, rawURL string) {
	headers, _ := cmd.Flags().GetStringArray("header")
	auth, _ := cmd.Flags().GetString("auth")
	raw, _ := cmd.Flags().GetBool("raw")
	extract, _ := cmd.Flags().GetString("extract")
	schemaFile, _ := cmd.Flags().GetString("schema")
	verbose, _ := cmd.Flags().GetBool("verbose")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	noColor, _ := cmd.Flags().GetBool("no-color")

	var data string
	if cmd.Flags().Lookup("data") != nil {
		data, _ = cmd.Flags().GetString("data")
	}

	// Parse URL to determine base URL and path
	baseURL, path := parseURL(rawURL)

	formatter := output.NewFormatter(verbose, noColor || !output.IsTerminal(os.Stdout))

	client := http.NewClient(
		http.WithConfig(&http.Config{
			BaseURL:       baseURL,
			Authorization: auth,
		}),
		http.WithTimeout(timeout),
	)
	client.RawResponse = raw

	// Capture the final URL and options through the pre-request hook so the
	// printed request reflects exactly what was dispatched.
	var dispatchedURL string
	var dispatchedOpts http.Options
	client.PreRequest = func(url string, opts http.Options) (string, http.Options) {
		dispatchedURL, dispatchedOpts = url, opts
		return url, opts
	}

	var override *http.Options
	if parsed := parseHeaders(headers); len(parsed) > 0 {
		override = &http.Options{Headers: parsed}
	}

	var body any
	if data != "" {
		if !json.Valid([]byte(data)) {
			fmt.Fprintln(os.Stderr, "Error: request body is not valid JSON")
			os.Exit(1)
		}
		// RawMessage passes the payload through without re-encoding.
		body = json.RawMessage(data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var value any
	var err error
	switch method {
	case "GET":
		value, err = client.Get(ctx, path, override)
	case "POST":
		value, err = client.Post(ctx, path, body, override)
	case "PUT":
		value, err = client.Put(ctx, path, body, override)
	case "DELETE":
		value, err = client.Delete(ctx, path, body, override)
	}

	fmt.Print(formatter.FormatRequest(dispatchedURL, dispatchedOpts))

	if err != nil {
		var reqErr *http.RequestError
		if errors.As(err, &reqErr) && reqErr.Response != nil {
			fmt.Print(formatter.FormatResponse(reqErr.Response))
		}
		fmt.Fprint(os.Stderr, formatter.FormatError(err))
		os.Exit(1)
	}

	var bodyJSON string
	if raw {
		resp := value.(*http.Response)
		fmt.Print(formatter.FormatResponse(resp))
		bodyJSON, _ = resp.GetBodyAsString()
	} else {
		fmt.Print(formatter.FormatValue(value))
		encoded, merr := json.Marshal(value)
		if merr == nil {
			bodyJSON = string(encoded)
		}
	}

	if extract != "" {
		extracted, eerr := jsonpath.Extract(bodyJSON, extract)
		if eerr != nil {
			fmt.Fprintf(os.Stderr, "Error extracting %s: %v\n", extract, eerr)
			os.Exit(1)
		}
		fmt.Printf("%s = %s\n", extract, extracted)
	}

	if schemaFile != "" {
		if err := validateAgainstSchemaFile(bodyJSON, schemaFile); err != nil {
			fmt.Fprintf(os.Stderr, "Schema validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Schema validation: PASS")
	}
}

// validateAgainstSchemaFile validates a JSON body against a schema read from
// disk
func validateAgainstSchemaFile(bodyJSON, schemaFile string) error {
	schema, err := os.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("reading schema file: %w", err)
	}

	valid, errs := jsonschema.ValidateWithErrors(bodyJSON, string(schema))
	if !valid {
		return errs
	}

	return nil
}
