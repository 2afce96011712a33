package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/spf13/cobra"

	http "github.com/wesleyorama2/riposte/http"
)

var benchCmd = &cobra.Command{
	Use:   "bench URL",
	Short: "Measure request latency against the specified URL",
	Long: `Bench sends a number of sequential GET requests to the URL and reports
latency percentiles. Failed requests (transport errors or non-2xx statuses)
are counted but excluded from the latency distribution.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rawURL := args[0]
		requests, _ := cmd.Flags().GetInt("requests")
		headers, _ := cmd.Flags().GetStringArray("header")
		auth, _ := cmd.Flags().GetString("auth")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		if requests <= 0 {
			fmt.Fprintln(os.Stderr, "Error: --requests must be positive")
			os.Exit(1)
		}

		baseURL, path := parseURL(rawURL)

		client := http.NewClient(
			http.WithConfig(&http.Config{
				BaseURL:       baseURL,
				Authorization: auth,
			}),
			http.WithTimeout(timeout),
		)
		// Raw responses carry the per-request timing without JSON decoding
		// skewing the numbers.
		client.RawResponse = true

		var override *http.Options
		if parsed := parseHeaders(headers); len(parsed) > 0 {
			override = &http.Options{Headers: parsed}
		}

		// Latency range 1µs to 1 minute, 3 significant figures.
		hist := hdrhistogram.New(1, 60000000, 3)
		failures := 0

		for i := 0; i < requests; i++ {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			value, err := client.Get(ctx, path, override)
			cancel()

			if err != nil {
				failures++
				continue
			}

			resp := value.(*http.Response)
			hist.RecordValue(resp.ResponseTime.Microseconds())
		}

		fmt.Printf("Requests:  %d\n", requests)
		fmt.Printf("Succeeded: %d\n", requests-failures)
		fmt.Printf("Failed:    %d\n", failures)

		if hist.TotalCount() > 0 {
			fmt.Println("Latency:")
			fmt.Printf("  min:  %s\n", formatMicros(hist.Min()))
			fmt.Printf("  mean: %s\n", formatMicros(int64(hist.Mean())))
			fmt.Printf("  p50:  %s\n", formatMicros(hist.ValueAtQuantile(50)))
			fmt.Printf("  p90:  %s\n", formatMicros(hist.ValueAtQuantile(90)))
			fmt.Printf("  p99:  %s\n", formatMicros(hist.ValueAtQuantile(99)))
			fmt.Printf("  max:  %s\n", formatMicros(hist.Max()))
		}

		if failures > 0 {
			os.Exit(1)
		}
	},
}

// formatMicros renders a microsecond latency value as a duration string
func formatMicros(micros int64) string {
	return (time.Duration(micros) * time.Microsecond).String()
}

func init() {
	benchCmd.Flags().IntP("requests", "n", 100, "Number of requests to send")
	benchCmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	benchCmd.Flags().String("auth", "", "Authorization header value, sent verbatim")
	benchCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
}
