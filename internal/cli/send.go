package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	http "github.com/wesleyorama2/riposte/http"
	"github.com/wesleyorama2/riposte/internal/config"
	"github.com/wesleyorama2/riposte/internal/output"
	"github.com/wesleyorama2/riposte/pkg/jsonpath"
	"github.com/wesleyorama2/riposte/pkg/jsonschema"
)

var sendCmd = &cobra.Command{
	Use:   "send NAME",
	Short: "Send a named request from a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requestName := args[0]
		configFile, _ := cmd.Flags().GetString("config")
		environment, _ := cmd.Flags().GetString("env")
		verbose, _ := cmd.Flags().GetBool("verbose")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if configFile == "" {
			fmt.Fprintln(os.Stderr, "Error: config file is required")
			cmd.Help()
			os.Exit(1)
		}
		if environment == "" {
			fmt.Fprintln(os.Stderr, "Error: environment is required")
			cmd.Help()
			os.Exit(1)
		}

		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		validationErrors := config.ValidateConfig(cfg)
		if len(validationErrors) > 0 {
			fmt.Fprintln(os.Stderr, "Configuration validation errors:")
			for _, verr := range validationErrors {
				fmt.Fprintf(os.Stderr, "  - %s\n", verr.Error())
			}
			os.Exit(1)
		}

		if err := config.ValidateEnvironment(cfg, environment); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := config.ValidateRequest(cfg, requestName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		env := cfg.Environments[environment]
		reqConfig := cfg.Requests[requestName]

		formatter := output.NewFormatter(verbose, noColor || !output.IsTerminal(os.Stdout))

		if err := sendRequest(env, reqConfig, formatter, timeout); err != nil {
			fmt.Fprint(os.Stderr, formatter.FormatError(err))
			os.Exit(1)
		}
	},
}

// sendRequest executes one configured request against the chosen environment
func sendRequest(env config.Environment, reqConfig config.Request, formatter *output.Formatter, timeout time.Duration) error {
	client := http.NewClient(
		http.WithConfig(&http.Config{
			BaseURL:       env.BaseURL,
			Port:          env.Port,
			BasePath:      env.BasePath,
			Authorization: env.Authorization,
		}),
		http.WithTimeout(timeout),
	)

	var dispatchedURL string
	var dispatchedOpts http.Options
	client.PreRequest = func(url string, opts http.Options) (string, http.Options) {
		dispatchedURL, dispatchedOpts = url, opts
		return url, opts
	}

	// Environment headers apply first; request headers win per key.
	headers := make(map[string]string)
	for k, v := range env.Headers {
		headers[k] = v
	}
	for k, v := range reqConfig.Headers {
		headers[k] = v
	}

	var override *http.Options
	if len(headers) > 0 {
		override = &http.Options{Headers: headers}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var value any
	var err error
	switch strings.ToUpper(reqConfig.Method) {
	case "GET":
		value, err = client.Get(ctx, reqConfig.Path, override)
	case "POST":
		value, err = client.Post(ctx, reqConfig.Path, reqConfig.Body, override)
	case "PUT":
		value, err = client.Put(ctx, reqConfig.Path, reqConfig.Body, override)
	case "DELETE":
		value, err = client.Delete(ctx, reqConfig.Path, reqConfig.Body, override)
	default:
		return fmt.Errorf("unsupported method: %s", reqConfig.Method)
	}

	fmt.Print(formatter.FormatRequest(dispatchedURL, dispatchedOpts))

	if err != nil {
		var reqErr *http.RequestError
		if errors.As(err, &reqErr) && reqErr.Response != nil {
			fmt.Print(formatter.FormatResponse(reqErr.Response))
		}
		return err
	}

	fmt.Print(formatter.FormatValue(value))

	encoded, merr := json.Marshal(value)
	if merr != nil {
		return fmt.Errorf("re-encoding response for extraction: %w", merr)
	}
	bodyJSON := string(encoded)

	if len(reqConfig.Extract) > 0 {
		extracted, eerr := jsonpath.ExtractMultiple(bodyJSON, reqConfig.Extract)
		if eerr != nil {
			return eerr
		}
		for name, val := range extracted {
			fmt.Printf("%s = %s\n", name, val)
		}
	}

	schemaJSON, serr := reqConfig.SchemaJSON()
	if serr != nil {
		return serr
	}
	if schemaJSON != "" {
		valid, verrs := jsonschema.ValidateWithErrors(bodyJSON, schemaJSON)
		if !valid {
			return fmt.Errorf("schema validation failed: %w", verrs)
		}
		fmt.Println("Schema validation: PASS")
	}

	return nil
}

func init() {
	sendCmd.Flags().StringP("config", "c", "", "Path to the configuration file (.json, .yaml, .yml)")
	sendCmd.Flags().StringP("env", "e", "", "Environment name from the configuration file")
	sendCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	sendCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	sendCmd.Flags().Bool("no-color", false, "Disable colored output")
}
