package http

import "encoding/json"

// Options describes the dispatchable parts of a request: method, headers, and
// an encoded body. Verb methods build a default Options value per call; an
// optional caller-supplied override is shallow-merged on top of it.
type Options struct {
	Method  string
	Headers map[string]string
	Body    []byte
}

// clone returns a copy of the options with its own headers map, so that hook
// or merge mutations never leak into caller-owned values.
func (o Options) clone() Options {
	headers := make(map[string]string, len(o.Headers))
	for k, v := range o.Headers {
		headers[k] = v
	}
	o.Headers = headers
	return o
}

// merge applies an override on top of the receiver. The merge is shallow and
// the override wins per field: a non-empty Method replaces the default, a
// non-nil Body replaces the default, and Headers merge key-by-key with the
// override's value winning on conflict. Default headers survive unless
// explicitly overridden.
func (o Options) merge(override *Options) Options {
	merged := o.clone()
	if override == nil {
		return merged
	}

	if override.Method != "" {
		merged.Method = override.Method
	}
	if override.Body != nil {
		merged.Body = override.Body
	}
	for k, v := range override.Headers {
		merged.Headers[k] = v
	}

	return merged
}

// defaultOptions builds the per-call defaults: the verb's method, a
// Content-Type of application/json, the configured Authorization value when
// non-empty, and the JSON-encoded body. A nil body yields no request body at
// all rather than an empty JSON object.
func defaultOptions(method string, body any, authorization string) (Options, error) {
	opts := Options{
		Method: method,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}

	if authorization != "" {
		opts.Headers["Authorization"] = authorization
	}

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Options{}, err
		}
		opts.Body = encoded
	}

	return opts, nil
}
