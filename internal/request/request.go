// Package request is a thin HTTP helper with fetch-like semantics: every
// call resolves to either a data payload or an error value, never both, and
// never raises past its boundary.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Options describes one request. Zero values get fetch-style defaults: GET
// method, no body, response decoding chosen by content-type sniffing.
type Options struct {
	URL      string
	Method   string
	Body     any               // JSON-encoded when non-nil
	FormData url.Values        // form-encoded; takes precedence over Body
	Headers  map[string]string
	// Type forces response decoding: "json", "blob" or "text". Empty means
	// sniff the response content type.
	Type string
	// OnRequest runs against the request before it is sent.
	OnRequest func(*http.Request) error
}

// Result carries the outcome of a request. Exactly one of Data and Err is
// set.
type Result struct {
	Data any
	Err  error
}

// Get performs a GET against the given URL.
func Get(ctx context.Context, rawURL string) Result {
	return Do(ctx, Options{URL: rawURL})
}

// Do performs the described request. Non-2xx responses become an error value
// built from the response body, or the status text when the body is empty.
func Do(ctx context.Context, opts Options) Result {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	contentType := ""
	switch {
	case opts.FormData != nil:
		body = strings.NewReader(opts.FormData.Encode())
		contentType = "application/x-www-form-urlencoded"
	case opts.Body != nil:
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return Result{Err: fmt.Errorf("encoding request body: %w", err)}
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, opts.URL, body)
	if err != nil {
		return Result{Err: fmt.Errorf("building request: %w", err)}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if opts.OnRequest != nil {
		if err := opts.OnRequest(req); err != nil {
			return Result{Err: fmt.Errorf("request hook: %w", err)}
		}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Result{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(payload))
		if msg == "" {
			msg = resp.Status
		}
		return Result{Err: fmt.Errorf("%s", msg)}
	}

	return decode(opts.Type, resp.Header.Get("Content-Type"), payload)
}

// decode picks JSON, blob or text decoding of the response body.
func decode(forced, contentType string, payload []byte) Result {
	kind := forced
	if kind == "" {
		switch {
		case strings.Contains(contentType, "application/json"):
			kind = "json"
		case strings.HasPrefix(contentType, "text/"):
			kind = "text"
		default:
			kind = "blob"
		}
	}

	switch kind {
	case "json":
		var v any
		if err := json.Unmarshal(payload, &v); err != nil {
			return Result{Err: fmt.Errorf("decoding response: %w", err)}
		}
		return Result{Data: v}
	case "text":
		return Result{Data: string(payload)}
	default:
		return Result{Data: payload}
	}
}
