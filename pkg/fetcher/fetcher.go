// Package fetcher executes typed calls against a JSON HTTP API.
//
// Every call sends exactly one request to a path below a fixed base URL. A
// success response is decoded as JSON and validated by a shape into a typed
// value; every failure is reported as a *ResponseError.
package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/Adda-Baaj/spacetraders-go/pkg/httpclient"
	"github.com/Adda-Baaj/spacetraders-go/pkg/shape"
	"github.com/goccy/go-json"
)

// ApplicationJSON is the content-type of every request.
const ApplicationJSON = "application/json"

// Executor sends typed requests to a single base URL. It holds no mutable
// state and is safe for concurrent use.
type Executor struct {
	baseURL *url.URL
	client  httpclient.Client
	log     Logger
}

// Option customizes an Executor.
type Option func(*Executor)

// WithLogger sets the logger used for debug tracing of calls.
func WithLogger(log Logger) Option {
	return func(e *Executor) { e.log = ensureLogger(log) }
}

// New builds an Executor for baseURL using client as transport.
func New(baseURL string, client httpclient.Client, opts ...Option) (*Executor, error) {
	if client == nil {
		return nil, fmt.Errorf("fetcher: http client must not be nil")
	}
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("fetcher: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("fetcher: base url %q must be absolute", baseURL)
	}
	e := &Executor{baseURL: u, client: client, log: noopLogger{}}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// BaseURL returns the URL all request paths are resolved against.
func (e *Executor) BaseURL() string { return e.baseURL.String() }

// Nothing is the result type of calls that discard the response body.
type Nothing = struct{}

// Expect says what to do with a success response body: either discard it or
// decode it with a shape. Build it with Typed or Discard.
type Expect[T any] struct {
	discard bool
	shape   shape.Shape[T]
}

// Typed decodes the response body with s.
func Typed[T any](s shape.Shape[T]) Expect[T] {
	return Expect[T]{shape: s}
}

// Discard ignores the response body entirely; it is never parsed.
func Discard() Expect[Nothing] {
	return Expect[Nothing]{discard: true}
}

// Execute performs req and handles the success body according to expect.
// The returned error, when non-nil, is always a *ResponseError.
func Execute[T any](ctx context.Context, e *Executor, req Request, expect Expect[T]) (T, error) {
	out, err := execute(ctx, e, req, expect)
	if err != nil {
		var zero T
		rerr := classify(err)
		if e != nil && !rerr.HasStatus() {
			e.log.DebugObj("fetcher call failed", "fetcher_error", map[string]any{
				"path":  req.Path,
				"error": err.Error(),
			})
		}
		return zero, rerr
	}
	return out, nil
}

// Fetch performs req and decodes the success body with s.
func Fetch[T any](ctx context.Context, e *Executor, req Request, s shape.Shape[T]) (T, error) {
	return Execute(ctx, e, req, Typed(s))
}

// Send performs req and ignores the success body.
func Send(ctx context.Context, e *Executor, req Request) error {
	_, err := Execute(ctx, e, req, Discard())
	return err
}

func execute[T any](ctx context.Context, e *Executor, req Request, expect Expect[T]) (T, error) {
	var zero T
	if e == nil {
		return zero, fmt.Errorf("executor is nil")
	}
	if !expect.discard && expect.shape == nil {
		return zero, fmt.Errorf("no shape given for %s", req.Path)
	}

	httpReq, err := e.newRequest(req)
	if err != nil {
		return zero, err
	}

	resp, err := e.client.Do(ctx, httpReq)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", httpReq.Method, httpReq.URL, err)
	}
	if code := resp.StatusCode(); code < http.StatusOK || code >= http.StatusMultipleChoices {
		return zero, statusError(code, resp.Status())
	}
	if expect.discard {
		return zero, nil
	}

	var raw any
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return zero, fmt.Errorf("decode %s response: %w", req.Path, err)
	}
	return expect.shape.Validate(raw)
}

func (e *Executor) newRequest(req Request) (httpclient.Request, error) {
	method, err := req.method()
	if err != nil {
		return httpclient.Request{}, err
	}

	var rawQuery string
	if req.Query != nil {
		if rawQuery, err = req.Query.encode(); err != nil {
			return httpclient.Request{}, err
		}
	}
	target, err := joinURL(e.baseURL, req.Path, rawQuery)
	if err != nil {
		return httpclient.Request{}, err
	}

	headers := make(map[string]string)
	if req.Options != nil {
		for k, v := range req.Options.Headers {
			if strings.EqualFold(k, "Content-Type") {
				continue
			}
			headers[k] = v
		}
	}
	headers["Content-Type"] = ApplicationJSON

	var body []byte
	if hasBody(req.Body) {
		if body, err = json.Marshal(req.Body); err != nil {
			return httpclient.Request{}, fmt.Errorf("encode request body: %w", err)
		}
	}

	return httpclient.Request{
		Method:  method,
		URL:     target,
		Headers: headers,
		Body:    body,
	}, nil
}

// hasBody reports whether v is a payload worth sending. Typed nils would
// encode as null, so they count as no body.
func hasBody(v any) bool {
	if v == nil {
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
