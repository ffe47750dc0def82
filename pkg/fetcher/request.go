package fetcher

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Request describes one API call relative to the executor's base URL.
//
// The zero value is invalid: Path is MANDATORY.
type Request struct {
	// Path is the MANDATORY resource path, e.g. "my/agent".
	Path string

	// Method is the OPTIONAL method. Empty means GET.
	Method string

	// Body is the OPTIONAL payload, sent JSON-encoded. A nil Body sends no payload
	// regardless of Method.
	Body any

	// Query is the OPTIONAL query string.
	Query Query

	// Options OPTIONALLY overrides transport-level settings.
	Options *Options
}

// Options carries per-call transport overrides.
type Options struct {
	// Headers are added to the request. Content-Type cannot be overridden.
	Headers map[string]string
}

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

func (r Request) method() (string, error) {
	if r.Method == "" {
		return http.MethodGet, nil
	}
	m := strings.ToUpper(r.Method)
	if !allowedMethods[m] {
		return "", fmt.Errorf("unsupported method %q", r.Method)
	}
	return m, nil
}

// Query is an encodable query string. Pairs, Params, RawQuery and Values are
// the accepted forms; equivalent content encodes to the same string.
type Query interface {
	encode() (string, error)
}

// Pairs is an ordered key/value sequence. Repeated keys are allowed and keep
// their order.
type Pairs [][2]string

func (p Pairs) encode() (string, error) {
	parts := make([]string, 0, len(p))
	for _, kv := range p {
		parts = append(parts, url.QueryEscape(kv[0])+"="+url.QueryEscape(kv[1]))
	}
	return strings.Join(parts, "&"), nil
}

// Params maps keys to scalar values (strings, numbers, booleans). Keys are
// encoded in sorted order.
type Params map[string]any

func (p Params) encode() (string, error) {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make(Pairs, 0, len(keys))
	for _, k := range keys {
		v, err := formatScalar(p[k])
		if err != nil {
			return "", fmt.Errorf("query parameter %q: %w", k, err)
		}
		pairs = append(pairs, [2]string{k, v})
	}
	return pairs.encode()
}

// RawQuery is an already encoded query string. A leading '?' is ignored.
type RawQuery string

func (q RawQuery) encode() (string, error) {
	return strings.TrimPrefix(string(q), "?"), nil
}

// Values adapts url.Values. Keys are encoded in sorted order.
type Values url.Values

func (v Values) encode() (string, error) {
	return url.Values(v).Encode(), nil
}

func formatScalar(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	}
	return "", fmt.Errorf("unsupported value type %T", v)
}

// joinURL resolves path against base the way a prefix URL does: exactly one
// slash between them, with base's own path kept.
func joinURL(base *url.URL, path, rawQuery string) (string, error) {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" {
		return "", fmt.Errorf("request path is empty")
	}
	rel, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse request path: %w", err)
	}
	if rel.IsAbs() || rel.Host != "" {
		return "", fmt.Errorf("request path %q must be relative", path)
	}

	u := *base
	u.Path = strings.TrimRight(base.Path, "/") + "/" + rel.Path
	u.RawPath = ""
	if rel.RawPath != "" {
		u.RawPath = strings.TrimRight(base.EscapedPath(), "/") + "/" + rel.RawPath
	}
	u.RawQuery = rel.RawQuery
	if rawQuery != "" {
		u.RawQuery = rawQuery
	}
	u.Fragment = ""
	return u.String(), nil
}
