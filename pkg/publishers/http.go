package publishers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Adda-Baaj/spacetraders-go/pkg/httpclient"
)

// Headers set on every webhook delivery so receivers can route without
// decoding the body.
const (
	headerSnapshotSource = "X-Snapshot-Source"
	headerSnapshotKind   = "X-Snapshot-Kind"
	headerSnapshotDigest = "X-Snapshot-Digest"
)

const maxErrorSnippet = 512

// httpPublisher posts each event as JSON to a webhook.
type httpPublisher struct {
	id      string
	method  string
	url     string
	headers map[string]string
	client  httpclient.Client
	log     Logger
}

func newHTTPPublisher(_ context.Context, cfg PublisherConfig, log Logger) (Publisher, error) {
	if cfg.HTTP == nil {
		return nil, fmt.Errorf("publisher %q missing http configuration", cfg.ID)
	}
	c := *cfg.HTTP
	c.normalize()

	return &httpPublisher{
		id:      cfg.ID,
		method:  c.Method,
		url:     c.URL,
		headers: c.Headers,
		client:  httpclient.NewRestyClient(time.Duration(c.TimeoutSeconds) * time.Second),
		log:     ensureLogger(log),
	}, nil
}

func (h *httpPublisher) ID() string   { return h.id }
func (h *httpPublisher) Type() string { return TypeHTTP }

func (h *httpPublisher) Publish(ctx context.Context, evt Event) error {
	payload, err := evt.marshal()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	headers := make(map[string]string, len(h.headers)+4)
	for k, v := range h.headers {
		headers[k] = v
	}
	headers["Content-Type"] = "application/json"
	headers[headerSnapshotSource] = evt.SourceID
	headers[headerSnapshotKind] = string(evt.Kind)
	headers[headerSnapshotDigest] = evt.Digest

	resp, err := h.client.Do(ctx, httpclient.Request{
		Method:  h.method,
		URL:     h.url,
		Headers: headers,
		Body:    payload,
	})
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	if code := resp.StatusCode(); code < http.StatusOK || code >= http.StatusMultipleChoices {
		return fmt.Errorf("http response status %d: %s", code, bodySnippet(resp.Body()))
	}

	h.log.DebugObj("http publisher delivered event", "publisher_http_delivery", map[string]any{
		"publisher_id": h.id,
		"source_id":    evt.SourceID,
		"status":       resp.StatusCode(),
	})
	return nil
}

func bodySnippet(body []byte) string {
	if len(body) > maxErrorSnippet {
		body = body[:maxErrorSnippet]
	}
	return strings.TrimSpace(string(body))
}
