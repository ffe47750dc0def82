package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Adda-Baaj/spacetraders-go/internal/config"
	"github.com/goccy/go-json"
)

type recordedEvent struct {
	SourceID string `json:"source_id"`
	Kind     string `json:"kind"`
	Subject  string `json:"subject"`
	Digest   string `json:"digest"`
}

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestWatcherRunOncePublishesAgentSnapshot(t *testing.T) {
	var (
		mu     sync.Mutex
		events []recordedEvent
		auth   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/my/agent":
			mu.Lock()
			auth = r.Header.Get("Authorization")
			mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"data":{"accountId":"acc-1","symbol":"BADGER","headquarters":"X1-DF55-20250Z","credits":175000,"startingFaction":"COSMIC","shipCount":2}}`)
		case "/events":
			body, _ := io.ReadAll(r.Body)
			var evt recordedEvent
			if err := json.Unmarshal(body, &evt); err != nil {
				t.Errorf("decode event: %v", err)
			}
			mu.Lock()
			events = append(events, evt)
			mu.Unlock()
			w.WriteHeader(http.StatusAccepted)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfg := &config.Config{
		AppName:        "spacetraders-go",
		APIURL:         srv.URL + "/v2",
		APIToken:       "tok",
		HTTPTimeout:    5 * time.Second,
		StorageType:    "memory",
		PollInterval:   time.Minute,
		SourcesFile:    writeConfigFile(t, dir, "sources.yaml", "sources:\n  - id: me\n    kind: agent\n"),
		PublishersFile: writeConfigFile(t, dir, "publishers.yaml", "publishers:\n  - id: sink\n    type: http\n    http:\n      url: "+srv.URL+"/events\n"),
	}

	w, err := NewWatcher(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if auth != "Bearer tok" {
		t.Fatalf("expected bearer token, got %q", auth)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	evt := events[0]
	if evt.SourceID != "me" || evt.Kind != "agent" || evt.Subject != "BADGER" || evt.Digest == "" {
		t.Fatalf("unexpected event %+v", evt)
	}
}

func TestWatcherWithoutTokenWatchesConfiguredAgent(t *testing.T) {
	var (
		mu      sync.Mutex
		paths   []string
		subject string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		switch r.URL.Path {
		case "/v2/agents/BADGER":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"data":{"symbol":"BADGER","headquarters":"X1-DF55-20250Z","credits":175000,"startingFaction":"COSMIC","shipCount":2}}`)
		case "/events":
			var evt recordedEvent
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &evt)
			mu.Lock()
			subject = evt.Subject
			mu.Unlock()
			w.WriteHeader(http.StatusAccepted)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfg := &config.Config{
		APIURL:         srv.URL + "/v2",
		AgentSymbol:    "BADGER",
		HTTPTimeout:    5 * time.Second,
		StorageType:    "memory",
		PollInterval:   time.Minute,
		SourcesFile:    writeConfigFile(t, dir, "sources.yaml", "sources:\n  - id: me\n    kind: agent\n"),
		PublishersFile: writeConfigFile(t, dir, "publishers.yaml", "publishers:\n  - id: sink\n    type: http\n    http:\n      url: "+srv.URL+"/events\n"),
	}

	w, err := NewWatcher(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if src, _ := w.sourceReg.ByID("me"); src.Target != "BADGER" {
		t.Fatalf("expected agent source to target BADGER, got %+v", src)
	}
	if err := w.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(paths) == 0 || paths[0] != "/v2/agents/BADGER" {
		t.Fatalf("expected public agent lookup first, got %v", paths)
	}
	if subject != "BADGER" {
		t.Fatalf("expected BADGER snapshot, got subject %q", subject)
	}
}

func TestNewWatcherRequiresPublishers(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		APIURL:         config.DefaultAPIURL,
		HTTPTimeout:    time.Second,
		SourcesFile:    writeConfigFile(t, dir, "sources.yaml", "sources:\n  - id: me\n    kind: agent\n"),
		PublishersFile: writeConfigFile(t, dir, "publishers.yaml", "publishers:\n  - id: off\n    type: http\n    enabled: false\n    http:\n      url: http://localhost/events\n"),
	}
	_, err := NewWatcher(context.Background(), cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "no publishers") {
		t.Fatalf("expected no publishers error, got %v", err)
	}
}

func TestNewAPIClientRejectsBadConfig(t *testing.T) {
	if _, err := NewAPIClient(nil, nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := NewAPIClient(&config.Config{APIURL: "not a url"}, nil); err == nil {
		t.Fatalf("expected error for relative api url")
	}
}
