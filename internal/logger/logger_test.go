package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Adda-Baaj/spacetraders-go/internal/config"
	"github.com/goccy/go-json"
)

func TestInitWritesJSONAtConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := initWithWriter(&config.Config{AppName: "spacetraders", Env: "test", LogLevel: "warn"}, &buf)
	if err != nil {
		t.Fatalf("init: %v", err)
	}

	log.InfoObj("dropped", "k", 1)
	log.WarnObj("kept", "agent", map[string]any{"symbol": "MYAGENT"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry["msg"] != "kept" || entry["app"] != "spacetraders" || entry["ts"] == nil {
		t.Fatalf("unexpected entry %v", entry)
	}
	agent, _ := entry["agent"].(map[string]any)
	if agent["symbol"] != "MYAGENT" {
		t.Fatalf("unexpected agent field %v", entry["agent"])
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("verbose"); got.String() != "info" {
		t.Fatalf("expected info, got %s", got)
	}
	if got := parseLevel("warning"); got.String() != "warn" {
		t.Fatalf("expected warn, got %s", got)
	}
}

func TestPackageHelpersAreSafeBeforeInit(t *testing.T) {
	prev := S
	S = nil
	defer func() { S = prev }()

	InfoObj("noop", "k", 1)
	ErrorObj("noop", "k", 1)
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
