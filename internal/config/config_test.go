package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Fatalf("unexpected api url %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 15*time.Second || cfg.PollInterval != 5*time.Minute {
		t.Fatalf("unexpected durations %v %v", cfg.HTTPTimeout, cfg.PollInterval)
	}
	if cfg.StorageType != "memory" || cfg.StorageTTL != 24*time.Hour {
		t.Fatalf("unexpected storage config %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:8080/v2")
	t.Setenv("API_TOKEN", " secret ")
	t.Setenv("POLL_INTERVAL_SECONDS", "30")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIURL != "http://localhost:8080/v2" || cfg.APIToken != "secret" {
		t.Fatalf("unexpected api config %+v", cfg)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("unexpected poll interval %v", cfg.PollInterval)
	}
	if strings.Contains(cfg.String(), "secret") {
		t.Fatalf("token leaked in %s", cfg.String())
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"API_URL":               "not a url",
		"HTTP_TIMEOUT_SECONDS":  "0",
		"POLL_INTERVAL_SECONDS": "-1",
		"STORAGE_TTL_SECONDS":   "0",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := load(viper.New()); err == nil {
				t.Fatalf("expected error for %s=%s", key, val)
			}
		})
	}
}

func TestPublicAgentOnlyWithoutToken(t *testing.T) {
	t.Setenv("AGENT_SYMBOL", " badger ")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AgentSymbol != "BADGER" || cfg.PublicAgent() != "BADGER" {
		t.Fatalf("expected BADGER, got symbol=%q public=%q", cfg.AgentSymbol, cfg.PublicAgent())
	}

	cfg.APIToken = "tok"
	if got := cfg.PublicAgent(); got != "" {
		t.Fatalf("expected no public agent with a token, got %q", got)
	}
}
