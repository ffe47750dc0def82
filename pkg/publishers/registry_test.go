package publishers

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBuildAllWithDefaultBuilders(t *testing.T) {
	pubs, err := BuildAll(context.Background(), DefaultBuilders(), []PublisherConfig{
		{ID: "hook", Type: TypeHTTP, HTTP: &HTTPPublisherConfig{URL: "https://example.com"}},
	}, nil)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if len(pubs) != 1 || pubs[0].ID() != "hook" || pubs[0].Type() != TypeHTTP {
		t.Fatalf("unexpected publishers %#v", pubs)
	}
}

func TestBuildAllClosesBuiltPublishersOnFailure(t *testing.T) {
	built := &stubPublisher{id: "first", typ: "stub"}
	builders := Builders{
		"stub": func(context.Context, PublisherConfig, Logger) (Publisher, error) { return built, nil },
	}

	_, err := BuildAll(context.Background(), builders, []PublisherConfig{
		{ID: "first", Type: "stub"},
		{ID: "second", Type: "unknown"},
	}, nil)
	if err == nil {
		t.Fatalf("expected error for unknown type")
	}
	if !built.closed {
		t.Fatalf("expected already built publisher to be closed")
	}
}

func TestBuildWrapsBuilderError(t *testing.T) {
	builders := Builders{
		"broken": func(context.Context, PublisherConfig, Logger) (Publisher, error) { return nil, errors.New("no creds") },
	}
	_, err := builders.Build(context.Background(), PublisherConfig{ID: "b", Type: " Broken "}, nil)
	if err == nil || !strings.Contains(err.Error(), `build broken publisher "b": no creds`) {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := builders.Build(context.Background(), PublisherConfig{ID: "x"}, nil); err == nil {
		t.Fatalf("expected error for missing type")
	}
}

func TestCloseAllSkipsNonClosers(t *testing.T) {
	closer := &stubPublisher{id: "c", typ: "stub"}
	if err := CloseAll([]Publisher{closer, &httpPublisher{id: "h"}}); err != nil {
		t.Fatalf("CloseAll: %v", err)
	}
	if !closer.closed {
		t.Fatalf("expected closer to be closed")
	}
}
