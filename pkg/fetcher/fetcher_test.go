package fetcher

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Adda-Baaj/spacetraders-go/pkg/httpclient"
	"github.com/Adda-Baaj/spacetraders-go/pkg/shape"
	"github.com/google/go-cmp/cmp"
)

type publicAgent struct {
	Symbol          string
	Headquarters    string
	Credits         int
	StartingFaction string
	ShipCount       int
}

var publicAgentShape = shape.Object(
	shape.Prop("symbol", shape.String(), func(a *publicAgent, v string) { a.Symbol = v }),
	shape.Prop("headquarters", shape.String(), func(a *publicAgent, v string) { a.Headquarters = v }),
	shape.Prop("credits", shape.Int(), func(a *publicAgent, v int) { a.Credits = v }),
	shape.Prop("startingFaction", shape.Enum("COSMIC", "VOID"), func(a *publicAgent, v string) { a.StartingFaction = v }),
	shape.Prop("shipCount", shape.Int(), func(a *publicAgent, v int) { a.ShipCount = v }),
)

// mockResponse implements httpclient.Response.
type mockResponse struct {
	body       []byte
	statusCode int
	status     string
}

func (r mockResponse) Body() []byte    { return r.body }
func (r mockResponse) StatusCode() int { return r.statusCode }
func (r mockResponse) Status() string  { return r.status }

// mockClient records the last request and returns a preset response or error.
type mockClient struct {
	mu   sync.Mutex
	last httpclient.Request
	resp mockResponse
	err  error
}

func (m *mockClient) Do(_ context.Context, req httpclient.Request) (httpclient.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func newTestExecutor(t *testing.T, client httpclient.Client) *Executor {
	t.Helper()
	exec, err := New("https://api.example.test/v2", client)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return exec
}

func TestFetchDecodesTypedValue(t *testing.T) {
	client := &mockClient{resp: mockResponse{
		statusCode: 200,
		status:     "200 OK",
		body:       []byte(`{"symbol":"MYAGENT","headquarters":"X1-AB","credits":100000,"startingFaction":"COSMIC","shipCount":3}`),
	}}
	exec := newTestExecutor(t, client)

	got, err := Execute(context.Background(), exec, Request{Path: "agents/MYAGENT", Method: http.MethodGet}, Typed(publicAgentShape))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := publicAgent{Symbol: "MYAGENT", Headquarters: "X1-AB", Credits: 100000, StartingFaction: "COSMIC", ShipCount: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected agent (-want +got):\n%s", diff)
	}
	if client.last.URL != "https://api.example.test/v2/agents/MYAGENT" {
		t.Fatalf("unexpected url %q", client.last.URL)
	}
	if client.last.Method != http.MethodGet {
		t.Fatalf("expected GET, got %s", client.last.Method)
	}
	if client.last.Body != nil {
		t.Fatalf("expected no body, got %s", client.last.Body)
	}
}

func TestFetchNonSuccessIsClassified(t *testing.T) {
	for _, expectDiscard := range []bool{false, true} {
		client := &mockClient{resp: mockResponse{statusCode: 404, status: "404 Not Found", body: []byte(`not json`)}}
		exec := newTestExecutor(t, client)

		var err error
		if expectDiscard {
			err = Send(context.Background(), exec, Request{Path: "agents/MYAGENT"})
		} else {
			_, err = Fetch(context.Background(), exec, Request{Path: "agents/MYAGENT"}, publicAgentShape)
		}

		var rerr *ResponseError
		if !errors.As(err, &rerr) {
			t.Fatalf("expected *ResponseError, got %T %v", err, err)
		}
		if rerr.Status != 404 || rerr.Message != "Not Found" {
			t.Fatalf("unexpected error %+v", rerr)
		}
		if !IsNotFound(err) {
			t.Fatalf("IsNotFound returned false")
		}
	}
}

func TestFetchStatusTextFallsBackToCanonicalText(t *testing.T) {
	client := &mockClient{resp: mockResponse{statusCode: 429}}
	_, err := Fetch(context.Background(), newTestExecutor(t, client), Request{Path: "x"}, shape.Any())
	code, ok := StatusCode(err)
	if !ok || code != 429 {
		t.Fatalf("expected status 429, got %d ok=%v", code, ok)
	}
	if err.(*ResponseError).Message != "Too Many Requests" {
		t.Fatalf("unexpected message %q", err.(*ResponseError).Message)
	}
}

func TestDiscardNeverParsesBody(t *testing.T) {
	client := &mockClient{resp: mockResponse{statusCode: 204, status: "204 No Content", body: []byte(`{{{ definitely not json`)}}
	exec := newTestExecutor(t, client)

	got, err := Execute(context.Background(), exec, Request{Path: "my/ships/S-1/nav", Method: http.MethodPatch, Body: map[string]string{"flightMode": "DRIFT"}}, Discard())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != (Nothing{}) {
		t.Fatalf("expected zero value, got %#v", got)
	}
}

func TestValidationFailureIsUnclassified(t *testing.T) {
	client := &mockClient{resp: mockResponse{statusCode: 200, body: []byte(`{"symbol":"MYAGENT"}`)}}
	_, err := Fetch(context.Background(), newTestExecutor(t, client), Request{Path: "agents/MYAGENT"}, publicAgentShape)

	var rerr *ResponseError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *ResponseError, got %v", err)
	}
	if rerr.HasStatus() || rerr.Message != GenericFailureMessage {
		t.Fatalf("expected unclassified error, got %+v", rerr)
	}
	if _, ok := shape.AsValidationError(err); !ok {
		t.Fatalf("expected validation error in the unwrap chain")
	}
}

func TestMalformedJSONIsUnclassified(t *testing.T) {
	client := &mockClient{resp: mockResponse{statusCode: 200, body: []byte(`{"symbol":`)}}
	_, err := Fetch(context.Background(), newTestExecutor(t, client), Request{Path: "agents/MYAGENT"}, publicAgentShape)
	if _, ok := StatusCode(err); ok {
		t.Fatalf("expected no status, got %v", err)
	}
	if err.(*ResponseError).Message != GenericFailureMessage {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestTransportFailureIsUnclassified(t *testing.T) {
	boom := errors.New("connection refused")
	client := &mockClient{err: boom}
	_, err := Fetch(context.Background(), newTestExecutor(t, client), Request{Path: "agents/MYAGENT"}, publicAgentShape)
	if _, ok := StatusCode(err); ok {
		t.Fatalf("expected no status, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
}

func TestInvalidRequestsAreUnclassified(t *testing.T) {
	exec := newTestExecutor(t, &mockClient{resp: mockResponse{statusCode: 200, body: []byte(`{}`)}})
	cases := map[string]Request{
		"empty path":     {Path: ""},
		"absolute path":  {Path: "https://evil.example/x"},
		"bad method":     {Path: "x", Method: "TRACE"},
		"bad query type": {Path: "x", Query: Params{"a": []int{1}}},
		"bad body":       {Path: "x", Method: http.MethodPost, Body: make(chan int)},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Fetch(context.Background(), exec, req, shape.Any())
			var rerr *ResponseError
			if !errors.As(err, &rerr) || rerr.HasStatus() {
				t.Fatalf("expected unclassified error, got %v", err)
			}
		})
	}
}

func TestMissingShapeIsUnclassified(t *testing.T) {
	exec := newTestExecutor(t, &mockClient{resp: mockResponse{statusCode: 200, body: []byte(`{}`)}})
	_, err := Execute(context.Background(), exec, Request{Path: "x"}, Typed[int](nil))
	if err == nil {
		t.Fatalf("expected error for missing shape")
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	original := &ResponseError{Message: "Not Found", Status: 404}
	if got := classify(original); got != original {
		t.Fatalf("expected same error back, got %+v", got)
	}
	wrapped := errors.Join(errors.New("context"), original)
	if got := classify(wrapped); got != original {
		t.Fatalf("expected wrapped classified error back, got %+v", got)
	}
	generic := classify(errors.New("boom"))
	if generic.HasStatus() || generic.Message != GenericFailureMessage {
		t.Fatalf("unexpected generic error %+v", generic)
	}
	if again := classify(generic); again != generic {
		t.Fatalf("expected unclassified error to pass through unchanged")
	}
	if classify(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestHeadersAndBody(t *testing.T) {
	client := &mockClient{resp: mockResponse{statusCode: 201, body: []byte(`{"symbol":"A","headquarters":"H","credits":1,"startingFaction":"VOID","shipCount":0}`)}}
	exec := newTestExecutor(t, client)

	_, err := Fetch(context.Background(), exec, Request{
		Path:    "/register",
		Method:  "post",
		Body:    map[string]string{"symbol": "A"},
		Options: &Options{Headers: map[string]string{"content-type": "text/plain", "X-Trace": "t1"}},
	}, publicAgentShape)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	want := map[string]string{"Content-Type": ApplicationJSON, "X-Trace": "t1"}
	if diff := cmp.Diff(want, client.last.Headers); diff != "" {
		t.Fatalf("unexpected headers (-want +got):\n%s", diff)
	}
	if client.last.Method != http.MethodPost {
		t.Fatalf("expected POST, got %s", client.last.Method)
	}
	if string(client.last.Body) != `{"symbol":"A"}` {
		t.Fatalf("unexpected body %s", client.last.Body)
	}
	if client.last.URL != "https://api.example.test/v2/register" {
		t.Fatalf("unexpected url %s", client.last.URL)
	}
}

func TestTypedNilBodyIsNotSent(t *testing.T) {
	type order struct{ Units int }
	var (
		nilOrder *order
		nilMap   map[string]string
	)
	for name, body := range map[string]any{"pointer": nilOrder, "map": nilMap} {
		client := &mockClient{resp: mockResponse{statusCode: 204}}
		exec := newTestExecutor(t, client)
		if err := Send(context.Background(), exec, Request{Path: "my/ships/S-1/orbit", Method: http.MethodPost, Body: body}); err != nil {
			t.Fatalf("%s: Send: %v", name, err)
		}
		if client.last.Body != nil {
			t.Fatalf("%s: expected no body, got %s", name, client.last.Body)
		}
	}
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	if _, err := New("", &mockClient{}); err == nil {
		t.Fatalf("expected error for empty base url")
	}
	if _, err := New("api.example.test", &mockClient{}); err == nil {
		t.Fatalf("expected error for relative base url")
	}
	if _, err := New("https://api.example.test", nil); err == nil {
		t.Fatalf("expected error for nil client")
	}
}

func TestExecuteAgainstHTTPServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/agents/MYAGENT" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Content-Type"); got != ApplicationJSON {
			t.Errorf("unexpected content-type %q", got)
		}
		if body, _ := io.ReadAll(r.Body); len(body) != 0 {
			t.Errorf("expected empty body, got %s", body)
		}
		w.Write([]byte(`{"symbol":"MYAGENT","headquarters":"X1-AB","credits":100000,"startingFaction":"COSMIC","shipCount":3}`))
	}))
	defer srv.Close()

	exec, err := New(srv.URL+"/v2/", httpclient.NewRestyClient(2*time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	agent, err := Fetch(context.Background(), exec, Request{Path: "agents/MYAGENT"}, publicAgentShape)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if agent.Credits != 100000 {
		t.Fatalf("expected 100000 credits, got %d", agent.Credits)
	}

	_, err = Fetch(context.Background(), exec, Request{Path: "agents/OTHER"}, publicAgentShape)
	code, ok := StatusCode(err)
	if !ok || code != http.StatusNotFound || err.(*ResponseError).Message != "Not Found" {
		t.Fatalf("expected classified 404, got %v", err)
	}
}

func TestCancelledContextIsUnclassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	exec, err := New(srv.URL, httpclient.NewRestyClient(time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Fetch(ctx, exec, Request{Path: "x"}, shape.Any())
	if _, ok := StatusCode(err); ok || err == nil {
		t.Fatalf("expected unclassified error, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}
