package spacetraders

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Adda-Baaj/spacetraders-go/pkg/fetcher"
	"github.com/Adda-Baaj/spacetraders-go/pkg/httpclient"
	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

type recordedRequest struct {
	Method string
	URI    string
	Body   string
}

type apiStub struct {
	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]string
}

func (s *apiStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.requests = append(s.requests, recordedRequest{Method: r.Method, URI: r.URL.RequestURI(), Body: string(body)})
	s.mu.Unlock()

	payload, ok := s.routes[r.Method+" "+r.URL.Path]
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if payload == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, payload)
}

func (s *apiStub) last() recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

func fixtureText(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return string(data)
}

func newStubClient(t *testing.T, routes map[string]string) (*Client, *apiStub) {
	t.Helper()
	stub := &apiStub{routes: routes}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	exec, err := fetcher.New(srv.URL+"/v2/", httpclient.NewRestyClient(2*time.Second))
	if err != nil {
		t.Fatalf("fetcher.New: %v", err)
	}
	client, err := NewClient(exec)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, stub
}

func TestClientAgent(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"GET /v2/agents/MYAGENT": `{"data":{"symbol":"MYAGENT","headquarters":"X1-AB","credits":100000,"startingFaction":"COSMIC","shipCount":3}}`,
	})

	agent, err := client.Agent(context.Background(), "MYAGENT")
	if err != nil {
		t.Fatalf("Agent: %v", err)
	}
	if agent.Credits != 100000 || agent.StartingFaction != FactionCosmic {
		t.Fatalf("unexpected agent %+v", agent)
	}
	if got := stub.last().URI; got != "/v2/agents/MYAGENT" {
		t.Fatalf("unexpected request uri %q", got)
	}

	_, err = client.Agent(context.Background(), "NOBODY")
	if !fetcher.IsNotFound(err) {
		t.Fatalf("expected classified 404, got %v", err)
	}
}

func TestClientContractsPagination(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"GET /v2/my/contracts": fixtureText(t, "contracts.json"),
	})

	page, err := client.Contracts(context.Background(), Pagination{})
	if err != nil {
		t.Fatalf("Contracts: %v", err)
	}
	if len(page.Data) != 1 || page.Data[0].Type != ContractProcurement {
		t.Fatalf("unexpected page %+v", page)
	}
	if got := stub.last().URI; got != "/v2/my/contracts?limit=10&page=1" {
		t.Fatalf("unexpected request uri %q", got)
	}
}

func TestClientDeliverContractSendsBody(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"POST /v2/my/contracts/c1/deliver": `{"data":{
			"contract": {"id":"c1","factionSymbol":"COSMIC","type":"PROCUREMENT",
				"terms":{"deadline":"2024-03-17T12:00:00Z","payment":{"onAccepted":1,"onFulfilled":2},"deliver":[]},
				"accepted":true,"fulfilled":false,"expiration":"2024-03-11T12:00:00Z","deadlineToAccept":"2024-03-11T12:00:00Z"},
			"cargo": {"capacity":40,"units":0,"inventory":[]}
		}}`,
	})

	res, err := client.DeliverContract(context.Background(), DeliverCargoInput{
		ContractID: "c1", ShipSymbol: "MYAGENT-1", TradeSymbol: "IRON_ORE", Units: 5,
	})
	if err != nil {
		t.Fatalf("DeliverContract: %v", err)
	}
	if !res.Contract.Accepted || res.Cargo.Capacity != 40 {
		t.Fatalf("unexpected result %+v", res)
	}

	var sent map[string]any
	if err := json.Unmarshal([]byte(stub.last().Body), &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	want := map[string]any{"shipSymbol": "MYAGENT-1", "tradeSymbol": "IRON_ORE", "units": float64(5)}
	if diff := cmp.Diff(want, sent); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestClientRejectsInvalidInputWithoutRequest(t *testing.T) {
	client, stub := newStubClient(t, nil)

	if _, err := client.AcceptContract(context.Background(), AcceptContractInput{}); err == nil {
		t.Fatalf("expected validation error")
	}
	if err := client.SetFlightMode(context.Background(), "S-1", "WARP"); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(stub.requests) != 0 {
		t.Fatalf("expected no requests, got %d", len(stub.requests))
	}
}

func TestClientSetFlightModeDiscardsBody(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"PATCH /v2/my/ships/MYAGENT-1/nav": `not json at all`,
	})

	if err := client.SetFlightMode(context.Background(), "MYAGENT-1", FlightBurn); err != nil {
		t.Fatalf("SetFlightMode: %v", err)
	}
	if got := stub.last(); got.Method != http.MethodPatch || got.Body != `{"flightMode":"BURN"}` {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestClientWaypointsRepeatsTraits(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"GET /v2/systems/X1-DF55/waypoints": `{"data":[],"meta":{"total":0,"page":1,"limit":20}}`,
	})

	_, err := client.Waypoints(context.Background(), "X1-DF55", WaypointFilter{
		Pagination: Pagination{Limit: 20},
		Type:       WaypointPlanet,
		Traits:     []WaypointTraitSymbol{"MARKETPLACE", "SHIPYARD"},
	})
	if err != nil {
		t.Fatalf("Waypoints: %v", err)
	}
	want := "/v2/systems/X1-DF55/waypoints?limit=20&page=1&type=PLANET&traits=MARKETPLACE&traits=SHIPYARD"
	if got := stub.last().URI; got != want {
		t.Fatalf("unexpected request uri %q", got)
	}
}

func TestClientShipValidationFailureIsUnclassified(t *testing.T) {
	client, _ := newStubClient(t, map[string]string{
		"GET /v2/my/ships/MYAGENT-1": `{"data":{"symbol":"MYAGENT-1"}}`,
	})

	_, err := client.Ship(context.Background(), "MYAGENT-1")
	var rerr *fetcher.ResponseError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *fetcher.ResponseError, got %T", err)
	}
	if rerr.HasStatus() || rerr.Message != fetcher.GenericFailureMessage {
		t.Fatalf("expected unclassified error, got %+v", rerr)
	}
}

func TestCollectWalksPages(t *testing.T) {
	calls := 0
	list := func(_ context.Context, p Pagination) (Page[int], error) {
		calls++
		return Page[int]{Data: []int{p.Page}, Meta: Meta{Limit: 1, Page: p.Page, Total: 3}}, nil
	}

	all, err := Collect(context.Background(), 0, list)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, all); diff != "" {
		t.Fatalf("collect mismatch (-want +got):\n%s", diff)
	}

	calls = 0
	some, _ := Collect(context.Background(), 2, list)
	if len(some) != 2 || calls != 2 {
		t.Fatalf("expected 2 pages, got %v after %d calls", some, calls)
	}
}
