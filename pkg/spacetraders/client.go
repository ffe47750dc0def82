package spacetraders

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Adda-Baaj/spacetraders-go/pkg/fetcher"
	"github.com/Adda-Baaj/spacetraders-go/pkg/shape"
)

// Client exposes SpaceTraders endpoints as typed calls. Errors are always
// *fetcher.ResponseError, except for input validation failures which are
// reported before any request is sent.
type Client struct {
	exec *fetcher.Executor
}

// NewClient wraps an executor pointed at the API root.
func NewClient(exec *fetcher.Executor) (*Client, error) {
	if exec == nil {
		return nil, fmt.Errorf("spacetraders: executor must not be nil")
	}
	return &Client{exec: exec}, nil
}

// WaypointFilter narrows a waypoint listing.
type WaypointFilter struct {
	Pagination
	Type   WaypointType
	Traits []WaypointTraitSymbol
}

func (f WaypointFilter) query() fetcher.Pairs {
	p := f.Pagination.Normalize()
	q := fetcher.Pairs{
		{"limit", strconv.Itoa(p.Limit)},
		{"page", strconv.Itoa(p.Page)},
	}
	if f.Type != "" {
		q = append(q, [2]string{"type", string(f.Type)})
	}
	for _, t := range f.Traits {
		q = append(q, [2]string{"traits", string(t)})
	}
	return q
}

// ContractResult is returned by contract state changes.
type ContractResult struct {
	Agent    Agent    `json:"agent"`
	Contract Contract `json:"contract"`
}

// DeliveryResult is returned after delivering cargo to a contract.
type DeliveryResult struct {
	Contract Contract `json:"contract"`
	Cargo    Cargo    `json:"cargo"`
}

var (
	contractResultShape = ResponseOf(shape.Object(
		shape.Prop("agent", AgentShape, func(r *ContractResult, v Agent) { r.Agent = v }),
		shape.Prop("contract", ContractShape, func(r *ContractResult, v Contract) { r.Contract = v }),
	))
	deliveryResultShape = ResponseOf(shape.Object(
		shape.Prop("contract", ContractShape, func(r *DeliveryResult, v Contract) { r.Contract = v }),
		shape.Prop("cargo", CargoShape, func(r *DeliveryResult, v Cargo) { r.Cargo = v }),
	))
	navResultShape = ResponseOf(shape.Object(
		shape.Prop("nav", NavShape, func(n *Nav, v Nav) { *n = v }),
	))
)

func get[T any](ctx context.Context, c *Client, path string, q fetcher.Query, s shape.Shape[T]) (T, error) {
	return fetcher.Fetch(ctx, c.exec, fetcher.Request{Path: path, Query: q}, s)
}

func post[T any](ctx context.Context, c *Client, path string, body any, s shape.Shape[T]) (T, error) {
	return fetcher.Fetch(ctx, c.exec, fetcher.Request{Path: path, Method: http.MethodPost, Body: body}, s)
}

func seg(s string) string { return url.PathEscape(s) }

// MyAgent returns the authenticated agent.
func (c *Client) MyAgent(ctx context.Context) (Agent, error) {
	return get(ctx, c, "my/agent", nil, ResponseOf(myAgentShape))
}

// Agent returns the public profile of an agent.
func (c *Client) Agent(ctx context.Context, symbol string) (Agent, error) {
	return get(ctx, c, "agents/"+seg(symbol), nil, ResponseOf(PublicAgentShape))
}

// Agents lists public agents, one page at a time.
func (c *Client) Agents(ctx context.Context, p Pagination) (Page[Agent], error) {
	return get(ctx, c, "agents", p.Query(), PageOf(AgentShape))
}

// Contracts lists the contracts offered to the authenticated agent.
func (c *Client) Contracts(ctx context.Context, p Pagination) (Page[Contract], error) {
	return get(ctx, c, "my/contracts", p.Query(), PageOf(ContractShape))
}

// Contract returns one of the agent's contracts by id.
func (c *Client) Contract(ctx context.Context, id string) (Contract, error) {
	return get(ctx, c, "my/contracts/"+seg(id), nil, ResponseOf(ContractShape))
}

// AcceptContract accepts a contract and returns the updated agent and contract.
// The input is validated before any request is sent.
func (c *Client) AcceptContract(ctx context.Context, in AcceptContractInput) (ContractResult, error) {
	if err := in.Validate(); err != nil {
		return ContractResult{}, fmt.Errorf("accept contract: %w", err)
	}
	return post(ctx, c, "my/contracts/"+seg(in.ContractID)+"/accept", nil, contractResultShape)
}

// DeliverContract moves cargo from a docked ship into a contract.
func (c *Client) DeliverContract(ctx context.Context, in DeliverCargoInput) (DeliveryResult, error) {
	if err := in.Validate(); err != nil {
		return DeliveryResult{}, fmt.Errorf("deliver contract: %w", err)
	}
	return post(ctx, c, "my/contracts/"+seg(in.ContractID)+"/deliver", in, deliveryResultShape)
}

// FulfillContract completes a contract whose deliveries are all met.
func (c *Client) FulfillContract(ctx context.Context, id string) (ContractResult, error) {
	if err := (AcceptContractInput{ContractID: id}).Validate(); err != nil {
		return ContractResult{}, fmt.Errorf("fulfill contract: %w", err)
	}
	return post(ctx, c, "my/contracts/"+seg(id)+"/fulfill", nil, contractResultShape)
}

// Factions lists the factions of the universe.
func (c *Client) Factions(ctx context.Context, p Pagination) (Page[Faction], error) {
	return get(ctx, c, "factions", p.Query(), PageOf(FactionShape))
}

// Faction returns a single faction.
func (c *Client) Faction(ctx context.Context, symbol FactionSymbol) (Faction, error) {
	return get(ctx, c, "factions/"+seg(string(symbol)), nil, ResponseOf(FactionShape))
}

// Ships lists the ships owned by the authenticated agent.
func (c *Client) Ships(ctx context.Context, p Pagination) (Page[Ship], error) {
	return get(ctx, c, "my/ships", p.Query(), PageOf(ShipShape))
}

// Ship returns one owned ship by symbol.
func (c *Client) Ship(ctx context.Context, symbol string) (Ship, error) {
	return get(ctx, c, "my/ships/"+seg(symbol), nil, ResponseOf(ShipShape))
}

// OrbitShip moves a docked ship into orbit and returns its new nav state.
func (c *Client) OrbitShip(ctx context.Context, symbol string) (Nav, error) {
	return post(ctx, c, "my/ships/"+seg(symbol)+"/orbit", nil, navResultShape)
}

// DockShip docks an orbiting ship and returns its new nav state.
func (c *Client) DockShip(ctx context.Context, symbol string) (Nav, error) {
	return post(ctx, c, "my/ships/"+seg(symbol)+"/dock", nil, navResultShape)
}

// SetFlightMode changes the flight mode of a ship. The response body is not
// needed and is never parsed.
func (c *Client) SetFlightMode(ctx context.Context, symbol string, mode FlightMode) error {
	if _, err := flightModeShape.Validate(string(mode)); err != nil {
		return fmt.Errorf("set flight mode: %w", err)
	}
	return fetcher.Send(ctx, c.exec, fetcher.Request{
		Path:   "my/ships/" + seg(symbol) + "/nav",
		Method: http.MethodPatch,
		Body:   map[string]FlightMode{"flightMode": mode},
	})
}

// Systems lists star systems.
func (c *Client) Systems(ctx context.Context, p Pagination) (Page[System], error) {
	return get(ctx, c, "systems", p.Query(), PageOf(SystemShape))
}

// System returns a star system by symbol.
func (c *Client) System(ctx context.Context, symbol string) (System, error) {
	return get(ctx, c, "systems/"+seg(symbol), nil, ResponseOf(SystemShape))
}

// Waypoints lists the waypoints of system, narrowed by f.
func (c *Client) Waypoints(ctx context.Context, system string, f WaypointFilter) (Page[Waypoint], error) {
	return get(ctx, c, "systems/"+seg(system)+"/waypoints", f.query(), PageOf(WaypointShape))
}

// Waypoint returns one waypoint of system.
func (c *Client) Waypoint(ctx context.Context, system, waypoint string) (Waypoint, error) {
	return get(ctx, c, waypointPath(system, waypoint), nil, ResponseOf(WaypointShape))
}

// Market returns the market at waypoint.
func (c *Client) Market(ctx context.Context, system, waypoint string) (Market, error) {
	return get(ctx, c, waypointPath(system, waypoint)+"/market", nil, ResponseOf(MarketShape))
}

// Shipyard returns the shipyard at waypoint.
func (c *Client) Shipyard(ctx context.Context, system, waypoint string) (Shipyard, error) {
	return get(ctx, c, waypointPath(system, waypoint)+"/shipyard", nil, ResponseOf(ShipyardShape))
}

// JumpGate returns the connections of the jump gate at waypoint.
func (c *Client) JumpGate(ctx context.Context, system, waypoint string) (JumpGate, error) {
	return get(ctx, c, waypointPath(system, waypoint)+"/jump-gate", nil, ResponseOf(JumpGateShape))
}

// Construction returns the construction site at waypoint.
func (c *Client) Construction(ctx context.Context, system, waypoint string) (Construction, error) {
	return get(ctx, c, waypointPath(system, waypoint)+"/construction", nil, ResponseOf(ConstructionShape))
}

func waypointPath(system, waypoint string) string {
	return "systems/" + seg(system) + "/waypoints/" + seg(waypoint)
}

// SystemOf derives the system symbol from a waypoint symbol such as
// "X1-DF55-20250Z", which lives in system "X1-DF55".
func SystemOf(waypoint string) string {
	dashes := 0
	for i := 0; i < len(waypoint); i++ {
		if waypoint[i] == '-' {
			dashes++
			if dashes == 2 {
				return waypoint[:i]
			}
		}
	}
	return waypoint
}

// Collect walks every page of a list endpoint, stopping after maxPages pages
// when maxPages is positive.
func Collect[T any](ctx context.Context, maxPages int, list func(context.Context, Pagination) (Page[T], error)) ([]T, error) {
	var out []T
	p := Pagination{Limit: maxPageLimit, Page: 1}
	for {
		page, err := list(ctx, p)
		if err != nil {
			return out, err
		}
		out = append(out, page.Data...)
		if len(page.Data) == 0 || p.Page >= page.Meta.Pages() {
			return out, nil
		}
		if maxPages > 0 && p.Page >= maxPages {
			return out, nil
		}
		p.Page++
	}
}
