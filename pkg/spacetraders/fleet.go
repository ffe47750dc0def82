package spacetraders

import (
	"time"

	"github.com/Adda-Baaj/spacetraders-go/pkg/shape"
)

// ShipComponent is a part of a ship that can be damaged.
type ShipComponent string

const (
	ComponentFrame   ShipComponent = "FRAME"
	ComponentReactor ShipComponent = "REACTOR"
	ComponentEngine  ShipComponent = "ENGINE"
)

// SurveySize is how large a surveyed deposit is.
type SurveySize string

const (
	SurveySmall    SurveySize = "SMALL"
	SurveyModerate SurveySize = "MODERATE"
	SurveyLarge    SurveySize = "LARGE"
)

// Requirements are the power, crew and slots a part needs.
type Requirements struct {
	Power int `json:"power"`
	Crew  int `json:"crew"`
	Slots int `json:"slots"`
}

// Registration is the public identity of a ship.
type Registration struct {
	Name          string        `json:"name"`
	FactionSymbol FactionSymbol `json:"factionSymbol"`
	Role          ShipRole      `json:"role"`
}

// RouteWaypoint is an end of a ship's route.
type RouteWaypoint struct {
	Symbol       string       `json:"symbol"`
	Type         WaypointType `json:"type"`
	SystemSymbol string       `json:"systemSymbol"`
	X            int          `json:"x"`
	Y            int          `json:"y"`
}

// NavRoute is the current or last route of a ship.
type NavRoute struct {
	Destination   RouteWaypoint `json:"destination"`
	Origin        RouteWaypoint `json:"origin"`
	DepartureTime time.Time     `json:"departureTime"`
	ArrivalTime   time.Time     `json:"arrival"`
}

// Nav is the navigation state of a ship.
type Nav struct {
	SystemSymbol   string        `json:"systemSymbol"`
	WaypointSymbol string        `json:"waypointSymbol"`
	Route          *NavRoute     `json:"route,omitempty"`
	Status         ShipNavStatus `json:"status"`
	FlightMode     FlightMode    `json:"flightMode"`
}

// Crew is the crew on board a ship.
type Crew struct {
	Current  int          `json:"current"`
	Required int          `json:"required"`
	Capacity int          `json:"capacity"`
	Rotation CrewRotation `json:"rotation"`
	Morale   int          `json:"morale"`
	Wages    int          `json:"wages"`
}

// Frame is the hull of a ship.
type Frame struct {
	Symbol         ShipFrameSymbol `json:"symbol"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Condition      float64         `json:"condition"`
	Integrity      float64         `json:"integrity"`
	ModuleSlots    int             `json:"moduleSlots"`
	MountingPoints int             `json:"mountingPoints"`
	FuelCapacity   int             `json:"fuelCapacity"`
	Requirements   Requirements    `json:"requirements"`
}

// Reactor powers a ship's modules and mounts.
type Reactor struct {
	Symbol       ShipReactorSymbol `json:"symbol"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Condition    float64           `json:"condition"`
	Integrity    float64           `json:"integrity"`
	PowerOutput  int               `json:"powerOutput"`
	Requirements Requirements      `json:"requirements"`
}

// Engine sets how fast a ship travels.
type Engine struct {
	Symbol       ShipEngineSymbol `json:"symbol"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Condition    float64          `json:"condition"`
	Integrity    float64          `json:"integrity"`
	Speed        int              `json:"speed"`
	Requirements Requirements     `json:"requirements"`
}

// Cooldown is the time left before a ship can act again.
type Cooldown struct {
	ShipSymbol       string     `json:"shipSymbol"`
	TotalSeconds     int        `json:"totalSeconds"`
	RemainingSeconds int        `json:"remainingSeconds"`
	Expiration       *time.Time `json:"expiration,omitempty"`
}

// Module is an internal ship module such as a cargo hold.
type Module struct {
	Symbol       ShipModuleSymbol `json:"symbol"`
	Capacity     int              `json:"capacity,omitempty"`
	Range        int              `json:"range,omitempty"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Requirements Requirements     `json:"requirements"`
}

// Mount is an external ship mount such as a mining laser.
type Mount struct {
	Symbol       ShipMountSymbol `json:"symbol"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Strength     int             `json:"strength,omitempty"`
	Deposits     []TradeSymbol   `json:"deposits,omitempty"`
	Requirements Requirements    `json:"requirements"`
}

// CargoItem is one stack of goods in a hold.
type CargoItem struct {
	Symbol      TradeSymbol `json:"symbol"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Units       int         `json:"units"`
}

// Cargo is the hold of a ship.
type Cargo struct {
	Capacity  int         `json:"capacity"`
	Units     int         `json:"units"`
	Inventory []CargoItem `json:"inventory"`
}

// FuelConsumed is the fuel used by the last trip.
type FuelConsumed struct {
	Amount    int        `json:"amount"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Fuel is the fuel tank of a ship.
type Fuel struct {
	Current  int           `json:"current"`
	Capacity int           `json:"capacity"`
	Consumed *FuelConsumed `json:"consumed,omitempty"`
}

// Ship is a ship owned by the authenticated agent.
type Ship struct {
	Symbol       string       `json:"symbol"`
	Registration Registration `json:"registration"`
	Nav          Nav          `json:"nav"`
	Crew         Crew         `json:"crew"`
	Frame        Frame        `json:"frame"`
	Reactor      Reactor      `json:"reactor"`
	Engine       Engine       `json:"engine"`
	Cooldown     Cooldown     `json:"cooldown"`
	Modules      []Module     `json:"modules"`
	Mounts       []Mount      `json:"mounts"`
	Cargo        Cargo        `json:"cargo"`
	Fuel         Fuel         `json:"fuel"`
}

// ModificationTransaction records installing or removing a ship part.
type ModificationTransaction struct {
	WaypointSymbol string      `json:"waypointSymbol"`
	ShipSymbol     string      `json:"shipSymbol"`
	TradeSymbol    TradeSymbol `json:"tradeSymbol"`
	TotalPrice     int         `json:"totalPrice"`
	Timestamp      time.Time   `json:"timestamp"`
}

// ServiceTransaction records a scrap or repair of a ship.
type ServiceTransaction struct {
	WaypointSymbol string    `json:"waypointSymbol"`
	ShipSymbol     string    `json:"shipSymbol"`
	TotalPrice     int       `json:"totalPrice"`
	Timestamp      time.Time `json:"timestamp"`
}

// ConditionEvent is wear or damage taken by a ship component.
type ConditionEvent struct {
	Symbol      ShipConditionEvent `json:"symbol"`
	Component   ShipComponent      `json:"component"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
}

// Yield is what one extraction produced.
type Yield struct {
	Symbol TradeSymbol `json:"symbol"`
	Units  int         `json:"units"`
}

// Extraction is the result of mining or siphoning resources.
type Extraction struct {
	ShipSymbol string `json:"shipSymbol"`
	Yield      Yield  `json:"yield"`
}

// Survey is a signature used to target extractions at a deposit.
type Survey struct {
	Signature  string        `json:"signature"`
	Symbol     string        `json:"symbol"`
	Deposits   []TradeSymbol `json:"deposits"`
	Expiration time.Time     `json:"expiration"`
	Size       SurveySize    `json:"size"`
}

// ScannedSystem is a system seen by a sensor sweep.
type ScannedSystem struct {
	Symbol       string     `json:"symbol"`
	SectorSymbol string     `json:"sectorSymbol"`
	Type         SystemType `json:"type"`
	X            int        `json:"x"`
	Y            int        `json:"y"`
	Distance     int        `json:"distance"`
}

// ScannedWaypoint is a waypoint seen by a sensor sweep.
type ScannedWaypoint struct {
	Symbol       string          `json:"symbol"`
	Type         WaypointType    `json:"type"`
	SystemSymbol string          `json:"systemSymbol"`
	X            int             `json:"x"`
	Y            int             `json:"y"`
	Orbitals     []string        `json:"orbitals"`
	Faction      *FactionSymbol  `json:"faction,omitempty"`
	Traits       []WaypointTrait `json:"traits"`
	Chart        *Chart          `json:"chart,omitempty"`
}

// ScannedShip is another agent's ship seen by a sensor sweep.
type ScannedShip struct {
	Symbol       string            `json:"symbol"`
	Registration Registration      `json:"registration"`
	Nav          Nav               `json:"nav"`
	Frame        ShipFrameSymbol   `json:"frame,omitempty"`
	Reactor      ShipReactorSymbol `json:"reactor"`
	Engine       ShipEngineSymbol  `json:"engine"`
	Mounts       []ShipMountSymbol `json:"mounts"`
}

var (
	componentShape  = shape.Enum(ComponentFrame, ComponentReactor, ComponentEngine)
	surveySizeShape = shape.Enum(SurveySmall, SurveyModerate, SurveyLarge)

	conditionShape = shape.Between(shape.Number(), 0, 1)
	countShape     = shape.AtLeast(shape.Int(), 0)
)

// symbolOf reads the "symbol" field of a nested object, as used by scans that
// only report component symbols.
func symbolOf[T any](s shape.Shape[T]) shape.Shape[T] {
	return shape.Object(shape.Prop("symbol", s, func(dst *T, v T) { *dst = v }))
}

// Ship shapes. Optional parts decode to nil pointers when absent.
var (
	RequirementsShape = shape.Object(
		shape.Prop("power", shape.Default(shape.Int(), 0), func(r *Requirements, v int) { r.Power = v }),
		shape.Prop("crew", shape.Default(shape.Int(), 0), func(r *Requirements, v int) { r.Crew = v }),
		shape.Prop("slots", shape.Default(shape.Int(), 0), func(r *Requirements, v int) { r.Slots = v }),
	)

	RegistrationShape = shape.Object(
		shape.Prop("name", shape.String(), func(r *Registration, v string) { r.Name = v }),
		shape.Prop("factionSymbol", factionSymbolShape, func(r *Registration, v FactionSymbol) { r.FactionSymbol = v }),
		shape.Prop("role", shipRoleShape, func(r *Registration, v ShipRole) { r.Role = v }),
	)

	RouteWaypointShape = shape.Object(
		shape.Prop("symbol", waypointSymbolShape, func(w *RouteWaypoint, v string) { w.Symbol = v }),
		shape.Prop("type", waypointTypeShape, func(w *RouteWaypoint, v WaypointType) { w.Type = v }),
		shape.Prop("systemSymbol", systemSymbolShape, func(w *RouteWaypoint, v string) { w.SystemSymbol = v }),
		shape.Prop("x", shape.Int(), func(w *RouteWaypoint, v int) { w.X = v }),
		shape.Prop("y", shape.Int(), func(w *RouteWaypoint, v int) { w.Y = v }),
	)

	NavRouteShape = shape.Object(
		shape.Prop("destination", RouteWaypointShape, func(r *NavRoute, v RouteWaypoint) { r.Destination = v }),
		shape.Prop("origin", RouteWaypointShape, func(r *NavRoute, v RouteWaypoint) { r.Origin = v }),
		shape.Prop("departureTime", shape.Date(), func(r *NavRoute, v time.Time) { r.DepartureTime = v }),
		shape.Prop("arrival", shape.Date(), func(r *NavRoute, v time.Time) { r.ArrivalTime = v }),
	)

	NavShape = shape.Object(
		shape.Prop("systemSymbol", systemSymbolShape, func(n *Nav, v string) { n.SystemSymbol = v }),
		shape.Prop("waypointSymbol", waypointSymbolShape, func(n *Nav, v string) { n.WaypointSymbol = v }),
		shape.Prop("route", shape.Optional(NavRouteShape), func(n *Nav, v *NavRoute) { n.Route = v }),
		shape.Prop("status", navStatusShape, func(n *Nav, v ShipNavStatus) { n.Status = v }),
		shape.Prop("flightMode", shape.Default(flightModeShape, FlightCruise), func(n *Nav, v FlightMode) { n.FlightMode = v }),
	)

	CrewShape = shape.Object(
		shape.Prop("current", shape.Int(), func(c *Crew, v int) { c.Current = v }),
		shape.Prop("required", shape.Int(), func(c *Crew, v int) { c.Required = v }),
		shape.Prop("capacity", shape.Int(), func(c *Crew, v int) { c.Capacity = v }),
		shape.Prop("rotation", shape.Default(crewRotationShape, RotationStrict), func(c *Crew, v CrewRotation) { c.Rotation = v }),
		shape.Prop("morale", shape.Between(shape.Int(), 0, 100), func(c *Crew, v int) { c.Morale = v }),
		shape.Prop("wages", countShape, func(c *Crew, v int) { c.Wages = v }),
	)

	FrameShape = shape.Object(
		shape.Prop("symbol", frameSymbolShape, func(f *Frame, v ShipFrameSymbol) { f.Symbol = v }),
		shape.Prop("name", shape.String(), func(f *Frame, v string) { f.Name = v }),
		shape.Prop("description", shape.String(), func(f *Frame, v string) { f.Description = v }),
		shape.Prop("condition", conditionShape, func(f *Frame, v float64) { f.Condition = v }),
		shape.Prop("integrity", conditionShape, func(f *Frame, v float64) { f.Integrity = v }),
		shape.Prop("moduleSlots", shape.Int(), func(f *Frame, v int) { f.ModuleSlots = v }),
		shape.Prop("mountingPoints", shape.Int(), func(f *Frame, v int) { f.MountingPoints = v }),
		shape.Prop("fuelCapacity", shape.Int(), func(f *Frame, v int) { f.FuelCapacity = v }),
		shape.Prop("requirements", RequirementsShape, func(f *Frame, v Requirements) { f.Requirements = v }),
	)

	ReactorShape = shape.Object(
		shape.Prop("symbol", reactorSymbolShape, func(r *Reactor, v ShipReactorSymbol) { r.Symbol = v }),
		shape.Prop("name", shape.String(), func(r *Reactor, v string) { r.Name = v }),
		shape.Prop("description", shape.String(), func(r *Reactor, v string) { r.Description = v }),
		shape.Prop("condition", conditionShape, func(r *Reactor, v float64) { r.Condition = v }),
		shape.Prop("integrity", conditionShape, func(r *Reactor, v float64) { r.Integrity = v }),
		shape.Prop("powerOutput", shape.Int(), func(r *Reactor, v int) { r.PowerOutput = v }),
		shape.Prop("requirements", RequirementsShape, func(r *Reactor, v Requirements) { r.Requirements = v }),
	)

	EngineShape = shape.Object(
		shape.Prop("symbol", engineSymbolShape, func(e *Engine, v ShipEngineSymbol) { e.Symbol = v }),
		shape.Prop("name", shape.String(), func(e *Engine, v string) { e.Name = v }),
		shape.Prop("description", shape.String(), func(e *Engine, v string) { e.Description = v }),
		shape.Prop("condition", conditionShape, func(e *Engine, v float64) { e.Condition = v }),
		shape.Prop("integrity", conditionShape, func(e *Engine, v float64) { e.Integrity = v }),
		shape.Prop("speed", shape.Default(shape.Int(), 0), func(e *Engine, v int) { e.Speed = v }),
		shape.Prop("requirements", RequirementsShape, func(e *Engine, v Requirements) { e.Requirements = v }),
	)

	CooldownShape = shape.Object(
		shape.Prop("shipSymbol", shape.String(), func(c *Cooldown, v string) { c.ShipSymbol = v }),
		shape.Prop("totalSeconds", countShape, func(c *Cooldown, v int) { c.TotalSeconds = v }),
		shape.Prop("remainingSeconds", countShape, func(c *Cooldown, v int) { c.RemainingSeconds = v }),
		shape.Prop("expiration", shape.Optional(shape.Date()), func(c *Cooldown, v *time.Time) { c.Expiration = v }),
	)

	ModuleShape = shape.Object(
		shape.Prop("symbol", moduleSymbolShape, func(m *Module, v ShipModuleSymbol) { m.Symbol = v }),
		shape.Prop("capacity", shape.Default(shape.Int(), 0), func(m *Module, v int) { m.Capacity = v }),
		shape.Prop("range", shape.Default(shape.Int(), 0), func(m *Module, v int) { m.Range = v }),
		shape.Prop("name", shape.String(), func(m *Module, v string) { m.Name = v }),
		shape.Prop("description", shape.String(), func(m *Module, v string) { m.Description = v }),
		shape.Prop("requirements", RequirementsShape, func(m *Module, v Requirements) { m.Requirements = v }),
	)

	MountShape = shape.Object(
		shape.Prop("symbol", mountSymbolShape, func(m *Mount, v ShipMountSymbol) { m.Symbol = v }),
		shape.Prop("name", shape.String(), func(m *Mount, v string) { m.Name = v }),
		shape.Prop("description", shape.String(), func(m *Mount, v string) { m.Description = v }),
		shape.Prop("strength", shape.Default(shape.Int(), 0), func(m *Mount, v int) { m.Strength = v }),
		shape.Prop("deposits", shape.Default(shape.Array(tradeSymbolShape), nil), func(m *Mount, v []TradeSymbol) { m.Deposits = v }),
		shape.Prop("requirements", RequirementsShape, func(m *Mount, v Requirements) { m.Requirements = v }),
	)

	CargoItemShape = shape.Object(
		shape.Prop("symbol", tradeSymbolShape, func(c *CargoItem, v TradeSymbol) { c.Symbol = v }),
		shape.Prop("name", shape.String(), func(c *CargoItem, v string) { c.Name = v }),
		shape.Prop("description", shape.String(), func(c *CargoItem, v string) { c.Description = v }),
		shape.Prop("units", countShape, func(c *CargoItem, v int) { c.Units = v }),
	)

	CargoShape = shape.Object(
		shape.Prop("capacity", countShape, func(c *Cargo, v int) { c.Capacity = v }),
		shape.Prop("units", countShape, func(c *Cargo, v int) { c.Units = v }),
		shape.Prop("inventory", shape.Array(CargoItemShape), func(c *Cargo, v []CargoItem) { c.Inventory = v }),
	)

	FuelConsumedShape = shape.Object(
		shape.Prop("amount", shape.Int(), func(f *FuelConsumed, v int) { f.Amount = v }),
		shape.Prop("timestamp", shape.Optional(shape.Date()), func(f *FuelConsumed, v *time.Time) { f.Timestamp = v }),
	)

	FuelShape = shape.Object(
		shape.Prop("current", countShape, func(f *Fuel, v int) { f.Current = v }),
		shape.Prop("capacity", countShape, func(f *Fuel, v int) { f.Capacity = v }),
		shape.Prop("consumed", shape.Optional(FuelConsumedShape), func(f *Fuel, v *FuelConsumed) { f.Consumed = v }),
	)

	ShipShape = shape.Object(
		shape.Prop("symbol", shape.String(), func(s *Ship, v string) { s.Symbol = v }),
		shape.Prop("registration", RegistrationShape, func(s *Ship, v Registration) { s.Registration = v }),
		shape.Prop("nav", NavShape, func(s *Ship, v Nav) { s.Nav = v }),
		shape.Prop("crew", CrewShape, func(s *Ship, v Crew) { s.Crew = v }),
		shape.Prop("frame", FrameShape, func(s *Ship, v Frame) { s.Frame = v }),
		shape.Prop("reactor", ReactorShape, func(s *Ship, v Reactor) { s.Reactor = v }),
		shape.Prop("engine", EngineShape, func(s *Ship, v Engine) { s.Engine = v }),
		shape.Prop("cooldown", CooldownShape, func(s *Ship, v Cooldown) { s.Cooldown = v }),
		shape.Prop("modules", shape.Array(ModuleShape), func(s *Ship, v []Module) { s.Modules = v }),
		shape.Prop("mounts", shape.Array(MountShape), func(s *Ship, v []Mount) { s.Mounts = v }),
		shape.Prop("cargo", CargoShape, func(s *Ship, v Cargo) { s.Cargo = v }),
		shape.Prop("fuel", FuelShape, func(s *Ship, v Fuel) { s.Fuel = v }),
	)

	ModificationTransactionShape = shape.Object(
		shape.Prop("waypointSymbol", waypointSymbolShape, func(t *ModificationTransaction, v string) { t.WaypointSymbol = v }),
		shape.Prop("shipSymbol", shape.String(), func(t *ModificationTransaction, v string) { t.ShipSymbol = v }),
		shape.Prop("tradeSymbol", tradeSymbolShape, func(t *ModificationTransaction, v TradeSymbol) { t.TradeSymbol = v }),
		shape.Prop("totalPrice", countShape, func(t *ModificationTransaction, v int) { t.TotalPrice = v }),
		shape.Prop("timestamp", shape.Date(), func(t *ModificationTransaction, v time.Time) { t.Timestamp = v }),
	)

	// ServiceTransactionShape decodes both scrap and repair transactions.
	ServiceTransactionShape = shape.Object(
		shape.Prop("waypointSymbol", waypointSymbolShape, func(t *ServiceTransaction, v string) { t.WaypointSymbol = v }),
		shape.Prop("shipSymbol", shape.String(), func(t *ServiceTransaction, v string) { t.ShipSymbol = v }),
		shape.Prop("totalPrice", countShape, func(t *ServiceTransaction, v int) { t.TotalPrice = v }),
		shape.Prop("timestamp", shape.Date(), func(t *ServiceTransaction, v time.Time) { t.Timestamp = v }),
	)

	ConditionEventShape = shape.Object(
		shape.Prop("symbol", conditionEventShape, func(e *ConditionEvent, v ShipConditionEvent) { e.Symbol = v }),
		shape.Prop("component", componentShape, func(e *ConditionEvent, v ShipComponent) { e.Component = v }),
		shape.Prop("name", shape.String(), func(e *ConditionEvent, v string) { e.Name = v }),
		shape.Prop("description", shape.String(), func(e *ConditionEvent, v string) { e.Description = v }),
	)

	YieldShape = shape.Object(
		shape.Prop("symbol", tradeSymbolShape, func(y *Yield, v TradeSymbol) { y.Symbol = v }),
		shape.Prop("units", countShape, func(y *Yield, v int) { y.Units = v }),
	)

	// ExtractionShape decodes both extraction and siphon results.
	ExtractionShape = shape.Object(
		shape.Prop("shipSymbol", shape.String(), func(e *Extraction, v string) { e.ShipSymbol = v }),
		shape.Prop("yield", YieldShape, func(e *Extraction, v Yield) { e.Yield = v }),
	)

	SurveyShape = shape.Object(
		shape.Prop("signature", shape.String(), func(s *Survey, v string) { s.Signature = v }),
		shape.Prop("symbol", waypointSymbolShape, func(s *Survey, v string) { s.Symbol = v }),
		shape.Prop("deposits", shape.Array(symbolOf(tradeSymbolShape)), func(s *Survey, v []TradeSymbol) { s.Deposits = v }),
		shape.Prop("expiration", shape.Date(), func(s *Survey, v time.Time) { s.Expiration = v }),
		shape.Prop("size", surveySizeShape, func(s *Survey, v SurveySize) { s.Size = v }),
	)

	ScannedSystemShape = shape.Object(
		shape.Prop("symbol", systemSymbolShape, func(s *ScannedSystem, v string) { s.Symbol = v }),
		shape.Prop("sectorSymbol", shape.String(), func(s *ScannedSystem, v string) { s.SectorSymbol = v }),
		shape.Prop("type", systemTypeShape, func(s *ScannedSystem, v SystemType) { s.Type = v }),
		shape.Prop("x", shape.Int(), func(s *ScannedSystem, v int) { s.X = v }),
		shape.Prop("y", shape.Int(), func(s *ScannedSystem, v int) { s.Y = v }),
		shape.Prop("distance", shape.Int(), func(s *ScannedSystem, v int) { s.Distance = v }),
	)

	ScannedWaypointShape = shape.Object(
		shape.Prop("symbol", waypointSymbolShape, func(w *ScannedWaypoint, v string) { w.Symbol = v }),
		shape.Prop("type", waypointTypeShape, func(w *ScannedWaypoint, v WaypointType) { w.Type = v }),
		shape.Prop("systemSymbol", systemSymbolShape, func(w *ScannedWaypoint, v string) { w.SystemSymbol = v }),
		shape.Prop("x", shape.Int(), func(w *ScannedWaypoint, v int) { w.X = v }),
		shape.Prop("y", shape.Int(), func(w *ScannedWaypoint, v int) { w.Y = v }),
		shape.Prop("orbitals", orbitalsShape, func(w *ScannedWaypoint, v []string) { w.Orbitals = v }),
		shape.Prop("faction", shape.Optional(symbolOf(factionSymbolShape)), func(w *ScannedWaypoint, v *FactionSymbol) { w.Faction = v }),
		shape.Prop("traits", shape.Array(WaypointTraitShape), func(w *ScannedWaypoint, v []WaypointTrait) { w.Traits = v }),
		shape.Prop("chart", shape.Optional(ChartShape), func(w *ScannedWaypoint, v *Chart) { w.Chart = v }),
	)

	ScannedShipShape = shape.Object(
		shape.Prop("symbol", shape.String(), func(s *ScannedShip, v string) { s.Symbol = v }),
		shape.Prop("registration", RegistrationShape, func(s *ScannedShip, v Registration) { s.Registration = v }),
		shape.Prop("nav", NavShape, func(s *ScannedShip, v Nav) { s.Nav = v }),
		shape.Prop("frame", shape.Default(symbolOf(frameSymbolShape), ""), func(s *ScannedShip, v ShipFrameSymbol) { s.Frame = v }),
		shape.Prop("reactor", symbolOf(reactorSymbolShape), func(s *ScannedShip, v ShipReactorSymbol) { s.Reactor = v }),
		shape.Prop("engine", symbolOf(engineSymbolShape), func(s *ScannedShip, v ShipEngineSymbol) { s.Engine = v }),
		shape.Prop("mounts", shape.Default(shape.Array(symbolOf(mountSymbolShape)), nil), func(s *ScannedShip, v []ShipMountSymbol) { s.Mounts = v }),
	)
)
