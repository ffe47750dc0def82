package spacetraders

import (
	"time"

	"github.com/Adda-Baaj/spacetraders-go/pkg/shape"
)

// TransactionType says which way goods moved in a market trade.
type TransactionType string

const (
	TransactionPurchase TransactionType = "PURCHASE"
	TransactionSell     TransactionType = "SELL"
)

// TradeGoodType says how a market deals in a good.
type TradeGoodType string

const (
	TradeGoodExport   TradeGoodType = "EXPORT"
	TradeGoodImport   TradeGoodType = "IMPORT"
	TradeGoodExchange TradeGoodType = "EXCHANGE"
)

// System is a star system and the waypoints inside it.
type System struct {
	Symbol       string           `json:"symbol"`
	SectorSymbol string           `json:"sectorSymbol"`
	Type         SystemType       `json:"type"`
	X            int              `json:"x"`
	Y            int              `json:"y"`
	Waypoints    []SystemWaypoint `json:"waypoints"`
	Factions     []FactionSymbol  `json:"factions"`
}

// SystemWaypoint is the summary of a waypoint listed inside a System.
type SystemWaypoint struct {
	Symbol   string       `json:"symbol"`
	Type     WaypointType `json:"type"`
	X        int          `json:"x"`
	Y        int          `json:"y"`
	Orbitals []string     `json:"orbitals"`
	Orbits   string       `json:"orbits,omitempty"`
}

// WaypointTrait describes one trait of a waypoint.
type WaypointTrait struct {
	Symbol      WaypointTraitSymbol `json:"symbol"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
}

// WaypointModifier is a temporary condition of a waypoint.
type WaypointModifier struct {
	Symbol      WaypointModifierSymbol `json:"symbol"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
}

// Chart records who first charted a waypoint.
type Chart struct {
	WaypointSymbol string     `json:"waypointSymbol,omitempty"`
	SubmittedBy    string     `json:"submittedBy,omitempty"`
	SubmittedOn    *time.Time `json:"submittedOn,omitempty"`
}

// Waypoint is a location inside a system.
type Waypoint struct {
	Symbol              string             `json:"symbol"`
	Type                WaypointType       `json:"type"`
	SystemSymbol        string             `json:"systemSymbol"`
	X                   int                `json:"x"`
	Y                   int                `json:"y"`
	Orbits              string             `json:"orbits,omitempty"`
	Orbitals            []string           `json:"orbitals"`
	Faction             *FactionSymbol     `json:"faction,omitempty"`
	Traits              []WaypointTrait    `json:"traits"`
	Modifiers           []WaypointModifier `json:"modifiers"`
	Chart               *Chart             `json:"chart,omitempty"`
	IsUnderConstruction bool               `json:"isUnderConstruction"`
}

// HasTrait reports whether the waypoint carries the trait.
func (w Waypoint) HasTrait(trait WaypointTraitSymbol) bool {
	for _, t := range w.Traits {
		if t.Symbol == trait {
			return true
		}
	}
	return false
}

// TradeGood is a good a market lists.
type TradeGood struct {
	Symbol      TradeSymbol `json:"symbol"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
}

// MarketTransaction is one purchase or sale at a market.
type MarketTransaction struct {
	WaypointSymbol string          `json:"waypointSymbol"`
	ShipSymbol     string          `json:"shipSymbol"`
	TradeSymbol    TradeSymbol     `json:"tradeSymbol"`
	Type           TransactionType `json:"type"`
	Units          int             `json:"units"`
	PricePerUnit   int             `json:"pricePerUnit"`
	TotalPrice     int             `json:"totalPrice"`
	Timestamp      time.Time       `json:"timestamp"`
}

// MarketTradeGood is a good with its current prices and supply.
type MarketTradeGood struct {
	Symbol        TradeSymbol   `json:"symbol"`
	Type          TradeGoodType `json:"type"`
	TradeVolume   int           `json:"tradeVolume"`
	Supply        SupplyLevel   `json:"supply"`
	Activity      ActivityLevel `json:"activity,omitempty"`
	PurchasePrice int           `json:"purchasePrice"`
	SellPrice     int           `json:"sellPrice"`
}

// Market lists what a waypoint trades. Transactions and TradeGoods are only
// reported while one of the agent's ships is present.
type Market struct {
	Symbol       string              `json:"symbol"`
	Exports      []TradeGood         `json:"exports"`
	Imports      []TradeGood         `json:"imports"`
	Exchange     []TradeGood         `json:"exchange"`
	Transactions []MarketTransaction `json:"transactions,omitempty"`
	TradeGoods   []MarketTradeGood   `json:"tradeGoods,omitempty"`
}

// ConstructionMaterial is one material a construction site needs.
type ConstructionMaterial struct {
	TradeSymbol TradeSymbol `json:"tradeSymbol"`
	Required    int         `json:"required"`
	Fulfilled   int         `json:"fulfilled"`
}

// Construction is a waypoint still being built.
type Construction struct {
	Symbol     string                 `json:"symbol"`
	Materials  []ConstructionMaterial `json:"materials"`
	IsComplete bool                   `json:"isComplete"`
}

// JumpGate lists the systems a jump gate links to.
type JumpGate struct {
	Symbol      string   `json:"symbol"`
	Connections []string `json:"connections"`
}

// ShipyardTransaction is one ship purchase at a shipyard.
type ShipyardTransaction struct {
	WaypointSymbol string    `json:"waypointSymbol"`
	ShipSymbol     string    `json:"shipSymbol,omitempty"`
	ShipType       ShipType  `json:"shipType"`
	Price          int       `json:"price"`
	AgentSymbol    string    `json:"agentSymbol"`
	Timestamp      time.Time `json:"timestamp"`
}

// ShipyardCrew is the crew a ship model needs.
type ShipyardCrew struct {
	Required int `json:"required"`
	Capacity int `json:"capacity"`
}

// ShipyardShip is a ship model offered for sale.
type ShipyardShip struct {
	Type          ShipType      `json:"type"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Supply        SupplyLevel   `json:"supply"`
	Activity      ActivityLevel `json:"activity,omitempty"`
	PurchasePrice int           `json:"purchasePrice"`
	Frame         Frame         `json:"frame"`
	Reactor       Reactor       `json:"reactor"`
	Engine        Engine        `json:"engine"`
	Modules       []Module      `json:"modules"`
	Mounts        []Mount       `json:"mounts"`
	Crew          ShipyardCrew  `json:"crew"`
}

// Shipyard lists the ship models a waypoint sells.
type Shipyard struct {
	Symbol           string                `json:"symbol"`
	ShipTypes        []ShipType            `json:"shipTypes"`
	Transactions     []ShipyardTransaction `json:"transactions,omitempty"`
	Ships            []ShipyardShip        `json:"ships,omitempty"`
	ModificationsFee int                   `json:"modificationsFee"`
}

var (
	transactionTypeShape = shape.Enum(TransactionPurchase, TransactionSell)
	tradeGoodTypeShape   = shape.Enum(TradeGoodExport, TradeGoodImport, TradeGoodExchange)

	orbitalsShape = shape.Default(shape.Array(symbolOf(waypointSymbolShape)), []string{})
)

// System, waypoint, market and shipyard shapes. Lists the server may omit
// default to empty slices.
var (
	SystemWaypointShape = shape.Object(
		shape.Prop("symbol", waypointSymbolShape, func(w *SystemWaypoint, v string) { w.Symbol = v }),
		shape.Prop("type", waypointTypeShape, func(w *SystemWaypoint, v WaypointType) { w.Type = v }),
		shape.Prop("x", shape.Int(), func(w *SystemWaypoint, v int) { w.X = v }),
		shape.Prop("y", shape.Int(), func(w *SystemWaypoint, v int) { w.Y = v }),
		shape.Prop("orbitals", orbitalsShape, func(w *SystemWaypoint, v []string) { w.Orbitals = v }),
		shape.Prop("orbits", shape.Default(waypointSymbolShape, ""), func(w *SystemWaypoint, v string) { w.Orbits = v }),
	)

	SystemShape = shape.Object(
		shape.Prop("symbol", systemSymbolShape, func(s *System, v string) { s.Symbol = v }),
		shape.Prop("sectorSymbol", shape.String(), func(s *System, v string) { s.SectorSymbol = v }),
		shape.Prop("type", systemTypeShape, func(s *System, v SystemType) { s.Type = v }),
		shape.Prop("x", shape.Int(), func(s *System, v int) { s.X = v }),
		shape.Prop("y", shape.Int(), func(s *System, v int) { s.Y = v }),
		shape.Prop("waypoints", shape.Array(SystemWaypointShape), func(s *System, v []SystemWaypoint) { s.Waypoints = v }),
		shape.Prop("factions", shape.Array(symbolOf(factionSymbolShape)), func(s *System, v []FactionSymbol) { s.Factions = v }),
	)

	WaypointTraitShape = shape.Object(
		shape.Prop("symbol", waypointTraitShape, func(t *WaypointTrait, v WaypointTraitSymbol) { t.Symbol = v }),
		shape.Prop("name", shape.String(), func(t *WaypointTrait, v string) { t.Name = v }),
		shape.Prop("description", shape.String(), func(t *WaypointTrait, v string) { t.Description = v }),
	)

	WaypointModifierShape = shape.Object(
		shape.Prop("symbol", waypointModifierShape, func(m *WaypointModifier, v WaypointModifierSymbol) { m.Symbol = v }),
		shape.Prop("name", shape.String(), func(m *WaypointModifier, v string) { m.Name = v }),
		shape.Prop("description", shape.String(), func(m *WaypointModifier, v string) { m.Description = v }),
	)

	ChartShape = shape.Object(
		shape.Prop("waypointSymbol", shape.Default(waypointSymbolShape, ""), func(c *Chart, v string) { c.WaypointSymbol = v }),
		shape.Prop("submittedBy", shape.Default(shape.String(), ""), func(c *Chart, v string) { c.SubmittedBy = v }),
		shape.Prop("submittedOn", shape.Optional(shape.Date()), func(c *Chart, v *time.Time) { c.SubmittedOn = v }),
	)

	WaypointShape = shape.Object(
		shape.Prop("symbol", waypointSymbolShape, func(w *Waypoint, v string) { w.Symbol = v }),
		shape.Prop("type", waypointTypeShape, func(w *Waypoint, v WaypointType) { w.Type = v }),
		shape.Prop("systemSymbol", systemSymbolShape, func(w *Waypoint, v string) { w.SystemSymbol = v }),
		shape.Prop("x", shape.Int(), func(w *Waypoint, v int) { w.X = v }),
		shape.Prop("y", shape.Int(), func(w *Waypoint, v int) { w.Y = v }),
		shape.Prop("orbits", shape.Default(waypointSymbolShape, ""), func(w *Waypoint, v string) { w.Orbits = v }),
		shape.Prop("orbitals", orbitalsShape, func(w *Waypoint, v []string) { w.Orbitals = v }),
		shape.Prop("faction", shape.Optional(symbolOf(factionSymbolShape)), func(w *Waypoint, v *FactionSymbol) { w.Faction = v }),
		shape.Prop("traits", shape.Array(WaypointTraitShape), func(w *Waypoint, v []WaypointTrait) { w.Traits = v }),
		shape.Prop("modifiers", shape.Default(shape.Array(WaypointModifierShape), []WaypointModifier{}), func(w *Waypoint, v []WaypointModifier) { w.Modifiers = v }),
		shape.Prop("chart", shape.Optional(ChartShape), func(w *Waypoint, v *Chart) { w.Chart = v }),
		shape.Prop("isUnderConstruction", shape.Bool(), func(w *Waypoint, v bool) { w.IsUnderConstruction = v }),
	)

	TradeGoodShape = shape.Object(
		shape.Prop("symbol", tradeSymbolShape, func(g *TradeGood, v TradeSymbol) { g.Symbol = v }),
		shape.Prop("name", shape.String(), func(g *TradeGood, v string) { g.Name = v }),
		shape.Prop("description", shape.String(), func(g *TradeGood, v string) { g.Description = v }),
	)

	MarketTransactionShape = shape.Object(
		shape.Prop("waypointSymbol", waypointSymbolShape, func(t *MarketTransaction, v string) { t.WaypointSymbol = v }),
		shape.Prop("shipSymbol", shape.String(), func(t *MarketTransaction, v string) { t.ShipSymbol = v }),
		shape.Prop("tradeSymbol", tradeSymbolShape, func(t *MarketTransaction, v TradeSymbol) { t.TradeSymbol = v }),
		shape.Prop("type", transactionTypeShape, func(t *MarketTransaction, v TransactionType) { t.Type = v }),
		shape.Prop("units", countShape, func(t *MarketTransaction, v int) { t.Units = v }),
		shape.Prop("pricePerUnit", countShape, func(t *MarketTransaction, v int) { t.PricePerUnit = v }),
		shape.Prop("totalPrice", countShape, func(t *MarketTransaction, v int) { t.TotalPrice = v }),
		shape.Prop("timestamp", shape.Date(), func(t *MarketTransaction, v time.Time) { t.Timestamp = v }),
	)

	MarketTradeGoodShape = shape.Object(
		shape.Prop("symbol", tradeSymbolShape, func(g *MarketTradeGood, v TradeSymbol) { g.Symbol = v }),
		shape.Prop("type", tradeGoodTypeShape, func(g *MarketTradeGood, v TradeGoodType) { g.Type = v }),
		shape.Prop("tradeVolume", countShape, func(g *MarketTradeGood, v int) { g.TradeVolume = v }),
		shape.Prop("supply", supplyLevelShape, func(g *MarketTradeGood, v SupplyLevel) { g.Supply = v }),
		shape.Prop("activity", shape.Default(activityShape, ""), func(g *MarketTradeGood, v ActivityLevel) { g.Activity = v }),
		shape.Prop("purchasePrice", countShape, func(g *MarketTradeGood, v int) { g.PurchasePrice = v }),
		shape.Prop("sellPrice", countShape, func(g *MarketTradeGood, v int) { g.SellPrice = v }),
	)

	MarketShape = shape.Object(
		shape.Prop("symbol", waypointSymbolShape, func(m *Market, v string) { m.Symbol = v }),
		shape.Prop("exports", shape.Array(TradeGoodShape), func(m *Market, v []TradeGood) { m.Exports = v }),
		shape.Prop("imports", shape.Array(TradeGoodShape), func(m *Market, v []TradeGood) { m.Imports = v }),
		shape.Prop("exchange", shape.Array(TradeGoodShape), func(m *Market, v []TradeGood) { m.Exchange = v }),
		shape.Prop("transactions", shape.Default(shape.Array(MarketTransactionShape), nil), func(m *Market, v []MarketTransaction) { m.Transactions = v }),
		shape.Prop("tradeGoods", shape.Default(shape.Array(MarketTradeGoodShape), nil), func(m *Market, v []MarketTradeGood) { m.TradeGoods = v }),
	)

	ConstructionMaterialShape = shape.Object(
		shape.Prop("tradeSymbol", tradeSymbolShape, func(m *ConstructionMaterial, v TradeSymbol) { m.TradeSymbol = v }),
		shape.Prop("required", countShape, func(m *ConstructionMaterial, v int) { m.Required = v }),
		shape.Prop("fulfilled", countShape, func(m *ConstructionMaterial, v int) { m.Fulfilled = v }),
	)

	ConstructionShape = shape.Object(
		shape.Prop("symbol", waypointSymbolShape, func(c *Construction, v string) { c.Symbol = v }),
		shape.Prop("materials", shape.Array(ConstructionMaterialShape), func(c *Construction, v []ConstructionMaterial) { c.Materials = v }),
		shape.Prop("isComplete", shape.Bool(), func(c *Construction, v bool) { c.IsComplete = v }),
	)

	JumpGateShape = shape.Object(
		shape.Prop("symbol", waypointSymbolShape, func(g *JumpGate, v string) { g.Symbol = v }),
		shape.Prop("connections", shape.Array(waypointSymbolShape), func(g *JumpGate, v []string) { g.Connections = v }),
	)

	ShipyardTransactionShape = shape.Object(
		shape.Prop("waypointSymbol", waypointSymbolShape, func(t *ShipyardTransaction, v string) { t.WaypointSymbol = v }),
		shape.Prop("shipSymbol", shape.Default(shape.String(), ""), func(t *ShipyardTransaction, v string) { t.ShipSymbol = v }),
		shape.Prop("shipType", shipTypeShape, func(t *ShipyardTransaction, v ShipType) { t.ShipType = v }),
		shape.Prop("price", countShape, func(t *ShipyardTransaction, v int) { t.Price = v }),
		shape.Prop("agentSymbol", shape.String(), func(t *ShipyardTransaction, v string) { t.AgentSymbol = v }),
		shape.Prop("timestamp", shape.Date(), func(t *ShipyardTransaction, v time.Time) { t.Timestamp = v }),
	)

	ShipyardCrewShape = shape.Object(
		shape.Prop("required", shape.Int(), func(c *ShipyardCrew, v int) { c.Required = v }),
		shape.Prop("capacity", shape.Int(), func(c *ShipyardCrew, v int) { c.Capacity = v }),
	)

	ShipyardShipShape = shape.Object(
		shape.Prop("type", shipTypeShape, func(s *ShipyardShip, v ShipType) { s.Type = v }),
		shape.Prop("name", shape.String(), func(s *ShipyardShip, v string) { s.Name = v }),
		shape.Prop("description", shape.String(), func(s *ShipyardShip, v string) { s.Description = v }),
		shape.Prop("supply", supplyLevelShape, func(s *ShipyardShip, v SupplyLevel) { s.Supply = v }),
		shape.Prop("activity", shape.Default(activityShape, ""), func(s *ShipyardShip, v ActivityLevel) { s.Activity = v }),
		shape.Prop("purchasePrice", countShape, func(s *ShipyardShip, v int) { s.PurchasePrice = v }),
		shape.Prop("frame", FrameShape, func(s *ShipyardShip, v Frame) { s.Frame = v }),
		shape.Prop("reactor", ReactorShape, func(s *ShipyardShip, v Reactor) { s.Reactor = v }),
		shape.Prop("engine", EngineShape, func(s *ShipyardShip, v Engine) { s.Engine = v }),
		shape.Prop("modules", shape.Array(ModuleShape), func(s *ShipyardShip, v []Module) { s.Modules = v }),
		shape.Prop("mounts", shape.Array(MountShape), func(s *ShipyardShip, v []Mount) { s.Mounts = v }),
		shape.Prop("crew", ShipyardCrewShape, func(s *ShipyardShip, v ShipyardCrew) { s.Crew = v }),
	)

	ShipyardShape = shape.Object(
		shape.Prop("symbol", waypointSymbolShape, func(s *Shipyard, v string) { s.Symbol = v }),
		shape.Prop("shipTypes", shape.Array(shape.Object(
			shape.Prop("type", shipTypeShape, func(dst *ShipType, v ShipType) { *dst = v }),
		)), func(s *Shipyard, v []ShipType) { s.ShipTypes = v }),
		shape.Prop("transactions", shape.Default(shape.Array(ShipyardTransactionShape), nil), func(s *Shipyard, v []ShipyardTransaction) { s.Transactions = v }),
		shape.Prop("ships", shape.Default(shape.Array(ShipyardShipShape), nil), func(s *Shipyard, v []ShipyardShip) { s.Ships = v }),
		shape.Prop("modificationsFee", countShape, func(s *Shipyard, v int) { s.ModificationsFee = v }),
	)
)
