package spacetraders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Adda-Baaj/spacetraders-go/pkg/shape"
)

// DeliverGood is one delivery a contract asks for.
type DeliverGood struct {
	TradeSymbol       TradeSymbol `json:"tradeSymbol"`
	DestinationSymbol string      `json:"destinationSymbol"`
	UnitsRequired     int         `json:"unitsRequired"`
	UnitsFulfilled    int         `json:"unitsFulfilled"`
}

// Remaining returns the units still to deliver.
func (g DeliverGood) Remaining() int {
	if g.UnitsFulfilled >= g.UnitsRequired {
		return 0
	}
	return g.UnitsRequired - g.UnitsFulfilled
}

// Payment is paid out in two parts, on accept and on fulfillment.
type Payment struct {
	OnAccepted  int `json:"onAccepted"`
	OnFulfilled int `json:"onFulfilled"`
}

// Terms are what a contract requires and pays.
type Terms struct {
	Deadline time.Time     `json:"deadline"`
	Payment  Payment       `json:"payment"`
	Deliver  []DeliverGood `json:"deliver"`
}

// Contract is work offered by a faction to an agent.
type Contract struct {
	ID               string        `json:"id"`
	FactionSymbol    FactionSymbol `json:"factionSymbol"`
	Type             ContractType  `json:"type"`
	Terms            Terms         `json:"terms"`
	Accepted         bool          `json:"accepted"`
	Fulfilled        bool          `json:"fulfilled"`
	Expiration       time.Time     `json:"expiration"`
	DeadlineToAccept time.Time     `json:"deadlineToAccept"`
}

// AcceptContractInput names the contract to accept.
type AcceptContractInput struct {
	ContractID string `json:"contractId"`
}

// Validate checks that a contract id is present.
func (in AcceptContractInput) Validate() error {
	if strings.TrimSpace(in.ContractID) == "" {
		return errors.New("contract id is required")
	}
	return nil
}

// DeliverCargoInput moves cargo from a docked ship into a contract.
type DeliverCargoInput struct {
	ContractID  string      `json:"-"`
	ShipSymbol  string      `json:"shipSymbol"`
	TradeSymbol TradeSymbol `json:"tradeSymbol"`
	Units       int         `json:"units"`
}

// Validate reports every missing or malformed field at once.
func (in DeliverCargoInput) Validate() error {
	var errs []error
	if strings.TrimSpace(in.ContractID) == "" {
		errs = append(errs, errors.New("contract id is required"))
	}
	if strings.TrimSpace(in.ShipSymbol) == "" {
		errs = append(errs, errors.New("ship symbol is required"))
	}
	if _, err := tradeSymbolShape.Validate(string(in.TradeSymbol)); err != nil {
		errs = append(errs, fmt.Errorf("trade symbol: %w", err))
	}
	if in.Units <= 0 {
		errs = append(errs, fmt.Errorf("units must be positive, got %d", in.Units))
	}
	return errors.Join(errs...)
}

// Contract shapes. Dates are coerced from RFC3339 strings.
var (
	DeliverGoodShape = shape.Object(
		shape.Prop("tradeSymbol", tradeSymbolShape, func(g *DeliverGood, v TradeSymbol) { g.TradeSymbol = v }),
		shape.Prop("destinationSymbol", waypointSymbolShape, func(g *DeliverGood, v string) { g.DestinationSymbol = v }),
		shape.Prop("unitsRequired", shape.Int(), func(g *DeliverGood, v int) { g.UnitsRequired = v }),
		shape.Prop("unitsFulfilled", shape.Int(), func(g *DeliverGood, v int) { g.UnitsFulfilled = v }),
	)

	PaymentShape = shape.Object(
		shape.Prop("onAccepted", shape.Int(), func(p *Payment, v int) { p.OnAccepted = v }),
		shape.Prop("onFulfilled", shape.Int(), func(p *Payment, v int) { p.OnFulfilled = v }),
	)

	TermsShape = shape.Object(
		shape.Prop("deadline", shape.Date(), func(t *Terms, v time.Time) { t.Deadline = v }),
		shape.Prop("payment", PaymentShape, func(t *Terms, v Payment) { t.Payment = v }),
		shape.Prop("deliver", shape.Default(shape.Array(DeliverGoodShape), []DeliverGood{}), func(t *Terms, v []DeliverGood) { t.Deliver = v }),
	)

	ContractShape = shape.Object(
		shape.Prop("id", shape.String(), func(c *Contract, v string) { c.ID = v }),
		shape.Prop("factionSymbol", factionSymbolShape, func(c *Contract, v FactionSymbol) { c.FactionSymbol = v }),
		shape.Prop("type", contractTypeShape, func(c *Contract, v ContractType) { c.Type = v }),
		shape.Prop("terms", TermsShape, func(c *Contract, v Terms) { c.Terms = v }),
		shape.Prop("accepted", shape.Bool(), func(c *Contract, v bool) { c.Accepted = v }),
		shape.Prop("fulfilled", shape.Bool(), func(c *Contract, v bool) { c.Fulfilled = v }),
		shape.Prop("expiration", shape.Date(), func(c *Contract, v time.Time) { c.Expiration = v }),
		shape.Prop("deadlineToAccept", shape.Date(), func(c *Contract, v time.Time) { c.DeadlineToAccept = v }),
	)
)
