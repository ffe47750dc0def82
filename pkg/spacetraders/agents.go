package spacetraders

import "github.com/Adda-Baaj/spacetraders-go/pkg/shape"

// Agent is either the public profile of an agent or, for the authenticated
// agent, a private record carrying its account id.
type Agent struct {
	AccountID       string        `json:"accountId,omitempty"`
	Symbol          string        `json:"symbol,omitempty"`
	Headquarters    string        `json:"headquarters,omitempty"`
	Credits         int           `json:"credits"`
	StartingFaction FactionSymbol `json:"startingFaction,omitempty"`
	ShipCount       int           `json:"shipCount"`
}

// Public reports whether the agent was decoded from a public profile.
func (a Agent) Public() bool { return a.Symbol != "" }

func publicAgentFields() []shape.Field[Agent] {
	return []shape.Field[Agent]{
		shape.Prop("symbol", shape.String(), func(a *Agent, v string) { a.Symbol = v }),
		shape.Prop("headquarters", waypointSymbolShape, func(a *Agent, v string) { a.Headquarters = v }),
		shape.Prop("credits", shape.Int(), func(a *Agent, v int) { a.Credits = v }),
		shape.Prop("startingFaction", factionSymbolShape, func(a *Agent, v FactionSymbol) { a.StartingFaction = v }),
		shape.Prop("shipCount", shape.Int(), func(a *Agent, v int) { a.ShipCount = v }),
	}
}

var (
	// PublicAgentShape decodes a public agent profile.
	PublicAgentShape = shape.Object(publicAgentFields()...)

	// PrivateAgentShape decodes the account-only agent record.
	PrivateAgentShape = shape.Object(
		shape.Prop("accountId", shape.String(), func(a *Agent, v string) { a.AccountID = v }),
	)

	// AgentShape accepts either agent form, preferring the public profile.
	AgentShape = shape.Union(PublicAgentShape, PrivateAgentShape)

	// AgentsShape decodes a list of agents.
	AgentsShape = shape.Array(AgentShape)

	// The authenticated agent carries both the profile and its account id.
	myAgentShape = shape.Union(
		shape.Object(append(publicAgentFields(),
			shape.Prop("accountId", shape.Default(shape.String(), ""), func(a *Agent, v string) { a.AccountID = v }),
		)...),
		PrivateAgentShape,
	)
)
