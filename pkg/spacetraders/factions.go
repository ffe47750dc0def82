package spacetraders

import "github.com/Adda-Baaj/spacetraders-go/pkg/shape"

// FactionTrait describes one trait of a faction.
type FactionTrait struct {
	Symbol      FactionTraitSymbol `json:"symbol"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
}

// Faction is a playable or non-playable faction.
type Faction struct {
	Symbol       FactionSymbol  `json:"symbol"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Headquarters string         `json:"headquarters"`
	Traits       []FactionTrait `json:"traits"`
	IsRecruiting bool           `json:"isRecruiting"`
}

// Faction shapes.
var (
	FactionTraitShape = shape.Object(
		shape.Prop("symbol", factionTraitShape, func(t *FactionTrait, v FactionTraitSymbol) { t.Symbol = v }),
		shape.Prop("name", shape.String(), func(t *FactionTrait, v string) { t.Name = v }),
		shape.Prop("description", shape.String(), func(t *FactionTrait, v string) { t.Description = v }),
	)

	FactionShape = shape.Object(
		shape.Prop("symbol", factionSymbolShape, func(f *Faction, v FactionSymbol) { f.Symbol = v }),
		shape.Prop("name", shape.String(), func(f *Faction, v string) { f.Name = v }),
		shape.Prop("description", shape.String(), func(f *Faction, v string) { f.Description = v }),
		// Some factions have no headquarters yet.
		shape.Prop("headquarters", shape.Default(shape.String(), ""), func(f *Faction, v string) { f.Headquarters = v }),
		shape.Prop("traits", shape.Array(FactionTraitShape), func(f *Faction, v []FactionTrait) { f.Traits = v }),
		shape.Prop("isRecruiting", shape.Bool(), func(f *Faction, v bool) { f.IsRecruiting = v }),
	)
)
