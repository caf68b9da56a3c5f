package engine

import (
	"github.com/statforge/statforge/internal/entities"
)

// ResolveStatInput contains one character, one attribute, and the
// catalog snapshots the resolution runs against.
type ResolveStatInput struct {
	Character *entities.Character
	Attribute string

	// Species referenced by the character, in reference order. Entries
	// the caller could not resolve are simply absent; the engine never
	// checks referential integrity.
	Species []*entities.Species

	// Bonuses is the bonus catalog keyed by id. Assignments pointing
	// at unknown ids are skipped.
	Bonuses map[string]*entities.Bonus

	// RankTable classifies the result. Empty falls back to the default
	// table.
	RankTable entities.RankTable
}

// ResolveStatOutput is one resolved attribute.
type ResolveStatOutput struct {
	Base      float64
	Effective float64
	Band      entities.RankBand
}

// ResolveAllStatsInput resolves every attribute on a character sheet.
type ResolveAllStatsInput struct {
	Character *entities.Character
	Species   []*entities.Species
	Bonuses   map[string]*entities.Bonus
	RankTable entities.RankTable

	// ExtraAttributes extends the resolved key set beyond the core
	// attributes and the keys already on the sheet.
	ExtraAttributes []string
}

// ResolvedStat pairs an attribute key with its resolution result.
type ResolvedStat struct {
	Attribute string
	Base      float64
	Effective float64
	Band      entities.RankBand
}

// ResolveAllStatsOutput is the full effective sheet, in stable
// attribute order (core set first, then extras, then sheet-only keys).
type ResolveAllStatsOutput struct {
	Stats []ResolvedStat

	// MindEnabled reports whether every referenced species allows the
	// derived Mind attribute (true with zero species).
	MindEnabled bool
}

// DeriveEquivalenciesInput projects resolved attributes through the
// global table with every referenced species' table merged on top.
type DeriveEquivalenciesInput struct {
	// EffectiveStats maps attribute key to effective value. Attributes
	// absent from the map derive as 0.
	EffectiveStats map[string]float64

	Global  entities.EquivalencyTable
	Species []*entities.Species
}

// DeriveEquivalenciesOutput lists derived metrics sorted by
// (category, attribute, metric).
type DeriveEquivalenciesOutput struct {
	Metrics []entities.DerivedMetric
}
