// Package engine defines the stat resolution engine interface. The
// engine is a pure computation layer: every call is synchronous,
// side-effect free, and operates only on the catalog snapshots it is
// handed. Callers own freshness; the engine is indifferent to it.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/statforge/statforge/internal/engine Engine

import (
	"context"

	"github.com/statforge/statforge/internal/entities"
)

// Engine computes effective stats, rank classifications, and derived
// flavor metrics from immutable entity snapshots.
type Engine interface {
	// ResolveStat computes one effective attribute value: base value,
	// then species modifiers, then bonus modifiers, each stage an
	// affine transform applied in that fixed order.
	ResolveStat(ctx context.Context, input *ResolveStatInput) (*ResolveStatOutput, error)

	// ResolveAllStats computes the full effective sheet for a
	// character, including the derived Mind attribute gated by the
	// species allow-rule.
	ResolveAllStats(ctx context.Context, input *ResolveAllStatsInput) (*ResolveAllStatsOutput, error)

	// DeriveEquivalencies projects effective attributes through the
	// merged (global + per-species) equivalency table.
	DeriveEquivalencies(ctx context.Context, input *DeriveEquivalenciesInput) (*DeriveEquivalenciesOutput, error)

	// ClassifyStat maps a numeric value to its rank band. Never fails;
	// malformed tables fall back to the highest band.
	ClassifyStat(table entities.RankTable, value float64) entities.RankBand

	// ComputeMind derives the Mind attribute from intelligence and
	// wisdom. Species eligibility is the caller's concern.
	ComputeMind(intelligence, wisdom float64) float64

	// LookupBaseValue reads a base attribute value from a stats map,
	// matching the key case- and diacritic-insensitively. Missing
	// attributes read 0.
	LookupBaseValue(stats map[string]entities.AttributeValue, attribute string) float64

	// SkillTagValue evaluates a skill's linear percentage-tag formula
	// at the given level.
	SkillTagValue(level int32, progression *entities.TagProgression) float64

	// SkillTieredDamage evaluates a skill's tiered damage formula at
	// the given level.
	SkillTieredDamage(level int32, progression *entities.DamageProgression) float64
}
