package stacking

import (
	"context"
	"math"
	"sort"

	"github.com/statforge/statforge/internal/engine"
	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
)

// ResolveStat runs the two-stage resolution pipeline for one attribute:
//
//  1. read the stored base value (absent attribute reads as 0)
//  2. apply species modifiers as one affine transform
//  3. apply bonus modifiers as a second, independent affine transform
//
// Bonuses never compound inside the species formula; they always apply
// to the species-adjusted intermediate. The final value floors at 0.
func (e *Engine) ResolveStat(ctx context.Context, input *engine.ResolveStatInput) (*engine.ResolveStatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if input.Attribute == "" {
		return nil, errors.InvalidArgument("attribute is required")
	}

	effective := e.resolveValue(input.Character, input.Attribute, input.Species, input.Bonuses)

	return &engine.ResolveStatOutput{
		Base:      input.Character.BaseValue(input.Attribute),
		Effective: effective,
		Band:      e.ClassifyStat(input.RankTable, effective),
	}, nil
}

// ResolveAllStats resolves the whole sheet. Mind is recomputed from the
// base Intelligence and Wisdom values when every referenced species
// allows it (zero species defaults to allowed), and forced to 0
// otherwise; either way it then runs through the same two-stage
// pipeline as any other attribute.
func (e *Engine) ResolveAllStats(ctx context.Context, input *engine.ResolveAllStatsInput) (*engine.ResolveAllStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	c := input.Character
	mindEnabled := true
	for _, sp := range input.Species {
		if sp != nil && !sp.AllowsMind {
			mindEnabled = false
			break
		}
	}

	mindBase := 0.0
	if mindEnabled {
		mindBase = e.ComputeMind(
			e.LookupBaseValue(c.Stats, entities.AttributeIntelligence),
			e.LookupBaseValue(c.Stats, entities.AttributeWisdom),
		)
	}

	keys := attributeOrder(c, input.ExtraAttributes)
	stats := make([]engine.ResolvedStat, 0, len(keys))
	for _, key := range keys {
		base := c.BaseValue(key)
		if key == entities.AttributeMind {
			base = mindBase
		}
		effective := e.resolveFrom(base, key, c, input.Species, input.Bonuses)
		stats = append(stats, engine.ResolvedStat{
			Attribute: key,
			Base:      base,
			Effective: effective,
			Band:      e.ClassifyStat(input.RankTable, effective),
		})
	}

	return &engine.ResolveAllStatsOutput{
		Stats:       stats,
		MindEnabled: mindEnabled,
	}, nil
}

func (e *Engine) resolveValue(c *entities.Character, attribute string, species []*entities.Species, bonuses map[string]*entities.Bonus) float64 {
	return e.resolveFrom(c.BaseValue(attribute), attribute, c, species, bonuses)
}

func (e *Engine) resolveFrom(base float64, attribute string, c *entities.Character, species []*entities.Species, bonuses map[string]*entities.Bonus) float64 {
	if math.IsNaN(base) || math.IsInf(base, 0) {
		base = 0
	}

	intermediate := applySpeciesModifiers(base, attribute, species, c.Level)
	acc := accumulateBonuses(attribute, c.Bonuses, bonuses)
	final := round2(intermediate*(1+acc.fraction) + acc.flat)
	return math.Max(0, final)
}

// attributeOrder returns the stable resolution order: core attributes,
// then configured extras, then any remaining sheet-only keys in sorted
// order.
func attributeOrder(c *entities.Character, extras []string) []string {
	keys := entities.CoreAttributes()
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	for _, k := range extras {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	rest := make([]string, 0, len(c.Stats))
	for k := range c.Stats {
		if _, ok := seen[k]; ok {
			continue
		}
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
