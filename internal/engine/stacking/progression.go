package stacking

import (
	"sort"

	"github.com/statforge/statforge/internal/entities"
)

// SkillTagValue evaluates the linear percentage-tag formula:
// base + perLevel*(max(1,level)-1), capped when a cap is set. Used for
// skill previews only; never fed back into stat resolution.
func (e *Engine) SkillTagValue(level int32, progression *entities.TagProgression) float64 {
	if progression == nil {
		return 0
	}
	if level < 1 {
		level = 1
	}

	value := progression.Base + progression.PerLevel*float64(level-1)
	if progression.Cap != nil && value > *progression.Cap {
		value = *progression.Cap
	}
	return round2(value)
}

// SkillTieredDamage evaluates the tiered damage formula under the
// progression's policy. Both policies honor the optional ceiling.
func (e *Engine) SkillTieredDamage(level int32, progression *entities.DamageProgression) float64 {
	if progression == nil {
		return 0
	}
	if level < 1 {
		level = 1
	}

	var value float64
	switch progression.Policy {
	case entities.DamageMilestones:
		value = milestoneDamage(level, progression)
	default:
		value = everyNDamage(level, progression)
	}

	if progression.Ceiling != nil && value > *progression.Ceiling {
		value = *progression.Ceiling
	}
	return round2(value)
}

// everyNDamage grows by Step once per EveryNLevels levels past the
// first, with an optional stack limit.
func everyNDamage(level int32, p *entities.DamageProgression) float64 {
	n := p.EveryNLevels
	if n < 1 {
		n = 1
	}

	stacks := (level - 1) / n
	if p.MaxStacks != nil && stacks > *p.MaxStacks {
		stacks = *p.MaxStacks
	}
	return p.Base + p.Step*float64(stacks)
}

// milestoneDamage applies each milestone whose threshold has been
// reached, in ascending threshold order.
func milestoneDamage(level int32, p *entities.DamageProgression) float64 {
	rows := make([]entities.DamageMilestone, len(p.Milestones))
	copy(rows, p.Milestones)
	// Stable sort keeps equal-level rows in table order, so a later
	// row's override beats an earlier row's addition at that level.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Level < rows[j].Level })

	value := p.Base
	for i := range rows {
		if rows[i].Level > level {
			break
		}
		if rows[i].Override != nil {
			value = *rows[i].Override
		} else {
			value += rows[i].Add
		}
	}
	return value
}
