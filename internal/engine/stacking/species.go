package stacking

import (
	"github.com/statforge/statforge/internal/entities"
)

// applySpeciesModifiers folds every modifier of every referenced
// species that targets the attribute into one flat and one percentage
// accumulator, then applies both in a single affine step:
// base*(1+pct)+flat, rounded to 2 decimals. Because all species feed
// the same two accumulators before the single combining step, the
// result is independent of species list order.
func applySpeciesModifiers(base float64, attribute string, species []*entities.Species, level int32) float64 {
	// Levels below 1 clamp to 1 so step counts never go negative.
	if level < 1 {
		level = 1
	}

	var flat, pct float64
	for _, sp := range species {
		if sp == nil {
			continue
		}
		for i := range sp.Modifiers {
			mod := &sp.Modifiers[i]
			if mod.Stat != attribute {
				continue
			}
			switch mod.Kind {
			case entities.ModifierPoints:
				steps := level / mod.Cadence()
				flat += mod.Amount * float64(steps)
			case entities.ModifierPercentage:
				pct += mod.SignedAmount() / 100
			}
		}
	}

	if flat == 0 && pct == 0 {
		return base
	}
	return round2(base*(1+pct) + flat)
}
