package stacking

import (
	"github.com/statforge/statforge/internal/entities"
)

// bonusAccumulation is the uncombined result of folding a character's
// bonus assignments for one attribute. The caller composes it onto the
// species-adjusted value as the second affine stage.
type bonusAccumulation struct {
	flat     float64
	fraction float64
}

// accumulateBonuses folds the character's assignments against the bonus
// catalog. Unknown bonus ids are skipped silently, levels clamp into
// [0, maxLevel], and assignments at clamped level 0 contribute nothing
// at all, including their base percentage. Percentage points are summed
// as points and divided by 100 once at the end.
func accumulateBonuses(attribute string, assignments []entities.BonusAssignment, catalog map[string]*entities.Bonus) bonusAccumulation {
	var flat, points float64
	for _, assign := range assignments {
		bonus := catalog[assign.BonusID]
		if bonus == nil {
			continue
		}
		level := bonus.ClampLevel(assign.Level)
		if level <= 0 {
			continue
		}

		for _, target := range bonus.NormalizedTargets() {
			if target.Stat != attribute {
				continue
			}
			switch target.Kind {
			case entities.ModifierPoints:
				flat += target.AmountPerLevel * float64(level)
			case entities.ModifierPercentage:
				points += target.AmountPerLevel * float64(level)
				// Base percentage is granted once per assignment for
				// merely having the bonus, independent of level.
				points += target.BasePercentage
			}
		}
	}

	return bonusAccumulation{flat: flat, fraction: points / 100}
}
