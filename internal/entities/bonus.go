package entities

// Bonus is a catalog record for an assignable, leveled bonus. Two
// stored shapes exist: modern records carry a Targets list, legacy
// records carry exactly one implicit target in the flat fields. There
// is no version flag; the shapes are distinguished by the presence of
// Targets, and NormalizedTargets unifies them so nothing downstream
// ever branches on shape.
type Bonus struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MaxLevel    int32  `json:"max_level"`

	Targets []BonusTarget `json:"targets,omitempty"`

	// Legacy single-target fields, ignored when Targets is set.
	TargetStat     string       `json:"target_stat,omitempty"`
	Kind           ModifierKind `json:"kind,omitempty"`
	AmountPerLevel float64      `json:"amount_per_level,omitempty"`
}

// BonusTarget is one attribute affected by a bonus. For Points targets
// AmountPerLevel is flat points per assigned level; for Percentage
// targets it is percentage points per assigned level, and
// BasePercentage is granted once per assignment regardless of level.
type BonusTarget struct {
	Stat           string       `json:"stat"`
	Kind           ModifierKind `json:"kind"`
	AmountPerLevel float64      `json:"amount_per_level"`
	BasePercentage float64      `json:"base_percentage,omitempty"`
}

// NormalizedTargets returns the target list regardless of stored shape.
// A legacy record becomes a one-element list; a record with neither
// shape yields nil.
func (b *Bonus) NormalizedTargets() []BonusTarget {
	if len(b.Targets) > 0 {
		return b.Targets
	}
	if b.TargetStat == "" {
		return nil
	}
	return []BonusTarget{{
		Stat:           b.TargetStat,
		Kind:           b.Kind,
		AmountPerLevel: b.AmountPerLevel,
	}}
}

// ClampLevel clamps an assigned level into [0, MaxLevel].
func (b *Bonus) ClampLevel(level int32) int32 {
	if level < 0 {
		return 0
	}
	if level > b.MaxLevel {
		return b.MaxLevel
	}
	return level
}
