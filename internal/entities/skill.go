package entities

// SkillClass categorizes a skill.
type SkillClass string

// Skill classes
const (
	SkillActive  SkillClass = "active"
	SkillPassive SkillClass = "passive"
	SkillGrowth  SkillClass = "growth"
)

// Skill is a catalog record for an authored skill. Progression fields
// feed the preview formula evaluators; they are flavor only and never
// feed back into stat resolution.
type Skill struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Definition string     `json:"definition,omitempty"`
	Class      SkillClass `json:"class"`
	Tier       string     `json:"tier"`
	Level      int32      `json:"level"`
	MaxLevel   int32      `json:"max_level"`

	TagProgression    *TagProgression    `json:"tag_progression,omitempty"`
	DamageProgression *DamageProgression `json:"damage_progression,omitempty"`
}

// TagProgression is a linear percentage-tag formula:
// value(level) = min(Base + PerLevel*(max(1,level)-1), Cap).
// A nil Cap means uncapped.
type TagProgression struct {
	Base     float64  `json:"base"`
	PerLevel float64  `json:"per_level"`
	Cap      *float64 `json:"cap,omitempty"`
}

// DamagePolicy selects how tiered damage grows with level.
type DamagePolicy string

// Damage policies
const (
	// DamageEveryN adds Step once per EveryNLevels levels past the first.
	DamageEveryN DamagePolicy = "every_n"
	// DamageMilestones applies milestone rows whose level threshold has
	// been reached, in table order.
	DamageMilestones DamagePolicy = "milestones"
)

// DamageProgression is a tiered damage formula under one of two
// policies. Ceiling, when set, caps the result for both policies.
type DamageProgression struct {
	Policy       DamagePolicy      `json:"policy"`
	Base         float64           `json:"base"`
	Step         float64           `json:"step,omitempty"`
	EveryNLevels int32             `json:"every_n_levels,omitempty"`
	MaxStacks    *int32            `json:"max_stacks,omitempty"`
	Ceiling      *float64          `json:"ceiling,omitempty"`
	Milestones   []DamageMilestone `json:"milestones,omitempty"`
}

// DamageMilestone is one row of a milestone table. When Override is
// set it replaces the running value; otherwise Add is added to it.
// Rows at the same level apply in table order, later rows last.
type DamageMilestone struct {
	Level    int32    `json:"level"`
	Override *float64 `json:"override,omitempty"`
	Add      float64  `json:"add,omitempty"`
}
