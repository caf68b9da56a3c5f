package entities

// Species is a catalog record describing a playable species. A
// character may reference up to ten species; their modifiers stack.
type Species struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// AllowsMind gates the derived Mind attribute. A character can use
	// Mind only if every species it references allows it.
	AllowsMind bool `json:"allows_mind"`

	Modifiers     []StatModifier   `json:"modifiers,omitempty"`
	Equivalencies EquivalencyTable `json:"equivalencies,omitempty"`
}

// StatModifier is a species-level modifier on one attribute.
//
// Points modifiers accrue in discrete steps: floor(level/EveryNLevels)
// steps, each contributing Amount flat. Percentage modifiers are a
// single fixed fraction of the attribute, signed by Polarity; they do
// not scale with level.
type StatModifier struct {
	Stat         string       `json:"stat"`
	Kind         ModifierKind `json:"kind"`
	Amount       float64      `json:"amount"`
	EveryNLevels int32        `json:"every_n_levels,omitempty"`
	Polarity     Polarity     `json:"polarity,omitempty"`
}

// Cadence returns the level cadence for a points modifier, defaulting
// to every level when unset or invalid.
func (m *StatModifier) Cadence() int32 {
	if m.EveryNLevels < 1 {
		return 1
	}
	return m.EveryNLevels
}

// SignedAmount returns the modifier amount with polarity applied.
func (m *StatModifier) SignedAmount() float64 {
	if m.Polarity == PolarityDisadvantage {
		return -m.Amount
	}
	return m.Amount
}
