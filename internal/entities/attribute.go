// Package entities provides core data structures for statforge.
// These are data-only structs: all stat math lives in the engine,
// not here. The JSON tags are the persisted document shape.
package entities

// Core attribute keys. Attribute keys are case-sensitive identifiers;
// campaigns can extend the set with user-defined extra attributes
// (see Ruleset.ExtraStats).
const (
	AttributeStrength     = "Strength"
	AttributeResistance   = "Resistance"
	AttributeDexterity    = "Dexterity"
	AttributeMind         = "Mind"
	AttributeVitality     = "Vitality"
	AttributeIntelligence = "Intelligence"
	AttributeWisdom       = "Wisdom"
)

// CoreAttributes returns the fixed attribute set every character sheet
// starts with, in display order.
func CoreAttributes() []string {
	return []string{
		AttributeStrength,
		AttributeResistance,
		AttributeDexterity,
		AttributeMind,
		AttributeVitality,
		AttributeIntelligence,
		AttributeWisdom,
	}
}

// AttributeValue is a single stat entry on a character sheet. Band is a
// display cache derived from Value via the rank classifier; it is never
// authoritative and is recomputed on every save.
type AttributeValue struct {
	Value float64 `json:"value"`
	Band  string  `json:"band"`
}

// ModifierKind distinguishes flat point modifiers from percentage ones.
type ModifierKind string

// Modifier kinds
const (
	ModifierPoints     ModifierKind = "points"
	ModifierPercentage ModifierKind = "percentage"
)

// Polarity signs a percentage modifier. A Disadvantage negates the
// magnitude; an empty polarity is treated as Advantage.
type Polarity string

// Polarities
const (
	PolarityAdvantage    Polarity = "advantage"
	PolarityDisadvantage Polarity = "disadvantage"
)
