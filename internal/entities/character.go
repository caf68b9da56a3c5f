package entities

// Character is an authored character record. Stats hold the raw (base)
// attribute values; effective values are computed by the engine from the
// species and bonus catalogs and are never stored.
type Character struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	Level       int32                     `json:"level"`
	SpeciesIDs  []string                  `json:"species_ids,omitempty"`
	Stats       map[string]AttributeValue `json:"stats"`
	Skills      []SkillAssignment         `json:"skills,omitempty"`
	Bonuses     []BonusAssignment         `json:"bonuses,omitempty"`
	CreatedAt   int64                     `json:"created_at"`
	UpdatedAt   int64                     `json:"updated_at"`
}

// SkillAssignment links a character to a skill at a given level.
type SkillAssignment struct {
	SkillID string `json:"skill_id"`
	Level   int32  `json:"level"`
}

// BonusAssignment links a character to a bonus at a given level. The
// level is clamped to the bonus's [0, MaxLevel] range at resolution
// time, not here.
type BonusAssignment struct {
	BonusID string `json:"bonus_id"`
	Level   int32  `json:"level"`
}

// PrincipalSpeciesID returns the first referenced species id. The
// principal species matters only for display and tie-breaks; it carries
// no extra numeric weight.
func (c *Character) PrincipalSpeciesID() string {
	if len(c.SpeciesIDs) == 0 {
		return ""
	}
	return c.SpeciesIDs[0]
}

// BaseValue returns the stored base value for an attribute, 0 if the
// sheet has no entry for it.
func (c *Character) BaseValue(attribute string) float64 {
	if c.Stats == nil {
		return 0
	}
	return c.Stats[attribute].Value
}
