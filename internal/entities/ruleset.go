package entities

// Ruleset is the campaign-wide configuration document: user-defined
// extra attributes, the rank classification table, and the global
// equivalency table that species tables are merged over.
type Ruleset struct {
	ExtraStats    []string         `json:"extra_stats,omitempty"`
	RankTable     RankTable        `json:"rank_table,omitempty"`
	Equivalencies EquivalencyTable `json:"equivalencies,omitempty"`
	UpdatedAt     int64            `json:"updated_at"`
}

// Bands returns the ruleset's rank table, falling back to the built-in
// default when none is configured.
func (r *Ruleset) Bands() RankTable {
	if r == nil || len(r.RankTable) == 0 {
		return DefaultRankTable()
	}
	return r.RankTable
}

// AttributeKeys returns the core attributes followed by the ruleset's
// extra attributes, deduplicated, in stable order.
func (r *Ruleset) AttributeKeys() []string {
	keys := CoreAttributes()
	if r == nil {
		return keys
	}
	seen := make(map[string]struct{}, len(keys)+len(r.ExtraStats))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	for _, k := range r.ExtraStats {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// Snapshot is a full dump of every catalog, used by the snapshot
// export/import collaborator. The engine places no constraints on it
// beyond the record shapes.
type Snapshot struct {
	Characters []*Character `json:"characters"`
	Species    []*Species   `json:"species"`
	Bonuses    []*Bonus     `json:"bonuses"`
	Skills     []*Skill     `json:"skills"`
	Ruleset    *Ruleset     `json:"ruleset,omitempty"`
	ExportedAt int64        `json:"exported_at"`
}
