package entities

// RankBand is one row of a rank table: a closed interval [Min, Max]
// over non-negative integers. A nil Max marks the open-ended top band.
type RankBand struct {
	Rank  string `json:"rank"`
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   *int   `json:"max,omitempty"`
}

// Contains reports whether v falls inside the band.
func (b *RankBand) Contains(v int) bool {
	if v < b.Min {
		return false
	}
	return b.Max == nil || v <= *b.Max
}

// RankTable is an ordered list of bands covering 1..infinity, ascending
// by Min. The table is gap-free by convention; the classifier falls
// back to the top band if a corrupt table leaves a value unmatched.
type RankTable []RankBand

func capped(v int) *int { return &v }

// DefaultRankTable returns the built-in classification table: eight
// named ranks, four sub-bands each. Deployments can replace it via the
// rank table config file.
func DefaultRankTable() RankTable {
	return RankTable{
		{Rank: "Mortal", Label: "Low Mortal", Min: 1, Max: capped(4)},
		{Rank: "Mortal", Label: "Mid Mortal", Min: 5, Max: capped(9)},
		{Rank: "Mortal", Label: "High Mortal", Min: 10, Max: capped(14)},
		{Rank: "Mortal", Label: "Elite Mortal", Min: 15, Max: capped(19)},

		{Rank: "Initiate", Label: "Low Initiate", Min: 20, Max: capped(24)},
		{Rank: "Initiate", Label: "Mid Initiate", Min: 25, Max: capped(29)},
		{Rank: "Initiate", Label: "High Initiate", Min: 30, Max: capped(34)},
		{Rank: "Initiate", Label: "Elite Initiate", Min: 35, Max: capped(39)},

		{Rank: "Adept", Label: "Low Adept", Min: 40, Max: capped(54)},
		{Rank: "Adept", Label: "Mid Adept", Min: 55, Max: capped(69)},
		{Rank: "Adept", Label: "High Adept", Min: 70, Max: capped(79)},
		{Rank: "Adept", Label: "Elite Adept", Min: 80, Max: capped(89)},

		{Rank: "Veteran", Label: "Low Veteran", Min: 90, Max: capped(119)},
		{Rank: "Veteran", Label: "Mid Veteran", Min: 120, Max: capped(149)},
		{Rank: "Veteran", Label: "High Veteran", Min: 150, Max: capped(179)},
		{Rank: "Veteran", Label: "Elite Veteran", Min: 180, Max: capped(209)},

		{Rank: "Champion", Label: "Low Champion", Min: 210, Max: capped(279)},
		{Rank: "Champion", Label: "Mid Champion", Min: 280, Max: capped(349)},
		{Rank: "Champion", Label: "High Champion", Min: 350, Max: capped(424)},
		{Rank: "Champion", Label: "Elite Champion", Min: 425, Max: capped(499)},

		{Rank: "Titan", Label: "Low Titan", Min: 500, Max: capped(999)},
		{Rank: "Titan", Label: "Mid Titan", Min: 1000, Max: capped(1499)},
		{Rank: "Titan", Label: "High Titan", Min: 1500, Max: capped(1999)},
		{Rank: "Titan", Label: "Elite Titan", Min: 2000, Max: capped(2499)},

		{Rank: "Cataclysm", Label: "Low Cataclysm", Min: 2500, Max: capped(2999)},
		{Rank: "Cataclysm", Label: "Mid Cataclysm", Min: 3000, Max: capped(3499)},
		{Rank: "Cataclysm", Label: "High Cataclysm", Min: 3500, Max: capped(3999)},
		{Rank: "Cataclysm", Label: "Elite Cataclysm", Min: 4000, Max: capped(5000)},

		{Rank: "Divine", Label: "Low Divine", Min: 5000, Max: capped(7499)},
		{Rank: "Divine", Label: "Mid Divine", Min: 7500, Max: capped(9999)},
		{Rank: "Divine", Label: "High Divine", Min: 10000, Max: capped(14999)},
		{Rank: "Divine", Label: "Elite Divine", Min: 15000},
	}
}
