package entities

// EquivalencyTable maps category -> attribute -> metric name -> factor.
// A factor converts one point of effective attribute value into one
// unit of the named flavor metric.
type EquivalencyTable map[string]map[string]map[string]float64

// Clone returns a deep copy of the table. Merging species tables over
// the global one must never mutate the global snapshot.
func (t EquivalencyTable) Clone() EquivalencyTable {
	if t == nil {
		return EquivalencyTable{}
	}
	out := make(EquivalencyTable, len(t))
	for category, attrs := range t {
		outAttrs := make(map[string]map[string]float64, len(attrs))
		for attr, metrics := range attrs {
			outMetrics := make(map[string]float64, len(metrics))
			for metric, factor := range metrics {
				outMetrics[metric] = factor
			}
			outAttrs[attr] = outMetrics
		}
		out[category] = outAttrs
	}
	return out
}

// MergeLeaves overlays every leaf of other onto t, last write wins per
// leaf key. Sibling leaves not present in other are left untouched.
func (t EquivalencyTable) MergeLeaves(other EquivalencyTable) {
	for category, attrs := range other {
		if t[category] == nil {
			t[category] = make(map[string]map[string]float64, len(attrs))
		}
		for attr, metrics := range attrs {
			if t[category][attr] == nil {
				t[category][attr] = make(map[string]float64, len(metrics))
			}
			for metric, factor := range metrics {
				t[category][attr][metric] = factor
			}
		}
	}
}

// DerivedMetric is one projected flavor value: an effective attribute
// multiplied by a conversion factor from the merged equivalency table.
type DerivedMetric struct {
	Category  string  `json:"category"`
	Attribute string  `json:"attribute"`
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
}
