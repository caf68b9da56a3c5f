package stacking

import (
	"context"
	"math"
	"sort"

	"github.com/statforge/statforge/internal/engine"
	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
)

// DeriveEquivalencies projects effective attributes through the merged
// equivalency table. The merge deep-copies the global table, then
// overlays each referenced species' table in reference order, last
// write winning per leaf key. Attributes absent from the effective map
// derive as 0; non-finite factors are skipped rather than propagated.
// Output is sorted by (category, attribute, metric) for reproducible
// display.
func (e *Engine) DeriveEquivalencies(ctx context.Context, input *engine.DeriveEquivalenciesInput) (*engine.DeriveEquivalenciesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	merged := mergeEquivalencies(input.Global, input.Species)

	var metrics []entities.DerivedMetric
	for category, attrs := range merged {
		for attr, leaves := range attrs {
			effective := input.EffectiveStats[attr]
			for metric, factor := range leaves {
				if math.IsNaN(factor) || math.IsInf(factor, 0) {
					continue
				}
				metrics = append(metrics, entities.DerivedMetric{
					Category:  category,
					Attribute: attr,
					Metric:    metric,
					Value:     round2(effective * factor),
				})
			}
		}
	}

	sort.Slice(metrics, func(i, j int) bool {
		a, b := metrics[i], metrics[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Attribute != b.Attribute {
			return a.Attribute < b.Attribute
		}
		return a.Metric < b.Metric
	})

	return &engine.DeriveEquivalenciesOutput{Metrics: metrics}, nil
}

func mergeEquivalencies(global entities.EquivalencyTable, species []*entities.Species) entities.EquivalencyTable {
	merged := global.Clone()
	for _, sp := range species {
		if sp == nil {
			continue
		}
		merged.MergeLeaves(sp.Equivalencies)
	}
	return merged
}
