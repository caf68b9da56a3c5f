package stacking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/statforge/statforge/internal/engine"
	"github.com/statforge/statforge/internal/engine/stacking"
	"github.com/statforge/statforge/internal/entities"
)

type BonusTestSuite struct {
	suite.Suite
	engine *stacking.Engine
	ctx    context.Context
}

func TestBonusSuite(t *testing.T) {
	suite.Run(t, new(BonusTestSuite))
}

func (s *BonusTestSuite) SetupTest() {
	eng, err := stacking.New(&stacking.Config{})
	s.Require().NoError(err)
	s.engine = eng
	s.ctx = context.Background()
}

func (s *BonusTestSuite) resolve(base float64, assignments []entities.BonusAssignment, catalog map[string]*entities.Bonus) float64 {
	c := &entities.Character{
		ID:    "char_1",
		Level: 1,
		Stats: map[string]entities.AttributeValue{
			entities.AttributeStrength: {Value: base},
		},
		Bonuses: assignments,
	}
	out, err := s.engine.ResolveStat(s.ctx, &engine.ResolveStatInput{
		Character: c,
		Attribute: entities.AttributeStrength,
		Bonuses:   catalog,
	})
	s.Require().NoError(err)
	return out.Effective
}

func (s *BonusTestSuite) TestLevelClampsToMaxLevel() {
	catalog := map[string]*entities.Bonus{
		"ring": {
			ID:       "ring",
			MaxLevel: 10,
			Targets: []entities.BonusTarget{{
				Stat:           entities.AttributeStrength,
				Kind:           entities.ModifierPoints,
				AmountPerLevel: 2,
			}},
		},
	}

	atMax := s.resolve(100, []entities.BonusAssignment{{BonusID: "ring", Level: 10}}, catalog)
	overMax := s.resolve(100, []entities.BonusAssignment{{BonusID: "ring", Level: 15}}, catalog)

	s.Assert().Equal(120.0, atMax)
	s.Assert().Equal(atMax, overMax)
}

func (s *BonusTestSuite) TestUnknownBonusIDSkipped() {
	catalog := map[string]*entities.Bonus{
		"ring": {
			ID:       "ring",
			MaxLevel: 5,
			Targets: []entities.BonusTarget{{
				Stat:           entities.AttributeStrength,
				Kind:           entities.ModifierPoints,
				AmountPerLevel: 3,
			}},
		},
	}
	assignments := []entities.BonusAssignment{
		{BonusID: "deleted", Level: 5},
		{BonusID: "ring", Level: 1},
	}

	s.Assert().Equal(103.0, s.resolve(100, assignments, catalog))
}

// A level 0 assignment grants nothing, including the base percentage of
// its percentage targets.
func (s *BonusTestSuite) TestLevelZeroGrantsNothing() {
	catalog := map[string]*entities.Bonus{
		"aura": {
			ID:       "aura",
			MaxLevel: 10,
			Targets: []entities.BonusTarget{{
				Stat:           entities.AttributeStrength,
				Kind:           entities.ModifierPercentage,
				AmountPerLevel: 2,
				BasePercentage: 10,
			}},
		},
	}

	s.Assert().Equal(100.0, s.resolve(100, []entities.BonusAssignment{{BonusID: "aura", Level: 0}}, catalog))
	s.Assert().Equal(100.0, s.resolve(100, []entities.BonusAssignment{{BonusID: "aura", Level: -3}}, catalog))
	// At level 1 both the per-level points and the base percentage apply.
	s.Assert().Equal(112.0, s.resolve(100, []entities.BonusAssignment{{BonusID: "aura", Level: 1}}, catalog))
}

// Percentage points sum across assignments and divide by 100 once at
// the end, so two +10 point grants are +20%, not (1.10)^2.
func (s *BonusTestSuite) TestPercentagePointsSumBeforeDividing() {
	catalog := map[string]*entities.Bonus{
		"left": {
			ID:       "left",
			MaxLevel: 1,
			Targets: []entities.BonusTarget{{
				Stat:           entities.AttributeStrength,
				Kind:           entities.ModifierPercentage,
				AmountPerLevel: 10,
			}},
		},
		"right": {
			ID:       "right",
			MaxLevel: 1,
			Targets: []entities.BonusTarget{{
				Stat:           entities.AttributeStrength,
				Kind:           entities.ModifierPercentage,
				AmountPerLevel: 10,
			}},
		},
	}
	assignments := []entities.BonusAssignment{
		{BonusID: "left", Level: 1},
		{BonusID: "right", Level: 1},
	}

	s.Assert().Equal(120.0, s.resolve(100, assignments, catalog))
}

// Bonuses authored before multi-target support carry a single top-level
// target; they resolve exactly like a one-target list.
func (s *BonusTestSuite) TestLegacySingleTargetShape() {
	catalog := map[string]*entities.Bonus{
		"old": {
			ID:             "old",
			MaxLevel:       5,
			TargetStat:     entities.AttributeStrength,
			Kind:           entities.ModifierPoints,
			AmountPerLevel: 4,
		},
	}

	s.Assert().Equal(112.0, s.resolve(100, []entities.BonusAssignment{{BonusID: "old", Level: 3}}, catalog))
}

func (s *BonusTestSuite) TestMultiTargetBonusAppliesPerTarget() {
	catalog := map[string]*entities.Bonus{
		"gear": {
			ID:       "gear",
			MaxLevel: 10,
			Targets: []entities.BonusTarget{
				{
					Stat:           entities.AttributeStrength,
					Kind:           entities.ModifierPoints,
					AmountPerLevel: 1,
				},
				{
					Stat:           entities.AttributeStrength,
					Kind:           entities.ModifierPercentage,
					AmountPerLevel: 5,
				},
				{
					Stat:           entities.AttributeVitality,
					Kind:           entities.ModifierPoints,
					AmountPerLevel: 100,
				},
			},
		},
	}

	// 100*(1+0.10) + 2 = 112; the Vitality target never touches Strength.
	s.Assert().Equal(112.0, s.resolve(100, []entities.BonusAssignment{{BonusID: "gear", Level: 2}}, catalog))
}
