package stacking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/statforge/statforge/internal/engine"
	"github.com/statforge/statforge/internal/engine/stacking"
	"github.com/statforge/statforge/internal/entities"
)

type ResolverTestSuite struct {
	suite.Suite
	engine *stacking.Engine
	ctx    context.Context
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	eng, err := stacking.New(&stacking.Config{})
	s.Require().NoError(err)
	s.engine = eng
	s.ctx = context.Background()
}

func (s *ResolverTestSuite) character(level int32, stats map[string]float64) *entities.Character {
	sheet := make(map[string]entities.AttributeValue, len(stats))
	for k, v := range stats {
		sheet[k] = entities.AttributeValue{Value: v}
	}
	return &entities.Character{
		ID:    "char_1",
		Name:  "Test Subject",
		Level: level,
		Stats: sheet,
	}
}

// Species percentage applies before the bonus flat is added: with
// base 100, a +50% species modifier, and a +10 point bonus, the result
// is 100*1.5 + 10 = 160, never (100+10)*1.5 = 165.
func (s *ResolverTestSuite) TestSpeciesStageAppliesBeforeBonusStage() {
	c := s.character(1, map[string]float64{entities.AttributeStrength: 100})
	c.Bonuses = []entities.BonusAssignment{{BonusID: "b1", Level: 1}}

	species := []*entities.Species{{
		ID:         "sp1",
		AllowsMind: true,
		Modifiers: []entities.StatModifier{{
			Stat:   entities.AttributeStrength,
			Kind:   entities.ModifierPercentage,
			Amount: 50,
		}},
	}}
	bonuses := map[string]*entities.Bonus{
		"b1": {
			ID:             "b1",
			MaxLevel:       1,
			TargetStat:     entities.AttributeStrength,
			Kind:           entities.ModifierPoints,
			AmountPerLevel: 10,
		},
	}

	out, err := s.engine.ResolveStat(s.ctx, &engine.ResolveStatInput{
		Character: c,
		Attribute: entities.AttributeStrength,
		Species:   species,
		Bonuses:   bonuses,
	})
	s.Require().NoError(err)
	s.Assert().Equal(160.0, out.Effective)
}

// Level 20, species modifier Points amount=5 every 5 levels: 4 steps,
// +20 flat; base 50 -> intermediate 70. Bonus Percentage 1/level at
// level 10: +10 percentage points -> fraction 0.10. Final 70*1.10 = 77.
func (s *ResolverTestSuite) TestResolutionScenario() {
	c := s.character(20, map[string]float64{entities.AttributeDexterity: 50})
	c.Bonuses = []entities.BonusAssignment{{BonusID: "training", Level: 10}}

	species := []*entities.Species{{
		ID: "sp1",
		Modifiers: []entities.StatModifier{{
			Stat:         entities.AttributeDexterity,
			Kind:         entities.ModifierPoints,
			Amount:       5,
			EveryNLevels: 5,
		}},
	}}
	bonuses := map[string]*entities.Bonus{
		"training": {
			ID:       "training",
			MaxLevel: 10,
			Targets: []entities.BonusTarget{{
				Stat:           entities.AttributeDexterity,
				Kind:           entities.ModifierPercentage,
				AmountPerLevel: 1,
			}},
		},
	}

	out, err := s.engine.ResolveStat(s.ctx, &engine.ResolveStatInput{
		Character: c,
		Attribute: entities.AttributeDexterity,
		Species:   species,
		Bonuses:   bonuses,
	})
	s.Require().NoError(err)
	s.Assert().Equal(50.0, out.Base)
	s.Assert().Equal(77.0, out.Effective)
}

func (s *ResolverTestSuite) TestUnknownAttributeResolvesFromZero() {
	c := s.character(5, nil)

	out, err := s.engine.ResolveStat(s.ctx, &engine.ResolveStatInput{
		Character: c,
		Attribute: "Chakra",
	})
	s.Require().NoError(err)
	s.Assert().Equal(0.0, out.Base)
	s.Assert().Equal(0.0, out.Effective)
}

func (s *ResolverTestSuite) TestEffectiveValueFloorsAtZero() {
	c := s.character(1, map[string]float64{entities.AttributeVitality: 10})

	species := []*entities.Species{{
		ID: "cursed",
		Modifiers: []entities.StatModifier{{
			Stat:     entities.AttributeVitality,
			Kind:     entities.ModifierPercentage,
			Amount:   200,
			Polarity: entities.PolarityDisadvantage,
		}},
	}}

	out, err := s.engine.ResolveStat(s.ctx, &engine.ResolveStatInput{
		Character: c,
		Attribute: entities.AttributeVitality,
		Species:   species,
	})
	s.Require().NoError(err)
	s.Assert().Equal(0.0, out.Effective)
}

func (s *ResolverTestSuite) TestValidation() {
	_, err := s.engine.ResolveStat(s.ctx, nil)
	s.Assert().Error(err)

	_, err = s.engine.ResolveStat(s.ctx, &engine.ResolveStatInput{Attribute: "Strength"})
	s.Assert().Error(err)

	_, err = s.engine.ResolveStat(s.ctx, &engine.ResolveStatInput{Character: s.character(1, nil)})
	s.Assert().Error(err)
}

func (s *ResolverTestSuite) TestMindEnabledWhenEverySpeciesAllows() {
	c := s.character(1, map[string]float64{
		entities.AttributeIntelligence: 10,
		entities.AttributeWisdom:       20,
	})

	out, err := s.engine.ResolveAllStats(s.ctx, &engine.ResolveAllStatsInput{
		Character: c,
		Species: []*entities.Species{
			{ID: "a", AllowsMind: true},
			{ID: "b", AllowsMind: true},
		},
	})
	s.Require().NoError(err)
	s.Assert().True(out.MindEnabled)
	s.Assert().Equal(14.0, s.statValue(out, entities.AttributeMind).Base)
}

func (s *ResolverTestSuite) TestMindForcedToZeroWhenAnySpeciesDisallows() {
	c := s.character(1, map[string]float64{
		entities.AttributeIntelligence: 100,
		entities.AttributeWisdom:       100,
		entities.AttributeMind:         100, // stale stored value must be ignored
	})

	out, err := s.engine.ResolveAllStats(s.ctx, &engine.ResolveAllStatsInput{
		Character: c,
		Species: []*entities.Species{
			{ID: "a", AllowsMind: true},
			{ID: "b", AllowsMind: false},
		},
	})
	s.Require().NoError(err)
	s.Assert().False(out.MindEnabled)
	s.Assert().Equal(0.0, s.statValue(out, entities.AttributeMind).Effective)
}

func (s *ResolverTestSuite) TestMindDefaultsToEnabledWithoutSpecies() {
	c := s.character(1, map[string]float64{
		entities.AttributeIntelligence: 16,
		entities.AttributeWisdom:       16,
	})

	out, err := s.engine.ResolveAllStats(s.ctx, &engine.ResolveAllStatsInput{Character: c})
	s.Require().NoError(err)
	s.Assert().True(out.MindEnabled)
	s.Assert().Equal(16.0, s.statValue(out, entities.AttributeMind).Effective)
}

func (s *ResolverTestSuite) TestMindReadsAccentedSheetKeys() {
	// Sheets imported from older data may carry accented keys.
	c := &entities.Character{
		ID:    "char_1",
		Level: 1,
		Stats: map[string]entities.AttributeValue{
			"intellígence": {Value: 9},
			"WÍSDOM":       {Value: 16},
		},
	}

	out, err := s.engine.ResolveAllStats(s.ctx, &engine.ResolveAllStatsInput{Character: c})
	s.Require().NoError(err)
	s.Assert().Equal(12.0, s.statValue(out, entities.AttributeMind).Base)
}

func (s *ResolverTestSuite) TestAllStatsIncludesExtrasAndSheetKeys() {
	c := s.character(1, map[string]float64{"Haki": 30})

	out, err := s.engine.ResolveAllStats(s.ctx, &engine.ResolveAllStatsInput{
		Character:       c,
		ExtraAttributes: []string{"Chakra"},
	})
	s.Require().NoError(err)

	keys := make([]string, len(out.Stats))
	for i, st := range out.Stats {
		keys[i] = st.Attribute
	}
	s.Assert().Contains(keys, "Chakra")
	s.Assert().Contains(keys, "Haki")
	// Core attributes come first, in canonical order.
	s.Assert().Equal(entities.CoreAttributes(), keys[:len(entities.CoreAttributes())])
}

func (s *ResolverTestSuite) statValue(out *engine.ResolveAllStatsOutput, attribute string) engine.ResolvedStat {
	for _, st := range out.Stats {
		if st.Attribute == attribute {
			return st
		}
	}
	s.FailNowf("missing attribute", "attribute %s not resolved", attribute)
	return engine.ResolvedStat{}
}
