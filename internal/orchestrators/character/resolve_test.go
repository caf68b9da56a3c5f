package character_test

import (
	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	bonusrepo "github.com/statforge/statforge/internal/repositories/bonus"
	characterrepo "github.com/statforge/statforge/internal/repositories/character"
	rulesetrepo "github.com/statforge/statforge/internal/repositories/ruleset"
	speciesrepo "github.com/statforge/statforge/internal/repositories/species"
	charactersvc "github.com/statforge/statforge/internal/services/character"

	"go.uber.org/mock/gomock"
)

func (s *OrchestratorTestSuite) resolveScenarioCharacter() *entities.Character {
	return &entities.Character{
		ID:         "char_1",
		Name:       "Kael",
		Level:      20,
		SpeciesIDs: []string{"sp_giant"},
		Bonuses:    []entities.BonusAssignment{{BonusID: "b_training", Level: 10}},
		Stats: map[string]entities.AttributeValue{
			entities.AttributeDexterity: {Value: 50},
		},
	}
}

func (s *OrchestratorTestSuite) expectResolveScenario() {
	giant := &entities.Species{
		ID:         "sp_giant",
		Name:       "Giant",
		AllowsMind: true,
		Modifiers: []entities.StatModifier{{
			Stat:         entities.AttributeDexterity,
			Kind:         entities.ModifierPoints,
			Amount:       5,
			EveryNLevels: 5,
		}},
	}
	training := &entities.Bonus{
		ID:       "b_training",
		Name:     "Training",
		MaxLevel: 10,
		Targets: []entities.BonusTarget{{
			Stat:           entities.AttributeDexterity,
			Kind:           entities.ModifierPercentage,
			AmountPerLevel: 1,
		}},
	}

	s.mockCharRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: "char_1"}).
		Return(&characterrepo.GetOutput{Character: s.resolveScenarioCharacter()}, nil)
	s.mockSpeciesRepo.EXPECT().
		GetBatch(gomock.Any(), speciesrepo.GetBatchInput{IDs: []string{"sp_giant"}}).
		Return(&speciesrepo.GetBatchOutput{Species: []*entities.Species{giant}}, nil)
	s.expectEmptyRuleset()
	s.mockBonusRepo.EXPECT().
		GetBatch(gomock.Any(), bonusrepo.GetBatchInput{IDs: []string{"b_training"}}).
		Return(&bonusrepo.GetBatchOutput{Bonuses: map[string]*entities.Bonus{"b_training": training}}, nil)
}

func (s *OrchestratorTestSuite) TestResolveStats_Scenario() {
	s.expectResolveScenario()

	output, err := s.orchestrator.ResolveStats(s.ctx, &charactersvc.ResolveStatsInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Assert().True(output.MindEnabled)

	var dex *charactersvc.ResolvedAttribute
	for i := range output.Stats {
		if output.Stats[i].Attribute == entities.AttributeDexterity {
			dex = &output.Stats[i]
		}
	}
	s.Require().NotNil(dex)
	s.Assert().Equal(50.0, dex.Base)
	// Species steps first (50 + 20), then the bonus percentage (x1.10).
	s.Assert().Equal(77.0, dex.Effective)
	s.Assert().Equal("Adept", dex.Rank)
	s.Assert().Equal("High Adept", dex.SubRank)
}

func (s *OrchestratorTestSuite) TestResolveStats_EmptyID() {
	output, err := s.orchestrator.ResolveStats(s.ctx, &charactersvc.ResolveStatsInput{})
	s.Require().Error(err)
	s.Assert().Nil(output)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestResolveStats_CharacterNotFound() {
	s.mockCharRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("character not found"))

	_, err := s.orchestrator.ResolveStats(s.ctx, &charactersvc.ResolveStatsInput{CharacterID: "missing"})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "failed to get character")
}

func (s *OrchestratorTestSuite) TestDeriveEquivalencies() {
	char := &entities.Character{
		ID:    "char_1",
		Name:  "Kael",
		Level: 1,
		Stats: map[string]entities.AttributeValue{
			entities.AttributeStrength: {Value: 10},
		},
	}
	s.mockCharRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: "char_1"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockRulesetRepo.EXPECT().
		Get(gomock.Any(), rulesetrepo.GetInput{}).
		Return(&rulesetrepo.GetOutput{
			Ruleset: &entities.Ruleset{
				Equivalencies: entities.EquivalencyTable{
					"Physical": {entities.AttributeStrength: {"Lift (kg)": 2}},
				},
			},
		}, nil)

	output, err := s.orchestrator.DeriveEquivalencies(s.ctx, &charactersvc.DeriveEquivalenciesInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Require().Len(output.Metrics, 1)
	s.Assert().Equal("Physical", output.Metrics[0].Category)
	s.Assert().Equal(20.0, output.Metrics[0].Value)
}
