package character_test

import (
	"go.uber.org/mock/gomock"

	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	characterrepo "github.com/statforge/statforge/internal/repositories/character"
	rulesetrepo "github.com/statforge/statforge/internal/repositories/ruleset"
	charactersvc "github.com/statforge/statforge/internal/services/character"
)

func (s *OrchestratorTestSuite) expectLeaderboardCatalog(chars ...*entities.Character) {
	s.mockCharRepo.EXPECT().
		List(gomock.Any(), characterrepo.ListInput{}).
		Return(&characterrepo.ListOutput{Characters: chars}, nil)
	s.mockRulesetRepo.EXPECT().
		Get(gomock.Any(), rulesetrepo.GetInput{}).
		Return(&rulesetrepo.GetOutput{Ruleset: &entities.Ruleset{}}, nil)
}

func leaderboardCharacter(id, name string, strength float64) *entities.Character {
	return &entities.Character{
		ID:    id,
		Name:  name,
		Level: 1,
		Stats: map[string]entities.AttributeValue{
			entities.AttributeStrength: {Value: strength},
		},
	}
}

func (s *OrchestratorTestSuite) TestLeaderboard_RanksByEffectiveValue() {
	s.expectLeaderboardCatalog(
		leaderboardCharacter("char_1", "Kael", 30),
		leaderboardCharacter("char_2", "Mira", 90),
		leaderboardCharacter("char_3", "Oren", 55),
	)
	output, err := s.orchestrator.Leaderboard(s.ctx, &charactersvc.LeaderboardInput{
		Attribute: entities.AttributeStrength,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)
	s.Assert().Equal("Mira", output.Entries[0].Name)
	s.Assert().Equal(90.0, output.Entries[0].Value)
	s.Assert().Equal("Low Veteran", output.Entries[0].Band)
	s.Assert().Equal("Oren", output.Entries[1].Name)
	s.Assert().Equal("Kael", output.Entries[2].Name)
}

func (s *OrchestratorTestSuite) TestLeaderboard_TiesBreakByName() {
	s.expectLeaderboardCatalog(
		leaderboardCharacter("char_1", "Zara", 40),
		leaderboardCharacter("char_2", "Avi", 40),
	)
	output, err := s.orchestrator.Leaderboard(s.ctx, &charactersvc.LeaderboardInput{
		Attribute: entities.AttributeStrength,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 2)
	s.Assert().Equal("Avi", output.Entries[0].Name)
	s.Assert().Equal("Zara", output.Entries[1].Name)
}

func (s *OrchestratorTestSuite) TestLeaderboard_LimitTruncates() {
	s.expectLeaderboardCatalog(
		leaderboardCharacter("char_1", "Kael", 30),
		leaderboardCharacter("char_2", "Mira", 90),
		leaderboardCharacter("char_3", "Oren", 55),
	)
	output, err := s.orchestrator.Leaderboard(s.ctx, &charactersvc.LeaderboardInput{
		Attribute: entities.AttributeStrength,
		Limit:     1,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 1)
	s.Assert().Equal("Mira", output.Entries[0].Name)
}

// ByBase skips resolution entirely and ranks on stored values.
func (s *OrchestratorTestSuite) TestLeaderboard_ByBase() {
	s.expectLeaderboardCatalog(
		leaderboardCharacter("char_1", "Kael", 30),
		leaderboardCharacter("char_2", "Mira", 90),
	)

	output, err := s.orchestrator.Leaderboard(s.ctx, &charactersvc.LeaderboardInput{
		Attribute: entities.AttributeStrength,
		ByBase:    true,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 2)
	s.Assert().Equal("Mira", output.Entries[0].Name)
	s.Assert().Equal(90.0, output.Entries[0].Value)
}

func (s *OrchestratorTestSuite) TestLeaderboard_Validation() {
	_, err := s.orchestrator.Leaderboard(s.ctx, &charactersvc.LeaderboardInput{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.Leaderboard(s.ctx, &charactersvc.LeaderboardInput{
		Attribute: entities.AttributeStrength,
		Limit:     -1,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
