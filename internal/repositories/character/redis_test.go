package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	"github.com/statforge/statforge/internal/pkg/clock"
	"github.com/statforge/statforge/internal/repositories/character"
	"github.com/statforge/statforge/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	cleanup func()
	ctx     context.Context
	now     time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo, err := character.NewRedis(&character.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RedisRepositoryTestSuite) testCharacter(id string, speciesIDs ...string) *entities.Character {
	return &entities.Character{
		ID:         id,
		Name:       "Kael",
		Level:      5,
		SpeciesIDs: speciesIDs,
		Stats: map[string]entities.AttributeValue{
			entities.AttributeStrength: {Value: 42, Band: "High Initiate"},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{
		Character: s.testCharacter("char_1", "sp_elf"),
	})
	s.Require().NoError(err)
	s.Assert().Equal(s.now.Unix(), created.Character.CreatedAt)
	s.Assert().Equal(s.now.Unix(), created.Character.UpdatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Assert().Equal("Kael", got.Character.Name)
	s.Assert().Equal(int32(5), got.Character.Level)
	s.Assert().Equal(42.0, got.Character.Stats[entities.AttributeStrength].Value)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicateFails() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_1")})
	s.Require().Error(err)
	s.Assert().True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: &entities.Character{}})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdatePreservesCreatedAt() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_1")})
	s.Require().NoError(err)

	updated := s.testCharacter("char_1")
	updated.Name = "Kael the Bold"
	out, err := s.repo.Update(s.ctx, character.UpdateInput{Character: updated})
	s.Require().NoError(err)
	s.Assert().Equal(created.Character.CreatedAt, out.Character.CreatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Assert().Equal("Kael the Bold", got.Character.Name)
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{Character: s.testCharacter("missing")})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateMovesSpeciesIndexes() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_1", "sp_elf")})
	s.Require().NoError(err)

	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: s.testCharacter("char_1", "sp_orc")})
	s.Require().NoError(err)

	elves, err := s.repo.ListBySpeciesID(s.ctx, character.ListBySpeciesIDInput{SpeciesID: "sp_elf"})
	s.Require().NoError(err)
	s.Assert().Empty(elves.Characters)

	orcs, err := s.repo.ListBySpeciesID(s.ctx, character.ListBySpeciesIDInput{SpeciesID: "sp_orc"})
	s.Require().NoError(err)
	s.Require().Len(orcs.Characters, 1)
	s.Assert().Equal("char_1", orcs.Characters[0].ID)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_1", "sp_elf")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Assert().True(errors.IsNotFound(err))

	elves, err := s.repo.ListBySpeciesID(s.ctx, character.ListBySpeciesIDInput{SpeciesID: "sp_elf"})
	s.Require().NoError(err)
	s.Assert().Empty(elves.Characters)

	all, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Assert().Empty(all.Characters)
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "missing"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestList() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_1")})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_2")})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Assert().Len(out.Characters, 2)
}

func (s *RedisRepositoryTestSuite) TestListBySpeciesSharedIndex() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_1", "sp_elf", "sp_fae")})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: s.testCharacter("char_2", "sp_elf")})
	s.Require().NoError(err)

	elves, err := s.repo.ListBySpeciesID(s.ctx, character.ListBySpeciesIDInput{SpeciesID: "sp_elf"})
	s.Require().NoError(err)
	s.Assert().Len(elves.Characters, 2)

	fae, err := s.repo.ListBySpeciesID(s.ctx, character.ListBySpeciesIDInput{SpeciesID: "sp_fae"})
	s.Require().NoError(err)
	s.Assert().Len(fae.Characters, 1)
}

func (s *RedisRepositoryTestSuite) TestListBySpeciesValidation() {
	_, err := s.repo.ListBySpeciesID(s.ctx, character.ListBySpeciesIDInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
