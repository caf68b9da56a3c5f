// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"

	"github.com/statforge/statforge/internal/engine"
	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	"github.com/statforge/statforge/internal/pkg/idgen"
	bonusrepo "github.com/statforge/statforge/internal/repositories/bonus"
	characterrepo "github.com/statforge/statforge/internal/repositories/character"
	rulesetrepo "github.com/statforge/statforge/internal/repositories/ruleset"
	speciesrepo "github.com/statforge/statforge/internal/repositories/species"
	"github.com/statforge/statforge/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	SpeciesRepo   speciesrepo.Repository
	BonusRepo     bonusrepo.Repository
	RulesetRepo   rulesetrepo.Repository
	Engine        engine.Engine
	IDGenerator   idgen.Generator

	// RankTable optionally replaces the built-in band table when the
	// stored ruleset carries none.
	RankTable entities.RankTable
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.SpeciesRepo == nil {
		vb.RequiredField("SpeciesRepo")
	}
	if c.BonusRepo == nil {
		vb.RequiredField("BonusRepo")
	}
	if c.RulesetRepo == nil {
		vb.RequiredField("RulesetRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	speciesRepo   speciesrepo.Repository
	bonusRepo     bonusrepo.Repository
	rulesetRepo   rulesetrepo.Repository
	engine        engine.Engine
	idGenerator   idgen.Generator
	rankTable     entities.RankTable
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		speciesRepo:   cfg.SpeciesRepo,
		bonusRepo:     cfg.BonusRepo,
		rulesetRepo:   cfg.RulesetRepo,
		engine:        cfg.Engine,
		idGenerator:   cfg.IDGenerator,
		rankTable:     cfg.RankTable,
	}, nil
}

// bands picks the rank table for a resolution: the ruleset's own table
// when it has one, then the configured table, then the built-in one.
func (o *Orchestrator) bands(rs *entities.Ruleset) entities.RankTable {
	if rs != nil && len(rs.RankTable) > 0 {
		return rs.RankTable
	}
	if len(o.rankTable) > 0 {
		return o.rankTable
	}
	return entities.DefaultRankTable()
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// Catalog lifecycle methods

// CreateCharacter creates a new character, assigns its id, and derives
// the stored display fields (Mind, bands) before persisting
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if input.Level < 1 {
		vb.InvalidField("level", "must be at least 1")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	stats := make(map[string]entities.AttributeValue, len(input.Stats))
	for key, value := range input.Stats {
		stats[key] = entities.AttributeValue{Value: value}
	}

	char := &entities.Character{
		ID:          o.idGenerator.Generate(),
		Name:        input.Name,
		Description: input.Description,
		Level:       input.Level,
		SpeciesIDs:  input.SpeciesIDs,
		Stats:       stats,
		Skills:      input.Skills,
		Bonuses:     input.Bonuses,
	}

	if err := o.applyDerivedFields(ctx, char); err != nil {
		return nil, err
	}

	createOutput, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "created character",
		"character_id", createOutput.Character.ID,
		"name", createOutput.Character.Name)

	return &character.CreateCharacterOutput{Character: createOutput.Character}, nil
}

// GetCharacter retrieves a character by ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}

	return &character.GetCharacterOutput{Character: getOutput.Character}, nil
}

// UpdateCharacter updates an existing character, re-deriving the stored
// display fields from the current catalogs
func (o *Orchestrator) UpdateCharacter(ctx context.Context, input *character.UpdateCharacterInput) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if err := o.applyDerivedFields(ctx, input.Character); err != nil {
		return nil, err
	}

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: input.Character})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	return &character.UpdateCharacterOutput{Character: updateOutput.Character}, nil
}

// DeleteCharacter deletes a character by ID
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	_, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	slog.InfoContext(ctx, "deleted character", "character_id", input.CharacterID)

	return &character.DeleteCharacterOutput{}, nil
}

// ListCharacters lists the whole catalog, or one species' characters
func (o *Orchestrator) ListCharacters(ctx context.Context, input *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.SpeciesID != "" {
		listOutput, err := o.characterRepo.ListBySpeciesID(ctx, characterrepo.ListBySpeciesIDInput{
			SpeciesID: input.SpeciesID,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list characters by species")
		}
		return &character.ListCharactersOutput{Characters: listOutput.Characters}, nil
	}

	listOutput, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{Characters: listOutput.Characters}, nil
}

// applyDerivedFields refreshes the stored Mind value and per-attribute
// bands from the current species catalog and ruleset. These are the
// persisted display fields; effective values are never stored.
func (o *Orchestrator) applyDerivedFields(ctx context.Context, char *entities.Character) error {
	species, rs, err := o.loadResolutionContext(ctx, char)
	if err != nil {
		return err
	}

	if char.Stats == nil {
		char.Stats = make(map[string]entities.AttributeValue)
	}

	mindEnabled := true
	for _, sp := range species {
		if sp != nil && !sp.AllowsMind {
			mindEnabled = false
			break
		}
	}

	mind := 0.0
	if mindEnabled {
		mind = o.engine.ComputeMind(
			o.engine.LookupBaseValue(char.Stats, entities.AttributeIntelligence),
			o.engine.LookupBaseValue(char.Stats, entities.AttributeWisdom),
		)
	}
	char.Stats[entities.AttributeMind] = entities.AttributeValue{Value: mind}

	table := o.bands(rs)
	for key, av := range char.Stats {
		av.Band = o.engine.ClassifyStat(table, av.Value).Label
		char.Stats[key] = av
	}

	return nil
}

// loadResolutionContext fetches the character's species and the
// ruleset, the two catalog slices every resolution needs.
func (o *Orchestrator) loadResolutionContext(ctx context.Context, char *entities.Character) ([]*entities.Species, *entities.Ruleset, error) {
	var species []*entities.Species
	if len(char.SpeciesIDs) > 0 {
		batchOutput, err := o.speciesRepo.GetBatch(ctx, speciesrepo.GetBatchInput{IDs: char.SpeciesIDs})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to get species")
		}
		species = batchOutput.Species
	}

	rulesetOutput, err := o.rulesetRepo.Get(ctx, rulesetrepo.GetInput{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get ruleset")
	}

	return species, rulesetOutput.Ruleset, nil
}
