// Package snapshot implements the snapshot orchestrator
package snapshot

import (
	"context"
	"log/slog"

	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	"github.com/statforge/statforge/internal/pkg/clock"
	bonusrepo "github.com/statforge/statforge/internal/repositories/bonus"
	characterrepo "github.com/statforge/statforge/internal/repositories/character"
	rulesetrepo "github.com/statforge/statforge/internal/repositories/ruleset"
	skillrepo "github.com/statforge/statforge/internal/repositories/skill"
	speciesrepo "github.com/statforge/statforge/internal/repositories/species"
	"github.com/statforge/statforge/internal/services/snapshot"
)

// Config holds the dependencies for the snapshot orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	SpeciesRepo   speciesrepo.Repository
	BonusRepo     bonusrepo.Repository
	SkillRepo     skillrepo.Repository
	RulesetRepo   rulesetrepo.Repository
	Clock         clock.Clock
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
	if c.SkillRepo == nil {
		vb.RequiredField("SkillRepo")
	}
	if c.RulesetRepo == nil {
		vb.RequiredField("RulesetRepo")
	}

	return vb.Build()
}

// Orchestrator implements the snapshot.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	speciesRepo   speciesrepo.Repository
	bonusRepo     bonusrepo.Repository
	skillRepo     skillrepo.Repository
	rulesetRepo   rulesetrepo.Repository
	clock         clock.Clock
}

// New creates a new snapshot orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		speciesRepo:   cfg.SpeciesRepo,
		bonusRepo:     cfg.BonusRepo,
		skillRepo:     cfg.SkillRepo,
		rulesetRepo:   cfg.RulesetRepo,
		clock:         c,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ snapshot.Service = (*Orchestrator)(nil)

// Export collects every catalog into one snapshot document
func (o *Orchestrator) Export(ctx context.Context, input *snapshot.ExportInput) (*snapshot.ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	characters, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	species, err := o.speciesRepo.List(ctx, speciesrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list species")
	}
	bonuses, err := o.bonusRepo.List(ctx, bonusrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bonuses")
	}
	skills, err := o.skillRepo.List(ctx, skillrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}
	rs, err := o.rulesetRepo.Get(ctx, rulesetrepo.GetInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get ruleset")
	}

	return &snapshot.ExportOutput{
		Snapshot: &entities.Snapshot{
			Characters: characters.Characters,
			Species:    species.Species,
			Bonuses:    bonuses.Bonuses,
			Skills:     skills.Skills,
			Ruleset:    rs.Ruleset,
			ExportedAt: o.clock.Now().Unix(),
		},
	}, nil
}

// Import upserts every record of a snapshot into the catalogs.
// Structural problems surface as a single DataLoss error before any
// write happens; a snapshot either passes validation whole or imports
// nothing.
func (o *Orchestrator) Import(ctx context.Context, input *snapshot.ImportInput) (*snapshot.ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Snapshot == nil {
		return nil, errors.DataLoss("invalid configuration: snapshot is missing")
	}

	if err := validateSnapshot(input.Snapshot); err != nil {
		return nil, err
	}

	out := &snapshot.ImportOutput{}

	for _, sp := range input.Snapshot.Species {
		if err := o.upsertSpecies(ctx, sp); err != nil {
			return nil, err
		}
		out.SpeciesImported++
	}
	for _, b := range input.Snapshot.Bonuses {
		if err := o.upsertBonus(ctx, b); err != nil {
			return nil, err
		}
		out.BonusesImported++
	}
	for _, sk := range input.Snapshot.Skills {
		if err := o.upsertSkill(ctx, sk); err != nil {
			return nil, err
		}
		out.SkillsImported++
	}
	for _, char := range input.Snapshot.Characters {
		if err := o.upsertCharacter(ctx, char); err != nil {
			return nil, err
		}
		out.CharactersImported++
	}
	if input.Snapshot.Ruleset != nil {
		if _, err := o.rulesetRepo.Set(ctx, rulesetrepo.SetInput{Ruleset: input.Snapshot.Ruleset}); err != nil {
			return nil, errors.Wrap(err, "failed to import ruleset")
		}
		out.RulesetImported = true
	}

	slog.InfoContext(ctx, "imported snapshot",
		"characters", out.CharactersImported,
		"species", out.SpeciesImported,
		"bonuses", out.BonusesImported,
		"skills", out.SkillsImported,
		"ruleset", out.RulesetImported)

	return out, nil
}

func (o *Orchestrator) upsertSpecies(ctx context.Context, sp *entities.Species) error {
	_, err := o.speciesRepo.Update(ctx, speciesrepo.UpdateInput{Species: sp})
	if errors.IsNotFound(err) {
		_, err = o.speciesRepo.Create(ctx, speciesrepo.CreateInput{Species: sp})
	}
	if err != nil {
		return errors.Wrapf(err, "failed to import species %s", sp.ID)
	}
	return nil
}

func (o *Orchestrator) upsertBonus(ctx context.Context, b *entities.Bonus) error {
	_, err := o.bonusRepo.Update(ctx, bonusrepo.UpdateInput{Bonus: b})
	if errors.IsNotFound(err) {
		_, err = o.bonusRepo.Create(ctx, bonusrepo.CreateInput{Bonus: b})
	}
	if err != nil {
		return errors.Wrapf(err, "failed to import bonus %s", b.ID)
	}
	return nil
}

func (o *Orchestrator) upsertSkill(ctx context.Context, sk *entities.Skill) error {
	_, err := o.skillRepo.Update(ctx, skillrepo.UpdateInput{Skill: sk})
	if errors.IsNotFound(err) {
		_, err = o.skillRepo.Create(ctx, skillrepo.CreateInput{Skill: sk})
	}
	if err != nil {
		return errors.Wrapf(err, "failed to import skill %s", sk.ID)
	}
	return nil
}

func (o *Orchestrator) upsertCharacter(ctx context.Context, char *entities.Character) error {
	_, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if errors.IsNotFound(err) {
		_, err = o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	}
	if err != nil {
		return errors.Wrapf(err, "failed to import character %s", char.ID)
	}
	return nil
}

// validateSnapshot checks structural integrity: every record carries an
// id, and modifier kinds are ones the engine understands.
func validateSnapshot(s *entities.Snapshot) error {
	for i, char := range s.Characters {
		if char == nil || char.ID == "" {
			return errors.DataLossf("invalid configuration: character %d has no id", i)
		}
	}
	for i, sp := range s.Species {
		if sp == nil || sp.ID == "" {
			return errors.DataLossf("invalid configuration: species %d has no id", i)
		}
		for _, mod := range sp.Modifiers {
			if mod.Kind != entities.ModifierPoints && mod.Kind != entities.ModifierPercentage {
				return errors.DataLossf("invalid configuration: species %s has unknown modifier kind %q", sp.ID, mod.Kind)
			}
		}
	}
	for i, b := range s.Bonuses {
		if b == nil || b.ID == "" {
			return errors.DataLossf("invalid configuration: bonus %d has no id", i)
		}
	}
	for i, sk := range s.Skills {
		if sk == nil || sk.ID == "" {
			return errors.DataLossf("invalid configuration: skill %d has no id", i)
		}
	}
	return nil
}
