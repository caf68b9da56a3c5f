package character

import (
	"context"

	"github.com/statforge/statforge/internal/engine"
	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	bonusrepo "github.com/statforge/statforge/internal/repositories/bonus"
	characterrepo "github.com/statforge/statforge/internal/repositories/character"
	"github.com/statforge/statforge/internal/services/character"
)

// ResolveStats computes the full effective sheet for one character
func (o *Orchestrator) ResolveStats(ctx context.Context, input *character.ResolveStatsInput) (*character.ResolveStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, species, bonuses, rs, err := o.loadFullContext(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	resolveOutput, err := o.engine.ResolveAllStats(ctx, &engine.ResolveAllStatsInput{
		Character:       char,
		Species:         species,
		Bonuses:         bonuses,
		RankTable:       o.bands(rs),
		ExtraAttributes: rs.ExtraStats,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve stats")
	}

	stats := make([]character.ResolvedAttribute, len(resolveOutput.Stats))
	for i, st := range resolveOutput.Stats {
		stats[i] = character.ResolvedAttribute{
			Attribute: st.Attribute,
			Base:      st.Base,
			Effective: st.Effective,
			Rank:      st.Band.Rank,
			SubRank:   st.Band.Label,
		}
	}

	return &character.ResolveStatsOutput{
		CharacterID: char.ID,
		Stats:       stats,
		MindEnabled: resolveOutput.MindEnabled,
	}, nil
}

// DeriveEquivalencies resolves a character's effective sheet and
// projects it through the merged global and species equivalency tables
func (o *Orchestrator) DeriveEquivalencies(ctx context.Context, input *character.DeriveEquivalenciesInput) (*character.DeriveEquivalenciesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, species, bonuses, rs, err := o.loadFullContext(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	resolveOutput, err := o.engine.ResolveAllStats(ctx, &engine.ResolveAllStatsInput{
		Character:       char,
		Species:         species,
		Bonuses:         bonuses,
		RankTable:       o.bands(rs),
		ExtraAttributes: rs.ExtraStats,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve stats")
	}

	effective := make(map[string]float64, len(resolveOutput.Stats))
	for _, st := range resolveOutput.Stats {
		effective[st.Attribute] = st.Effective
	}

	deriveOutput, err := o.engine.DeriveEquivalencies(ctx, &engine.DeriveEquivalenciesInput{
		EffectiveStats: effective,
		Global:         rs.Equivalencies,
		Species:        species,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive equivalencies")
	}

	return &character.DeriveEquivalenciesOutput{
		CharacterID: char.ID,
		Metrics:     deriveOutput.Metrics,
	}, nil
}

// loadFullContext fetches everything one resolution needs: the
// character, its species in reference order, the bonus catalog entries
// its assignments point at, and the ruleset.
func (o *Orchestrator) loadFullContext(ctx context.Context, characterID string) (
	*entities.Character, []*entities.Species, map[string]*entities.Bonus, *entities.Ruleset, error,
) {
	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "failed to get character")
	}
	char := getOutput.Character

	species, rs, err := o.loadResolutionContext(ctx, char)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	bonuses, err := o.loadBonusCatalog(ctx, char)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return char, species, bonuses, rs, nil
}

// loadBonusCatalog fetches the bonuses a character's assignments point
// at. Assignments referencing deleted bonuses are simply absent from
// the map; the engine skips them.
func (o *Orchestrator) loadBonusCatalog(ctx context.Context, char *entities.Character) (map[string]*entities.Bonus, error) {
	if len(char.Bonuses) == 0 {
		return map[string]*entities.Bonus{}, nil
	}

	ids := make([]string, len(char.Bonuses))
	for i, assign := range char.Bonuses {
		ids[i] = assign.BonusID
	}

	batchOutput, err := o.bonusRepo.GetBatch(ctx, bonusrepo.GetBatchInput{IDs: ids})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get bonuses")
	}
	return batchOutput.Bonuses, nil
}
