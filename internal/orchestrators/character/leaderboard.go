package character

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/statforge/statforge/internal/engine"
	"github.com/statforge/statforge/internal/entities"
	"github.com/statforge/statforge/internal/errors"
	characterrepo "github.com/statforge/statforge/internal/repositories/character"
	rulesetrepo "github.com/statforge/statforge/internal/repositories/ruleset"
	speciesrepo "github.com/statforge/statforge/internal/repositories/species"
	"github.com/statforge/statforge/internal/services/character"
)

// leaderboardConcurrency bounds how many characters resolve at once.
const leaderboardConcurrency = 8

// Leaderboard ranks the whole catalog by one attribute, highest first.
// Characters resolve concurrently; ties break by name, then id, so the
// ordering is stable across runs.
func (o *Orchestrator) Leaderboard(ctx context.Context, input *character.LeaderboardInput) (*character.LeaderboardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Attribute == "" {
		return nil, errors.InvalidArgument("attribute is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	listOutput, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	rulesetOutput, err := o.rulesetRepo.Get(ctx, rulesetrepo.GetInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get ruleset")
	}
	rs := rulesetOutput.Ruleset

	var mu sync.Mutex
	entries := make([]character.LeaderboardEntry, 0, len(listOutput.Characters))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(leaderboardConcurrency)
	for _, char := range listOutput.Characters {
		char := char
		g.Go(func() error {
			entry, err := o.leaderboardEntry(gctx, char, input.Attribute, input.ByBase, rs)
			if err != nil {
				return err
			}
			mu.Lock()
			entries = append(entries, entry)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.CharacterID < b.CharacterID
	})

	if input.Limit > 0 && int(input.Limit) < len(entries) {
		entries = entries[:input.Limit]
	}

	return &character.LeaderboardOutput{
		Attribute: input.Attribute,
		Entries:   entries,
	}, nil
}

func (o *Orchestrator) leaderboardEntry(
	ctx context.Context,
	char *entities.Character,
	attribute string,
	byBase bool,
	rs *entities.Ruleset,
) (character.LeaderboardEntry, error) {
	if byBase {
		value := char.BaseValue(attribute)
		return character.LeaderboardEntry{
			CharacterID: char.ID,
			Name:        char.Name,
			Value:       value,
			Band:        o.engine.ClassifyStat(o.bands(rs), value).Label,
		}, nil
	}

	var species []*entities.Species
	if len(char.SpeciesIDs) > 0 {
		batchOutput, err := o.speciesRepo.GetBatch(ctx, speciesrepo.GetBatchInput{IDs: char.SpeciesIDs})
		if err != nil {
			return character.LeaderboardEntry{}, errors.Wrapf(err, "failed to get species for character %s", char.ID)
		}
		species = batchOutput.Species
	}

	bonuses, err := o.loadBonusCatalog(ctx, char)
	if err != nil {
		return character.LeaderboardEntry{}, err
	}

	resolveOutput, err := o.engine.ResolveStat(ctx, &engine.ResolveStatInput{
		Character: char,
		Attribute: attribute,
		Species:   species,
		Bonuses:   bonuses,
		RankTable: o.bands(rs),
	})
	if err != nil {
		return character.LeaderboardEntry{}, errors.Wrapf(err, "failed to resolve %s for character %s", attribute, char.ID)
	}

	return character.LeaderboardEntry{
		CharacterID: char.ID,
		Name:        char.Name,
		Value:       resolveOutput.Effective,
		Band:        resolveOutput.Band.Label,
	}, nil
}
