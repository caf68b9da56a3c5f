package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/statforge/statforge/internal/config"
	"github.com/statforge/statforge/internal/engine/stacking"
	charorch "github.com/statforge/statforge/internal/orchestrators/character"
	snaporch "github.com/statforge/statforge/internal/orchestrators/snapshot"
	"github.com/statforge/statforge/internal/pkg/clock"
	"github.com/statforge/statforge/internal/pkg/idgen"
	redisclient "github.com/statforge/statforge/internal/redis"
	bonusrepo "github.com/statforge/statforge/internal/repositories/bonus"
	characterrepo "github.com/statforge/statforge/internal/repositories/character"
	rulesetrepo "github.com/statforge/statforge/internal/repositories/ruleset"
	skillrepo "github.com/statforge/statforge/internal/repositories/skill"
	speciesrepo "github.com/statforge/statforge/internal/repositories/species"
	charactersvc "github.com/statforge/statforge/internal/services/character"
	snapshotsvc "github.com/statforge/statforge/internal/services/snapshot"
)

// app bundles the wired service layer for one command invocation.
type app struct {
	characters charactersvc.Service
	snapshots  snapshotsvc.Service
	client     redisclient.Client
}

// newApp loads configuration and wires the repositories, engine, and
// orchestrators against a live Redis connection.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rankTable, err := config.LoadRankTable(cfg.RankTablePath)
	if err != nil {
		return nil, err
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	clk := clock.New()

	characterRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}
	speciesRepo, err := speciesrepo.NewRedis(&speciesrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create species repository: %w", err)
	}
	bonusRepo, err := bonusrepo.NewRedis(&bonusrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create bonus repository: %w", err)
	}
	skillRepo, err := skillrepo.NewRedis(&skillrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create skill repository: %w", err)
	}
	rulesetRepo, err := rulesetrepo.NewRedis(&rulesetrepo.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		return nil, fmt.Errorf("failed to create ruleset repository: %w", err)
	}

	eng, err := stacking.New(&stacking.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	characters, err := charorch.New(&charorch.Config{
		CharacterRepo: characterRepo,
		SpeciesRepo:   speciesRepo,
		BonusRepo:     bonusRepo,
		RulesetRepo:   rulesetRepo,
		Engine:        eng,
		IDGenerator:   idgen.NewPrefixed("char"),
		RankTable:     rankTable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	snapshots, err := snaporch.New(&snaporch.Config{
		CharacterRepo: characterRepo,
		SpeciesRepo:   speciesRepo,
		BonusRepo:     bonusRepo,
		SkillRepo:     skillRepo,
		RulesetRepo:   rulesetRepo,
		Clock:         clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot orchestrator: %w", err)
	}

	return &app{
		characters: characters,
		snapshots:  snapshots,
		client:     client,
	}, nil
}

// Close releases the Redis connection.
func (a *app) Close() error {
	return a.client.Close()
}

// signalContext returns a context cancelled on ctrl-C or SIGTERM so
// commands stop cleanly mid-flight.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
