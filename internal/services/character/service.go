// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/statforge/statforge/internal/services/character Service

import (
	"context"

	"github.com/statforge/statforge/internal/entities"
)

// Service defines the interface for character operations
type Service interface {
	// Catalog lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// Resolution
	ResolveStats(ctx context.Context, input *ResolveStatsInput) (*ResolveStatsOutput, error)
	DeriveEquivalencies(ctx context.Context, input *DeriveEquivalenciesInput) (*DeriveEquivalenciesOutput, error)

	// Rankings
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)
}

// Catalog lifecycle types

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name        string
	Description string
	Level       int32
	SpeciesIDs  []string
	Stats       map[string]float64
	Skills      []entities.SkillAssignment
	Bonuses     []entities.BonusAssignment
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// UpdateCharacterInput defines the request for updating a character
type UpdateCharacterInput struct {
	Character *entities.Character
}

// UpdateCharacterOutput defines the response for updating a character
type UpdateCharacterOutput struct {
	Character *entities.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	// SpeciesID optionally narrows the listing to one species
	SpeciesID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// Resolution types

// ResolveStatsInput defines the request for resolving a full sheet
type ResolveStatsInput struct {
	CharacterID string
}

// ResolvedAttribute is one attribute of a resolved sheet
type ResolvedAttribute struct {
	Attribute string
	Base      float64
	Effective float64
	Rank      string
	SubRank   string
}

// ResolveStatsOutput defines the response for resolving a full sheet
type ResolveStatsOutput struct {
	CharacterID string
	Stats       []ResolvedAttribute
	MindEnabled bool
}

// DeriveEquivalenciesInput defines the request for deriving metrics
type DeriveEquivalenciesInput struct {
	CharacterID string
}

// DeriveEquivalenciesOutput defines the response for deriving metrics
type DeriveEquivalenciesOutput struct {
	CharacterID string
	Metrics     []entities.DerivedMetric
}

// Rankings types

// LeaderboardInput defines the request for a top-N ranking
type LeaderboardInput struct {
	Attribute string
	// Limit caps the number of entries; 0 means all
	Limit int32
	// ByBase ranks on stored base values instead of effective values
	ByBase bool
}

// LeaderboardEntry is one row of a ranking
type LeaderboardEntry struct {
	CharacterID string
	Name        string
	Value       float64
	Band        string
}

// LeaderboardOutput defines the response for a top-N ranking
type LeaderboardOutput struct {
	Attribute string
	Entries   []LeaderboardEntry
}
