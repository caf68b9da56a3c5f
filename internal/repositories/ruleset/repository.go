// Package ruleset provides the interface for ruleset persistence.
// There is exactly one ruleset document per deployment.
package ruleset

//go:generate mockgen -destination=mock/mock_repository.go -package=rulesetmock github.com/statforge/statforge/internal/repositories/ruleset Repository

import (
	"context"

	"github.com/statforge/statforge/internal/entities"
)

// Repository defines the interface for ruleset persistence
type Repository interface {
	// Get retrieves the ruleset. When none has been stored yet it
	// returns an empty ruleset, not an error; every field has a usable
	// zero value
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores the ruleset, replacing any previous document
	// Returns errors.InvalidArgument for validation failures
	Set(ctx context.Context, input SetInput) (*SetOutput, error)
}

// GetInput defines the input for getting the ruleset
type GetInput struct{}

// GetOutput defines the output for getting the ruleset
type GetOutput struct {
	Ruleset *entities.Ruleset
}

// SetInput defines the input for storing the ruleset
type SetInput struct {
	Ruleset *entities.Ruleset
}

// SetOutput defines the output for storing the ruleset
type SetOutput struct {
	Ruleset *entities.Ruleset
}
