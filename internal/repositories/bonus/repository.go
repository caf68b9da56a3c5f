// Package bonus provides the interface for bonus catalog persistence
package bonus

//go:generate mockgen -destination=mock/mock_repository.go -package=bonusmock github.com/statforge/statforge/internal/repositories/bonus Repository

import (
	"context"

	"github.com/statforge/statforge/internal/entities"
)

// Repository defines the interface for bonus catalog persistence
type Repository interface {
	// Create creates a new bonus
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if bonus with same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a bonus by ID
	// Returns errors.NotFound if bonus doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetBatch retrieves several bonuses by ID as a lookup map.
	// Missing IDs are omitted, not errors; stale character assignments
	// may reference deleted bonuses
	GetBatch(ctx context.Context, input GetBatchInput) (*GetBatchOutput, error)

	// Update updates an existing bonus
	// Returns errors.NotFound if bonus doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a bonus by ID
	// Returns errors.NotFound if bonus doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every stored bonus
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a bonus
type CreateInput struct {
	Bonus *entities.Bonus
}

// CreateOutput defines the output for creating a bonus
type CreateOutput struct {
	Bonus *entities.Bonus
}

// GetInput defines the input for getting a bonus
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a bonus
type GetOutput struct {
	Bonus *entities.Bonus
}

// GetBatchInput defines the input for getting several bonuses
type GetBatchInput struct {
	IDs []string
}

// GetBatchOutput defines the output for getting several bonuses
type GetBatchOutput struct {
	Bonuses map[string]*entities.Bonus
}

// UpdateInput defines the input for updating a bonus
type UpdateInput struct {
	Bonus *entities.Bonus
}

// UpdateOutput defines the output for updating a bonus
type UpdateOutput struct {
	Bonus *entities.Bonus
}

// DeleteInput defines the input for deleting a bonus
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a bonus
type DeleteOutput struct{}

// ListInput defines the input for listing all bonuses
type ListInput struct{}

// ListOutput defines the output for listing all bonuses
type ListOutput struct {
	Bonuses []*entities.Bonus
}
