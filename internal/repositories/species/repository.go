// Package species provides the interface for species catalog persistence
package species

//go:generate mockgen -destination=mock/mock_repository.go -package=speciesmock github.com/statforge/statforge/internal/repositories/species Repository

import (
	"context"

	"github.com/statforge/statforge/internal/entities"
)

// Repository defines the interface for species catalog persistence
type Repository interface {
	// Create creates a new species
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if species with same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a species by ID
	// Returns errors.NotFound if species doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetBatch retrieves several species by ID, preserving input order.
	// Missing IDs yield errors.NotFound
	GetBatch(ctx context.Context, input GetBatchInput) (*GetBatchOutput, error)

	// Update updates an existing species
	// Returns errors.NotFound if species doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a species by ID
	// Returns errors.NotFound if species doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every stored species
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a species
type CreateInput struct {
	Species *entities.Species
}

// CreateOutput defines the output for creating a species
type CreateOutput struct {
	Species *entities.Species
}

// GetInput defines the input for getting a species
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a species
type GetOutput struct {
	Species *entities.Species
}

// GetBatchInput defines the input for getting several species
type GetBatchInput struct {
	IDs []string
}

// GetBatchOutput defines the output for getting several species
type GetBatchOutput struct {
	Species []*entities.Species
}

// UpdateInput defines the input for updating a species
type UpdateInput struct {
	Species *entities.Species
}

// UpdateOutput defines the output for updating a species
type UpdateOutput struct {
	Species *entities.Species
}

// DeleteInput defines the input for deleting a species
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a species
type DeleteOutput struct{}

// ListInput defines the input for listing all species
type ListInput struct{}

// ListOutput defines the output for listing all species
type ListOutput struct {
	Species []*entities.Species
}
