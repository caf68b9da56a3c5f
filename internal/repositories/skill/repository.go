// Package skill provides the interface for skill catalog persistence
package skill

//go:generate mockgen -destination=mock/mock_repository.go -package=skillmock github.com/statforge/statforge/internal/repositories/skill Repository

import (
	"context"

	"github.com/statforge/statforge/internal/entities"
)

// Repository defines the interface for skill catalog persistence
type Repository interface {
	// Create creates a new skill
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if skill with same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a skill by ID
	// Returns errors.NotFound if skill doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update updates an existing skill
	// Returns errors.NotFound if skill doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a skill by ID
	// Returns errors.NotFound if skill doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every stored skill
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a skill
type CreateInput struct {
	Skill *entities.Skill
}

// CreateOutput defines the output for creating a skill
type CreateOutput struct {
	Skill *entities.Skill
}

// GetInput defines the input for getting a skill
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a skill
type GetOutput struct {
	Skill *entities.Skill
}

// UpdateInput defines the input for updating a skill
type UpdateInput struct {
	Skill *entities.Skill
}

// UpdateOutput defines the output for updating a skill
type UpdateOutput struct {
	Skill *entities.Skill
}

// DeleteInput defines the input for deleting a skill
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a skill
type DeleteOutput struct{}

// ListInput defines the input for listing all skills
type ListInput struct{}

// ListOutput defines the output for listing all skills
type ListOutput struct {
	Skills []*entities.Skill
}
