// Package snapshot defines the interface for full-catalog export and
// import operations
package snapshot

//go:generate mockgen -destination=mock/mock_service.go -package=snapshotmock github.com/statforge/statforge/internal/services/snapshot Service

import (
	"context"

	"github.com/statforge/statforge/internal/entities"
)

// Service defines the interface for snapshot operations
type Service interface {
	// Export collects every catalog into one snapshot document
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)

	// Import upserts every record of a snapshot into the catalogs.
	// Returns errors.DataLoss when the snapshot is structurally invalid
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}

// ExportInput defines the request for exporting a snapshot
type ExportInput struct{}

// ExportOutput defines the response for exporting a snapshot
type ExportOutput struct {
	Snapshot *entities.Snapshot
}

// ImportInput defines the request for importing a snapshot
type ImportInput struct {
	Snapshot *entities.Snapshot
}

// ImportOutput defines the response for importing a snapshot
type ImportOutput struct {
	CharactersImported int
	SpeciesImported    int
	BonusesImported    int
	SkillsImported     int
	RulesetImported    bool
}
