// Package rotations provides persistence for rotation snapshots, with a
// Redis-backed implementation and an in-memory twin for tests and
// offline use.
package rotations

//go:generate mockgen -destination=mock/mock_repository.go -package=mockrotations -source=repository.go

import (
	"context"

	"github.com/soeforge/rotation-builder/internal/domain/rotation"
)

// Repository defines the interface for rotation storage
type Repository interface {
	// Create stores a new rotation snapshot
	Create(ctx context.Context, snap *rotation.Snapshot) error

	// Get retrieves a rotation snapshot by ID
	Get(ctx context.Context, id string) (*rotation.Snapshot, error)

	// Update replaces an existing rotation snapshot
	Update(ctx context.Context, snap *rotation.Snapshot) error

	// Delete removes a rotation snapshot
	Delete(ctx context.Context, id string) error

	// GetByClass retrieves all rotations for a class
	GetByClass(ctx context.Context, className string) ([]*rotation.Snapshot, error)

	// List retrieves all stored rotations
	List(ctx context.Context) ([]*rotation.Snapshot, error)
}
