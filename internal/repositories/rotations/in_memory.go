package rotations

import (
	"context"
	"sync"

	"github.com/soeforge/rotation-builder/internal/domain/rotation"
	apperrors "github.com/soeforge/rotation-builder/internal/errors"
)

// inMemoryRepository implements Repository with process-local storage
type inMemoryRepository struct {
	mu        sync.RWMutex
	rotations map[string]*rotation.Snapshot
}

// NewInMemoryRepository creates a new in-memory rotation repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		rotations: make(map[string]*rotation.Snapshot),
	}
}

// Create stores a new rotation snapshot
func (r *inMemoryRepository) Create(_ context.Context, snap *rotation.Snapshot) error {
	if snap == nil {
		return apperrors.InvalidArgument("rotation cannot be nil")
	}
	if snap.ID == "" {
		return apperrors.InvalidArgument("rotation ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rotations[snap.ID]; exists {
		return apperrors.AlreadyExistsf("rotation with ID %s already exists", snap.ID)
	}

	r.rotations[snap.ID] = snap.Clone()
	return nil
}

// Get retrieves a rotation snapshot by ID
func (r *inMemoryRepository) Get(_ context.Context, id string) (*rotation.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, exists := r.rotations[id]
	if !exists {
		return nil, apperrors.NotFoundf("rotation not found: %s", id)
	}

	return snap.Clone(), nil
}

// Update replaces an existing rotation snapshot
func (r *inMemoryRepository) Update(_ context.Context, snap *rotation.Snapshot) error {
	if snap == nil {
		return apperrors.InvalidArgument("rotation cannot be nil")
	}
	if snap.ID == "" {
		return apperrors.InvalidArgument("rotation ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rotations[snap.ID]; !exists {
		return apperrors.NotFoundf("rotation not found: %s", snap.ID)
	}

	r.rotations[snap.ID] = snap.Clone()
	return nil
}

// Delete removes a rotation snapshot
func (r *inMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rotations[id]; !exists {
		return apperrors.NotFoundf("rotation not found: %s", id)
	}

	delete(r.rotations, id)
	return nil
}

// GetByClass retrieves all rotations for a class
func (r *inMemoryRepository) GetByClass(_ context.Context, className string) ([]*rotation.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snaps := []*rotation.Snapshot{}
	for _, snap := range r.rotations {
		if snap.Metadata.ClassName == className {
			snaps = append(snaps, snap.Clone())
		}
	}

	return snaps, nil
}

// List retrieves all stored rotations
func (r *inMemoryRepository) List(_ context.Context) ([]*rotation.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snaps := make([]*rotation.Snapshot, 0, len(r.rotations))
	for _, snap := range r.rotations {
		snaps = append(snaps, snap.Clone())
	}

	return snaps, nil
}
