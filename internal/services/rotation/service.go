// Package rotation orchestrates rotation lifecycle operations: loading
// snapshots from storage, mutating them through the domain model, and
// persisting the result.
package rotation

//go:generate mockgen -destination=mock/mock_service.go -package=mockrotationsvc -source=service.go

import (
	"context"
	"strings"

	"github.com/soeforge/rotation-builder/internal/clients/gamedata"
	domain "github.com/soeforge/rotation-builder/internal/domain/rotation"
	apperrors "github.com/soeforge/rotation-builder/internal/errors"
	"github.com/soeforge/rotation-builder/internal/repositories/rotations"
	"github.com/soeforge/rotation-builder/internal/uuid"
)

// Repository is an alias for the rotation repository interface
type Repository = rotations.Repository

// Service defines the rotation service interface
type Service interface {
	// Create builds and stores a new rotation for a class/spec pair
	Create(ctx context.Context, input *CreateInput) (*domain.Rotation, error)

	// Get retrieves a rotation by ID
	Get(ctx context.Context, rotationID string) (*domain.Rotation, error)

	// List retrieves stored rotations, optionally filtered by class/spec
	List(ctx context.Context, input *ListInput) ([]*domain.Rotation, error)

	// Delete removes a rotation
	Delete(ctx context.Context, rotationID string) error

	// AddSpell inserts a spell entry into a rotation
	AddSpell(ctx context.Context, input *AddSpellInput) (*domain.Rotation, error)

	// RemoveSpell removes the entry at a priority
	RemoveSpell(ctx context.Context, input *RemoveSpellInput) (*domain.Rotation, error)

	// MoveSpell moves an entry between priorities
	MoveSpell(ctx context.Context, input *MoveSpellInput) (*domain.Rotation, error)

	// UpdateSpell edits the entry at a priority
	UpdateSpell(ctx context.Context, input *UpdateSpellInput) (*domain.Rotation, error)

	// UpdateMetadata edits a rotation's metadata
	UpdateMetadata(ctx context.Context, input *UpdateMetadataInput) (*domain.Rotation, error)
}

// CreateInput contains data for creating a rotation
type CreateInput struct {
	ClassName   string
	SpecName    string
	Name        string // Optional, defaults to "<Class> <Spec> Rotation"
	Author      string
	Description string
	Tags        []string
}

// ListInput filters List; zero values mean no filter
type ListInput struct {
	ClassName string
	SpecName  string
}

// AddSpellInput contains data for inserting a spell entry
type AddSpellInput struct {
	RotationID string
	Name       string
	Condition  string
	Priority   int // 0 appends at the end
}

// RemoveSpellInput identifies the entry to remove
type RemoveSpellInput struct {
	RotationID string
	Priority   int
}

// MoveSpellInput identifies the entry to move and its destination
type MoveSpellInput struct {
	RotationID string
	From       int
	To         int
}

// UpdateSpellInput contains the entry fields to change; nil fields are
// left alone
type UpdateSpellInput struct {
	RotationID string
	Priority   int
	Name       *string
	Condition  *string
	Enabled    *bool
	Notes      *string
}

// UpdateMetadataInput contains the metadata fields to change; nil fields
// are left alone
type UpdateMetadataInput struct {
	RotationID  string
	Name        *string
	Author      *string
	Version     *string
	Description *string
	Tags        *[]string
}

// service implements the Service interface
type service struct {
	catalog     gamedata.Client
	repository  Repository
	idGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog     gamedata.Client // Required
	Repository  Repository      // Required
	IDGenerator uuid.Generator  // Optional, will use default if nil
}

// NewService creates a new rotation service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		catalog:    cfg.Catalog,
		repository: cfg.Repository,
	}

	if cfg.IDGenerator != nil {
		svc.idGenerator = cfg.IDGenerator
	} else {
		svc.idGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// Create builds and stores a new rotation for a class/spec pair
func (s *service) Create(ctx context.Context, input *CreateInput) (*domain.Rotation, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	rot, err := domain.New(&domain.Config{
		ClassName:   input.ClassName,
		SpecName:    input.SpecName,
		Catalog:     s.catalog,
		IDGenerator: s.idGenerator,
	})
	if err != nil {
		return nil, err
	}

	rot.ID = s.idGenerator.New()
	if strings.TrimSpace(input.Name) != "" {
		rot.Metadata.Name = input.Name
	}
	rot.Metadata.Author = input.Author
	rot.Metadata.Description = input.Description
	rot.Metadata.Tags = input.Tags

	if err := s.repository.Create(ctx, rot.ToSnapshot()); err != nil {
		return nil, apperrors.Wrap(err, "failed to store rotation").
			WithMeta("rotation_id", rot.ID)
	}

	return rot, nil
}

// Get retrieves a rotation by ID
func (s *service) Get(ctx context.Context, rotationID string) (*domain.Rotation, error) {
	if strings.TrimSpace(rotationID) == "" {
		return nil, apperrors.InvalidArgument("rotation ID is required")
	}

	return s.load(ctx, rotationID)
}

// List retrieves stored rotations, optionally filtered by class/spec
func (s *service) List(ctx context.Context, input *ListInput) ([]*domain.Rotation, error) {
	if input == nil {
		input = &ListInput{}
	}

	var snaps []*domain.Snapshot
	var err error
	if input.ClassName != "" {
		snaps, err = s.repository.GetByClass(ctx, input.ClassName)
	} else {
		snaps, err = s.repository.List(ctx)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list rotations")
	}

	result := make([]*domain.Rotation, 0, len(snaps))
	for _, snap := range snaps {
		if input.SpecName != "" && snap.Metadata.SpecName != input.SpecName {
			continue
		}
		rot, err := s.hydrate(snap)
		if err != nil {
			return nil, err
		}
		result = append(result, rot)
	}

	return result, nil
}

// Delete removes a rotation
func (s *service) Delete(ctx context.Context, rotationID string) error {
	if strings.TrimSpace(rotationID) == "" {
		return apperrors.InvalidArgument("rotation ID is required")
	}

	if err := s.repository.Delete(ctx, rotationID); err != nil {
		return apperrors.Wrapf(err, "failed to delete rotation '%s'", rotationID).
			WithMeta("rotation_id", rotationID)
	}

	return nil
}

// AddSpell inserts a spell entry into a rotation
func (s *service) AddSpell(ctx context.Context, input *AddSpellInput) (*domain.Rotation, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	rot, err := s.load(ctx, input.RotationID)
	if err != nil {
		return nil, err
	}

	if _, err := rot.AddSpell(input.Name, input.Condition, input.Priority); err != nil {
		return nil, err
	}

	return s.store(ctx, rot)
}

// RemoveSpell removes the entry at a priority
func (s *service) RemoveSpell(ctx context.Context, input *RemoveSpellInput) (*domain.Rotation, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	rot, err := s.load(ctx, input.RotationID)
	if err != nil {
		return nil, err
	}

	if !rot.RemoveSpell(input.Priority) {
		return nil, apperrors.NotFoundf("no spell at priority %d", input.Priority).
			WithMeta("rotation_id", input.RotationID)
	}

	return s.store(ctx, rot)
}

// MoveSpell moves an entry between priorities
func (s *service) MoveSpell(ctx context.Context, input *MoveSpellInput) (*domain.Rotation, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	rot, err := s.load(ctx, input.RotationID)
	if err != nil {
		return nil, err
	}

	if !rot.MoveSpell(input.From, input.To) {
		return nil, apperrors.NotFoundf("no spell at priority %d", input.From).
			WithMeta("rotation_id", input.RotationID)
	}

	return s.store(ctx, rot)
}

// UpdateSpell edits the entry at a priority
func (s *service) UpdateSpell(ctx context.Context, input *UpdateSpellInput) (*domain.Rotation, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	rot, err := s.load(ctx, input.RotationID)
	if err != nil {
		return nil, err
	}

	update := &domain.SpellUpdate{
		Name:      input.Name,
		Condition: input.Condition,
		Enabled:   input.Enabled,
		Notes:     input.Notes,
	}
	if err := rot.UpdateSpell(input.Priority, update); err != nil {
		return nil, err
	}

	return s.store(ctx, rot)
}

// UpdateMetadata edits a rotation's metadata
func (s *service) UpdateMetadata(ctx context.Context, input *UpdateMetadataInput) (*domain.Rotation, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	rot, err := s.load(ctx, input.RotationID)
	if err != nil {
		return nil, err
	}

	if err := rot.UpdateMetadata(&domain.MetadataUpdate{
		Name:        input.Name,
		Author:      input.Author,
		Version:     input.Version,
		Description: input.Description,
		Tags:        input.Tags,
	}); err != nil {
		return nil, err
	}

	return s.store(ctx, rot)
}

// load fetches a snapshot and rehydrates the domain model around it
func (s *service) load(ctx context.Context, rotationID string) (*domain.Rotation, error) {
	snap, err := s.repository.Get(ctx, rotationID)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to get rotation '%s'", rotationID).
			WithMeta("rotation_id", rotationID)
	}

	return s.hydrate(snap)
}

func (s *service) hydrate(snap *domain.Snapshot) (*domain.Rotation, error) {
	rot, err := domain.FromSnapshot(snap, &domain.Config{
		Catalog:     s.catalog,
		IDGenerator: s.idGenerator,
	})
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to restore rotation '%s'", snap.ID).
			WithMeta("rotation_id", snap.ID)
	}
	return rot, nil
}

// store persists the mutated rotation and returns it
func (s *service) store(ctx context.Context, rot *domain.Rotation) (*domain.Rotation, error) {
	if err := s.repository.Update(ctx, rot.ToSnapshot()); err != nil {
		return nil, apperrors.Wrap(err, "failed to store rotation").
			WithMeta("rotation_id", rot.ID)
	}
	return rot, nil
}
