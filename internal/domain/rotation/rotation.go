// Package rotation owns the priority-ordered rotation model: an ordered
// list of spell entries plus metadata, with dense 1..N priorities
// maintained across every mutation.
package rotation

import (
	"fmt"
	"sort"
	"time"

	"github.com/soeforge/rotation-builder/internal/clients/gamedata"
	"github.com/soeforge/rotation-builder/internal/domain/condition"
	apperrors "github.com/soeforge/rotation-builder/internal/errors"
	"github.com/soeforge/rotation-builder/internal/uuid"
)

// SpellEntry is one action/trigger pair in a rotation. Entries are owned
// by their Rotation and mutated only through its API.
type SpellEntry struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Condition string `json:"condition"`
	Priority  int    `json:"priority"`
	Enabled   bool   `json:"enabled"`
	Notes     string `json:"notes"`
}

// Metadata describes a rotation
type Metadata struct {
	Name        string    `json:"name"`
	ClassName   string    `json:"class_name"`
	SpecName    string    `json:"spec_name"`
	Author      string    `json:"author"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
	Tags        []string  `json:"tags"`
}

// Rotation is an ordered list of spell entries for one class/spec. After
// any mutation settles, entry priorities are exactly the dense ascending
// permutation 1..N and list order matches priority order. Failed
// operations leave the rotation untouched.
type Rotation struct {
	ID       string
	Metadata Metadata
	Spells   []*SpellEntry
	SpecID   int

	catalog   gamedata.Client
	validator *condition.Validator
	idGen     uuid.Generator
}

// Config holds configuration for creating a rotation
type Config struct {
	ClassName string
	SpecName  string
	Catalog   gamedata.Client

	// IDGenerator stamps entry IDs; optional
	IDGenerator uuid.Generator
}

// New creates a rotation for a class/spec pair, resolving its spec ID
// through the catalog
func New(cfg *Config) (*Rotation, error) {
	if cfg == nil || cfg.Catalog == nil {
		return nil, apperrors.InvalidArgument("catalog is required")
	}

	specID, err := cfg.Catalog.ResolveSpecID(cfg.ClassName, cfg.SpecName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Rotation{
		Metadata: Metadata{
			Name:       fmt.Sprintf("%s %s Rotation", cfg.ClassName, cfg.SpecName),
			ClassName:  cfg.ClassName,
			SpecName:   cfg.SpecName,
			Version:    "1.0",
			CreatedAt:  now,
			ModifiedAt: now,
		},
		SpecID:    specID,
		catalog:   cfg.Catalog,
		validator: condition.NewValidatorForClass(cfg.ClassName),
		idGen:     cfg.IDGenerator,
	}, nil
}

// AddSpell appends or inserts a spell entry. A priority of 0 or less
// appends at the end; otherwise existing entries at or above the target
// priority shift up by one to open the slot. The name must be legal for
// the rotation's class/spec and the condition must validate; both are
// checked before anything shifts.
func (r *Rotation) AddSpell(name, cond string, priority int) (*SpellEntry, error) {
	legal, err := r.catalog.SpellsForSpec(r.Metadata.ClassName, r.Metadata.SpecName)
	if err != nil {
		return nil, err
	}
	if !contains(legal, name) {
		return nil, apperrors.UnknownSpellf("spell %s not found for %s/%s",
			name, r.Metadata.ClassName, r.Metadata.SpecName)
	}

	if result := r.validator.Validate(cond); !result.Valid {
		return nil, apperrors.InvalidCondition(
			fmt.Sprintf("invalid condition: %s", result.Message), string(result.Reason))
	}

	if priority <= 0 {
		priority = len(r.Spells) + 1
	} else {
		for _, spell := range r.Spells {
			if spell.Priority >= priority {
				spell.Priority++
			}
		}
		if priority > len(r.Spells)+1 {
			priority = len(r.Spells) + 1
		}
	}

	entry := &SpellEntry{
		Name:      name,
		Condition: cond,
		Priority:  priority,
		Enabled:   true,
	}
	if r.idGen != nil {
		entry.ID = r.idGen.New()
	}

	r.Spells = append(r.Spells, entry)
	r.sortSpells()
	r.touch()
	return entry, nil
}

// RemoveSpell removes the entry at the given priority, closing the gap.
// It reports whether an entry was found.
func (r *Rotation) RemoveSpell(priority int) bool {
	for i, spell := range r.Spells {
		if spell.Priority == priority {
			r.Spells = append(r.Spells[:i], r.Spells[i+1:]...)
			for _, s := range r.Spells {
				if s.Priority > priority {
					s.Priority--
				}
			}
			r.touch()
			return true
		}
	}
	return false
}

// MoveSpell moves the entry at priority from to priority to, shifting the
// entries between them. Moving an entry onto itself is a no-op success;
// a missing from priority returns false and changes nothing.
func (r *Rotation) MoveSpell(from, to int) bool {
	if from == to {
		return true
	}

	moved := r.spellAt(from)
	if moved == nil {
		return false
	}

	if to > len(r.Spells) {
		to = len(r.Spells)
	}
	if to < 1 {
		to = 1
	}

	if from < to {
		for _, spell := range r.Spells {
			if spell.Priority > from && spell.Priority <= to {
				spell.Priority--
			}
		}
	} else {
		for _, spell := range r.Spells {
			if spell.Priority >= to && spell.Priority < from {
				spell.Priority++
			}
		}
	}

	moved.Priority = to
	r.sortSpells()
	r.touch()
	return true
}

// SpellUpdate carries the fields UpdateSpell may change; nil fields are
// left alone
type SpellUpdate struct {
	Name      *string
	Condition *string
	Enabled   *bool
	Notes     *string
}

// UpdateSpell updates the entry at the given priority in place. A
// condition update is re-validated before anything is applied.
func (r *Rotation) UpdateSpell(priority int, update *SpellUpdate) error {
	if update == nil {
		return apperrors.InvalidArgument("update cannot be nil")
	}

	spell := r.spellAt(priority)
	if spell == nil {
		return apperrors.NotFoundf("no spell at priority %d", priority)
	}

	if update.Condition != nil {
		if result := r.validator.Validate(*update.Condition); !result.Valid {
			return apperrors.InvalidCondition(
				fmt.Sprintf("invalid condition: %s", result.Message), string(result.Reason))
		}
	}

	if update.Name != nil {
		spell.Name = *update.Name
	}
	if update.Condition != nil {
		spell.Condition = *update.Condition
	}
	if update.Enabled != nil {
		spell.Enabled = *update.Enabled
	}
	if update.Notes != nil {
		spell.Notes = *update.Notes
	}

	r.touch()
	return nil
}

// MetadataUpdate carries the fields UpdateMetadata may change; nil fields
// are left alone. Class and spec are fixed at creation.
type MetadataUpdate struct {
	Name        *string
	Author      *string
	Version     *string
	Description *string
	Tags        *[]string
}

// UpdateMetadata updates the rotation's descriptive metadata in place
func (r *Rotation) UpdateMetadata(update *MetadataUpdate) error {
	if update == nil {
		return apperrors.InvalidArgument("update cannot be nil")
	}

	if update.Name != nil {
		r.Metadata.Name = *update.Name
	}
	if update.Author != nil {
		r.Metadata.Author = *update.Author
	}
	if update.Version != nil {
		r.Metadata.Version = *update.Version
	}
	if update.Description != nil {
		r.Metadata.Description = *update.Description
	}
	if update.Tags != nil {
		r.Metadata.Tags = *update.Tags
	}

	r.touch()
	return nil
}

// SpellAt returns the entry at the given priority, or nil
func (r *Rotation) SpellAt(priority int) *SpellEntry {
	return r.spellAt(priority)
}

func (r *Rotation) spellAt(priority int) *SpellEntry {
	for _, spell := range r.Spells {
		if spell.Priority == priority {
			return spell
		}
	}
	return nil
}

func (r *Rotation) sortSpells() {
	sort.SliceStable(r.Spells, func(i, j int) bool {
		return r.Spells[i].Priority < r.Spells[j].Priority
	})
}

func (r *Rotation) touch() {
	r.Metadata.ModifiedAt = time.Now()
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}
