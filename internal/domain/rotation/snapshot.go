package rotation

// Snapshot is a plain serializable view of a rotation, used by the
// persistence layer. It carries no behavior; FromSnapshot rehydrates a
// live rotation around it.
type Snapshot struct {
	ID       string        `json:"id,omitempty"`
	Metadata Metadata      `json:"metadata"`
	SpecID   int           `json:"spec_id"`
	Spells   []*SpellEntry `json:"spells"`
}

// ToSnapshot captures the rotation's current state. Entries are copied,
// so the snapshot stays stable if the rotation keeps mutating.
func (r *Rotation) ToSnapshot() *Snapshot {
	spells := make([]*SpellEntry, len(r.Spells))
	for i, spell := range r.Spells {
		copied := *spell
		spells[i] = &copied
	}

	meta := r.Metadata
	meta.Tags = append([]string(nil), r.Metadata.Tags...)

	return &Snapshot{
		ID:       r.ID,
		Metadata: meta,
		SpecID:   r.SpecID,
		Spells:   spells,
	}
}

// Clone returns a deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	spells := make([]*SpellEntry, len(s.Spells))
	for i, spell := range s.Spells {
		copied := *spell
		spells[i] = &copied
	}

	meta := s.Metadata
	meta.Tags = append([]string(nil), s.Metadata.Tags...)

	return &Snapshot{
		ID:       s.ID,
		Metadata: meta,
		SpecID:   s.SpecID,
		Spells:   spells,
	}
}

// FromSnapshot rehydrates a rotation from a stored snapshot. The
// class/spec pair is resolved against the catalog to wire up validation
// for later mutations; stored entries are restored as-is.
func FromSnapshot(snap *Snapshot, cfg *Config) (*Rotation, error) {
	rot, err := New(&Config{
		ClassName:   snap.Metadata.ClassName,
		SpecName:    snap.Metadata.SpecName,
		Catalog:     cfg.Catalog,
		IDGenerator: cfg.IDGenerator,
	})
	if err != nil {
		return nil, err
	}

	rot.ID = snap.ID
	rot.Metadata = snap.Metadata
	rot.Metadata.Tags = append([]string(nil), snap.Metadata.Tags...)
	rot.SpecID = snap.SpecID

	rot.Spells = make([]*SpellEntry, len(snap.Spells))
	for i, spell := range snap.Spells {
		copied := *spell
		rot.Spells[i] = &copied
	}
	rot.sortSpells()

	return rot, nil
}
