package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/soeforge/rotation-builder/internal/clients/gamedata"
	"github.com/soeforge/rotation-builder/internal/domain/rotation"
)

// NewArmsRotation builds a small Warrior/Arms rotation for tests
func NewArmsRotation(t *testing.T) *rotation.Rotation {
	t.Helper()

	rot, err := rotation.New(&rotation.Config{
		ClassName: "Warrior",
		SpecName:  "Arms",
		Catalog:   gamedata.New(),
	})
	require.NoError(t, err)
	rot.Metadata.Author = "Tester"

	for _, spell := range [][2]string{
		{"Mortal Strike", "true"},
		{"Colossus Smash", "true"},
		{"Execute", "target.health < 20"},
	} {
		_, err := rot.AddSpell(spell[0], spell[1], 0)
		require.NoError(t, err)
	}

	return rot
}

// NewArmsSnapshot builds a stored-form Arms rotation with fixed
// timestamps and IDs, for repository tests
func NewArmsSnapshot(id string) *rotation.Snapshot {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &rotation.Snapshot{
		ID: id,
		Metadata: rotation.Metadata{
			Name:       "Warrior Arms Rotation",
			ClassName:  "Warrior",
			SpecName:   "Arms",
			Author:     "Tester",
			Version:    "1.0",
			CreatedAt:  created,
			ModifiedAt: created,
		},
		SpecID: 71,
		Spells: []*rotation.SpellEntry{
			{ID: id + "-1", Name: "Mortal Strike", Condition: "true", Priority: 1, Enabled: true},
			{ID: id + "-2", Name: "Execute", Condition: "target.health < 20", Priority: 2, Enabled: true},
		},
	}
}
