package rotation_test

import (
	"testing"
	"time"

	"github.com/soeforge/rotation-builder/internal/clients/gamedata"
	"github.com/soeforge/rotation-builder/internal/domain/rotation"
	apperrors "github.com/soeforge/rotation-builder/internal/errors"
	"github.com/soeforge/rotation-builder/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRotation(t *testing.T) *rotation.Rotation {
	t.Helper()
	rot, err := rotation.New(&rotation.Config{
		ClassName:   "Warrior",
		SpecName:    "Arms",
		Catalog:     gamedata.New(),
		IDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
	require.NoError(t, err)
	return rot
}

// requireDensePriorities asserts the core invariant: priorities are the
// dense ascending permutation 1..N matching list order.
func requireDensePriorities(t *testing.T, rot *rotation.Rotation) {
	t.Helper()
	for i, spell := range rot.Spells {
		require.Equal(t, i+1, spell.Priority, "spell %q at index %d", spell.Name, i)
	}
}

func TestNew(t *testing.T) {
	rot := newTestRotation(t)

	assert.Equal(t, 71, rot.SpecID)
	assert.Equal(t, "Warrior Arms Rotation", rot.Metadata.Name)
	assert.Equal(t, "1.0", rot.Metadata.Version)
	assert.False(t, rot.Metadata.CreatedAt.IsZero())
	assert.Empty(t, rot.Spells)
}

func TestNew_InvalidSpec(t *testing.T) {
	_, err := rotation.New(&rotation.Config{
		ClassName: "Warrior",
		SpecName:  "Restoration",
		Catalog:   gamedata.New(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidSpec(err))
}

func TestAddSpell(t *testing.T) {
	rot := newTestRotation(t)

	entry, err := rot.AddSpell("Mortal Strike", "true", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Priority)
	assert.True(t, entry.Enabled)
	assert.NotEmpty(t, entry.ID)

	_, err = rot.AddSpell("Execute", "target.health < 20", 0)
	require.NoError(t, err)
	requireDensePriorities(t, rot)
	assert.Equal(t, []string{"Mortal Strike", "Execute"}, spellNames(rot))
}

func TestAddSpell_InsertShiftsExisting(t *testing.T) {
	rot := newTestRotation(t)

	_, err := rot.AddSpell("Mortal Strike", "true", 0)
	require.NoError(t, err)
	_, err = rot.AddSpell("Slam", "true", 0)
	require.NoError(t, err)

	// Insert at the head; both existing entries shift up
	_, err = rot.AddSpell("Execute", "target.health < 20", 1)
	require.NoError(t, err)

	requireDensePriorities(t, rot)
	assert.Equal(t, []string{"Execute", "Mortal Strike", "Slam"}, spellNames(rot))
}

func TestAddSpell_PriorityBeyondEndAppends(t *testing.T) {
	rot := newTestRotation(t)

	_, err := rot.AddSpell("Mortal Strike", "true", 0)
	require.NoError(t, err)
	entry, err := rot.AddSpell("Slam", "true", 99)
	require.NoError(t, err)

	assert.Equal(t, 2, entry.Priority)
	requireDensePriorities(t, rot)
}

func TestAddSpell_UnknownSpell(t *testing.T) {
	rot := newTestRotation(t)

	_, err := rot.AddSpell("Fireball", "true", 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnknownSpell(err))
	assert.Empty(t, rot.Spells)
}

func TestAddSpell_InvalidConditionLeavesRotationUntouched(t *testing.T) {
	rot := newTestRotation(t)

	_, err := rot.AddSpell("Mortal Strike", "true", 0)
	require.NoError(t, err)
	before := rot.Metadata.ModifiedAt

	_, err = rot.AddSpell("Slam", "player.health >30", 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidCondition(err))
	assert.Equal(t, "operator", apperrors.GetMeta(err)["reason"])

	// The failed insert must not have shifted the existing entry
	require.Len(t, rot.Spells, 1)
	assert.Equal(t, 1, rot.Spells[0].Priority)
	assert.Equal(t, before, rot.Metadata.ModifiedAt)
}

func TestRemoveSpell(t *testing.T) {
	rot := newTestRotation(t)
	addSpells(t, rot, "Mortal Strike", "Slam", "Execute")

	assert.True(t, rot.RemoveSpell(2))
	requireDensePriorities(t, rot)
	assert.Equal(t, []string{"Mortal Strike", "Execute"}, spellNames(rot))

	assert.False(t, rot.RemoveSpell(99))
	require.Len(t, rot.Spells, 2)
}

func TestMoveSpell(t *testing.T) {
	rot := newTestRotation(t)
	addSpells(t, rot, "Mortal Strike", "Slam", "Execute", "Overpower")

	// Move down the list
	assert.True(t, rot.MoveSpell(1, 3))
	requireDensePriorities(t, rot)
	assert.Equal(t, []string{"Slam", "Execute", "Mortal Strike", "Overpower"}, spellNames(rot))

	// Move back up
	assert.True(t, rot.MoveSpell(3, 1))
	requireDensePriorities(t, rot)
	assert.Equal(t, []string{"Mortal Strike", "Slam", "Execute", "Overpower"}, spellNames(rot))
}

func TestMoveSpell_SamePriorityIsNoOp(t *testing.T) {
	rot := newTestRotation(t)
	addSpells(t, rot, "Mortal Strike", "Slam")
	before := rot.Metadata.ModifiedAt

	assert.True(t, rot.MoveSpell(2, 2))
	assert.Equal(t, []string{"Mortal Strike", "Slam"}, spellNames(rot))
	assert.Equal(t, before, rot.Metadata.ModifiedAt)
}

func TestMoveSpell_MissingFromLeavesRotationUnchanged(t *testing.T) {
	rot := newTestRotation(t)
	addSpells(t, rot, "Mortal Strike", "Slam")

	assert.False(t, rot.MoveSpell(5, 1))
	requireDensePriorities(t, rot)
	assert.Equal(t, []string{"Mortal Strike", "Slam"}, spellNames(rot))
}

func TestUpdateSpell(t *testing.T) {
	rot := newTestRotation(t)
	addSpells(t, rot, "Mortal Strike")

	cond := "player.rage >= 30"
	notes := "dump rage"
	enabled := false
	err := rot.UpdateSpell(1, &rotation.SpellUpdate{
		Condition: &cond,
		Notes:     &notes,
		Enabled:   &enabled,
	})
	require.NoError(t, err)

	spell := rot.SpellAt(1)
	require.NotNil(t, spell)
	assert.Equal(t, cond, spell.Condition)
	assert.Equal(t, notes, spell.Notes)
	assert.False(t, spell.Enabled)
}

func TestUpdateSpell_InvalidConditionAppliesNothing(t *testing.T) {
	rot := newTestRotation(t)
	addSpells(t, rot, "Mortal Strike")

	bad := "foo.bar == 1"
	notes := "should not stick"
	err := rot.UpdateSpell(1, &rotation.SpellUpdate{Condition: &bad, Notes: &notes})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidCondition(err))

	spell := rot.SpellAt(1)
	assert.Equal(t, "true", spell.Condition)
	assert.Empty(t, spell.Notes)
}

func TestUpdateSpell_NotFound(t *testing.T) {
	rot := newTestRotation(t)

	err := rot.UpdateSpell(1, &rotation.SpellUpdate{})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPriorityInvariant_MutationSequence(t *testing.T) {
	rot := newTestRotation(t)
	addSpells(t, rot, "Mortal Strike", "Slam", "Execute", "Overpower", "Rend")

	ops := []func(){
		func() { rot.MoveSpell(5, 1) },
		func() { rot.RemoveSpell(3) },
		func() { _, _ = rot.AddSpell("Thunder Clap", "area.enemies > 2", 2) },
		func() { rot.MoveSpell(1, 4) },
		func() { rot.RemoveSpell(1) },
		func() { _, _ = rot.AddSpell("Victory Rush", "true", 0) },
	}
	for _, op := range ops {
		op()
		requireDensePriorities(t, rot)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	rot := newTestRotation(t)
	addSpells(t, rot, "Mortal Strike", "Execute")
	rot.ID = "rot_1"
	rot.Metadata.Tags = []string{"pve", "single-target"}

	snap := rot.ToSnapshot()
	restored, err := rotation.FromSnapshot(snap, &rotation.Config{Catalog: gamedata.New()})
	require.NoError(t, err)

	assert.Equal(t, rot.ID, restored.ID)
	assert.Equal(t, rot.SpecID, restored.SpecID)
	assert.Equal(t, rot.Metadata.Tags, restored.Metadata.Tags)
	require.Len(t, restored.Spells, 2)
	assert.Equal(t, rot.Spells[0].Name, restored.Spells[0].Name)

	// The restored rotation accepts further mutations
	_, err = restored.AddSpell("Slam", "player.rage > 40", 0)
	require.NoError(t, err)
	assert.Len(t, restored.Spells, 3)

	// Snapshot is isolated from later mutations
	assert.Len(t, snap.Spells, 2)
}

func TestModifiedAtTouchedByMutations(t *testing.T) {
	rot := newTestRotation(t)
	before := rot.Metadata.ModifiedAt

	time.Sleep(2 * time.Millisecond)
	_, err := rot.AddSpell("Mortal Strike", "true", 0)
	require.NoError(t, err)
	assert.True(t, rot.Metadata.ModifiedAt.After(before))
}

func TestUpdateMetadata(t *testing.T) {
	rot := newTestRotation(t)
	before := rot.Metadata.ModifiedAt

	time.Sleep(2 * time.Millisecond)
	name := "Cleave Build"
	desc := "Cleave-heavy variant"
	require.NoError(t, rot.UpdateMetadata(&rotation.MetadataUpdate{
		Name:        &name,
		Description: &desc,
	}))

	assert.Equal(t, "Cleave Build", rot.Metadata.Name)
	assert.Equal(t, "Cleave-heavy variant", rot.Metadata.Description)
	assert.True(t, rot.Metadata.ModifiedAt.After(before))

	// Fields left nil keep their values
	assert.Equal(t, "Warrior", rot.Metadata.ClassName)
	assert.Equal(t, "1.0", rot.Metadata.Version)

	err := rot.UpdateMetadata(nil)
	require.Error(t, err)
}

func addSpells(t *testing.T, rot *rotation.Rotation, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := rot.AddSpell(name, "true", 0)
		require.NoError(t, err)
	}
}

func spellNames(rot *rotation.Rotation) []string {
	names := make([]string, len(rot.Spells))
	for i, spell := range rot.Spells {
		names[i] = spell.Name
	}
	return names
}
