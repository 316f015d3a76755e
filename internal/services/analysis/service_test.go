package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soeforge/rotation-builder/internal/clients/gamedata"
	"github.com/soeforge/rotation-builder/internal/domain/rotation"
	"github.com/soeforge/rotation-builder/internal/services/analysis"
)

func newRotation(t *testing.T, className, specName string, spells ...[2]string) *rotation.Rotation {
	t.Helper()

	rot, err := rotation.New(&rotation.Config{
		ClassName: className,
		SpecName:  specName,
		Catalog:   gamedata.New(),
	})
	require.NoError(t, err)

	for _, spell := range spells {
		_, err := rot.AddSpell(spell[0], spell[1], 0)
		require.NoError(t, err)
	}
	return rot
}

// newArmsRotation covers all Arms critical spells plus one defensive and
// one cooldown
func newArmsRotation(t *testing.T) *rotation.Rotation {
	t.Helper()
	return newRotation(t, "Warrior", "Arms",
		[2]string{"Mortal Strike", "player.rage > 30"},
		[2]string{"Colossus Smash", "true"},
		[2]string{"Execute", "target.health < 20"},
		[2]string{"Bladestorm", "area.enemies > 3"},
		[2]string{"Shield Wall", "player.health < 30"},
	)
}

func TestValidateRotation_Complete(t *testing.T) {
	svc := analysis.NewService()

	result := svc.ValidateRotation(newArmsRotation(t))

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, analysis.Stats{
		SpellCount:        5,
		CriticalSpells:    3,
		DefensiveSpells:   1,
		CooldownSpells:    1,
		ConditionalSpells: 4,
	}, result.Stats)
}

func TestValidateRotation_MissingEverything(t *testing.T) {
	svc := analysis.NewService()
	rot := newRotation(t, "Warrior", "Arms", [2]string{"Slam", "true"})

	result := svc.ValidateRotation(rot)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "missing critical spells: Mortal Strike, Colossus Smash, Execute", result.Errors[0])
	assert.Contains(t, result.Warnings, "no defensive abilities in rotation")
	assert.Contains(t, result.Warnings, "no cooldown abilities in rotation")
}

func TestValidateRotation_Duplicates(t *testing.T) {
	svc := analysis.NewService()
	rot := newRotation(t, "Warrior", "Arms",
		[2]string{"Mortal Strike", "true"},
		[2]string{"Colossus Smash", "true"},
		[2]string{"Execute", "true"},
		[2]string{"Mortal Strike", "player.rage > 60"},
	)

	result := svc.ValidateRotation(rot)
	assert.Contains(t, result.Warnings, "duplicate spells found: Mortal Strike")
}

func TestValidateRotation_EmptyCondition(t *testing.T) {
	svc := analysis.NewService()
	rot := newRotation(t, "Warrior", "Arms",
		[2]string{"Mortal Strike", "true"},
		[2]string{"Colossus Smash", ""},
		[2]string{"Execute", "true"},
	)

	result := svc.ValidateRotation(rot)
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "empty conditions found for: Colossus Smash")
}

func TestValidateRotation_StaleStoredCondition(t *testing.T) {
	svc := analysis.NewService()

	// Snapshots restore verbatim, so a stored rotation can carry a
	// condition the vocabulary no longer accepts
	rot, err := rotation.FromSnapshot(&rotation.Snapshot{
		ID: "rot-1",
		Metadata: rotation.Metadata{
			Name:      "Stale",
			ClassName: "Warrior",
			SpecName:  "Arms",
		},
		SpecID: 71,
		Spells: []*rotation.SpellEntry{
			{Name: "Mortal Strike", Condition: "foo.bar == 1", Priority: 1, Enabled: true},
			{Name: "Colossus Smash", Condition: "true", Priority: 2, Enabled: true},
			{Name: "Execute", Condition: "true", Priority: 3, Enabled: true},
		},
	}, &rotation.Config{Catalog: gamedata.New()})
	require.NoError(t, err)

	result := svc.ValidateRotation(rot)
	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "invalid condition for Mortal Strike")
}

func TestAnalyzeRotation_Coverage(t *testing.T) {
	svc := analysis.NewService()

	report := svc.AnalyzeRotation(newArmsRotation(t))

	assert.InDelta(t, 1.0, report.Coverage.SingleTarget, 1e-9)
	assert.InDelta(t, 1.0/3.0, report.Coverage.Defensive, 1e-9)
	assert.InDelta(t, 1.0/3.0, report.Coverage.Cooldown, 1e-9)

	// AOE coverage needs AOE spells as well as an area.enemies condition;
	// the condition alone scores zero
	assert.InDelta(t, 0.0, report.Coverage.AOE, 1e-9)

	assert.Empty(t, report.Gaps)
}

func TestAnalyzeRotation_Scores(t *testing.T) {
	svc := analysis.NewService()

	report := svc.AnalyzeRotation(newArmsRotation(t))

	// spell count 5/20, 13 condition tokens over 50, 4/5 conditional, 1/5
	// on the cooldown list, averaged
	assert.InDelta(t, 0.3775, report.Complexity, 1e-9)

	// (1 + 1/3 + 1/3 + 1) / 4
	assert.InDelta(t, 2.0/3.0, report.Efficiency, 1e-9)
}

func TestAnalyzeRotation_EmptyRotation(t *testing.T) {
	svc := analysis.NewService()
	rot := newRotation(t, "Warrior", "Arms")

	report := svc.AnalyzeRotation(rot)
	assert.Zero(t, report.Complexity)
	assert.Zero(t, report.Efficiency)
}

func TestAnalyzeRotation_ClusteredCooldowns(t *testing.T) {
	svc := analysis.NewService()
	rot := newRotation(t, "Mage", "Arcane",
		[2]string{"Time Warp", "true"},
		[2]string{"Mirror Image", "true"},
		[2]string{"Arcane Blast", "true"},
	)

	report := svc.AnalyzeRotation(rot)
	assert.Contains(t, report.Gaps, "cooldowns are clustered too closely")
	assert.Contains(t, report.Gaps, "missing core abilities: Arcane Missiles, Evocation")
}

func TestAnalyzeRotation_Suggestions(t *testing.T) {
	svc := analysis.NewService()

	// No conditions at all triggers every condition-based suggestion
	rot := newRotation(t, "Warrior", "Arms",
		[2]string{"Mortal Strike", "true"},
	)

	report := svc.AnalyzeRotation(rot)
	assert.Contains(t, report.Suggestions, "consider adding more core rotation abilities")
	assert.Contains(t, report.Suggestions, "consider adding AOE abilities or conditions")
	assert.Contains(t, report.Suggestions, "consider adding defensive cooldowns")
	assert.Contains(t, report.Suggestions, "consider adding major cooldowns")
	assert.Contains(t, report.Suggestions, "consider adding resource-based conditions")
	assert.Contains(t, report.Suggestions, "consider adding proc/buff tracking conditions")
	assert.Contains(t, report.Suggestions, "consider adding health-based defensive conditions")

	// A well-conditioned rotation trims the condition suggestions
	full := svc.AnalyzeRotation(newArmsRotation(t))
	assert.NotContains(t, full.Suggestions, "consider adding resource-based conditions")
	assert.NotContains(t, full.Suggestions, "consider adding health-based defensive conditions")
	assert.Contains(t, full.Suggestions, "consider adding proc/buff tracking conditions")
}
