package analysis

import (
	"fmt"
	"strings"

	"github.com/soeforge/rotation-builder/internal/domain/condition"
	"github.com/soeforge/rotation-builder/internal/domain/rotation"
)

// resourceWords are the resource names looked for in conditions when
// suggesting resource-based triggers
var resourceWords = []string{"mana", "rage", "energy", "focus", "runicpower", "holypower"}

type service struct{}

// NewService creates the analysis service
func NewService() Service {
	return &service{}
}

// ValidateRotation checks a rotation for errors and warnings. Missing
// critical spells, empty conditions, and invalid conditions are errors;
// absent defensives or cooldowns and duplicate entries are warnings.
func (s *service) ValidateRotation(rot *rotation.Rotation) *ValidationResult {
	var errs []string
	var warnings []string
	stats := Stats{SpellCount: len(rot.Spells)}

	criticals := criticalSpells[rot.Metadata.ClassName][rot.Metadata.SpecName]
	found := make(map[string]bool)
	for _, spell := range rot.Spells {
		if contains(criticals, spell.Name) {
			found[spell.Name] = true
			stats.CriticalSpells++
		}
	}

	var missing []string
	for _, name := range criticals {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("missing critical spells: %s", strings.Join(missing, ", ")))
	}

	defensives := defensiveSpells[rot.Metadata.ClassName]
	for _, spell := range rot.Spells {
		if contains(defensives, spell.Name) {
			stats.DefensiveSpells++
		}
	}
	if stats.DefensiveSpells == 0 {
		warnings = append(warnings, "no defensive abilities in rotation")
	}

	cooldowns := cooldownSpells[rot.Metadata.ClassName]
	for _, spell := range rot.Spells {
		if contains(cooldowns, spell.Name) {
			stats.CooldownSpells++
		}
	}
	if stats.CooldownSpells == 0 {
		warnings = append(warnings, "no cooldown abilities in rotation")
	}

	for _, spell := range rot.Spells {
		if spell.Condition != "true" {
			stats.ConditionalSpells++
		}
	}

	if duplicates := findDuplicates(rot.Spells); len(duplicates) > 0 {
		warnings = append(warnings, fmt.Sprintf("duplicate spells found: %s", strings.Join(duplicates, ", ")))
	}

	var empty []string
	for _, spell := range rot.Spells {
		if spell.Condition == "" {
			empty = append(empty, spell.Name)
		}
	}
	if len(empty) > 0 {
		errs = append(errs, fmt.Sprintf("empty conditions found for: %s", strings.Join(empty, ", ")))
	}

	// Re-validate every condition; stored rotations may predate the
	// current vocabulary
	validator := condition.NewValidatorForClass(rot.Metadata.ClassName)
	for _, spell := range rot.Spells {
		if result := validator.Validate(spell.Condition); !result.Valid {
			errs = append(errs, fmt.Sprintf("invalid condition for %s: %s", spell.Name, result.Message))
		}
	}

	return &ValidationResult{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
		Stats:    stats,
	}
}

// AnalyzeRotation computes coverage ratios, gap descriptions, improvement
// suggestions, and the complexity/efficiency scores
func (s *service) AnalyzeRotation(rot *rotation.Rotation) *Analysis {
	coverage := Coverage{
		SingleTarget: singleTargetCoverage(rot),
		AOE:          aoeCoverage(rot),
		Defensive:    defensiveCoverage(rot),
		Cooldown:     cooldownCoverage(rot),
	}

	gaps := findGaps(rot)

	return &Analysis{
		Coverage:    coverage,
		Gaps:        gaps,
		Suggestions: generateSuggestions(rot, coverage),
		Complexity:  calculateComplexity(rot),
		Efficiency:  calculateEfficiency(rot),
	}
}

// singleTargetCoverage is the fraction of the spec's critical spells
// present in the rotation
func singleTargetCoverage(rot *rotation.Rotation) float64 {
	criticals := criticalSpells[rot.Metadata.ClassName][rot.Metadata.SpecName]
	if len(criticals) == 0 {
		return 0.0
	}

	found := make(map[string]bool)
	for _, spell := range rot.Spells {
		if contains(criticals, spell.Name) {
			found[spell.Name] = true
		}
	}
	return float64(len(found)) / float64(len(criticals))
}

// aoeCoverage checks both sides of AOE readiness: an area.enemies
// condition and AOE spells. There is no per-class AOE spell table yet,
// so only the condition side can ever be satisfied.
func aoeCoverage(rot *rotation.Rotation) float64 {
	hasAOECondition := false
	hasAOESpells := false

	for _, spell := range rot.Spells {
		if strings.Contains(spell.Condition, "area.enemies") {
			hasAOECondition = true
		}
	}

	if hasAOECondition && hasAOESpells {
		return 1.0
	}
	return 0.0
}

func defensiveCoverage(rot *rotation.Rotation) float64 {
	defensives := defensiveSpells[rot.Metadata.ClassName]
	if len(defensives) == 0 {
		return 0.0
	}

	found := make(map[string]bool)
	for _, spell := range rot.Spells {
		if contains(defensives, spell.Name) {
			found[spell.Name] = true
		}
	}
	return float64(len(found)) / float64(len(defensives))
}

func cooldownCoverage(rot *rotation.Rotation) float64 {
	cooldowns := cooldownSpells[rot.Metadata.ClassName]
	if len(cooldowns) == 0 {
		return 0.0
	}

	found := make(map[string]bool)
	for _, spell := range rot.Spells {
		if contains(cooldowns, spell.Name) {
			found[spell.Name] = true
		}
	}
	return float64(len(found)) / float64(len(cooldowns))
}

// findGaps reports missing core abilities and cooldowns packed too close
// together in priority order
func findGaps(rot *rotation.Rotation) []string {
	var gaps []string

	criticals := criticalSpells[rot.Metadata.ClassName][rot.Metadata.SpecName]
	present := make(map[string]bool)
	for _, spell := range rot.Spells {
		present[spell.Name] = true
	}

	var missing []string
	for _, name := range criticals {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		gaps = append(gaps, fmt.Sprintf("missing core abilities: %s", strings.Join(missing, ", ")))
	}

	cooldowns := cooldownSpells[rot.Metadata.ClassName]
	var positions []int
	for i, spell := range rot.Spells {
		if contains(cooldowns, spell.Name) {
			positions = append(positions, i)
		}
	}
	for i := 0; i+1 < len(positions); i++ {
		if positions[i+1]-positions[i] < 2 {
			gaps = append(gaps, "cooldowns are clustered too closely")
			break
		}
	}

	return gaps
}

func generateSuggestions(rot *rotation.Rotation, coverage Coverage) []string {
	var suggestions []string

	if coverage.SingleTarget < 0.8 {
		suggestions = append(suggestions, "consider adding more core rotation abilities")
	}
	if coverage.AOE < 0.5 {
		suggestions = append(suggestions, "consider adding AOE abilities or conditions")
	}
	if coverage.Defensive < 0.3 {
		suggestions = append(suggestions, "consider adding defensive cooldowns")
	}
	if coverage.Cooldown < 0.5 {
		suggestions = append(suggestions, "consider adding major cooldowns")
	}

	hasResourceConditions := false
	hasProcConditions := false
	hasHealthConditions := false
	for _, spell := range rot.Spells {
		for _, word := range resourceWords {
			if strings.Contains(spell.Condition, word) {
				hasResourceConditions = true
				break
			}
		}
		if strings.Contains(spell.Condition, "buff") {
			hasProcConditions = true
		}
		if strings.Contains(spell.Condition, "health") {
			hasHealthConditions = true
		}
	}

	if !hasResourceConditions {
		suggestions = append(suggestions, "consider adding resource-based conditions")
	}
	if !hasProcConditions {
		suggestions = append(suggestions, "consider adding proc/buff tracking conditions")
	}
	if !hasHealthConditions {
		suggestions = append(suggestions, "consider adding health-based defensive conditions")
	}

	return suggestions
}

// calculateComplexity blends entry count, condition length, conditional
// ratio, and cooldown ratio into a [0, 1] score. Entry count normalizes
// against a 20-spell rotation; condition length against 10 tokens per
// entry.
func calculateComplexity(rot *rotation.Rotation) float64 {
	if len(rot.Spells) == 0 {
		return 0.0
	}

	n := float64(len(rot.Spells))

	totalTokens := 0
	conditional := 0
	onCooldownList := 0
	cooldowns := cooldownSpells[rot.Metadata.ClassName]
	for _, spell := range rot.Spells {
		totalTokens += len(strings.Fields(spell.Condition))
		if spell.Condition != "true" {
			conditional++
		}
		if contains(cooldowns, spell.Name) {
			onCooldownList++
		}
	}

	factors := []float64{
		n / 20,
		float64(totalTokens) / (n * 10),
		float64(conditional) / n,
		float64(onCooldownList) / n,
	}

	sum := 0.0
	for _, f := range factors {
		sum += f
	}
	score := sum / float64(len(factors))
	if score > 1.0 {
		return 1.0
	}
	return score
}

// calculateEfficiency averages the three coverage ratios with a 0/1
// indicator for conditional entries
func calculateEfficiency(rot *rotation.Rotation) float64 {
	if len(rot.Spells) == 0 {
		return 0.0
	}

	conditionPresence := 0.0
	for _, spell := range rot.Spells {
		if spell.Condition != "true" {
			conditionPresence = 1.0
			break
		}
	}

	factors := []float64{
		singleTargetCoverage(rot),
		defensiveCoverage(rot),
		cooldownCoverage(rot),
		conditionPresence,
	}

	sum := 0.0
	for _, f := range factors {
		sum += f
	}
	return sum / float64(len(factors))
}

// findDuplicates returns spell names appearing more than once, in first
// occurrence order
func findDuplicates(spells []*rotation.SpellEntry) []string {
	counts := make(map[string]int)
	for _, spell := range spells {
		counts[spell.Name]++
	}

	var duplicates []string
	seen := make(map[string]bool)
	for _, spell := range spells {
		if counts[spell.Name] > 1 && !seen[spell.Name] {
			duplicates = append(duplicates, spell.Name)
			seen[spell.Name] = true
		}
	}
	return duplicates
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}
