// Package analysis scores rotations against per-class ability tables:
// validation (hard errors plus advisory warnings) and a heuristic
// analysis with coverage ratios, gaps, and suggestions.
package analysis

import (
	"github.com/soeforge/rotation-builder/internal/domain/rotation"
)

// Service validates and analyzes rotations
type Service interface {
	// ValidateRotation checks a rotation for errors and warnings
	ValidateRotation(rot *rotation.Rotation) *ValidationResult

	// AnalyzeRotation computes coverage, gaps, suggestions, and scores
	AnalyzeRotation(rot *rotation.Rotation) *Analysis
}

// Stats counts the notable entry kinds in a rotation
type Stats struct {
	SpellCount        int
	CriticalSpells    int
	DefensiveSpells   int
	CooldownSpells    int
	ConditionalSpells int
}

// ValidationResult is the outcome of validating a rotation. Errors make
// the rotation invalid; warnings are advisory.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
	Stats    Stats
}

// Coverage holds per-situation coverage ratios in [0, 1]
type Coverage struct {
	SingleTarget float64
	AOE          float64
	Defensive    float64
	Cooldown     float64
}

// Analysis is the heuristic analysis of a rotation
type Analysis struct {
	Coverage    Coverage
	Gaps        []string
	Suggestions []string

	// Complexity and Efficiency are scores in [0, 1]
	Complexity float64
	Efficiency float64
}
