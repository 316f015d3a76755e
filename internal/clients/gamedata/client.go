package gamedata

import (
	"sort"

	apperrors "github.com/soeforge/rotation-builder/internal/errors"
)

// client serves the static WoW 5.4.8 catalog tables
type client struct{}

// New creates a catalog client backed by the built-in data tables
func New() Client {
	return &client{}
}

func (c *client) ListClasses() []string {
	classes := make([]string, 0, len(specIDs))
	for name := range specIDs {
		classes = append(classes, name)
	}
	sort.Strings(classes)
	return classes
}

func (c *client) SpecsForClass(className string) []string {
	specs, ok := specIDs[className]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *client) ResolveSpecID(className, specName string) (int, error) {
	if specs, ok := specIDs[className]; ok {
		if id, ok := specs[specName]; ok {
			return id, nil
		}
	}
	return 0, apperrors.InvalidSpecf("invalid class/spec combination: %s/%s", className, specName)
}

func (c *client) SpecByID(specID int) (string, string, error) {
	for className, specs := range specIDs {
		for specName, id := range specs {
			if id == specID {
				return className, specName, nil
			}
		}
	}
	return "", "", apperrors.InvalidSpecf("invalid spec ID: %d", specID)
}

func (c *client) SpellsForSpec(className, specName string) ([]string, error) {
	specs, ok := spellData[className]
	if !ok {
		return nil, apperrors.InvalidSpecf("invalid class: %s", className)
	}

	spells, ok := specs[specName]
	if !ok {
		return nil, apperrors.InvalidSpecf("invalid class/spec combination: %s/%s", className, specName)
	}

	sorted := make([]string, len(spells))
	copy(sorted, spells)
	sort.Strings(sorted)
	return sorted, nil
}
