package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/soeforge/rotation-builder/internal/clients/gamedata"
	"github.com/soeforge/rotation-builder/internal/domain/rotation"
	apperrors "github.com/soeforge/rotation-builder/internal/errors"
)

const soeTimeLayout = "2006-01-02 15:04:05"

var (
	soeSpecIDPattern      = regexp.MustCompile(`register\((\d+)`)
	soeAuthorPattern      = regexp.MustCompile(`--\s*Author:\s*(.+)`)
	soeVersionPattern     = regexp.MustCompile(`--\s*Version:\s*(.+)`)
	soeDescriptionPattern = regexp.MustCompile(`--\s*Description:\s*(.+)`)
	soeSpellPattern       = regexp.MustCompile(`\{\s*"([^"]+)",\s*"([^"]+)"\s*\}`)
)

// SOEAdapter handles the engine registration format: a header comment
// block followed by a SOEEngine.rotation.register call listing the
// enabled entries in priority order. Disabled entries and most metadata
// do not survive this format.
type SOEAdapter struct {
	catalog gamedata.Client
}

// NewSOEAdapter creates an adapter for the engine registration format
func NewSOEAdapter(catalog gamedata.Client) *SOEAdapter {
	return &SOEAdapter{catalog: catalog}
}

// Format returns the adapter's format name
func (a *SOEAdapter) Format() string {
	return FormatSOE
}

// Serialize renders the registration call. Only enabled entries are
// emitted; an entry's notes become a comment line above its tuple.
func (a *SOEAdapter) Serialize(rot *rotation.Rotation) (string, error) {
	lines := []string{
		fmt.Sprintf("-- %s", rot.Metadata.Name),
		fmt.Sprintf("-- Author: %s", rot.Metadata.Author),
		fmt.Sprintf("-- Version: %s", rot.Metadata.Version),
		fmt.Sprintf("-- Created: %s", rot.Metadata.CreatedAt.Format(soeTimeLayout)),
		fmt.Sprintf("-- Last Modified: %s", rot.Metadata.ModifiedAt.Format(soeTimeLayout)),
		"-- Description:",
		fmt.Sprintf("-- %s", rot.Metadata.Description),
		"",
		fmt.Sprintf("SOEEngine.rotation.register(%d, {", rot.SpecID),
		"    -- Combat rotation",
	}

	for _, spell := range rot.Spells {
		if !spell.Enabled {
			continue
		}
		if spell.Notes != "" {
			lines = append(lines, fmt.Sprintf("    -- %s", spell.Notes))
		}
		lines = append(lines, fmt.Sprintf("    { %q, %q },", spell.Name, spell.Condition))
	}

	lines = append(lines, "})")
	return strings.Join(lines, "\n"), nil
}

// Deserialize parses a registration call. The spec ID argument is
// resolved back to its class/spec pair through the catalog; entry
// priorities follow tuple order.
func (a *SOEAdapter) Deserialize(content string) (*rotation.Rotation, error) {
	return guardParse(FormatSOE, func() (*rotation.Rotation, error) {
		specMatch := soeSpecIDPattern.FindStringSubmatch(content)
		if specMatch == nil {
			return nil, apperrors.ParseFailure(FormatSOE, "could not find spec ID in SOE code")
		}
		specID, err := strconv.Atoi(specMatch[1])
		if err != nil {
			return nil, err
		}

		className, specName, err := a.catalog.SpecByID(specID)
		if err != nil {
			return nil, err
		}

		rot, err := newRotation(a.catalog, className, specName)
		if err != nil {
			return nil, err
		}

		if m := soeAuthorPattern.FindStringSubmatch(content); m != nil {
			rot.Metadata.Author = strings.TrimSpace(m[1])
		}
		if m := soeVersionPattern.FindStringSubmatch(content); m != nil {
			rot.Metadata.Version = strings.TrimSpace(m[1])
		}
		if m := soeDescriptionPattern.FindStringSubmatch(content); m != nil {
			rot.Metadata.Description = strings.TrimSpace(m[1])
		}

		for i, match := range soeSpellPattern.FindAllStringSubmatch(content, -1) {
			if _, err := rot.AddSpell(match[1], match[2], i+1); err != nil {
				return nil, err
			}
		}

		return rot, nil
	})
}
