package codec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/soeforge/rotation-builder/internal/clients/gamedata"
	"github.com/soeforge/rotation-builder/internal/domain/rotation"
	apperrors "github.com/soeforge/rotation-builder/internal/errors"
)

var (
	luaNamePattern  = regexp.MustCompile(`name\s*=\s*"([^"]+)"`)
	luaClassPattern = regexp.MustCompile(`class\s*=\s*"([^"]+)"`)
	luaSpecPattern  = regexp.MustCompile(`spec\s*=\s*"([^"]+)"`)
	luaSpellPattern = regexp.MustCompile(`\{\s*name\s*=\s*"([^"]+)",\s*condition\s*=\s*"([^"]+)",\s*priority\s*=\s*\d+,\s*notes\s*=\s*"([^"]*)"`)
)

// LuaAdapter handles the plain Lua table format: a returned rotationTable
// literal with name/class/spec and a spells list. Only enabled entries are
// emitted, and author, version, description, tags, and timestamps do not
// survive this format. On import, entry priority follows list order.
type LuaAdapter struct {
	catalog gamedata.Client
}

// NewLuaAdapter creates an adapter for the plain Lua table format
func NewLuaAdapter(catalog gamedata.Client) *LuaAdapter {
	return &LuaAdapter{catalog: catalog}
}

// Format returns the adapter's format name
func (a *LuaAdapter) Format() string {
	return FormatLua
}

// Serialize renders the rotation as a returned Lua table literal
func (a *LuaAdapter) Serialize(rot *rotation.Rotation) (string, error) {
	lines := []string{
		fmt.Sprintf("-- %s", rot.Metadata.Name),
		fmt.Sprintf("-- Author: %s", rot.Metadata.Author),
		fmt.Sprintf("-- Version: %s", rot.Metadata.Version),
		"",
		"local rotationTable = {",
		fmt.Sprintf("    name = %q,", rot.Metadata.Name),
		fmt.Sprintf("    class = %q,", rot.Metadata.ClassName),
		fmt.Sprintf("    spec = %q,", rot.Metadata.SpecName),
		"    spells = {",
	}

	for _, spell := range rot.Spells {
		if !spell.Enabled {
			continue
		}
		lines = append(lines,
			"        {",
			fmt.Sprintf("            name = %q,", spell.Name),
			fmt.Sprintf("            condition = %q,", spell.Condition),
			fmt.Sprintf("            priority = %d,", spell.Priority),
			fmt.Sprintf("            notes = %q", spell.Notes),
			"        },",
		)
	}

	lines = append(lines,
		"    }",
		"}",
		"",
		"return rotationTable",
	)
	return strings.Join(lines, "\n"), nil
}

// Deserialize parses a Lua table literal. Entry priorities follow the
// order entries appear in the spells list, not the stored priority
// fields, so a table exported with gaps imports dense.
func (a *LuaAdapter) Deserialize(content string) (*rotation.Rotation, error) {
	return guardParse(FormatLua, func() (*rotation.Rotation, error) {
		classMatch := luaClassPattern.FindStringSubmatch(content)
		specMatch := luaSpecPattern.FindStringSubmatch(content)
		if classMatch == nil || specMatch == nil {
			return nil, apperrors.ParseFailure(FormatLua, "could not find class or spec in Lua code")
		}

		rot, err := newRotation(a.catalog, classMatch[1], specMatch[1])
		if err != nil {
			return nil, err
		}

		// Spell entries carry name fields too, so the rotation name is
		// only looked for ahead of the spells list
		header := content
		if i := strings.Index(content, "spells"); i >= 0 {
			header = content[:i]
		}
		if m := luaNamePattern.FindStringSubmatch(header); m != nil {
			rot.Metadata.Name = m[1]
		}

		for i, match := range luaSpellPattern.FindAllStringSubmatch(content, -1) {
			entry, err := rot.AddSpell(match[1], match[2], i+1)
			if err != nil {
				return nil, err
			}
			entry.Notes = match[3]
		}

		return rot, nil
	})
}
