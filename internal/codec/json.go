package codec

import (
	"encoding/json"
	"time"

	"github.com/soeforge/rotation-builder/internal/clients/gamedata"
	"github.com/soeforge/rotation-builder/internal/domain/rotation"
	apperrors "github.com/soeforge/rotation-builder/internal/errors"
)

// jsonFormatVersion is the only document version the importer accepts
const jsonFormatVersion = "1.0"

type jsonDocument struct {
	FormatVersion string       `json:"format_version"`
	Metadata      jsonMetadata `json:"metadata"`
	SpecID        int          `json:"spec_id"`
	Spells        []jsonSpell  `json:"spells"`
}

type jsonMetadata struct {
	Name        string   `json:"name"`
	ClassName   string   `json:"class_name"`
	SpecName    string   `json:"spec_name"`
	Author      string   `json:"author"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	CreatedAt   int64    `json:"created_at"`
	ModifiedAt  int64    `json:"modified_at"`
	Tags        []string `json:"tags"`
}

type jsonSpell struct {
	Name      string `json:"name"`
	Condition string `json:"condition"`
	Priority  int    `json:"priority"`
	Enabled   bool   `json:"enabled"`
	Notes     string `json:"notes"`
}

// JSONAdapter handles the versioned JSON document format. This is a
// lossless format: every entry field and every metadata field survives a
// round trip, including disabled entries.
type JSONAdapter struct {
	catalog gamedata.Client
}

// NewJSONAdapter creates an adapter for the JSON document format
func NewJSONAdapter(catalog gamedata.Client) *JSONAdapter {
	return &JSONAdapter{catalog: catalog}
}

// Format returns the adapter's format name
func (a *JSONAdapter) Format() string {
	return FormatJSON
}

// Serialize renders the rotation as an indented JSON document
func (a *JSONAdapter) Serialize(rot *rotation.Rotation) (string, error) {
	doc := jsonDocument{
		FormatVersion: jsonFormatVersion,
		Metadata: jsonMetadata{
			Name:        rot.Metadata.Name,
			ClassName:   rot.Metadata.ClassName,
			SpecName:    rot.Metadata.SpecName,
			Author:      rot.Metadata.Author,
			Version:     rot.Metadata.Version,
			Description: rot.Metadata.Description,
			CreatedAt:   rot.Metadata.CreatedAt.Unix(),
			ModifiedAt:  rot.Metadata.ModifiedAt.Unix(),
			Tags:        rot.Metadata.Tags,
		},
		SpecID: rot.SpecID,
		Spells: make([]jsonSpell, 0, len(rot.Spells)),
	}
	if doc.Metadata.Tags == nil {
		doc.Metadata.Tags = []string{}
	}

	for _, spell := range rot.Spells {
		doc.Spells = append(doc.Spells, jsonSpell{
			Name:      spell.Name,
			Condition: spell.Condition,
			Priority:  spell.Priority,
			Enabled:   spell.Enabled,
			Notes:     spell.Notes,
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to marshal rotation")
	}
	return string(out), nil
}

// Deserialize parses a JSON document. The document's format_version must
// match; metadata is restored after the entries so the stored timestamps
// win over the mutation clock.
func (a *JSONAdapter) Deserialize(content string) (*rotation.Rotation, error) {
	return guardParse(FormatJSON, func() (*rotation.Rotation, error) {
		var doc jsonDocument
		if err := json.Unmarshal([]byte(content), &doc); err != nil {
			return nil, err
		}
		if doc.FormatVersion != jsonFormatVersion {
			return nil, apperrors.ParseFailure(FormatJSON, "unsupported JSON format version")
		}

		rot, err := newRotation(a.catalog, doc.Metadata.ClassName, doc.Metadata.SpecName)
		if err != nil {
			return nil, err
		}

		for _, spell := range doc.Spells {
			entry, err := rot.AddSpell(spell.Name, spell.Condition, spell.Priority)
			if err != nil {
				return nil, err
			}
			entry.Enabled = spell.Enabled
			entry.Notes = spell.Notes
		}

		rot.Metadata.Name = doc.Metadata.Name
		rot.Metadata.Author = doc.Metadata.Author
		rot.Metadata.Version = doc.Metadata.Version
		rot.Metadata.Description = doc.Metadata.Description
		rot.Metadata.CreatedAt = time.Unix(doc.Metadata.CreatedAt, 0).UTC()
		rot.Metadata.ModifiedAt = time.Unix(doc.Metadata.ModifiedAt, 0).UTC()
		rot.Metadata.Tags = doc.Metadata.Tags

		return rot, nil
	})
}
