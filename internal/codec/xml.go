package codec

import (
	"encoding/xml"
	"time"

	"github.com/soeforge/rotation-builder/internal/clients/gamedata"
	"github.com/soeforge/rotation-builder/internal/domain/rotation"
	apperrors "github.com/soeforge/rotation-builder/internal/errors"
)

type xmlDocument struct {
	XMLName  xml.Name    `xml:"rotation"`
	Metadata xmlMetadata `xml:"metadata"`
	Spells   []xmlSpell  `xml:"spells>spell"`
}

type xmlMetadata struct {
	Name        string   `xml:"name"`
	Class       string   `xml:"class"`
	Spec        string   `xml:"spec"`
	Author      string   `xml:"author"`
	Version     string   `xml:"version"`
	Description string   `xml:"description"`
	Created     string   `xml:"created"`
	Modified    string   `xml:"modified"`
	Tags        []string `xml:"tags>tag"`
}

type xmlSpell struct {
	Name      string `xml:"name"`
	Condition string `xml:"condition"`
	Priority  int    `xml:"priority"`
	Enabled   bool   `xml:"enabled"`
	Notes     string `xml:"notes"`
}

// XMLAdapter handles the XML document format. Like JSON this is a
// lossless format; timestamps travel as RFC 3339 strings.
type XMLAdapter struct {
	catalog gamedata.Client
}

// NewXMLAdapter creates an adapter for the XML document format
func NewXMLAdapter(catalog gamedata.Client) *XMLAdapter {
	return &XMLAdapter{catalog: catalog}
}

// Format returns the adapter's format name
func (a *XMLAdapter) Format() string {
	return FormatXML
}

// Serialize renders the rotation as an indented XML document
func (a *XMLAdapter) Serialize(rot *rotation.Rotation) (string, error) {
	doc := xmlDocument{
		Metadata: xmlMetadata{
			Name:        rot.Metadata.Name,
			Class:       rot.Metadata.ClassName,
			Spec:        rot.Metadata.SpecName,
			Author:      rot.Metadata.Author,
			Version:     rot.Metadata.Version,
			Description: rot.Metadata.Description,
			Created:     rot.Metadata.CreatedAt.Format(time.RFC3339),
			Modified:    rot.Metadata.ModifiedAt.Format(time.RFC3339),
			Tags:        rot.Metadata.Tags,
		},
		Spells: make([]xmlSpell, 0, len(rot.Spells)),
	}

	for _, spell := range rot.Spells {
		doc.Spells = append(doc.Spells, xmlSpell{
			Name:      spell.Name,
			Condition: spell.Condition,
			Priority:  spell.Priority,
			Enabled:   spell.Enabled,
			Notes:     spell.Notes,
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to marshal rotation")
	}
	return xml.Header + string(out), nil
}

// Deserialize parses an XML document
func (a *XMLAdapter) Deserialize(content string) (*rotation.Rotation, error) {
	return guardParse(FormatXML, func() (*rotation.Rotation, error) {
		var doc xmlDocument
		if err := xml.Unmarshal([]byte(content), &doc); err != nil {
			return nil, err
		}

		rot, err := newRotation(a.catalog, doc.Metadata.Class, doc.Metadata.Spec)
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

		created, err := time.Parse(time.RFC3339, doc.Metadata.Created)
		if err != nil {
			return nil, err
		}
		modified, err := time.Parse(time.RFC3339, doc.Metadata.Modified)
		if err != nil {
			return nil, err
		}

		rot.Metadata.Name = doc.Metadata.Name
		rot.Metadata.Author = doc.Metadata.Author
		rot.Metadata.Version = doc.Metadata.Version
		rot.Metadata.Description = doc.Metadata.Description
		rot.Metadata.CreatedAt = created
		rot.Metadata.ModifiedAt = modified
		rot.Metadata.Tags = doc.Metadata.Tags

		return rot, nil
	})
}
