// Package codec converts rotations to and from their four textual
// formats: the SOE engine registration call, structured JSON, structured
// XML, and a plain Lua table. JSON and XML round-trip every field; the
// SOE and Lua forms intentionally drop disabled entries and parts of the
// metadata, and importers must not "fix" that asymmetry.
package codec

import (
	"fmt"
	"sort"

	"github.com/soeforge/rotation-builder/internal/clients/gamedata"
	"github.com/soeforge/rotation-builder/internal/domain/rotation"
	apperrors "github.com/soeforge/rotation-builder/internal/errors"
)

// Format names understood by the default registry
const (
	FormatSOE  = "soe"
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatLua  = "lua"
)

// FormatAdapter converts rotations to and from one textual format
type FormatAdapter interface {
	// Format returns the adapter's format name
	Format() string

	// Serialize renders a rotation in this format
	Serialize(rot *rotation.Rotation) (string, error)

	// Deserialize parses this format back into a rotation. Failures come
	// back as parse failure errors carrying the format name.
	Deserialize(content string) (*rotation.Rotation, error)
}

// Registry maps format names to adapters
type Registry struct {
	adapters map[string]FormatAdapter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]FormatAdapter)}
}

// Register adds an adapter, replacing any previous one for the same format
func (r *Registry) Register(adapter FormatAdapter) {
	r.adapters[adapter.Format()] = adapter
}

// Get returns the adapter for a format name
func (r *Registry) Get(format string) (FormatAdapter, error) {
	adapter, ok := r.adapters[format]
	if !ok {
		return nil, apperrors.FormatUnsupportedf("unsupported format: %s", format)
	}
	return adapter, nil
}

// Formats returns the registered format names, sorted
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Convert transcodes content from one format to another without
// materializing an intermediate file
func (r *Registry) Convert(content, from, to string) (string, error) {
	importer, err := r.Get(from)
	if err != nil {
		return "", err
	}
	exporter, err := r.Get(to)
	if err != nil {
		return "", err
	}

	rot, err := importer.Deserialize(content)
	if err != nil {
		return "", err
	}
	return exporter.Serialize(rot)
}

// Config holds the collaborators the format adapters need
type Config struct {
	Catalog gamedata.Client
}

// NewDefaultRegistry creates a registry with all four format adapters
func NewDefaultRegistry(cfg *Config) *Registry {
	if cfg == nil || cfg.Catalog == nil {
		panic("codec catalog is required")
	}

	registry := NewRegistry()
	registry.Register(NewSOEAdapter(cfg.Catalog))
	registry.Register(NewJSONAdapter(cfg.Catalog))
	registry.Register(NewXMLAdapter(cfg.Catalog))
	registry.Register(NewLuaAdapter(cfg.Catalog))
	return registry
}

// guardParse runs a format's parse function, normalizing returned errors
// and panics into a parse failure tagged with the format name. The
// original cause is preserved as context.
func guardParse(format string, fn func() (*rotation.Rotation, error)) (rot *rotation.Rotation, err error) {
	defer func() {
		if r := recover(); r != nil {
			rot = nil
			err = apperrors.ParseFailure(format, fmt.Sprintf("unexpected error parsing %s: %v", format, r))
		}
	}()

	rot, err = fn()
	if err != nil && !apperrors.IsParseFailure(err) {
		err = apperrors.ParseFailureWrap(err, format, fmt.Sprintf("error parsing %s", format))
	}
	if err != nil {
		return nil, err
	}
	return rot, nil
}

// newRotation builds a fresh rotation for an importer
func newRotation(catalog gamedata.Client, className, specName string) (*rotation.Rotation, error) {
	return rotation.New(&rotation.Config{
		ClassName: className,
		SpecName:  specName,
		Catalog:   catalog,
	})
}
