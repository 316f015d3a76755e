// Package gamedata provides the read-only reference catalog of classes,
// specializations, and the spells legal for each class/spec pair.
package gamedata

//go:generate mockgen -destination=mock/mock_client.go -package=mockgamedata . Client

// Client is the reference catalog consumed by the rotation model and codec
type Client interface {
	// ListClasses returns all known class names, sorted
	ListClasses() []string

	// SpecsForClass returns the specialization names for a class, sorted
	SpecsForClass(className string) []string

	// ResolveSpecID resolves a class/spec pair to its numeric spec ID
	ResolveSpecID(className, specName string) (int, error)

	// SpecByID reverse-looks-up a numeric spec ID to its class/spec pair
	SpecByID(specID int) (className, specName string, err error)

	// SpellsForSpec returns the legal spell names for a class/spec pair, sorted
	SpellsForSpec(className, specName string) ([]string, error)
}
