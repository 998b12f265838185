package usecase

const (
	// DefaultListLimit is the report page size when none is given.
	DefaultListLimit = 20

	// MaxListLimit caps report listing page sizes.
	MaxListLimit = 100
)
