// Package ports defines the interfaces (contracts) that adapters must implement.
// Domain and command code depends only on these interfaces, never on concrete
// implementations.
package ports

import (
	"errors"
	"time"
)

// ErrDesignNotFound is returned when no stored design matches an ID or name.
var ErrDesignNotFound = errors.New("design not found")

// DesignStore persists drive design documents.
//
// Designs are addressed by ID or by name; names are unique, so saving a
// design under an existing name replaces it and keeps the original ID.
// Writes must be transactional: a crash mid-write must not corrupt
// previously committed designs.
type DesignStore interface {
	// SaveDesign stores rec. An empty rec.ID is filled in with a new ID.
	SaveDesign(rec *DesignRecord) error

	// LoadDesign returns the design whose ID or name equals ref.
	// Returns ErrDesignNotFound if there is none.
	LoadDesign(ref string) (*DesignRecord, error)

	// ListDesigns returns every stored design sorted by name.
	ListDesigns() ([]DesignRecord, error)

	// DeleteDesign removes the design whose ID or name equals ref.
	// Returns ErrDesignNotFound if there is none.
	DeleteDesign(ref string) error
}

// DesignRecord is a stored design. Source is the YAML document exactly as
// the user wrote it; it is parsed again on every evaluation so that stored
// designs pick up catalog and formula changes.
type DesignRecord struct {
	ID      string    `msgpack:"id"`
	Name    string    `msgpack:"name"`
	Source  []byte    `msgpack:"source"`
	SavedAt time.Time `msgpack:"saved_at"`
}
