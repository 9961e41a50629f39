// Package field defines the abstract Field contract shared by every node
// in a template tree — leaves and containers alike — plus the Base
// struct that carries the attributes and default behavior common to all
// of them, and the name-resolution walk built on top of the contract.
package field

import (
	"fmt"

	"github.com/tmr232/kitty-go/bitbuf"
)

// Field is the abstract node contract every leaf and container satisfies.
type Field interface {
	// Render recomputes and returns the field's current rendered bits
	// from its current mutation state. Idempotent between mutations.
	Render() bitbuf.Buffer

	// Mutate advances to the next mutation. It returns true iff the
	// field advanced, false once its mutations are exhausted.
	Mutate() bool

	// Reset restores the field (and, for containers, its children) to
	// its pre-mutation state.
	Reset()

	// NumMutations returns the total number of mutations this field
	// will report through Mutate. Stable once the enclosing template
	// is ready.
	NumMutations() int

	// Name returns the field's name and whether it has one.
	Name() (string, bool)

	// Fuzzable reports whether this field participates in mutation.
	Fuzzable() bool

	// CurrentIndex returns the field's current mutation index, or -1
	// when the field has not been mutated (or has been reset).
	CurrentIndex() int

	// Mutating reports whether the field is currently in a mutated
	// state, i.e. 0 <= CurrentIndex() < NumMutations().
	Mutating() bool

	// Hash returns the field's structural fingerprint.
	Hash() uint32

	// ResolveField looks up key by name, scanning this field's own
	// scope and then ascending through enclosing containers to the
	// root.
	ResolveField(key string) (Field, error)

	// ScanForField looks downward only: it returns (self, true) if key
	// matches this field's own name, and for containers additionally
	// recurses into child containers. It never ascends.
	ScanForField(key string) (Field, bool)

	// Copy returns a deep structural copy of the field with mutation
	// state reset (current index -1) and back-references rebound. A
	// Template fails Copy with ErrTemplateNotCopyable.
	Copy() (Field, error)

	// GetInfo returns a diagnostic snapshot of the field's current
	// state.
	GetInfo() map[string]any

	// SetSessionData publishes runtime values to dynamic leaves.
	SetSessionData(data map[string]any)

	// SetEnclosing sets the field's non-owning back-reference to its
	// parent container. Called by Container.Push/replaceFields.
	SetEnclosing(parent Field)

	// Enclosing returns the field's parent container, or nil at the
	// root.
	Enclosing() Field
}

// ResolveField implements the generic upward walk: starting at `start`,
// call ScanForField at each node; if it matches, return the result.
// Otherwise ascend to the node's enclosing field and retry, until the
// root is exhausted.
func ResolveField(start Field, key string) (Field, error) {
	for node := start; node != nil; node = node.Enclosing() {
		if found, ok := node.ScanForField(key); ok {
			return found, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnresolvedField, key)
}
