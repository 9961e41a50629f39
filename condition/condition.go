// Package condition defines the abstract predicate capability consumed by
// container.If and container.IfNot. A full condition DSL is out of scope
// for this module — only the capability interface and one concrete
// implementation sufficient to exercise If/IfNot are provided here.
package condition

import "github.com/tmr232/kitty-go/field"

// Condition is an opaque predicate over a scope (the If/IfNot container
// that owns it; name resolution ascends from there). It caches whatever name resolution it
// needs lazily, which is why Copy must be paired with Invalidate: a
// structural copy of the tree invalidates any cached field reference.
type Condition interface {
	// Applies evaluates the predicate against scope.
	Applies(scope field.Field) bool
	// Copy returns a structural copy of the condition.
	Copy() Condition
	// Invalidate drops any cached, resolved field reference so the next
	// Applies call re-resolves it lazily against the (possibly new)
	// tree the condition now lives in.
	Invalidate()
	// Hash returns the condition's structural fingerprint.
	Hash() uint32
}
