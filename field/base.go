package field

import "github.com/tmr232/kitty-go/bitbuf"

// Base carries the attributes and default behavior shared by every
// Field: name, fuzzable flag, encoder, last-rendered buffer, current
// mutation index, mutation count, and the non-owning back-reference to
// the enclosing container. Concrete leaves and container.Container embed
// Base; Go has no inheritance, so embedding plus a handful of methods
// that need the outer, concrete Field (passed in explicitly as `self`)
// stand in for it.
type Base struct {
	name            *string
	fuzzable        bool
	encoder         bitbuf.Encoder
	defaultValue    bitbuf.Buffer
	currentRendered bitbuf.Buffer
	currentIndex    int
	numMutations    int
	enclosing       Field
}

// NewBase initializes a Base. name may be empty to mean "unnamed".
func NewBase(name string, fuzzable bool, encoder bitbuf.Encoder, defaultValue bitbuf.Buffer) Base {
	b := Base{
		fuzzable:        fuzzable,
		encoder:         encoder,
		defaultValue:    defaultValue,
		currentRendered: defaultValue,
		currentIndex:    -1,
	}
	if name != "" {
		n := name
		b.name = &n
	}
	return b
}

// Name returns the field's name and whether it has one.
func (b *Base) Name() (string, bool) {
	if b.name == nil {
		return "", false
	}
	return *b.name, true
}

// Fuzzable reports whether the field participates in mutation.
func (b *Base) Fuzzable() bool { return b.fuzzable }

// Encoder returns the field's configured encoder.
func (b *Base) Encoder() bitbuf.Encoder { return b.encoder }

// DefaultValue returns the field's pre-mutation raw value.
func (b *Base) DefaultValue() bitbuf.Buffer { return b.defaultValue }

// CurrentIndex returns the field's current mutation index.
func (b *Base) CurrentIndex() int { return b.currentIndex }

// SetCurrentIndex sets the field's current mutation index. Exposed for
// container and variant constructors that drive mutation state directly.
func (b *Base) SetCurrentIndex(i int) { b.currentIndex = i }

// NumMutations returns the field's mutation count.
func (b *Base) NumMutations() int { return b.numMutations }

// SetNumMutations sets the field's mutation count, typically once, when
// the enclosing template becomes ready.
func (b *Base) SetNumMutations(n int) { b.numMutations = n }

// Mutating reports whether the field is in a mutated state.
func (b *Base) Mutating() bool {
	return b.currentIndex >= 0 && b.currentIndex < b.numMutations
}

// CurrentRendered returns the last value returned by Render.
func (b *Base) CurrentRendered() bitbuf.Buffer { return b.currentRendered }

// SetCurrentRendered stores the last value returned by Render.
func (b *Base) SetCurrentRendered(buf bitbuf.Buffer) { b.currentRendered = buf }

// ResetIndex restores current index to -1 and the rendered cache to the
// default value. It does not recurse into children; containers do that
// themselves in their own Reset.
func (b *Base) ResetIndex() {
	b.currentIndex = -1
	b.currentRendered = b.defaultValue
}

// SetEnclosing sets the non-owning back-reference to the parent
// container.
func (b *Base) SetEnclosing(parent Field) { b.enclosing = parent }

// Enclosing returns the parent container, or nil at the root.
func (b *Base) Enclosing() Field { return b.enclosing }

// SetSessionData is a no-op by default; dynamic leaves and containers
// override it.
func (b *Base) SetSessionData(map[string]any) {}

// GetInfo returns a default diagnostic snapshot. Leaves typically embed
// this unmodified; Container overrides it to delegate to the currently
// mutating descendant.
func (b *Base) GetInfo() map[string]any {
	name, hasName := b.Name()
	info := map[string]any{
		"fuzzable":      b.fuzzable,
		"current_index": b.currentIndex,
		"num_mutations": b.numMutations,
		"rendered/len":  b.currentRendered.Len(),
	}
	if hasName {
		info["name"] = name
	}
	return info
}

// ScanForFieldSelf implements the leaf-level default of ScanForField: a
// match only against this field's own name, never descending (leaves have
// no children). Containers override ScanForField entirely.
func (b *Base) ScanForFieldSelf(self Field, key string) (Field, bool) {
	if name, ok := b.Name(); ok && name == key {
		return self, true
	}
	return nil, false
}
