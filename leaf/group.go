package leaf

import (
	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/khash"
)

// Group cycles through a fixed list of values, one mutation per
// alternative value, in order.
type Group struct {
	field.Base
	values []bitbuf.Buffer
}

// NewGroup creates a Group rendering values[0] by default and cycling
// through every value, values[0] included, as mutations. values must be
// non-empty.
func NewGroup(name string, values [][]byte) *Group {
	bufs := make([]bitbuf.Buffer, len(values))
	for i, v := range values {
		bufs[i] = bitbuf.FromBytes(v)
	}
	g := &Group{
		Base:   field.NewBase(name, true, bitbuf.Default, bufs[0]),
		values: bufs,
	}
	g.SetNumMutations(len(bufs))
	return g
}

// Render returns the value selected by the current mutation index, or
// the default (first) value when not mutating.
func (g *Group) Render() bitbuf.Buffer {
	idx := g.CurrentIndex()
	var value bitbuf.Buffer
	if idx >= 0 && idx < len(g.values) {
		value = g.values[idx]
	} else {
		value = g.values[0]
	}
	rendered := g.Encoder().Encode(value)
	g.SetCurrentRendered(rendered)
	return rendered
}

// Mutate advances to the next value in the list, returning false once
// every alternative has been visited.
func (g *Group) Mutate() bool {
	next := g.CurrentIndex() + 1
	if next >= g.NumMutations() {
		return false
	}
	g.SetCurrentIndex(next)
	return true
}

// Reset returns the field to its unmutated, default-rendering state.
func (g *Group) Reset() { g.ResetIndex() }

// Hash folds the type name with every alternative value in order, so the
// hash reflects the group's structural definition rather than its current
// mutation state: two groups with different value lists hash differently,
// and a single group's hash stays the same across Mutate/Reset.
func (g *Group) Hash() uint32 {
	h := field.TypeHash("leaf.Group")
	h = khash.MixUint32(h, uint32(len(g.values)))
	for _, v := range g.values {
		h = khash.Mix(h, v.Bytes()...)
	}
	return h
}

// ResolveField implements the generic upward walk.
func (g *Group) ResolveField(key string) (field.Field, error) {
	return field.ResolveField(g, key)
}

// ScanForField matches only this field's own name.
func (g *Group) ScanForField(key string) (field.Field, bool) {
	return g.ScanForFieldSelf(g, key)
}

// Copy returns a structurally identical, state-independent Group.
func (g *Group) Copy() (field.Field, error) {
	name, _ := g.Name()
	values := make([][]byte, len(g.values))
	for i, v := range g.values {
		values[i] = v.Bytes()
	}
	return NewGroup(name, values), nil
}
