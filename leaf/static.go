// Package leaf provides the minimal concrete leaf fields needed to
// exercise and test the container model: Static (a constant, unfuzzed
// value) and Group (a field that cycles through a fixed list of values).
// These exist only as reference/test collaborators for the container
// model; a full catalog of leaf-field kinds lives outside this module.
package leaf

import (
	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/khash"
)

// Static renders a constant value and never mutates.
type Static struct {
	field.Base
	value bitbuf.Buffer
}

// NewStatic creates a Static field rendering value unconditionally.
func NewStatic(name string, value []byte) *Static {
	buf := bitbuf.FromBytes(value)
	return &Static{
		Base:  field.NewBase(name, false, bitbuf.Default, buf),
		value: buf,
	}
}

// Render returns the constant value.
func (s *Static) Render() bitbuf.Buffer {
	rendered := s.Encoder().Encode(s.value)
	s.SetCurrentRendered(rendered)
	return rendered
}

// Mutate never advances; Static has no mutations.
func (s *Static) Mutate() bool { return false }

// Reset is a no-op beyond restoring the rendered cache.
func (s *Static) Reset() { s.ResetIndex() }

// Hash folds the type name and the constant value.
func (s *Static) Hash() uint32 {
	h := field.TypeHash("leaf.Static")
	return khash.Mix(h, s.value.Bytes()...)
}

// ResolveField implements the generic upward walk.
func (s *Static) ResolveField(key string) (field.Field, error) {
	return field.ResolveField(s, key)
}

// ScanForField matches only this field's own name.
func (s *Static) ScanForField(key string) (field.Field, bool) {
	return s.ScanForFieldSelf(s, key)
}

// Copy returns a structurally identical, state-independent Static.
func (s *Static) Copy() (field.Field, error) {
	name, _ := s.Name()
	return NewStatic(name, s.value.Bytes()), nil
}
