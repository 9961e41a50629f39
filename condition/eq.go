package condition

import (
	"bytes"

	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/khash"
)

// Eq is a condition that compares a named field's currently rendered
// bytes against an expected value.
type Eq struct {
	fieldName string
	expected  []byte

	resolved field.Field // cached after first Applies; nil until then
}

// NewEq builds an Eq condition comparing fieldName's rendered bytes
// against expected.
func NewEq(fieldName string, expected []byte) *Eq {
	return &Eq{fieldName: fieldName, expected: append([]byte(nil), expected...)}
}

// Applies resolves fieldName against scope (caching the result) and
// compares its current rendered bytes to the expected value.
func (e *Eq) Applies(scope field.Field) bool {
	if e.resolved == nil {
		found, err := scope.ResolveField(e.fieldName)
		if err != nil {
			return false
		}
		e.resolved = found
	}
	return bytes.Equal(e.resolved.Render().Bytes(), e.expected)
}

// Copy returns a structural copy with its cached resolution cleared.
func (e *Eq) Copy() Condition {
	dup := &Eq{fieldName: e.fieldName, expected: append([]byte(nil), e.expected...)}
	return dup
}

// Invalidate drops the cached resolved field reference.
func (e *Eq) Invalidate() { e.resolved = nil }

// Hash returns Eq's structural fingerprint.
func (e *Eq) Hash() uint32 {
	h := khash.String("condition.Eq")
	h = khash.MixString(h, e.fieldName)
	h = khash.Mix(h, e.expected...)
	return h
}
