package container

import (
	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/field"
)

// NewMeta builds a container that always renders to empty bits. Its
// children still mutate and contribute to num_mutations as usual — Meta
// is useful for driving side effects (e.g. dynamic leaves depended on
// elsewhere) without emitting any bits of its own.
func NewMeta(name string, children ...field.Field) (*Container, error) {
	c := newBase(MetaKind, name, bitbuf.Default)
	if err := c.AppendFields(children); err != nil {
		return nil, err
	}
	return c, nil
}
