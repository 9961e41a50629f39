package container

import (
	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/khash"
)

// NewTrunc builds a container that renders its children and then slices
// the result to the first maxSizeBits bits; the pre-truncation rendering
// is kept for diagnostics.
func NewTrunc(name string, maxSizeBits uint, children ...field.Field) (*Container, error) {
	c := newBase(TruncKind, name, bitbuf.Default)
	c.maxSizeBits = maxSizeBits
	if err := c.AppendFields(children); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) renderTrunc() bitbuf.Buffer {
	full := c.renderChildren()
	c.preTruncValue = full
	return full.Slice(c.maxSizeBits)
}

// PreTruncValue returns the full, pre-truncation rendering from the most
// recent Render call.
func (c *Container) PreTruncValue() bitbuf.Buffer { return c.preTruncValue }

func (c *Container) hashTrunc(h uint32) uint32 {
	return khash.MixUint64(h, uint64(c.maxSizeBits))
}
