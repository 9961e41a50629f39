package container

import (
	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/khash"
)

// NewPad builds a container that right-pads the rendered children with
// repetitions of padByte until the total reaches padLengthBits; already
// long enough renders are left untouched. An empty padByte pads with a
// single zero byte.
func NewPad(name string, padLengthBits uint, padByte []byte, children ...field.Field) (*Container, error) {
	if len(padByte) == 0 {
		padByte = []byte{0}
	}
	c := newBase(PadKind, name, bitbuf.Default)
	c.padLengthBits = padLengthBits
	c.padUnit = bitbuf.FromBytes(padByte)
	if err := c.AppendFields(children); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) renderPad() bitbuf.Buffer {
	rendered := c.renderChildren()
	needed := int(c.padLengthBits) - int(rendered.Len())
	if needed <= 0 {
		return rendered
	}
	repeats := needed/int(c.padUnit.Len()) + 1
	padding := c.padUnit.Repeat(repeats).Slice(uint(needed))
	return rendered.Append(padding)
}

func (c *Container) hashPad(h uint32) uint32 {
	h = khash.MixUint64(h, uint64(c.padLengthBits))
	return khash.Mix(h, c.padUnit.Bytes()...)
}
