package container

import (
	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/condition"
	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/khash"
)

// NewIf builds a container that renders its children only while cond
// applies; mutation count and enumeration are unaffected.
func NewIf(name string, cond condition.Condition, children ...field.Field) (*Container, error) {
	c := newBase(IfKind, name, bitbuf.Default)
	c.cond = cond
	if err := c.AppendFields(children); err != nil {
		return nil, err
	}
	return c, nil
}

// NewIfNot builds a container that renders its children only while cond
// does not apply.
func NewIfNot(name string, cond condition.Condition, children ...field.Field) (*Container, error) {
	c := newBase(IfNotKind, name, bitbuf.Default)
	c.cond = cond
	if err := c.AppendFields(children); err != nil {
		return nil, err
	}
	return c, nil
}

// renderIf renders children iff the condition's result matches want
// (true for If, false for IfNot); otherwise it renders empty bits.
func (c *Container) renderIf(want bool) bitbuf.Buffer {
	if c.cond.Applies(c) == want {
		return c.renderChildren()
	}
	return bitbuf.Empty()
}

func (c *Container) hashCondition(h uint32) uint32 {
	if c.cond == nil {
		return h
	}
	return khash.MixUint32(h, c.cond.Hash())
}
