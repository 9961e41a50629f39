package container

import (
	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/field"
)

// NewOneOf builds a container that renders (and mutates) exactly one
// child per mutation: the first len(children) mutations each render one
// child in its default state, then the selected child's own mutations
// enumerate before the next child is selected.
func NewOneOf(name string, children ...field.Field) (*Container, error) {
	c := newBase(OneOfKind, name, bitbuf.Default)
	if err := c.AppendFields(children); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) renderOneOf() bitbuf.Buffer {
	if len(c.fields) == 0 {
		return bitbuf.Empty()
	}
	return c.fields[c.fieldIdx].Render()
}

// mutateOneOfStep selects each child once, in its default state, for the
// first len(fields) mutations; thereafter it resets to the first child
// and runs the default odometer.
func (c *Container) mutateOneOfStep() {
	n := len(c.fields)
	if c.CurrentIndex() < n {
		c.fieldIdx = c.CurrentIndex()
		return
	}
	if c.CurrentIndex() == n {
		c.fieldIdx = 0
	}
	c.mutateDefaultStep()
}
