package container

import (
	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/khash"
)

// NewForEach builds a container that, for every mutation of the named
// target field, enumerates every mutation of children fully — a cross
// product rather than the default container's one-child-at-a-time
// odometer. targetName is resolved lazily, by upward name resolution,
// the first time the container becomes ready.
func NewForEach(name, targetName string, children ...field.Field) (*Container, error) {
	c := newBase(ForEachKind, name, bitbuf.Default)
	c.targetName = targetName
	if err := c.AppendFields(children); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) calculateMutationsForEach(sum int) (int, error) {
	target, err := field.ResolveField(c, c.targetName)
	if err != nil {
		return 0, err
	}
	c.target = target
	mul := target.NumMutations()
	if mul == 0 {
		mul = 1
	}
	return sum * mul, nil
}

// mutateForEachStep drives the cross product: mutate the target once on
// the very first internal step, then exhaust children fully; each time
// children exhaust, reset them (but not the target) and advance the
// target once before resuming. Written as a loop, not the recursive form
// the behavior is modeled on, since the target may have many states.
func (c *Container) mutateForEachStep() {
	if c.CurrentIndex() == 0 {
		c.target.Mutate()
	}
	for !c.mutateDefaultStep() {
		idx := c.CurrentIndex()
		c.resetChildrenOnly()
		c.SetCurrentIndex(idx)
		if !c.target.Mutate() {
			return
		}
	}
}

func (c *Container) hashForEach(h uint32) uint32 {
	if c.target != nil {
		h = khash.MixUint32(h, c.target.Hash())
	}
	return khash.MixString(h, c.targetName)
}
