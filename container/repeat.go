package container

import (
	"fmt"

	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/khash"
)

// NewRepeat builds a container that renders its children concatenated
// `times` times, where times starts at minTimes and grows by step across
// a dedicated "length" mutation phase before children enumerate their
// own states at minTimes repetitions.
func NewRepeat(name string, minTimes, maxTimes, step int, children ...field.Field) (*Container, error) {
	if !(minTimes >= 0 && maxTimes > 0 && maxTimes >= minTimes && step > 0) {
		return nil, fmt.Errorf("%w: min=%d max=%d step=%d", field.ErrInvalidRange, minTimes, maxTimes, step)
	}
	c := newBase(RepeatKind, name, bitbuf.Default)
	c.minTimes = minTimes
	c.maxTimes = maxTimes
	c.step = step
	c.repeats = (maxTimes - minTimes) / step
	if err := c.AppendFields(children); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) calculateMutationsRepeat(sum int) (int, error) {
	return sum + c.repeats, nil
}

// mutateRepeatStep is a no-op during the length phase (the repeat count
// is derived from CurrentIndex at render time); once the length phase is
// exhausted it falls through to the default child odometer.
func (c *Container) mutateRepeatStep() {
	if c.CurrentIndex() >= c.repeats {
		c.mutateDefaultStep()
	}
}

func (c *Container) renderRepeat() bitbuf.Buffer {
	children := c.renderChildren()
	times := c.minTimes
	if c.Mutating() && c.CurrentIndex() < c.repeats {
		// current_index is 0-based within the length phase; the k-th
		// length mutation (k = current_index+1) adds k*step repeats.
		times += (c.CurrentIndex() + 1) * c.step
	}
	return children.Repeat(times)
}

func (c *Container) hashRepeat(h uint32) uint32 {
	h = khash.MixUint64(h, uint64(c.minTimes))
	h = khash.MixUint64(h, uint64(c.maxTimes))
	h = khash.MixUint64(h, uint64(c.step))
	return khash.MixUint64(h, uint64(c.repeats))
}
