package container

import (
	"fmt"
	"math/rand"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/khash"
)

const takeFromSeedBase = 0x1234

// NewTakeFrom builds a container that renders only a subset of its
// direct children, enumerating every cardinality k from minElements to
// maxElements and, within each cardinality, maxElements+1-k distinct
// subsets (at most C(n, k)) drawn by a seeded RNG, plus every mutation of
// each drawn subset's members. Subsets that are not drawn are not
// enumerated. maxElements <= 0 means "use the number of children given".
func NewTakeFrom(name string, minElements, maxElements int, subcontainerEncoder bitbuf.Encoder, children ...field.Field) (*Container, error) {
	c := newBase(TakeFromKind, name, bitbuf.Default)
	c.minElements = minElements
	c.maxElements = maxElements
	c.seed = takeFromSeedBase
	if subcontainerEncoder == nil {
		subcontainerEncoder = bitbuf.Default
	}
	c.subcontainerEncoder = subcontainerEncoder
	if err := c.AppendFields(children); err != nil {
		return nil, err
	}
	return c, nil
}

// prepareTakeFrom runs once, before the container's own get_ready sums
// children's mutation counts: it resolves the default max_elements, seeds
// the subset RNG, and rebuilds the child list into one sub-container per
// sampled subset. From this point on TakeFrom behaves exactly like OneOf
// over the rebuilt list.
func (c *Container) prepareTakeFrom() error {
	if c.maxElements <= 0 {
		c.maxElements = len(c.fields)
	}
	if c.maxElements > len(c.fields) {
		c.maxElements = len(c.fields)
	}
	if c.minElements < 0 {
		c.minElements = 0
	}
	c.seedTakeFromRNG()
	return c.rebuildTakeFromFields()
}

func (c *Container) seedTakeFromRNG() {
	seed := c.seed*int64(c.maxElements) + int64(c.minElements)
	c.rng = rand.New(rand.NewSource(seed))
}

func (c *Container) reseedTakeFrom() {
	if c.rng != nil {
		c.seedTakeFromRNG()
	}
}

func (c *Container) rebuildTakeFromFields() error {
	original := c.fields
	var seen []mapset.Set[int]
	var rebuilt []field.Field

	for cardinality := c.minElements; cardinality <= c.maxElements; cardinality++ {
		want := c.maxElements + 1 - cardinality
		if cap := binomial(len(original), cardinality); want > cap {
			want = cap
		}
		drawn := 0
		for drawn < want {
			indices := c.rng.Perm(len(original))[:cardinality]
			sort.Ints(indices)
			candidate := mapset.NewSet(indices...)
			if containsSet(seen, candidate) {
				continue
			}
			seen = append(seen, candidate)

			subFields := make([]field.Field, 0, cardinality)
			for _, idx := range indices {
				cp, err := original[idx].Copy()
				if err != nil {
					return err
				}
				subFields = append(subFields, cp)
			}
			subName := fmt.Sprintf("sublist_%d", len(rebuilt))
			if base, ok := c.Name(); ok {
				subName = fmt.Sprintf("%s_sublist_%d", base, len(rebuilt))
			}
			sub := newBase(Plain, subName, c.subcontainerEncoder)
			if err := sub.AppendFields(subFields); err != nil {
				return err
			}
			rebuilt = append(rebuilt, sub)
			drawn++
		}
	}
	return c.replaceFields(rebuilt)
}

// binomial returns C(n, k), the number of distinct k-subsets of an
// n-element set, used to cap subset sampling so it can never spin
// forever hunting for more distinct subsets than exist.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

func containsSet(sets []mapset.Set[int], candidate mapset.Set[int]) bool {
	for _, s := range sets {
		if s.Equal(candidate) {
			return true
		}
	}
	return false
}

func (c *Container) hashTakeFrom(h uint32) uint32 {
	h = khash.MixUint64(h, uint64(c.minElements))
	h = khash.MixUint64(h, uint64(c.maxElements))
	return khash.MixUint64(h, uint64(c.seed))
}
