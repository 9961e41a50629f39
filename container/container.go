// Package container implements the composite Field: an ordered list of
// child fields plus the nested ("odometer") mutation enumerator, and the
// ten container variants that each override one or two aspects of the
// default render/mutate/hash/copy behavior.
//
// Rather than a class tower (one Go type per variant), a single
// Container type carries a Kind tag and the variant-specific parameters
// relevant to that kind; container.go dispatches the few behavioral
// hooks (calculateMutations, mutateStep, render, hash, copy) to
// per-variant files via a switch on Kind.
package container

import (
	"fmt"
	"math/rand"

	"github.com/tmr232/kitty-go/bitbuf"
	"github.com/tmr232/kitty-go/condition"
	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/internal/klog"
	"github.com/tmr232/kitty-go/khash"
)

// Kind selects a container's variant behavior.
type Kind int

const (
	Plain Kind = iota
	ForEachKind
	IfKind
	IfNotKind
	MetaKind
	PadKind
	RepeatKind
	OneOfKind
	TakeFromKind
	TruncKind
	TemplateKind
)

// Container is the composite Field: an ordered list of children plus the
// bookkeeping needed for name resolution, nested mutation, and
// incremental (push/pop) construction. Variant parameters for kinds that
// need them are carried directly on the struct and read only by the
// matching switch branch.
type Container struct {
	field.Base

	kind Kind
	log  *klog.Logger

	fields       []field.Field
	fieldsByName map[string]field.Field
	fieldIdx     int
	ready        bool
	open         []*Container

	// ForEach
	targetName string
	target     field.Field

	// If / IfNot
	cond condition.Condition

	// Pad
	padLengthBits uint
	padUnit       bitbuf.Buffer

	// Repeat
	minTimes, maxTimes, step int
	repeats                  int

	// OneOf / TakeFrom share mutate/render; TakeFrom adds:
	minElements, maxElements int
	seed                     int64
	rng                      *rand.Rand
	subcontainerEncoder      bitbuf.Encoder

	// Trunc
	maxSizeBits   uint
	preTruncValue bitbuf.Buffer
}

func newBase(kind Kind, name string, encoder bitbuf.Encoder) *Container {
	return &Container{
		Base:         field.NewBase(name, true, encoder, bitbuf.Empty()),
		kind:         kind,
		fieldsByName: make(map[string]field.Field),
		fieldIdx:     0,
	}
}

// SetLogger attaches an optional diagnostic logger; nil is safe and is
// the default.
func (c *Container) SetLogger(l *klog.Logger) { c.log = l }

// New builds a plain container: the default odometer over its children,
// no render or mutation-count override.
func New(name string, children ...field.Field) (*Container, error) {
	c := newBase(Plain, name, bitbuf.Default)
	if err := c.AppendFields(children); err != nil {
		return nil, err
	}
	return c, nil
}

// --- construction (push/pop builder stack) ---------------------------------

// Push registers child as a direct child of the innermost currently-open
// container, or of c itself if nothing is open. If child is itself a
// container, it becomes the new innermost open container at every level
// the push descended through, so a matching Pop must close each of them.
func (c *Container) Push(child field.Field) error {
	top := c.currentOpen()
	child.SetEnclosing(c)
	if childContainer, isContainer := child.(*Container); isContainer {
		c.open = append(c.open, childContainer)
	}
	if top != nil {
		return top.Push(child)
	}
	return c.registerDirect(child)
}

func (c *Container) registerDirect(child field.Field) error {
	name, hasName := child.Name()
	if hasName {
		if _, exists := c.fieldsByName[name]; exists {
			if c.log != nil {
				c.log.Warn("duplicate field name rejected", "name", name)
			}
			return fmt.Errorf("%w: %q", field.ErrDuplicateName, name)
		}
		c.fieldsByName[name] = child
	}
	c.fields = append(c.fields, child)
	return nil
}

func (c *Container) currentOpen() *Container {
	if len(c.open) == 0 {
		return nil
	}
	return c.open[len(c.open)-1]
}

// Pop closes the innermost open container.
func (c *Container) Pop() error {
	if len(c.open) == 0 {
		return field.ErrNoContainerToPop
	}
	c.open = c.open[:len(c.open)-1]
	if top := c.currentOpen(); top != nil {
		return top.Pop()
	}
	return nil
}

// AppendFields pushes each of children in order, popping immediately
// after any that is itself a container (batch form of push+pop).
func (c *Container) AppendFields(children []field.Field) error {
	for _, f := range children {
		if err := c.Push(f); err != nil {
			return err
		}
		if _, isContainer := f.(*Container); isContainer {
			if err := c.Pop(); err != nil {
				return err
			}
		}
	}
	return nil
}

// replaceFields discards the current child list and appends a new one;
// used both by plain construction and by TakeFrom's get_ready rebuild.
func (c *Container) replaceFields(children []field.Field) error {
	c.fields = nil
	c.fieldsByName = make(map[string]field.Field)
	c.fieldIdx = 0
	c.open = nil
	return c.AppendFields(children)
}

// --- readiness / mutation count ---------------------------------------------

func (c *Container) ensureReady() error {
	if c.ready {
		return nil
	}
	if c.kind == TakeFromKind {
		if err := c.prepareTakeFrom(); err != nil {
			return err
		}
	}
	sum := 0
	for _, f := range c.fields {
		if err := ensureReady(f); err != nil {
			return err
		}
		sum += f.NumMutations()
	}
	n, err := c.calculateMutations(sum)
	if err != nil {
		return err
	}
	c.SetNumMutations(n)
	c.ready = true
	if c.log != nil {
		name, _ := c.Name()
		c.log.Debug("container ready", "name", name, "num_mutations", n)
	}
	return nil
}

// readier is implemented by *Container; plain leaves need no readiness
// pass of their own.
type readier interface{ ensureReady() error }

func ensureReady(f field.Field) error {
	if r, ok := f.(readier); ok {
		return r.ensureReady()
	}
	return nil
}

// NumMutations triggers readiness (idempotent) before returning the
// frozen mutation count.
func (c *Container) NumMutations() int {
	if err := c.ensureReady(); err != nil {
		return 0
	}
	return c.Base.NumMutations()
}

func (c *Container) calculateMutations(sum int) (int, error) {
	switch c.kind {
	case ForEachKind:
		return c.calculateMutationsForEach(sum)
	case RepeatKind:
		return c.calculateMutationsRepeat(sum)
	case OneOfKind, TakeFromKind:
		return sum + len(c.fields), nil
	default:
		return sum, nil
	}
}

// --- render ------------------------------------------------------------

// Render recomputes the container's rendered bits from its current
// mutation state.
func (c *Container) Render() bitbuf.Buffer {
	if err := c.ensureReady(); err != nil {
		return bitbuf.Empty()
	}
	var rendered bitbuf.Buffer
	switch c.kind {
	case MetaKind:
		rendered = bitbuf.Empty()
	case IfKind:
		rendered = c.renderIf(true)
	case IfNotKind:
		rendered = c.renderIf(false)
	case PadKind:
		rendered = c.renderPad()
	case RepeatKind:
		rendered = c.renderRepeat()
	case OneOfKind, TakeFromKind:
		rendered = c.renderOneOf()
	case TruncKind:
		rendered = c.renderTrunc()
	default:
		rendered = c.renderChildren()
	}
	encoded := c.Encoder().Encode(rendered)
	c.SetCurrentRendered(encoded)
	return encoded
}

// renderChildren concatenates every child's render, in order. Shared by
// Plain, ForEach, If/IfNot (when the condition applies), Pad, Repeat, and
// Trunc.
func (c *Container) renderChildren() bitbuf.Buffer {
	rendered := bitbuf.Empty()
	for _, f := range c.fields {
		rendered = rendered.Append(f.Render())
	}
	return rendered
}

// --- mutate --------------------------------------------------------------

// Mutate advances the container to its next mutation state.
func (c *Container) Mutate() bool {
	if err := c.ensureReady(); err != nil {
		return false
	}
	if c.CurrentIndex() >= c.NumMutations()-1 {
		return false
	}
	c.SetCurrentIndex(c.CurrentIndex() + 1)
	switch c.kind {
	case ForEachKind:
		c.mutateForEachStep()
	case RepeatKind:
		c.mutateRepeatStep()
	case OneOfKind, TakeFromKind:
		c.mutateOneOfStep()
	default:
		c.mutateDefaultStep()
	}
	return true
}

// mutateDefaultStep drives the rolling cursor over children: the default
// odometer. It returns whether some child advanced this call (used
// internally by ForEach; the top-level Mutate and the Repeat and OneOf
// steps ignore it).
func (c *Container) mutateDefaultStep() bool {
	for c.fieldIdx < len(c.fields) {
		if c.fields[c.fieldIdx].Mutate() {
			return true
		}
		c.fields[c.fieldIdx].Reset()
		c.fieldIdx++
	}
	return false
}

// --- reset ---------------------------------------------------------------

// Reset restores the container and every child to its pre-mutation
// state.
func (c *Container) Reset() {
	for _, f := range c.fields {
		f.Reset()
	}
	c.fieldIdx = 0
	c.ResetIndex()
	switch c.kind {
	case ForEachKind:
		if c.target != nil {
			c.target.Reset()
		}
	case TakeFromKind:
		c.reseedTakeFrom()
	}
}

// resetChildrenOnly performs the same work as Reset but, for ForEach,
// deliberately leaves the target field's state untouched (mirrors the
// "reset without resetting the for-each target" step used mid-mutation).
func (c *Container) resetChildrenOnly() {
	for _, f := range c.fields {
		f.Reset()
	}
	c.fieldIdx = 0
	c.ResetIndex()
}

// --- name resolution -------------------------------------------------------

// ScanForField matches this container's own name, then its direct
// children, then recurses into child containers — never ascending.
func (c *Container) ScanForField(key string) (field.Field, bool) {
	if name, ok := c.Name(); ok && name == key {
		return c, true
	}
	if f, ok := c.fieldsByName[key]; ok {
		return f, true
	}
	for _, f := range c.fields {
		if cc, isContainer := f.(*Container); isContainer {
			if found, ok := cc.ScanForField(key); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// ResolveField scans this scope, then ascends through enclosing
// containers to the root.
func (c *Container) ResolveField(key string) (field.Field, error) {
	return field.ResolveField(c, key)
}

// --- session data ----------------------------------------------------------

// SetSessionData propagates session data to every child.
func (c *Container) SetSessionData(data map[string]any) {
	if len(data) == 0 {
		return
	}
	for _, f := range c.fields {
		f.SetSessionData(data)
	}
}

// --- diagnostics -----------------------------------------------------------

// GetInfo delegates to the leaf under the mutation cursor (fieldIdx),
// descending through nested containers, whether or not that leaf has been
// mutated yet. It falls back to the container's own snapshot when the
// cursor is on no child, or on a nested container whose cursor is on no
// child. A
// Template wraps this in its own enriched snapshot (see template.go).
func (c *Container) GetInfo() map[string]any {
	if c.kind == TemplateKind {
		return c.templateGetInfo()
	}
	return c.containerInfo()
}

func (c *Container) containerInfo() map[string]any {
	if cf := c.currentField(); cf != nil {
		return cf.GetInfo()
	}
	return c.Base.GetInfo()
}

func (c *Container) currentField() field.Field {
	if c.fieldIdx < 0 || c.fieldIdx >= len(c.fields) {
		return nil
	}
	f := c.fields[c.fieldIdx]
	if cc, isContainer := f.(*Container); isContainer {
		if deeper := cc.currentField(); deeper != nil {
			return deeper
		}
		return nil
	}
	return f
}

// --- hash ------------------------------------------------------------------

func (c *Container) typeName() string {
	switch c.kind {
	case ForEachKind:
		return "container.ForEach"
	case IfKind:
		return "container.If"
	case IfNotKind:
		return "container.IfNot"
	case MetaKind:
		return "container.Meta"
	case PadKind:
		return "container.Pad"
	case RepeatKind:
		return "container.Repeat"
	case OneOfKind:
		return "container.OneOf"
	case TakeFromKind:
		return "container.TakeFrom"
	case TruncKind:
		return "container.Trunc"
	case TemplateKind:
		return "container.Template"
	default:
		return "container.Container"
	}
}

// Hash folds the container's type name with every child's hash in order,
// then folds in any variant-specific parameters.
func (c *Container) Hash() uint32 {
	h := field.TypeHash(c.typeName())
	for _, f := range c.fields {
		h = khash.MixUint32(h, f.Hash())
	}
	switch c.kind {
	case ForEachKind:
		h = c.hashForEach(h)
	case IfKind, IfNotKind:
		h = c.hashCondition(h)
	case PadKind:
		h = c.hashPad(h)
	case RepeatKind:
		h = c.hashRepeat(h)
	case TakeFromKind:
		h = c.hashTakeFrom(h)
	case TruncKind:
		h = c.hashTrunc(h)
	}
	return h
}

// --- copy --------------------------------------------------------------

// Copy returns a structurally equivalent, state-independent subtree.
// Templates cannot be copied.
func (c *Container) Copy() (field.Field, error) {
	if c.kind == TemplateKind {
		return nil, field.ErrTemplateNotCopyable
	}
	dup := *c
	dup.fields = make([]field.Field, len(c.fields))
	dup.fieldsByName = make(map[string]field.Field)
	dup.open = nil
	for i, f := range c.fields {
		cp, err := f.Copy()
		if err != nil {
			return nil, err
		}
		dup.fields[i] = cp
		cp.SetEnclosing(&dup)
		if name, ok := cp.Name(); ok {
			dup.fieldsByName[name] = cp
		}
	}
	dup.SetCurrentIndex(-1)
	dup.fieldIdx = 0

	switch c.kind {
	case IfKind, IfNotKind:
		if c.cond != nil {
			dup.cond = c.cond.Copy()
			dup.cond.Invalidate()
		}
	case ForEachKind:
		// The caller sets the copy's enclosing container only after Copy
		// returns, so the target is resolved again by name when the copy
		// first becomes ready.
		dup.target = nil
		dup.ready = false
	}
	return &dup, nil
}
