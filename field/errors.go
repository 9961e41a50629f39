package field

import "errors"

// Sentinel errors for the field/container error taxonomy. Each is
// returned, never panicked, and callers are expected to wrap them with
// fmt.Errorf("%w: ...") for context.
var (
	// ErrDuplicateName is returned when a named child is added to a
	// container that already has a direct child with that name.
	ErrDuplicateName = errors.New("kitty: field with this name already exists in this container")

	// ErrUnresolvedField is returned when ResolveField finds no match up
	// to the root.
	ErrUnresolvedField = errors.New("kitty: field could not be resolved")

	// ErrRenderType is returned when a leaf's render implementation
	// returns something other than a well-formed bit buffer. Render
	// always returns bitbuf.Buffer, so no code path in this module
	// returns it; the kind completes the error taxonomy.
	ErrRenderType = errors.New("kitty: field rendered to an invalid type")

	// ErrNoContainerToPop is returned when Pop is called with no open
	// container on the builder stack.
	ErrNoContainerToPop = errors.New("kitty: no container to pop")

	// ErrTemplateNotCopyable is returned when Copy is invoked on a
	// Template.
	ErrTemplateNotCopyable = errors.New("kitty: template should not be copied")

	// ErrInvalidRange is returned when Repeat is constructed with an
	// inconsistent min/max/step triple.
	ErrInvalidRange = errors.New("kitty: invalid repeat range")

	// ErrTypeAssertion marks an internal invariant violation, such as
	// Push receiving a value that does not implement Field.
	ErrTypeAssertion = errors.New("kitty: internal type assertion failed")
)
