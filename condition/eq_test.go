package condition_test

import (
	"testing"

	"github.com/tmr232/kitty-go/condition"
	"github.com/tmr232/kitty-go/container"
	"github.com/tmr232/kitty-go/leaf"
)

func buildScope(t *testing.T) *container.Container {
	t.Helper()
	letters := leaf.NewGroup("letters", [][]byte{[]byte("a"), []byte("b"), []byte("c")})
	tmpl, err := container.NewTemplate("root", letters)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	return tmpl
}

func TestEqAppliesMatchesCurrentValue(t *testing.T) {
	tmpl := buildScope(t)
	eq := condition.NewEq("letters", []byte("a"))
	if !eq.Applies(tmpl) {
		t.Fatalf("expected condition to apply while letters == a")
	}
	tmpl.Mutate() // first mutation of letters lands on 'a' again
	tmpl.Mutate() // advances letters to 'b'
	if eq.Applies(tmpl) {
		t.Fatalf("expected condition to stop applying once letters != a")
	}
}

func TestEqCopyInvalidatesCache(t *testing.T) {
	tmpl := buildScope(t)
	eq := condition.NewEq("letters", []byte("a"))
	eq.Applies(tmpl) // populate the cache

	dup := eq.Copy()
	dup.Invalidate()
	// dup must re-resolve lazily rather than reuse tmpl's cached field;
	// against a fresh, unrelated scope it should fail to resolve.
	other, err := container.NewTemplate("other")
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	if dup.Applies(other) {
		t.Fatalf("expected Applies to fail once invalidated and given an unrelated scope")
	}
}
