package field_test

import (
	"errors"
	"testing"

	"github.com/tmr232/kitty-go/container"
	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/leaf"
)

func TestResolveFieldOwnName(t *testing.T) {
	s := leaf.NewStatic("greeting", []byte("hi"))
	found, err := field.ResolveField(s, "greeting")
	if err != nil {
		t.Fatalf("ResolveField: %v", err)
	}
	if found != field.Field(s) {
		t.Fatalf("expected self, got a different field")
	}
}

func TestResolveFieldUnresolved(t *testing.T) {
	s := leaf.NewStatic("greeting", []byte("hi"))
	_, err := field.ResolveField(s, "missing")
	if !errors.Is(err, field.ErrUnresolvedField) {
		t.Fatalf("expected ErrUnresolvedField, got %v", err)
	}
}

func TestResolveFieldAscendsThroughContainers(t *testing.T) {
	inner, err := container.New("inner", leaf.NewStatic("leaf1", []byte("x")))
	if err != nil {
		t.Fatalf("New(inner): %v", err)
	}
	tmpl, err := container.NewTemplate("root", inner)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	found, err := field.ResolveField(inner, "root")
	if err != nil {
		t.Fatalf("ResolveField(root): %v", err)
	}
	if found != field.Field(tmpl) {
		t.Fatalf("expected to resolve the enclosing template")
	}
}

func TestBaseMutatingInvariant(t *testing.T) {
	g := leaf.NewGroup("letters", [][]byte{[]byte("a"), []byte("b"), []byte("c")})
	if g.Mutating() {
		t.Fatalf("freshly constructed field should not be mutating")
	}
	if !g.Mutate() {
		t.Fatalf("expected first Mutate to succeed")
	}
	if !g.Mutating() {
		t.Fatalf("field should report mutating after a successful Mutate")
	}
}
