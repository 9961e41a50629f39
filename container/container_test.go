package container_test

import (
	"testing"

	"github.com/tmr232/kitty-go/condition"
	"github.com/tmr232/kitty-go/container"
	"github.com/tmr232/kitty-go/field"
	"github.com/tmr232/kitty-go/leaf"
)

func renderAll(t *testing.T, f field.Field) []string {
	t.Helper()
	var out []string
	out = append(out, string(f.Render().Bytes()))
	for f.Mutate() {
		out = append(out, string(f.Render().Bytes()))
	}
	return out
}

func mustGroup(t *testing.T, name string, values ...string) *leaf.Group {
	t.Helper()
	bs := make([][]byte, len(values))
	for i, v := range values {
		bs[i] = []byte(v)
	}
	return leaf.NewGroup(name, bs)
}

// Default odometer: the first child exhausts fully before the second
// child ever advances.
func TestDefaultOdometerExhaustsFirstChildFully(t *testing.T) {
	letters := mustGroup(t, "L", "a", "b", "c")
	numbers := mustGroup(t, "", "1", "2", "3")
	tmpl, err := container.NewTemplate("t", letters, numbers)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	// The initial (pre-mutate) render and the render after the first
	// mutate() both land on "a1" — a Group's first mutation lands back
	// on its own default value, so the pair is an expected adjacent
	// duplicate rather than a bug.
	got := renderAll(t, tmpl)
	want := []string{"a1", "a1", "b1", "c1", "a1", "a2", "a3"}
	if len(got) != len(want) {
		t.Fatalf("renders = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("render %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// ForEach's mutation count follows the cross-product formula (child
// mutations times target mutations), and every (target, child) pairing
// is observed while mutating. Asserted as an invariant over the set of
// pairs observed rather than a literal render sequence, since the target
// here is also a plain sibling field.
func TestForEachCrossProduct(t *testing.T) {
	letters := mustGroup(t, "L", "a", "b", "c")
	numbers := mustGroup(t, "", "1", "2", "3")
	fe, err := container.NewForEach("fe", "L", numbers)
	if err != nil {
		t.Fatalf("NewForEach: %v", err)
	}
	tmpl, err := container.NewTemplate("t", letters, fe)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}

	childSum := numbers.NumMutations()
	targetMul := letters.NumMutations()
	want := (childSum) * targetMul
	// letters itself also contributes directly (it's a plain sibling),
	// so total template mutations are letters' own count plus fe's.
	wantTotal := letters.NumMutations() + want
	if got := tmpl.NumMutations(); got != wantTotal {
		t.Fatalf("NumMutations() = %d, want %d", got, wantTotal)
	}

	seen := make(map[string]bool)
	tmpl.Render()
	for tmpl.Mutate() {
		tmpl.Render()
		key := string(letters.Render().Bytes()) + "/" + string(numbers.Render().Bytes())
		seen[key] = true
	}
	if len(seen) != want {
		t.Fatalf("observed %d distinct (target, child) pairings, want %d", len(seen), want)
	}
}

// If renders children only while the condition holds.
func TestIfRendersOnlyWhileConditionHolds(t *testing.T) {
	letters := mustGroup(t, "L", "a", "b", "c")
	ifc, err := container.NewIf("", condition.NewEq("L", []byte("a")), leaf.NewStatic("", []byte("dvil")))
	if err != nil {
		t.Fatalf("NewIf: %v", err)
	}
	tmpl, err := container.NewTemplate("t", letters, ifc)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	// The initial render and the render after the first mutate() both
	// land on "advil" (the first mutation of L lands back on its own
	// default value); kept uncollapsed here to match what render() and
	// mutate() actually produce in sequence.
	got := renderAll(t, tmpl)
	want := []string{"advil", "advil", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("renders = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("render %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// IfNot renders children only while the condition does not hold.
func TestIfNotRendersOnlyWhileConditionFails(t *testing.T) {
	letters := mustGroup(t, "L", "a", "b", "c")
	ifn, err := container.NewIfNot("", condition.NewEq("L", []byte("a")), leaf.NewStatic("", []byte("ar")))
	if err != nil {
		t.Fatalf("NewIfNot: %v", err)
	}
	tmpl, err := container.NewTemplate("t", letters, ifn)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	got := renderAll(t, tmpl)
	want := []string{"a", "a", "bar", "car"}
	if len(got) != len(want) {
		t.Fatalf("renders = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("render %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// Repeat's length phase grows times by step before any content
// mutation begins.
func TestRepeatLengthPhaseGrowsBeforeContent(t *testing.T) {
	rep, err := container.NewRepeat("", 5, 10, 5, leaf.NewStatic("", []byte("a")))
	if err != nil {
		t.Fatalf("NewRepeat: %v", err)
	}
	got := renderAll(t, rep)
	want := []string{"aaaaa", "aaaaaaaaaa"}
	if len(got) != len(want) {
		t.Fatalf("renders = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("render %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// Meta's children never render, even though the container around
// them does.
func TestMetaChildrenNeverRender(t *testing.T) {
	meta, err := container.NewMeta("", leaf.NewStatic("", []byte(" ")))
	if err != nil {
		t.Fatalf("NewMeta: %v", err)
	}
	c, err := container.New("", leaf.NewStatic("", []byte("no sp")), meta, leaf.NewStatic("", []byte("ace")))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := string(c.Render().Bytes()); got != "no space" {
		t.Fatalf("Render() = %q, want %q", got, "no space")
	}
}

// Trunc slices the rendered output to the first max_size_bits bits.
func TestTruncSlicesToMaxSizeBits(t *testing.T) {
	tr, err := container.NewTrunc("", 16, leaf.NewStatic("", []byte("ABCDEF")))
	if err != nil {
		t.Fatalf("NewTrunc: %v", err)
	}
	got := tr.Render().Bytes()
	if string(got) != "AB" {
		t.Fatalf("Render() = %q, want %q", got, "AB")
	}
}

func TestOneOfDefaultsThenEnumerates(t *testing.T) {
	a := leaf.NewStatic("", []byte("A"))
	b := mustGroup(t, "", "x", "y")
	oo, err := container.NewOneOf("", a, b)
	if err != nil {
		t.Fatalf("NewOneOf: %v", err)
	}
	// fields[0] is Static (0 mutations), so selecting it a second time at
	// mutate #1 reproduces the initial default render; selecting fields[1]
	// happens at mutate #2 and again, redundantly, when the odometer
	// resets to child 0 and falls through (mutate #3), before fields[1]'s
	// own second value appears at mutate #4.
	got := renderAll(t, oo)
	want := []string{"A", "A", "x", "x", "y"}
	if len(got) != len(want) {
		t.Fatalf("renders = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("render %d = %q, want %q", i, got[i], want[i])
		}
	}
	wantCount := b.NumMutations() + 2 // len(fields)
	if got := oo.NumMutations(); got != wantCount {
		t.Fatalf("NumMutations() = %d, want %d", got, wantCount)
	}
}

func TestPadPadsToExactLength(t *testing.T) {
	pad, err := container.NewPad("", 64, []byte{' '}, leaf.NewStatic("", []byte("hi")))
	if err != nil {
		t.Fatalf("NewPad: %v", err)
	}
	got := pad.Render()
	if got.Len() != 64 {
		t.Fatalf("Len() = %d, want 64", got.Len())
	}
	if string(got.Bytes()) != "hi      " {
		t.Fatalf("Bytes() = %q, want %q", got.Bytes(), "hi      ")
	}
}

func TestPadNoOpWhenAlreadyLongEnough(t *testing.T) {
	pad, err := container.NewPad("", 8, []byte{' '}, leaf.NewStatic("", []byte("hi")))
	if err != nil {
		t.Fatalf("NewPad: %v", err)
	}
	got := pad.Render()
	if string(got.Bytes()) != "hi" {
		t.Fatalf("Bytes() = %q, want %q", got.Bytes(), "hi")
	}
}

func TestRepeatInvalidRange(t *testing.T) {
	if _, err := container.NewRepeat("", -1, 5, 1, leaf.NewStatic("", []byte("a"))); err == nil {
		t.Fatalf("expected an error for negative min_times")
	}
	if _, err := container.NewRepeat("", 5, 1, 1, leaf.NewStatic("", []byte("a"))); err == nil {
		t.Fatalf("expected an error for max_times < min_times")
	}
	if _, err := container.NewRepeat("", 1, 5, 0, leaf.NewStatic("", []byte("a"))); err == nil {
		t.Fatalf("expected an error for step <= 0")
	}
}

func TestDuplicateNameRejected(t *testing.T) {
	_, err := container.New("", mustGroup(t, "x", "a"), mustGroup(t, "x", "b"))
	if err == nil {
		t.Fatalf("expected a duplicate-name error")
	}
}

func TestMutateExhaustsExactlyNumMutationsTimes(t *testing.T) {
	letters := mustGroup(t, "", "a", "b", "c")
	numbers := mustGroup(t, "", "1", "2")
	tmpl, err := container.NewTemplate("t", letters, numbers)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	n := tmpl.NumMutations()
	count := 0
	for tmpl.Mutate() {
		count++
	}
	if count != n {
		t.Fatalf("Mutate() succeeded %d times, want %d", count, n)
	}
	if tmpl.Mutate() {
		t.Fatalf("Mutate() should keep returning false once exhausted")
	}
}

func TestResetReplaysIdenticalRenders(t *testing.T) {
	letters := mustGroup(t, "", "a", "b")
	numbers := mustGroup(t, "", "1", "2")
	tmpl, err := container.NewTemplate("t", letters, numbers)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	first := renderAll(t, tmpl)
	tmpl.Reset()
	second := renderAll(t, tmpl)
	if len(first) != len(second) {
		t.Fatalf("reset should replay the same number of renders: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("render %d differs after reset: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestHashStableAcrossMutateAndReset(t *testing.T) {
	letters := mustGroup(t, "", "a", "b", "c")
	tmpl, err := container.NewTemplate("t", letters)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	h0 := tmpl.Hash()
	// Drive the group past its first value (index 0) to index 1, so a
	// hash that accidentally depends on mutation state would be caught
	// here; clamping index -1 and 0 together, as a lesser bug might, is
	// not enough to pass this.
	tmpl.Mutate()
	tmpl.Mutate()
	if tmpl.Hash() != h0 {
		t.Fatalf("Hash() changed after Mutate()")
	}
	tmpl.Reset()
	if tmpl.Hash() != h0 {
		t.Fatalf("Hash() changed after Reset()")
	}
}

func TestHashChangesWithStructure(t *testing.T) {
	a, err := container.New("", leaf.NewStatic("", []byte("a")))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := container.New("", leaf.NewStatic("", []byte("a")), leaf.NewStatic("", []byte("b")))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Hash() == b.Hash() {
		t.Fatalf("containers with different children should hash differently")
	}
}

func TestTemplateCopyForbidden(t *testing.T) {
	tmpl, err := container.NewTemplate("t", leaf.NewStatic("", []byte("x")))
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	if _, err := tmpl.Copy(); err == nil {
		t.Fatalf("expected Template.Copy to fail")
	}
}

func TestTakeFromEnumeratesSubsets(t *testing.T) {
	tf, err := container.NewTakeFrom("", 1, 2, nil,
		leaf.NewStatic("", []byte("x")),
		leaf.NewStatic("", []byte("y")),
		leaf.NewStatic("", []byte("z")))
	if err != nil {
		t.Fatalf("NewTakeFrom: %v", err)
	}
	n := tf.NumMutations()
	if n <= 0 {
		t.Fatalf("NumMutations() = %d, want > 0", n)
	}
	count := 0
	for tf.Mutate() {
		tf.Render()
		count++
	}
	if count != n {
		t.Fatalf("mutate count = %d, want %d", count, n)
	}
}

func TestTemplateGetInfo(t *testing.T) {
	tmpl, err := container.NewTemplate("t", leaf.NewStatic("", []byte("hi")))
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	info := tmpl.GetInfo()
	if info["value/rendered/hex"] != "6869" {
		t.Fatalf(`info["value/rendered/hex"] = %v, want "6869"`, info["value/rendered/hex"])
	}
	if info["value/rendered/len"] != 2 {
		t.Fatalf(`info["value/rendered/len"] = %v, want 2`, info["value/rendered/len"])
	}
}
