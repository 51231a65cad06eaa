package tags

import (
	"reflect"
	"testing"
)

func TestCommitAppendsTrimmed(t *testing.T) {
	e := &Editor{}
	e.SetPending("  Blender  ")
	e.Commit()

	if !reflect.DeepEqual(e.Items, []string{"Blender"}) {
		t.Fatalf("expected [Blender], got %v", e.Items)
	}
	if e.Pending != "" {
		t.Fatalf("expected pending cleared, got %q", e.Pending)
	}
}

func TestCommitBlankIsNoop(t *testing.T) {
	e := &Editor{Items: []string{"Blender"}}
	e.SetPending("   ")
	e.Commit()

	if len(e.Items) != 1 {
		t.Fatalf("expected 1 item, got %v", e.Items)
	}
}

func TestBackspaceRemovesLastOnlyWhenPendingEmpty(t *testing.T) {
	e := &Editor{Items: []string{"Blender", "Houdini"}, Pending: "N"}
	e.Backspace()
	if len(e.Items) != 2 {
		t.Fatalf("backspace with pending input must not touch items, got %v", e.Items)
	}

	e.Pending = ""
	e.Backspace()
	if !reflect.DeepEqual(e.Items, []string{"Blender"}) {
		t.Fatalf("expected [Blender], got %v", e.Items)
	}

	e.Items = nil
	e.Backspace()
	if len(e.Items) != 0 {
		t.Fatalf("backspace on empty list must be a no-op")
	}
}

func TestRemoveAtIsPositional(t *testing.T) {
	e := &Editor{Items: []string{"Blender", "Blender", "Houdini"}}
	e.RemoveAt(0)

	if !reflect.DeepEqual(e.Items, []string{"Blender", "Houdini"}) {
		t.Fatalf("expected the first duplicate removed, got %v", e.Items)
	}
}

func TestRemoveAtOutOfRange(t *testing.T) {
	e := &Editor{Items: []string{"Blender"}}
	e.RemoveAt(-1)
	e.RemoveAt(5)

	if len(e.Items) != 1 {
		t.Fatalf("out-of-range removal must be ignored, got %v", e.Items)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" Blender ", "", "  ", "Houdini"})
	want := []string{"Blender", "Houdini"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
