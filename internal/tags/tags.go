// Package tags models the admin form's tag-style multi-value input: entries
// materialize on an explicit commit keystroke, not on every keystroke.
package tags

import "strings"

// Editor holds a tag list under edit plus the pending, uncommitted input.
// The zero value is an empty editor.
type Editor struct {
	Items   []string
	Pending string
}

// SetPending replaces the uncommitted input.
func (e *Editor) SetPending(s string) {
	e.Pending = s
}

// Commit appends the trimmed pending input to the list and clears it.
// A blank or whitespace-only pending input is a no-op.
func (e *Editor) Commit() {
	trimmed := strings.TrimSpace(e.Pending)
	if trimmed == "" {
		return
	}
	e.Items = append(e.Items, trimmed)
	e.Pending = ""
}

// Backspace removes the last tag, but only when the pending input is empty;
// otherwise the keystroke belongs to the text field.
func (e *Editor) Backspace() {
	if e.Pending != "" || len(e.Items) == 0 {
		return
	}
	e.Items = e.Items[:len(e.Items)-1]
}

// RemoveAt removes the tag at index i. Removal is positional so duplicate
// values are each individually removable. Out-of-range indexes are ignored.
func (e *Editor) RemoveAt(i int) {
	if i < 0 || i >= len(e.Items) {
		return
	}
	e.Items = append(e.Items[:i], e.Items[i+1:]...)
}

// Normalize trims every entry and drops blanks, preserving order. It is
// applied at the submit boundary so the stored shape never carries padding
// or empty members.
func Normalize(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
