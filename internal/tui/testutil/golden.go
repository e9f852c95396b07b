// Package testutil holds helpers shared by the TUI render tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines strips styling from a rendered view and splits it into rows.
func Lines(view string) []string {
	return strings.Split(ansi.Strip(view), "\n")
}

// GridDiff compares two rendered grids row by row after stripping styling.
// It returns an empty string when they match, otherwise one "-"/"+" pair per
// differing row with the changed characters bracketed.
func GridDiff(want, got string) string {
	w, g := Lines(want), Lines(got)
	n := max(len(w), len(g))
	var sb strings.Builder
	d := dmp.New()
	for i := 0; i < n; i++ {
		var wl, gl string
		if i < len(w) {
			wl = w[i]
		}
		if i < len(g) {
			gl = g[i]
		}
		if wl == gl {
			continue
		}
		diffs := d.DiffMain(wl, gl, false)
		d.DiffCleanupSemantic(diffs)
		var del, ins strings.Builder
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffDelete:
				fmt.Fprintf(&del, "[%s]", df.Text)
			case dmp.DiffInsert:
				fmt.Fprintf(&ins, "[%s]", df.Text)
			case dmp.DiffEqual:
				del.WriteString(df.Text)
				ins.WriteString(df.Text)
			}
		}
		fmt.Fprintf(&sb, "row %d\n- %q\n+ %q\n", i, del.String(), ins.String())
	}
	return sb.String()
}

// AssertGrid fails the test when got does not render as want.
func AssertGrid(t testing.TB, want, got string) {
	t.Helper()
	if d := GridDiff(want, got); d != "" {
		t.Fatalf("rendered grid mismatch:\n%s", d)
	}
}

// Grid joins rows into the form returned by View.
func Grid(rows ...string) string {
	return strings.Join(rows, "\n")
}
