package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes
const (
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

const (
	markUpdated = "✓"
	markError   = "✗"
	markMissing = "⚠"
)

var summaryRule = strings.Repeat("=", 60)

// Summary counts the outcome of one run.
type Summary struct {
	Updated int
	Errors  int
	Missing int
}

// reporter prints the progress and summary lines of a run.
type reporter struct {
	w     io.Writer
	color bool
}

// newReporter returns a reporter writing to w. Marks are colored only when w
// is a terminal.
func newReporter(w io.Writer) *reporter {
	r := &reporter{w: w}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.color = true
	}
	return r
}

func (r *reporter) mark(mark, color string) string {
	if !r.color {
		return mark
	}
	return color + mark + colorReset
}

func (r *reporter) parsing() {
	fmt.Fprintln(r.w, "Parsing test output...")
}

func (r *reporter) found(n int) {
	fmt.Fprintf(r.w, "Found %d failing tests\n", n)
}

func (r *reporter) updated(name string) {
	fmt.Fprintf(r.w, "%s Updated %s\n", r.mark(markUpdated, colorGreen), name)
}

func (r *reporter) failed(name string, err error) {
	fmt.Fprintf(r.w, "%s Error updating %s: %v\n", r.mark(markError, colorRed), name, err)
}

func (r *reporter) missing(name string) {
	fmt.Fprintf(r.w, "%s Fixture not found: %s\n", r.mark(markMissing, colorYellow), name)
}

func (r *reporter) summary(s Summary) {
	fmt.Fprintf(r.w, "\n%s\n", summaryRule)
	fmt.Fprintf(r.w, "Summary: %d fixtures updated, %d errors\n", s.Updated, s.Errors)
	fmt.Fprintln(r.w, summaryRule)
}
