// Package diag renders compile errors as a human-readable report. It is
// the output half of interface registration: when a declaration fails to
// compile, every broken method is printed as one block with the method's
// config key, the error, and a suggested fix.
package diag

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Diagnostic is the shape of errors the reporter knows how to detail.
// Anything else is printed with its Error() text only.
type Diagnostic interface {
	error
	ConfigKey() string
	Suggestion() string
}

// Reporter writes error reports to a single destination. Colors are used
// only when the destination is a terminal.
type Reporter struct {
	out       io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:       out,
		useColors: isTerminal(out),
	}
}

// Report prints one block per underlying error. Multi-errors (anything
// exposing Unwrap() []error) are flattened first.
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}

	for _, e := range flatten(err) {
		r.reportOne(e)
	}
}

func (r *Reporter) reportOne(err error) {
	label := "error"
	if r.useColors {
		label = color.New(color.FgRed, color.Bold).Sprint(label)
	}

	var d Diagnostic
	if !errors.As(err, &d) {
		fmt.Fprintf(r.out, "%s: %v\n", label, err)
		return
	}

	key := d.ConfigKey()
	if r.useColors {
		key = color.New(color.FgCyan).Sprint(key)
	}

	fmt.Fprintf(r.out, "%s: %s\n", label, key)
	fmt.Fprintf(r.out, "  %v\n", err)
	if hint := d.Suggestion(); hint != "" {
		fmt.Fprintf(r.out, "  hint: %s\n", hint)
	}
}

// flatten expands nested multi-errors into a flat list.
func flatten(err error) []error {
	if group, ok := err.(interface{ Unwrap() []error }); ok {
		var all []error
		for _, e := range group.Unwrap() {
			all = append(all, flatten(e)...)
		}
		return all
	}
	return []error{err}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
