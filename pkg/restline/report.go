package restline

import (
	"io"

	"github.com/toyz/restline/internal/diag"
)

// WriteReport prints a readable report of a failed registration to w:
// one block per broken method, with the config key and a suggested fix.
// Colors are used when w is a terminal.
func WriteReport(w io.Writer, err error) {
	diag.NewReporter(w).Report(err)
}
