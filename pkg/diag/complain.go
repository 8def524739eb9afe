package diag

import (
	"fmt"
	"io"
)

// Complain writes a one-line diagnostic for the numbered input line, in the
// "ERROR <lineNr> <message>" format. It is the single place where line errors
// are rendered; the packages that detect errors only return them as values.
func Complain(w io.Writer, lineNr int, msg string) {
	fmt.Fprintf(w, "ERROR %d %s\n", lineNr, msg)
}
