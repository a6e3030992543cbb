package ll

import (
	"fmt"
	"html"
	"io"
)

// TableAsHTML exports a parse table in HTML-format. Cells hold rule numbers,
// conflicting cells show the kept rule and its first competitor as "p/q".
// A legend of the grammar's rules follows the table.
func TableAsHTML(t *ParseTable, w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("<html><body>\n")
	ew.printf("<p>LL(1) table for grammar %s, %d entries, %d conflicts</p>\n",
		html.EscapeString(t.g.Name), t.Size(), len(t.conflicts))
	ew.printf("<table border=1 cellspacing=0 cellpadding=5>\n")
	ew.printf("<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range t.columns {
		ew.printf("<td>%s</td>", html.EscapeString(a.String()))
	}
	ew.printf("</tr>\n")
	null := t.matrix.NullValue()
	for i, A := range t.g.nonterminals {
		ew.printf("<tr><td>%s</td>\n", html.EscapeString(A.String()))
		for j := range t.columns {
			td := "&nbsp;"
			if a, b := t.matrix.Values(i, j); a != null {
				td = cellString(a, b, null)
			}
			ew.printf("<td>%s</td>\n", td)
		}
		ew.printf("</tr>\n")
	}
	ew.printf("</table>\n<p>\n")
	for _, r := range t.g.rules {
		ew.printf("%d: %s<br/>\n", r.Serial, html.EscapeString(r.String()))
	}
	ew.printf("</p></body></html>\n")
	return ew.err
}

// errWriter remembers the first write error and skips subsequent writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
