package ll

import (
	"fmt"
	"strings"
)

// MalformedGrammarError reports a structural violation found while building
// a grammar: a duplicate left hand side, an undefined start symbol, or a
// malformed production. It is fatal for grammar construction.
type MalformedGrammarError struct {
	Grammar string // name of the grammar
	LHS     string // offending left hand side, if any
	Reason  string
}

func (e *MalformedGrammarError) Error() string {
	if e.LHS == "" {
		return fmt.Sprintf("malformed grammar %q: %s", e.Grammar, e.Reason)
	}
	return fmt.Sprintf("malformed grammar %q, rule %s: %s", e.Grammar, e.LHS, e.Reason)
}

func malformed(gname, lhs string, format string, args ...interface{}) error {
	return &MalformedGrammarError{
		Grammar: gname,
		LHS:     lhs,
		Reason:  fmt.Sprintf(format, args...),
	}
}

// GrammarNotLL1Error is informational: the parse table has been constructed,
// but some of its cells are claimed by more than one rule.
type GrammarNotLL1Error struct {
	Grammar   string
	Conflicts []Conflict
}

func (e *GrammarNotLL1Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "grammar %q is not LL(1), %d conflict(s)", e.Grammar, len(e.Conflicts))
	for _, c := range e.Conflicts {
		b.WriteString("; ")
		b.WriteString(c.String())
	}
	return b.String()
}
