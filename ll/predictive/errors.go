package predictive

import (
	"fmt"
	"strings"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
)

// UnexpectedTokenError is reported if the terminal on top of the parse stack
// does not match the lookahead.
type UnexpectedTokenError struct {
	Expected ll.Symbol     // terminal or end marker on top of the stack
	Found    ll.Symbol     // lookahead
	Position uint64        // number of tokens consumed before the error
	Token    predict.Token // offending token
	Stack    []ll.Symbol   // parse stack at the time of the error, top first
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("syntax error at token #%d %s: expected %s, found %s",
		e.Position, spanOf(e.Token), e.Expected, e.Found)
}

// NoProductionError is reported if the parse table has no rule to expand the
// non-terminal on top of the parse stack for the lookahead.
type NoProductionError struct {
	NonTerminal ll.Symbol
	Lookahead   ll.Symbol
	Expected    []ll.Symbol // lookaheads which would have been valid
	Position    uint64
	Token       predict.Token
	Stack       []ll.Symbol
}

func (e *NoProductionError) Error() string {
	exp := make([]string, len(e.Expected))
	for i, a := range e.Expected {
		exp[i] = a.String()
	}
	return fmt.Sprintf("syntax error at token #%d %s: no rule for %s with lookahead %s, expected one of [%s]",
		e.Position, spanOf(e.Token), e.NonTerminal, e.Lookahead, strings.Join(exp, " "))
}

// LeftRecursionError is reported if a non-terminal is expanded again without
// consuming input while an earlier expansion of it is still pending. This can
// only happen for tables with conflicts.
type LeftRecursionError struct {
	NonTerminal ll.Symbol
	Lookahead   ll.Symbol
	Cycle       []*ll.Rule // rules applied from the first expansion of NonTerminal on
	Position    uint64
	Token       predict.Token
	Stack       []ll.Symbol
}

func (e *LeftRecursionError) Error() string {
	rules := make([]string, len(e.Cycle))
	for i, r := range e.Cycle {
		rules[i] = r.String()
	}
	return fmt.Sprintf("parse error at token #%d %s: %s does not terminate for lookahead %s: %s",
		e.Position, spanOf(e.Token), e.NonTerminal, e.Lookahead, strings.Join(rules, ", "))
}

func spanOf(tok predict.Token) string {
	if tok == nil {
		return ""
	}
	return tok.Span().String()
}
