package predictive

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/schuko/gconf"
)

// Parser is an LL(1)-parser type. Create and initialize one with
// predictive.NewParser(...)
type Parser struct {
	G         *ll.Grammar
	table     *ll.ParseTable
	terminal  func(predict.Token) string // maps tokens to terminal names
	dumpStack bool
}

// Option configures a parser.
type Option func(p *Parser)

// TerminalFor sets a function mapping input tokens to the names of
// terminals. The default is to use the token's lexeme.
func TerminalFor(f func(predict.Token) string) Option {
	return func(p *Parser) {
		if f != nil {
			p.terminal = f
		}
	}
}

// DumpStack lets the parser trace the parse stack on errors. Configuration
// flag "trace-parse-stack" has the same effect for all parsers.
func DumpStack(b bool) Option {
	return func(p *Parser) {
		p.dumpStack = b
	}
}

// NewParser creates a predictive parser for a parse table. Cells of the table
// claimed by more than one rule use the rule assigned first.
func NewParser(table *ll.ParseTable, opts ...Option) *Parser {
	p := &Parser{
		G:        table.Grammar(),
		table:    table,
		terminal: predict.Token.Lexeme,
	}
	for _, opt := range opts {
		opt(p)
	}
	if !table.IsLL1() {
		tracer().Infof("parser for non-LL(1) grammar %q, using first rule of conflicting cells", p.G.Name)
	}
	return p
}

// Step is a single expansion of a derivation.
type Step struct {
	Rule     *ll.Rule
	Position uint64 // number of tokens consumed before the expansion
}

func (s Step) String() string {
	return s.Rule.String()
}

// Result is the outcome of a parse.
type Result struct {
	Accepted bool
	Trace    []Step // the left derivation, up to an error
	Tree     *Node  // derivation tree, partial in case of an error
	Err      error  // *UnexpectedTokenError or *NoProductionError, if not accepted
}

// Derivation returns the trace as a list of strings.
func (r *Result) Derivation() []string {
	d := make([]string, len(r.Trace))
	for i, step := range r.Trace {
		d[i] = step.String()
	}
	return d
}

// We store grammar symbols together with their tree nodes on the parse stack.
type stackitem struct {
	sym  ll.Symbol
	node *Node
}

// Parse starts a new parse, reading tokens from a scanner until either the
// input is accepted or an error occurs. Parse does not alter p, every call
// operates on a fresh parse stack.
//
// The parse stack starts as [S $], with S being the start symbol. With X on top
// of the stack and lookahead a (or $ at the end of input), the parser
//
//    accepts,                 if X = a = $
//    pops X and consumes a,   if X = a
//    replaces X by α,         if M[X, a] = X → α   (nothing is pushed for ε)
//
// and reports an error otherwise.
//
// A table with conflicts may hold a left-recursive rule. If a non-terminal is
// expanded again before its earlier expansion is complete and without any
// input having been consumed in between, the parse is rejected with a
// LeftRecursionError.
func (p *Parser) Parse(scan scanner.Tokenizer) *Result {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	result := &Result{}
	if p.G == nil || p.table == nil {
		result.Err = fmt.Errorf("LL(1)-parser not initialized")
		return result
	}
	result.Tree = &Node{Symbol: p.G.Start()}
	stack := arraystack.New()
	stack.Push(stackitem{sym: ll.EndMarker})
	stack.Push(stackitem{sym: p.G.Start(), node: result.Tree})
	var pos uint64
	var active []expansion // expansions since the last match, not yet completed
	token := scan.NextToken()
	a := p.lookahead(token)
	for {
		top, _ := stack.Peek()
		tos := top.(stackitem)
		X := tos.sym
		tracer().Debugf("X = %v, a = %v", X, a)
		switch {
		case X == ll.EndMarker && a == ll.EndMarker:
			result.Accepted = true
			result.Tree.spans()
			tracer().Infof("input accepted after %d steps", len(result.Trace))
			return result
		case X.IsNonTerminal():
			rule, ok := p.table.Entry(X, a)
			if !ok {
				result.Err = &NoProductionError{
					NonTerminal: X,
					Lookahead:   a,
					Expected:    p.table.Expected(X),
					Position:    pos,
					Token:       token,
					Stack:       p.reject(stack),
				}
				return result
			}
			height := stack.Size()
			for len(active) > 0 && active[len(active)-1].height > height {
				active = active[:len(active)-1]
			}
			if cycle := recursion(active, X); cycle != nil {
				result.Err = &LeftRecursionError{
					NonTerminal: X,
					Lookahead:   a,
					Cycle:       append(cycle, rule),
					Position:    pos,
					Token:       token,
					Stack:       p.reject(stack),
				}
				return result
			}
			active = append(active, expansion{sym: X, rule: rule, height: height})
			tracer().Infof("expand %v", rule)
			stack.Pop()
			result.Trace = append(result.Trace, Step{Rule: rule, Position: pos})
			tos.node.Rule = rule
			p.expand(stack, tos.node, rule)
		case X == a: // a terminal
			tracer().Debugf("match %v", a)
			stack.Pop()
			tos.node.Token = token
			tos.node.Span = token.Span()
			pos++
			active = active[:0]
			token = scan.NextToken()
			a = p.lookahead(token)
		default:
			result.Err = &UnexpectedTokenError{
				Expected: X,
				Found:    a,
				Position: pos,
				Token:    token,
				Stack:    p.reject(stack),
			}
			return result
		}
	}
}

// ParseWords is a convenience function to parse a list of terminal names.
func (p *Parser) ParseWords(words []string) *Result {
	return p.Parse(scanner.Words(words))
}

// expand creates tree nodes for the right hand side of a rule and pushes
// them in reverse order, skipping ε.
func (p *Parser) expand(stack *arraystack.Stack, node *Node, rule *ll.Rule) {
	rhs := rule.RHS()
	node.Children = make([]*Node, len(rhs))
	for i, sym := range rhs {
		node.Children[i] = &Node{Symbol: sym}
	}
	for i := len(rhs) - 1; i >= 0; i-- {
		if rhs[i] != ll.Epsilon {
			stack.Push(stackitem{sym: rhs[i], node: node.Children[i]})
		}
	}
}

// expansion remembers the stack height at which a non-terminal has been
// replaced. It is complete as soon as the stack shrinks below that height.
type expansion struct {
	sym    ll.Symbol
	rule   *ll.Rule
	height int
}

// recursion returns the rules from an incomplete expansion of A up to the
// most recent one, or nil if A is not being expanded.
func recursion(active []expansion, A ll.Symbol) []*ll.Rule {
	for i, x := range active {
		if x.sym == A {
			cycle := make([]*ll.Rule, 0, len(active)-i+1)
			for _, y := range active[i:] {
				cycle = append(cycle, y.rule)
			}
			return cycle
		}
	}
	return nil
}

func (p *Parser) lookahead(token predict.Token) ll.Symbol {
	if token == nil || token.TokType() == scanner.EOF {
		return ll.EndMarker
	}
	return ll.T(p.terminal(token))
}

// reject returns the symbols on the stack, top first, and traces them if
// requested.
func (p *Parser) reject(stack *arraystack.Stack) []ll.Symbol {
	vals := stack.Values()
	syms := make([]ll.Symbol, len(vals))
	names := make([]string, len(vals))
	for i, v := range vals {
		syms[i] = v.(stackitem).sym
		names[i] = syms[i].String()
	}
	if p.dumpStack || gconf.GetBool("trace-parse-stack") {
		tracer().Errorf("parse stack at error: [%s]", strings.Join(names, " "))
	}
	return syms
}
