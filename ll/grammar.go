package ll

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"
)

// EpsilonLiteral is the reserved name denoting Epsilon in rule specifications.
const EpsilonLiteral = "ε"

// --- Rules ------------------------------------------------------------

// Rule is a single production of a grammar. An epsilon-production has a
// right hand side consisting of Epsilon only.
type Rule struct {
	Serial int    // ordinal number of this rule within its grammar
	LHS    Symbol // non-terminal on the left hand side
	rhs    []Symbol
}

// RHS returns a copy of the right hand side symbols of a rule.
func (r *Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// IsEpsilon is a predicate: is r an epsilon-production?
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 1 && r.rhs[0] == Epsilon
}

// Equals is true if both rules have identical sides.
func (r *Rule) Equals(other *Rule) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.LHS == other.LHS && slices.Equal(r.rhs, other.rhs)
}

// Production returns the right hand side as a string.
func (r *Rule) Production() string {
	names := make([]string, len(r.rhs))
	for i, sym := range r.rhs {
		names[i] = sym.String()
	}
	return strings.Join(names, " ")
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s → %s", r.LHS, r.Production())
}

// --- Grammar ----------------------------------------------------------

// RuleSpec specifies a grammar rule for Build. Every alternative is a sequence
// of symbol names; EpsilonLiteral stands for Epsilon and has to be the only
// symbol of its alternative.
type RuleSpec struct {
	LHS          string
	Alternatives [][]string
}

// Grammar is a context-free grammar. Grammars are immutable once built.
type Grammar struct {
	Name         string
	start        Symbol
	rules        []*Rule
	byLHS        map[Symbol][]*Rule
	nonterminals []Symbol // in order of declaration
	terminals    []Symbol // in order of first reference
	index        map[Symbol]int
	byName       map[string]Symbol
}

// Option configures grammar construction.
type Option func(*buildOptions)

type buildOptions struct {
	start string
}

// WithStart selects a start symbol different from the first rule's left hand side.
func WithStart(name string) Option {
	return func(opts *buildOptions) {
		opts.start = name
	}
}

// Build creates a grammar from a list of rule specifications. Unless
// option WithStart is given, the left hand side of the first rule is the
// start symbol.
//
// Build returns a *MalformedGrammarError if a left hand side occurs more than
// once, if the start symbol is not a left hand side, or if an alternative is
// malformed (empty without using Epsilon, or Epsilon mixed with other symbols).
func Build(name string, specs []RuleSpec, opts ...Option) (*Grammar, error) {
	if len(specs) == 0 {
		return nil, malformed(name, "", "grammar has no rules")
	}
	options := buildOptions{start: specs[0].LHS}
	for _, opt := range opts {
		opt(&options)
	}
	g := &Grammar{
		Name:   name,
		byLHS:  make(map[Symbol][]*Rule),
		index:  make(map[Symbol]int),
		byName: make(map[string]Symbol),
	}
	// collect all the non-terminals first, so forward references resolve
	for _, spec := range specs {
		switch {
		case strings.TrimSpace(spec.LHS) == "":
			return nil, malformed(name, "", "empty left hand side")
		case spec.LHS == EpsilonLiteral:
			return nil, malformed(name, spec.LHS, "reserved symbol used as left hand side")
		}
		if _, dup := g.byName[spec.LHS]; dup {
			return nil, malformed(name, spec.LHS, "left hand side repeated, alternatives have to be merged")
		}
		A := N(spec.LHS)
		g.index[A] = len(g.nonterminals)
		g.nonterminals = append(g.nonterminals, A)
		g.byName[spec.LHS] = A
	}
	start, ok := g.byName[options.start]
	if !ok {
		return nil, malformed(name, "", "start symbol %q is not a left hand side", options.start)
	}
	g.start = start
	for _, spec := range specs {
		if len(spec.Alternatives) == 0 {
			return nil, malformed(name, spec.LHS, "no alternatives")
		}
		A := g.byName[spec.LHS]
		for k, alt := range spec.Alternatives {
			rhs, err := g.resolve(spec.LHS, k, alt)
			if err != nil {
				return nil, err
			}
			r := &Rule{Serial: len(g.rules), LHS: A, rhs: rhs}
			g.rules = append(g.rules, r)
			g.byLHS[A] = append(g.byLHS[A], r)
		}
	}
	tracer().Debugf("grammar %q: %d rules, %d non-terminals, %d terminals",
		name, len(g.rules), len(g.nonterminals), len(g.terminals))
	return g, nil
}

// resolve maps the symbol names of an alternative to symbols, collecting
// terminals on the way.
func (g *Grammar) resolve(lhs string, k int, alt []string) ([]Symbol, error) {
	if len(alt) == 0 {
		return nil, malformed(g.Name, lhs, "alternative #%d is empty; use %s for epsilon", k+1, EpsilonLiteral)
	}
	rhs := make([]Symbol, len(alt))
	for i, name := range alt {
		if name == EpsilonLiteral {
			if len(alt) > 1 {
				return nil, malformed(g.Name, lhs, "alternative #%d mixes %s with other symbols", k+1, EpsilonLiteral)
			}
			rhs[i] = Epsilon
			continue
		}
		if strings.TrimSpace(name) == "" {
			return nil, malformed(g.Name, lhs, "alternative #%d contains an empty symbol name", k+1)
		}
		sym, ok := g.byName[name]
		if !ok {
			sym = T(name)
			g.index[sym] = len(g.terminals)
			g.terminals = append(g.terminals, sym)
			g.byName[name] = sym
		}
		rhs[i] = sym
	}
	return rhs, nil
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns the rule with serial number i, or nil.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns all rules in order of declaration.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// RulesFor returns the alternatives for non-terminal A, in order of declaration.
func (g *Grammar) RulesFor(A Symbol) []*Rule {
	return append([]*Rule(nil), g.byLHS[A]...)
}

// NonTerminals returns the non-terminals in order of declaration.
func (g *Grammar) NonTerminals() []Symbol {
	return append([]Symbol(nil), g.nonterminals...)
}

// Terminals returns the terminals in order of first reference.
func (g *Grammar) Terminals() []Symbol {
	return append([]Symbol(nil), g.terminals...)
}

// IsTerminal is a predicate: is sym a terminal of g?
func (g *Grammar) IsTerminal(sym Symbol) bool {
	_, ok := g.index[sym]
	return ok && sym.IsTerminal()
}

// IsNonTerminal is a predicate: is sym a non-terminal of g?
func (g *Grammar) IsNonTerminal(sym Symbol) bool {
	_, ok := g.index[sym]
	return ok && sym.IsNonTerminal()
}

// SymbolByName finds a terminal or non-terminal by name.
func (g *Grammar) SymbolByName(name string) (Symbol, bool) {
	sym, ok := g.byName[name]
	return sym, ok
}

// Index returns the position of a symbol within the list of terminals or
// non-terminals, respectively. Returns -1 for symbols not in g.
func (g *Grammar) Index(sym Symbol) int {
	if i, ok := g.index[sym]; ok {
		return i
	}
	return -1
}

// EachNonTerminal calls f for every non-terminal, in order of declaration.
func (g *Grammar) EachNonTerminal(f func(A Symbol)) {
	for _, A := range g.nonterminals {
		f(A)
	}
}

// Specs returns rule specifications from which g may be re-built.
func (g *Grammar) Specs() []RuleSpec {
	specs := make([]RuleSpec, len(g.nonterminals))
	for i, A := range g.nonterminals {
		specs[i].LHS = A.Name
		for _, r := range g.byLHS[A] {
			alt := make([]string, len(r.rhs))
			for j, sym := range r.rhs {
				alt[j] = sym.String()
			}
			specs[i].Alternatives = append(specs[i].Alternatives, alt)
		}
	}
	return specs
}

// structhash considers exported fields only.
type fingerprint struct {
	Start string
	Rules []RuleSpec
}

// Fingerprint returns a hash over the rules of g. Grammars with equal rules
// and start symbol have equal fingerprints, regardless of their names.
func (g *Grammar) Fingerprint() string {
	fp := fingerprint{Start: g.start.Name, Rules: g.Specs()}
	h, err := structhash.Hash(fp, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar %q: %v", g.Name, err)
		return ""
	}
	return h
}

// Dump is a debugging helper, writing the rules to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ---------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-----------------------------------------")
}

func (g *Grammar) String() string {
	var b strings.Builder
	for _, A := range g.nonterminals {
		b.WriteString(A.Name)
		b.WriteString(" -> ")
		for i, r := range g.byLHS[A] {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(r.Production())
		}
		b.WriteString("\n")
	}
	return b.String()
}
