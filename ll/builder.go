package ll

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// GrammarBuilder is a fluent interface for constructing grammars:
//
//    b := NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()  // S → A a
//    b.LHS("A").T("b").End()         // A → b
//    b.LHS("A").Epsilon()            // A → ε
//    g, err := b.Grammar()
//
// Calling LHS repeatedly for the same non-terminal adds alternatives to it.
// The first non-terminal given to LHS is the start symbol.
type GrammarBuilder struct {
	name  string
	order []string              // non-terminals in order of first LHS call
	alts  map[string][][]string // alternatives per non-terminal
	nrefs map[string]string     // non-terminals referenced by N(), with referencing LHS
	trefs map[string]string     // terminals referenced by T(), with referencing LHS
}

// NewGrammarBuilder creates a builder for a grammar with name gname.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		name:  gname,
		alts:  make(map[string][][]string),
		nrefs: make(map[string]string),
		trefs: make(map[string]string),
	}
}

// RuleBuilder collects the right hand side of a rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs []string
}

// LHS starts a new rule for non-terminal s.
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	if _, ok := gb.alts[s]; !ok {
		gb.order = append(gb.order, s)
		gb.alts[s] = nil
	}
	return &RuleBuilder{gb: gb, lhs: s}
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	rb.rhs = append(rb.rhs, s)
	rb.gb.nrefs[s] = rb.lhs
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(s string) *RuleBuilder {
	rb.rhs = append(rb.rhs, s)
	rb.gb.trefs[s] = rb.lhs
	return rb
}

// End closes the rule.
func (rb *RuleBuilder) End() *GrammarBuilder {
	rb.gb.alts[rb.lhs] = append(rb.gb.alts[rb.lhs], rb.rhs)
	return rb.gb
}

// Epsilon closes the rule as an epsilon-production. Symbols appended before
// will make the grammar malformed.
func (rb *RuleBuilder) Epsilon() *GrammarBuilder {
	rb.rhs = append(rb.rhs, EpsilonLiteral)
	return rb.End()
}

// Grammar returns the grammar built so far. It checks that every symbol
// added with N is defined by a rule and that no symbol added with T is.
// Symbols are checked in lexical order.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	for _, nt := range sortedKeys(gb.nrefs) {
		if _, ok := gb.alts[nt]; !ok {
			return nil, malformed(gb.name, gb.nrefs[nt], "non-terminal %s is never defined", nt)
		}
	}
	for _, t := range sortedKeys(gb.trefs) {
		if _, ok := gb.alts[t]; ok {
			return nil, malformed(gb.name, gb.trefs[t], "terminal %s is defined as a non-terminal", t)
		}
	}
	specs := make([]RuleSpec, len(gb.order))
	for i, nt := range gb.order {
		specs[i] = RuleSpec{LHS: nt, Alternatives: gb.alts[nt]}
	}
	return Build(gb.name, specs)
}

func sortedKeys(m map[string]string) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
