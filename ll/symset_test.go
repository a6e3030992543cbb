package ll

import (
	"testing"
)

func TestSymbolSetOrder(t *testing.T) {
	s := NewSymbolSet(EndMarker, N("A"), T("b"), Epsilon, T("a"), T("b"))
	if s.Size() != 5 {
		t.Errorf("Expected set to have 5 elements, has %d", s.Size())
	}
	if s.String() != "{ a b A ε $ }" {
		t.Errorf("Expected set to print as { a b A ε $ }, is %s", s)
	}
	if w := s.Without(Epsilon); w.Contains(Epsilon) || w.Size() != 4 || !s.Contains(Epsilon) {
		t.Errorf("Expected Without to return a new set lacking ε, is %s", w)
	}
	if T("A") == N("A") || s.Contains(T("A")) {
		t.Errorf("Expected terminal A and non-terminal A to differ")
	}
	var nilset *SymbolSet
	if nilset.Contains(T("a")) || !nilset.Empty() {
		t.Errorf("Expected nil set to be empty")
	}
}

func TestSymbolSetUnion(t *testing.T) {
	s := NewSymbolSet(T("a"))
	if !s.Union(NewSymbolSet(T("a"), T("b"))) {
		t.Errorf("Expected union to report growth")
	}
	if s.Union(NewSymbolSet(T("b"))) {
		t.Errorf("Expected union not to report growth for a subset")
	}
	if !s.Equals(NewSymbolSet(T("b"), T("a"))) {
		t.Errorf("Expected set to equal { a b }, is %s", s)
	}
}

func TestRuleEquals(t *testing.T) {
	g := exprGrammar(t)
	g2 := exprGrammar(t)
	if !g.Rule(1).Equals(g2.Rule(1)) {
		t.Errorf("Expected rules with equal sides to be equal")
	}
	if g.Rule(1).Equals(g.Rule(2)) {
		t.Errorf("Expected %v and %v to differ", g.Rule(1), g.Rule(2))
	}
	rhs := g.Rule(0).RHS()
	rhs[0] = T("x")
	if g.Rule(0).RHS()[0] != N("T") {
		t.Errorf("Expected RHS to be a copy")
	}
}
