package ll

// FirstSets holds FIRST(X) for every symbol X of a grammar.
// FirstSets are immutable; accessors return copies.
type FirstSets struct {
	g      *Grammar
	sets   map[Symbol]*SymbolSet
	passes int
}

// ComputeFirst computes the FIRST-sets of all symbols of g.
//
//    FIRST(t) = { t }              for terminals t
//    FIRST($) = { $ }
//    FIRST(A) = ∪ FIRST(α)         for all rules A → α
//
// FIRST of a sequence Y1…Yk accumulates FIRST(Yi) \ {ε} as long as
// Y1…Y(i-1) are all nullable, and contains ε if every Yi is nullable.
//
// The equations are iterated in full passes over all non-terminals until a pass
// produces no change.
func ComputeFirst(g *Grammar) *FirstSets {
	f := initialFirstSets(g)
	for changed := true; changed; f.passes++ {
		changed = f.pass()
	}
	tracer().Debugf("FIRST sets of %q stable after %d passes", g.Name, f.passes)
	return f
}

func initialFirstSets(g *Grammar) *FirstSets {
	f := &FirstSets{
		g:    g,
		sets: make(map[Symbol]*SymbolSet, len(g.terminals)+len(g.nonterminals)+2),
	}
	for _, t := range g.terminals {
		f.sets[t] = NewSymbolSet(t)
	}
	for _, A := range g.nonterminals {
		f.sets[A] = NewSymbolSet()
	}
	f.sets[Epsilon] = NewSymbolSet(Epsilon)
	f.sets[EndMarker] = NewSymbolSet(EndMarker)
	return f
}

// pass applies the FIRST equations once for every rule. It returns true if
// any set has grown.
func (f *FirstSets) pass() bool {
	changed := false
	for _, A := range f.g.nonterminals {
		for _, r := range f.g.byLHS[A] {
			if f.sets[A].Union(f.sequence(r.rhs)) {
				changed = true
			}
		}
	}
	return changed
}

// set returns the (internal) FIRST-set for X. Symbols foreign to the grammar
// are treated as terminals if tagged as such, and as underivable otherwise.
func (f *FirstSets) set(X Symbol) *SymbolSet {
	if s, ok := f.sets[X]; ok {
		return s
	}
	if X.IsTerminal() {
		return NewSymbolSet(X)
	}
	return NewSymbolSet()
}

func (f *FirstSets) sequence(seq []Symbol) *SymbolSet {
	result := NewSymbolSet()
	for _, Y := range seq {
		fy := f.set(Y)
		result.unionWithout(fy, Epsilon)
		if !fy.Contains(Epsilon) {
			return result
		}
	}
	result.Add(Epsilon)
	return result
}

// Of returns FIRST(X).
func (f *FirstSets) Of(X Symbol) *SymbolSet {
	return f.set(X).Copy()
}

// OfSequence returns FIRST(Y1…Yk). The FIRST-set of the empty sequence is { ε }.
func (f *FirstSets) OfSequence(seq []Symbol) *SymbolSet {
	return f.sequence(seq)
}

// Nullable is a predicate: does X derive the empty word?
func (f *FirstSets) Nullable(X Symbol) bool {
	return f.set(X).Contains(Epsilon)
}

// Passes returns the number of passes until the fixpoint was reached,
// including the final pass without changes.
func (f *FirstSets) Passes() int {
	return f.passes
}

// Grammar returns the grammar the sets have been computed for.
func (f *FirstSets) Grammar() *Grammar {
	return f.g
}
