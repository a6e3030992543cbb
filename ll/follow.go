package ll

// FollowSets holds FOLLOW(A) for every non-terminal A of a grammar.
// FollowSets are immutable; accessors return copies.
type FollowSets struct {
	g      *Grammar
	sets   map[Symbol]*SymbolSet
	passes int
}

// ComputeFollow computes the FOLLOW-sets of all non-terminals of g, using the
// FIRST-sets first (which have to be computed for g as well).
//
// FOLLOW(S) contains $ for start symbol S. For every rule A → β B γ:
//
//    FOLLOW(B) ⊇ FIRST(γ) \ {ε}
//    FOLLOW(B) ⊇ FOLLOW(A)         if γ is empty or ε ∈ FIRST(γ)
//
// FOLLOW(B) may depend on FOLLOW-sets of non-terminals handled later within a
// pass, therefore passes over all rules are repeated until nothing changes.
func ComputeFollow(g *Grammar, first *FirstSets) *FollowSets {
	if first.g != g {
		tracer().Errorf("FIRST-sets of grammar %q used for FOLLOW-sets of %q", first.g.Name, g.Name)
	}
	f := initialFollowSets(g)
	for changed := true; changed; f.passes++ {
		changed = f.pass(first)
	}
	tracer().Debugf("FOLLOW sets of %q stable after %d passes", g.Name, f.passes)
	return f
}

func initialFollowSets(g *Grammar) *FollowSets {
	f := &FollowSets{
		g:    g,
		sets: make(map[Symbol]*SymbolSet, len(g.nonterminals)),
	}
	for _, A := range g.nonterminals {
		f.sets[A] = NewSymbolSet()
	}
	f.sets[g.start].Add(EndMarker)
	return f
}

func (f *FollowSets) pass(first *FirstSets) bool {
	changed := false
	for _, r := range f.g.rules {
		for i, B := range r.rhs {
			if !B.IsNonTerminal() {
				continue
			}
			followB := f.sets[B]
			if gamma := r.rhs[i+1:]; len(gamma) > 0 {
				fg := first.sequence(gamma)
				if followB.unionWithout(fg, Epsilon) {
					changed = true
				}
				if !fg.Contains(Epsilon) {
					continue
				}
			}
			if followB.Union(f.sets[r.LHS]) {
				changed = true
			}
		}
	}
	return changed
}

// Of returns FOLLOW(A). For symbols other than non-terminals of the grammar,
// the empty set is returned.
func (f *FollowSets) Of(A Symbol) *SymbolSet {
	if s, ok := f.sets[A]; ok {
		return s.Copy()
	}
	return NewSymbolSet()
}

// Passes returns the number of passes until the fixpoint was reached,
// including the final pass without changes.
func (f *FollowSets) Passes() int {
	return f.passes
}

// Grammar returns the grammar the sets have been computed for.
func (f *FollowSets) Grammar() *Grammar {
	return f.g
}
