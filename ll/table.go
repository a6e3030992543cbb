package ll

import (
	"fmt"

	"github.com/npillmayer/predict/ll/sparse"
)

// Conflict records a parse table cell claimed by more than one rule.
type Conflict struct {
	NonTerminal Symbol // row of the cell
	Lookahead   Symbol // column of the cell, a terminal or EndMarker
	Existing    *Rule  // rule assigned first, which is kept in the table
	Competing   *Rule  // rule rejected for the cell
}

func (c Conflict) String() string {
	return fmt.Sprintf("M[%s, %s]: %s vs. %s", c.NonTerminal, c.Lookahead, c.Existing, c.Competing)
}

// ParseTable is an LL(1) parse table: for every non-terminal A and lookahead a
// it holds at most one rule to expand A with. ParseTables are immutable and may
// be shared between parsers.
//
// Internally the table is a sparse matrix with a row per non-terminal and a
// column per terminal, plus a final column for the end marker. Entries are rule
// serial numbers. For conflicting cells the matrix holds the first competitor as
// a secondary value.
type ParseTable struct {
	g         *Grammar
	matrix    *sparse.IntMatrix
	columns   []Symbol
	conflicts []Conflict
}

// BuildTable constructs the LL(1) parse table for g. For every rule A → α:
//
//    M[A, t] = α    for every terminal t ∈ FIRST(α)
//    M[A, s] = α    for every s ∈ FOLLOW(A), if ε ∈ FIRST(α)
//
// A cell already holding a different rule is not overwritten; the conflict is
// recorded instead. The table remains usable with this first-match policy, and
// the grammar is LL(1) exactly if no conflicts are returned.
func BuildTable(g *Grammar, first *FirstSets, follow *FollowSets) (*ParseTable, []Conflict) {
	t := &ParseTable{
		g:       g,
		columns: append(g.Terminals(), EndMarker),
	}
	t.matrix = sparse.NewIntMatrix(len(g.nonterminals), len(t.columns), sparse.DefaultNullValue)
	tracer().Infof("LL(1) table of size %d x %d", t.matrix.M(), t.matrix.N())
	for _, r := range g.rules {
		F := first.sequence(r.rhs)
		for _, a := range F.Values() {
			if a.IsTerminal() {
				t.attempt(r, a)
			}
		}
		if F.Contains(Epsilon) {
			for _, s := range follow.sets[r.LHS].Values() {
				t.attempt(r, s)
			}
		}
	}
	if len(t.conflicts) > 0 {
		tracer().Infof("grammar %q is not LL(1): %d conflicts", g.Name, len(t.conflicts))
	}
	return t, t.Conflicts()
}

// attempt sets M[A, a] to r if the cell is empty, and records a conflict if it
// holds a different rule.
func (t *ParseTable) attempt(r *Rule, a Symbol) {
	i, j := t.g.Index(r.LHS), t.column(a)
	if j < 0 {
		tracer().Errorf("symbol %v is not a lookahead of grammar %q", a, t.g.Name)
		return
	}
	v := t.matrix.Value(i, j)
	if v == t.matrix.NullValue() {
		tracer().Debugf("M[%s, %s] = %s", r.LHS, a, r)
		t.matrix.Set(i, j, int32(r.Serial))
		return
	}
	if int(v) == r.Serial {
		return
	}
	c := Conflict{
		NonTerminal: r.LHS,
		Lookahead:   a,
		Existing:    t.g.Rule(int(v)),
		Competing:   r,
	}
	tracer().Debugf("conflict %s", c)
	t.conflicts = append(t.conflicts, c)
	t.matrix.Add(i, j, int32(r.Serial))
}

func (t *ParseTable) column(a Symbol) int {
	if a == EndMarker {
		return len(t.columns) - 1
	}
	if a.IsTerminal() {
		return t.g.Index(a)
	}
	return -1
}

// Entry returns the rule at M[A, a], if any.
func (t *ParseTable) Entry(A, a Symbol) (*Rule, bool) {
	i, j := t.g.Index(A), t.column(a)
	if i < 0 || j < 0 || !A.IsNonTerminal() {
		return nil, false
	}
	v := t.matrix.Value(i, j)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.Rule(int(v)), true
}

// Expected returns the lookaheads for which M[A, ·] has an entry.
func (t *ParseTable) Expected(A Symbol) []Symbol {
	var la []Symbol
	for _, a := range t.columns {
		if _, ok := t.Entry(A, a); ok {
			la = append(la, a)
		}
	}
	return la
}

// Grammar returns the grammar of the table.
func (t *ParseTable) Grammar() *Grammar {
	return t.g
}

// Columns returns the lookahead symbols of the table: the terminals of the
// grammar, followed by EndMarker.
func (t *ParseTable) Columns() []Symbol {
	return append([]Symbol(nil), t.columns...)
}

// Conflicts returns the conflicts found during construction, in the order of
// detection.
func (t *ParseTable) Conflicts() []Conflict {
	return append([]Conflict(nil), t.conflicts...)
}

// IsLL1 is true if the table has been constructed without conflicts.
func (t *ParseTable) IsLL1() bool {
	return len(t.conflicts) == 0
}

// Err returns a *GrammarNotLL1Error if the table has conflicts, nil otherwise.
func (t *ParseTable) Err() error {
	if t.IsLL1() {
		return nil
	}
	return &GrammarNotLL1Error{Grammar: t.g.Name, Conflicts: t.Conflicts()}
}

// Size returns the number of non-empty cells.
func (t *ParseTable) Size() int {
	return t.matrix.ValueCount()
}

// Each calls f for every non-empty cell, row by row.
func (t *ParseTable) Each(f func(A, a Symbol, r *Rule)) {
	t.matrix.Each(func(i, j int, v, _ int32) {
		f(t.g.nonterminals[i], t.columns[j], t.g.Rule(int(v)))
	})
}

// Dump is a debugging helper, writing the table entries to the tracer.
func (t *ParseTable) Dump() {
	tracer().Debugf("--- LL(1) table %s ---------------------", t.g.Name)
	t.matrix.Each(func(i, j int, a, b int32) {
		tracer().Debugf("M[%s, %s] = %s", t.g.nonterminals[i], t.columns[j], cellString(a, b, t.matrix.NullValue()))
	})
	tracer().Debugf("-----------------------------------------")
}

// cellString is a short helper to stringify a table entry.
func cellString(a, b, null int32) string {
	if a == null {
		return "<none>"
	} else if b == null {
		return fmt.Sprintf("%d", a)
	}
	return fmt.Sprintf("%d/%d", a, b)
}
