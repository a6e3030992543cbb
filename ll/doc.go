/*
Package ll implements static grammar analysis for LL(1) parsing.

Building a Grammar

Grammars are either built from a list of rule specifications, or by using a
grammar builder object. Clients add rules, consisting of non-terminal symbols
and terminals. Grammars may contain epsilon-productions, which have to be
stated explicitly.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()  // S  ->  A a
    b.LHS("A").N("B").N("D").End()  // A  ->  B D
    b.LHS("B").T("b").End()         // B  ->  b
    b.LHS("B").Epsilon()            // B  ->  ε
    b.LHS("D").T("d").End()         // D  ->  d
    b.LHS("D").Epsilon()            // D  ->  ε
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: S → A a
   1: A → B D
   2: B → b
   3: B → ε
   4: D → d
   5: D → ε

The same grammar may be stated with rule specifications, where the first rule's
left hand side is the start symbol and the reserved literal "ε" denotes epsilon:

    g, err := ll.Build("G", []ll.RuleSpec{
        {LHS: "S", Alternatives: [][]string{{"A", "a"}}},
        {LHS: "A", Alternatives: [][]string{{"B", "D"}}},
        {LHS: "B", Alternatives: [][]string{{"b"}, {"ε"}}},
        {LHS: "D", Alternatives: [][]string{{"d"}, {"ε"}}},
    })

Terminals are the symbols referenced on a right hand side which never occur on
a left hand side. A left hand side must not be repeated; alternatives have to
be merged into one rule specification.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. FIRST-sets are computed
by ComputeFirst, FOLLOW-sets by ComputeFollow, both as a true fixpoint of their
set equations. BuildTable then constructs the LL(1) parse table. A cell of the
table claimed by more than one rule is recorded as a conflict, keeping the rule
assigned first. Analysis bundles all three steps:

    ga := ll.Analysis(g)
    for _, A := range g.NonTerminals() {
        fmt.Printf("FIRST(%s) = %v\n", A, ga.First().Of(A))
    }

    // Output:
    FIRST(S) = { a b d }
    FIRST(A) = { b d ε }
    FIRST(B) = { b ε }
    FIRST(D) = { d ε }

    if !ga.Table().IsLL1() { … inspect ga.Table().Conflicts() … }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}
