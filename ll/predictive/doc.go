/*
Package predictive provides a table-driven predictive parser for LL(1) grammars.
Clients have to use the tools of package ll to prepare the parse table. The
parser utilizes the table to create a left derivation for a given input,
provided through a scanner interface.

Usage

Clients construct a grammar, usually by using a grammar builder, and subject it
to grammar analysis:

	b := ll.NewGrammarBuilder("Signed Variables")
	b.LHS("Var").N("Sign").T("a").End()  // Var  --> Sign a
	b.LHS("Sign").T("+").End()           // Sign --> +
	b.LHS("Sign").T("-").End()           // Sign --> -
	b.LHS("Sign").Epsilon()              // Sign --> ε
	g, err := b.Grammar()
	ga := ll.Analysis(g)
	if !ga.Table().IsLL1() { ... }      // parser will use the first rule for every conflicting cell

Then parse some input:

	p := predictive.NewParser(ga.Table())
	result := p.Parse(scanner.Words([]string{"+", "a"}))
	if result.Accepted { … }

The parser matches tokens against terminals by their lexeme; option
TerminalFor changes this. The result holds the sequence of rules applied, i.e.
the left derivation, and a derivation tree. Parsing stops at the first error.

Parsers hold no state between calls to Parse and may be used concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predictive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.parser'.
func tracer() tracing.Trace {
	return tracing.Select("predict.parser")
}
