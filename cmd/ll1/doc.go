/*
Command ll1 analyses a context-free grammar for LL(1)-ness and parses input
with a predictive parser.

It prints the FIRST- and FOLLOW-sets of the grammar's non-terminals, the LL(1)
parse table and its conflicts, if any. Given an input word, it prints the left
derivation and the derivation tree.

    ll1 --grammar expr.txt --word "id + id * id"
    ll1 -g expr.txt --compact -w 'id+id*id$'
    ll1 -g expr.txt --html table.html --strict
    ll1 -g expr.txt -i
    ll1 --scanner go -w 'x + y*(z)'

Input is split into terminals by one of three scanners, selected with
--scanner: "words" splits at whitespace, "terminals" (or --compact) matches
the terminals of the grammar, and "go" reads Go tokens, where identifiers,
numbers and string literals stand for terminals id, num and string.

Without a grammar file, a built-in expression grammar is used. Settings may be
read from a TOML file given with --config; flags on the command line take
precedence. In interactive mode every line entered is parsed, lines starting
with a colon are commands (:grammar, :sets, :table, :expect A, :quit).

Exit codes are 1 for unreadable grammars or rejected input, 2 for grammars which
are not LL(1) if flag --strict is set, and 3 for terminal errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.cli'
func tracer() tracing.Trace {
	return tracing.Select("predict.cli")
}
