/*
Package reader reads context-free grammars from a simple textual format.

Every rule takes one line, stating a non-terminal, an arrow and a list of
alternatives, separated by bars. Symbols are separated by whitespace.

    // expression grammar
    E  -> T E'
    E' -> + T E' | ε
    T  -> F T'
    T' -> * F T'
       |  ε
    F  -> ( E ) | id

The arrow may be written as "->" or "→". Epsilon is written as "ε" or "ep".
A line starting with a bar continues the alternatives of the previous rule.
Comments start with "//" and extend to the end of the line.
The first rule's left hand side is the start symbol. Symbols never occuring
on a left hand side are terminals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reader

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}
