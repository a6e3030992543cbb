/*
Package predict is a toolbox for deterministic top-down parsing.

Predict analyses context-free grammars for LL(1)-ness, constructs predictive
parse tables and drives a table-based pushdown parser over token streams.
Package structure is as follows:

■ ll: Package ll implements the grammar model and static grammar analysis,
i.e. FIRST- and FOLLOW-sets, together with the LL(1) parse table and its conflicts.

■ ll/predictive: Package predictive implements a table-driven predictive parser.

■ ll/reader: Package reader reads grammars from a simple textual format.

■ ll/scanner: Package scanner defines the tokenizer interface used by the parser.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict
