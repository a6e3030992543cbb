/*
Package scanner defines an interface for scanners to be used with the predictive
parser of package ll/predictive.

Three scanner implementations are provided: (1) a slice tokenizer for input which
has already been split into words, (2) a thin wrapper over the Go std lib
'text/scanner', and (3) adapters for lexmachine, living in sub-package `lexmach`.

The predictive parser matches tokens against grammar terminals by their lexeme.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner
