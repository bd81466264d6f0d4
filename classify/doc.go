/*
Package classify maps the next lexical unit of a Knight program to its arity
class.

A classifier is built from an ordered table of rules. Each rule pairs a regular
expression with an arity (nilad … tetrad). The table is compiled into a single
lexmachine DFA; matching at a position yields exactly one token, or nothing.
Rules earlier in the table take precedence over later ones matching input of
the same length.

	C, err := classify.New(classify.KnightRules())
	if err != nil {
		// do error handling
	}
	token, ok := C.Match([]byte("+12"), 0)   // token "+" of arity Dyad

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

A classifier never skips whitespace and never recurses; this is left to
package reader.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package classify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'knight.classify'.
func tracer() tracing.Trace {
	return tracing.Select("knight.classify")
}
