/*
Package reader reads Knight programs into syntax trees.

Knight has no brackets. Instead, every function has a fixed arity, and the
reader recursively reads exactly as many operands as a function needs:

	; = x 3 OUTPUT x    ⇒    (";" (" =" " x" " 3") (" OUTPUT" " x"))

Whitespace never produces a node of its own. It is glued to the front of
whatever the reader reads next; if nothing follows, the whitespace becomes a
leaf by itself. If the input is exhausted while operands are still missing,
the missing operands are Absent nodes.

Usage:

	tree, err := reader.Parse("+12")    // ("+" "12" nil)

A Reader works on an explicit cursor into an immutable input buffer. Reading
is synchronous and single-threaded, and recursion depth grows with the
nesting of the program and with runs of leading whitespace.

Input which cannot be classified yields an Absent node without consuming
anything. This is reported to an error handler, which by default traces the
error. In strict mode the first such error is additionally returned to the
client. Strict mode may be switched on for all readers by setting the
configuration key "knight.strict-classification" (see package
schuko/gconf).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reader

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'knight.reader'.
func tracer() tracing.Trace {
	return tracing.Select("knight.reader")
}
