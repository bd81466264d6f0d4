/*
Package ast defines the syntax tree of a Knight program.

A Knight tree is homogenous in spirit: every function application is a branch
made of an operator lexeme and exactly as many operands as the operator's
arity. Literals and variables are leafs. When a reader runs out of input
while collecting operands, the missing operands are represented by Absent
nodes; a branch never has fewer operands than its arity.

	Node = Leaf(text) | Branch(op, args…) | Absent

Clients type-switch over the three node types:

	switch n := node.(type) {
	case ast.Leaf:
		…
	case ast.Branch:
		…
	case ast.Absent:
		…
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'knight.ast'.
func tracer() tracing.Trace {
	return tracing.Select("knight.ast")
}
