package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Node is a node of a Knight syntax tree. The set of node types is closed:
// Leaf, Branch and Absent.
type Node interface {
	fmt.Stringer
	isNode()
}

// Leaf is a nilad: a literal or a variable name, as it appeared in the input,
// including any whitespace preceding it.
type Leaf string

// Branch is the application of an operator to its operands. len(Args) always
// equals the arity of Op. Args may contain Absent nodes.
type Branch struct {
	Op   string // operator lexeme, including any whitespace preceding it
	Args []Node // operands, in input order
}

// Absent denotes a position where no token could be read, either because
// the input has been exhausted or because the input could not be classified.
type Absent struct{}

func (Leaf) isNode()   {}
func (Branch) isNode() {}
func (Absent) isNode() {}

func (l Leaf) String() string {
	return fmt.Sprintf("%q", string(l))
}

func (b Branch) String() string {
	return fmt.Sprintf("(%q)[%d]", b.Op, len(b.Args))
}

func (Absent) String() string {
	return "nil"
}

// NewBranch creates a branch for operator op with operands args.
func NewBranch(op string, args ...Node) Branch {
	if args == nil {
		args = []Node{}
	}
	return Branch{Op: op, Args: args}
}

// IsAbsent is a predicate: is n an Absent node (or nil)?
func IsAbsent(n Node) bool {
	if n == nil {
		return true
	}
	_, ok := n.(Absent)
	return ok
}

// Prefix splices text in front of the first lexeme of n: in front of a leaf's
// text or in front of a branch's operator. Prefixing an Absent node yields a
// leaf consisting of text only. Operands of a branch are shared, not copied.
func Prefix(text string, n Node) Node {
	switch x := n.(type) {
	case Leaf:
		return Leaf(text + string(x))
	case Branch:
		return Branch{Op: text + x.Op, Args: x.Args}
	case Absent, nil:
		return Leaf(text)
	}
	panic(fmt.Sprintf("unknown node type %T", n))
}
