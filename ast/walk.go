package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Visitor is called for every node of a tree during a walk. depth is 0 for
// the root. If a visitor returns false, the operands of the node are skipped.
type Visitor func(n Node, depth int) bool

type visit struct {
	node  Node
	depth int
}

// Walk traverses a tree in pre-order, left to right. Walk does not recurse,
// so it is safe to use on trees nested deeper than the reader could produce
// them.
func Walk(root Node, visitor Visitor) {
	if root == nil {
		root = Absent{}
	}
	stack := arraystack.New()
	stack.Push(visit{root, 0})
	for !stack.Empty() {
		top, _ := stack.Pop()
		v := top.(visit)
		if !visitor(v.node, v.depth) {
			continue
		}
		if br, ok := v.node.(Branch); ok {
			for i := len(br.Args) - 1; i >= 0; i-- { // push right to left
				arg := br.Args[i]
				if arg == nil {
					arg = Absent{}
				}
				stack.Push(visit{arg, v.depth + 1})
			}
		}
	}
}

// Count returns the number of leafs, branches and Absent nodes of a tree.
func Count(root Node) (leafs, branches, absent int) {
	Walk(root, func(n Node, _ int) bool {
		switch n.(type) {
		case Leaf:
			leafs++
		case Branch:
			branches++
		case Absent:
			absent++
		}
		return true
	})
	return
}

// Depth returns the nesting depth of a tree. A single leaf has depth 0.
func Depth(root Node) int {
	deepest := 0
	Walk(root, func(n Node, depth int) bool {
		if depth > deepest {
			deepest = depth
		}
		return true
	})
	return deepest
}

// Equal is a predicate: are a and b structurally identical, including all
// lexemes? A nil node is considered equal to Absent.
func Equal(a, b Node) bool {
	if IsAbsent(a) || IsAbsent(b) {
		return IsAbsent(a) && IsAbsent(b)
	}
	switch x := a.(type) {
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x == y
	case Branch:
		y, ok := b.(Branch)
		if !ok || x.Op != y.Op || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
