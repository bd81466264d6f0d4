package ast

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// ListString returns a one-line, Lisp-like representation of a tree:
//
//    (";" ("=" "x" nil) nil)
//
// Lexemes are quoted, Absent nodes print as an unquoted nil.
func ListString(n Node) string {
	var b bytes.Buffer
	writeList(&b, n)
	return b.String()
}

func writeList(b *bytes.Buffer, n Node) {
	switch x := n.(type) {
	case Branch:
		b.WriteString("(")
		b.WriteString(fmt.Sprintf("%q", x.Op))
		for _, arg := range x.Args {
			b.WriteString(" ")
			writeList(b, arg)
		}
		b.WriteString(")")
	case nil:
		b.WriteString(Absent{}.String())
	default:
		b.WriteString(n.String())
	}
}

// IndentedListString returns a multi-line representation of a tree, with
// every operand on a line of its own.
func IndentedListString(n Node) string {
	var b bytes.Buffer
	writeIndented(&b, n, 0)
	return b.String()
}

func writeIndented(b *bytes.Buffer, n Node, level int) {
	b.WriteString(strings.Repeat("  ", level))
	br, ok := n.(Branch)
	if !ok {
		if n == nil {
			n = Absent{}
		}
		b.WriteString(n.String())
		return
	}
	b.WriteString(fmt.Sprintf("(%q", br.Op))
	for _, arg := range br.Args {
		b.WriteString("\n")
		writeIndented(b, arg, level+1)
	}
	b.WriteString(")")
}

// Dump writes a tree to the tracer with key 'knight.ast', one operand per line.
// Nothing is written if the tracer's level is below level.
func Dump(n Node, level tracing.TraceLevel) {
	t := tracer()
	if t.GetTraceLevel() < level {
		return
	}
	for _, line := range strings.Split(IndentedListString(n), "\n") {
		switch level {
		case tracing.LevelDebug:
			t.Debugf("%s", line)
		case tracing.LevelInfo:
			t.Infof("%s", line)
		default:
			t.Errorf("%s", line)
		}
	}
}
