package knight

import "fmt"

// --- Arity classes ---------------------------------------------------------

// Arity is the number of operand sub-trees an operator token requires.
//
// Knight programs have no brackets and no operator stack: every function
// name carries its arity, and a reader consumes exactly that many operands
// after it.
type Arity int

// Arity classes, from nilads (literals and variables) up to tetrads (SUBSTITUTE).
const (
	Nilad  Arity = iota // 0 operands
	Monad               // 1 operand
	Dyad                // 2 operands
	Triad               // 3 operands
	Tetrad              // 4 operands
)

var arityNames = []string{"nilad", "monad", "dyad", "triad", "tetrad"}

func (a Arity) String() string {
	if a < Nilad || a > Tetrad {
		return fmt.Sprintf("arity(%d)", int(a))
	}
	return arityNames[a]
}

// IsValid is a predicate: is a in the range Nilad…Tetrad?
func (a Arity) IsValid() bool {
	return a >= Nilad && a <= Tetrad
}

// --- Tokens ----------------------------------------------------------------

// Token is a lexical unit of a Knight program, as produced by a classifier.
//
// An example would be the token for the WHILE function:
//
//    Arity  = Dyad         // WHILE takes a condition and a body
//    Lexeme = "W"          // lexeme how it appeared in the input
//    Span   = 17…18        // occured at byte position 17 in the input
//
type Token interface {
	Arity() Arity
	Lexeme() string
	Span() Span
}

// --- Spans -----------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
