package classify

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/knight"
)

// Rule is an entry of a classification table. Pattern is a lexmachine
// regular expression.
type Rule struct {
	Name    string
	Pattern string
	Arity   knight.Arity
}

func (r Rule) String() string {
	return fmt.Sprintf("%s:%s", r.Name, r.Arity)
}

// Pattern creates a rule from a raw lexmachine regular expression.
func Pattern(name string, arity knight.Arity, regex string) Rule {
	return Rule{Name: name, Pattern: regex, Arity: arity}
}

// Literals creates a rule matching any one of the single characters in chars.
// Every character is escaped, so operator characters may be passed verbatim.
func Literals(name string, arity knight.Arity, chars string) Rule {
	alts := make([]string, 0, len(chars))
	for _, ch := range chars {
		alts = append(alts, "\\"+string(ch))
	}
	return Pattern(name, arity, "("+strings.Join(alts, "|")+")")
}

// Keyword creates a rule for upper case function names. The name has to start
// with one of the letters in leading and may continue with upper case letters
// and underscores, i.e. "W" and "WHILE" are both matched by
//
//    Keyword("while", knight.Dyad, "W")
//
func Keyword(name string, arity knight.Arity, leading string) Rule {
	return Pattern(name, arity, oneOf(leading)+"([A-Z]|_)*")
}

func oneOf(letters string) string {
	alts := make([]string, 0, len(letters))
	for _, ch := range letters {
		alts = append(alts, string(ch))
	}
	return "(" + strings.Join(alts, "|") + ")"
}

// KnightRules returns the classification table for Knight, in order of
// precedence:
//
//    nilads   'text'  "text"  123  TRUE FALSE NULL PROMPT RANDOM  var_1
//    monads   ~ ! :  OUTPUT LENGTH ASCII DUMP BLOCK CALL QUIT
//    dyads    + - * / % ^ < > ? & | ; =  WHILE
//    triads   IF GET
//    tetrads  SUBSTITUTE
//
// Leading letters of the keyword classes are disjoint, as are the operator
// characters, so at most one rule can match at any input position.
func KnightRules() []Rule {
	return []Rule{
		Pattern("string", knight.Nilad, `\'[^']*\'`),
		Pattern("string", knight.Nilad, `\"[^"]*\"`),
		Pattern("number", knight.Nilad, `[0-9]+`),
		Keyword("constant", knight.Nilad, "TFNPR"),
		Pattern("variable", knight.Nilad, `([a-z]|_)([a-z]|[0-9]|_)*`),
		Literals("monad-op", knight.Monad, "~!:"),
		Keyword("monad", knight.Monad, "OLADBCQ"),
		Literals("dyad-op", knight.Dyad, "+-*/%^<>?&|;="),
		Keyword("dyad", knight.Dyad, "W"),
		Keyword("triad", knight.Triad, "IG"),
		Keyword("tetrad", knight.Tetrad, "S"),
	}
}
