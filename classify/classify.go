package classify

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/knight"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Classifier determines the arity class of the next token of an input.
// It is immutable after creation and may be shared between readers.
type Classifier struct {
	lexer *lexmachine.Lexer
	rules []Rule
}

// New creates a classifier from an ordered table of rules.
//
// New will return an error if a rule carries an invalid arity or if compiling
// the DFA failed.
func New(rules []Rule) (*Classifier, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("classifier needs at least one rule")
	}
	c := &Classifier{
		lexer: lexmachine.NewLexer(),
		rules: make([]Rule, len(rules)),
	}
	copy(c.rules, rules)
	for i, rule := range c.rules {
		if !rule.Arity.IsValid() {
			return nil, fmt.Errorf("rule %q has invalid arity %d", rule.Name, int(rule.Arity))
		}
		tracer().Debugf("adding rule #%d %s = %s", i, rule, rule.Pattern)
		c.lexer.Add([]byte(rule.Pattern), makeToken(i, rule))
	}
	if err := c.lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return c, nil
}

var knightClassifier *Classifier
var initOnce sync.Once // monitors one-time creation of the default classifier

// Default returns a classifier for the Knight rules (see KnightRules).
// It is created on first use.
func Default() *Classifier {
	initOnce.Do(func() {
		var err error
		tracer().Infof("Creating Knight classifier")
		if knightClassifier, err = New(KnightRules()); err != nil {
			panic(fmt.Errorf("cannot create Knight classifier: %v", err))
		}
	})
	return knightClassifier
}

// Rules returns a copy of the rule table the classifier has been created from.
func (c *Classifier) Rules() []Rule {
	rules := make([]Rule, len(c.rules))
	copy(rules, c.rules)
	return rules
}

// Match classifies the token starting at byte position pos of src.
// If no rule matches at pos, or pos is at the end of src, Match returns false.
//
// Match does not skip whitespace: a whitespace character at pos is a miss.
func (c *Classifier) Match(src []byte, pos int) (knight.Token, bool) {
	if pos < 0 || pos >= len(src) {
		return nil, false
	}
	scan, err := c.lexer.Scanner(src[pos:])
	if err != nil {
		tracer().Errorf("cannot create scanner: %v", err)
		return nil, false
	}
	tok, err, eof := scan.Next()
	if err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			tracer().Debugf("no rule matches at %d: %q", pos+ui.StartTC, excerpt(src, pos))
		} else {
			tracer().Errorf("scanner error at %d: %v", pos, err)
		}
		return nil, false
	}
	if eof {
		return nil, false
	}
	lmtok := tok.(*lexmachine.Token)
	rule := c.rules[lmtok.Value.(int)]
	from := uint64(pos + lmtok.TC)
	token := Token{
		rule:   rule.Name,
		arity:  rule.Arity,
		lexeme: string(lmtok.Lexeme),
		span:   knight.Span{from, from + uint64(len(lmtok.Lexeme))},
	}
	tracer().Debugf("matched %s", token)
	return token, true
}

func excerpt(src []byte, pos int) string {
	end := pos + 12
	if end > len(src) {
		end = len(src)
	}
	return string(src[pos:end])
}

// makeToken is the lexmachine action for rule number i. The token type is
// the rule's arity, the token value is the rule's index.
func makeToken(i int, rule Rule) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(rule.Arity), i, m), nil
	}
}

// --- Tokens ----------------------------------------------------------------

// Token is the token type produced by a classifier.
type Token struct {
	rule   string
	arity  knight.Arity
	lexeme string
	span   knight.Span
}

var _ knight.Token = Token{}

// Arity is part of the knight.Token interface.
func (t Token) Arity() knight.Arity {
	return t.arity
}

// Lexeme is part of the knight.Token interface.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Span is part of the knight.Token interface.
func (t Token) Span() knight.Span {
	return t.span
}

// Rule returns the name of the rule which produced the token.
func (t Token) Rule() string {
	return t.rule
}

func (t Token) String() string {
	return fmt.Sprintf("<%s %q %s %v>", t.rule, t.lexeme, t.arity, t.span)
}
