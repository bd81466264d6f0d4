package classify

import (
	"testing"

	"github.com/npillmayer/knight"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var matchInputs = []struct {
	input  string
	lexeme string
	arity  knight.Arity
}{
	{"123", "123", knight.Nilad},
	{"12abc", "12", knight.Nilad},
	{`'hello world' x`, `'hello world'`, knight.Nilad},
	{`"it's"x`, `"it's"`, knight.Nilad},
	{"TRUE", "TRUE", knight.Nilad},
	{"P;", "P", knight.Nilad},
	{"x1 y", "x1", knight.Nilad},
	{"_tmp", "_tmp", knight.Nilad},
	{"~1", "~", knight.Monad},
	{"OUTPUT x", "OUTPUT", knight.Monad},
	{"Q 0", "Q", knight.Monad},
	{"+12", "+", knight.Dyad},
	{"=x 1", "=", knight.Dyad},
	{";", ";", knight.Dyad},
	{"WHILE", "WHILE", knight.Dyad},
	{"W>", "W", knight.Dyad},
	{"I T 1 2", "I", knight.Triad},
	{"GET", "GET", knight.Triad},
	{"S s 0 1 t", "S", knight.Tetrad},
	{"SUBSTITUTE", "SUBSTITUTE", knight.Tetrad},
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.classify")
	defer teardown()
	//
	C := Default()
	for i, m := range matchInputs {
		token, ok := C.Match([]byte(m.input), 0)
		if !ok {
			t.Errorf("#%d: expected %q to match, did not", i, m.input)
			continue
		}
		t.Logf(" %2d | %12s | %s", i, token.Lexeme(), token.Arity())
		if token.Lexeme() != m.lexeme {
			t.Errorf("#%d: expected lexeme %q, is %q", i, m.lexeme, token.Lexeme())
		}
		if token.Arity() != m.arity {
			t.Errorf("#%d: expected %q to be a %s, is %s", i, m.input, m.arity, token.Arity())
		}
		if token.Span().Len() != uint64(len(m.lexeme)) {
			t.Errorf("#%d: expected span of length %d, is %v", i, len(m.lexeme), token.Span())
		}
	}
}

func TestMatchAtOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.classify")
	defer teardown()
	//
	src := []byte("=x OUTPUT")
	token, ok := Default().Match(src, 3)
	if !ok {
		t.Fatalf("expected OUTPUT to match at offset 3")
	}
	if token.Span() != (knight.Span{3, 9}) {
		t.Errorf("expected span (3…9), is %v", token.Span())
	}
	if rule := token.(Token).Rule(); rule != "monad" {
		t.Errorf("expected rule 'monad', is %q", rule)
	}
}

func TestMiss(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.classify")
	defer teardown()
	//
	C := Default()
	for _, input := range []string{"", " 1", "E P", "'unterminated", "(", "$"} {
		if token, ok := C.Match([]byte(input), 0); ok {
			t.Errorf("expected %q not to match, got %v", input, token)
		}
	}
	if _, ok := C.Match([]byte("12"), 2); ok {
		t.Errorf("expected no match at end of input")
	}
}

func TestCustomRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.classify")
	defer teardown()
	//
	C, err := New([]Rule{
		Pattern("number", knight.Nilad, `[0-9]+`),
		Literals("neg", knight.Monad, "-"),
		Keyword("eval", knight.Monad, "E"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if token, ok := C.Match([]byte("EVAL"), 0); !ok || token.Arity() != knight.Monad {
		t.Errorf("expected EVAL to be classified as monad, is %v", token)
	}
	if _, ok := C.Match([]byte("+"), 0); ok {
		t.Errorf("expected + not to be part of the custom table")
	}
	if len(C.Rules()) != 3 {
		t.Errorf("expected 3 rules, have %d", len(C.Rules()))
	}
}

func TestInvalidRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.classify")
	defer teardown()
	//
	if _, err := New(nil); err == nil {
		t.Errorf("expected empty rule table to be rejected")
	}
	if _, err := New([]Rule{Pattern("five", knight.Arity(5), "X")}); err == nil {
		t.Errorf("expected arity 5 to be rejected")
	}
}
