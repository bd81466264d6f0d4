package reader

import (
	"errors"
	"testing"

	"github.com/npillmayer/knight"
	"github.com/npillmayer/knight/ast"
	"github.com/npillmayer/knight/classify"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.reader")
	defer teardown()
	//
	scenarios := []struct {
		input    string
		expected ast.Node
	}{
		{"123", ast.Leaf("123")},
		{"+12", ast.NewBranch("+", ast.Leaf("12"), ast.Absent{})},
		{" +12", ast.NewBranch(" +", ast.Leaf("12"), ast.Absent{})},
		{"", ast.Absent{}},
		{" ", ast.Leaf(" ")},
		{"\t\n", ast.Leaf("\t\n")},
		{"=", ast.NewBranch("=", ast.Absent{}, ast.Absent{})},
		{"~", ast.NewBranch("~", ast.Absent{})},
		{"S", ast.NewBranch("S", ast.Absent{}, ast.Absent{}, ast.Absent{}, ast.Absent{})},
		{"; = x 3 OUTPUT x", ast.NewBranch(";",
			ast.NewBranch(" =", ast.Leaf(" x"), ast.Leaf(" 3")),
			ast.NewBranch(" OUTPUT", ast.Leaf(" x")))},
		{"W < i 10 = i + i 1", ast.NewBranch("W",
			ast.NewBranch(" <", ast.Leaf(" i"), ast.Leaf(" 10")),
			ast.NewBranch(" =", ast.Leaf(" i"), ast.NewBranch(" +", ast.Leaf(" i"), ast.Leaf(" 1"))))},
		{"I T 'yes' \"no\"", ast.NewBranch("I", ast.Leaf(" T"), ast.Leaf(" 'yes'"), ast.Leaf(` "no"`))},
		{"+1 2 3", ast.NewBranch("+", ast.Leaf("1"), ast.Leaf(" 2"))},
	}
	for i, s := range scenarios {
		tree, err := Parse(s.input)
		require.NoError(t, err)
		t.Logf("#%d %q => %s", i, s.input, ast.ListString(tree))
		assert.True(t, ast.Equal(s.expected, tree), "#%d: expected %s, have %s",
			i, ast.ListString(s.expected), ast.ListString(tree))
	}
}

func TestNiladConsumption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.reader")
	defer teardown()
	//
	for _, input := range []string{"123 x", "'a b' 1", "TRUE;", "abc_1+"} {
		r := New(input)
		token, ok := classify.Default().Match([]byte(input), 0)
		require.True(t, ok)
		require.Equal(t, knight.Nilad, token.Arity())
		tree := r.Read()
		assert.Equal(t, ast.Leaf(token.Lexeme()), tree)
		assert.Equal(t, input[len(token.Lexeme()):], r.Cursor().Rest())
	}
}

func TestWhitespaceMergeLaw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.reader")
	defer teardown()
	//
	for _, x := range []string{"123", "+12", "; = x 3 O x", "", "I T 1", "E"} {
		plain, _ := Parse(x)
		spaced, _ := Parse(" " + x)
		assert.True(t, ast.Equal(ast.Prefix(" ", plain), spaced),
			"%q: %s vs %s", x, ast.ListString(plain), ast.ListString(spaced))
	}
}

func TestDyadArity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.reader")
	defer teardown()
	//
	for _, input := range []string{"+1 2", "- x", "*", "/ 'a' 'b' 'c'", "W T ; O 1 O 2"} {
		tree, _ := Parse(input)
		br, ok := tree.(ast.Branch)
		require.True(t, ok, "%q should yield a branch", input)
		assert.Len(t, br.Args, 2)
	}
}

func TestClassificationMissIsSilent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.reader")
	defer teardown()
	//
	var reported []error
	r := New("=xE P", WithErrorHandler(func(e error) {
		reported = append(reported, e)
	}))
	tree := r.Read()
	assert.Equal(t, `("=" "x" nil)`, ast.ListString(tree))
	assert.NoError(t, r.Err())
	assert.Equal(t, "E P", r.Cursor().Rest())
	require.Len(t, reported, 1)
	var cerr *ClassificationError
	require.True(t, errors.As(reported[0], &cerr))
	assert.Equal(t, 2, cerr.Offset)
	assert.Equal(t, 'E', cerr.Char)
}

func TestSampleProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.reader")
	defer teardown()
	//
	sample := `;=xE P;=yE P;=i~1W>^x 2=i+1iO+0>y%+x%--/i x iTx x`
	tree, err := Parse(sample)
	assert.NoError(t, err)
	assert.Equal(t, `(";" ("=" "x" nil) nil)`, ast.ListString(tree))
}

func TestStrict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.reader")
	defer teardown()
	//
	tree, err := Parse("+ 1 $", Strict(true), WithErrorHandler(func(error) {}))
	assert.Equal(t, `("+" " 1" " ")`, ast.ListString(tree))
	var cerr *ClassificationError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 4, cerr.Offset)
	assert.Equal(t, '$', cerr.Char)
}

func TestStrictFromConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.reader")
	defer teardown()
	gconf.Initialize(testconfig.Conf{StrictConfigKey: "true"})
	defer gconf.Initialize(testconfig.Conf{})
	//
	_, err := Parse("E", WithErrorHandler(func(error) {}))
	assert.Error(t, err)
	_, err = Parse("E", Strict(false), WithErrorHandler(func(error) {}))
	assert.NoError(t, err)
}

func TestCustomClassifier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knight.reader")
	defer teardown()
	//
	C, err := classify.New(append(classify.KnightRules(),
		classify.Keyword("eval", knight.Monad, "E")))
	require.NoError(t, err)
	tree, err := Parse(`;=xE P 1`, WithClassifier(C), Strict(true))
	require.NoError(t, err)
	assert.Equal(t, `(";" ("=" "x" ("E" " P")) " 1")`, ast.ListString(tree))
}

func TestCursor(t *testing.T) {
	c := NewCursor("abc")
	assert.False(t, c.Empty())
	assert.Equal(t, byte('a'), c.Peek())
	c.Advance(2)
	assert.Equal(t, 2, c.Offset())
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "c", c.Rest())
	c.Advance(-1)
	assert.Equal(t, 2, c.Offset())
	c.Advance(10)
	assert.True(t, c.Empty())
	assert.Equal(t, byte(0), c.Peek())
	assert.Equal(t, "", c.Rest())
	assert.Equal(t, "@3/3", c.String())
}
