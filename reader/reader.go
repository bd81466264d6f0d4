package reader

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"unicode/utf8"

	"github.com/npillmayer/knight"
	"github.com/npillmayer/knight/ast"
	"github.com/npillmayer/knight/classify"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// StrictConfigKey is the configuration key to switch on strict mode for all
// readers.
const StrictConfigKey = "knight.strict-classification"

// Reader reads syntax trees from a Knight source string.
type Reader struct {
	cursor     *Cursor
	classifier *classify.Classifier
	strict     bool        // return classification errors to clients
	Error      func(error) // error handler
	lastErr    error       // first error, retained in strict mode
	lastMiss   int         // offset of the last classification miss reported
}

// New creates a reader for input. Without options, the reader will use the
// default Knight classifier and will be strict only if the global
// configuration says so.
func New(input string, opts ...Option) *Reader {
	r := &Reader{
		cursor:   NewCursor(input),
		strict:   gconf.GetBool(StrictConfigKey),
		Error:    logError,
		lastMiss: -1,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.classifier == nil {
		r.classifier = classify.Default()
	}
	return r
}

// Cursor returns the reader's input cursor.
func (r *Reader) Cursor() *Cursor {
	return r.cursor
}

// Err returns the first classification error if the reader is strict,
// nil otherwise.
func (r *Reader) Err() error {
	return r.lastErr
}

// SetErrorHandler sets an error handler for the reader.
func (r *Reader) SetErrorHandler(h func(error)) {
	if h == nil {
		r.Error = logError
		return
	}
	r.Error = h
}

// Read reads the next node from the input.
//
// An empty input yields Absent. A leading whitespace character is consumed and
// prepended to the node read after it. A nilad yields a leaf. An operator of
// arity N yields a branch with N operands, some of which may be Absent if the
// input runs out.
func (r *Reader) Read() ast.Node {
	c := r.cursor
	if c.Empty() {
		return ast.Absent{}
	}
	if ch := c.Peek(); isWhitespace(ch) {
		c.Advance(1)
		node := r.Read()
		tracer().Debugf("splicing %q onto %v", ch, node)
		return ast.Prefix(string(ch), node)
	}
	token, ok := r.classifier.Match(c.buf, c.pos)
	if !ok {
		r.miss(c)
		return ast.Absent{}
	}
	c.Advance(int(token.Span().Len()))
	if token.Arity() == knight.Nilad {
		return ast.Leaf(token.Lexeme())
	}
	tracer().Debugf("reading %d operand(s) for %q", int(token.Arity()), token.Lexeme())
	args := make([]ast.Node, int(token.Arity()))
	for i := range args {
		args[i] = r.Read()
		if ast.IsAbsent(args[i]) {
			tracer().Debugf("operand #%d of %q is absent", i+1, token.Lexeme())
		}
	}
	return ast.Branch{Op: token.Lexeme(), Args: args}
}

// miss reports a classification failure at the cursor position. As nothing
// is consumed, subsequent reads will fail at the same offset; each offset is
// reported once.
func (r *Reader) miss(c *Cursor) {
	if c.Offset() == r.lastMiss {
		return
	}
	r.lastMiss = c.Offset()
	ch, _ := utf8.DecodeRune(c.buf[c.pos:])
	err := &ClassificationError{Offset: c.Offset(), Char: ch}
	if r.strict && r.lastErr == nil {
		r.lastErr = err
	}
	r.Error(err)
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// Parse reads a single tree from input. Any input left unread after the
// tree is complete is discarded.
//
// The error return value is non-nil only for strict readers which
// encountered unclassifiable input (see option Strict).
func Parse(input string, opts ...Option) (ast.Node, error) {
	r := New(input, opts...)
	tree := r.Read()
	if rest := r.cursor.Len(); rest > 0 {
		tracer().Debugf("discarding %d unread bytes %v", rest, r.cursor)
	}
	ast.Dump(tree, tracing.LevelDebug)
	return tree, r.Err()
}

// --- Reader options --------------------------------------------------------

// Option configures a reader.
type Option func(r *Reader)

// WithClassifier sets the classifier for a reader. The default is the Knight
// classifier from classify.Default().
func WithClassifier(c *classify.Classifier) Option {
	return func(r *Reader) {
		r.classifier = c
	}
}

// Strict sets or clears strict mode. A strict reader returns classification
// errors to clients. Trees are identical in both modes.
func Strict(b bool) Option {
	return func(r *Reader) {
		r.strict = b
	}
}

// WithErrorHandler sets an error handler, see SetErrorHandler.
func WithErrorHandler(h func(error)) Option {
	return func(r *Reader) {
		r.SetErrorHandler(h)
	}
}
