package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Word is the token type for whitespace-delimited words.
const Word = Ident

// Tokenizer is a scanner interface. After the end of input has been reached,
// NextToken returns tokens of type EOF.
type Tokenizer interface {
	NextToken() predict.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Word tokenizer ---------------------------------------------------

// WordTokenizer hands out a list of words as tokens. Spans are word positions.
type WordTokenizer struct {
	words []string
	pos   int
}

var _ Tokenizer = (*WordTokenizer)(nil)

// Words creates a tokenizer for a list of words, which usually are the
// names of terminals.
func Words(words []string) *WordTokenizer {
	return &WordTokenizer{words: words}
}

// SetErrorHandler is part of the Tokenizer interface. A word tokenizer never
// produces errors.
func (wt *WordTokenizer) SetErrorHandler(func(error)) {}

// NextToken is part of the Tokenizer interface.
func (wt *WordTokenizer) NextToken() predict.Token {
	p := uint64(wt.pos)
	if wt.pos >= len(wt.words) {
		return MakeDefaultToken(EOF, "", predict.Span{p, p})
	}
	wt.pos++
	return MakeDefaultToken(Word, wt.words[p], predict.Span{p, p + 1})
}

// --- Go tokenizer -----------------------------------------------------

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune        // last token this scanner has produced
	Error        func(error) // error handler
	unifyStrings bool        // convert single chars to strings
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
// Operators are single characters, thus "id+id" results in three tokens.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Init(input)
	t.Filename = sourceID
	t.SetErrorHandler(nil)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	t.Error = h
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		h(fmt.Errorf("%s: %s", s.Position, msg))
	}
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() predict.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	if t.unifyStrings &&
		(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	return DefaultToken{
		kind:   predict.TokType(t.lastToken),
		lexeme: t.TokenText(),
		span:   predict.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// Token classes of the Go tokenizer, used as terminal names by GoTerminals.
const (
	IdentClass  = "id"
	NumberClass = "num"
	StringClass = "string"
)

// GoTerminals returns a function to match tokens of a DefaultTokenizer against
// the terminals of a grammar. A token whose lexeme is a terminal matches that
// terminal. Otherwise identifiers, numbers and string literals match the
// terminals "id", "num" and "string", respectively. Other tokens match by
// lexeme.
func GoTerminals(isTerminal func(string) bool) func(predict.Token) string {
	return func(tok predict.Token) string {
		lexeme := tok.Lexeme()
		if isTerminal(lexeme) {
			return lexeme
		}
		switch tok.TokType() {
		case Ident:
			return IdentClass
		case Int, Float:
			return NumberClass
		case String, RawString, Char:
			return StringClass
		}
		return lexeme
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for all
// the tokenizers of this package as well as the lexmachine scanners.
type DefaultToken struct {
	kind   predict.TokType
	lexeme string
	Val    interface{}
	span   predict.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ predict.TokType, lexeme string, span predict.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() predict.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() predict.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%q%v", t.lexeme, t.span)
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenier.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

// Collect reads tokens from a tokenizer up to, but not including, EOF.
func Collect(t Tokenizer) []predict.Token {
	var tokens []predict.Token
	for tok := t.NextToken(); tok.TokType() != EOF; tok = t.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens
}
