package lexmach

import (
	"strings"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'predict.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("predict.scanner")
}

// Token types of the ready-made scanners.
const (
	WordType    = int(scanner.Word)
	UnknownType = -100 // input not matching any terminal
)

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values. Literals are added
// before keywords, after the patterns set up by init.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		adapter.Lexer.Add([]byte(Literal(lit)), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Literal quotes the ASCII punctuation of s, resulting in a lexmachine pattern
// matching s literally. Letters and digits must not be escaped, as lexmachine
// treats e.g. `\d` as a character class.
func Literal(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x80 && !isAlnum(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}

const whitespace = `( |\t|\n|\r)+`

// WordScanner creates an adapter splitting input into whitespace-delimited words.
func WordScanner() (*LMAdapter, error) {
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(whitespace), Skip)
		lexer.Add([]byte(`[^ \t\n\r]+`), MakeToken("WORD", WordType))
	}
	return NewLMAdapter(init, nil, nil, nil)
}

// TerminalScanner creates an adapter recognizing the terminals of grammar g,
// preferring the longest match. Input does not have to be separated by
// whitespace, i.e. "id+id" is read as three tokens for a grammar with terminals
// "id" and "+". The token type of a terminal is its index in g.Terminals().
// Characters which do not start a terminal result in tokens of type UnknownType.
func TerminalScanner(g *ll.Grammar) (*LMAdapter, error) {
	adapter := &LMAdapter{Lexer: lexmachine.NewLexer()}
	adapter.Lexer.Add([]byte(whitespace), Skip)
	for i, t := range g.Terminals() {
		adapter.Lexer.Add([]byte(Literal(t.Name)), MakeToken(t.Name, i))
	}
	// a fallback, losing against terminals of equal length
	adapter.Lexer.Add([]byte(`[^ \t\n\r]`), MakeToken("UNKNOWN", UnknownType))
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA for grammar %q: %v", g.Name, err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError, end: uint64(len(input))}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	end     uint64
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Input which cannot be matched
// is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() predict.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", predict.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", predict.Span{lms.end, lms.end})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	from := uint64(token.TC)
	return scanner.MakeDefaultToken(
		predict.TokType(token.Type),
		string(token.Lexeme),
		predict.Span{from, from + uint64(len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
