package reader

import (
	"fmt"
	"io"

	"github.com/npillmayer/predict/ll"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Alternative spelling of epsilon in grammar files.
const epsilonASCII = "ep"

// SyntaxError is returned for lines not conforming to the grammar format.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("grammar syntax error in line %d: %s", e.Line, e.Msg)
}

const (
	tokSymbol = iota
	tokArrow
	tokBar
	tokNewline
)

var lexer *lexmachine.Lexer

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// Patterns of equal match length are prioritized by order of addition.
func initLexer() (*lexmachine.Lexer, error) {
	lx := lexmachine.NewLexer()
	lx.Add([]byte(`//[^\n]*`), skip)
	lx.Add([]byte(`( |\t|\r)+`), skip)
	lx.Add([]byte(`\n`), makeToken(tokNewline))
	lx.Add([]byte(`\-\>|→`), makeToken(tokArrow))
	lx.Add([]byte(`\|`), makeToken(tokBar))
	lx.Add([]byte(`[^ \t\r\n\|]+`), makeToken(tokSymbol))
	if err := lx.Compile(); err != nil {
		return nil, err
	}
	return lx, nil
}

func init() {
	var err error
	if lexer, err = initLexer(); err != nil {
		panic(fmt.Sprintf("cannot compile grammar lexer: %v", err))
	}
}

// Read reads a grammar in textual format and builds it.
func Read(name string, r io.Reader) (*ll.Grammar, error) {
	specs, err := ParseRules(r)
	if err != nil {
		return nil, err
	}
	return ll.Build(name, specs)
}

// ParseRules reads rules in textual format. It does not check the rules for
// consistency, e.g. a repeated left hand side, which is left to ll.Build.
func ParseRules(r io.Reader) ([]ll.RuleSpec, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	scan, err := lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	p := &ruleParser{line: 1}
	for {
		tok, err, eof := scan.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, &SyntaxError{Line: ui.FailLine, Msg: "unreadable input"}
			}
			return nil, err
		}
		if eof {
			break
		}
		if err := p.feed(tok.(*lexmachine.Token)); err != nil {
			return nil, err
		}
	}
	if err := p.endOfLine(); err != nil {
		return nil, err
	}
	tracer().Debugf("read %d grammar rules", len(p.specs))
	return p.specs, nil
}

// ruleParser collects rule specs from a token stream, one line at a time.
type ruleParser struct {
	specs []ll.RuleSpec
	line  int
	toks  []*lexmachine.Token // tokens of the current line
}

func (p *ruleParser) feed(tok *lexmachine.Token) error {
	if tok.Type == tokNewline {
		if err := p.endOfLine(); err != nil {
			return err
		}
		p.line++
		return nil
	}
	p.toks = append(p.toks, tok)
	return nil
}

func (p *ruleParser) endOfLine() error {
	toks := p.toks
	p.toks = nil
	if len(toks) == 0 {
		return nil
	}
	var spec *ll.RuleSpec
	switch {
	case toks[0].Type == tokBar:
		if len(p.specs) == 0 {
			return &SyntaxError{Line: p.line, Msg: "continuation line without a rule"}
		}
		spec = &p.specs[len(p.specs)-1]
		toks = toks[1:]
	case len(toks) >= 2 && toks[0].Type == tokSymbol && toks[1].Type == tokArrow:
		if lhs := string(toks[0].Lexeme); symbolName(lhs) == ll.EpsilonLiteral {
			return &SyntaxError{Line: p.line, Msg: fmt.Sprintf("%s cannot be a left hand side", lhs)}
		}
		p.specs = append(p.specs, ll.RuleSpec{LHS: string(toks[0].Lexeme)})
		spec = &p.specs[len(p.specs)-1]
		toks = toks[2:]
	default:
		return &SyntaxError{Line: p.line, Msg: "expected 'A -> …'"}
	}
	alt := []string{}
	for _, tok := range toks {
		switch tok.Type {
		case tokBar:
			spec.Alternatives = append(spec.Alternatives, alt)
			alt = []string{}
		case tokArrow:
			return &SyntaxError{Line: p.line, Msg: "unexpected arrow"}
		default:
			alt = append(alt, symbolName(string(tok.Lexeme)))
		}
	}
	spec.Alternatives = append(spec.Alternatives, alt)
	return nil
}

func symbolName(s string) string {
	if s == epsilonASCII {
		return ll.EpsilonLiteral
	}
	return s
}
