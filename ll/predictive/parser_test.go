package predictive

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exprParser(t *testing.T, opts ...Option) *Parser {
	b := ll.NewGrammarBuilder("Expr")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+").N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").N("F").N("T'").End()
	b.LHS("T'").T("*").N("F").N("T'").End()
	b.LHS("T'").Epsilon()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	ga := ll.Analysis(g)
	require.True(t, ga.Table().IsLL1())
	return NewParser(ga.Table(), opts...)
}

func TestParseExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.parser")
	defer teardown()
	//
	p := exprParser(t)
	result := p.ParseWords(strings.Fields("id + id * id"))
	if !result.Accepted {
		t.Fatalf("Expected input to be accepted, error is %v", result.Err)
	}
	assert.NoError(t, result.Err)
	expected := []string{
		"E → T E'",
		"T → F T'",
		"F → id",
		"T' → ε",
		"E' → + T E'",
		"T → F T'",
		"F → id",
		"T' → * F T'",
		"F → id",
		"T' → ε",
		"E' → ε",
	}
	assert.Equal(t, expected, result.Derivation())
	assert.Equal(t, uint64(0), result.Trace[0].Position)
	assert.Equal(t, uint64(1), result.Trace[4].Position, "E' → + T E' with lookahead +")
}

func TestParseTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.parser")
	defer teardown()
	//
	p := exprParser(t)
	result := p.ParseWords(strings.Fields("( id ) * id"))
	require.True(t, result.Accepted)
	tree := result.Tree
	if tree.Symbol != ll.N("E") || tree.Rule.String() != "E → T E'" {
		t.Errorf("Expected root of tree to be E expanded by E → T E', is %v/%v", tree.Symbol, tree.Rule)
	}
	leaves := tree.Leaves()
	lexemes := make([]string, len(leaves))
	for i, l := range leaves {
		lexemes[i] = l.Lexeme()
	}
	assert.Equal(t, []string{"(", "id", ")", "*", "id"}, lexemes)
	assert.Equal(t, predict.Span{0, 5}, tree.Span)
	epsilons := 0
	nodes := 0
	tree.Each(func(n *Node, depth int) {
		nodes++
		if n.Symbol == ll.Epsilon {
			epsilons++
			if !n.IsLeaf() || n.Token != nil {
				t.Errorf("Expected ε node to be an empty leaf")
			}
		}
	})
	assert.Equal(t, 4, epsilons)
	assert.Greater(t, nodes, len(result.Trace))
}

func TestParseRejectsUnbalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.parser")
	defer teardown()
	//
	p := exprParser(t, DumpStack(true))
	result := p.ParseWords([]string{"(", "id"})
	if result.Accepted {
		t.Fatalf("Expected '( id' to be rejected")
	}
	var ute *UnexpectedTokenError
	if !errors.As(result.Err, &ute) {
		t.Fatalf("Expected error to be an UnexpectedTokenError, is %v", result.Err)
	}
	assert.Equal(t, ll.T(")"), ute.Expected)
	assert.Equal(t, ll.EndMarker, ute.Found)
	assert.Equal(t, uint64(2), ute.Position)
	assert.Equal(t, []ll.Symbol{ll.T(")"), ll.N("T'"), ll.N("E'"), ll.EndMarker}, ute.Stack)
	assert.Contains(t, ute.Error(), "expected )")
}

func TestParseRejectsUnknownToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.parser")
	defer teardown()
	//
	p := exprParser(t)
	result := p.ParseWords([]string{"id", "foo"})
	assert.False(t, result.Accepted)
	var npe *NoProductionError
	if !errors.As(result.Err, &npe) {
		t.Fatalf("Expected error to be a NoProductionError, is %v", result.Err)
	}
	assert.Equal(t, ll.N("T'"), npe.NonTerminal)
	assert.Equal(t, ll.T("foo"), npe.Lookahead)
	assert.Equal(t, uint64(1), npe.Position)
	assert.Equal(t, "foo", npe.Token.Lexeme())
	assert.Equal(t, []ll.Symbol{ll.T("+"), ll.T("*"), ll.T(")"), ll.EndMarker}, npe.Expected)
	assert.Equal(t, []string{"E → T E'", "T → F T'", "F → id"}, result.Derivation())
}

func TestParseEmptyInput(t *testing.T) {
	p := exprParser(t)
	result := p.ParseWords(nil)
	assert.False(t, result.Accepted)
	var npe *NoProductionError
	if assert.True(t, errors.As(result.Err, &npe)) {
		assert.Equal(t, ll.N("E"), npe.NonTerminal)
		assert.Equal(t, ll.EndMarker, npe.Lookahead)
	}
}

func TestParseTrailingInput(t *testing.T) {
	p := exprParser(t)
	result := p.ParseWords([]string{"id", ")"})
	assert.False(t, result.Accepted)
	var ute *UnexpectedTokenError
	if assert.True(t, errors.As(result.Err, &ute)) {
		assert.Equal(t, ll.EndMarker, ute.Expected)
		assert.Equal(t, ll.T(")"), ute.Found)
	}
}

func TestParseNullableStart(t *testing.T) {
	b := ll.NewGrammarBuilder("Parens")
	b.LHS("S").T("(").N("S").T(")").N("S").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	require.NoError(t, err)
	p := NewParser(ll.Analysis(g).Table())
	for input, accept := range map[string]bool{
		"":            true,
		"( )":         true,
		"( ( ) ) ( )": true,
		"( ( )":       false,
		") (":         false,
	} {
		result := p.ParseWords(strings.Fields(input))
		if result.Accepted != accept {
			t.Errorf("Expected acceptance of %q to be %v, is %v (%v)", input, accept, result.Accepted, result.Err)
		}
	}
}

func TestParseConflictUsesFirstRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.parser")
	defer teardown()
	//
	g, err := ll.Build("Conflict", []ll.RuleSpec{
		{LHS: "S", Alternatives: [][]string{{"a", "x"}, {"a", "y"}}},
	})
	require.NoError(t, err)
	p := NewParser(ll.Analysis(g).Table())
	assert.True(t, p.ParseWords([]string{"a", "x"}).Accepted)
	result := p.ParseWords([]string{"a", "y"})
	assert.False(t, result.Accepted)
	assert.Equal(t, []string{"S → a x"}, result.Derivation())
}

// parseWithin runs a parse in a separate goroutine and fails the test if it
// does not return in time.
func parseWithin(t *testing.T, p *Parser, words []string, d time.Duration) *Result {
	done := make(chan *Result, 1)
	go func() {
		done <- p.ParseWords(words)
	}()
	select {
	case result := <-done:
		return result
	case <-time.After(d):
		t.Fatalf("Expected parse of %q to terminate within %v", strings.Join(words, " "), d)
	}
	return nil
}

func TestParseLeftRecursionTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.parser")
	defer teardown()
	//
	g, err := ll.Build("L", []ll.RuleSpec{
		{LHS: "S", Alternatives: [][]string{{"S", "a"}, {"b"}}},
	})
	require.NoError(t, err)
	table := ll.Analysis(g).Table()
	require.False(t, table.IsLL1())
	p := NewParser(table)
	for _, input := range []string{"b a", "b", "a", ""} {
		result := parseWithin(t, p, strings.Fields(input), 2*time.Second)
		if result.Accepted {
			t.Errorf("Expected %q not to be accepted", input)
		}
		if input == "" || input == "a" {
			continue // no rule for S with lookahead $ or a
		}
		var lrerr *LeftRecursionError
		if !errors.As(result.Err, &lrerr) {
			t.Fatalf("Expected a LeftRecursionError for %q, is %v", input, result.Err)
		}
		assert.Equal(t, ll.N("S"), lrerr.NonTerminal)
		assert.Equal(t, ll.T("b"), lrerr.Lookahead)
		assert.Equal(t, uint64(0), lrerr.Position)
		assert.Equal(t, []ll.Symbol{ll.N("S"), ll.T("a"), ll.EndMarker}, lrerr.Stack)
		require.Len(t, lrerr.Cycle, 2)
		assert.Equal(t, "S → S a", lrerr.Cycle[0].String())
	}
}

func TestParseNullablePrefixRecursionTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.parser")
	defer teardown()
	//
	g, err := ll.Build("R", []ll.RuleSpec{
		{LHS: "S", Alternatives: [][]string{{"Y", "S"}, {"x"}}},
		{LHS: "Y", Alternatives: [][]string{{ll.EpsilonLiteral}}},
	})
	require.NoError(t, err)
	p := NewParser(ll.Analysis(g).Table())
	result := parseWithin(t, p, []string{"x"}, 2*time.Second)
	assert.False(t, result.Accepted)
	var lrerr *LeftRecursionError
	require.True(t, errors.As(result.Err, &lrerr), "error is %v", result.Err)
	cycle := make([]string, len(lrerr.Cycle))
	for i, r := range lrerr.Cycle {
		cycle[i] = r.String()
	}
	assert.Equal(t, []string{"S → Y S", "S → Y S"}, cycle)
	assert.Equal(t, []string{"S → Y S", "Y → ε"}, result.Derivation())
}

func TestParseRepeatedNullableIsNoRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.parser")
	defer teardown()
	//
	g, err := ll.Build("N", []ll.RuleSpec{
		{LHS: "S", Alternatives: [][]string{{"A", "B"}}},
		{LHS: "B", Alternatives: [][]string{{"A", "c"}}},
		{LHS: "A", Alternatives: [][]string{{ll.EpsilonLiteral}}},
	})
	require.NoError(t, err)
	p := NewParser(ll.Analysis(g).Table())
	result := parseWithin(t, p, []string{"c"}, 2*time.Second)
	if !result.Accepted {
		t.Errorf("Expected input to be accepted, error is %v", result.Err)
	}
	assert.Equal(t, []string{"S → A B", "A → ε", "B → A c", "A → ε"}, result.Derivation())
}
func TestParseTokenizerWithTerminalFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.parser")
	defer teardown()
	//
	idents := func(tok predict.Token) string {
		if tok.TokType() == scanner.Ident {
			return "id"
		}
		return tok.Lexeme()
	}
	p := exprParser(t, TerminalFor(idents))
	result := p.Parse(scanner.GoTokenizer("input", strings.NewReader("x+(y*z)")))
	if !result.Accepted {
		t.Errorf("Expected input to be accepted, error is %v", result.Err)
	}
	assert.Equal(t, predict.Span{0, 7}, result.Tree.Span)
}

func TestParseConcurrently(t *testing.T) {
	p := exprParser(t)
	inputs := []string{"id + id * id", "( id", "( ( id ) )", "id id"}
	accepts := []bool{true, false, true, false}
	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			result := p.ParseWords(strings.Fields(inputs[k%len(inputs)]))
			if result.Accepted != accepts[k%len(inputs)] {
				t.Errorf("Expected acceptance of %q to be %v", inputs[k%len(inputs)], accepts[k%len(inputs)])
			}
		}(i)
	}
	wg.Wait()
}
