package reader

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprGrammar = `// expression grammar
E  -> T E'
E' -> + T E' | ε
T  -> F T'
T' -> * F T'
   |  ep      // epsilon, ASCII spelling
F  → ( E ) | id
`

func TestParseRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	specs, err := ParseRules(strings.NewReader(exprGrammar))
	require.NoError(t, err)
	require.Len(t, specs, 5)
	assert.Equal(t, ll.RuleSpec{LHS: "E'", Alternatives: [][]string{{"+", "T", "E'"}, {"ε"}}}, specs[1])
	assert.Equal(t, ll.RuleSpec{LHS: "T'", Alternatives: [][]string{{"*", "F", "T'"}, {"ε"}}}, specs[3])
	assert.Equal(t, ll.RuleSpec{LHS: "F", Alternatives: [][]string{{"(", "E", ")"}, {"id"}}}, specs[4])
}

func TestRead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, err := Read("Expr", strings.NewReader(exprGrammar))
	require.NoError(t, err)
	if g.Start() != ll.N("E") {
		t.Errorf("Expected start symbol to be E, is %v", g.Start())
	}
	if g.Size() != 8 {
		t.Errorf("Expected 8 rules, have %d", g.Size())
	}
	ga := ll.Analysis(g)
	if !ga.Table().IsLL1() {
		t.Errorf("Expected expression grammar to be LL(1)")
	}
	// a grammar printed by ll.Grammar.String is readable again
	g2, err := Read("Expr", strings.NewReader(g.String()))
	require.NoError(t, err)
	assert.Equal(t, g.Fingerprint(), g2.Fingerprint())
}

func TestReadSyntaxErrors(t *testing.T) {
	for _, input := range []string{
		"| a b\n",
		"S -> a\nS a b\n",
		"S -> a -> b\n",
		"-> a\n",
		"ep -> a\n",
		"S -> a\nε -> b\n",
	} {
		_, err := ParseRules(strings.NewReader(input))
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("Expected syntax error for %q, have %v", input, err)
		}
	}
	_, err := ParseRules(strings.NewReader("S -> a\n\nS b\n"))
	var se *SyntaxError
	if assert.True(t, errors.As(err, &se)) {
		assert.Equal(t, 3, se.Line)
	}
}

func TestReadEpsilonAsLHS(t *testing.T) {
	_, err := ParseRules(strings.NewReader("S -> ep\nep -> a\n"))
	var se *SyntaxError
	if assert.True(t, errors.As(err, &se), "error is %v", err) {
		assert.Equal(t, 2, se.Line)
		assert.Contains(t, se.Msg, "ep")
	}
}

func TestReadRepeatedLHS(t *testing.T) {
	_, err := Read("G", strings.NewReader("S -> a\nS -> b\n"))
	var mge *ll.MalformedGrammarError
	if !errors.As(err, &mge) {
		t.Errorf("Expected repeated left hand side to be rejected, have %v", err)
	}
	_, err = Read("G", strings.NewReader("S -> a | | b\n"))
	if !errors.As(err, &mge) {
		t.Errorf("Expected empty alternative to be rejected, have %v", err)
	}
}

func TestReadWithoutFinalNewline(t *testing.T) {
	specs, err := ParseRules(strings.NewReader("S -> a S | ε"))
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Len(t, specs[0].Alternatives, 2)
}
