package ll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The classic expression grammar without left recursion:
//
//     E  → T E'
//     E' → + T E'  |  ε
//     T  → F T'
//     T' → * F T'  |  ε
//     F  → ( E )   |  id
//
func exprGrammar(t *testing.T) *Grammar {
	g, err := Build("Expr", []RuleSpec{
		{LHS: "E", Alternatives: [][]string{{"T", "E'"}}},
		{LHS: "E'", Alternatives: [][]string{{"+", "T", "E'"}, {EpsilonLiteral}}},
		{LHS: "T", Alternatives: [][]string{{"F", "T'"}}},
		{LHS: "T'", Alternatives: [][]string{{"*", "F", "T'"}, {EpsilonLiteral}}},
		{LHS: "F", Alternatives: [][]string{{"(", "E", ")"}, {"id"}}},
	})
	require.NoError(t, err)
	return g
}

func mustBuild(t *testing.T, specs []RuleSpec, opts ...Option) *Grammar {
	g, err := Build(t.Name(), specs, opts...)
	require.NoError(t, err)
	return g
}

func symbols(syms ...Symbol) []Symbol {
	return syms
}
