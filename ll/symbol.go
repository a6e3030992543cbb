package ll

import "fmt"

// SymbolKind tags grammar symbols.
type SymbolKind uint8

// Kinds of grammar symbols. Epsilon and the end marker are reserved and
// carry no name, thus they never collide with symbols of a grammar.
const (
	TerminalKind SymbolKind = iota
	NonTerminalKind
	EpsilonKind
	EndMarkerKind
)

func (k SymbolKind) String() string {
	switch k {
	case TerminalKind:
		return "terminal"
	case NonTerminalKind:
		return "non-terminal"
	case EpsilonKind:
		return "epsilon"
	case EndMarkerKind:
		return "end-marker"
	}
	return fmt.Sprintf("SymbolKind(%d)", int(k))
}

// Symbol is a grammar symbol. Symbols are values and may be compared with ==
// and used as map keys.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Epsilon is the symbol for the empty word.
var Epsilon = Symbol{Kind: EpsilonKind}

// EndMarker is the symbol for the end of input.
var EndMarker = Symbol{Kind: EndMarkerKind}

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{Kind: TerminalKind, Name: name}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Kind: NonTerminalKind, Name: name}
}

// IsTerminal is true for terminals. Note that the end marker is not a terminal.
func (sym Symbol) IsTerminal() bool {
	return sym.Kind == TerminalKind
}

// IsNonTerminal is true for non-terminals.
func (sym Symbol) IsNonTerminal() bool {
	return sym.Kind == NonTerminalKind
}

// IsEpsilon is true for Epsilon.
func (sym Symbol) IsEpsilon() bool {
	return sym.Kind == EpsilonKind
}

// IsEndMarker is true for EndMarker.
func (sym Symbol) IsEndMarker() bool {
	return sym.Kind == EndMarkerKind
}

func (sym Symbol) String() string {
	switch sym.Kind {
	case EpsilonKind:
		return EpsilonLiteral
	case EndMarkerKind:
		return "$"
	}
	return sym.Name
}

// symbolComparator orders terminals before non-terminals, followed by epsilon
// and the end marker. Symbols of equal kind are ordered by name.
func symbolComparator(a, b interface{}) int {
	s1, s2 := a.(Symbol), b.(Symbol)
	if s1.Kind != s2.Kind {
		if s1.Kind < s2.Kind {
			return -1
		}
		return 1
	}
	switch {
	case s1.Name < s2.Name:
		return -1
	case s1.Name > s2.Name:
		return 1
	}
	return 0
}
