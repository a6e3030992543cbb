package ll

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// SymbolSet is an ordered set of grammar symbols. Iteration order is
// terminals (by name), non-terminals (by name), epsilon, end marker.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set containing syms.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	s := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	s.Add(syms...)
	return s
}

// Add inserts symbols into the set.
func (s *SymbolSet) Add(syms ...Symbol) {
	for _, sym := range syms {
		s.set.Add(sym)
	}
}

// Contains is a predicate: is sym an element of s?
func (s *SymbolSet) Contains(sym Symbol) bool {
	if s == nil {
		return false
	}
	return s.set.Contains(sym)
}

// Size returns the number of elements.
func (s *SymbolSet) Size() int {
	if s == nil {
		return 0
	}
	return s.set.Size()
}

// Empty is a predicate: is s empty?
func (s *SymbolSet) Empty() bool {
	return s.Size() == 0
}

// Values returns the elements of s in order.
func (s *SymbolSet) Values() []Symbol {
	if s == nil {
		return nil
	}
	vals := s.set.Values()
	syms := make([]Symbol, len(vals))
	for i, v := range vals {
		syms[i] = v.(Symbol)
	}
	return syms
}

// Copy returns a new set with the elements of s.
func (s *SymbolSet) Copy() *SymbolSet {
	return NewSymbolSet(s.Values()...)
}

// Union adds all elements of other to s. It returns true if s has grown.
func (s *SymbolSet) Union(other *SymbolSet) bool {
	n := s.set.Size()
	for _, sym := range other.Values() {
		s.set.Add(sym)
	}
	return s.set.Size() > n
}

// unionWithout adds all elements of other except one. Returns true if s has grown.
func (s *SymbolSet) unionWithout(other *SymbolSet, except Symbol) bool {
	n := s.set.Size()
	for _, sym := range other.Values() {
		if sym != except {
			s.set.Add(sym)
		}
	}
	return s.set.Size() > n
}

// Without returns a new set, holding the elements of s except sym.
func (s *SymbolSet) Without(sym Symbol) *SymbolSet {
	r := NewSymbolSet()
	r.unionWithout(s, sym)
	return r
}

// Equals is a predicate: do s and other contain the same symbols?
func (s *SymbolSet) Equals(other *SymbolSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, sym := range other.Values() {
		if !s.Contains(sym) {
			return false
		}
	}
	return true
}

func (s *SymbolSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for _, sym := range s.Values() {
		b.WriteString(" ")
		b.WriteString(sym.String())
	}
	b.WriteString(" }")
	return b.String()
}
