package ll

// LLAnalysis bundles the results of the static analysis of a grammar:
// FIRST-sets, FOLLOW-sets and the LL(1) parse table.
type LLAnalysis struct {
	g      *Grammar
	first  *FirstSets
	follow *FollowSets
	table  *ParseTable
}

// Analysis analyses grammar g. Every phase works on the frozen output of its
// predecessor.
func Analysis(g *Grammar) *LLAnalysis {
	if g == nil {
		return nil
	}
	ga := &LLAnalysis{g: g}
	ga.first = ComputeFirst(g)
	ga.follow = ComputeFollow(g, ga.first)
	ga.table, _ = BuildTable(g, ga.first, ga.follow)
	return ga
}

// Grammar returns the grammar analysed.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns the FIRST-sets of the grammar.
func (ga *LLAnalysis) First() *FirstSets {
	return ga.first
}

// Follow returns the FOLLOW-sets of the grammar.
func (ga *LLAnalysis) Follow() *FollowSets {
	return ga.follow
}

// Table returns the LL(1) parse table of the grammar.
func (ga *LLAnalysis) Table() *ParseTable {
	return ga.table
}
