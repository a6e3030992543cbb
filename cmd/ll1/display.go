package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/predictive"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func (a *app) showAnalysis() {
	a.showGrammar()
	a.showSets()
	a.showTable()
}

func (a *app) showGrammar() {
	g := a.ga.Grammar()
	pterm.Info.Printf("Grammar %s, fingerprint %s\n", g.Name, g.Fingerprint())
	data := pterm.TableData{{"#", "Rule"}}
	for _, r := range g.Rules() {
		data = append(data, []string{fmt.Sprintf("%d", r.Serial), r.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (a *app) showSets() {
	g := a.ga.Grammar()
	first, follow := a.ga.First(), a.ga.Follow()
	pterm.Info.Printf("FIRST and FOLLOW (%d and %d passes)\n", first.Passes(), follow.Passes())
	data := pterm.TableData{{"Non-terminal", "FIRST", "FOLLOW"}}
	for _, A := range g.NonTerminals() {
		data = append(data, []string{A.String(), first.Of(A).String(), follow.Of(A).String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (a *app) showTable() {
	table := a.ga.Table()
	g := table.Grammar()
	header := []string{""}
	for _, col := range table.Columns() {
		header = append(header, col.String())
	}
	data := pterm.TableData{header}
	for _, A := range g.NonTerminals() {
		row := []string{A.String()}
		for _, col := range table.Columns() {
			cell := ""
			if r, ok := table.Entry(A, col); ok {
				cell = r.Production()
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}
	pterm.Info.Println("LL(1) parse table")
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if table.IsLL1() {
		pterm.Info.Printf("Grammar %s is LL(1)\n", g.Name)
		return
	}
	pterm.Error.Printf("Grammar %s is not LL(1)\n", g.Name)
	conflicts := pterm.TableData{{"Cell", "Kept", "Competing"}}
	for _, c := range table.Conflicts() {
		conflicts = append(conflicts, []string{
			fmt.Sprintf("M[%s, %s]", c.NonTerminal, c.Lookahead),
			c.Existing.String(),
			c.Competing.String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(conflicts).Render()
}

func showResult(input string, result *predictive.Result) {
	data := pterm.TableData{{"Step", "@", "Rule"}}
	for i, step := range result.Trace {
		data = append(data, []string{fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", step.Position), step.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if !result.Accepted {
		pterm.Error.Printf("%q rejected: %v\n", input, result.Err)
		return
	}
	pterm.Info.Printf("%q accepted\n", input)
	pterm.DefaultTree.WithRoot(derivationTree(result.Tree)).Render()
}

// derivationTree converts a derivation tree into a pterm tree.
func derivationTree(root *predictive.Node) pterm.TreeNode {
	list := pterm.LeveledList{}
	root.Each(func(n *predictive.Node, depth int) {
		text := n.Symbol.String()
		if n.Token != nil {
			text = fmt.Sprintf("%s  %q", n.Symbol, n.Token.Lexeme())
		}
		list = append(list, pterm.LeveledListItem{Level: depth, Text: text})
	})
	tracer().Debugf("|list| = %d", len(list))
	return pterm.NewTreeFromLeveledList(list)
}

// expectedString lists the lookaheads valid for a non-terminal.
func expectedString(table *ll.ParseTable, A ll.Symbol) string {
	la := table.Expected(A)
	names := make([]string, len(la))
	for i, a := range la {
		names[i] = a.String()
	}
	return strings.Join(names, " ")
}
