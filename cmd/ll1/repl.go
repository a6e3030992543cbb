package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
)

// REPL starts interactive mode. Every line is parsed as input, lines starting
// with a colon are commands.
func (a *app) REPL() error {
	repl, err := readline.New("ll1> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := a.command(line[1:]); quit {
				break
			}
			continue
		}
		result, err := a.parse(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		showResult(line, result)
	}
	println("Good bye!")
	return nil
}

// command executes a REPL command and returns true if the REPL should quit.
func (a *app) command(cmd string) bool {
	args := strings.Fields(cmd)
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "q", "quit":
		return true
	case "grammar":
		a.showGrammar()
	case "sets":
		a.showSets()
	case "table":
		a.showTable()
	case "expect":
		for _, name := range args[1:] {
			A, ok := a.ga.Grammar().SymbolByName(name)
			if !ok || !A.IsNonTerminal() {
				pterm.Error.Printf("%s is not a non-terminal\n", name)
				continue
			}
			pterm.Info.Printf("%s expects one of [%s]\n", A, expectedString(a.ga.Table(), A))
		}
	default:
		pterm.Error.Printf("unknown command :%s, try :grammar :sets :table :expect A :quit\n", args[0])
	}
	return false
}
