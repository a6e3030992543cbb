package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/predictive"
	"github.com/npillmayer/predict/ll/reader"
	"github.com/npillmayer/predict/ll/scanner"
	"github.com/npillmayer/predict/ll/scanner/lexmach"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

const (
	exitRejected    = 1
	exitNotLL1      = 2
	exitTerminalErr = 3
)

var (
	flagGrammar     = pflag.StringP("grammar", "g", "", "Read the grammar from the given file.")
	flagWord        = pflag.StringP("word", "w", "", "Parse the given input.")
	flagConfig      = pflag.StringP("config", "c", "", "Read settings from the given TOML file.")
	flagTrace       = pflag.StringP("trace", "t", "Error", "Trace level [Debug|Info|Error].")
	flagHTML        = pflag.String("html", "", "Export the parse table as HTML to the given file.")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Parse lines entered interactively.")
	flagScanner     = pflag.StringP("scanner", "s", "", "Input scanner [words|terminals|go].")
	flagCompact     = pflag.Bool("compact", false, "Split input at terminals instead of whitespace.")
	flagStrict      = pflag.Bool("strict", false, "Exit with code 2 if the grammar is not LL(1).")
	flagDumpStack   = pflag.Bool("dump-stack", false, "Trace the parse stack on errors.")
)

// We provide the classic expression grammar as a default.
const exprGrammar = `E  -> T E'
E' -> + T E' | ε
T  -> F T'
T' -> * F T' | ε
F  -> ( E ) | id
`

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	pflag.Parse()
	cfg, err := configure()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(exitRejected)
	}
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	tracer().Infof("Trace level is %s", cfg.Trace)
	for _, key := range []string{"predict.cli", "predict.ll", "predict.parser", "predict.scanner"} {
		tracing.Select(key).SetTraceLevel(traceLevel(cfg.Trace))
	}
	//
	a, err := newApp(cfg)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(exitRejected)
	}
	a.showAnalysis()
	if cfg.HTML != "" {
		if err := a.exportHTML(cfg.HTML); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(exitRejected)
		}
	}
	if cfg.Strict && !a.ga.Table().IsLL1() {
		os.Exit(exitNotLL1)
	}
	if input := strings.TrimSpace(strings.Join(append([]string{cfg.Word}, pflag.Args()...), " ")); input != "" {
		result, err := a.parse(input)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(exitRejected)
		}
		showResult(input, result)
		if !result.Accepted && !*flagInteractive {
			os.Exit(exitRejected)
		}
	}
	if *flagInteractive {
		if err := a.REPL(); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(exitTerminalErr)
		}
	}
}

// configure merges settings from a config file with command line flags.
// Flags explicitly set take precedence.
func configure() (Config, error) {
	cfg := defaultConfig()
	if *flagConfig != "" {
		var err error
		if cfg, err = loadConfig(*flagConfig); err != nil {
			return cfg, err
		}
	}
	if pflag.Lookup("grammar").Changed {
		cfg.Grammar = *flagGrammar
	}
	if pflag.Lookup("word").Changed {
		cfg.Word = *flagWord
	}
	if pflag.Lookup("trace").Changed {
		cfg.Trace = *flagTrace
	}
	if pflag.Lookup("html").Changed {
		cfg.HTML = *flagHTML
	}
	if pflag.Lookup("scanner").Changed {
		cfg.Scanner = *flagScanner
	}
	if pflag.Lookup("compact").Changed {
		cfg.Compact = *flagCompact
	}
	if pflag.Lookup("strict").Changed {
		cfg.Strict = *flagStrict
	}
	if pflag.Lookup("dump-stack").Changed {
		cfg.DumpStack = *flagDumpStack
	}
	return cfg, nil
}

// app bundles the analysed grammar with a parser and the scanners for it.
// Without a lexer, input is read by a Go tokenizer.
type app struct {
	cfg    Config
	ga     *ll.LLAnalysis
	parser *predictive.Parser
	lexer  *lexmach.LMAdapter
}

func newApp(cfg Config) (*app, error) {
	g, err := loadGrammar(cfg.Grammar)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, ga: ll.Analysis(g)}
	opts := []predictive.Option{predictive.DumpStack(cfg.DumpStack)}
	switch mode := cfg.scannerMode(); mode {
	case scanWords:
		a.lexer, err = lexmach.WordScanner()
	case scanTerminals:
		a.lexer, err = lexmach.TerminalScanner(g)
	case scanGo:
		isTerminal := func(name string) bool {
			sym, ok := g.SymbolByName(name)
			return ok && sym.IsTerminal()
		}
		opts = append(opts, predictive.TerminalFor(scanner.GoTerminals(isTerminal)))
	default:
		return nil, fmt.Errorf("unknown scanner %q, expected one of words, terminals, go", mode)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot create scanner: %w", err)
	}
	a.parser = predictive.NewParser(a.ga.Table(), opts...)
	return a, nil
}

func loadGrammar(path string) (*ll.Grammar, error) {
	if path == "" {
		tracer().Infof("using built-in expression grammar")
		return reader.Read("Expr", strings.NewReader(exprGrammar))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open grammar file: %w", err)
	}
	defer f.Close()
	g, err := reader.Read(path, f)
	var mge *ll.MalformedGrammarError
	if errors.As(err, &mge) {
		tracer().Errorf("grammar %s is malformed: %s", path, mge.Reason)
	}
	return g, err
}

// parse parses a line of input. A trailing "$" is taken as the end of input,
// unless it is a terminal of the grammar.
func (a *app) parse(input string) (*predictive.Result, error) {
	g := a.ga.Grammar()
	if _, ok := g.SymbolByName("$"); !ok {
		input = strings.TrimSuffix(strings.TrimSpace(input), "$")
	}
	scan, err := a.tokenizer(input)
	if err != nil {
		return nil, err
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	result := a.parser.Parse(scan)
	if scanErr != nil {
		tracer().Errorf("scanner: %v", scanErr)
	}
	return result, nil
}

func (a *app) tokenizer(input string) (scanner.Tokenizer, error) {
	if a.lexer == nil {
		return scanner.GoTokenizer("input", strings.NewReader(input), scanner.SkipComments(true)), nil
	}
	scan, err := a.lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	return scan, nil
}

func (a *app) exportHTML(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create HTML file: %w", err)
	}
	if err := ll.TableAsHTML(a.ga.Table(), f); err != nil {
		f.Close()
		return err
	}
	tracer().Infof("parse table exported to %s", path)
	return f.Close()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
