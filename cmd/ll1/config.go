package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of a run. It may be loaded from a TOML file:
//
//    grammar    = "expr.txt"
//    word       = "id + id * id"
//    trace      = "Info"
//    html       = "table.html"
//    scanner    = "words"     # or "terminals", "go"
//    strict     = true
//    dump_stack = true
//
type Config struct {
	Grammar   string `toml:"grammar"`
	Word      string `toml:"word"`
	Trace     string `toml:"trace"`
	HTML      string `toml:"html"`
	Scanner   string `toml:"scanner"`
	Compact   bool   `toml:"compact"`
	Strict    bool   `toml:"strict"`
	DumpStack bool   `toml:"dump_stack"`
}

// Input scanners.
const (
	scanWords     = "words"     // whitespace separated terminal names
	scanTerminals = "terminals" // longest match of terminal names
	scanGo        = "go"        // Go tokens, see scanner.GoTerminals
)

// scannerMode returns the input scanner to use. Flag compact is a shorthand
// for the terminals scanner.
func (cfg Config) scannerMode() string {
	switch {
	case cfg.Scanner != "":
		return cfg.Scanner
	case cfg.Compact:
		return scanTerminals
	}
	return scanWords
}

func defaultConfig() Config {
	return Config{
		Trace: "Error",
	}
}

// loadConfig reads a TOML file, with unset keys keeping their defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		tracer().Infof("config file %s: unknown key %q", path, key.String())
	}
	return cfg, nil
}
