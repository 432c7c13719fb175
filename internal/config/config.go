// Package config defines the on-disk grammar description cmd/parsergen
// reads: a TOML file naming terminals, virtuals, and variables, which
// internal/loader turns into a grammar.Grammar.
package config

import "github.com/BurntSushi/toml"

// Rule is one alternative body of a Variable, given as a list of symbol
// names resolved against the file's terminal/virtual/variable namespaces.
type Rule struct {
	Parts   []string `toml:"parts"`
	Context int      `toml:"context"`
}

// Terminal declares an ordinary token class. Ids are assigned in the order
// terminals appear in the file.
type Terminal struct {
	Name string `toml:"name"`
}

// Virtual declares a virtual symbol: a placeholder whose FIRST set is
// Of's FIRST set, used by contextual lexing to decide which context to
// enter without committing to a single terminal.
type Virtual struct {
	Name string `toml:"name"`
	Of   string `toml:"of"`
}

// Variable declares a non-terminal and its rule alternatives.
type Variable struct {
	Name  string `toml:"name"`
	Rules []Rule `toml:"rule"`
}

// File is the root of a grammar description.
type File struct {
	Start     string     `toml:"start"`
	Terminals []Terminal `toml:"terminal"`
	Virtuals  []Virtual  `toml:"virtual"`
	Variables []Variable `toml:"variable"`
}

// Load reads and parses the grammar description at path.
func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
