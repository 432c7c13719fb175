// Package loader turns a config.File grammar description into a
// grammar.Grammar, resolving the textual symbol references a human wrote in
// TOML into the SymbolRef/TerminalRef vocabulary the core trusts.
package loader

import (
	"github.com/mothlight/parsergen/internal/config"
	"github.com/mothlight/parsergen/internal/diagnostics"
	"github.com/mothlight/parsergen/internal/grammar"
	"github.com/mothlight/parsergen/internal/util"
)

// Load builds a *grammar.Grammar from f. Terminal ids are assigned in the
// order terminals are declared; variable ids are assigned in the order
// variables are declared. A Virtual symbol shares its id with the variable
// it names in Of, since the core resolves a Virtual's opening terminals by
// looking up that same variable (see automaton.openingTerminalsOf).
func Load(f *config.File) (*grammar.Grammar, error) {
	if f.Start == "" {
		return nil, diagnostics.New("the grammar file doesn't say which variable to start from", "config.File.Start is empty")
	}

	terminalIDs := util.NewSVSet[int]()
	for i, t := range f.Terminals {
		if terminalIDs.Has(t.Name) {
			return nil, diagnostics.Newf("terminal %q is declared more than once", t.Name)
		}
		terminalIDs.Set(t.Name, i)
	}

	virtualOf := util.NewSVSet[string]()
	for _, v := range f.Virtuals {
		if terminalIDs.Has(v.Name) {
			return nil, diagnostics.Newf("%q is declared as both a terminal and a virtual", v.Name)
		}
		virtualOf.Set(v.Name, v.Of)
	}

	b := grammar.NewBuilder()
	for _, v := range f.Variables {
		b.VarRef(v.Name)
	}

	resolve := func(name string) (grammar.SymbolRef, error) {
		if terminalIDs.Has(name) {
			return grammar.Term(terminalIDs.Get(name)), nil
		}
		if virtualOf.Has(name) {
			of := virtualOf.Get(name)
			ref := b.VarRef(of)
			return grammar.SymbolRef{Kind: grammar.SymVirtual, ID: ref.ID}, nil
		}
		for _, v := range f.Variables {
			if v.Name == name {
				return b.VarRef(name), nil
			}
		}
		return grammar.SymbolRef{}, diagnostics.Newf("%q is not a declared terminal, virtual, or variable", name)
	}

	for _, v := range f.Variables {
		for _, r := range v.Rules {
			parts := make([]grammar.SymbolRef, 0, len(r.Parts))
			for _, name := range r.Parts {
				sym, err := resolve(name)
				if err != nil {
					return nil, diagnostics.Wrapf(err, "rule for %q: %v", v.Name, diagnostics.Summary(err))
				}
				parts = append(parts, sym)
			}
			b.Rule(v.Name, r.Context, parts...)
		}
	}

	return b.Build(f.Start), nil
}
