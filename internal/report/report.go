// Package report renders a Graph and its Conflicts as text tables, for
// cmd/parsergen to print or feed to its REPL. Symbol ids mean nothing to an
// operator, so every rendering function here takes a NameTable to turn them back into
// the names the grammar file used.
package report

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"
	"github.com/mothlight/parsergen/internal/automaton"
	"github.com/mothlight/parsergen/internal/config"
	"github.com/mothlight/parsergen/internal/grammar"
	"github.com/mothlight/parsergen/internal/util"
)

// SortedTransitions returns the symbols of transitions ordered by (Kind,
// ID), so that rendering a state's transitions never depends on Go's
// randomized map iteration order.
func SortedTransitions(transitions map[grammar.SymbolRef]int) []grammar.SymbolRef {
	syms := make([]grammar.SymbolRef, 0, len(transitions))
	for sym := range transitions {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		if syms[i].Kind != syms[j].Kind {
			return syms[i].Kind < syms[j].Kind
		}
		return syms[i].ID < syms[j].ID
	})
	return syms
}

// NameTable maps terminal ids back to the names a grammar file declared
// them with. Variable names are already carried by grammar.Variable, so
// only terminals need this.
type NameTable struct {
	terminalNames []string
}

// NewNameTable builds a NameTable from the same file that was loaded into
// the grammar.
func NewNameTable(f *config.File) NameTable {
	names := make([]string, len(f.Terminals))
	for i, t := range f.Terminals {
		names[i] = t.Name
	}
	return NameTable{terminalNames: names}
}

// Terminal returns the name of terminal id, or a placeholder if id is out
// of range (which would indicate a bug upstream, not bad input).
func (nt NameTable) Terminal(id int) string {
	if id < 0 || id >= len(nt.terminalNames) {
		return fmt.Sprintf("terminal#%d", id)
	}
	return nt.terminalNames[id]
}

// TerminalRef renders t using the grammar's own names for sentinels and
// this table's names for ordinary terminals.
func (nt NameTable) TerminalRef(t grammar.TerminalRef) string {
	switch t.Kind {
	case grammar.TermTerminal:
		return nt.Terminal(t.ID)
	default:
		return t.Kind.String()
	}
}

// Symbol renders sym, resolving Variable and Virtual names from g and
// Terminal names from this table.
func (nt NameTable) Symbol(sym grammar.SymbolRef, g *grammar.Grammar) string {
	switch sym.Kind {
	case grammar.SymVariable:
		if v, ok := g.GetVariable(sym.ID); ok {
			return v.Name
		}
		return fmt.Sprintf("var#%d", sym.ID)
	case grammar.SymVirtual:
		if v, ok := g.GetVariable(sym.ID); ok {
			return "&" + v.Name
		}
		return fmt.Sprintf("virtual#%d", sym.ID)
	case grammar.SymTerminal:
		return nt.Terminal(sym.ID)
	default:
		return sym.Kind.String()
	}
}

// itemString renders a dotted item for diagnostic output: "Name -> a . b".
func itemString(it automaton.Item, g *grammar.Grammar, nt NameTable) string {
	rule, ok := g.Rule(it.Rule)
	if !ok {
		return fmt.Sprintf("<unknown rule %v>", it.Rule)
	}
	v, _ := g.GetVariable(it.Rule.Variable)

	parts := rule.Parts()
	pieces := make([]string, 0, len(parts)+2)
	pieces = append(pieces, v.Name, "->")
	for i, p := range parts {
		if i == it.Position {
			pieces = append(pieces, ".")
		}
		pieces = append(pieces, nt.Symbol(p, g))
	}
	if it.Position == len(parts) {
		pieces = append(pieces, ".")
	}

	out := ""
	for i, p := range pieces {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}

// FormatStates renders one table row per (state, transition-symbol) pair
// plus the state's reductions, in the style of the teacher's LR parse-table
// dumps: a wide table is more legible in a terminal than a nested dump.
func FormatStates(graph *automaton.Graph, g *grammar.Grammar, nt NameTable) string {
	data := [][]string{{"state", "on", "action"}}

	for i, st := range graph.States {
		for _, sym := range SortedTransitions(st.Transitions) {
			data = append(data, []string{
				fmt.Sprintf("%d", i),
				nt.Symbol(sym, g),
				fmt.Sprintf("shift -> %d", st.Transitions[sym]),
			})
		}
		for _, r := range st.Reductions {
			data = append(data, []string{
				fmt.Sprintf("%d", i),
				nt.TerminalRef(r.Lookahead),
				fmt.Sprintf("reduce %s (len %d)", ruleName(r.Rule, g), r.Length),
			})
		}
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func ruleName(ref grammar.RuleRef, g *grammar.Grammar) string {
	v, ok := g.GetVariable(ref.Variable)
	if !ok {
		return fmt.Sprintf("var#%d[%d]", ref.Variable, ref.Index)
	}
	return fmt.Sprintf("%s[%d]", v.Name, ref.Index)
}

// FormatConflicts renders every conflict as a short paragraph naming its
// state, kind, lookahead, and the items it implicates.
func FormatConflicts(conflicts automaton.Conflicts, g *grammar.Grammar, nt NameTable) string {
	if len(conflicts) == 0 {
		return "no conflicts"
	}

	out := ""
	for i, c := range conflicts {
		descs := make([]string, 0, len(c.Items))
		for _, it := range c.Items {
			descs = append(descs, itemString(it, g, nt))
		}
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("state %d: %s on %s between %s\n",
			c.State, c.Kind, nt.TerminalRef(c.Lookahead), util.MakeTextList(descs))
	}
	return out
}
