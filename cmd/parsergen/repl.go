package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mothlight/parsergen/internal/automaton"
	"github.com/mothlight/parsergen/internal/grammar"
	"github.com/mothlight/parsergen/internal/report"
)

// runShell starts an interactive session for exploring graph one state at a
// time instead of dumping the entire table. Recognized commands:
//
//	state N        print the items, transitions, and reductions of state N
//	conflicts      print the conflicts report
//	states         print the full state table
//	quit           exit
func runShell(graph *automaton.Graph, g *grammar.Grammar, conflicts automaton.Conflicts, names report.NameTable) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "parsergen> ",
	})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stderr(), "%d states built. Type \"help\" for commands, \"quit\" to exit.\n", len(graph.States))

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(rl.Stdout(), "commands: state N, states, conflicts, quit")
		case "states":
			fmt.Fprintln(rl.Stdout(), report.FormatStates(graph, g, names))
		case "conflicts":
			fmt.Fprintln(rl.Stdout(), report.FormatConflicts(conflicts, g, names))
		case "state":
			if len(fields) < 2 {
				fmt.Fprintln(rl.Stderr(), "usage: state N")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 0 || n >= len(graph.States) {
				fmt.Fprintf(rl.Stderr(), "no such state %q\n", fields[1])
				continue
			}
			fmt.Fprintln(rl.Stdout(), describeState(n, graph, g, names))
		default:
			fmt.Fprintf(rl.Stderr(), "unrecognized command %q\n", fields[0])
		}
	}
}

func describeState(n int, graph *automaton.Graph, g *grammar.Grammar, names report.NameTable) string {
	st := graph.States[n]

	var b strings.Builder
	fmt.Fprintf(&b, "state %d (%d items):\n", n, len(st.Items))
	for _, it := range st.Items {
		fmt.Fprintf(&b, "  %s\n", itemLine(it, g, names))
	}
	fmt.Fprintf(&b, "transitions:\n")
	for _, sym := range report.SortedTransitions(st.Transitions) {
		fmt.Fprintf(&b, "  on %s -> state %d\n", names.Symbol(sym, g), st.Transitions[sym])
	}
	fmt.Fprintf(&b, "reductions:\n")
	for _, r := range st.Reductions {
		fmt.Fprintf(&b, "  on %s: reduce %v (len %d)\n", names.TerminalRef(r.Lookahead), r.Rule, r.Length)
	}
	return b.String()
}

func itemLine(it automaton.Item, g *grammar.Grammar, names report.NameTable) string {
	rule, ok := g.Rule(it.Rule)
	if !ok {
		return fmt.Sprintf("<unknown rule %v>", it.Rule)
	}
	v, _ := g.GetVariable(it.Rule.Variable)

	var b strings.Builder
	fmt.Fprintf(&b, "%s ->", v.Name)
	parts := rule.Parts()
	for i, p := range parts {
		if i == it.Position {
			b.WriteString(" .")
		}
		b.WriteString(" " + names.Symbol(p, g))
	}
	if it.Position == len(parts) {
		b.WriteString(" .")
	}

	lookaheads := make([]string, 0, it.Lookaheads.Len())
	for _, t := range it.Lookaheads.Elements() {
		lookaheads = append(lookaheads, names.TerminalRef(t))
	}
	if len(lookaheads) > 0 {
		fmt.Fprintf(&b, ", {%s}", strings.Join(lookaheads, "/"))
	}
	return b.String()
}
