package automaton

import "github.com/mothlight/parsergen/internal/grammar"

// Graph is the ordered state set produced by automaton construction. State
// 0 is always the start state, and every transition target is a valid index
// into States.
type Graph struct {
	States []State
}

// BuildGraph runs the fixpoint state-discovery loop starting from state0:
// insert it at index 0, then repeatedly expand whichever state is next in
// discovery order until no new states are produced. States are expanded in
// the order they're discovered (breadth-then-depth, as driven by the
// growing index), which is what makes two runs on the same grammar produce
// byte-identical state numbering.
func BuildGraph(state0 State, g *grammar.Grammar, mode Mode) (*Graph, error) {
	graph := &Graph{States: []State{state0}}

	for i := 0; i < len(graph.States); i++ {
		if err := buildAtState(graph, i, g, mode); err != nil {
			return nil, err
		}
	}

	return graph, nil
}

// buildAtState computes state i's outgoing transitions and opening
// contexts, creating or reusing child states as needed.
func buildAtState(graph *Graph, i int, g *grammar.Grammar, mode Mode) error {
	state := graph.States[i]

	var shiftSymbols []grammar.SymbolRef
	shiftKernels := map[grammar.SymbolRef]*StateKernel{}

	for _, it := range state.Items {
		sym, ok := it.NextSymbol(g)
		if !ok {
			continue
		}
		kernel, seen := shiftKernels[sym]
		if !seen {
			k := StateKernel{}
			kernel = &k
			shiftKernels[sym] = kernel
			shiftSymbols = append(shiftSymbols, sym)
		}
		kernel.Add(it.Child())
	}

	for _, sym := range shiftSymbols {
		kernel := *shiftKernels[sym]

		targetIdx := -1
		for j, existing := range graph.States {
			if existing.Kernel.Equal(kernel) {
				targetIdx = j
				break
			}
		}

		if targetIdx == -1 {
			newState, err := kernel.IntoState(g, mode)
			if err != nil {
				return err
			}
			graph.States = append(graph.States, newState)
			targetIdx = len(graph.States) - 1
		}

		state.Transitions[sym] = targetIdx
	}

	for _, it := range state.Items {
		ctx, ok := it.OpenedContext(g)
		if !ok {
			continue
		}
		sym, ok := it.NextSymbol(g)
		if !ok {
			continue
		}

		for _, t := range openingTerminalsOf(sym, g) {
			existing := state.OpeningContexts[t]
			if !containsInt(existing, ctx) {
				state.OpeningContexts[t] = append(existing, ctx)
			}
		}
	}

	graph.States[i] = state
	return nil
}

// openingTerminalsOf returns the terminals that "open" sym, per the rule
// used for context attachment: a Virtual symbol opens under its variable's
// entire FIRST set, a real terminal (or sentinel) opens under itself, and a
// Variable opens under nothing (contexts only attach to terminal shifts).
func openingTerminalsOf(sym grammar.SymbolRef, g *grammar.Grammar) []grammar.TerminalRef {
	switch sym.Kind {
	case grammar.SymVirtual:
		v, ok := g.GetVariable(sym.ID)
		if !ok {
			return nil
		}
		return v.Firsts.Elements()
	case grammar.SymTerminal, grammar.SymEpsilon, grammar.SymDollar, grammar.SymDummy, grammar.SymNullTerminal:
		return []grammar.TerminalRef{sym.AsTerminal()}
	default:
		return nil
	}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
