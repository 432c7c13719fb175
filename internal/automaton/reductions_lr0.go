package automaton

import "github.com/mothlight/parsergen/internal/grammar"

// BuildReductionsLR0 populates Reductions on every state of graph under the
// LR(0) regime: at most one reduction per state, tagged with the synthetic
// NullTerminal lookahead since LR(0) items carry no real one. A state with
// any outgoing shift and a reducing item conflicts (ShiftReduce); a second
// reducing item in the same state conflicts with the first (ReduceReduce).
func BuildReductionsLR0(graph *Graph, g *grammar.Grammar) Conflicts {
	var conflicts Conflicts

	for stateID := range graph.States {
		state := &graph.States[stateID]

		var recorded *Item
		for _, it := range state.Items {
			if it.Action(g) != Reduce {
				continue
			}

			if len(state.Transitions) > 0 {
				conflicts.RaiseShiftReduce(stateID, state, g, it, grammar.NullTerminal)
			}

			if recorded != nil {
				conflicts.RaiseReduceReduce(stateID, *recorded, it, grammar.NullTerminal)
				continue
			}

			state.Reductions = append(state.Reductions, Reduction{
				Lookahead: grammar.NullTerminal,
				Rule:      it.Rule,
				Length:    it.Position,
			})
			itCopy := it
			recorded = &itCopy
		}
	}

	return conflicts
}
