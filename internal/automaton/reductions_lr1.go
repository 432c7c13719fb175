package automaton

import "github.com/mothlight/parsergen/internal/grammar"

// BuildReductionsLR1 populates Reductions on every state of graph under the
// canonical LR(1)/LALR(1) regime: every reducing item contributes one
// Reduction per distinct lookahead in its set, unless that lookahead is
// already claimed by a shift (ShiftReduce) or an earlier reduction
// (ReduceReduce).
func BuildReductionsLR1(graph *Graph, g *grammar.Grammar) Conflicts {
	var conflicts Conflicts

	for stateID := range graph.States {
		state := &graph.States[stateID]
		recordReductions(&conflicts, stateID, state, g, func(it Item) (bool, int) {
			if it.Action(g) != Reduce {
				return false, 0
			}
			return true, it.Position
		})
	}

	return conflicts
}

// recordReductions implements the shared per-lookahead reduction logic used
// by both the canonical LR(1)/LALR(1) builder and the RNGLR(1) builder:
// eligible determines, for each item in the state, whether it contributes
// reductions at all and if so at what length; everything else (claiming a
// lookahead, detecting shift/reduce and reduce/reduce conflicts) is
// identical between the two.
func recordReductions(conflicts *Conflicts, stateID int, state *State, g *grammar.Grammar, eligible func(Item) (ok bool, length int)) {
	claimed := map[grammar.TerminalRef]Item{}

	for _, it := range state.Items {
		ok, length := eligible(it)
		if !ok {
			continue
		}

		for _, t := range it.Lookaheads.Elements() {
			if _, shifts := state.HasTransitionOn(t.AsSymbol()); shifts {
				conflicts.RaiseShiftReduce(stateID, state, g, it, t)
				continue
			}

			if previous, exists := claimed[t]; exists {
				conflicts.RaiseReduceReduce(stateID, previous, it, t)
				continue
			}

			state.Reductions = append(state.Reductions, Reduction{
				Lookahead: t,
				Rule:      it.Rule,
				Length:    length,
			})
			claimed[t] = it
		}
	}
}
