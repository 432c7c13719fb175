package automaton

import "github.com/mothlight/parsergen/internal/grammar"

// BuildReductionsRNGLR1 populates Reductions on every state of graph under
// the RNGLR(1) regime. It extends the canonical LR(1) rule: besides
// ordinary reducing items, a *shifting* item also contributes a reduction
// -- at its current (non-final) dot position -- when the suffix still
// ahead of the dot is nullable. That lets RNGLR reduce through a nullable
// remainder instead of only ever shifting, which is what makes it handle
// generalized/ambiguous grammars that plain LR(1) cannot.
func BuildReductionsRNGLR1(graph *Graph, g *grammar.Grammar) Conflicts {
	var conflicts Conflicts

	for stateID := range graph.States {
		state := &graph.States[stateID]
		recordReductions(&conflicts, stateID, state, g, func(it Item) (bool, int) {
			if it.Action(g) == Reduce {
				return true, it.Position
			}

			choice, ok := it.CurrentChoice(g)
			if !ok || !choice.Firsts.Has(grammar.Epsilon) {
				return false, 0
			}
			return true, it.Position
		})
	}

	return conflicts
}
