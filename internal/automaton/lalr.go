package automaton

import "github.com/mothlight/parsergen/internal/grammar"

// propagationEdge records that item fromItem of state fromState propagates
// whatever lookaheads it ends up with onto item toItem of state toState.
type propagationEdge struct {
	fromState, fromItem int
	toState, toItem     int
}

// BuildLALR1Graph builds the LALR(1) automaton for g using the classical
// DeRemer-Pennello approach: build the LR(0) skeleton, determine which
// lookaheads are generated spontaneously versus merely propagated from a
// parent item by closing a singleton "dummy" kernel per kernel item, then
// propagate to a fixpoint before closing every kernel for real.
//
// This is not built by direct canonical-LR1 item enumeration (which would
// be correct but means constructing and then merging the full LR(1)
// automaton); it reuses the much smaller LR(0) automaton's shape and only
// works out the lookaheads that shape requires.
func BuildLALR1Graph(g *grammar.Grammar, state0LR0 State) (*Graph, error) {
	lr0Graph, err := BuildGraph(state0LR0, g, LR0)
	if err != nil {
		return nil, err
	}

	kernels := make([]StateKernel, len(lr0Graph.States))
	for i, st := range lr0Graph.States {
		k := StateKernel{}
		for _, it := range st.Kernel.Items {
			k.Items = append(k.Items, Item{Rule: it.Rule, Position: it.Position, Lookaheads: grammar.NewTerminalSet()})
		}
		kernels[i] = k
	}
	for idx := range kernels[0].Items {
		kernels[0].Items[idx].Lookaheads = grammar.NewTerminalSet(grammar.Epsilon)
	}

	var propagations []propagationEdge

	for i, st := range lr0Graph.States {
		for kIdx, K := range st.Kernel.Items {
			if K.Action(g) != Shift {
				continue
			}

			dummyItem := Item{Rule: K.Rule, Position: K.Position, Lookaheads: grammar.NewTerminalSet(grammar.Dummy)}
			dummyState, err := NewStateKernel(dummyItem).IntoState(g, LALR1)
			if err != nil {
				return nil, err
			}

			for _, D := range dummyState.Items {
				S, ok := D.NextSymbol(g)
				if !ok {
					continue
				}

				childStateIdx, ok := st.Transitions[S]
				if !ok {
					return nil, grammar.NewMalformedGrammarError("LR(0) skeleton has no transition for LALR propagation", S.String())
				}

				childBase := D.Child()
				childItemIdx, ok := kernelIndexOf(kernels[childStateIdx], childBase)
				if !ok {
					return nil, grammar.NewMalformedGrammarError("LALR propagation target missing from LR(0) kernel", childBase.Rule.String())
				}

				if D.Lookaheads.Has(grammar.Dummy) {
					propagations = append(propagations, propagationEdge{
						fromState: i, fromItem: kIdx,
						toState: childStateIdx, toItem: childItemIdx,
					})
				} else {
					kernels[childStateIdx].Items[childItemIdx].Lookaheads.AddOthers(D.Lookaheads)
				}
			}
		}
	}

	for {
		inserted := 0
		for _, p := range propagations {
			src := kernels[p.fromState].Items[p.fromItem].Lookaheads
			dst := &kernels[p.toState].Items[p.toItem].Lookaheads
			before := dst.Len()
			dst.AddOthers(src)
			inserted += dst.Len() - before
		}
		if inserted == 0 {
			break
		}
	}

	graph := &Graph{States: make([]State, len(kernels))}
	for i, k := range kernels {
		st, err := k.IntoState(g, LALR1)
		if err != nil {
			return nil, err
		}
		for sym, target := range lr0Graph.States[i].Transitions {
			st.Transitions[sym] = target
		}
		for t, ctxs := range lr0Graph.States[i].OpeningContexts {
			st.OpeningContexts[t] = append([]int(nil), ctxs...)
		}
		graph.States[i] = st
	}

	return graph, nil
}

// kernelIndexOf returns the index of the item in k that shares base with
// target.
func kernelIndexOf(k StateKernel, target Item) (int, bool) {
	for i, it := range k.Items {
		if it.SameBase(target) {
			return i, true
		}
	}
	return 0, false
}
