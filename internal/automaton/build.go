package automaton

import "github.com/mothlight/parsergen/internal/grammar"

// ParsingMethod selects which automaton/reduction-table pipeline Build
// runs.
type ParsingMethod int

const (
	LR0Method ParsingMethod = iota
	LR1Method
	LALR1Method
	RNGLR1Method
	RNGLALR1Method
)

func (m ParsingMethod) String() string {
	switch m {
	case LR0Method:
		return "LR0"
	case LR1Method:
		return "LR1"
	case LALR1Method:
		return "LALR1"
	case RNGLR1Method:
		return "RNGLR1"
	case RNGLALR1Method:
		return "RNGLALR1"
	default:
		return "ParsingMethod(?)"
	}
}

// initialState builds the seed state for every method: a singleton kernel
// holding the item [S' -> . S $], closed under mode (LR0 for the LALR
// family, whose LR(0) skeleton starts from it).
func initialState(g *grammar.Grammar, mode Mode) (State, error) {
	axiom, ok := g.Axiom()
	if !ok {
		return State{}, grammar.NewMalformedGrammarError("grammar has no generated axiom variable", grammar.GeneratedAxiomName)
	}
	if len(axiom.Rules) == 0 {
		return State{}, grammar.NewMalformedGrammarError("generated axiom variable has no rule", grammar.GeneratedAxiomName)
	}

	initial := Item{
		Rule:       grammar.RuleRef{Variable: axiom.ID, Index: 0},
		Position:   0,
		Lookaheads: grammar.NewTerminalSet(),
	}

	return NewStateKernel(initial).IntoState(g, mode)
}

// Build constructs the automaton and reduction tables for g under method,
// returning the resulting Graph and every conflict found along the way. A
// non-nil error indicates a malformed grammar or an unknown method (both
// reported as grammar.MalformedGrammarError), never a conflict -- conflicts
// are a first-class, non-fatal part of the result.
func Build(g *grammar.Grammar, method ParsingMethod) (*Graph, Conflicts, error) {
	switch method {
	case LR0Method:
		state0, err := initialState(g, LR0)
		if err != nil {
			return nil, nil, err
		}
		graph, err := BuildGraph(state0, g, LR0)
		if err != nil {
			return nil, nil, err
		}
		return graph, BuildReductionsLR0(graph, g), nil

	case LR1Method:
		state0, err := initialState(g, LR1)
		if err != nil {
			return nil, nil, err
		}
		graph, err := BuildGraph(state0, g, LR1)
		if err != nil {
			return nil, nil, err
		}
		return graph, BuildReductionsLR1(graph, g), nil

	case LALR1Method:
		state0, err := initialState(g, LR0)
		if err != nil {
			return nil, nil, err
		}
		graph, err := BuildLALR1Graph(g, state0)
		if err != nil {
			return nil, nil, err
		}
		return graph, BuildReductionsLR1(graph, g), nil

	case RNGLR1Method:
		state0, err := initialState(g, LR1)
		if err != nil {
			return nil, nil, err
		}
		graph, err := BuildGraph(state0, g, LR1)
		if err != nil {
			return nil, nil, err
		}
		return graph, BuildReductionsRNGLR1(graph, g), nil

	case RNGLALR1Method:
		state0, err := initialState(g, LR0)
		if err != nil {
			return nil, nil, err
		}
		graph, err := BuildLALR1Graph(g, state0)
		if err != nil {
			return nil, nil, err
		}
		return graph, BuildReductionsRNGLR1(graph, g), nil

	default:
		return nil, nil, grammar.NewMalformedGrammarError("unknown parsing method", method.String())
	}
}
