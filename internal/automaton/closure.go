package automaton

import "github.com/mothlight/parsergen/internal/grammar"

// Mode selects which lookahead regime closure operates under. RNGLR(1) and
// RNGLALR(1) share LR1 and LALR1's closures respectively -- RNGLR only
// changes which items the reduction builder later accepts, not how closure
// expands them.
type Mode int

const (
	LR0 Mode = iota
	LR1
	LALR1
)

func (m Mode) String() string {
	switch m {
	case LR0:
		return "LR0"
	case LR1:
		return "LR1"
	case LALR1:
		return "LALR1"
	default:
		return "Mode(?)"
	}
}

// CloseTo expands item by one closure step and appends whatever new items
// it discovers (or unions lookaheads into ones already present) onto
// *closure. It is the caller's job to drive this to a fixpoint by iterating
// over *closure with a growing index, since items appended here may
// themselves need closing.
//
// When item is shifting over a variable v, the candidate lookahead set is
// FIRST(suffix after v) with epsilon replaced by item's own lookaheads if
// that suffix is nullable -- the classical "spontaneous generation" rule.
func CloseTo(item Item, g *grammar.Grammar, closure *[]Item, mode Mode) error {
	sym, ok := item.NextSymbol(g)
	if !ok || sym.Kind != grammar.SymVariable {
		return nil
	}

	choice, ok := item.NextChoice(g)
	if !ok {
		return grammar.NewMalformedGrammarError("item's rule has no tail choice for its position", item.Rule.String())
	}

	firsts := choice.Firsts.Copy()
	if firsts.Has(grammar.Epsilon) {
		firsts.Remove(grammar.Epsilon)
		firsts.AddOthers(item.Lookaheads)
	}

	v, ok := g.GetVariable(sym.ID)
	if !ok {
		return grammar.NewMalformedGrammarError("item references unknown variable", sym.String())
	}

	for ruleIdx := range v.Rules {
		ref := grammar.RuleRef{Variable: v.ID, Index: ruleIdx}

		switch mode {
		case LR0:
			candidate := Item{Rule: ref, Position: 0, Lookaheads: firsts.Copy()}
			if !containsEqual(*closure, candidate) {
				*closure = append(*closure, candidate)
			}

		case LR1:
			for _, t := range firsts.Elements() {
				candidate := Item{Rule: ref, Position: 0, Lookaheads: grammar.NewTerminalSet(t)}
				if !containsEqual(*closure, candidate) {
					*closure = append(*closure, candidate)
				}
			}

		case LALR1:
			if idx, found := indexSameBase(*closure, ref, 0); found {
				existing := (*closure)[idx]
				existing.Lookaheads.AddOthers(firsts)
				(*closure)[idx] = existing
			} else {
				candidate := Item{Rule: ref, Position: 0, Lookaheads: firsts.Copy()}
				*closure = append(*closure, candidate)
			}
		}
	}

	return nil
}

func containsEqual(items []Item, candidate Item) bool {
	for _, it := range items {
		if it.Equal(candidate) {
			return true
		}
	}
	return false
}

func indexSameBase(items []Item, rule grammar.RuleRef, position int) (int, bool) {
	for i, it := range items {
		if it.Rule == rule && it.Position == position {
			return i, true
		}
	}
	return 0, false
}
