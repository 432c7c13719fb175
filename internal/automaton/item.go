// Package automaton builds LR-family automata -- LR(0), LR(1), LALR(1), and
// their RNGLR generalizations -- from a grammar.Grammar, along with the
// reduction tables and shift/reduce or reduce/reduce conflicts that fall out
// of the construction.
//
// The entry point is Build. Everything else in this package is the
// machinery it drives: item closures, state/kernel bookkeeping, graph
// fixpoint construction, the three reduction-table variants, and the
// DeRemer-Pennello LALR(1) lookahead propagation pipeline.
package automaton

import "github.com/mothlight/parsergen/internal/grammar"

// ItemAction is what an Item does next: consume a symbol, or reduce.
type ItemAction int

const (
	Shift ItemAction = iota
	Reduce
)

func (a ItemAction) String() string {
	if a == Shift {
		return "Shift"
	}
	return "Reduce"
}

// Item is a dotted rule position together with a lookahead set: the pair
// (RuleRef, dot position) is its "base", same_base equality ignores
// Lookaheads entirely.
type Item struct {
	Rule       grammar.RuleRef
	Position   int
	Lookaheads grammar.TerminalSet
}

// parts returns the rule's right-hand side, or nil if the rule reference
// doesn't resolve.
func (it Item) parts(g *grammar.Grammar) ([]grammar.SymbolRef, bool) {
	r, ok := g.Rule(it.Rule)
	if !ok {
		return nil, false
	}
	return r.Parts(), true
}

// Action reports whether it still has symbols right of the dot to shift, or
// is ready to reduce.
func (it Item) Action(g *grammar.Grammar) ItemAction {
	parts, ok := it.parts(g)
	if ok && it.Position < len(parts) {
		return Shift
	}
	return Reduce
}

// NextSymbol returns the symbol immediately after the dot, or ok=false if
// the item is reducing (or its rule doesn't resolve).
func (it Item) NextSymbol(g *grammar.Grammar) (grammar.SymbolRef, bool) {
	parts, ok := it.parts(g)
	if !ok || it.Position >= len(parts) {
		return grammar.SymbolRef{}, false
	}
	return parts[it.Position], true
}

// NextChoice returns the Choice describing the suffix that begins after the
// symbol following the dot -- i.e. choices[position+1], the grammar's precomputed tail
// for the position the dot would move to after a shift. Returns ok=false
// when the item is reducing or the rule doesn't resolve.
func (it Item) NextChoice(g *grammar.Grammar) (grammar.Choice, bool) {
	r, ok := g.Rule(it.Rule)
	if !ok {
		return grammar.Choice{}, false
	}
	if it.Position+1 >= len(r.Body.Choices) {
		return grammar.Choice{}, false
	}
	return r.Body.Choices[it.Position+1], true
}

// Child returns the item with the dot advanced by one, carrying the same
// lookahead set (by value: TerminalSet's backing slice is re-used, which is
// fine since lookaheads are never mutated in place after Child is taken --
// callers that need to grow a child's lookaheads independently should Copy
// first).
func (it Item) Child() Item {
	return Item{Rule: it.Rule, Position: it.Position + 1, Lookaheads: it.Lookaheads}
}

// OpenedContext returns the context id this item's rule declares, iff the
// item is at position 0, the rule has a nonzero context, and there is at
// least one symbol after the dot for that context to apply to.
func (it Item) OpenedContext(g *grammar.Grammar) (int, bool) {
	if it.Position != 0 {
		return 0, false
	}
	r, ok := g.Rule(it.Rule)
	if !ok || r.Context == 0 {
		return 0, false
	}
	if len(r.Parts()) == 0 {
		return 0, false
	}
	return r.Context, true
}

// CurrentChoice returns the Choice describing the suffix starting at the
// dot itself -- choices[position], i.e. everything still left to match in
// this item, dot symbol included. RNGLR reduction-building uses this to
// test whether that remaining suffix is nullable.
func (it Item) CurrentChoice(g *grammar.Grammar) (grammar.Choice, bool) {
	r, ok := g.Rule(it.Rule)
	if !ok || it.Position >= len(r.Body.Choices) {
		return grammar.Choice{}, false
	}
	return r.Body.Choices[it.Position], true
}

// SameBase reports whether it and other share the same rule and dot
// position, ignoring their lookahead sets.
func (it Item) SameBase(other Item) bool {
	return it.Rule == other.Rule && it.Position == other.Position
}

// Equal reports full equality: same rule, same position, and equal
// lookahead sets.
func (it Item) Equal(other Item) bool {
	return it.SameBase(other) && it.Lookaheads.Equal(other.Lookaheads)
}

// Copy returns an item with an independently-mutable lookahead set.
func (it Item) Copy() Item {
	return Item{Rule: it.Rule, Position: it.Position, Lookaheads: it.Lookaheads.Copy()}
}
