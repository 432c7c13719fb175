package automaton

import "github.com/mothlight/parsergen/internal/grammar"

// ConflictKind distinguishes the two ways a reduction can collide with
// another action in the same state.
type ConflictKind int

const (
	ShiftReduce ConflictKind = iota
	ReduceReduce
)

func (k ConflictKind) String() string {
	if k == ShiftReduce {
		return "ShiftReduce"
	}
	return "ReduceReduce"
}

// Conflict is a single diagnosed ambiguity: in State, under Kind, on
// Lookahead, more than one action applies. Items accumulates every item
// implicated in the conflict as it's discovered. Equality ignores Items --
// two conflicts are "the same" when they share State, Kind, and Lookahead.
type Conflict struct {
	State     int
	Kind      ConflictKind
	Items     []Item
	Lookahead grammar.TerminalRef
}

func (c Conflict) sameKey(state int, kind ConflictKind, lookahead grammar.TerminalRef) bool {
	return c.State == state && c.Kind == kind && c.Lookahead == lookahead
}

// Conflicts is an append-only collection of Conflict, in discovery order.
//
// The lookup the raise methods perform below searches by (kind, lookahead)
// across *all* states, not just the current one -- reproducing a quirk of
// the construction this package is descended from. That may be intentional
// coalescing of the same lookahead-driven conflict as it recurs across
// states, or it may be a latent bug whose first-seen State field then mixes
// items from unrelated states. It's preserved here for output
// compatibility; see DESIGN.md.
type Conflicts []Conflict

// findExisting returns the index of a conflict already in cs matching kind
// and lookahead (see the type doc for why state is not part of the key).
func (cs Conflicts) findExisting(kind ConflictKind, lookahead grammar.TerminalRef) (int, bool) {
	for i, c := range cs {
		if c.sameKey(c.State, kind, lookahead) {
			return i, true
		}
	}
	return 0, false
}

// RaiseShiftReduce records a shift/reduce conflict at (stateID, lookahead)
// in state. If a matching conflict already exists, reducingItem is merely
// appended to it; otherwise a new Conflict is created whose initial Items
// are every item in state.Items that shifts on lookahead, plus
// reducingItem.
func (cs *Conflicts) RaiseShiftReduce(stateID int, state *State, g *grammar.Grammar, reducingItem Item, lookahead grammar.TerminalRef) {
	if idx, ok := cs.findExisting(ShiftReduce, lookahead); ok {
		(*cs)[idx].Items = append((*cs)[idx].Items, reducingItem)
		return
	}

	var items []Item
	for _, it := range state.Items {
		sym, ok := it.NextSymbol(g)
		if ok && sym == lookahead.AsSymbol() {
			items = append(items, it)
		}
	}
	items = append(items, reducingItem)

	*cs = append(*cs, Conflict{State: stateID, Kind: ShiftReduce, Items: items, Lookahead: lookahead})
}

// RaiseReduceReduce records a reduce/reduce conflict at (stateID,
// lookahead) between previousItem and reducingItem. If a matching conflict
// already exists, reducingItem is appended to it; otherwise a new Conflict
// is created with Items = [previousItem, reducingItem].
func (cs *Conflicts) RaiseReduceReduce(stateID int, previousItem, reducingItem Item, lookahead grammar.TerminalRef) {
	if idx, ok := cs.findExisting(ReduceReduce, lookahead); ok {
		(*cs)[idx].Items = append((*cs)[idx].Items, reducingItem)
		return
	}

	*cs = append(*cs, Conflict{
		State:     stateID,
		Kind:      ReduceReduce,
		Items:     []Item{previousItem, reducingItem},
		Lookahead: lookahead,
	})
}

// Aggregate appends every entry of other onto cs, in order.
func (cs *Conflicts) Aggregate(other Conflicts) {
	*cs = append(*cs, other...)
}
