package automaton

import "github.com/mothlight/parsergen/internal/grammar"

// StateKernel is the subset of a state's items that were not produced by
// closure: either the single axiom item that seeds state 0, or the items
// advanced (via Child) from some predecessor state's items on a shift.
//
// Kernels compare equal as multisets: same length, and every item in one
// appears in the other. Insertion order is otherwise preserved for
// determinism but never used for comparison.
type StateKernel struct {
	Items []Item
}

// NewStateKernel returns a kernel containing the given items, deduplicated
// by full equality.
func NewStateKernel(items ...Item) StateKernel {
	k := StateKernel{}
	for _, it := range items {
		k.Add(it)
	}
	return k
}

// Add inserts it into the kernel if no equal item is already present.
func (k *StateKernel) Add(it Item) {
	if containsEqual(k.Items, it) {
		return
	}
	k.Items = append(k.Items, it)
}

// Equal reports whether k and o contain the same items, as a multiset (i.e.
// ignoring order, but respecting count via mutual containment since both
// kernels are themselves deduplicated).
func (k StateKernel) Equal(o StateKernel) bool {
	if len(k.Items) != len(o.Items) {
		return false
	}
	for _, it := range k.Items {
		if !containsEqual(o.Items, it) {
			return false
		}
	}
	return true
}

// IntoState saturates k into a full State by running closure to a fixpoint
// under mode, starting from the kernel items and discovering new items by
// index until none remain to process.
func (k StateKernel) IntoState(g *grammar.Grammar, mode Mode) (State, error) {
	closure := make([]Item, len(k.Items))
	copy(closure, k.Items)

	for i := 0; i < len(closure); i++ {
		if err := CloseTo(closure[i], g, &closure, mode); err != nil {
			return State{}, err
		}
	}

	return State{
		Kernel:          k,
		Items:           closure,
		Transitions:     map[grammar.SymbolRef]int{},
		OpeningContexts: map[grammar.TerminalRef][]int{},
	}, nil
}
