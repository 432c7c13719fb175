package grammar

import "fmt"

// SymbolKind distinguishes the flavors of symbol that can appear on the
// right-hand side of a rule or as a transition label in the automaton.
type SymbolKind int

const (
	// SymVariable is a grammar non-terminal, referenced by its Variable.ID.
	SymVariable SymbolKind = iota
	// SymTerminal is an ordinary token class, referenced by an external ID.
	SymTerminal
	// SymVirtual stands in for a terminal whose FIRST set is itself a set of
	// other terminals (used by contextual lexing); referenced by ID.
	SymVirtual
	// SymEpsilon is the empty string.
	SymEpsilon
	// SymDollar is the end-of-input marker.
	SymDollar
	// SymDummy is the DeRemer-Pennello probe sentinel; never appears in a
	// finished grammar, only in lookahead sets during LALR(1) construction.
	SymDummy
	// SymNullTerminal is the synthetic lookahead used by LR(0) reductions,
	// which carry no real lookahead.
	SymNullTerminal
)

func (k SymbolKind) String() string {
	switch k {
	case SymVariable:
		return "Variable"
	case SymTerminal:
		return "Terminal"
	case SymVirtual:
		return "Virtual"
	case SymEpsilon:
		return "Epsilon"
	case SymDollar:
		return "Dollar"
	case SymDummy:
		return "Dummy"
	case SymNullTerminal:
		return "NullTerminal"
	default:
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
}

// SymbolRef is a tagged reference to a grammar symbol. It is comparable and
// therefore usable as a map key directly; this is relied on throughout the
// automaton package for transition tables.
type SymbolRef struct {
	Kind SymbolKind
	ID   int
}

// Var builds a SymbolRef referring to the variable with the given id.
func Var(id int) SymbolRef { return SymbolRef{Kind: SymVariable, ID: id} }

// Term builds a SymbolRef referring to the terminal with the given id.
func Term(id int) SymbolRef { return SymbolRef{Kind: SymTerminal, ID: id} }

// Virtual builds a SymbolRef referring to the virtual terminal with the given id.
func Virtual(id int) SymbolRef { return SymbolRef{Kind: SymVirtual, ID: id} }

// EpsilonSym, DollarSym, DummySym, and NullTerminalSym are the singleton
// sentinel symbols; their ID field is always 0 and carries no meaning.
var (
	EpsilonSym      = SymbolRef{Kind: SymEpsilon}
	DollarSym       = SymbolRef{Kind: SymDollar}
	DummySym        = SymbolRef{Kind: SymDummy}
	NullTerminalSym = SymbolRef{Kind: SymNullTerminal}
)

// IsTerminal reports whether this symbol is terminal-like, i.e. it is not a
// Variable. A Virtual counts as terminal-like here, although AsTerminal has
// no TerminalRef for it.
func (s SymbolRef) IsTerminal() bool {
	return s.Kind != SymVariable
}

// AsTerminal converts s into a TerminalRef. It panics if s is a Variable or
// Virtual, since neither has a terminal identity usable as a lookahead.
func (s SymbolRef) AsTerminal() TerminalRef {
	switch s.Kind {
	case SymTerminal:
		return TerminalRef{Kind: TermTerminal, ID: s.ID}
	case SymEpsilon:
		return TerminalRef{Kind: TermEpsilon}
	case SymDollar:
		return TerminalRef{Kind: TermDollar}
	case SymDummy:
		return TerminalRef{Kind: TermDummy}
	case SymNullTerminal:
		return TerminalRef{Kind: TermNullTerminal}
	default:
		panic(fmt.Sprintf("symbol %s has no terminal identity", s))
	}
}

func (s SymbolRef) String() string {
	switch s.Kind {
	case SymVariable:
		return fmt.Sprintf("Var(%d)", s.ID)
	case SymTerminal:
		return fmt.Sprintf("Term(%d)", s.ID)
	case SymVirtual:
		return fmt.Sprintf("Virtual(%d)", s.ID)
	default:
		return s.Kind.String()
	}
}

// TerminalKind is the restriction of SymbolKind to the variants that can
// serve as a lookahead or reduction trigger.
type TerminalKind int

const (
	TermTerminal TerminalKind = iota
	TermEpsilon
	TermDollar
	TermDummy
	TermNullTerminal
)

func (k TerminalKind) String() string {
	switch k {
	case TermTerminal:
		return "Terminal"
	case TermEpsilon:
		return "Epsilon"
	case TermDollar:
		return "Dollar"
	case TermDummy:
		return "Dummy"
	case TermNullTerminal:
		return "NullTerminal"
	default:
		return fmt.Sprintf("TerminalKind(%d)", int(k))
	}
}

// TerminalRef is a tagged reference to a terminal-like symbol: an actual
// terminal, or one of the sentinels (ε, $, the LALR dummy, or the LR(0)
// null lookahead). It is comparable.
type TerminalRef struct {
	Kind TerminalKind
	ID   int
}

// Terminal builds a TerminalRef referring to the terminal with the given id.
func Terminal(id int) TerminalRef { return TerminalRef{Kind: TermTerminal, ID: id} }

var (
	Epsilon      = TerminalRef{Kind: TermEpsilon}
	Dollar       = TerminalRef{Kind: TermDollar}
	Dummy        = TerminalRef{Kind: TermDummy}
	NullTerminal = TerminalRef{Kind: TermNullTerminal}
)

// AsSymbol injects a TerminalRef into the SymbolRef universe, the inverse of
// SymbolRef.AsTerminal.
func (t TerminalRef) AsSymbol() SymbolRef {
	switch t.Kind {
	case TermTerminal:
		return Term(t.ID)
	case TermEpsilon:
		return EpsilonSym
	case TermDollar:
		return DollarSym
	case TermDummy:
		return DummySym
	case TermNullTerminal:
		return NullTerminalSym
	default:
		panic(fmt.Sprintf("terminal %s has no symbol identity", t))
	}
}

func (t TerminalRef) String() string {
	if t.Kind == TermTerminal {
		return fmt.Sprintf("Term(%d)", t.ID)
	}
	return t.Kind.String()
}

// TerminalSet is an unordered collection of TerminalRef with idempotent
// insertion. Insertion order is preserved so that iteration (and therefore
// any output derived from it) is deterministic across runs, per the
// ordering guarantees the automaton builder must uphold.
type TerminalSet struct {
	order []TerminalRef
	has   map[TerminalRef]bool
}

// NewTerminalSet returns an empty TerminalSet ready to use.
func NewTerminalSet(ts ...TerminalRef) TerminalSet {
	s := TerminalSet{has: map[TerminalRef]bool{}}
	for _, t := range ts {
		s.Add(t)
	}
	return s
}

// Add inserts t into the set. Re-adding an existing member has no effect.
func (s *TerminalSet) Add(t TerminalRef) {
	if s.has == nil {
		s.has = map[TerminalRef]bool{}
	}
	if s.has[t] {
		return
	}
	s.has[t] = true
	s.order = append(s.order, t)
}

// AddOthers unions every member of other into s.
func (s *TerminalSet) AddOthers(other TerminalSet) {
	for _, t := range other.order {
		s.Add(t)
	}
}

// Has reports whether t is a member of s.
func (s TerminalSet) Has(t TerminalRef) bool {
	return s.has[t]
}

// Remove deletes t from s, if present. The remaining elements keep their
// relative order.
func (s *TerminalSet) Remove(t TerminalRef) {
	if !s.has[t] {
		return
	}
	delete(s.has, t)
	for i, cur := range s.order {
		if cur == t {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of members of s.
func (s TerminalSet) Len() int {
	return len(s.order)
}

// Elements returns the members of s in insertion order. The caller must not
// mutate the returned slice.
func (s TerminalSet) Elements() []TerminalRef {
	return s.order
}

// Copy returns an independent copy of s.
func (s TerminalSet) Copy() TerminalSet {
	cp := NewTerminalSet()
	cp.AddOthers(s)
	return cp
}

// Equal reports whether s and o contain the same elements, irrespective of
// insertion order.
func (s TerminalSet) Equal(o TerminalSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, t := range s.order {
		if !o.Has(t) {
			return false
		}
	}
	return true
}

func (s TerminalSet) String() string {
	str := "{"
	for i, t := range s.order {
		if i > 0 {
			str += ", "
		}
		str += t.String()
	}
	return str + "}"
}
