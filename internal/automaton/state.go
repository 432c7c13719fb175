package automaton

import "github.com/mothlight/parsergen/internal/grammar"

// Reduction records that, on seeing Lookahead, the parser should reduce by
// Rule, popping Length symbols. Length is the dot position at which the
// reduction fires; for ordinary LR(1)/LALR(1) builds that's always
// len(rule.Parts()), but RNGLR(1) can fire a reduction from a non-final dot
// position when the remaining suffix is nullable, so Length is tracked
// explicitly rather than assumed.
type Reduction struct {
	Lookahead grammar.TerminalRef
	Rule      grammar.RuleRef
	Length    int
}

// State is one node of the automaton: its kernel, the full closure of
// items, the transition function out of it, which contexts it opens on
// which terminals, and the reductions it performs.
type State struct {
	Kernel          StateKernel
	Items           []Item
	Transitions     map[grammar.SymbolRef]int
	OpeningContexts map[grammar.TerminalRef][]int
	Reductions      []Reduction
}

// HasTransitionOn reports whether the state shifts on sym, and if so to
// which state index.
func (s State) HasTransitionOn(sym grammar.SymbolRef) (int, bool) {
	idx, ok := s.Transitions[sym]
	return idx, ok
}
