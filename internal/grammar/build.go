package grammar

// Builder assembles a Grammar from rule declarations given by variable name,
// assigning stable integer ids in first-appearance order and computing the
// FIRST sets that automaton construction trusts as already-done.
//
// This is scaffolding, not a surface-syntax parser: callers add rules
// symbol-by-symbol using the same SymbolRef/TerminalRef vocabulary the core
// consumes. A real front end would produce a Grammar the same way, just
// fed by an actual grammar file instead of Go calls.
type Builder struct {
	order   []string
	ids     map[string]int
	rules   map[string][]pendingRule
	nextID  int
	started bool
}

type pendingRule struct {
	parts   []SymbolRef
	context int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		ids:   map[string]int{},
		rules: map[string][]pendingRule{},
	}
}

// id returns the id assigned to name, assigning the next one in sequence the
// first time name is seen.
func (b *Builder) id(name string) int {
	if id, ok := b.ids[name]; ok {
		return id
	}
	id := b.nextID
	b.nextID++
	b.ids[name] = id
	b.order = append(b.order, name)
	return id
}

// Rule adds one alternative to nonTerminal's body. context is the context id
// this rule opens on its first symbol while the dot is at position zero (see
// Item.OpenedContext), or 0 for none.
func (b *Builder) Rule(nonTerminal string, context int, parts ...SymbolRef) *Builder {
	b.id(nonTerminal)
	b.rules[nonTerminal] = append(b.rules[nonTerminal], pendingRule{parts: parts, context: context})
	return b
}

// VarRef returns the SymbolRef for a (possibly not-yet-declared) variable
// name, assigning it an id if this is the first mention.
func (b *Builder) VarRef(name string) SymbolRef {
	return Var(b.id(name))
}

// Build finalizes the grammar: it computes FIRST sets to a fixpoint, derives
// every rule's per-position Choice, and synthesizes the generated axiom
// variable S' -> start $.
func (b *Builder) Build(start string) *Grammar {
	startID := b.id(start)

	firsts := make([]TerminalSet, b.nextID)
	for i := range firsts {
		firsts[i] = NewTerminalSet()
	}

	sequenceFirst := func(parts []SymbolRef) TerminalSet {
		result := NewTerminalSet()
		nullable := true
		for _, sym := range parts {
			var sf TerminalSet
			switch sym.Kind {
			case SymVariable, SymVirtual:
				sf = firsts[sym.ID]
			default:
				sf = NewTerminalSet(sym.AsTerminal())
			}
			containsEpsilon := sf.Has(Epsilon)
			for _, t := range sf.Elements() {
				if t != Epsilon {
					result.Add(t)
				}
			}
			if !containsEpsilon {
				nullable = false
				break
			}
		}
		if nullable {
			result.Add(Epsilon)
		}
		return result
	}

	// Iterate the classic monotone FIRST-set dataflow to a fixpoint: each
	// pass can only grow a variable's FIRST set, so this terminates.
	for changed := true; changed; {
		changed = false
		for _, name := range b.order {
			id := b.ids[name]
			for _, pr := range b.rules[name] {
				sf := sequenceFirst(pr.parts)
				before := firsts[id].Len()
				firsts[id].AddOthers(sf)
				if firsts[id].Len() != before {
					changed = true
				}
			}
		}
	}

	g := New()
	for _, name := range b.order {
		id := b.ids[name]
		var rules []Rule
		for _, pr := range b.rules[name] {
			choices := make([]Choice, len(pr.parts)+1)
			for k := 0; k <= len(pr.parts); k++ {
				tail := pr.parts[k:]
				choices[k] = Choice{Parts: tail, Firsts: sequenceFirst(tail)}
			}
			rules = append(rules, Rule{Body: Body{Choices: choices}, Context: pr.context})
		}
		g.AddVariable(Variable{ID: id, Name: name, Rules: rules, Firsts: firsts[id]})
	}

	axiomParts := []SymbolRef{Var(startID), DollarSym}
	axiomChoices := []Choice{
		{Parts: axiomParts, Firsts: sequenceFirst(axiomParts)},
		{Parts: axiomParts[1:], Firsts: sequenceFirst(axiomParts[1:])},
		{Parts: nil, Firsts: NewTerminalSet(Epsilon)},
	}
	g.AddVariable(Variable{
		ID:     b.nextID,
		Name:   GeneratedAxiomName,
		Rules:  []Rule{{Body: Body{Choices: axiomChoices}}},
		Firsts: sequenceFirst(axiomParts),
	})

	return g
}
