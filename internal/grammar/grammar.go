// Package grammar holds the data model that the automaton package treats as
// a trusted, pre-computed input: variables, rules, and their FIRST sets.
//
// Computing those FIRST sets from surface syntax is a front-end concern and
// deliberately kept separate from automaton construction; what lives here is
// the minimal builder needed to hand the core a grammar object shaped the
// way it expects -- a stand-in for whatever upstream tool (parser generator
// front end, DSL loader) would normally produce one.
package grammar

import "fmt"

// GeneratedAxiomName is the literal name automaton construction looks for
// when it needs to locate the generated axiom variable.
const GeneratedAxiomName = "GENERATED_AXIOM"

// RuleRef identifies a specific rule of a specific variable: (variable id,
// rule index within that variable's Rules slice).
type RuleRef struct {
	Variable int
	Index    int
}

func (r RuleRef) String() string {
	return fmt.Sprintf("#%d.%d", r.Variable, r.Index)
}

// Choice is one "tail" of a rule's body: Parts is the sequence of symbols
// starting at some dot position, and Firsts is the precomputed FIRST set of
// that sequence (containing Epsilon iff the sequence is nullable).
//
// A Rule's Body holds one Choice per dot position: Choices[0] is the full
// right-hand side, Choices[k] is the suffix beginning at position k. This
// lets closure look up "the FIRST set of what follows the dot" by a single
// slice index instead of recomputing it.
type Choice struct {
	Parts  []SymbolRef
	Firsts TerminalSet
}

// Body is the full set of dot-position tails for one rule.
type Body struct {
	Choices []Choice
}

// Rule is one alternative for a variable. Context is nonzero when the rule
// declares a context-sensitive scope that opens when its first symbol is
// shifted (see Item.OpenedContext).
type Rule struct {
	Body    Body
	Context int
}

// Parts is shorthand for the rule's full right-hand side.
func (r Rule) Parts() []SymbolRef {
	if len(r.Body.Choices) == 0 {
		return nil
	}
	return r.Body.Choices[0].Parts
}

// Variable is a grammar non-terminal: a stable id, a display name, its
// alternative Rules, and the precomputed FIRST set of the variable itself
// (the union of FIRST(body) over all of its rules).
type Variable struct {
	ID     int
	Name   string
	Rules  []Rule
	Firsts TerminalSet
}

// Grammar is the trusted input to automaton construction. Everything here
// is assumed already validated and internally consistent: every SymbolRef
// referencing a variable resolves via GetVariable, every Choice's Firsts
// field is correct for its Parts, and exactly one variable is named
// GeneratedAxiomName.
type Grammar struct {
	variables []Variable
	byID      map[int]int
	byName    map[string]int
}

// New returns an empty Grammar ready to be populated with AddVariable.
func New() *Grammar {
	return &Grammar{
		byID:   map[int]int{},
		byName: map[string]int{},
	}
}

// AddVariable registers v with the grammar. It panics on a duplicate id or
// name, since that indicates a malformed grammar was constructed by the
// caller -- a programmer error in the (external, trusted) front end, not a
// recoverable runtime condition.
func (g *Grammar) AddVariable(v Variable) {
	if _, exists := g.byID[v.ID]; exists {
		panic(fmt.Sprintf("grammar: duplicate variable id %d", v.ID))
	}
	if _, exists := g.byName[v.Name]; exists {
		panic(fmt.Sprintf("grammar: duplicate variable name %q", v.Name))
	}
	idx := len(g.variables)
	g.variables = append(g.variables, v)
	g.byID[v.ID] = idx
	g.byName[v.Name] = idx
}

// Variables returns the grammar's variables in registration order.
func (g *Grammar) Variables() []Variable {
	return g.variables
}

// GetVariable returns the variable with the given id, or ok=false if the
// grammar has none.
func (g *Grammar) GetVariable(id int) (Variable, bool) {
	idx, ok := g.byID[id]
	if !ok {
		return Variable{}, false
	}
	return g.variables[idx], true
}

// GetVariableForName returns the variable with the given name, or ok=false
// if the grammar has none.
func (g *Grammar) GetVariableForName(name string) (Variable, bool) {
	idx, ok := g.byName[name]
	if !ok {
		return Variable{}, false
	}
	return g.variables[idx], true
}

// Axiom returns the generated axiom variable, located by the well-known
// name GeneratedAxiomName.
func (g *Grammar) Axiom() (Variable, bool) {
	return g.GetVariableForName(GeneratedAxiomName)
}

// Rule returns the identified rule, or ok=false if the reference doesn't
// resolve (an unknown variable id, or an out-of-range rule index).
func (g *Grammar) Rule(ref RuleRef) (Rule, bool) {
	v, ok := g.GetVariable(ref.Variable)
	if !ok || ref.Index < 0 || ref.Index >= len(v.Rules) {
		return Rule{}, false
	}
	return v.Rules[ref.Index], true
}
