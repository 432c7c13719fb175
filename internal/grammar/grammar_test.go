package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Builder_Build_axiom(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder()
	b.Rule("S", 0, Term(0))
	g := b.Build("S")

	axiom, ok := g.Axiom()
	assert.True(ok, "axiom variable should exist")
	assert.Equal(GeneratedAxiomName, axiom.Name)
	assert.Len(axiom.Rules, 1)

	sRule := axiom.Rules[0]
	assert.Equal([]SymbolRef{Var(0), DollarSym}, sRule.Parts())
}

func Test_Builder_Build_firsts(t *testing.T) {
	testCases := []struct {
		name       string
		build      func(b *Builder)
		variable   string
		start      string
		wantFirsts []TerminalRef
	}{
		{
			name: "single terminal rule",
			build: func(b *Builder) {
				b.Rule("S", 0, Term(0))
			},
			variable:   "S",
			start:      "S",
			wantFirsts: []TerminalRef{Terminal(0)},
		},
		{
			name: "epsilon rule contributes epsilon",
			build: func(b *Builder) {
				b.Rule("A", 0)
			},
			variable:   "A",
			start:      "A",
			wantFirsts: []TerminalRef{Epsilon},
		},
		{
			name: "nullable prefix exposes second symbol's firsts",
			build: func(b *Builder) {
				b.Rule("A", 0)
				b.Rule("S", 0, b.VarRef("A"), Term(1))
			},
			variable:   "S",
			start:      "S",
			wantFirsts: []TerminalRef{Terminal(1)},
		},
		{
			name: "non-nullable prefix hides what follows",
			build: func(b *Builder) {
				b.Rule("A", 0, Term(0))
				b.Rule("S", 0, b.VarRef("A"), Term(1))
			},
			variable:   "S",
			start:      "S",
			wantFirsts: []TerminalRef{Terminal(0)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			b := NewBuilder()
			tc.build(b)
			g := b.Build(tc.start)

			v, ok := g.GetVariableForName(tc.variable)
			assert.True(ok)

			for _, want := range tc.wantFirsts {
				assert.True(v.Firsts.Has(want), "expected %s in FIRST(%s), got %s", want, tc.variable, v.Firsts)
			}
			assert.Equal(len(tc.wantFirsts), v.Firsts.Len())
		})
	}
}

func Test_Grammar_GetVariable_unknown(t *testing.T) {
	assert := assert.New(t)

	g := New()
	_, ok := g.GetVariable(42)
	assert.False(ok)

	_, ok = g.GetVariableForName("nope")
	assert.False(ok)
}

func Test_TerminalSet_idempotent_insertion_order(t *testing.T) {
	assert := assert.New(t)

	s := NewTerminalSet()
	s.Add(Terminal(2))
	s.Add(Terminal(1))
	s.Add(Terminal(2))

	assert.Equal(2, s.Len())
	assert.Equal([]TerminalRef{Terminal(2), Terminal(1)}, s.Elements())
}

func Test_TerminalSet_Equal_ignores_order(t *testing.T) {
	assert := assert.New(t)

	a := NewTerminalSet(Terminal(1), Terminal(2))
	b := NewTerminalSet(Terminal(2), Terminal(1))

	assert.True(a.Equal(b))
}
