package automaton

import (
	"testing"

	"github.com/mothlight/parsergen/internal/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_Build_emptyGrammar_noConflicts(t *testing.T) {
	for _, method := range []ParsingMethod{LR0Method, LR1Method, LALR1Method, RNGLR1Method, RNGLALR1Method} {
		t.Run(method.String(), func(t *testing.T) {
			assert := assert.New(t)

			b := grammar.NewBuilder()
			b.Rule("S", 0, grammar.Term(0))
			g := b.Build("S")

			graph, conflicts, err := Build(g, method)
			assert.NoError(err)
			assert.Empty(conflicts)
			// state 0 (shifts S and terminal 0), state 1 (after S, shifts
			// $), state 2 (after terminal 0, reduces S), and state 3 (after
			// $, reduces the axiom): the axiom state plus one state per
			// reachable symbol.
			assert.GreaterOrEqual(len(graph.States), 2)
		})
	}
}

func Test_Build_danglingElse_shiftReduce(t *testing.T) {
	const (
		tIf = iota
		tThen
		tElse
		tOther
		tExpr
	)

	build := func() *grammar.Grammar {
		b := grammar.NewBuilder()
		stmt := b.VarRef("Stmt")
		expr := b.VarRef("E")
		b.Rule("Stmt", 0, grammar.Term(tIf), expr, grammar.Term(tThen), stmt)
		b.Rule("Stmt", 0, grammar.Term(tIf), expr, grammar.Term(tThen), stmt, grammar.Term(tElse), stmt)
		b.Rule("Stmt", 0, grammar.Term(tOther))
		b.Rule("E", 0, grammar.Term(tExpr))
		return b.Build("Stmt")
	}

	t.Run("LR1 reports shift/reduce on else", func(t *testing.T) {
		assert := assert.New(t)
		graph, conflicts, err := Build(build(), LR1Method)
		assert.NoError(err)
		_ = graph

		found := false
		for _, c := range conflicts {
			if c.Kind == ShiftReduce && c.Lookahead == grammar.Terminal(tElse) {
				found = true
			}
		}
		assert.True(found, "expected a shift/reduce conflict on ELSE, got %+v", conflicts)
	})

	t.Run("LALR1 reports the same shift/reduce on else", func(t *testing.T) {
		assert := assert.New(t)
		_, conflicts, err := Build(build(), LALR1Method)
		assert.NoError(err)

		found := false
		for _, c := range conflicts {
			if c.Kind == ShiftReduce && c.Lookahead == grammar.Terminal(tElse) {
				found = true
			}
		}
		assert.True(found, "expected a shift/reduce conflict on ELSE, got %+v", conflicts)
	})

	t.Run("LR0 reports shift/reduce with the null lookahead", func(t *testing.T) {
		assert := assert.New(t)
		_, conflicts, err := Build(build(), LR0Method)
		assert.NoError(err)

		found := false
		for _, c := range conflicts {
			if c.Kind == ShiftReduce && c.Lookahead == grammar.NullTerminal {
				found = true
			}
		}
		assert.True(found, "expected a shift/reduce conflict with NullTerminal, got %+v", conflicts)
	})
}

func Test_Build_RNGLR_reducesThroughNullableSuffix(t *testing.T) {
	assert := assert.New(t)

	b := grammar.NewBuilder()
	varB := b.VarRef("B")
	varC := b.VarRef("C")
	b.Rule("B", 0, grammar.Term(0))
	b.Rule("C", 0) // C derives epsilon
	b.Rule("A", 0, varB, varC)
	g := b.Build("A")

	aVar, ok := g.GetVariableForName("A")
	assert.True(ok)
	aRule := grammar.RuleRef{Variable: aVar.ID, Index: 0}

	findReduction := func(graph *Graph, length int) (Reduction, bool) {
		for _, st := range graph.States {
			for _, r := range st.Reductions {
				if r.Rule == aRule && r.Length == length {
					return r, true
				}
			}
		}
		return Reduction{}, false
	}

	lr1Graph, _, err := Build(g, LR1Method)
	assert.NoError(err)
	_, hasLength1 := findReduction(lr1Graph, 1)
	assert.False(hasLength1, "canonical LR(1) should not reduce through the nullable suffix early")

	rnglrGraph, _, err := Build(g, RNGLR1Method)
	assert.NoError(err)
	_, hasLength1 = findReduction(rnglrGraph, 1)
	assert.True(hasLength1, "RNGLR(1) should reduce [A -> B . C] at length 1 since C is nullable")
}

func Test_Build_unknownAxiom(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	_, _, err := Build(g, LR1Method)
	assert.Error(err)

	var malformed *grammar.MalformedGrammarError
	assert.ErrorAs(err, &malformed)
}

func Test_StateKernel_Equal_isMultiset(t *testing.T) {
	assert := assert.New(t)

	ruleA := grammar.RuleRef{Variable: 1, Index: 0}
	ruleB := grammar.RuleRef{Variable: 2, Index: 0}

	k1 := NewStateKernel(
		Item{Rule: ruleA, Position: 0, Lookaheads: grammar.NewTerminalSet()},
		Item{Rule: ruleB, Position: 1, Lookaheads: grammar.NewTerminalSet()},
	)
	k2 := NewStateKernel(
		Item{Rule: ruleB, Position: 1, Lookaheads: grammar.NewTerminalSet()},
		Item{Rule: ruleA, Position: 0, Lookaheads: grammar.NewTerminalSet()},
	)

	assert.True(k1.Equal(k2))
}

func Test_Conflicts_mergeByStateKindLookahead(t *testing.T) {
	assert := assert.New(t)

	it1 := Item{Rule: grammar.RuleRef{Variable: 1}, Position: 1}
	it2 := Item{Rule: grammar.RuleRef{Variable: 2}, Position: 1}

	var cs Conflicts
	cs.RaiseReduceReduce(0, it1, it2, grammar.Dollar)
	assert.Len(cs, 1)
	assert.Len(cs[0].Items, 2)

	it3 := Item{Rule: grammar.RuleRef{Variable: 3}, Position: 1}
	cs.RaiseReduceReduce(0, it1, it3, grammar.Dollar)
	assert.Len(cs, 1, "a third collision at the same (state, lookahead) should merge, not add a new conflict")
	assert.Len(cs[0].Items, 3)
}
