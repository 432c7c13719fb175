package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mothlight/parsergen/internal/config"
	"github.com/mothlight/parsergen/internal/grammar"
)

func Test_Load_resolvesTerminalsAndVariables(t *testing.T) {
	assert := assert.New(t)

	f := &config.File{
		Start: "Stmt",
		Terminals: []config.Terminal{
			{Name: "IF"}, {Name: "THEN"}, {Name: "ELSE"},
		},
		Variables: []config.Variable{
			{
				Name: "Stmt",
				Rules: []config.Rule{
					{Parts: []string{"IF", "THEN", "Stmt"}},
					{Parts: nil},
				},
			},
		},
	}

	g, err := Load(f)
	assert.NoError(err)

	stmt, ok := g.GetVariableForName("Stmt")
	assert.True(ok)
	assert.Len(stmt.Rules, 2)

	parts := stmt.Rules[0].Parts()
	assert.Equal(grammar.Term(0), parts[0])
	assert.Equal(grammar.Term(1), parts[1])
	assert.Equal(grammar.Var(stmt.ID), parts[2])
}

func Test_Load_virtualSharesVariableID(t *testing.T) {
	assert := assert.New(t)

	f := &config.File{
		Start: "S",
		Virtuals: []config.Virtual{
			{Name: "CtxKeyword", Of: "Keyword"},
		},
		Variables: []config.Variable{
			{Name: "Keyword", Rules: []config.Rule{{Parts: nil}}},
			{Name: "S", Rules: []config.Rule{{Parts: []string{"CtxKeyword"}}}},
		},
	}

	g, err := Load(f)
	assert.NoError(err)

	keyword, ok := g.GetVariableForName("Keyword")
	assert.True(ok)

	s, ok := g.GetVariableForName("S")
	assert.True(ok)

	parts := s.Rules[0].Parts()
	assert.Equal(grammar.SymbolRef{Kind: grammar.SymVirtual, ID: keyword.ID}, parts[0])
}

func Test_Load_unknownSymbolIsAnError(t *testing.T) {
	assert := assert.New(t)

	f := &config.File{
		Start: "S",
		Variables: []config.Variable{
			{Name: "S", Rules: []config.Rule{{Parts: []string{"nope"}}}},
		},
	}

	_, err := Load(f)
	assert.Error(err)
}

func Test_Load_missingStart(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(&config.File{})
	assert.Error(err)
}

func Test_Load_duplicateTerminal(t *testing.T) {
	assert := assert.New(t)

	f := &config.File{
		Start:     "S",
		Terminals: []config.Terminal{{Name: "A"}, {Name: "A"}},
		Variables: []config.Variable{{Name: "S", Rules: []config.Rule{{Parts: []string{"A"}}}}},
	}

	_, err := Load(f)
	assert.Error(err)
}
