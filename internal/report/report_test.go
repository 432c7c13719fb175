package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mothlight/parsergen/internal/automaton"
	"github.com/mothlight/parsergen/internal/config"
	"github.com/mothlight/parsergen/internal/grammar"
	"github.com/mothlight/parsergen/internal/loader"
)

func buildDanglingElse(t *testing.T) (*automaton.Graph, *grammar.Grammar, automaton.Conflicts, NameTable) {
	t.Helper()

	f := &config.File{
		Start: "Stmt",
		Terminals: []config.Terminal{
			{Name: "IF"}, {Name: "THEN"}, {Name: "ELSE"}, {Name: "OTHER"},
		},
		Variables: []config.Variable{
			{
				Name: "Stmt",
				Rules: []config.Rule{
					{Parts: []string{"IF", "THEN", "Stmt"}},
					{Parts: []string{"IF", "THEN", "Stmt", "ELSE", "Stmt"}},
					{Parts: []string{"OTHER"}},
				},
			},
		},
	}

	g, err := loader.Load(f)
	assert.NoError(t, err)

	graph, conflicts, err := automaton.Build(g, automaton.LR1Method)
	assert.NoError(t, err)

	return graph, g, conflicts, NewNameTable(f)
}

func Test_FormatStates_mentionsTerminalNames(t *testing.T) {
	graph, g, _, names := buildDanglingElse(t)

	out := FormatStates(graph, g, names)
	assert.Contains(t, out, "IF")
	assert.Contains(t, out, "state")
}

func Test_FormatConflicts_reportsElse(t *testing.T) {
	graph, g, conflicts, names := buildDanglingElse(t)
	_ = graph

	out := FormatConflicts(conflicts, g, names)
	assert.True(t, strings.Contains(out, "ELSE"), "expected ELSE to appear in: %s", out)
}

func Test_FormatConflicts_empty(t *testing.T) {
	assert.Equal(t, "no conflicts", FormatConflicts(nil, grammar.New(), NameTable{}))
}
