package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Load(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "grammar.toml")
	contents := `
start = "Stmt"

[[terminal]]
name = "IF"

[[terminal]]
name = "THEN"

[[variable]]
name = "Stmt"

  [[variable.rule]]
  parts = ["IF", "THEN", "Stmt"]

  [[variable.rule]]
  parts = []
`
	assert.NoError(os.WriteFile(path, []byte(contents), 0644))

	f, err := Load(path)
	assert.NoError(err)
	assert.Equal("Stmt", f.Start)
	assert.Len(f.Terminals, 2)
	assert.Equal("IF", f.Terminals[0].Name)
	assert.Len(f.Variables, 1)
	assert.Len(f.Variables[0].Rules, 2)
	assert.Equal([]string{"IF", "THEN", "Stmt"}, f.Variables[0].Rules[0].Parts)
}

func Test_Load_missingFile(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(err)
}
