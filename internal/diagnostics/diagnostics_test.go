package diagnostics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New_summaryAndError(t *testing.T) {
	assert := assert.New(t)

	err := New("couldn't read the grammar file", "open foo.toml: no such file")
	assert.Equal("couldn't read the grammar file", Summary(err))
	assert.Equal("open foo.toml: no such file", err.Error())
}

func Test_New_technicalDefaultsFromSummary(t *testing.T) {
	assert := assert.New(t)

	err := New("bad input", "")
	assert.Contains(err.Error(), "bad input")
}

func Test_Wrap_unwraps(t *testing.T) {
	assert := assert.New(t)

	cause := errors.New("underlying")
	err := Wrap(cause, "couldn't load grammar", "")
	assert.ErrorIs(err, cause)
}

func Test_Summary_passthroughForPlainErrors(t *testing.T) {
	assert := assert.New(t)

	plain := errors.New("plain error")
	assert.Equal("plain error", Summary(plain))
}
