// Package diagnostics provides the CLI-facing error type used by
// cmd/parsergen: every error that reaches an operator carries both a short
// message fit for a terminal and the more technical Error() text used in
// logs and bug reports.
package diagnostics

import "fmt"

// cliError is an error meant to surface at the command line. It pairs a
// terse operator-facing Summary with a more complete technical message, and
// may wrap an underlying cause.
type cliError struct {
	msg     string
	summary string
	wrap    error
}

func (e *cliError) Error() string {
	return e.msg
}

// Summary returns the short message that should be printed to the operator,
// as opposed to the fuller Error() text.
func (e *cliError) Summary() string {
	return e.summary
}

func (e *cliError) Unwrap() error {
	return e.wrap
}

// New returns a cliError with the given operator summary and technical
// message.
func New(summary, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got CLIError(%q)", summary)
	}
	return &cliError{msg: technical, summary: summary}
}

// Newf is New with the summary built from a format string.
func Newf(summaryFormat string, a ...interface{}) error {
	return New(fmt.Sprintf(summaryFormat, a...), "")
}

// Wrap returns a cliError that wraps cause, with the given operator summary
// and technical message.
func Wrap(cause error, summary, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got CLIError(%q)", summary)
	}
	return &cliError{msg: technical, summary: summary, wrap: cause}
}

// Wrapf is Wrap with the summary built from a format string.
func Wrapf(cause error, summaryFormat string, a ...interface{}) error {
	return Wrap(cause, fmt.Sprintf(summaryFormat, a...), "")
}

// Summary returns the operator-facing summary of err. If err is not one of
// the types defined in this package, err.Error() is returned instead.
func Summary(err error) string {
	if ce, ok := err.(*cliError); ok {
		return ce.Summary()
	}
	return err.Error()
}
