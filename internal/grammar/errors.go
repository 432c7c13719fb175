package grammar

import "fmt"

// MalformedGrammarError reports a grammar that violates one of the
// preconditions automaton construction trusts: a missing generated axiom,
// a dangling variable reference, or similar. The source implementation this
// package is descended from treated these as assertion failures; here they
// are surfaced as an ordinary error so a caller can report them instead of
// crashing.
type MalformedGrammarError struct {
	// Reason is a short, human-readable description of what's wrong.
	Reason string
	// Reference is the offending id or name, if any, for diagnostics.
	Reference string
}

func (e *MalformedGrammarError) Error() string {
	if e.Reference == "" {
		return fmt.Sprintf("malformed grammar: %s", e.Reason)
	}
	return fmt.Sprintf("malformed grammar: %s: %q", e.Reason, e.Reference)
}

// NewMalformedGrammarError returns a MalformedGrammarError for the given
// reason and offending reference.
func NewMalformedGrammarError(reason, reference string) error {
	return &MalformedGrammarError{Reason: reason, Reference: reference}
}
