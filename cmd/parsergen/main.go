/*
Parsergen builds an LR-family automaton from a grammar description and
reports its states, reductions, and any shift/reduce or reduce/reduce
conflicts.

Usage:

	parsergen [flags]

The flags are:

	-g, --grammar FILE
		The TOML grammar description to build from (see internal/config).
		Required.

	-m, --method METHOD
		Which automaton to build: lr0, lr1, lalr1, rnglr1, or rnglalr1.
		Defaults to lr1.

	-c, --conflicts-only
		Print only the conflicts report, skipping the state table.

	-i, --interactive
		After building, drop into a readline-based shell for inspecting
		individual states instead of printing a report and exiting.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mothlight/parsergen/internal/automaton"
	"github.com/mothlight/parsergen/internal/config"
	"github.com/mothlight/parsergen/internal/diagnostics"
	"github.com/mothlight/parsergen/internal/loader"
	"github.com/mothlight/parsergen/internal/report"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitConfigError indicates a problem reading or resolving the grammar
	// file.
	ExitConfigError

	// ExitBuildError indicates the grammar itself was malformed, as
	// distinct from a conflict (which is not an error), or that the
	// interactive shell failed.
	ExitBuildError
)

var (
	returnCode = ExitSuccess

	grammarFile    = pflag.StringP("grammar", "g", "", "The TOML grammar description to build from")
	method         = pflag.StringP("method", "m", "lr1", "Which automaton to build: lr0, lr1, lalr1, rnglr1, rnglalr1")
	conflictsOnly  = pflag.BoolP("conflicts-only", "c", false, "Print only the conflicts report")
	interactive    = pflag.BoolP("interactive", "i", false, "Drop into an interactive shell after building")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *grammarFile == "" {
		fmt.Fprintln(os.Stderr, "ERROR: --grammar is required")
		returnCode = ExitConfigError
		return
	}

	parsingMethod, ok := parseMethod(*method)
	if !ok {
		fmt.Fprintf(os.Stderr, "ERROR: unrecognized method %q\n", *method)
		returnCode = ExitConfigError
		return
	}

	f, err := config.Load(*grammarFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", diagnostics.Summary(err))
		returnCode = ExitConfigError
		return
	}

	g, err := loader.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", diagnostics.Summary(err))
		returnCode = ExitConfigError
		return
	}

	graph, conflicts, err := automaton.Build(g, parsingMethod)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", diagnostics.Summary(err))
		returnCode = ExitBuildError
		return
	}

	names := report.NewNameTable(f)

	if *interactive {
		if err := runShell(graph, g, conflicts, names); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", diagnostics.Summary(err))
			returnCode = ExitBuildError
		}
		return
	}

	if !*conflictsOnly {
		fmt.Println(report.FormatStates(graph, g, names))
		fmt.Println()
	}
	fmt.Println(report.FormatConflicts(conflicts, g, names))
}

func parseMethod(s string) (automaton.ParsingMethod, bool) {
	switch strings.ToLower(s) {
	case "lr0":
		return automaton.LR0Method, true
	case "lr1":
		return automaton.LR1Method, true
	case "lalr1":
		return automaton.LALR1Method, true
	case "rnglr1":
		return automaton.RNGLR1Method, true
	case "rnglalr1":
		return automaton.RNGLALR1Method, true
	default:
		return 0, false
	}
}
