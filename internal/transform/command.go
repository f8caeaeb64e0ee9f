// Package transform implements the filter/transform pipeline stages that
// run after recognition: classifying a recognized call as kept or ignored,
// filtering by compiler identity or source directory, and formatting
// paths. Grounded on original_source/bear/src/semantic/transformation/
// {filter_by_compiler,filter_by_source_dir}.rs.
package transform

import "github.com/bearskim/bearskim/internal/recognize"

// Command is the tagged union a CompilerCommand becomes once classified:
// either still a compiler invocation worth keeping, or ignored with a
// recorded reason.
type Command struct {
	Compiler *recognize.CompilerCommand
	Ignored  *IgnoredReason
}

// IgnoredReason records why a Command was dropped from the pipeline.
type IgnoredReason struct {
	Code   string
	Detail string
}

// Classify applies the recognition outcome rules: a call with no Source
// group is never a useful compilation-database entry; a call that stops
// before the compile pass (e.g. -E, preprocess-only) is dropped; no
// configuration setting keeps such a call.
func Classify(cc recognize.CompilerCommand) Command {
	if len(cc.Sources()) == 0 {
		return Command{Ignored: &IgnoredReason{Code: "no-source", Detail: "invocation names no source file"}}
	}
	if pass, ok := cc.EarliestStop(); ok && pass.Before(recognize.PassCompile) {
		return Command{Ignored: &IgnoredReason{Code: "stops-before-compile", Detail: "invocation stops at " + string(pass)}}
	}
	kept := cc
	return Command{Compiler: &kept}
}
