package cmd

import (
	"github.com/bearskim/bearskim/internal/preload"
)

// defaultCompilerNames lists the basenames recognize.IdentifyCompiler's
// family patterns accept, used when the user doesn't name an explicit
// --compiler list on the command line.
var defaultCompilerNames = []string{
	"cc", "gcc", "g++", "c++",
	"clang", "clang++",
	"gfortran", "f77", "f90", "f95", "f03", "f08",
	"ifort", "ifx",
	"crayftn", "ftn",
}

// resolveCompilers looks each name up on PATH and returns a basename ->
// real-path map suitable for wrapper.Build, silently skipping names that
// aren't installed.
func resolveCompilers(names []string) map[string]string {
	out := make(map[string]string, len(names))
	for _, name := range names {
		resolved, err := preload.ResolveExecutable(name, true)
		if err != nil {
			continue
		}
		out[name] = resolved
	}
	return out
}
