// Package recognize identifies compiler invocations from a raw Execution
// and decomposes their argv into semantically tagged ArgumentGroups.
// Grounded on original_source/bear/src/semantic/interpreters/compilers/
// compiler_recognition.rs (regex identity table) and
// .../interpreters/matchers/mod.rs (first-match-wins flag grammar).
package recognize

import (
	"path/filepath"
	"regexp"
)

// Family identifies a compiler toolchain by its executable basename.
type Family string

const (
	FamilyGCC          Family = "gcc"
	FamilyClang        Family = "clang"
	FamilyGNUFortran   Family = "gfortran"
	FamilyIntelFortran Family = "intel-fortran"
	FamilyCrayFortran  Family = "cray-fortran"
)

// familyPattern pairs a Family with the basename regex that identifies it.
// Checked in this order; first match wins.
type familyPattern struct {
	family  Family
	pattern *regexp.Regexp
}

var familyPatterns = []familyPattern{
	{FamilyGCC, regexp.MustCompile(`^(?:[^/]*-)?(?:gcc|g\+\+|cc|c\+\+)(?:-[\d.]+)?$`)},
	{FamilyClang, regexp.MustCompile(`^(?:[^/]*-)?clang(?:\+\+)?(?:-[\d.]+)?$`)},
	{FamilyGNUFortran, regexp.MustCompile(`^(?:[^/]*-)?(?:gfortran|f77|f90|f95|f03|f08)(?:-[\d.]+)?$`)},
	{FamilyIntelFortran, regexp.MustCompile(`^(?:ifort|ifx)(?:-[\d.]+)?$`)},
	{FamilyCrayFortran, regexp.MustCompile(`^(?:crayftn|ftn)(?:-[\d.]+)?$`)},
}

// IdentifyCompiler recognizes the compiler family from an executable path,
// considering only its basename. Returns ok=false for anything that isn't
// one of the known compiler families.
func IdentifyCompiler(executable string) (Family, bool) {
	base := filepath.Base(executable)
	for _, fp := range familyPatterns {
		if fp.pattern.MatchString(base) {
			return fp.family, true
		}
	}
	return "", false
}
