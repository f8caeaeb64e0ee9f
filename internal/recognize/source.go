package recognize

import (
	"os"
	"path/filepath"
	"regexp"
)

// sourceExtensionPattern matches the file extensions a compiler call
// treats as a compilable source file: C/C++/Objective-C/Fortran/assembly
// family, including the preprocessed (.i/.ii/.mi/.mii) and alternate
// (.cp/.sx) spellings the spec's source-extension list also names.
var sourceExtensionPattern = regexp.MustCompile(`(?i)\.(c|cc|cxx|cpp|c\+\+|cp|i|ii|m|mm|mi|mii|f|f77|f90|f95|f03|f08|for|ftn|s|sx|asm)$`)

// looksLikeSourceFile reports whether arg is plausibly a source file
// argument: it has a recognized source extension, or (as a fallback) it
// has no extension at all and names an existing, non-binary file relative
// to cwd. A name with any other extension is never checked on disk.
func looksLikeSourceFile(arg, cwd string) bool {
	if sourceExtensionPattern.MatchString(arg) {
		return true
	}
	if filepath.Ext(arg) != "" {
		return false // has an extension, just not a recognized source one
	}
	path := arg
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return !isBinaryFile(path)
}

// isBinaryFile sniffs the first 512 bytes of path for a NUL byte, the
// cheap heuristic most tools use to tell text from binary content.
func isBinaryFile(path string) bool {
	f, err := os.Open(path) //nolint:gosec // path built from argv under the build's own cwd
	if err != nil {
		return true // unreadable: assume not a usable source file
	}
	defer f.Close() //nolint:errcheck // read-only file close

	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	for _, b := range buf[:n] {
		if b == 0 {
			return true
		}
	}
	return false
}
