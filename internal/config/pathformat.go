package config

import "fmt"

// PathResolver is one of the four path-formatting strategies applicable to
// a directory/file/output field independently.
type PathResolver string

const (
	PathAsIs      PathResolver = "as-is"
	PathAbsolute  PathResolver = "absolute"
	PathCanonical PathResolver = "canonical"
	PathRelative  PathResolver = "relative"
)

// PathFormat configures how the directory, file, and output fields of each
// emitted Entry are formatted. Grounded on
// original_source/bear/src/semantic/interpreters/format.rs's PathFormat/
// PathResolver split, generalized from its two resolvers (Canonical,
// Relative) to the spec's four.
type PathFormat struct {
	Directory PathResolver `yaml:"directory,omitempty"`
	File      PathResolver `yaml:"file,omitempty"`
	Output    PathResolver `yaml:"output,omitempty"`
}

// Validate enforces the three cross-field constraints the spec rejects at
// config load: a directory-relative Entry can't meaningfully carry
// absolute or canonical sibling fields, and a canonical-vs-absolute
// directory/file pairing mixes a resolved-symlink base with a path that
// only promises to be rooted, which the reference formatter also refuses.
func (f *PathFormat) Validate() error {
	if f.Directory == PathRelative {
		if f.File != "" && f.File != PathRelative {
			return fmt.Errorf("file must be %q when directory is %q", PathRelative, PathRelative)
		}
		if f.Output != "" && f.Output != PathRelative {
			return fmt.Errorf("output must be %q when directory is %q", PathRelative, PathRelative)
		}
	}
	if f.Directory == PathCanonical && f.File == PathAbsolute {
		return fmt.Errorf("file must not be %q when directory is %q", PathAbsolute, PathCanonical)
	}
	if f.Directory == PathAbsolute && f.File == PathCanonical {
		return fmt.Errorf("file must not be %q when directory is %q", PathCanonical, PathAbsolute)
	}
	return nil
}

// EffectiveOrAsIs returns r, defaulting an empty value to PathAsIs.
func EffectiveOrAsIs(r PathResolver) PathResolver {
	if r == "" {
		return PathAsIs
	}
	return r
}
