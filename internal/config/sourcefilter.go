package config

import "fmt"

// DirectoryFilter is one source-directory filter entry: a path prefix and
// whether a source file under it should be dropped (IgnoreAlways) or kept
// (IgnoreNever) when this is the first rule whose path contains the file.
// Grounded directly on
// original_source/bear/src/semantic/transformation/filter_by_source_dir.rs,
// the flat ordered list with duplicate detection, not the alternative
// ordered Include/Exclude form considered in DESIGN.md.
type DirectoryFilter struct {
	Path   string `yaml:"path"`
	Ignore Ignore `yaml:"ignore"`
}

// SourceFilter is the full filter-by-source-directory configuration: an
// ordered list of DirectoryFilter rules, evaluated first-match-wins
// against each source file's path.
type SourceFilter struct {
	OnlyExistingFiles bool              `yaml:"only_existing_files,omitempty"`
	Paths             []DirectoryFilter `yaml:"paths,omitempty"`
}

// Validate applies the reference implementation's ConfigurationError
// rules: identical (path, ignore) pairs are a plain duplicate; the same
// path appearing with different dispositions is a contradiction.
func (f *SourceFilter) Validate() error {
	seen := map[string]Ignore{}
	for _, filter := range f.Paths {
		if filter.Ignore != IgnoreAlways && filter.Ignore != IgnoreNever {
			return fmt.Errorf("%s: ignore must be %q or %q", filter.Path, IgnoreAlways, IgnoreNever)
		}
		prior, ok := seen[filter.Path]
		if !ok {
			seen[filter.Path] = filter.Ignore
			continue
		}
		if prior == filter.Ignore {
			return fmt.Errorf("duplicate directory entry: %s", filter.Path)
		}
		return fmt.Errorf("directory %s is both included and excluded", filter.Path)
	}
	return nil
}
