package transform

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bearskim/bearskim/internal/config"
	"github.com/bearskim/bearskim/internal/recognize"
)

// FilterBySourceDir drops a compiler command whose source file falls under
// a directory configured with IgnoreAlways. Filters are tried in order and
// the first whose path prefixes the source file wins; a source file
// matching no filter is kept. Grounded on FilterBySourceDir::apply in
// filter_by_source_dir.rs.
type FilterBySourceDir struct {
	filters      []config.DirectoryFilter
	onlyExisting bool
}

func NewFilterBySourceDir(cfg config.SourceFilter) *FilterBySourceDir {
	return &FilterBySourceDir{filters: cfg.Paths, onlyExisting: cfg.OnlyExistingFiles}
}

// Apply reports dropped=true if every one of cc's source files is excluded.
// A command with at least one surviving source file is kept with its
// Groups untouched; source-level filtering only decides keep-or-drop, it
// never edits the group list.
func (f *FilterBySourceDir) Apply(cc recognize.CompilerCommand) (recognize.CompilerCommand, bool) {
	sources := cc.Sources()
	if len(sources) == 0 {
		return cc, false
	}
	for _, src := range sources {
		if f.keeps(cc.WorkingDir, src) {
			return cc, false
		}
	}
	return recognize.CompilerCommand{}, true
}

func (f *FilterBySourceDir) keeps(workingDir, source string) bool {
	abs := source
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(workingDir, abs)
	}
	if f.onlyExisting {
		if _, err := os.Stat(abs); err != nil {
			return false
		}
	}
	for _, filt := range f.filters {
		if pathUnder(abs, filt.Path) {
			return filt.Ignore != config.IgnoreAlways
		}
	}
	return true
}

func pathUnder(path, dir string) bool {
	cleanPath := filepath.Clean(path)
	cleanDir := filepath.Clean(dir)
	if cleanPath == cleanDir {
		return true
	}
	return strings.HasPrefix(cleanPath, cleanDir+string(filepath.Separator))
}
