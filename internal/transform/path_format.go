package transform

import (
	"path/filepath"

	"github.com/bearskim/bearskim/internal/config"
	"github.com/bearskim/bearskim/internal/recognize"
)

// PathFormatter rewrites the directory/source/output paths of a
// CompilerCommand according to a config.PathFormat. Grounded on
// PathFormatter/PathResolver in interpreters/format.rs, generalized to the
// spec's four resolver strategies (the reference implementation only has
// Canonical and Relative).
type PathFormatter struct {
	cfg     config.PathFormat
	baseDir string
}

// NewPathFormatter builds a formatter. baseDir is the base for the
// directory field only (normally the bearskim process's own working
// directory): a relative directory is made absolute against it, and the
// Relative strategy expresses the directory relative to it. Source and
// output paths use the compiler invocation's own working directory as
// their base for every strategy.
func NewPathFormatter(cfg config.PathFormat, baseDir string) *PathFormatter {
	return &PathFormatter{cfg: cfg, baseDir: baseDir}
}

// Apply returns cc with WorkingDir and every Source/Output group path
// rewritten per the configured strategies.
func (f *PathFormatter) Apply(cc recognize.CompilerCommand) recognize.CompilerCommand {
	out := cc
	out.WorkingDir = f.resolve(cc.WorkingDir, f.baseDir, config.EffectiveOrAsIs(f.cfg.Directory))

	groups := make([]recognize.ArgumentGroup, len(cc.Groups))
	for i, g := range cc.Groups {
		switch g.Role {
		case recognize.RoleSource:
			g.Args = []string{f.resolve(g.Args[0], cc.WorkingDir, config.EffectiveOrAsIs(f.cfg.File))}
		case recognize.RoleOutput:
			if len(g.Args) == 2 {
				g.Args = []string{g.Args[0], f.resolve(g.Args[1], cc.WorkingDir, config.EffectiveOrAsIs(f.cfg.Output))}
			}
		}
		groups[i] = g
	}
	out.Groups = groups
	return out
}

// resolve applies one resolver strategy to path, anchoring a relative path
// against anchorDir first; Relative is computed from anchorDir as well.
func (f *PathFormatter) resolve(path, anchorDir string, strategy config.PathResolver) string {
	switch strategy {
	case config.PathAsIs:
		return path

	case config.PathAbsolute:
		return f.toAbs(path, anchorDir)

	case config.PathCanonical:
		abs := f.toAbs(path, anchorDir)
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved
		}
		return abs

	case config.PathRelative:
		abs := f.toAbs(path, anchorDir)
		if rel, err := filepath.Rel(anchorDir, abs); err == nil {
			return rel
		}
		return abs
	}
	return path
}

func (f *PathFormatter) toAbs(path, anchorDir string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(anchorDir, path))
}
