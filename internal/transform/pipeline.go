package transform

import (
	"github.com/bearskim/bearskim/internal/config"
	"github.com/bearskim/bearskim/internal/recognize"
)

// Pipeline runs a recognized CompilerCommand through filter-by-compiler,
// filter-by-source-dir, classification, and path formatting, in that
// order: identity filters get the first say over whether a command
// survives at all, Classify applies the structural outcome rules, and
// PathFormatter only ever touches a command already decided to keep.
type Pipeline struct {
	byCompiler  *FilterByCompiler
	bySourceDir *FilterBySourceDir
	formatter   *PathFormatter
}

// NewPipeline builds a Pipeline from a loaded, validated Config. baseDir
// is the PathFormatter's base for the directory field.
func NewPipeline(cfg *config.Config, baseDir string) *Pipeline {
	return &Pipeline{
		byCompiler:  NewFilterByCompiler(cfg.Compilers),
		bySourceDir: NewFilterBySourceDir(cfg.SourceDirs),
		formatter:   NewPathFormatter(cfg.Format, baseDir),
	}
}

// Run applies every stage to cc, returning the final Command (Compiler or
// Ignored).
func (p *Pipeline) Run(cc recognize.CompilerCommand) Command {
	cc, dropped := p.byCompiler.Apply(cc)
	if dropped {
		return Command{Ignored: &IgnoredReason{Code: "filtered-by-compiler", Detail: "compiler rule dropped this invocation"}}
	}
	cc, dropped = p.bySourceDir.Apply(cc)
	if dropped {
		return Command{Ignored: &IgnoredReason{Code: "filtered-by-source-dir", Detail: "source directory rule dropped this invocation"}}
	}
	cmd := Classify(cc)
	if cmd.Ignored != nil {
		return cmd
	}
	formatted := p.formatter.Apply(*cmd.Compiler)
	return Command{Compiler: &formatted}
}
