package transform

import (
	"testing"

	"github.com/bearskim/bearskim/internal/config"
	"github.com/bearskim/bearskim/internal/recognize"
	"github.com/stretchr/testify/assert"
)

func ccForFormat() recognize.CompilerCommand {
	return recognize.CompilerCommand{
		WorkingDir: "/project/build",
		Compiler:   "/usr/bin/gcc",
		Groups: []recognize.ArgumentGroup{
			{Role: recognize.RoleSource, Args: []string{"../src/foo.c"}},
			{Role: recognize.RoleOutput, Args: []string{"-o", "foo.o"}},
		},
	}
}

func TestPathFormatterAsIsLeavesPathsUnchanged(t *testing.T) {
	f := NewPathFormatter(config.PathFormat{}, "/project/build")
	out := f.Apply(ccForFormat())
	assert.Equal(t, "../src/foo.c", out.Groups[0].Args[0])
	assert.Equal(t, "foo.o", out.Groups[1].Args[1])
}

func TestPathFormatterAbsoluteResolvesAgainstWorkingDir(t *testing.T) {
	f := NewPathFormatter(config.PathFormat{File: config.PathAbsolute, Output: config.PathAbsolute}, "/project/build")
	out := f.Apply(ccForFormat())
	assert.Equal(t, "/project/src/foo.c", out.Groups[0].Args[0])
	assert.Equal(t, "/project/build/foo.o", out.Groups[1].Args[1])
}

func TestPathFormatterRelativeDirectoryFromBaseDirFilesFromWorkingDir(t *testing.T) {
	f := NewPathFormatter(config.PathFormat{
		Directory: config.PathRelative, File: config.PathRelative, Output: config.PathRelative,
	}, "/project")
	out := f.Apply(ccForFormat())
	assert.Equal(t, "build", out.WorkingDir)
	assert.Equal(t, "../src/foo.c", out.Groups[0].Args[0])
	assert.Equal(t, "foo.o", out.Groups[1].Args[1])
}
