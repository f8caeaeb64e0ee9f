package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathFormatValidateRequiresRelativeSiblings(t *testing.T) {
	f := PathFormat{Directory: PathRelative, File: PathAbsolute}
	assert.Error(t, f.Validate())

	f = PathFormat{Directory: PathRelative, File: PathRelative, Output: PathRelative}
	assert.NoError(t, f.Validate())
}

func TestPathFormatValidateAllowsNonRelativeDirectory(t *testing.T) {
	f := PathFormat{Directory: PathAbsolute, File: PathAsIs, Output: PathAsIs}
	assert.NoError(t, f.Validate())
}

func TestPathFormatValidateRejectsCanonicalDirectoryWithAbsoluteFile(t *testing.T) {
	f := PathFormat{Directory: PathCanonical, File: PathAbsolute}
	assert.Error(t, f.Validate())
}

func TestPathFormatValidateRejectsAbsoluteDirectoryWithCanonicalFile(t *testing.T) {
	f := PathFormat{Directory: PathAbsolute, File: PathCanonical}
	assert.Error(t, f.Validate())
}

func TestPathFormatValidateAllowsCanonicalDirectoryWithCanonicalFile(t *testing.T) {
	f := PathFormat{Directory: PathCanonical, File: PathCanonical, Output: PathAsIs}
	assert.NoError(t, f.Validate())
}

func TestEffectiveOrAsIsDefaultsEmpty(t *testing.T) {
	assert.Equal(t, PathAsIs, EffectiveOrAsIs(""))
	assert.Equal(t, PathCanonical, EffectiveOrAsIs(PathCanonical))
}
