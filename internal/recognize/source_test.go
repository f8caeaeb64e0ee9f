package recognize

import "testing"

func TestLooksLikeSourceFileRecognizedExtensions(t *testing.T) {
	cwd := t.TempDir()
	for _, name := range []string{
		"foo.c", "foo.cc", "foo.cxx", "foo.cpp", "foo.c++", "foo.cp",
		"foo.i", "foo.ii", "foo.m", "foo.mm", "foo.mi", "foo.mii",
		"foo.f", "foo.f90", "foo.s", "foo.sx", "foo.asm",
	} {
		if !looksLikeSourceFile(name, cwd) {
			t.Errorf("looksLikeSourceFile(%q) = false, want true", name)
		}
	}
}

func TestLooksLikeSourceFileRejectsOtherExtensions(t *testing.T) {
	cwd := t.TempDir()
	for _, name := range []string{"foo.o", "foo.h", "foo.a", "foo.so"} {
		if looksLikeSourceFile(name, cwd) {
			t.Errorf("looksLikeSourceFile(%q) = true, want false", name)
		}
	}
}
