package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "cluster1.gbff")
	touch(t, dir, "sample_2.gbff")
	touch(t, dir, "notes.txt")
	touch(t, dir, "cluster1.gbff.bak")
	touch(t, dir, "readme.md")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"cluster1.gbff", "sample_2.gbff"}
	got := basenames(files)
	if !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.gbff")
	sub := filepath.Join(dir, "nested.gbff")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, sub, "b.gbff")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("got %d files, want 1 (directories and nested files are not enumerated)", len(files))
	}
}

func TestDiscover_Sorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta.gbff", "alpha.gbff", "mid.gbff"} {
		touch(t, dir, name)
	}

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{"alpha.gbff", "mid.gbff", "zeta.gbff"}
	if got := basenames(files); !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	files, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Discover on missing dir: want error")
	}
}

func TestOutputDir_PureMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"cluster1.gbff", "cluster1"},
		{"sample_2.gbff", "sample_2"},
		{"GCF_000005845.2.gbff", "GCF_000005845.2"},
	}
	for _, tt := range tests {
		if got := Stem(filepath.Join("/in", tt.input)); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.input, got, tt.want)
		}
		want := filepath.Join("/dest", tt.want)
		if got := OutputDir("/dest", filepath.Join("/in", tt.input)); got != want {
			t.Errorf("OutputDir(%q) = %q, want %q", tt.input, got, want)
		}
	}

	// Same base name always maps to the same directory.
	a := OutputDir("/dest", "/somewhere/x.gbff")
	b := OutputDir("/dest", "/elsewhere/x.gbff")
	if a != b {
		t.Errorf("mapping not a pure function of the base name: %q vs %q", a, b)
	}
}

// --- Helpers ---

func touch(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
