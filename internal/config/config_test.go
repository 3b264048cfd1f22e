package config

import (
	"path/filepath"
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/data/genomes", "/data/genomes"},
		{"single trailing slash", "/data/genomes/", "/data/genomes"},
		{"multiple trailing slashes", "/data/genomes///", "/data/genomes"},
		{"root path", "/", "/"},
		{"relative path", "reference", "reference"},
		{"relative with slash", "reference/", "reference"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Strictness(t *testing.T) {
	tests := []struct {
		name    string
		s       Strictness
		wantErr bool
	}{
		{"strict is valid", StrictnessStrict, false},
		{"relaxed is valid", StrictnessRelaxed, false},
		{"loose is valid", StrictnessLoose, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "paranoid", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Strictness = tt.s
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "sometimes", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Ranges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with zero workers: want error")
	}

	cfg = DefaultConfig()
	cfg.Timeout = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with negative timeout: want error")
	}

	cfg = DefaultConfig()
	cfg.Tool = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with empty tool: want error")
	}

	cfg = DefaultConfig()
	cfg.SourceDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with empty source dir: want error")
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		dst     string
		wantErr bool
	}{
		{"disjoint", "/data/in", "/data/out", false},
		{"dest equals source", "/data/in", "/data/in", true},
		{"dest inside source", "/data/in", "/data/in/out", true},
		{"source inside dest is fine", "/data/out/in", "/data/out", false},
		{"sibling with shared prefix", "/data/input", "/data/inp", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ValidatePaths(tt.src, tt.dst)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v", tt.src, tt.dst, err, tt.wantErr)
			}
		})
	}
}

func TestResolvePaths_BaseDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseDir = "/work/batch"
	cfg.SourceDir = "../test-genomes/reference"
	cfg.DestDir = "../reference"

	if err := cfg.ResolvePaths(); err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	if want := filepath.Join("/work", "test-genomes", "reference"); cfg.SourceDir != want {
		t.Errorf("SourceDir = %q, want %q", cfg.SourceDir, want)
	}
	if want := filepath.Join("/work", "reference"); cfg.DestDir != want {
		t.Errorf("DestDir = %q, want %q", cfg.DestDir, want)
	}
}

func TestResolvePaths_AbsoluteUntouched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseDir = "/work/batch"
	cfg.SourceDir = "/abs/in/"
	cfg.DestDir = "/abs/out"

	if err := cfg.ResolvePaths(); err != nil {
		t.Fatalf("ResolvePaths: %v", err)
	}
	if cfg.SourceDir != "/abs/in" {
		t.Errorf("SourceDir = %q, want /abs/in", cfg.SourceDir)
	}
	if cfg.DestDir != "/abs/out" {
		t.Errorf("DestDir = %q, want /abs/out", cfg.DestDir)
	}
}
