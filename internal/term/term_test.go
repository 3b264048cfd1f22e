package term

import (
	"testing"

	"github.com/seqworks/asbatch/internal/config"
)

func TestConfigure(t *testing.T) {
	defer Configure(config.ColorNever)

	Configure(config.ColorAlways)
	if !Enabled() {
		t.Fatal("colors must be enabled with ColorAlways")
	}
	if Red == "" || NC == "" {
		t.Error("color variables must be set when enabled")
	}

	Configure(config.ColorNever)
	if Enabled() {
		t.Fatal("colors must be disabled with ColorNever")
	}
	if Red != "" || Green != "" || Orange != "" || NC != "" {
		t.Error("color variables must all be empty when disabled")
	}
}

func TestAutoRespectsNoColor(t *testing.T) {
	defer Configure(config.ColorNever)

	t.Setenv("NO_COLOR", "1")
	Configure(config.ColorAuto)
	if Enabled() {
		t.Error("NO_COLOR must disable colors in auto mode")
	}
}

func TestIsTerminalNil(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("nil file is not a terminal")
	}
}
