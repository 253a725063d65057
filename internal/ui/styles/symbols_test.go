package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSetNerdfont(t *testing.T) {
	SetNerdfont(false)
	if NerdfontEnabled() {
		t.Error("expected nerdfont to be disabled")
	}
	if got := CurrentSymbols().Copied; got != "✓" {
		t.Errorf("expected default copied symbol, got %q", got)
	}

	SetNerdfont(true)
	if !NerdfontEnabled() {
		t.Error("expected nerdfont to be enabled")
	}
	if got := CurrentSymbols().Copied; got != "\uf00c" {
		t.Errorf("expected nerdfont copied symbol, got %q", got)
	}

	SetNerdfont(false)
}

func TestExpansionSymbol(t *testing.T) {
	SetNerdfont(false)

	if got := ExpansionSymbol(true); got != "▾" {
		t.Errorf("ExpansionSymbol(true) = %q, want ▾", got)
	}
	if got := ExpansionSymbol(false); got != "▸" {
		t.Errorf("ExpansionSymbol(false) = %q, want ▸", got)
	}
}

func TestCopyControl(t *testing.T) {
	SetNerdfont(false)

	tests := []struct {
		name   string
		label  string
		copied bool
		want   string
	}{
		{"idle shows label", "copy", false, "⧉ copy"},
		{"copied shows checkmark", "copy", true, "✓"},
		{"localized label", "કૉપિ", false, "⧉ કૉપિ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ansi.Strip(CopyControl(tt.label, tt.copied))
			if got != tt.want {
				t.Errorf("CopyControl(%q, %v) = %q, want %q", tt.label, tt.copied, got, tt.want)
			}
			if tt.copied && strings.Contains(got, tt.label) {
				t.Errorf("copied control should not show the label, got %q", got)
			}
		})
	}
}
