package styles

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/gitref/internal/config"
)

func dark() bool  { return true }
func light() bool { return false }

func TestInit_DefaultTheme(t *testing.T) {
	Init(config.ThemeConfig{Mode: "dark"})

	theme := Current()
	if theme.Primary != lipgloss.Color("62") {
		t.Errorf("expected default primary color 62, got %v", theme.Primary)
	}
	if theme.Accent != lipgloss.Color("212") {
		t.Errorf("expected default accent color 212, got %v", theme.Accent)
	}
}

func TestSelectTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    config.ThemeConfig
		isDark func() bool
		want   Theme
	}{
		{"dracula dark", config.ThemeConfig{Name: "dracula", Mode: "dark"}, dark, DraculaTheme},
		{"nord light", config.ThemeConfig{Name: "nord", Mode: "light"}, dark, NordLightTheme},
		{"gruvbox auto on light", config.ThemeConfig{Name: "gruvbox", Mode: "auto"}, light, GruvboxLightTheme},
		{"catppuccin auto on dark", config.ThemeConfig{Name: "catppuccin"}, dark, CatppuccinMochaTheme},
		{"dark only family in light mode", config.ThemeConfig{Name: "dracula", Mode: "light"}, dark, DraculaTheme},
		{"unknown name", config.ThemeConfig{Name: "solarized", Mode: "dark"}, dark, DefaultTheme},
		{"none", config.ThemeConfig{Name: "none", Mode: "light"}, dark, NoneTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := selectTheme(tt.cfg, tt.isDark); got != tt.want {
				t.Errorf("selectTheme() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSelectTheme_ExplicitModeSkipsDetection(t *testing.T) {
	t.Parallel()

	called := false
	detect := func() bool {
		called = true
		return true
	}
	selectTheme(config.ThemeConfig{Name: "nord", Mode: "light"}, detect)
	if called {
		t.Error("background detection ran for explicit mode")
	}
}

func TestInit_PresetWithOverride(t *testing.T) {
	Init(config.ThemeConfig{
		Name:   "dracula",
		Mode:   "dark",
		Accent: "#123456",
	})
	defer Init(config.ThemeConfig{Mode: "dark"})

	theme := Current()
	if theme.Primary != lipgloss.Color("#bd93f9") {
		t.Errorf("expected dracula primary color, got %v", theme.Primary)
	}
	if theme.Accent != lipgloss.Color("#123456") {
		t.Errorf("expected custom accent color #123456, got %v", theme.Accent)
	}
}

func TestInit_Nerdfont(t *testing.T) {
	Init(config.ThemeConfig{Mode: "dark", Nerdfont: true})
	defer Init(config.ThemeConfig{Mode: "dark"})

	if !NerdfontEnabled() {
		t.Error("expected nerdfont to be enabled by Init")
	}
}

func TestGetPreset(t *testing.T) {
	t.Parallel()

	if GetPreset("dracula") == nil {
		t.Error("expected dracula preset to exist")
	}
	if got := GetPreset("nord"); got == nil || *got != NordTheme {
		t.Error("expected nord preset to return the dark variant")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetNamesHaveFamilies(t *testing.T) {
	t.Parallel()

	for _, name := range PresetNames() {
		if _, ok := themeFamilies[name]; !ok {
			t.Errorf("preset %q has no theme family", name)
		}
	}
}

func TestApplyTheme_UpdatesGlobalStyles(t *testing.T) {
	Init(config.ThemeConfig{Name: "dracula", Mode: "dark"})
	defer Init(config.ThemeConfig{Mode: "dark"})

	if Primary != lipgloss.Color("#bd93f9") {
		t.Errorf("expected Primary to be updated to dracula color, got %v", Primary)
	}
	if PrimaryStyle.GetForeground() != lipgloss.Color("#bd93f9") {
		t.Errorf("expected PrimaryStyle foreground to be updated, got %v",
			PrimaryStyle.GetForeground())
	}
	if NavActiveStyle.GetForeground() != lipgloss.Color("#ff79c6") {
		t.Errorf("expected NavActiveStyle foreground to be dracula accent, got %v",
			NavActiveStyle.GetForeground())
	}
}
