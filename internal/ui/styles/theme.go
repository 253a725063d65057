package styles

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/gitref/internal/config"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color // titles, borders
	Accent  color.Color // active tab, focused card
	Success color.Color // copy checkmark, toast
	Error   color.Color // error lines
	Muted   color.Color // descriptions, inactive tabs
	Normal  color.Color // standard text
	Info    color.Color // example text
	Warning color.Color // doctor warnings
}

// themeFamily groups light and dark variants of a theme
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme // nil if no dark variant
}

// Preset themes - Dark variants
var (
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
		Info:    lipgloss.Color("244"), // gray
		Warning: lipgloss.Color("214"), // orange
	}

	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"),
		Accent:  lipgloss.Color("#ff79c6"),
		Success: lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
		Muted:   lipgloss.Color("#6272a4"),
		Normal:  lipgloss.Color("#f8f8f2"),
		Info:    lipgloss.Color("#8be9fd"),
		Warning: lipgloss.Color("#ffb86c"),
	}

	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Muted:   lipgloss.Color("#4c566a"),
		Normal:  lipgloss.Color("#eceff4"),
		Info:    lipgloss.Color("#81a1c1"),
		Warning: lipgloss.Color("#ebcb8b"),
	}

	GruvboxTheme = Theme{
		Primary: lipgloss.Color("#83a598"),
		Accent:  lipgloss.Color("#d3869b"),
		Success: lipgloss.Color("#b8bb26"),
		Error:   lipgloss.Color("#fb4934"),
		Muted:   lipgloss.Color("#665c54"),
		Normal:  lipgloss.Color("#ebdbb2"),
		Info:    lipgloss.Color("#8ec07c"),
		Warning: lipgloss.Color("#fabd2f"),
	}

	CatppuccinMochaTheme = Theme{
		Primary: lipgloss.Color("#89b4fa"),
		Accent:  lipgloss.Color("#f5c2e7"),
		Success: lipgloss.Color("#a6e3a1"),
		Error:   lipgloss.Color("#f38ba8"),
		Muted:   lipgloss.Color("#6c7086"),
		Normal:  lipgloss.Color("#cdd6f4"),
		Info:    lipgloss.Color("#94e2d5"),
		Warning: lipgloss.Color("#fab387"),
	}

	// NoneTheme renders without colors; bold and underline still apply
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
	}
)

// Preset themes - Light variants
var (
	NordLightTheme = Theme{
		Primary: lipgloss.Color("#5e81ac"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Muted:   lipgloss.Color("#9a9a9a"),
		Normal:  lipgloss.Color("#2e3440"),
		Info:    lipgloss.Color("#81a1c1"),
		Warning: lipgloss.Color("#d08770"),
	}

	GruvboxLightTheme = Theme{
		Primary: lipgloss.Color("#076678"),
		Accent:  lipgloss.Color("#8f3f71"),
		Success: lipgloss.Color("#79740e"),
		Error:   lipgloss.Color("#9d0006"),
		Muted:   lipgloss.Color("#928374"),
		Normal:  lipgloss.Color("#3c3836"),
		Info:    lipgloss.Color("#427b58"),
		Warning: lipgloss.Color("#b57614"),
	}

	CatppuccinLatteTheme = Theme{
		Primary: lipgloss.Color("#1e66f5"),
		Accent:  lipgloss.Color("#ea76cb"),
		Success: lipgloss.Color("#40a02b"),
		Error:   lipgloss.Color("#d20f39"),
		Muted:   lipgloss.Color("#9ca0b0"),
		Normal:  lipgloss.Color("#4c4f69"),
		Info:    lipgloss.Color("#179299"),
		Warning: lipgloss.Color("#fe640b"),
	}
)

var themeFamilies = map[string]themeFamily{
	"none":       {Light: &NoneTheme, Dark: &NoneTheme},
	"default":    {Dark: &DefaultTheme},
	"dracula":    {Dark: &DraculaTheme},
	"nord":       {Light: &NordLightTheme, Dark: &NordTheme},
	"gruvbox":    {Light: &GruvboxLightTheme, Dark: &GruvboxTheme},
	"catppuccin": {Light: &CatppuccinLatteTheme, Dark: &CatppuccinMochaTheme},
}

var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Init applies the configured theme and symbol set.
// Call this after loading config and before displaying any UI.
func Init(cfg config.ThemeConfig) {
	theme := selectTheme(cfg, detectDark)

	overrides := []struct {
		value string
		dst   *color.Color
	}{
		{cfg.Primary, &theme.Primary},
		{cfg.Accent, &theme.Accent},
		{cfg.Success, &theme.Success},
		{cfg.Error, &theme.Error},
		{cfg.Muted, &theme.Muted},
		{cfg.Normal, &theme.Normal},
		{cfg.Info, &theme.Info},
		{cfg.Warning, &theme.Warning},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.dst = lipgloss.Color(o.value)
		}
	}

	currentTheme = theme
	applyTheme(theme)
	SetNerdfont(cfg.Nerdfont)
}

func detectDark() bool {
	return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
}

// selectTheme picks the variant for the configured mode. isDark is only
// consulted in auto mode. Unknown names and modes were rejected by
// config validation and fall back to the default family and auto mode.
func selectTheme(cfg config.ThemeConfig, isDark func() bool) Theme {
	family, ok := themeFamilies[cfg.Name]
	if !ok {
		family = themeFamilies["default"]
	}

	var theme *Theme
	switch cfg.Mode {
	case "light":
		theme = family.Light
	case "dark":
		theme = family.Dark
	default:
		if isDark() {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	// Fall back if the requested variant doesn't exist
	if theme == nil {
		if family.Dark != nil {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	return *theme
}

// applyTheme updates all global style variables to use the given theme
func applyTheme(t Theme) {
	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Muted = t.Muted
	Normal = t.Normal
	Info = t.Info
	Warning = t.Warning

	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
	InfoStyle = lipgloss.NewStyle().Foreground(t.Info).Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)

	RoundedBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)

	HighlightStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Underline(true)

	TitleStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	SectionTitleStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginTop(1)
	CommandStyle = lipgloss.NewStyle().Foreground(t.Accent)
	NavItemStyle = lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1)
	NavActiveStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true).Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Muted).
		PaddingLeft(1)
	FocusedCardStyle = CardStyle.BorderForeground(t.Accent)

	ExampleStyle = lipgloss.NewStyle().Foreground(t.Info).PaddingLeft(2)
	ToastStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

// GetPreset returns a theme preset by name, or nil if not found.
// Families with both variants return the dark one.
func GetPreset(name string) *Theme {
	if family, ok := themeFamilies[name]; ok {
		if family.Dark != nil {
			return family.Dark
		}
		return family.Light
	}
	return nil
}

// PresetNames returns the available theme families
func PresetNames() []string {
	return config.ValidThemeNames
}
