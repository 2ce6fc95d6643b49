package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for terminal output
type Theme struct {
	Name    string
	Primary color.Color // titles and headers
	Accent  color.Color // highlighted values
	Success color.Color // checkmarks, completed tasks
	Error   color.Color // errors, overdue dates
	Muted   color.Color // ids, canceled tasks
	Normal  color.Color // standard text
	Info    color.Color // hints
	Warning color.Color // warnings, due-soon dates
}

var (
	// DefaultTheme is the 256-color scheme.
	DefaultTheme = Theme{
		Name:    "default",
		Primary: lipgloss.Color("62"),  // cyan/teal
		Accent:  lipgloss.Color("212"), // pink/magenta
		Success: lipgloss.Color("82"),  // green
		Error:   lipgloss.Color("196"), // red
		Muted:   lipgloss.Color("240"), // dark gray
		Normal:  lipgloss.Color("252"), // light gray
		Info:    lipgloss.Color("244"), // gray
		Warning: lipgloss.Color("214"), // orange
	}

	// MonoTheme renders without any colors (uses terminal defaults).
	// Formatting (bold/italic) is preserved.
	MonoTheme = Theme{
		Name:    "mono",
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

var themes = map[string]Theme{
	"default": DefaultTheme,
	"mono":    MonoTheme,
}

// currentTheme holds the active theme
var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Init activates the named theme. Unknown names fall back to the default;
// config validation reports them before this is called.
func Init(name string) {
	theme, ok := themes[name]
	if !ok {
		theme = DefaultTheme
	}
	currentTheme = theme
	applyTheme(theme)

	if theme.Name == "mono" {
		currentSymbols = asciiSymbols
	} else {
		currentSymbols = defaultSymbols
	}
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
	HeaderStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
}
