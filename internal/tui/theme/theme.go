// Package theme defines color themes for the habitgrid TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // main app background
	Surface      lipgloss.Color // card/panel backgrounds
	SurfaceAlt   lipgloss.Color // alternating week bands, selected rows
	Border       lipgloss.Color // subtle borders
	BorderAccent lipgloss.Color // accent borders for focus states
	TextDim      lipgloss.Color // lowest contrast text (hints, future days)
	TextMuted    lipgloss.Color // secondary text (labels, headers)
	TextPrimary  lipgloss.Color // primary content text
	Accent       lipgloss.Color // primary accent (cursor, active tab)
	AccentBright lipgloss.Color // brighter accent for emphasis
	Green        lipgloss.Color
	Red          lipgloss.Color
	Yellow       lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceAlt:   lipgloss.Color("#282726"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Green:        lipgloss.Color("#879A39"),
	Red:          lipgloss.Color("#D14D41"),
	Yellow:       lipgloss.Color("#D0A215"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Background:   lipgloss.Color("#1E1E2E"),
	Surface:      lipgloss.Color("#313244"),
	SurfaceAlt:   lipgloss.Color("#45475A"),
	Border:       lipgloss.Color("#585B70"),
	BorderAccent: lipgloss.Color("#89B4FA"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentBright: lipgloss.Color("#B4D0FB"),
	Green:        lipgloss.Color("#A6E3A1"),
	Red:          lipgloss.Color("#F38BA8"),
	Yellow:       lipgloss.Color("#F9E2AF"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceAlt:   lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Green:        lipgloss.Color("2"),
	Red:          lipgloss.Color("1"),
	Yellow:       lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
