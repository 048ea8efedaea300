package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/habitgrid/internal/config"
	"github.com/theirongolddev/habitgrid/internal/store"
	"github.com/theirongolddev/habitgrid/internal/tui/components"
	"github.com/theirongolddev/habitgrid/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldDataDir
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" after a successful write
	saveErr error // non-nil if the last save failed
}

func (a App) updateSettings(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		a.settings.saved = false
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		a.settings.saved = false
	case "enter":
		return a.settingsActivate()
	}
	return a, nil
}

// settingsActivate handles enter on a field: the theme field cycles and
// saves in place, the data dir field opens a text input.
func (a App) settingsActivate() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()

	switch a.settings.cursor {
	case settingsFieldTheme:
		next := 0
		for i, th := range theme.All {
			if th.Name == theme.Active.Name {
				next = (i + 1) % len(theme.All)
				break
			}
		}
		theme.SetActive(theme.All[next].Name)
		cfg.Appearance.Theme = theme.All[next].Name
		a.settings.saveErr = config.Save(cfg)
		a.settings.saved = a.settings.saveErr == nil
		return a, nil

	case settingsFieldDataDir:
		ti := textinput.New()
		ti.Placeholder = store.DataDir()
		ti.CharLimit = 256
		ti.Width = 50
		ti.SetValue(cfg.General.DataDir)
		ti.Focus()
		a.settings.input = ti
		a.settings.editing = true
		a.settings.saved = false
		return a, ti.Cursor.BlinkCmd()
	}
	return a, nil
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cfg := loadConfigOrDefault()
		cfg.General.DataDir = strings.TrimSpace(a.settings.input.Value())
		a.settings.saveErr = config.Save(cfg)
		a.settings.saved = a.settings.saveErr == nil
		a.settings.editing = false
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	redStyle := lipgloss.NewStyle().Foreground(t.Red)

	dataDir := cfg.General.DataDir
	if dataDir == "" {
		dataDir = store.DataDir() + dimStyle.Render(" (default)")
	}

	fields := []struct{ label, value, hint string }{
		{"Theme", theme.Active.Name, "enter cycles themes"},
		{"Data dir", dataDir, "enter to edit, applies on next launch"},
	}

	var b strings.Builder
	for i, f := range fields {
		marker := "  "
		if i == a.settings.cursor {
			marker = lipgloss.NewStyle().Foreground(t.Accent).Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", f.label)))

		if a.settings.editing && i == a.settings.cursor {
			b.WriteString(a.settings.input.View())
		} else {
			b.WriteString(valueStyle.Render(f.value))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("             " + f.hint))
		b.WriteString("\n\n")
	}

	if a.settings.saveErr != nil {
		b.WriteString(redStyle.Render(fmt.Sprintf("  save failed: %v", a.settings.saveErr)))
		b.WriteString("\n")
	} else if a.settings.saved {
		b.WriteString(greenStyle.Render("  Saved."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Config: " + config.ConfigPath()))

	return components.ContentCard("Settings", b.String(), cw)
}
