// Package tui provides the interactive Bubble Tea habit grid.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/habitgrid/internal/cli"
	"github.com/theirongolddev/habitgrid/internal/config"
	"github.com/theirongolddev/habitgrid/internal/habit"
	"github.com/theirongolddev/habitgrid/internal/progress"
	"github.com/theirongolddev/habitgrid/internal/tui/components"
	"github.com/theirongolddev/habitgrid/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model. The habit store owns all persistent
// state; App holds only view state (cursor, transient inputs, overlays).
type App struct {
	store *habit.Store

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Grid cursor: habit row and zero-based day column.
	row int
	col int

	// Add-habit input. Transient: discarded on submit or cancel, never
	// persisted.
	adding    bool
	nameInput textinput.Model

	// Delete confirmation for the selected habit.
	confirmRemove bool

	// Last persistence error, surfaced in the status bar.
	notice string

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	settings settingsState
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates the TUI model over an already-loaded habit store.
func NewApp(store *habit.Store) App {
	a := App{
		store:     store,
		needSetup: !config.Exists(),
	}
	if a.needSetup {
		a.setupVals = setupValues{Theme: theme.Active.Name, SeedDefaults: true}
		a.setupForm = newSetupForm(&a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Add-habit input intercepts all keys while open
		if a.adding {
			return a.updateAddInput(msg)
		}

		// Delete confirmation
		if a.confirmRemove {
			return a.updateConfirmRemove(key)
		}

		// Settings tab text editing
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle / dismiss
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Month navigation works from any tab.
		switch key {
		case "[", "<", "pgup":
			a.changeMonth(-1)
			return a, nil
		case "]", ">", "pgdown":
			a.changeMonth(1)
			return a, nil
		case "t":
			now := a.store.Now()
			if err := a.store.LoadMonth(now.Year(), now.Month()); err != nil {
				a.notice = err.Error()
			}
			a.clampCursor()
			return a, nil
		}

		// Tab navigation
		switch key {
		case "g":
			a.activeTab = tabGrid
			return a, nil
		case "r":
			a.activeTab = tabTrends
			return a, nil
		case "x":
			a.activeTab = tabSettings
			return a, nil
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		}

		switch a.activeTab {
		case tabGrid:
			return a.updateGrid(key)
		case tabSettings:
			return a.updateSettings(key)
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.adding {
		var cmd tea.Cmd
		a.nameInput, cmd = a.nameInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

const (
	tabGrid = iota
	tabTrends
	tabSettings
)

func (a *App) changeMonth(delta int) {
	if err := a.store.ChangeMonth(delta); err != nil {
		a.notice = err.Error()
	} else {
		a.notice = ""
	}
	a.clampCursor()
}

func (a *App) clampCursor() {
	snap := a.store.Snapshot()
	if a.row >= len(snap.Habits) {
		a.row = len(snap.Habits) - 1
	}
	if a.row < 0 {
		a.row = 0
	}
	days := progress.DaysInMonth(a.store.Year(), a.store.Month())
	if a.col >= days {
		a.col = days - 1
	}
	if a.col < 0 {
		a.col = 0
	}
}

func (a App) updateGrid(key string) (tea.Model, tea.Cmd) {
	snap := a.store.Snapshot()
	days := progress.DaysInMonth(a.store.Year(), a.store.Month())

	switch key {
	case "h", "left":
		if a.col > 0 {
			a.col--
		}
	case "l", "right":
		if a.col < days-1 {
			a.col++
		}
	case "j", "down":
		if a.row < len(snap.Habits)-1 {
			a.row++
		}
	case "k", "up":
		if a.row > 0 {
			a.row--
		}
	case "0", "home":
		a.col = 0
	case "$", "end":
		a.col = days - 1
	case " ", "space", "enter":
		if a.row < len(snap.Habits) {
			if err := a.store.ToggleDay(snap.Habits[a.row].ID, a.col+1); err != nil {
				a.notice = err.Error()
			} else {
				a.notice = ""
			}
		}
	case "a":
		a.adding = true
		a.nameInput = newNameInput()
		a.nameInput.Focus()
		return a, a.nameInput.Cursor.BlinkCmd()
	case "d":
		if a.row < len(snap.Habits) {
			a.confirmRemove = true
		}
	}
	return a, nil
}

func newNameInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "New habit name"
	ti.CharLimit = 40
	ti.Width = 30
	return ti
}

func (a App) updateAddInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := a.nameInput.Value()
		a.adding = false
		a.nameInput.SetValue("")
		if _, err := a.store.AddHabit(name); err != nil {
			// A blank name is silently dropped; anything else is a
			// persistence failure worth surfacing.
			if !errors.Is(err, habit.ErrEmptyName) {
				a.notice = err.Error()
			}
			return a, nil
		}
		a.notice = ""
		a.clampCursor()
		return a, nil
	case "esc":
		a.adding = false
		a.nameInput.SetValue("")
		return a, nil
	}

	var cmd tea.Cmd
	a.nameInput, cmd = a.nameInput.Update(msg)
	return a, cmd
}

func (a App) updateConfirmRemove(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		snap := a.store.Snapshot()
		if a.row < len(snap.Habits) {
			if err := a.store.RemoveHabit(snap.Habits[a.row].ID); err != nil {
				a.notice = err.Error()
			} else {
				a.notice = ""
			}
		}
		a.confirmRemove = false
		a.clampCursor()
	case "n", "N", "esc":
		a.confirmRemove = false
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  habitgrid needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	monthStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	monthLine := " " + titleStyle.Render("◈ habitgrid") +
		dimStyle.Render(" · ") +
		monthStyle.Render(cli.MonthLabel(a.store.Year(), a.store.Month()))

	header := components.RenderTabBar(a.activeTab, w) + "\n" + monthLine + "\n"

	statusBar := components.RenderStatusBar(w, a.notice)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabGrid:
		content = a.renderGridTab(cw)
	case tabTrends:
		content = a.renderTrendsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Left, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"g r x", "Jump to tab"},
		{"tab", "Next tab"},
		{"h j k l", "Move around the grid"},
		{"[ ]", "Previous / next month"},
		{"t", "Jump to the current month"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"space", "Toggle the selected day"},
		{"a", "Add a habit"},
		{"d", "Delete the selected habit"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
