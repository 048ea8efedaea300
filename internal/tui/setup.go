package tui

import (
	"github.com/theirongolddev/habitgrid/internal/config"
	"github.com/theirongolddev/habitgrid/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run form answers.
type setupValues struct {
	Theme        string
	SeedDefaults bool
}

// newSetupForm builds the first-run wizard shown when no config file
// exists yet.
func newSetupForm(vals *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to habitgrid").
				Description("A monthly habit tracker for your terminal."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewConfirm().
				Title("Keep the starter habits?").
				Description("Meditation, Workout, Read 30 min, No sugar").
				Affirmative("Keep").
				Negative("Start empty").
				Value(&vals.SeedDefaults),
		),
	)
}

// applySetup persists the wizard's answers. Declining the starter set
// removes the seeded habits through the normal removal path, so their
// completion maps go with them.
func (a *App) applySetup() {
	theme.SetActive(a.setupVals.Theme)

	cfg := loadConfigOrDefault()
	cfg.Appearance.Theme = a.setupVals.Theme
	if err := config.Save(cfg); err != nil {
		a.notice = err.Error()
	}

	if !a.setupVals.SeedDefaults {
		for _, h := range a.store.Snapshot().Habits {
			if err := a.store.RemoveHabit(h.ID); err != nil {
				a.notice = err.Error()
			}
		}
		a.clampCursor()
	}
}
