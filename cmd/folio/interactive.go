package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"folio/cmd/folio/app"
	"folio/cmd/folio/ui"
	"folio/internal/canvas"
	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/logging"
	"folio/internal/particles"
	"folio/internal/palette"
	"folio/internal/sections"
)

// brailleMinAlpha hides the faintest links, which only add noise at cell resolution.
const brailleMinAlpha = 0.35

// runInteractive opens the full-screen viewer.
func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Logging.ToLogging()); err != nil {
		return err
	}
	defer logging.CloseAll()

	portfolio, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}
	svc, err := contact.NewServiceFromConfig(cfg, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	backdrop, err := mountBackdrop(cfg)
	if err != nil {
		return err
	}

	theme := ui.DetectTheme()
	if cfg.UI.Theme != "" {
		theme = ui.ThemeByName(cfg.UI.Theme)
	}
	if startSection != "" {
		if _, ok := sections.KindFromID(startSection); !ok {
			return fmt.Errorf("unknown section %q (see folio sections)", startSection)
		}
	}
	resume := cfg.UI.ResumeURL
	if resume == "" {
		resume = portfolio.Profile.Resume
	}
	order := cfg.Tracker.Order
	if len(order) == 0 {
		order = sections.DefaultOrder()
	}

	model, err := app.New(app.Options{
		Portfolio:       portfolio,
		Theme:           theme,
		Order:           order,
		Offset:          cfg.Tracker.Offset,
		StartSection:    startSection,
		Commands:        palette.DefaultCommands(resume),
		Contact:         svc,
		Backdrop:        backdrop,
		ExternalFrames:  backdrop != nil && backdrop.Active(),
		CellWidth:       int(cfg.UI.CellWidth),
		CellHeight:      int(cfg.UI.CellHeight),
		ScrollFrequency: cfg.UI.ScrollFrequency,
		ScrollDamping:   cfg.UI.ScrollDamping,
		OpenURL:         openURL,
		Context:         ctx,
		Cancel:          cancel,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	var loop *particles.Loop
	if backdrop != nil && backdrop.Active() {
		loop = particles.NewLoop(cfg.GetFrameInterval(), func() {
			backdrop.Frame()
			p.Send(app.FrameMsg{})
		})
		loop.Start(ctx)
	}

	var watcher *content.Watcher
	if cfg.Content.Watch && cfg.Content.Path != "" {
		watcher, err = content.NewWatcher(cfg.Content.Path, func(p2 *content.Portfolio, err error) {
			p.Send(app.ContentMsg{Portfolio: p2, Err: err})
		})
		if err != nil {
			logging.ContentWarn("hot reload disabled: %v", err)
		} else if err := watcher.Start(ctx); err != nil {
			logging.ContentWarn("hot reload disabled: %v", err)
			watcher.Stop()
			watcher = nil
		}
	}

	logging.Boot("interactive session started (content=%q, transport=%s)", cfg.Content.Path, cfg.Contact.Transport)
	_, runErr := p.Run()

	cancel()
	if loop != nil {
		loop.Stop()
	}
	if watcher != nil {
		watcher.Stop()
	}
	logging.Boot("interactive session ended")

	if runErr != nil {
		return fmt.Errorf("interactive session failed: %w", runErr)
	}
	return nil
}

// mountBackdrop sets up the braille backdrop. The field starts empty and is
// populated by the first window size.
func mountBackdrop(cfg *config.Config) (*particles.Backdrop, error) {
	if !cfg.Backdrop.Enabled {
		return nil, nil
	}
	field, err := newField(cfg.Backdrop, 0)
	if err != nil {
		return nil, err
	}
	cw, ch := int(cfg.UI.CellWidth), int(cfg.UI.CellHeight)
	return particles.Mount(field, 0, 0, func() (particles.Surface, error) {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, fmt.Errorf("stdout is not a terminal: %w", particles.ErrNoSurface)
		}
		return canvas.NewBraille(cw, ch, brailleMinAlpha), nil
	}), nil
}
