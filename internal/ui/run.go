package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/nibzard/wellness-go/internal/savedstate"
)

// RunTUI runs the screen until the user quits or ctx is cancelled. The final
// screen's restorable state is written to store when store is non-nil.
func RunTUI(ctx context.Context, opts Options, store savedstate.Store, saved *savedstate.Bundle) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	screen := NewScreen(opts, saved)
	program := tea.NewProgram(screen, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, runErr := program.Run()

	final, ok := finalModel.(*Screen)
	if !ok {
		final = screen
	}
	if store != nil {
		if err := SaveScreen(final, store); err != nil {
			return errors.Join(runErr, err)
		}
	}
	return runErr
}

// SaveScreen persists the screen's bundle to store.
func SaveScreen(s *Screen, store savedstate.Store) error {
	b := s.Bundle()
	if err := store.Save(b); err != nil {
		s.logger.Error("save state", "location", store.Location(), "err", err)
		return fmt.Errorf("save state: %w", err)
	}
	s.logger.Info("state saved", "location", store.Location(), "keys", b.Len())
	return nil
}

// Render writes one frame of a screen built from opts and saved to w.
func Render(w io.Writer, opts Options, saved *savedstate.Bundle) error {
	_, err := io.WriteString(w, NewScreen(opts, saved).View())
	return err
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
