// cmd/kadry/main.go
//
// Entry point for the kadry personnel register. Running `kadry` in a
// directory initializes its .kadry folder, restores the register from the
// data file and opens the interactive TUI.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okovalenko/kadry/internal/config"
	"github.com/okovalenko/kadry/internal/journal"
	"github.com/okovalenko/kadry/internal/logging"
	"github.com/okovalenko/kadry/internal/personnel"
	"github.com/okovalenko/kadry/internal/storage"
	"github.com/okovalenko/kadry/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "kadry: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	projectDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	if err := config.InitKadryDir(projectDir); err != nil {
		return fmt.Errorf("initialize %s directory: %w", config.KadryDir, err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return err
	}

	logger, err := logging.New(projectDir)
	if err != nil {
		return err
	}
	defer logger.Close()

	var jrnl *journal.Journal
	if cfg.JournalEnabled() {
		jrnl, err = journal.New(cfg.JournalPath())
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
	}

	store := personnel.NewStore(
		storage.NewJSONFile(cfg.DataFilePath()),
		personnel.WithOpLog(jrnl),
	)
	notes, err := store.Load()
	if err != nil {
		if errors.Is(err, personnel.ErrIO) {
			logger.Errorf("load register: %v", err)
		}
		return fmt.Errorf("load register from %s: %w", cfg.DataFilePath(), err)
	}
	for _, note := range notes {
		logger.Printf("skipped record %s: %s", note.RecordID, note.Reason)
	}
	logger.Printf("register opened from %s", cfg.DataFilePath())

	p := tea.NewProgram(tui.NewApp(store, jrnl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Errorf("tui: %v", err)
		return fmt.Errorf("run interface: %w", err)
	}
	return nil
}
