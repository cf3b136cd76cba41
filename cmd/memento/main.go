package main

import (
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"memento/internal/config"
	"memento/internal/tui"
)

func main() {
	path := config.PathFromEnv()
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	// the screen belongs to the TUI, so logs only go to a file on request
	var out io.Writer = io.Discard
	if os.Getenv("MEMENTO_DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "memento")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("starting", "config", path, "birth", cfg.Birth.Format(config.DateLayout), "mode", cfg.Mode)

	m := tui.New(cfg, tui.WithLogger(logger))
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
