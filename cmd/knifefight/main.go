package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/amalg/go-knifefight/internal/game"
	"github.com/amalg/go-knifefight/internal/level"
	"github.com/amalg/go-knifefight/internal/ui"
)

func main() {
	// Optional .env overrides; a missing file is fine.
	_ = godotenv.Load()

	levelsDir := flag.String("levels", envOr("KNIFEFIGHT_LEVELS", "levels"), "Directory containing level map files")
	startLevel := flag.Int("level", 1, "Level index to start from")
	flag.Parse()

	cfg := game.DefaultConfig()
	if v := os.Getenv("KNIFEFIGHT_TICK_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil || rate <= 0 {
			fmt.Fprintf(os.Stderr, "Invalid KNIFEFIGHT_TICK_RATE %q\n", v)
			os.Exit(1)
		}
		cfg.TickRate = rate
	}

	model := ui.NewModel(level.NewLoader(*levelsDir), cfg, *startLevel)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
