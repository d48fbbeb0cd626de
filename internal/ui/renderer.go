package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-knifefight/internal/game"
)

// Color palette
var (
	wallStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3a3a3a")).
			Foreground(lipgloss.Color("#555555"))

	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#1a1a2e"))

	playerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true)

	swordStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#ccccff")).
			Bold(true)

	walkerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	turretStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	shotStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#ffff44")).
			Bold(true)

	reflectedShotStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#1a1a2e")).
				Foreground(lipgloss.Color("#44ffff")).
				Bold(true)

	exitIdleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#666688"))

	exitActiveStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#ff44ff")).
			Bold(true)

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	victoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88")).
			Bold(true).
			Blink(true)
)

// RenderBoard converts a world snapshot into a styled terminal string.
func RenderBoard(snap *game.Snapshot) string {
	if snap == nil {
		return "Loading level..."
	}

	enemySet := make(map[game.GridPos]game.Kind)
	for _, en := range snap.Enemies {
		enemySet[en.Cell] = en.Kind
	}
	shotSet := make(map[game.GridPos]bool) // value: reflected
	for _, pr := range snap.Projectiles {
		shotSet[pr.Cell] = pr.Reflected
	}

	var rows []string
	for row := 0; row < snap.Height; row++ {
		var cells []string
		for col := 0; col < snap.Width; col++ {
			pos := game.GridPos{Col: col, Row: row}
			cells = append(cells, renderCell(snap, pos, enemySet, shotSet))
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return strings.Join(rows, "\n")
}

// renderCell renders a single cell, two characters wide for a
// square-ish appearance.
// Priority: player > sword > projectile > enemy > teleporter > tile.
func renderCell(
	snap *game.Snapshot,
	pos game.GridPos,
	enemySet map[game.GridPos]game.Kind,
	shotSet map[game.GridPos]bool,
) string {
	if p := snap.Player; p != nil && p.Alive {
		if p.Cell == pos {
			return playerStyle.Render("██")
		}
		if p.Swinging && p.WeaponCell == pos {
			return swordStyle.Render("╳╳")
		}
	}

	if reflected, ok := shotSet[pos]; ok {
		if reflected {
			return reflectedShotStyle.Render("◆◆")
		}
		return shotStyle.Render("••")
	}

	if kind, ok := enemySet[pos]; ok {
		if kind == game.KindTurret {
			return turretStyle.Render("[]")
		}
		return walkerStyle.Render("><")
	}

	if tel := snap.Teleporter; tel != nil && tel.Cell == pos {
		if tel.Activated {
			// Pulse with the animation frame.
			if tel.Frame%10 < 5 {
				return exitActiveStyle.Render("()")
			}
			return exitActiveStyle.Render("◉◉")
		}
		return exitIdleStyle.Render("()")
	}

	if snap.Walls[pos.Row][pos.Col] {
		return wallStyle.Render("██")
	}
	return emptyStyle.Render("  ")
}

// RenderHUD renders the heads-up display beside the board.
func RenderHUD(snap *game.Snapshot, levelIndex int) string {
	var parts []string

	parts = append(parts, titleStyle.Render("🗡  KNIFE TO GUN FIGHT"))
	parts = append(parts, "")
	parts = append(parts, fmt.Sprintf("Level %d", levelIndex))

	if snap != nil {
		parts = append(parts, fmt.Sprintf("Enemies left: %d", len(snap.Enemies)))
		if tel := snap.Teleporter; tel != nil && tel.Activated {
			parts = append(parts, exitActiveStyle.Render("Exit open — get to it!"))
		} else {
			parts = append(parts, dimStyle.Render("Kill all enemies to open the exit"))
		}
	}

	parts = append(parts, "")
	parts = append(parts, dimStyle.Render("WASD/Arrows: Move | Space: Sword | Q: Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}

// RenderVictory renders the end-of-game screen shown once the level
// sequence is exhausted.
func RenderVictory() string {
	return victoryStyle.Render("🏆 YOU WIN — no more levels!") + "\n" +
		dimStyle.Render("Press Q to quit.") + "\n"
}
