// Package level loads grid layouts from text map files and turns them
// into populated game maps.
//
// A layout is a rectangular character grid:
//
//	#   wall
//	P   player start (exactly one)
//	w   walker enemy
//	t   turret enemy
//	E   teleporter / level exit (at most one)
//	' ' empty floor
package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amalg/go-knifefight/internal/game"
)

// ErrNoSuchLevel marks a level index with no layout file behind it.
// The driver treats it as the end of the level sequence, not a fault.
var ErrNoSuchLevel = errors.New("no such level")

// Loader resolves level indexes to layout files in one directory.
// Levels are named level1.txt, level2.txt, and so on.
type Loader struct {
	dir string
}

// NewLoader creates a loader over the given levels directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Path returns the layout filepath for a level index.
func (l *Loader) Path(index int) string {
	return filepath.Join(l.dir, fmt.Sprintf("level%d.txt", index))
}

// Load reads and parses the layout for the given level index.
func (l *Loader) Load(index int, cfg game.Config) (*game.Map, error) {
	data, err := os.ReadFile(l.Path(index))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("level %d: %w", index, ErrNoSuchLevel)
	}
	if err != nil {
		return nil, fmt.Errorf("read level %d: %w", index, err)
	}
	m, err := Parse(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", index, err)
	}
	return m, nil
}

// Parse builds a map from layout text. Any structural inconsistency is
// an error: the game never runs on a repaired grid.
func Parse(data []byte, cfg game.Config) (*game.Map, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("empty layout")
	}

	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("non-rectangular layout: row %d has %d cells, want %d", i, len(line), width)
		}
	}

	m := game.NewMap(width, len(lines), cfg.CellSize)
	playerCount := 0
	for row, line := range lines {
		for col, ch := range line {
			pos := game.GridPos{Col: col, Row: row}
			switch ch {
			case ' ':
			case '#':
				m.AddWall(pos)
			case 'P':
				playerCount++
				if playerCount > 1 {
					return nil, fmt.Errorf("duplicate player at (%d,%d)", col, row)
				}
				m.SetPlayer(pos)
			case 'w':
				m.AddEnemy(game.KindWalker, pos, cfg.ShootCooldown)
			case 't':
				m.AddEnemy(game.KindTurret, pos, cfg.ShootCooldown)
			case 'E':
				if m.GetTeleporter() != nil {
					return nil, fmt.Errorf("duplicate teleporter at (%d,%d)", col, row)
				}
				m.SetTeleporter(pos)
			default:
				return nil, fmt.Errorf("unknown layout character %q at (%d,%d)", ch, col, row)
			}
		}
	}

	if playerCount == 0 {
		return nil, fmt.Errorf("layout has no player start")
	}
	return m, nil
}
