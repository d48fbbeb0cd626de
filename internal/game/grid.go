package game

import (
	"github.com/google/uuid"
)

// Map owns the static tile layout and every live entity on it. The wall
// grid is immutable after load; the entity collections are mutated only
// by the engine's single tick goroutine.
type Map struct {
	Width    int // cells
	Height   int // cells
	CellSize float64

	wallGrid    [][]bool // wallGrid[row][col], true = wall
	walls       []*Wall
	player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	teleporter  *Teleporter
}

// NewMap creates an empty map of the given cell dimensions.
func NewMap(width, height int, cellSize float64) *Map {
	grid := make([][]bool, height)
	for row := range grid {
		grid[row] = make([]bool, width)
	}
	return &Map{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		wallGrid: grid,
	}
}

// cellRect returns the pixel rectangle covering the given cell.
func (m *Map) cellRect(pos GridPos) Rect {
	return Rect{
		X: float64(pos.Col) * m.CellSize,
		Y: float64(pos.Row) * m.CellSize,
		W: m.CellSize,
		H: m.CellSize,
	}
}

// AddWall places a static wall on the given cell.
func (m *Map) AddWall(pos GridPos) *Wall {
	w := &Wall{Object: newObject(KindWall, m.cellRect(pos))}
	m.wallGrid[pos.Row][pos.Col] = true
	m.walls = append(m.walls, w)
	return w
}

// SetPlayer places the player on the given cell.
func (m *Map) SetPlayer(pos GridPos) *Player {
	p := &Player{Object: newObject(KindPlayer, m.cellRect(pos)), Alive: true}
	m.player = p
	return p
}

// AddEnemy places an enemy of the given kind (KindWalker or KindTurret)
// on the given cell with a full shot cooldown.
func (m *Map) AddEnemy(kind Kind, pos GridPos, cooldown int) *Enemy {
	e := &Enemy{Object: newObject(kind, m.cellRect(pos)), Cooldown: cooldown}
	m.enemies = append(m.enemies, e)
	return e
}

// AddProjectile registers a projectile already positioned in pixel space.
func (m *Map) AddProjectile(rect Rect, trajectory Vec2) *Projectile {
	pr := &Projectile{Object: newObject(KindProjectile, rect), Trajectory: trajectory}
	m.projectiles = append(m.projectiles, pr)
	return pr
}

// SetTeleporter places the level exit on the given cell.
func (m *Map) SetTeleporter(pos GridPos) *Teleporter {
	t := &Teleporter{Object: newObject(KindTeleporter, m.cellRect(pos))}
	m.teleporter = t
	return t
}

// GetPlayer returns the player, or nil if none is on the map.
func (m *Map) GetPlayer() *Player { return m.player }

// GetEnemies returns the live enemies in placement order.
func (m *Map) GetEnemies() []*Enemy { return m.enemies }

// GetWalls returns every static wall.
func (m *Map) GetWalls() []*Wall { return m.walls }

// GetProjectiles returns the live projectiles.
func (m *Map) GetProjectiles() []*Projectile { return m.projectiles }

// GetTeleporter returns the level exit, or nil once consumed.
func (m *Map) GetTeleporter() *Teleporter { return m.teleporter }

// WallAt reports whether the given cell is a wall. Cells outside the
// grid count as walls so traversal never leaves the map.
func (m *Map) WallAt(pos GridPos) bool {
	if pos.Col < 0 || pos.Col >= m.Width || pos.Row < 0 || pos.Row >= m.Height {
		return true
	}
	return m.wallGrid[pos.Row][pos.Col]
}

// GetGridPosition converts a pixel point to its containing cell by
// integer division by the cell size.
func (m *Map) GetGridPosition(x, y float64) GridPos {
	return GridPos{Col: int(x / m.CellSize), Row: int(y / m.CellSize)}
}

// ObjectInBounds reports whether a rectangle lies fully within the
// map's pixel extent.
func (m *Map) ObjectInBounds(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 &&
		r.X+r.W <= float64(m.Width)*m.CellSize &&
		r.Y+r.H <= float64(m.Height)*m.CellSize
}

// RemoveObject deletes the entity with the given ID from its owning
// collection. Removing an absent entity is a no-op, never an error.
// Walls are never removed.
func (m *Map) RemoveObject(id uuid.UUID) {
	if m.player != nil && m.player.ID == id {
		m.player = nil
		return
	}
	if m.teleporter != nil && m.teleporter.ID == id {
		m.teleporter = nil
		return
	}
	for i, e := range m.enemies {
		if e.ID == id {
			m.enemies = append(m.enemies[:i], m.enemies[i+1:]...)
			return
		}
	}
	for i, pr := range m.projectiles {
		if pr.ID == id {
			m.projectiles = append(m.projectiles[:i], m.projectiles[i+1:]...)
			return
		}
	}
}

// EnemyCount returns the number of live enemies.
func (m *Map) EnemyCount() int { return len(m.enemies) }
