package game

// Snapshot is an immutable per-tick view of the world handed to the
// renderer. Positions are pre-resolved to grid cells; the presentation
// layer never touches live entities.
type Snapshot struct {
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	Walls       [][]bool         `json:"walls"` // walls[row][col]
	Player      *PlayerView      `json:"player,omitempty"`
	Enemies     []EnemyView      `json:"enemies"`
	Projectiles []ProjectileView `json:"projectiles"`
	Teleporter  *TeleporterView  `json:"teleporter,omitempty"`
	Status      Status           `json:"status"`
}

// PlayerView is the renderer's view of the player.
type PlayerView struct {
	Cell       GridPos   `json:"cell"`
	Alive      bool      `json:"alive"`
	Swinging   bool      `json:"swinging"`
	WeaponCell GridPos   `json:"weapon_cell"` // valid only while swinging
	Facing     Direction `json:"facing"`
}

// EnemyView is the renderer's view of one enemy.
type EnemyView struct {
	Kind Kind    `json:"kind"`
	Cell GridPos `json:"cell"`
}

// ProjectileView is the renderer's view of one projectile.
type ProjectileView struct {
	Cell      GridPos `json:"cell"`
	Reflected bool    `json:"reflected"`
}

// TeleporterView is the renderer's view of the level exit.
type TeleporterView struct {
	Cell      GridPos `json:"cell"`
	Activated bool    `json:"activated"`
	Frame     int     `json:"frame"`
}

// snapshotLocked builds a deep copy of the visible state.
// MUST be called while e.mu is held.
func (e *Engine) snapshotLocked() Snapshot {
	m := e.m

	walls := make([][]bool, m.Height)
	for row := range walls {
		walls[row] = make([]bool, m.Width)
		copy(walls[row], m.wallGrid[row])
	}

	snap := Snapshot{
		Width:  m.Width,
		Height: m.Height,
		Walls:  walls,
		Status: e.status,
	}

	if p := m.GetPlayer(); p != nil {
		cx, cy := p.Rect.Center()
		view := PlayerView{
			Cell:   m.GetGridPosition(cx, cy),
			Alive:  p.Alive,
			Facing: p.Facing,
		}
		if weapon, ok := p.WeaponRect(m.CellSize); ok {
			wx, wy := weapon.Center()
			view.Swinging = true
			view.WeaponCell = m.GetGridPosition(wx, wy)
		}
		snap.Player = &view
	}

	for _, en := range m.GetEnemies() {
		cx, cy := en.Rect.Center()
		snap.Enemies = append(snap.Enemies, EnemyView{
			Kind: en.Kind,
			Cell: m.GetGridPosition(cx, cy),
		})
	}

	for _, pr := range m.GetProjectiles() {
		cx, cy := pr.Rect.Center()
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Cell:      m.GetGridPosition(cx, cy),
			Reflected: pr.Reflected,
		})
	}

	if tel := m.GetTeleporter(); tel != nil {
		cx, cy := tel.Rect.Center()
		snap.Teleporter = &TeleporterView{
			Cell:      m.GetGridPosition(cx, cy),
			Activated: tel.Activated,
			Frame:     tel.Frame,
		}
	}

	return snap
}
