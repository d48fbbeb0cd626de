package game

import (
	"github.com/google/uuid"
)

// Kind identifies the variant of a game object. Collision allow-lists
// and behavior dispatch switch on it.
type Kind int

const (
	KindWall Kind = iota
	KindPlayer
	KindWalker // mobile enemy
	KindTurret // stationary enemy
	KindProjectile
	KindTeleporter
)

// Direction represents a cardinal movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit cell offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// GridPos is a cell coordinate on the level grid.
type GridPos struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Rect is an axis-aligned rectangle in continuous pixel space.
// It is the unit of every collision test in the game.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Intersects reports whether two rectangles overlap. Rectangles that
// merely touch along an edge do not count as overlapping.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Center returns the rectangle's center point.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Vec2 is a 2D vector, used for projectile trajectories in pixels per tick.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Object is the identity and geometry shared by every entity variant.
type Object struct {
	ID   uuid.UUID `json:"id"`
	Kind Kind      `json:"kind"`
	Rect Rect      `json:"rect"`
}

func newObject(kind Kind, rect Rect) Object {
	return Object{ID: uuid.New(), Kind: kind, Rect: rect}
}

// Player is the single player-controlled entity.
type Player struct {
	Object
	Alive      bool      `json:"alive"`
	Facing     Direction `json:"facing"`
	SwingTicks int       `json:"swing_ticks"` // >0 while the sword is out
}

// Swinging reports whether the player's sword is currently out.
func (p *Player) Swinging() bool { return p.SwingTicks > 0 }

// WeaponRect returns the sword's bounding rectangle, one cell in front
// of the player's facing side, and whether it is active this tick.
func (p *Player) WeaponRect(cellSize float64) (Rect, bool) {
	if !p.Swinging() {
		return Rect{}, false
	}
	dx, dy := p.Facing.Delta()
	r := p.Rect
	r.X += float64(dx) * cellSize
	r.Y += float64(dy) * cellSize
	return r, true
}

// Enemy is a hostile unit, either a Walker (mobile) or a Turret (stationary).
type Enemy struct {
	Object
	Cooldown int  `json:"cooldown"` // ticks until the next shot is allowed
	Target   Vec2 `json:"target"`   // last known player center, in pixels
}

// Stationary reports whether the enemy never moves.
func (e *Enemy) Stationary() bool { return e.Kind == KindTurret }

// Projectile is a shot traveling along a fixed trajectory. Once
// reflected by the player's sword it can kill enemies.
type Projectile struct {
	Object
	Trajectory Vec2 `json:"trajectory"`
	Reflected  bool `json:"reflected"`
}

// Teleporter is the level exit. It activates once every enemy on the
// map is dead.
type Teleporter struct {
	Object
	Activated bool `json:"activated"`
	Frame     int  `json:"frame"` // animation counter for the renderer
}

// Wall is an immovable static obstacle occupying one grid cell.
type Wall struct {
	Object
}

// ActionType represents the type of player action.
type ActionType int

const (
	ActionMove ActionType = iota
	ActionSwing
)

// Action represents a decoded player input intent.
type Action struct {
	Type ActionType
	Dir  Direction // Only relevant for ActionMove
}

// Status represents the outcome of the current tick sequence.
type Status int

const (
	StatusRunning Status = iota
	StatusPlayerDied
	StatusLevelComplete
)

// Config holds configurable parameters for the simulation.
type Config struct {
	CellSize        float64 `json:"cell_size"`        // pixels per grid cell
	TickRate        int     `json:"tick_rate"`        // ticks per second
	PlayerSpeed     float64 `json:"player_speed"`     // pixels per tick
	EnemySpeed      float64 `json:"enemy_speed"`      // pixels per tick
	ProjectileSpeed float64 `json:"projectile_speed"` // pixels per tick
	ShootCooldown   int     `json:"shoot_cooldown"`   // ticks between enemy shots
	SwingDuration   int     `json:"swing_duration"`   // ticks a sword swing stays active
	RetreatRange    float64 `json:"retreat_range"`    // closer than this, walkers back off
	ApproachRange   float64 `json:"approach_range"`   // farther than this, walkers close in
}

// DefaultConfig returns a sensible default simulation configuration.
func DefaultConfig() Config {
	return Config{
		CellSize:        32,
		TickRate:        20,
		PlayerSpeed:     8,
		EnemySpeed:      4,
		ProjectileSpeed: 12,
		ShootCooldown:   40,
		SwingDuration:   6,
		RetreatRange:    3.5,
		ApproachRange:   4.5,
	}
}
