package game

import (
	"sync"
	"time"
)

// TickInput is the set of decoded input intents applied on one tick:
// held movement directions plus the discrete sword-swing event.
type TickInput struct {
	Move  map[Direction]bool
	Swing bool
}

// Engine is the authoritative simulation loop. One tick goroutine owns
// the map and all entity mutation; input arrives through a buffered
// action channel and state leaves as immutable snapshots.
type Engine struct {
	m       *Map
	cfg     Config
	pf      *Pathfinder
	status  Status
	actions chan Action
	done    chan struct{}
	stop    sync.Once
	mu      sync.Mutex
	snaps   chan Snapshot
}

// NewEngine creates an engine over a loaded map.
func NewEngine(m *Map, cfg Config) *Engine {
	return &Engine{
		m:       m,
		cfg:     cfg,
		pf:      NewPathfinder(m),
		status:  StatusRunning,
		actions: make(chan Action, 256),
		done:    make(chan struct{}),
		snaps:   make(chan Snapshot, 8),
	}
}

// Run starts the tick loop at the configured tick rate. This blocks
// until Stop() is called.
func (e *Engine) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(e.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-e.done:
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

// Stop halts the tick loop. Safe to call more than once.
func (e *Engine) Stop() {
	e.stop.Do(func() { close(e.done) })
}

// EnqueueAction queues a decoded input intent for the next tick.
func (e *Engine) EnqueueAction(a Action) {
	select {
	case e.actions <- a:
	default:
		// Drop action if buffer is full (prevents blocking)
	}
}

// Snapshots returns the channel of per-tick state snapshots consumed by
// the renderer.
func (e *Engine) Snapshots() <-chan Snapshot {
	return e.snaps
}

// Status returns the engine's current tick-sequence status.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// tick runs one fixed-order simulation step and publishes a snapshot.
// After a terminal status the world stops advancing but snapshots keep
// flowing, so a dropped frame never hides the outcome from the driver.
func (e *Engine) tick() {
	e.mu.Lock()
	if e.status == StatusRunning {
		e.step(e.drainActions())
	}
	snap := e.snapshotLocked()
	e.mu.Unlock()

	select {
	case e.snaps <- snap:
	default:
		// Renderer is behind; drop the frame.
	}
}

// drainActions folds all queued actions into this tick's intent set.
func (e *Engine) drainActions() TickInput {
	in := TickInput{Move: make(map[Direction]bool)}
	for {
		select {
		case a := <-e.actions:
			switch a.Type {
			case ActionMove:
				in.Move[a.Dir] = true
			case ActionSwing:
				in.Swing = true
			}
		default:
			return in
		}
	}
}

// playerMoveOrder fixes the order in which held directions are applied.
var playerMoveOrder = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// step executes one tick in the fixed subsystem order: teleporter
// update, player input, player-vs-projectile, teleporter entry, enemy
// pass, projectile pass, sword recheck.
func (e *Engine) step(in TickInput) {
	// 1. Teleporter activation follows the live enemy count.
	tel := e.m.GetTeleporter()
	if tel != nil {
		tel.Frame++
		if e.m.EnemyCount() == 0 {
			tel.Activated = true
		}
	}
	teleporterActive := tel != nil && tel.Activated

	player := e.m.GetPlayer()
	if player == nil || !player.Alive {
		e.status = StatusPlayerDied
		return
	}

	// 2. Player input: sword timer, then each held direction attempted
	// independently. The teleporter joins the allow-list only once
	// activated, so an inactive exit blocks like any other occupant.
	if player.SwingTicks > 0 {
		player.SwingTicks--
	}
	if in.Swing && player.SwingTicks == 0 {
		player.SwingTicks = e.cfg.SwingDuration
	}

	allowed := map[Kind]bool{}
	if teleporterActive {
		allowed[KindTeleporter] = true
	}
	enteredTeleporter := false
	for _, dir := range playerMoveOrder {
		if !in.Move[dir] {
			continue
		}
		player.Facing = dir
		dx, dy := dir.Delta()
		_, hit := e.m.TryMove(&player.Object,
			float64(dx)*e.cfg.PlayerSpeed,
			float64(dy)*e.cfg.PlayerSpeed,
			allowed)
		if hit != nil && hit.Kind == KindTeleporter {
			enteredTeleporter = true
		}
	}

	// 3. Walking into a projectile is fatal.
	for _, pr := range e.m.GetProjectiles() {
		if pr.Rect.Intersects(player.Rect) {
			player.Alive = false
			e.m.RemoveObject(pr.ID)
			e.status = StatusPlayerDied
			return
		}
	}

	// 4. Entering the activated exit completes the level; the
	// teleporter is consumed with the player standing on it.
	if enteredTeleporter && teleporterActive {
		e.m.RemoveObject(tel.ID)
		e.status = StatusLevelComplete
		return
	}

	// 5. Enemy decisions and movement.
	e.tickEnemies()

	// 6. Projectile travel, removal and reflection.
	reflected := e.tickProjectiles()
	if !player.Alive {
		e.status = StatusPlayerDied
		return
	}

	// 7. Player or enemy movement this tick may have created new
	// sword-vs-projectile contact not seen by the projectile pass.
	e.recheckSwordReflections(reflected)
}
