package game

import (
	"github.com/google/uuid"
)

// behavior is a walker's movement stance for the current tick, chosen
// from its straight-line distance to the player.
type behavior int

const (
	behaviorRetreat behavior = iota
	behaviorHold
	behaviorApproach
)

// classifyRange maps a grid distance to a stance. The retreat boundary
// is strict; the approach boundary is inclusive.
func classifyRange(distance float64, cfg Config) behavior {
	switch {
	case distance < cfg.RetreatRange:
		return behaviorRetreat
	case distance < cfg.ApproachRange:
		return behaviorHold
	default:
		return behaviorApproach
	}
}

// directionsToward returns the cardinal direction(s) pointing from the
// origin point to the target point. Two directions come back when the
// true direction is diagonal, none when the points coincide.
func directionsToward(ox, oy, tx, ty float64) []Direction {
	var dirs []Direction
	if oy > ty {
		dirs = append(dirs, DirUp)
	}
	if oy < ty {
		dirs = append(dirs, DirDown)
	}
	if ox > tx {
		dirs = append(dirs, DirLeft)
	}
	if ox < tx {
		dirs = append(dirs, DirRight)
	}
	return dirs
}

// tickEnemies runs each enemy's per-tick decision sequence: die to a
// reflected projectile, aim at the player, try to shoot, then move by
// the three-zone policy if mobile. Kills are buffered and applied after
// the pass so enemy iteration stays stable.
func (e *Engine) tickEnemies() {
	player := e.m.GetPlayer()
	if player == nil {
		return
	}
	px, py := player.Rect.Center()
	playerCell := e.m.GetGridPosition(px, py)

	var removed []uuid.UUID
	for _, en := range e.m.GetEnemies() {
		if hit := e.reflectedProjectileHitting(en); hit != nil {
			removed = append(removed, en.ID, hit.ID)
			continue
		}

		en.Target = Vec2{X: px, Y: py}

		if en.Cooldown > 0 {
			en.Cooldown--
		}
		if en.Cooldown == 0 {
			if e.spawnProjectile(en, en.Target) != nil {
				en.Cooldown = e.cfg.ShootCooldown
			}
		}

		if en.Stationary() {
			continue
		}

		ex, ey := en.Rect.Center()
		enemyCell := e.m.GetGridPosition(ex, ey)
		distance := e.pf.GetDirectDistanceBetweenGridPositions(enemyCell, playerCell)

		var dirs []Direction
		switch classifyRange(distance, e.cfg) {
		case behaviorRetreat:
			// Direction from the player's cell toward the enemy's cell
			// is, applied to the enemy, movement away from the player.
			dirs = directionsToward(
				float64(playerCell.Col), float64(playerCell.Row),
				float64(enemyCell.Col), float64(enemyCell.Row))
		case behaviorHold:
			continue
		case behaviorApproach:
			path := e.pf.GetPath(enemyCell, playerCell)
			if len(path) < 2 {
				// Unreachable, or already on the player's cell: hold.
				continue
			}
			step := path[1]
			stepRect := e.m.cellRect(step)
			sx, sy := stepRect.Center()
			dirs = directionsToward(ex, ey, sx, sy)
		}

		// Attempt each direction independently. On a diagonal, one axis
		// may be blocked while the other still slides along an obstacle.
		for _, dir := range dirs {
			dx, dy := dir.Delta()
			e.m.TryMove(&en.Object,
				float64(dx)*e.cfg.EnemySpeed,
				float64(dy)*e.cfg.EnemySpeed,
				nil)
		}
	}

	for _, id := range removed {
		e.m.RemoveObject(id)
	}
}

// reflectedProjectileHitting returns the first reflected projectile
// whose rectangle currently intersects the enemy, or nil.
func (e *Engine) reflectedProjectileHitting(en *Enemy) *Projectile {
	for _, pr := range e.m.GetProjectiles() {
		if pr.Reflected && pr.Rect.Intersects(en.Rect) {
			return pr
		}
	}
	return nil
}
