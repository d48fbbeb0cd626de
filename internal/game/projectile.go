package game

import (
	"math"

	"github.com/google/uuid"
)

// Advance moves the projectile one tick along its trajectory.
func (pr *Projectile) Advance() {
	pr.Rect.X += pr.Trajectory.X
	pr.Rect.Y += pr.Trajectory.Y
}

// Reflect reverses the projectile's trajectory in place. Two
// reflections cancel back to the original direction.
func (pr *Projectile) Reflect() {
	pr.Trajectory.X = -pr.Trajectory.X
	pr.Trajectory.Y = -pr.Trajectory.Y
}

// spawnProjectile fires a shot from the enemy's position aimed at the
// target point. Returns nil when the target sits exactly on the enemy,
// since no direction can be derived.
func (e *Engine) spawnProjectile(en *Enemy, target Vec2) *Projectile {
	cx, cy := en.Rect.Center()
	dx, dy := target.X-cx, target.Y-cy
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return nil
	}
	speed := e.cfg.ProjectileSpeed
	trajectory := Vec2{X: dx / dist * speed, Y: dy / dist * speed}
	return e.m.AddProjectile(en.Rect, trajectory)
}

// tickProjectiles advances every projectile and applies the removal and
// reflection rules in their fixed priority: wall hit, out of bounds,
// player hit, sword reflect. Removals are buffered and applied after
// the pass so iteration never observes a shrinking slice. The returned
// set holds the IDs of projectiles reflected here, so the later sword
// recheck does not reflect them a second time in the same tick.
func (e *Engine) tickProjectiles() map[uuid.UUID]bool {
	player := e.m.GetPlayer()
	var weapon Rect
	var swinging bool
	if player != nil {
		weapon, swinging = player.WeaponRect(e.cfg.CellSize)
	}

	reflected := make(map[uuid.UUID]bool)
	var removed []uuid.UUID

	for _, pr := range e.m.GetProjectiles() {
		pr.Advance()

		if e.projectileHitsWall(pr) {
			removed = append(removed, pr.ID)
			continue
		}
		if !e.m.ObjectInBounds(pr.Rect) {
			removed = append(removed, pr.ID)
			continue
		}
		if player != nil && player.Alive && pr.Rect.Intersects(player.Rect) {
			player.Alive = false
			removed = append(removed, pr.ID)
			continue
		}
		if swinging && pr.Rect.Intersects(weapon) {
			pr.Reflect()
			pr.Reflected = true
			reflected[pr.ID] = true
		}
	}

	for _, id := range removed {
		e.m.RemoveObject(id)
	}
	return reflected
}

// recheckSwordReflections catches projectiles that the projectile pass
// left alone but that now intersect the active sword rectangle, for
// example because the player moved into them this tick. Reflection
// only; nothing is removed here.
func (e *Engine) recheckSwordReflections(alreadyReflected map[uuid.UUID]bool) {
	player := e.m.GetPlayer()
	if player == nil {
		return
	}
	weapon, swinging := player.WeaponRect(e.cfg.CellSize)
	if !swinging {
		return
	}
	for _, pr := range e.m.GetProjectiles() {
		if alreadyReflected[pr.ID] {
			continue
		}
		if pr.Rect.Intersects(weapon) {
			pr.Reflect()
			pr.Reflected = true
		}
	}
}

func (e *Engine) projectileHitsWall(pr *Projectile) bool {
	for _, w := range e.m.GetWalls() {
		if pr.Rect.Intersects(w.Rect) {
			return true
		}
	}
	return false
}
