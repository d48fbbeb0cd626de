package game

// occupants enumerates the collidable entities on the map in a fixed
// order: player, enemies, teleporter. Projectiles are not collision
// occupants; their contacts are resolved by the projectile pass.
func (m *Map) occupants() []*Object {
	objs := make([]*Object, 0, len(m.enemies)+2)
	if m.player != nil {
		objs = append(objs, &m.player.Object)
	}
	for _, e := range m.enemies {
		objs = append(objs, &e.Object)
	}
	if m.teleporter != nil {
		objs = append(objs, &m.teleporter.Object)
	}
	return objs
}

// TryMove attempts to shift the mover's rectangle by (dx, dy) pixels.
// It returns whether the move was applied and the first occupant whose
// rectangle intersects the attempted rectangle. Walls and the map edge
// always block. Other occupants block unless their kind is in the
// allow-list; an allow-listed overlap still reports the occupant so
// callers can react to the contact (teleporter entry, enemy touch).
// When blocked, the mover's position is left unchanged.
func (m *Map) TryMove(mover *Object, dx, dy float64, allowed map[Kind]bool) (bool, *Object) {
	next := mover.Rect
	next.X += dx
	next.Y += dy

	if !m.ObjectInBounds(next) {
		return false, nil
	}

	for _, w := range m.walls {
		if next.Intersects(w.Rect) {
			return false, &w.Object
		}
	}

	var hit *Object
	for _, occ := range m.occupants() {
		if occ.ID == mover.ID {
			continue
		}
		if !next.Intersects(occ.Rect) {
			continue
		}
		if allowed[occ.Kind] {
			if hit == nil {
				hit = occ
			}
			continue
		}
		return false, occ
	}

	mover.Rect = next
	return true, hit
}
