package game

import (
	"math"
)

// Pathfinder computes shortest walkable routes over a map's wall grid.
// Paths are recomputed from scratch on every call; entity occupancy can
// change between ticks, so cached routes would go stale.
type Pathfinder struct {
	m *Map
}

// NewPathfinder creates a pathfinder over the given map's walls.
func NewPathfinder(m *Map) *Pathfinder {
	return &Pathfinder{m: m}
}

// bfsNeighborOrder fixes the adjacency visit order so equal-length
// routes always tie-break the same way.
var bfsNeighborOrder = []Direction{DirUp, DirDown, DirLeft, DirRight}

// GetPath returns the shortest walkable route from origin to target,
// inclusive of both endpoints, using four-directional adjacency. It
// returns nil when the target is unreachable.
func (p *Pathfinder) GetPath(origin, target GridPos) []GridPos {
	if p.m.WallAt(origin) || p.m.WallAt(target) {
		return nil
	}
	if origin == target {
		return []GridPos{origin}
	}

	// Breadth-first search; cameFrom doubles as the visited set.
	cameFrom := map[GridPos]GridPos{origin: origin}
	queue := []GridPos{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dir := range bfsNeighborOrder {
			dx, dy := dir.Delta()
			next := GridPos{Col: cur.Col + dx, Row: cur.Row + dy}
			if p.m.WallAt(next) {
				continue
			}
			if _, seen := cameFrom[next]; seen {
				continue
			}
			cameFrom[next] = cur
			if next == target {
				return reconstructPath(cameFrom, origin, target)
			}
			queue = append(queue, next)
		}
	}
	return nil
}

// reconstructPath walks the cameFrom links back from target to origin
// and reverses the result.
func reconstructPath(cameFrom map[GridPos]GridPos, origin, target GridPos) []GridPos {
	path := []GridPos{target}
	for cur := target; cur != origin; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// GetDirectDistanceBetweenGridPositions returns the straight-line
// distance between two cells, ignoring walls. Used only as a coarse
// proximity measure by the enemy behavior policy.
func (p *Pathfinder) GetDirectDistanceBetweenGridPositions(a, b GridPos) float64 {
	return math.Hypot(float64(a.Col-b.Col), float64(a.Row-b.Row))
}
