package game

import (
	"testing"
)

func TestGetGridPosition(t *testing.T) {
	m := NewMap(10, 10, 32)

	pos := m.GetGridPosition(65, 33)
	if pos != (GridPos{Col: 2, Row: 1}) {
		t.Errorf("expected cell (2,1), got %+v", pos)
	}

	pos = m.GetGridPosition(0, 0)
	if pos != (GridPos{Col: 0, Row: 0}) {
		t.Errorf("expected cell (0,0), got %+v", pos)
	}
}

func TestObjectInBounds(t *testing.T) {
	m := NewMap(5, 5, 32) // 160x160 pixels

	if !m.ObjectInBounds(Rect{X: 0, Y: 0, W: 32, H: 32}) {
		t.Error("corner cell should be in bounds")
	}
	if !m.ObjectInBounds(Rect{X: 128, Y: 128, W: 32, H: 32}) {
		t.Error("far corner cell should be in bounds")
	}
	if m.ObjectInBounds(Rect{X: 129, Y: 128, W: 32, H: 32}) {
		t.Error("rect sticking past the right edge should be out of bounds")
	}
	if m.ObjectInBounds(Rect{X: -1, Y: 0, W: 32, H: 32}) {
		t.Error("rect sticking past the left edge should be out of bounds")
	}
}

func TestRemoveObjectIdempotent(t *testing.T) {
	m := NewMap(5, 5, 32)
	m.SetPlayer(GridPos{Col: 0, Row: 0})
	e1 := m.AddEnemy(KindWalker, GridPos{Col: 2, Row: 2}, 10)
	m.AddEnemy(KindTurret, GridPos{Col: 3, Row: 3}, 10)

	m.RemoveObject(e1.ID)
	if m.EnemyCount() != 1 {
		t.Fatalf("expected 1 enemy after removal, got %d", m.EnemyCount())
	}

	// Second removal of the same entity is a no-op.
	m.RemoveObject(e1.ID)
	if m.EnemyCount() != 1 {
		t.Errorf("double removal changed the enemy count: %d", m.EnemyCount())
	}
	if m.GetPlayer() == nil {
		t.Error("double removal touched an unrelated collection")
	}
}

func TestRemoveTeleporterAndPlayer(t *testing.T) {
	m := NewMap(5, 5, 32)
	p := m.SetPlayer(GridPos{Col: 0, Row: 0})
	tel := m.SetTeleporter(GridPos{Col: 4, Row: 4})

	m.RemoveObject(tel.ID)
	if m.GetTeleporter() != nil {
		t.Error("teleporter should be gone")
	}
	m.RemoveObject(tel.ID) // no-op

	m.RemoveObject(p.ID)
	if m.GetPlayer() != nil {
		t.Error("player should be gone")
	}
}

func TestTryMoveBlockedByWall(t *testing.T) {
	m := NewMap(5, 5, 32)
	p := m.SetPlayer(GridPos{Col: 1, Row: 1})
	m.AddWall(GridPos{Col: 2, Row: 1})

	moved, hit := m.TryMove(&p.Object, 8, 0, nil)
	if moved {
		t.Error("move into a wall should be blocked")
	}
	if hit == nil || hit.Kind != KindWall {
		t.Errorf("expected the wall as blocker, got %+v", hit)
	}
	if p.Rect.X != 32 {
		t.Errorf("blocked move must not change position, got x=%v", p.Rect.X)
	}
}

func TestTryMoveBlockedByMapEdge(t *testing.T) {
	m := NewMap(5, 5, 32)
	p := m.SetPlayer(GridPos{Col: 0, Row: 0})

	moved, _ := m.TryMove(&p.Object, -8, 0, nil)
	if moved {
		t.Error("move off the map should be blocked")
	}
	if p.Rect.X != 0 {
		t.Errorf("blocked move must not change position, got x=%v", p.Rect.X)
	}
}

func TestTryMoveBlockedByEnemy(t *testing.T) {
	m := NewMap(5, 5, 32)
	p := m.SetPlayer(GridPos{Col: 1, Row: 1})
	en := m.AddEnemy(KindWalker, GridPos{Col: 2, Row: 1}, 10)

	moved, hit := m.TryMove(&p.Object, 8, 0, nil)
	if moved {
		t.Error("move into an enemy should be blocked")
	}
	if hit == nil || hit.ID != en.ID {
		t.Errorf("expected the enemy as blocker, got %+v", hit)
	}
}

func TestTryMoveAllowListedOverlap(t *testing.T) {
	m := NewMap(5, 5, 32)
	p := m.SetPlayer(GridPos{Col: 1, Row: 1})
	tel := m.SetTeleporter(GridPos{Col: 2, Row: 1})

	allowed := map[Kind]bool{KindTeleporter: true}
	moved, hit := m.TryMove(&p.Object, 8, 0, allowed)
	if !moved {
		t.Error("allow-listed overlap should not block the move")
	}
	if hit == nil || hit.ID != tel.ID {
		t.Errorf("allow-listed overlap should still report the contact, got %+v", hit)
	}
	if p.Rect.X != 40 {
		t.Errorf("expected x=40 after the move, got %v", p.Rect.X)
	}
}

func TestTryMoveWallBlocksDespiteAllowList(t *testing.T) {
	m := NewMap(5, 5, 32)
	p := m.SetPlayer(GridPos{Col: 1, Row: 1})
	m.AddWall(GridPos{Col: 2, Row: 1})

	// Walls block regardless of the allow-list.
	allowed := map[Kind]bool{KindWall: true, KindTeleporter: true}
	moved, _ := m.TryMove(&p.Object, 8, 0, allowed)
	if moved {
		t.Error("walls must block even when allow-listed")
	}
}
