package game

import (
	"testing"
)

func TestClassifyRangeBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		distance float64
		want     behavior
	}{
		{3.49, behaviorRetreat},
		{3.5, behaviorHold},
		{4.49, behaviorHold},
		{4.5, behaviorApproach},
		{5.66, behaviorApproach},
		{0, behaviorRetreat},
	}
	for _, c := range cases {
		if got := classifyRange(c.distance, cfg); got != c.want {
			t.Errorf("classifyRange(%v) = %v, want %v", c.distance, got, c.want)
		}
	}
}

func TestDirectionsToward(t *testing.T) {
	dirs := directionsToward(100, 100, 50, 50)
	if len(dirs) != 2 || dirs[0] != DirUp || dirs[1] != DirLeft {
		t.Errorf("up-left diagonal: got %v", dirs)
	}

	dirs = directionsToward(100, 100, 100, 150)
	if len(dirs) != 1 || dirs[0] != DirDown {
		t.Errorf("straight down: got %v", dirs)
	}

	if dirs := directionsToward(100, 100, 100, 100); len(dirs) != 0 {
		t.Errorf("same point should yield no directions, got %v", dirs)
	}
}

func TestWalkerApproachesDistantPlayer(t *testing.T) {
	// 5x5 open room, player at (0,0), walker at (4,4): direct distance
	// ~5.66 cells triggers APPROACH along the shortest path.
	e, _ := testEngine(t, 5, GridPos{Col: 0, Row: 0})
	en := e.m.AddEnemy(KindWalker, GridPos{Col: 4, Row: 4}, 100)

	e.step(TickInput{})

	// First path step from (4,4) toward (0,0) is (4,3): one move up.
	wantY := 128 - e.cfg.EnemySpeed
	if en.Rect.Y != wantY || en.Rect.X != 128 {
		t.Errorf("walker should step up toward the player: got (%v,%v), want (128,%v)",
			en.Rect.X, en.Rect.Y, wantY)
	}
}

func TestWalkerRetreatsFromClosePlayer(t *testing.T) {
	// Distance 2*sqrt(2) ~ 2.83 < 3.5: the walker backs away, down and
	// right, the directions pointing from the player's cell to its own.
	e, _ := testEngine(t, 6, GridPos{Col: 0, Row: 0})
	en := e.m.AddEnemy(KindWalker, GridPos{Col: 2, Row: 2}, 100)

	e.step(TickInput{})

	if en.Rect.X != 64+e.cfg.EnemySpeed || en.Rect.Y != 64+e.cfg.EnemySpeed {
		t.Errorf("walker should retreat down-right: got (%v,%v)", en.Rect.X, en.Rect.Y)
	}
}

func TestWalkerHoldsAtMidRange(t *testing.T) {
	// Distance exactly 4: inside the hold band.
	e, _ := testEngine(t, 6, GridPos{Col: 0, Row: 0})
	en := e.m.AddEnemy(KindWalker, GridPos{Col: 4, Row: 0}, 100)

	e.step(TickInput{})

	if en.Rect.X != 128 || en.Rect.Y != 0 {
		t.Errorf("walker at hold range should not move: got (%v,%v)", en.Rect.X, en.Rect.Y)
	}
}

func TestWalkerHoldsWhenPathBlocked(t *testing.T) {
	// Far enough to approach, but fully walled off: fall back to hold.
	e, _ := testEngine(t, 7, GridPos{Col: 0, Row: 0})
	e.m.AddWall(GridPos{Col: 5, Row: 6})
	e.m.AddWall(GridPos{Col: 5, Row: 5})
	e.m.AddWall(GridPos{Col: 6, Row: 5})
	en := e.m.AddEnemy(KindWalker, GridPos{Col: 6, Row: 6}, 100)

	e.step(TickInput{})

	if en.Rect.X != 192 || en.Rect.Y != 192 {
		t.Errorf("walker with no route should hold: got (%v,%v)", en.Rect.X, en.Rect.Y)
	}
}

func TestTurretNeverMoves(t *testing.T) {
	e, _ := testEngine(t, 6, GridPos{Col: 0, Row: 0})
	en := e.m.AddEnemy(KindTurret, GridPos{Col: 5, Row: 5}, 100)

	for i := 0; i < 5; i++ {
		e.step(TickInput{})
	}

	if en.Rect.X != 160 || en.Rect.Y != 160 {
		t.Errorf("turret moved to (%v,%v)", en.Rect.X, en.Rect.Y)
	}
}

func TestEnemyShootsOnCooldownExpiry(t *testing.T) {
	e, _ := testEngine(t, 5, GridPos{Col: 1, Row: 1})
	en := e.m.AddEnemy(KindTurret, GridPos{Col: 3, Row: 1}, 1)

	e.step(TickInput{})

	prs := e.m.GetProjectiles()
	if len(prs) != 1 {
		t.Fatalf("expected one projectile after cooldown expiry, got %d", len(prs))
	}
	// Aimed straight left at the player, already advanced one tick.
	pr := prs[0]
	if pr.Trajectory.X != -e.cfg.ProjectileSpeed || pr.Trajectory.Y != 0 {
		t.Errorf("trajectory should point at the player: got %+v", pr.Trajectory)
	}
	if en.Cooldown != e.cfg.ShootCooldown {
		t.Errorf("cooldown should reset after firing, got %d", en.Cooldown)
	}
}

func TestReflectedProjectileKillsEnemy(t *testing.T) {
	e, _ := testEngine(t, 6, GridPos{Col: 0, Row: 0})
	e.m.AddEnemy(KindWalker, GridPos{Col: 4, Row: 4}, 100)
	pr := e.m.AddProjectile(Rect{X: 130, Y: 130, W: 32, H: 32}, Vec2{})
	pr.Reflected = true

	e.step(TickInput{})

	if e.m.EnemyCount() != 0 {
		t.Error("enemy touched by a reflected projectile should die")
	}
	if len(e.m.GetProjectiles()) != 0 {
		t.Error("the killing projectile should be removed with the enemy")
	}
}

func TestUnreflectedProjectileSparesEnemy(t *testing.T) {
	e, _ := testEngine(t, 6, GridPos{Col: 0, Row: 0})
	e.m.AddEnemy(KindWalker, GridPos{Col: 4, Row: 4}, 100)
	e.m.AddProjectile(Rect{X: 130, Y: 130, W: 32, H: 32}, Vec2{})

	e.step(TickInput{})

	if e.m.EnemyCount() != 1 {
		t.Error("an unreflected projectile must never harm an enemy")
	}
}
