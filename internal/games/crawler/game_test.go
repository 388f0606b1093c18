package crawler

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-rogue/internal/config"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/stack"
)

// testWorld builds a small open room with full control over entities,
// bypassing floor generation.
func testWorld() *World {
	cfg := config.DefaultCrawlerConfig()
	cfg.Difficulty.Enabled = false

	w := &World{
		Cfg:    cfg,
		Diff:   config.NewDifficultyManager(cfg.Difficulty),
		States: stack.New[*World](),
		RNG:    rand.New(rand.NewSource(1)),
		Floor:  1,
		MapW:   12,
		MapH:   8,
		Player: Player{
			Pos:     core.Point{X: 2, Y: 2},
			HP:      20,
			MaxHP:   20,
			Attack:  3,
			Potions: 1,
		},
	}

	w.Tiles = make([][]Tile, w.MapH)
	for y := range w.Tiles {
		w.Tiles[y] = make([]Tile, w.MapW)
	}
	for y := 1; y < w.MapH-1; y++ {
		for x := 1; x < w.MapW-1; x++ {
			w.Tiles[y][x] = TileFloor
		}
	}

	w.States.Push(&exploreState{})
	return w
}

// step drives the stack one tick with the given actions.
func step(w *World, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	w.In = in
	w.States.Run(w)
}

func TestBumpingMonsterStartsCombat(t *testing.T) {
	w := testWorld()
	m := &Monster{Name: "goblin", Rune: 'g', Pos: core.Point{X: 3, Y: 2}, HP: 6, MaxHP: 6, Attack: 2}
	w.Monsters = []*Monster{m}

	step(w) // Enter explore
	if w.Mode() != "explore" {
		t.Fatalf("Expected explore mode, got %s", w.Mode())
	}

	step(w, core.ActionRight)
	if w.Mode() != "combat" {
		t.Fatalf("Expected combat after bumping monster, got %s", w.Mode())
	}
	// Bumping must not move the player onto the monster
	if w.Player.Pos != (core.Point{X: 2, Y: 2}) {
		t.Errorf("Player should not move into monster, at %v", w.Player.Pos)
	}
}

func TestCombatVictoryReturnsToExplore(t *testing.T) {
	w := testWorld()
	m := &Monster{Name: "rat", Rune: 'r', Pos: core.Point{X: 3, Y: 2}, HP: 3, MaxHP: 3, Attack: 1}
	w.Monsters = []*Monster{m}

	step(w)
	step(w, core.ActionRight)   // Start combat
	step(w, core.ActionConfirm) // 3 damage kills the rat

	if w.Mode() != "explore" {
		t.Fatalf("Expected explore after victory, got %s", w.Mode())
	}
	if len(w.Monsters) != 0 {
		t.Errorf("Expected monster removed, got %d", len(w.Monsters))
	}
	if w.Score != 10 {
		t.Errorf("Expected score 10 for floor-1 kill, got %d", w.Score)
	}
	// The killing blow lands before the monster can retaliate
	if w.Player.HP != 20 {
		t.Errorf("Expected player unhurt, HP %d", w.Player.HP)
	}
}

func TestCombatDeathEndsRun(t *testing.T) {
	w := testWorld()
	w.Player.HP = 2
	m := &Monster{Name: "troll", Rune: 'T', Pos: core.Point{X: 3, Y: 2}, HP: 30, MaxHP: 30, Attack: 5}
	w.Monsters = []*Monster{m}

	step(w)
	step(w, core.ActionRight)   // Start combat
	step(w, core.ActionConfirm) // Troll survives and hits back, killing us
	step(w)                     // Game-over state enters

	if w.Mode() != "gameover" {
		t.Fatalf("Expected gameover, got %s", w.Mode())
	}
	if !w.Over || w.Won {
		t.Errorf("Expected lost run, over=%v won=%v", w.Over, w.Won)
	}
	if w.Player.HP != 0 {
		t.Errorf("Expected HP clamped to 0, got %d", w.Player.HP)
	}
}

func TestFleeTakesAHitAndPops(t *testing.T) {
	w := testWorld()
	m := &Monster{Name: "orc", Rune: 'o', Pos: core.Point{X: 3, Y: 2}, HP: 10, MaxHP: 10, Attack: 2}
	w.Monsters = []*Monster{m}

	step(w)
	step(w, core.ActionRight)
	hpBefore := w.Player.HP
	step(w, core.ActionBack)

	if w.Mode() != "explore" {
		t.Fatalf("Expected explore after fleeing, got %s", w.Mode())
	}
	if w.Player.HP != hpBefore-m.Attack {
		t.Errorf("Expected parting hit of %d, HP went %d -> %d", m.Attack, hpBefore, w.Player.HP)
	}
}

func TestInventoryOverlayPushPop(t *testing.T) {
	w := testWorld()

	step(w)
	step(w, core.ActionInventory)
	if w.Mode() != "inventory" {
		t.Fatalf("Expected inventory, got %s", w.Mode())
	}

	step(w, core.ActionUse) // Drink the only potion
	if w.Player.Potions != 0 {
		t.Errorf("Expected 0 potions, got %d", w.Player.Potions)
	}

	step(w, core.ActionBack)
	if w.Mode() != "explore" {
		t.Fatalf("Expected explore after closing inventory, got %s", w.Mode())
	}
	if w.States.Len() != 1 {
		t.Errorf("Expected only explore on stack, len %d", w.States.Len())
	}
}

func TestPauseSuspendsSimulation(t *testing.T) {
	w := testWorld()
	m := &Monster{Name: "rat", Rune: 'r', Pos: core.Point{X: 8, Y: 5}, HP: 3, MaxHP: 3, Attack: 1}
	w.Monsters = []*Monster{m}

	step(w)
	step(w, core.ActionPause)
	if w.Mode() != "pause" {
		t.Fatalf("Expected pause, got %s", w.Mode())
	}

	// Movement input is swallowed while paused
	pos := w.Player.Pos
	monsterPos := m.Pos
	step(w, core.ActionUp)
	step(w, core.ActionLeft)
	if w.Player.Pos != pos {
		t.Errorf("Player moved while paused: %v -> %v", pos, w.Player.Pos)
	}
	if m.Pos != monsterPos {
		t.Errorf("Monster moved while paused: %v -> %v", monsterPos, m.Pos)
	}

	step(w, core.ActionPause)
	if w.Mode() != "explore" {
		t.Fatalf("Expected explore after unpause, got %s", w.Mode())
	}
}

func TestStairsDescend(t *testing.T) {
	w := testWorld()
	w.Tiles[3][2] = TileStairs

	step(w)
	step(w, core.ActionDown)

	if w.Floor != 2 {
		t.Fatalf("Expected floor 2, got %d", w.Floor)
	}
	if w.Mode() != "explore" {
		t.Errorf("Expected explore on new floor, got %s", w.Mode())
	}
}

func TestStairsOnLastFloorWin(t *testing.T) {
	w := testWorld()
	w.Cfg.Dungeon.Floors = 1
	w.Tiles[3][2] = TileStairs

	step(w)
	step(w, core.ActionDown)
	step(w) // Victory state enters

	if w.Mode() != "gameover" {
		t.Fatalf("Expected gameover, got %s", w.Mode())
	}
	if !w.Won || !w.Over {
		t.Errorf("Expected victory, over=%v won=%v", w.Over, w.Won)
	}
	if w.Score != 100 {
		t.Errorf("Expected victory bonus 100, got %d", w.Score)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs produce identical snapshots
	rt := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	g1 := New()
	g1.Reset(rt)
	g2 := New()
	g2.Reset(rt)

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		switch {
		case i%7 == 0:
			input.Set(core.ActionRight)
		case i%5 == 0:
			input.Set(core.ActionDown)
		case i%11 == 0:
			input.Set(core.ActionConfirm)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestResetRebuildsStack(t *testing.T) {
	rt := core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24}

	g := New()
	g.Reset(rt)
	g.Step(core.NewInputFrame())
	if g.Snapshot().Mode != "explore" {
		t.Fatalf("Expected explore after first step, got %s", g.Snapshot().Mode)
	}

	// Simulate a dead run, then restart
	g.world.States.Replace(&gameOverState{})
	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Fatal("Expected game over")
	}

	g.Reset(rt)
	g.Step(core.NewInputFrame())
	snap := g.Snapshot()
	if snap.Mode != "explore" || snap.Over {
		t.Errorf("Expected fresh explore run after reset, got %+v", snap)
	}
}
