package sokoban

import (
	"testing"

	"github.com/vovakirdan/tui-rogue/internal/core"
)

// testLevels is a minimal two-level pack used instead of the shipped one.
const testLevels = `
levels:
  - name: one
    map: |
      ######
      #@ $.#
      ######
  - name: two
    map: |
      ######
      #@$ .#
      ######
`

func testGame(t *testing.T) *Game {
	t.Helper()
	levels, err := LoadLevels([]byte(testLevels))
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12})
	g.world.Levels = levels
	g.world.loadLevel(0)
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func mode(g *Game) string {
	switch g.world.States.Top().(type) {
	case *playingState:
		return "playing"
	case *clearedState:
		return "cleared"
	case *victoryState:
		return "victory"
	default:
		return "unknown"
	}
}

func TestLoadEmbeddedLevels(t *testing.T) {
	levels := DefaultLevels()
	if len(levels) == 0 {
		t.Fatal("Expected embedded levels")
	}
	for _, lvl := range levels {
		if len(lvl.Boxes) != len(lvl.Goals) {
			t.Errorf("Level %q: %d boxes vs %d goals", lvl.Name, len(lvl.Boxes), len(lvl.Goals))
		}
	}
}

func TestLoadLevelsRejectsBadPacks(t *testing.T) {
	if _, err := LoadLevels([]byte("levels: []")); err == nil {
		t.Error("Expected error for empty pack")
	}

	noPlayer := "levels:\n  - name: bad\n    map: |\n      ####\n      #$.#\n      ####\n"
	if _, err := LoadLevels([]byte(noPlayer)); err == nil {
		t.Error("Expected error for level without player")
	}

	unbalanced := "levels:\n  - name: bad\n    map: |\n      #####\n      #@$ #\n      #####\n"
	if _, err := LoadLevels([]byte(unbalanced)); err == nil {
		t.Error("Expected error for box/goal mismatch")
	}
}

func TestMovementAndWalls(t *testing.T) {
	g := testGame(t)
	step(g) // Enter playing

	start := g.world.Player
	step(g, core.ActionUp) // Wall above
	if g.world.Player != start {
		t.Errorf("Expected wall to block, player at %v", g.world.Player)
	}
	if g.world.Moves != 0 {
		t.Errorf("Blocked move should not count, moves=%d", g.world.Moves)
	}

	step(g, core.ActionRight)
	if g.world.Player != start.Add(1, 0) {
		t.Errorf("Expected move right, player at %v", g.world.Player)
	}
	if g.world.Moves != 1 {
		t.Errorf("Expected 1 move, got %d", g.world.Moves)
	}
}

func TestPushBoxOntoGoalClearsLevel(t *testing.T) {
	g := testGame(t)
	step(g)

	// Level one: "#@ $.#" - two steps right, the second pushes the
	// box onto the goal.
	step(g, core.ActionRight)
	step(g, core.ActionRight)

	if g.world.Pushes != 1 {
		t.Errorf("Expected 1 push, got %d", g.world.Pushes)
	}
	if mode(g) != "cleared" {
		t.Fatalf("Expected cleared banner, got %s", mode(g))
	}
	if g.world.Score < 50 {
		t.Errorf("Expected level score awarded, got %d", g.world.Score)
	}
}

func TestBannerAdvancesToNextLevel(t *testing.T) {
	g := testGame(t)
	step(g)
	step(g, core.ActionRight)
	step(g, core.ActionRight) // Solves level one

	step(g, core.ActionConfirm) // Skip the banner
	if mode(g) != "playing" {
		t.Fatalf("Expected playing on level two, got %s", mode(g))
	}
	if g.world.Index != 1 {
		t.Errorf("Expected level index 1, got %d", g.world.Index)
	}
	if g.world.Player != g.world.Current().Start {
		t.Errorf("Expected player at level start %v, got %v", g.world.Current().Start, g.world.Player)
	}
}

func TestBannerTimesOut(t *testing.T) {
	g := testGame(t)
	step(g)
	step(g, core.ActionRight)
	step(g, core.ActionRight)

	for i := 0; i < clearedBannerTicks+1; i++ {
		step(g)
	}
	if mode(g) != "playing" || g.world.Index != 1 {
		t.Errorf("Expected banner to advance on its own, mode=%s index=%d", mode(g), g.world.Index)
	}
}

func TestVictoryAfterLastLevel(t *testing.T) {
	g := testGame(t)
	step(g)

	// Level one
	step(g, core.ActionRight)
	step(g, core.ActionRight)
	step(g, core.ActionConfirm)

	// Level two: "#@$ .#" - push the box twice
	step(g, core.ActionRight)
	step(g, core.ActionRight)
	step(g, core.ActionConfirm) // Banner replaces itself with victory
	step(g)                     // Victory enters

	if mode(g) != "victory" {
		t.Fatalf("Expected victory, got %s", mode(g))
	}
	st := g.State()
	if !st.GameOver {
		t.Error("Expected GameOver")
	}
	if !g.world.Won {
		t.Error("Expected Won")
	}
}

func TestBoxBlockedByBoxOrWall(t *testing.T) {
	levels, err := LoadLevels([]byte(`
levels:
  - name: blocked
    map: |
      #######
      #@$$..#
      #######
`))
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12})
	g.world.Levels = levels
	g.world.loadLevel(0)
	step(g)

	start := g.world.Player
	step(g, core.ActionRight) // Box against box: no move
	if g.world.Player != start || g.world.Pushes != 0 {
		t.Errorf("Expected blocked push, player=%v pushes=%d", g.world.Player, g.world.Pushes)
	}
}

func TestRestartLevelKeepsScore(t *testing.T) {
	g := testGame(t)
	step(g)
	step(g, core.ActionRight)

	step(g, core.ActionBack) // Retry the level
	if g.world.Player != g.world.Current().Start {
		t.Errorf("Expected player back at start, got %v", g.world.Player)
	}
	if g.world.Boxes[g.world.Current().Start] {
		t.Error("Boxes should reset with the level")
	}
}
