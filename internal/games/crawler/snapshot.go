package crawler

// Snapshot captures the observable simulation state for tests and
// debugging.
type Snapshot struct {
	Tick     int
	Floor    int
	Mode     string
	PlayerX  int
	PlayerY  int
	HP       int
	Potions  int
	Score    int
	Monsters int
	Over     bool
	Won      bool
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	return Snapshot{
		Tick:     w.Tick,
		Floor:    w.Floor,
		Mode:     w.Mode(),
		PlayerX:  w.Player.Pos.X,
		PlayerY:  w.Player.Pos.Y,
		HP:       w.Player.HP,
		Potions:  w.Player.Potions,
		Score:    w.Score,
		Monsters: len(w.Monsters),
		Over:     w.Over,
		Won:      w.Won,
	}
}

// Mode names the state currently on top of the stack.
func (w *World) Mode() string {
	switch w.States.Top().(type) {
	case *exploreState:
		return "explore"
	case *combatState:
		return "combat"
	case *inventoryState:
		return "inventory"
	case *pauseState:
		return "pause"
	case *gameOverState:
		return "gameover"
	case nil:
		return "none"
	default:
		return "unknown"
	}
}
