package crawler

import (
	"fmt"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/stack"
)

// barLine formats a "label: current/max" HUD line.
func barLine(label string, cur, max int) string {
	return fmt.Sprintf("%s: %d/%d", label, cur, max)
}

// overlayRenderer is implemented by states that draw on top of the map
// (dialogs, banners). The base map is always drawn first.
type overlayRenderer interface {
	RenderOverlay(w *World, dst *core.Screen)
}

// exploreState is the bottom state of a run: free movement through the
// floor. It pushes combat, inventory and pause states above itself and
// is re-entered whenever they pop.
type exploreState struct {
	stack.Base[*World]
}

func (s *exploreState) Enter(w *World) {
	w.Logf("Floor %d. Find the stairs.", w.Floor)
}

func (s *exploreState) Run(w *World) {
	switch {
	case w.In.Has(core.ActionPause):
		w.States.Push(&pauseState{})
		return
	case w.In.Has(core.ActionInventory):
		w.States.Push(&inventoryState{})
		return
	case w.In.Has(core.ActionUse):
		if !w.DrinkPotion() {
			w.Logf("No potions left.")
		}
		return
	case w.In.Has(core.ActionWait):
		w.moveMonsters()
		return
	}

	dx, dy := 0, 0
	switch {
	case w.In.Has(core.ActionUp):
		dy = -1
	case w.In.Has(core.ActionDown):
		dy = 1
	case w.In.Has(core.ActionLeft):
		dx = -1
	case w.In.Has(core.ActionRight):
		dx = 1
	default:
		return
	}

	next := w.Player.Pos.Add(dx, dy)
	if m := w.MonsterAt(next); m != nil {
		w.Logf("You engage the %s!", m.Name)
		w.States.Push(&combatState{monster: m})
		return
	}
	if !w.TileAt(next).Walkable() {
		return
	}

	w.Player.Pos = next
	if w.TileAt(next) == TileStairs {
		if w.Floor >= w.Cfg.Dungeon.Floors {
			w.States.Replace(&gameOverState{victory: true})
			return
		}
		w.descend()
		return
	}
	w.moveMonsters()
}

// combatState is a turn-based fight with a single monster. Pushed by
// exploreState (or by a monster ambush) and popped on victory or flight;
// death replaces the whole interaction with the game-over state.
type combatState struct {
	stack.Base[*World]
	monster *Monster
	// ambush gives the monster the first strike.
	ambush bool
}

func (s *combatState) Enter(w *World) {
	w.Logf("The %s has %d HP. Attack, flee or drink.", s.monster.Name, s.monster.HP)
	if s.ambush {
		s.monsterStrikes(w)
	}
}

func (s *combatState) Run(w *World) {
	switch {
	case w.In.Has(core.ActionConfirm):
		s.monster.HP -= w.Player.Attack
		if s.monster.HP <= 0 {
			w.Score += 10 * w.Floor
			w.Logf("The %s dies.", s.monster.Name)
			w.RemoveMonster(s.monster)
			w.States.Pop()
			return
		}
		s.monsterStrikes(w)

	case w.In.Has(core.ActionUse):
		if !w.DrinkPotion() {
			w.Logf("No potions left.")
			return
		}
		// Drinking costs the turn
		s.monsterStrikes(w)

	case w.In.Has(core.ActionBack):
		w.Logf("You flee from the %s.", s.monster.Name)
		s.monsterStrikes(w) // Turning your back is not free
		if w.Player.HP > 0 {
			w.States.Pop()
		}
	}
}

// monsterStrikes applies one monster attack and handles player death.
func (s *combatState) monsterStrikes(w *World) {
	w.Player.HP -= s.monster.Attack
	if w.Player.HP <= 0 {
		w.Player.HP = 0
		w.States.Replace(&gameOverState{})
		return
	}
	w.Logf("The %s hits you for %d.", s.monster.Name, s.monster.Attack)
}

func (s *combatState) RenderOverlay(w *World, dst *core.Screen) {
	box := centeredBox(dst, 34, 7)
	dst.DrawTextColored(box.X+2, box.Y+1, "COMBAT: "+s.monster.Name, core.ColorBrightRed)
	dst.DrawText(box.X+2, box.Y+2, barLine("Foe", s.monster.HP, s.monster.MaxHP))
	dst.DrawText(box.X+2, box.Y+3, barLine("You", w.Player.HP, w.Player.MaxHP))
	dst.DrawTextColored(box.X+2, box.Y+5, "[enter] attack  [u] drink  [esc] flee", core.ColorGray)
}

// inventoryState is a modal pack screen. It can legally sit on top of
// explore or combat; popping returns to whatever was below.
type inventoryState struct {
	stack.Base[*World]
}

func (s *inventoryState) Run(w *World) {
	switch {
	case w.In.Has(core.ActionUse), w.In.Has(core.ActionConfirm):
		if !w.DrinkPotion() {
			w.Logf("No potions left.")
		}
	case w.In.Has(core.ActionBack), w.In.Has(core.ActionInventory):
		w.States.Pop()
	}
}

func (s *inventoryState) RenderOverlay(w *World, dst *core.Screen) {
	box := centeredBox(dst, 30, 6)
	dst.DrawTextColored(box.X+2, box.Y+1, "INVENTORY", core.ColorBrightYellow)
	dst.DrawText(box.X+2, box.Y+2, fmt.Sprintf("Potions: %d", w.Player.Potions))
	dst.DrawTextColored(box.X+2, box.Y+4, "[u] drink  [esc] close", core.ColorGray)
}

// pauseState freezes the simulation. Everything below it is suspended,
// which is the whole point of putting it on the stack.
type pauseState struct {
	stack.Base[*World]
}

func (s *pauseState) Run(w *World) {
	if w.In.Has(core.ActionPause) || w.In.Has(core.ActionBack) || w.In.Has(core.ActionConfirm) {
		w.States.Pop()
	}
}

func (s *pauseState) RenderOverlay(w *World, dst *core.Screen) {
	box := centeredBox(dst, 20, 4)
	dst.DrawTextColored(box.X+2, box.Y+1, "PAUSED", core.ColorBrightCyan)
	dst.DrawTextColored(box.X+2, box.Y+2, "[p] resume", core.ColorGray)
}

// gameOverState ends the run, in victory or defeat. Restart is handled
// by the platform, which calls Reset and rebuilds the whole stack.
type gameOverState struct {
	stack.Base[*World]
	victory bool
}

func (s *gameOverState) Enter(w *World) {
	w.Over = true
	w.Won = s.victory
	if s.victory {
		w.Score += 100
		w.Logf("You escape with the treasure!")
	} else {
		w.Logf("You have died on floor %d.", w.Floor)
	}
}

func (s *gameOverState) RenderOverlay(w *World, dst *core.Screen) {
	box := centeredBox(dst, 30, 5)
	if s.victory {
		dst.DrawTextColored(box.X+2, box.Y+1, "VICTORY!", core.ColorBrightGreen)
	} else {
		dst.DrawTextColored(box.X+2, box.Y+1, "GAME OVER", core.ColorBrightRed)
	}
	dst.DrawText(box.X+2, box.Y+2, fmt.Sprintf("Score: %d", w.Score))
	dst.DrawTextColored(box.X+2, box.Y+3, "[r] restart  [q] quit", core.ColorGray)
}

// centeredBox clears and frames a centered box on the screen.
func centeredBox(dst *core.Screen, bw, bh int) core.Rect {
	box := core.NewRect((dst.Width()-bw)/2, (dst.Height()-bh)/2, bw, bh)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	return box
}
