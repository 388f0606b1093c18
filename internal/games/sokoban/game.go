// Package sokoban implements a box-pushing puzzle over embedded YAML
// level packs. Flow is a state stack: playing, a level-clear banner
// pushed above it, and a victory state once the pack is done.
package sokoban

import (
	"fmt"

	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/registry"
	"github.com/vovakirdan/tui-rogue/internal/stack"
)

// clearedBannerTicks is how long the level-clear banner shows before
// advancing on its own.
const clearedBannerTicks = 45

// World is the shared context for the sokoban state stack.
type World struct {
	Levels []Level
	Index  int

	Boxes  map[core.Point]bool
	Player core.Point

	Moves  int
	Pushes int
	Score  int
	Over   bool
	Won    bool
	Tick   int

	States *stack.Stack[*World]
	In     core.InputFrame

	status          string
	levelStartMoves int
}

// Current returns the level being played.
func (w *World) Current() Level {
	return w.Levels[w.Index]
}

// loadLevel installs level i: boxes and player reset, moves kept as a
// running total across the pack.
func (w *World) loadLevel(i int) {
	w.Index = i
	lvl := w.Levels[i]
	w.Boxes = make(map[core.Point]bool, len(lvl.Boxes))
	for p := range lvl.Boxes {
		w.Boxes[p] = true
	}
	w.Player = lvl.Start
	w.levelStartMoves = w.Moves
}

// solved reports whether every box sits on a goal.
func (w *World) solved() bool {
	for p := range w.Boxes {
		if !w.Current().Goals[p] {
			return false
		}
	}
	return true
}

type overlayRenderer interface {
	RenderOverlay(w *World, dst *core.Screen)
}

// playingState accepts movement and pushes; it hands off to the banner
// state when the level solves.
type playingState struct {
	stack.Base[*World]
}

func (s *playingState) Enter(w *World) {
	w.status = fmt.Sprintf("Level %d/%d: %s", w.Index+1, len(w.Levels), w.Current().Name)
}

func (s *playingState) Run(w *World) {
	if w.In.Has(core.ActionBack) {
		// Give up on the current attempt
		w.loadLevel(w.Index)
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

	lvl := w.Current()
	next := w.Player.Add(dx, dy)
	if lvl.Walls[next] {
		return
	}

	if w.Boxes[next] {
		beyond := next.Add(dx, dy)
		if lvl.Walls[beyond] || w.Boxes[beyond] {
			return
		}
		delete(w.Boxes, next)
		w.Boxes[beyond] = true
		w.Pushes++
	}

	w.Player = next
	w.Moves++

	if w.solved() {
		levelMoves := w.Moves - w.levelStartMoves
		w.Score += core.Max(50, 200-2*levelMoves)
		w.States.Push(&clearedState{})
	}
}

// clearedState is the level-clear banner. It pops itself back to
// playing with the next level loaded, or replaces itself with victory
// when the pack is finished.
type clearedState struct {
	stack.Base[*World]
	ticks int
}

func (s *clearedState) Run(w *World) {
	s.ticks++
	if s.ticks < clearedBannerTicks && !w.In.Has(core.ActionConfirm) {
		return
	}

	if w.Index+1 >= len(w.Levels) {
		w.States.Replace(&victoryState{})
		return
	}
	w.loadLevel(w.Index + 1)
	w.States.Pop()
}

func (s *clearedState) RenderOverlay(w *World, dst *core.Screen) {
	box := centeredBox(dst, 28, 4)
	dst.DrawTextColored(box.X+2, box.Y+1, "LEVEL CLEAR!", core.ColorBrightGreen)
	dst.DrawTextColored(box.X+2, box.Y+2, "[enter] continue", core.ColorGray)
}

// victoryState ends the game once every level is solved.
type victoryState struct {
	stack.Base[*World]
}

func (s *victoryState) Enter(w *World) {
	w.Over = true
	w.Won = true
}

func (s *victoryState) RenderOverlay(w *World, dst *core.Screen) {
	box := centeredBox(dst, 32, 5)
	dst.DrawTextColored(box.X+2, box.Y+1, "ALL LEVELS SOLVED!", core.ColorBrightYellow)
	dst.DrawText(box.X+2, box.Y+2, fmt.Sprintf("Score: %d  Moves: %d", w.Score, w.Moves))
	dst.DrawTextColored(box.X+2, box.Y+3, "[r] restart  [q] quit", core.ColorGray)
}

func centeredBox(dst *core.Screen, bw, bh int) core.Rect {
	box := core.NewRect((dst.Width()-bw)/2, (dst.Height()-bh)/2, bw, bh)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	return box
}

// Game adapts sokoban to the platform's registry.Game interface.
type Game struct {
	world *World
}

// New creates a new sokoban game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("sokoban", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "sokoban"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Box Pusher"
}

// Reset loads the embedded level pack and starts from the first level.
func (g *Game) Reset(rt core.RuntimeConfig) {
	w := &World{
		Levels: DefaultLevels(),
		States: stack.New[*World](),
	}
	w.loadLevel(0)
	w.States.Push(&playingState{})
	g.world = w
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world
	w.Tick++
	w.In = in
	w.States.Run(w)
	w.In = core.InputFrame{}
	return core.StepResult{State: g.State()}
}

// State reports score and completion to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		GameOver: g.world.Over,
		Won:      g.world.Won,
	}
}

// Render draws the level centered on screen, then the HUD and any
// active overlay.
func (g *Game) Render(dst *core.Screen) {
	w := g.world
	lvl := w.Current()

	offX := core.Max(0, (dst.Width()-lvl.Width)/2)
	offY := core.Max(0, (dst.Height()-2-lvl.Height)/2)

	for p := range lvl.Walls {
		dst.SetCell(offX+p.X, offY+p.Y, '#', core.ColorGray)
	}
	for p := range lvl.Goals {
		dst.SetCell(offX+p.X, offY+p.Y, '.', core.ColorBrightCyan)
	}
	for p := range w.Boxes {
		if lvl.Goals[p] {
			dst.SetCell(offX+p.X, offY+p.Y, '*', core.ColorBrightGreen)
		} else {
			dst.SetCell(offX+p.X, offY+p.Y, '$', core.ColorYellow)
		}
	}
	playerRune := '@'
	if lvl.Goals[w.Player] {
		playerRune = '+'
	}
	dst.SetCell(offX+w.Player.X, offY+w.Player.Y, playerRune, core.ColorBrightWhite)

	status := fmt.Sprintf(" %s  Moves %d  Pushes %d  Score %d",
		w.status, w.Moves, w.Pushes, w.Score)
	dst.DrawTextColored(0, dst.Height()-1, status, core.ColorBrightWhite)

	if ov, ok := w.States.Top().(overlayRenderer); ok {
		ov.RenderOverlay(w, dst)
	}
}
