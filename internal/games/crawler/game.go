package crawler

import (
	"fmt"

	"github.com/vovakirdan/tui-rogue/internal/config"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/registry"
)

// Package-level options set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next Reset.
// Invalid presets are ignored.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok {
		difficultyPreset = p
	}
}

// Game adapts the crawler to the platform's registry.Game interface.
// All game flow lives in the state stack owned by the World.
type Game struct {
	world *World
}

// New creates a new crawler game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("crawler", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "crawler"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Dungeon Crawler"
}

// Reset builds a fresh world and installs the explore state at the
// bottom of the stack. Entry is deferred to the first Step.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadCrawler(configPath)
	if err != nil {
		cfg = config.DefaultCrawlerConfig()
	}
	config.ApplyCrawlerPreset(&cfg, difficultyPreset)

	g.world = NewWorld(cfg, rt)
	g.world.States.Push(&exploreState{})
}

// Step advances the simulation by one tick: the input frame is bound to
// the world and the state stack runs once on whatever state is on top.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world
	w.Tick++
	w.In = in
	w.States.Run(w)
	w.In = core.InputFrame{}
	return core.StepResult{State: g.State()}
}

// State reports score and mode to the platform.
func (g *Game) State() core.GameState {
	w := g.world
	_, paused := w.States.Top().(*pauseState)
	return core.GameState{
		Score:    w.Score,
		GameOver: w.Over,
		Won:      w.Won,
		Paused:   paused,
	}
}

// Render draws the floor, entities and HUD, then lets the active state
// draw its overlay (combat dialog, inventory, banners).
func (g *Game) Render(dst *core.Screen) {
	w := g.world

	for y := 0; y < w.MapH && y < dst.Height(); y++ {
		for x := 0; x < w.MapW && x < dst.Width(); x++ {
			switch w.Tiles[y][x] {
			case TileWall:
				dst.SetCell(x, y, '#', core.ColorGray)
			case TileFloor:
				dst.SetCell(x, y, '.', core.ColorDefault)
			case TileStairs:
				dst.SetCell(x, y, '>', core.ColorBrightCyan)
			}
		}
	}

	for _, m := range w.Monsters {
		dst.SetCell(m.Pos.X, m.Pos.Y, m.Rune, m.Color)
	}
	dst.SetCell(w.Player.Pos.X, w.Player.Pos.Y, '@', core.ColorBrightWhite)

	g.renderHUD(dst)

	if ov, ok := w.States.Top().(overlayRenderer); ok {
		ov.RenderOverlay(w, dst)
	}
}

// renderHUD draws the status line and recent messages below the map.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	y := w.MapH

	status := fmt.Sprintf(" HP %d/%d  Pot %d  Floor %d/%d  Score %d",
		w.Player.HP, w.Player.MaxHP, w.Player.Potions,
		w.Floor, w.Cfg.Dungeon.Floors, w.Score)
	dst.DrawTextColored(0, y, status, core.ColorBrightWhite)

	for i, msg := range w.LastMessages() {
		dst.DrawTextColored(1, y+1+i, msg, core.ColorGray)
	}
}
