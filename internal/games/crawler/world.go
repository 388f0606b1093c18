// Package crawler implements a turn-based roguelike dungeon crawl.
// Game flow is a stack of states (explore, combat, inventory, pause,
// game over) over a shared World context; the stack guarantees each
// state's lifecycle hooks fire exactly once per activation.
package crawler

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-rogue/internal/config"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/stack"
)

// Tile is a single dungeon map cell.
type Tile uint8

const (
	TileWall Tile = iota
	TileFloor
	TileStairs
)

// Walkable returns true if entities can occupy the tile.
func (t Tile) Walkable() bool {
	return t != TileWall
}

// Player is the adventurer descending the dungeon.
type Player struct {
	Pos     core.Point
	HP      int
	MaxHP   int
	Attack  int
	Potions int
}

// Monster is a hostile dungeon inhabitant.
type Monster struct {
	Name   string
	Rune   rune
	Color  core.Color
	Pos    core.Point
	HP     int
	MaxHP  int
	Attack int
}

// World is the shared context threaded through every state's lifecycle
// callbacks. It owns the map, the entities and the state stack itself,
// so states can push and pop their successors.
type World struct {
	Cfg  config.CrawlerConfig
	Diff *config.DifficultyManager
	RT   core.RuntimeConfig

	States *stack.Stack[*World]

	RNG      *rand.Rand
	Floor    int
	MapW     int
	MapH     int
	Tiles    [][]Tile
	Player   Player
	Monsters []*Monster

	// In holds the input frame for the tick currently being simulated.
	In core.InputFrame

	Score int
	Over  bool
	Won   bool
	Tick  int

	log []string
}

// hudRows is the number of screen rows reserved below the map for
// status and message output.
const hudRows = 3

// NewWorld creates a world sized to the runtime config and generates
// the first floor.
func NewWorld(cfg config.CrawlerConfig, rt core.RuntimeConfig) *World {
	w := &World{
		Cfg:    cfg,
		Diff:   config.NewDifficultyManager(cfg.Difficulty),
		RT:     rt,
		States: stack.New[*World](),
		RNG:    rand.New(rand.NewSource(rt.Seed)),
		MapW:   core.Max(20, rt.ScreenW),
		MapH:   core.Max(10, rt.ScreenH-hudRows),
		Player: Player{
			HP:      cfg.Player.MaxHP,
			MaxHP:   cfg.Player.MaxHP,
			Attack:  cfg.Player.Attack,
			Potions: cfg.Player.StartPotions,
		},
	}
	w.descend()
	return w
}

// descend advances to the next floor, generating it and repositioning
// the player. The first call sets up floor 1.
func (w *World) descend() {
	w.Floor++
	w.generateFloor()
}

// TileAt returns the tile at p, treating out-of-bounds as wall.
func (w *World) TileAt(p core.Point) Tile {
	if p.X < 0 || p.X >= w.MapW || p.Y < 0 || p.Y >= w.MapH {
		return TileWall
	}
	return w.Tiles[p.Y][p.X]
}

// MonsterAt returns the living monster at p, or nil.
func (w *World) MonsterAt(p core.Point) *Monster {
	for _, m := range w.Monsters {
		if m.HP > 0 && m.Pos == p {
			return m
		}
	}
	return nil
}

// RemoveMonster drops a dead monster from the world.
func (w *World) RemoveMonster(target *Monster) {
	for i, m := range w.Monsters {
		if m == target {
			w.Monsters = append(w.Monsters[:i], w.Monsters[i+1:]...)
			return
		}
	}
}

// DrinkPotion heals the player if a potion is available.
// Returns false when the pack is empty.
func (w *World) DrinkPotion() bool {
	if w.Player.Potions <= 0 {
		return false
	}
	w.Player.Potions--
	w.Player.HP = core.Min(w.Player.HP+w.Cfg.Player.PotionHeal, w.Player.MaxHP)
	w.Logf("You drink a potion (%d HP).", w.Player.HP)
	return true
}

// Logf appends a message to the HUD log, keeping the most recent few.
func (w *World) Logf(format string, args ...any) {
	w.log = append(w.log, fmt.Sprintf(format, args...))
	if len(w.log) > 2 {
		w.log = w.log[len(w.log)-2:]
	}
}

// LastMessages returns the most recent log lines, oldest first.
func (w *World) LastMessages() []string {
	return w.log
}
