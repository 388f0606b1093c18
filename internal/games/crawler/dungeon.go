package crawler

import (
	"github.com/vovakirdan/tui-rogue/internal/core"
)

// monsterKinds lists the bestiary from weakest to strongest; deeper
// floors draw from further down the list.
var monsterKinds = []struct {
	name  string
	r     rune
	color core.Color
}{
	{"rat", 'r', core.ColorGray},
	{"goblin", 'g', core.ColorGreen},
	{"orc", 'o', core.ColorYellow},
	{"troll", 'T', core.ColorRed},
	{"dragon", 'D', core.ColorBrightRed},
}

// generateFloor carves rooms and corridors for the current floor and
// populates it with monsters. Deterministic for a given RNG state.
func (w *World) generateFloor() {
	w.Tiles = make([][]Tile, w.MapH)
	for y := range w.Tiles {
		w.Tiles[y] = make([]Tile, w.MapW)
	}

	rooms := w.carveRooms()
	w.connectRooms(rooms)

	// Player starts in the first room, stairs go in the last
	w.Player.Pos = rooms[0].Center()
	stairs := rooms[len(rooms)-1].Center()
	w.Tiles[stairs.Y][stairs.X] = TileStairs

	w.spawnMonsters(rooms)
}

// carveRooms places non-overlapping rooms. Always succeeds: if every
// random attempt collides, a fallback room is carved in the center.
func (w *World) carveRooms() []core.Rect {
	d := w.Cfg.Dungeon
	var rooms []core.Rect

	for i := 0; i < d.RoomAttempts; i++ {
		rw := d.MinRoomSize + w.RNG.Intn(d.MaxRoomSize-d.MinRoomSize+1)
		rh := core.Max(3, rw/2)
		if rw >= w.MapW-2 || rh >= w.MapH-2 {
			continue
		}
		room := core.NewRect(
			1+w.RNG.Intn(w.MapW-rw-1),
			1+w.RNG.Intn(w.MapH-rh-1),
			rw, rh,
		)

		overlaps := false
		for _, other := range rooms {
			// Grow by one so rooms keep a wall between them
			grown := core.NewRect(other.X-1, other.Y-1, other.W+2, other.H+2)
			if room.Intersects(grown) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		rooms = append(rooms, room)
		w.fillRect(room, TileFloor)
	}

	if len(rooms) == 0 {
		fallback := core.NewRect(w.MapW/2-4, w.MapH/2-2, 8, 4)
		rooms = append(rooms, fallback)
		w.fillRect(fallback, TileFloor)
	}
	return rooms
}

func (w *World) fillRect(r core.Rect, t Tile) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			w.Tiles[y][x] = t
		}
	}
}

// connectRooms joins consecutive room centers with L-shaped corridors.
func (w *World) connectRooms(rooms []core.Rect) {
	for i := 1; i < len(rooms); i++ {
		a := rooms[i-1].Center()
		b := rooms[i].Center()
		if w.RNG.Intn(2) == 0 {
			w.carveH(a.X, b.X, a.Y)
			w.carveV(a.Y, b.Y, b.X)
		} else {
			w.carveV(a.Y, b.Y, a.X)
			w.carveH(a.X, b.X, b.Y)
		}
	}
}

func (w *World) carveH(x1, x2, y int) {
	for x := core.Min(x1, x2); x <= core.Max(x1, x2); x++ {
		if w.Tiles[y][x] == TileWall {
			w.Tiles[y][x] = TileFloor
		}
	}
}

func (w *World) carveV(y1, y2, x int) {
	for y := core.Min(y1, y2); y <= core.Max(y1, y2); y++ {
		if w.Tiles[y][x] == TileWall {
			w.Tiles[y][x] = TileFloor
		}
	}
}

// spawnMonsters seeds the floor with monsters scaled by difficulty.
// The player's starting room stays safe.
func (w *World) spawnMonsters(rooms []core.Rect) {
	w.Monsters = nil

	m := w.Cfg.Monsters
	count := m.CountMin
	if m.CountMax > m.CountMin {
		count += w.RNG.Intn(m.CountMax - m.CountMin + 1)
	}

	for i := 0; i < count; i++ {
		room := rooms[w.RNG.Intn(len(rooms))]
		if len(rooms) > 1 && room == rooms[0] {
			continue // Keep the starting room clear
		}
		pos := core.Point{
			X: room.X + w.RNG.Intn(room.W),
			Y: room.Y + w.RNG.Intn(room.H),
		}
		if pos == w.Player.Pos || w.MonsterAt(pos) != nil || !w.TileAt(pos).Walkable() {
			continue
		}

		kindMax := core.Min(w.Floor, len(monsterKinds))
		kind := monsterKinds[w.RNG.Intn(kindMax)]
		hp := w.Diff.MonsterHP(m.BaseHP, w.Floor, w.Score)
		w.Monsters = append(w.Monsters, &Monster{
			Name:   kind.name,
			Rune:   kind.r,
			Color:  kind.color,
			Pos:    pos,
			HP:     hp,
			MaxHP:  hp,
			Attack: w.Diff.MonsterAttack(m.BaseAttack, w.Floor, w.Score),
		})
	}
}

// moveMonsters gives each monster a wandering step. A monster that
// steps into the player starts combat by pushing the combat state.
func (w *World) moveMonsters() {
	dirs := []core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	for _, m := range w.Monsters {
		if m.HP <= 0 {
			continue
		}
		d := dirs[w.RNG.Intn(len(dirs))]
		next := m.Pos.Add(d.X, d.Y)
		if !w.TileAt(next).Walkable() || w.MonsterAt(next) != nil {
			continue
		}
		if next == w.Player.Pos {
			w.Logf("The %s lunges at you!", m.Name)
			w.States.Push(&combatState{monster: m, ambush: true})
			return
		}
		m.Pos = next
	}
}
