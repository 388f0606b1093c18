package sokoban

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rogue/internal/core"
)

//go:embed levels.yaml
var defaultLevelsYAML []byte

// levelPack is the YAML shape of a set of levels.
type levelPack struct {
	Levels []levelSpec `yaml:"levels"`
}

type levelSpec struct {
	Name string `yaml:"name"`
	Map  string `yaml:"map"`
}

// Level is a parsed, playable puzzle.
type Level struct {
	Name   string
	Width  int
	Height int
	Walls  map[core.Point]bool
	Goals  map[core.Point]bool
	Boxes  map[core.Point]bool
	Start  core.Point
}

// Map legend: '#' wall, '@' player, '$' box, '.' goal,
// '*' box on goal, '+' player on goal, ' ' floor.
func parseLevel(spec levelSpec) (Level, error) {
	lvl := Level{
		Name:  spec.Name,
		Walls: make(map[core.Point]bool),
		Goals: make(map[core.Point]bool),
		Boxes: make(map[core.Point]bool),
	}

	lines := strings.Split(strings.TrimRight(spec.Map, "\n"), "\n")
	lvl.Height = len(lines)
	hasPlayer := false

	for y, line := range lines {
		lvl.Width = core.Max(lvl.Width, len(line))
		for x, r := range line {
			p := core.Point{X: x, Y: y}
			switch r {
			case '#':
				lvl.Walls[p] = true
			case '@':
				lvl.Start = p
				hasPlayer = true
			case '+':
				lvl.Start = p
				lvl.Goals[p] = true
				hasPlayer = true
			case '$':
				lvl.Boxes[p] = true
			case '*':
				lvl.Boxes[p] = true
				lvl.Goals[p] = true
			case '.':
				lvl.Goals[p] = true
			case ' ':
				// floor
			default:
				return lvl, fmt.Errorf("sokoban: level %q: unknown rune %q", spec.Name, r)
			}
		}
	}

	if !hasPlayer {
		return lvl, fmt.Errorf("sokoban: level %q has no player start", spec.Name)
	}
	if len(lvl.Boxes) == 0 || len(lvl.Boxes) != len(lvl.Goals) {
		return lvl, fmt.Errorf("sokoban: level %q has %d boxes for %d goals",
			spec.Name, len(lvl.Boxes), len(lvl.Goals))
	}
	return lvl, nil
}

// LoadLevels parses a YAML level pack.
func LoadLevels(data []byte) ([]Level, error) {
	var pack levelPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("sokoban: cannot parse level pack: %w", err)
	}
	if len(pack.Levels) == 0 {
		return nil, fmt.Errorf("sokoban: level pack is empty")
	}

	levels := make([]Level, 0, len(pack.Levels))
	for _, spec := range pack.Levels {
		lvl, err := parseLevel(spec)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// DefaultLevels returns the embedded level pack.
// Panics if the embedded pack is malformed; that is a build defect.
func DefaultLevels() []Level {
	levels, err := LoadLevels(defaultLevelsYAML)
	if err != nil {
		panic(err)
	}
	return levels
}
