package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/milk9111/quizplatformer/session"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a tile grid, row-major with row 0 at the top, plus spawn
// markers and the questions guarding its blocker walls.
type Level struct {
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Layers    [][]int            `json:"layers"`
	LayerMeta []LayerMeta        `json:"layer_meta,omitempty"`
	Entities  []Entity           `json:"entities,omitempty"`
	Questions []session.Question `json:"questions,omitempty"`
}

// LayerMeta describes how a layer's tiles are turned into bodies. Tiles
// of a physics layer become static walls; tiles of a blocker layer are
// blocker walls whose tile value is the 1-based wall number.
type LayerMeta struct {
	Name    string `json:"name,omitempty"`
	Physics bool   `json:"physics"`
	Blocker bool   `json:"blocker,omitempty"`
}

// Entity is a spawn marker at tile (X, Y).
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// MissingLevelError is returned when no data exists for a level id.
type MissingLevelError struct {
	ID int
}

func (e *MissingLevelError) Error() string {
	return fmt.Sprintf("levels: level %d does not exist", e.ID)
}

func fileName(id int) string {
	return fmt.Sprintf("level%d.json", id)
}

// Load reads and validates level id from the embedded levels.
func Load(id int) (*Level, error) {
	lvl, err := LoadLevelFromFS(LevelsFS, fileName(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &MissingLevelError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("levels: load level %d: %w", id, err)
	}
	return lvl, nil
}

func LoadLevelFromFS(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// IDs lists the embedded level ids in ascending order.
func IDs() []int {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var ids []int
	for _, e := range entries {
		var id int
		name := e.Name()
		if !strings.HasPrefix(name, "level") {
			continue
		}
		if _, err := fmt.Sscanf(name, "level%d.json", &id); err == nil {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level: invalid size %dx%d", l.Width, l.Height)
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("level: layer %d has %d tiles, want %d", i, len(layer), l.Width*l.Height)
		}
	}
	players := 0
	for _, ent := range l.Entities {
		if !l.InBounds(ent.X, ent.Y) {
			return fmt.Errorf("level: %s marker at (%d,%d) is outside the grid", ent.Type, ent.X, ent.Y)
		}
		if strings.EqualFold(ent.Type, "player") {
			players++
		}
	}
	if players != 1 {
		return fmt.Errorf("level: want exactly one player marker, got %d", players)
	}
	if walls := l.BlockerWalls(); walls > len(l.Questions) {
		return fmt.Errorf("level: %d blocker walls but only %d questions", walls, len(l.Questions))
	}
	return nil
}

func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Width && y < l.Height
}

// BlockerWalls returns the highest wall number used by blocker layers.
func (l *Level) BlockerWalls() int {
	n := 0
	for i, layer := range l.Layers {
		if i >= len(l.LayerMeta) || !l.LayerMeta[i].Blocker {
			continue
		}
		for _, v := range layer {
			if v > n {
				n = v
			}
		}
	}
	return n
}
