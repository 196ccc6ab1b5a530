package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrNotFound = errors.New("levels: level not found")

// SolidTile marks an occupied cell in a layer row.
const SolidTile = '#'

// Level is a grid level. Rows run top to bottom; entity positions are in
// pixels from the level's top-left corner.
type Level struct {
	Name       string   `json:"name"`
	GridSize   int      `json:"grid_size"`
	WorldX     int      `json:"world_x"`
	WorldY     int      `json:"world_y"`
	Background string   `json:"background,omitempty"`
	Layers     []Layer  `json:"layers"`
	Entities   []Entity `json:"entities,omitempty"`
}

type Layer struct {
	Name    string   `json:"name"`
	Color   string   `json:"color,omitempty"`
	Physics bool     `json:"physics"`
	Rows    []string `json:"rows"`
}

type Entity struct {
	Type  string         `json:"type"`
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// Cols is the level width in cells.
func (l *Level) Cols() int {
	if l == nil || len(l.Layers) == 0 || len(l.Layers[0].Rows) == 0 {
		return 0
	}
	return len(l.Layers[0].Rows[0])
}

// RowCount is the level height in cells.
func (l *Level) RowCount() int {
	if l == nil || len(l.Layers) == 0 {
		return 0
	}
	return len(l.Layers[0].Rows)
}

func (l *Level) PixelWidth() int {
	return l.Cols() * l.GridSize
}

func (l *Level) PixelHeight() int {
	return l.RowCount() * l.GridSize
}

// Solid reports whether the cell at (col, row) of layer is filled.
func (l *Level) Solid(layer, col, row int) bool {
	if l == nil || layer < 0 || layer >= len(l.Layers) {
		return false
	}
	rows := l.Layers[layer].Rows
	if row < 0 || row >= len(rows) || col < 0 || col >= len(rows[row]) {
		return false
	}
	return rows[row][col] == SolidTile
}

// EntitiesOfType returns the entities whose type matches typ, ignoring case.
func (l *Level) EntitiesOfType(typ string) []Entity {
	if l == nil {
		return nil
	}
	var out []Entity
	for _, e := range l.Entities {
		if strings.EqualFold(e.Type, typ) {
			out = append(out, e)
		}
	}
	return out
}

// Validate checks grid dimensions are positive and consistent across layers.
func (l *Level) Validate() error {
	if l == nil {
		return fmt.Errorf("level is nil")
	}
	if l.GridSize <= 0 {
		return fmt.Errorf("level %q: grid size must be positive, got %d", l.Name, l.GridSize)
	}
	if len(l.Layers) == 0 {
		return fmt.Errorf("level %q: no layers", l.Name)
	}
	cols, rows := l.Cols(), l.RowCount()
	if cols == 0 || rows == 0 {
		return fmt.Errorf("level %q: invalid dimensions %dx%d", l.Name, cols, rows)
	}
	for i, layer := range l.Layers {
		if len(layer.Rows) != rows {
			return fmt.Errorf("level %q: layer %d has %d rows, want %d", l.Name, i, len(layer.Rows), rows)
		}
		for r, line := range layer.Rows {
			if len(line) != cols {
				return fmt.Errorf("level %q: layer %d row %d has %d cells, want %d", l.Name, i, r, len(line), cols)
			}
		}
	}
	return nil
}

// Parse decodes and validates level JSON.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadLevelFromFS loads a level by name; the .json extension is optional.
func LoadLevelFromFS(name string) (*Level, error) {
	file := cleanLevelName(name) + ".json"
	data, err := fs.ReadFile(LevelsFS, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("read level: %w", err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if lvl.Name == "" {
		lvl.Name = cleanLevelName(name)
	}
	return lvl, nil
}

// Names lists the embedded levels, sorted.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

func cleanLevelName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.TrimSuffix(base, ".json")
}
