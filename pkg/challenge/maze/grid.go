package maze

import (
	"strings"

	"golang.org/x/exp/maps"
)

const (
	StartMarker   = 'Y'
	EndMarker     = 'X'
	MonsterMarker = 'M'
	FreeMarker    = ' '
)

// Coordinate addresses a cell by row and rune column.
type Coordinate struct {
	Row    int
	Column int
}

type move struct {
	symbol byte
	row    int
	column int
}

// Search priority: right, up, left, down.
var moves = [...]move{
	{symbol: '>', row: 0, column: 1},
	{symbol: '^', row: -1, column: 0},
	{symbol: '<', row: 0, column: -1},
	{symbol: 'v', row: 1, column: 0},
}

func (c Coordinate) step(m move) Coordinate {
	return Coordinate{Row: c.Row + m.row, Column: c.Column + m.column}
}

// Step applies one path symbol. False for an unknown symbol.
func (c Coordinate) Step(symbol byte) (Coordinate, bool) {
	for _, m := range moves {
		if m.symbol == symbol {
			return c.step(m), true
		}
	}
	return c, false
}

type Grid struct {
	rows     [][]rune
	start    Coordinate
	end      Coordinate
	hasStart bool
	hasEnd   bool
}

// ParseGrid splits text into rows and locates the start and end markers.
// Columns count runes, so multi-byte border glyphs take one column.
func ParseGrid(text string) Grid {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	g := Grid{rows: make([][]rune, 0, len(lines))}
	for row, line := range lines {
		runes := []rune(strings.TrimSuffix(line, "\r"))
		g.rows = append(g.rows, runes)

		if column := indexRune(runes, StartMarker); column >= 0 {
			g.start = Coordinate{Row: row, Column: column}
			g.hasStart = true
		}
		if column := indexRune(runes, EndMarker); column >= 0 {
			g.end = Coordinate{Row: row, Column: column}
			g.hasEnd = true
		}
	}

	return g
}

func indexRune(runes []rune, r rune) int {
	for i, c := range runes {
		if c == r {
			return i
		}
	}
	return -1
}

func (g Grid) Start() (Coordinate, bool) {
	return g.start, g.hasStart
}

func (g Grid) End() (Coordinate, bool) {
	return g.end, g.hasEnd
}

func (g Grid) cell(c Coordinate) (rune, bool) {
	if c.Row < 0 || c.Row >= len(g.rows) {
		return 0, false
	}
	row := g.rows[c.Row]
	if c.Column < 0 || c.Column >= len(row) {
		return 0, false
	}
	return row[c.Column], true
}

// Traversable reports whether c is inside the grid and not a wall.
func (g Grid) Traversable(c Coordinate) bool {
	r, ok := g.cell(c)
	if !ok {
		return false
	}
	switch r {
	case StartMarker, EndMarker, MonsterMarker, FreeMarker:
		return true
	}
	return false
}

func (g Grid) IsMonster(c Coordinate) bool {
	r, ok := g.cell(c)
	return ok && r == MonsterMarker
}

// Path is one completed route from start to end.
type Path struct {
	Directions string
	Monsters   int
}

type searchState struct {
	position Coordinate
	path     string
	visited  map[Coordinate]struct{}
	monsters int
}

// MaxPathLength is the longest simple path the grid allows: one step less
// than its number of traversable cells.
func (g Grid) MaxPathLength() int {
	cells := 0
	for row, runes := range g.rows {
		for column := range runes {
			if g.Traversable(Coordinate{Row: row, Column: column}) {
				cells++
			}
		}
	}
	if cells == 0 {
		return 0
	}
	return cells - 1
}

// FindPaths returns every simple path from start to end, in the order a
// right-first depth search completes them. Hazards are counted, not pruned.
func (g Grid) FindPaths() []Path {
	return g.FindPathsWithin(g.MaxPathLength())
}

// FindPathsWithin is FindPaths limited to paths of at most maxLength steps.
// Branches are abandoned once they reach the limit.
func (g Grid) FindPathsWithin(maxLength int) []Path {
	if !g.hasStart || !g.hasEnd {
		return nil
	}

	var paths []Path
	stack := []searchState{{
		position: g.start,
		visited:  map[Coordinate]struct{}{},
	}}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := state.visited[state.position]; seen {
			continue
		}
		state.visited[state.position] = struct{}{}

		if state.position == g.end {
			paths = append(paths, Path{Directions: state.path, Monsters: state.monsters})
			continue
		}

		if len(state.path) >= maxLength {
			continue
		}

		// Pushed in reverse so the highest priority move is popped first.
		for i := len(moves) - 1; i >= 0; i-- {
			next := state.position.step(moves[i])
			if !g.Traversable(next) {
				continue
			}
			monsters := state.monsters
			if g.IsMonster(next) {
				monsters++
			}
			stack = append(stack, searchState{
				position: next,
				path:     state.path + string(moves[i].symbol),
				visited:  maps.Clone(state.visited),
				monsters: monsters,
			})
		}
	}

	return paths
}
