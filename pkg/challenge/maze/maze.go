package maze

import (
	"github.com/six78/arbiter-client/pkg/challenge"
	"github.com/six78/arbiter-client/pkg/protocol"
)

const Name = "monstrousMaze"

type Maze struct {
	input protocol.MonstrousMazeInput
	grid  Grid
}

var _ challenge.Challenge[protocol.MonstrousMazeOutput] = (*Maze)(nil)

func New(input protocol.MonstrousMazeInput) *Maze {
	return &Maze{
		input: input,
		grid:  ParseGrid(input.Grid),
	}
}

func (m *Maze) Name() string {
	return Name
}

func (m *Maze) Input() protocol.MonstrousMazeInput {
	return m.input
}

func (m *Maze) Grid() Grid {
	return m.grid
}

// Solve returns the first path that reaches the end having met strictly
// fewer monsters than the endurance. The path is empty when none does.
func (m *Maze) Solve() protocol.MonstrousMazeOutput {
	for _, path := range m.grid.FindPaths() {
		output := protocol.MonstrousMazeOutput{Path: path.Directions}
		if m.Verify(output) && path.Monsters < int(m.input.Endurance) {
			return output
		}
	}
	return protocol.MonstrousMazeOutput{Path: ""}
}

// Verify replays the path from the start and checks it lands on the end.
// Endurance is not checked here.
func (m *Maze) Verify(answer protocol.MonstrousMazeOutput) bool {
	start, hasStart := m.grid.Start()
	end, hasEnd := m.grid.End()
	if !hasStart || !hasEnd {
		return false
	}

	position := start
	for i := 0; i < len(answer.Path); i++ {
		var ok bool
		position, ok = position.Step(answer.Path[i])
		if !ok {
			return false
		}
	}
	return position == end
}
