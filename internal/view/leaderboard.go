package view

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/six78/arbiter-client/internal/config"
	"github.com/six78/arbiter-client/pkg/protocol"
)

const textColor = lipgloss.Color("#FAFAFA")

var (
	cellStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingLeft(1).
			PaddingRight(1)
	headerStyle          = cellStyle.Copy().Bold(true).Align(lipgloss.Center)
	myRowStyle           = cellStyle.Copy().Bold(true).Foreground(config.UserColor)
	inactiveRowStyle     = cellStyle.Copy().Foreground(config.ForegroundShadeColor)
	borderStyle          = lipgloss.NewStyle().Foreground(config.ForegroundShadeColor)
	foregroundShadeStyle = lipgloss.NewStyle().Foreground(config.ForegroundShadeColor)
)

var leaderBoardHeaders = []string{"#", "Player", "Score", "Steps", "Time", "Active"}

// RenderLeaderBoard draws the board as a table, highlighting playerName.
func RenderLeaderBoard(board protocol.PublicLeaderBoard, playerName string) string {
	if len(board) == 0 {
		return foregroundShadeStyle.Render("No players on the leader board")
	}

	rows := make([][]string, 0, len(board))
	for i, player := range board {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			player.Name,
			strconv.FormatInt(int64(player.Score), 10),
			strconv.FormatUint(uint64(player.Steps), 10),
			strconv.FormatFloat(player.TotalUsedTime, 'f', 3, 64) + "s",
			renderActive(player.IsActive),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			player := board[row-1]
			switch {
			case player.Name == playerName:
				return myRowStyle
			case !player.IsActive:
				return inactiveRowStyle
			}
			return cellStyle
		}).
		Headers(leaderBoardHeaders...).
		Rows(rows...)

	return t.String()
}

func renderActive(active bool) string {
	if active {
		return "yes"
	}
	return "no"
}
