package cmd

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/skapix/sokoban/board"
)

var (
	wallColor        = color.New(color.FgWhite, color.BgBlack)
	boxColor         = color.New(color.FgYellow, color.Bold)
	destinationColor = color.New(color.FgGreen)
	unitColor        = color.New(color.FgCyan, color.Bold)
	fieldColor       = color.New(color.FgHiBlack)
)

// renderMap prints m with each cell kind in a distinct color, grounded on
// the pack's coloured-terminal board rendering idiom.
func renderMap(m *board.Map) {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			c := m.At(board.Pos{I: i, J: j})
			printCell(c)
		}
		fmt.Println()
	}
}

func printCell(c board.Cell) {
	switch {
	case c.IsWall():
		wallColor.Print("#")
	case c.Has(board.UnitDestination):
		unitColor.Print("+")
	case c.Has(board.BoxDestination):
		boxColor.Print("*")
	case c.HasUnit():
		unitColor.Print("@")
	case c.HasBox():
		boxColor.Print("$")
	case c.HasDestination():
		destinationColor.Print(".")
	default:
		fieldColor.Print(" ")
	}
}
