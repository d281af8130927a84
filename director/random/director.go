// Package random implements a Director which plays blind: it reveals cells
// in a random order until the board is won or a mine goes off.
package random

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/jaekwonkang/gomines/game"
)

type Director struct {
	board *game.Board
	order []game.Coord
}

func (director *Director) Init(board *game.Board) {
	director.board = board

	director.order = make([]game.Coord, 0, board.NumCells())
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			director.order = append(director.order, game.Coord{Col: col, Row: row})
		}
	}
	rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

// Act reveals the first unrevealed, unflagged cell in the shuffled order.
func (director *Director) Act() {
	if director.board.State() != game.Ongoing {
		return
	}

	for _, coord := range director.order {
		cell := director.board.CellAt(coord.Col, coord.Row)
		if cell.IsRevealed() || cell.IsFlagged() {
			continue
		}

		logrus.WithFields(logrus.Fields{
			"col": coord.Col,
			"row": coord.Row,
		}).Debug("director reveals")

		director.board.Reveal(coord.Col, coord.Row)
		return
	}
}
