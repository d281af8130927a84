package game

import "fmt"

// CellState is the mutable state attached to a single cell. isRevealed only
// ever transitions false to true; adjacent is computed once during mine
// placement and is meaningless for mine cells.
type CellState struct {
	isMine     bool
	isRevealed bool
	isFlagged  bool
	adjacent   int
}

// Cell is one grid position, identified by (col, row) in board coordinates.
type Cell struct {
	col, row int
	state    CellState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%d, %d)", cell.col, cell.row)
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) IsMine() bool {
	return cell.state.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.state.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.state.isFlagged
}

// Adjacent is the number of mines among the up-to-8 neighboring cells.
func (cell *Cell) Adjacent() int {
	return cell.state.adjacent
}

// serialize renders the cell as a single rune for Board.String.
func (cell *Cell) serialize() rune {
	switch {
	case cell.state.isMine:
		switch {
		case cell.state.isRevealed:
			return '*'
		case cell.state.isFlagged:
			return 'F'
		default:
			return 'O'
		}
	case cell.state.isFlagged:
		return 'f'
	case cell.state.isRevealed:
		if cell.state.adjacent == 0 {
			return '.'
		}
		return rune('0' + cell.state.adjacent)
	default:
		return '#'
	}
}
