package game

import (
	"github.com/gammazero/deque"

	"github.com/jaekwonkang/gomines/util/collections"
)

// floodReveal reveals the contiguous zero-adjacent region around origin plus
// its numbered rim. Propagation uses an explicit work-list instead of
// recursion, so reveal depth stays flat no matter how large the board is.
// Flagged and already-revealed neighbors are skipped, the same no-op rule
// Reveal applies; a cell enters the work-list at most once, which bounds the
// loop by the cell count. Cells on the work-list have no adjacent mines, so
// the flood can never reveal a mine.
func (board *Board) floodReveal(origin *Cell) {
	visited := make(collections.Set[int])
	visited.Add(board.Index(origin.col, origin.row))

	var pending deque.Deque[*Cell]
	pending.PushBack(origin)

	for pending.Len() > 0 {
		cell := pending.PopFront()

		for _, coord := range board.Neighbors(cell.col, cell.row) {
			index := board.Index(coord.Col, coord.Row)
			if visited.Contains(index) {
				continue
			}
			visited.Add(index)

			neighbor := &board.cells[index]
			if neighbor.state.isRevealed || neighbor.state.isFlagged {
				continue
			}

			board.revealCell(neighbor)
			if neighbor.state.adjacent == 0 {
				pending.PushBack(neighbor)
			}
		}
	}
}
