package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jaekwonkang/gomines/util/collections"
)

// Coord addresses a cell by column and row.
type Coord struct {
	Col, Row int
}

// neighborOffsets lists the 8 compass offsets in fixed order:
// NW, N, NE, W, E, SW, S, SE.
var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Config carries the board parameters plus an optional placement seed.
// A zero Seed means "seed from the clock".
type Config struct {
	Cols, Rows int
	Mines      int
	Seed       int64
}

// Board holds the full game state and enforces the rules. It is not safe for
// concurrent use; all mutation happens synchronously on the caller's thread.
type Board struct {
	cols, rows int
	numMines   int
	cells      []Cell // row-major: cells[row*cols+col]

	minesPlaced   bool
	revealedCount int
	gameOver      bool
	win           bool

	rand *rand.Rand
}

// NewBoard allocates a cols×rows board with no mines placed yet. Placement is
// deferred to the first Reveal so the first-clicked cell and its neighbors
// can be kept mine-free; that forbidden zone is why Mines must leave at least
// 9 cells unoccupied.
func NewBoard(config Config) (*Board, error) {
	if config.Cols < 1 || config.Rows < 1 {
		return nil, fmt.Errorf("board dimensions must be positive, got %dx%d", config.Cols, config.Rows)
	}
	if config.Mines < 0 {
		return nil, fmt.Errorf("mine count must not be negative, got %d", config.Mines)
	}
	free := config.Cols*config.Rows - 9
	if free < 0 {
		free = 0
	}
	if config.Mines > free {
		return nil, fmt.Errorf(
			"%d mines do not fit on a %dx%d board with a safe first click (max %d)",
			config.Mines, config.Cols, config.Rows, free,
		)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := &Board{
		cols:     config.Cols,
		rows:     config.Rows,
		numMines: config.Mines,
		cells:    make([]Cell, config.Cols*config.Rows),
		rand:     rand.New(rand.NewSource(seed)),
	}
	for i := range board.cells {
		board.cells[i].col = i % config.Cols
		board.cells[i].row = i / config.Cols
	}
	return board, nil
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) NumCells() int {
	return board.cols * board.rows
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) MinesPlaced() bool {
	return board.minesPlaced
}

func (board *Board) RevealedCount() int {
	return board.revealedCount
}

func (board *Board) GameOver() bool {
	return board.gameOver
}

func (board *Board) Win() bool {
	return board.win
}

// State summarizes the terminal flags for the presentation layer.
func (board *Board) State() BoardState {
	switch {
	case board.win:
		return Won
	case board.gameOver:
		return Lost
	default:
		return Ongoing
	}
}

// Index returns the flat slice index of (col, row). Valid only in bounds.
func (board *Board) Index(col, row int) int {
	return row*board.cols + col
}

func (board *Board) InBounds(col, row int) bool {
	return col >= 0 && col < board.cols && row >= 0 && row < board.rows
}

// CellAt returns the cell at (col, row), or nil when out of bounds.
func (board *Board) CellAt(col, row int) *Cell {
	if !board.InBounds(col, row) {
		return nil
	}
	return &board.cells[board.Index(col, row)]
}

// Neighbors returns the in-bounds coordinates at the 8 compass offsets
// around (col, row), in the fixed NW,N,NE,W,E,SW,S,SE order.
func (board *Board) Neighbors(col, row int) []Coord {
	neighbors := make([]Coord, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		c, r := col+offset.Col, row+offset.Row
		if board.InBounds(c, r) {
			neighbors = append(neighbors, Coord{c, r})
		}
	}
	return neighbors
}

// placeMines scatters numMines mines uniformly over every cell outside the
// forbidden zone around the first click, then computes every adjacency count
// in a single sweep. Called exactly once, from the first Reveal.
func (board *Board) placeMines(safeCol, safeRow int) {
	forbidden := make(collections.Set[int])
	forbidden.Add(board.Index(safeCol, safeRow))
	for _, coord := range board.Neighbors(safeCol, safeRow) {
		forbidden.Add(board.Index(coord.Col, coord.Row))
	}

	pool := make([]int, 0, len(board.cells)-len(forbidden))
	for i := range board.cells {
		if !forbidden.Contains(i) {
			pool = append(pool, i)
		}
	}

	board.rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	for _, i := range pool[:board.numMines] {
		board.cells[i].state.isMine = true
	}

	for i := range board.cells {
		cell := &board.cells[i]
		if cell.state.isMine {
			continue
		}
		for _, coord := range board.Neighbors(cell.col, cell.row) {
			if board.cells[board.Index(coord.Col, coord.Row)].state.isMine {
				cell.state.adjacent++
			}
		}
	}

	board.minesPlaced = true
}

// Reveal opens the cell at (col, row). Out-of-bounds coordinates,
// already-revealed cells and flagged cells are no-ops, as is any call once
// the game has ended. The first effective call places the mines, keeping
// (col, row) and its neighbors clear. Revealing a mine ends the game and
// exposes the full mine layout; revealing a zero-adjacent cell floods its
// region.
func (board *Board) Reveal(col, row int) {
	if board.gameOver || board.win {
		return
	}
	cell := board.CellAt(col, row)
	if cell == nil || cell.state.isRevealed || cell.state.isFlagged {
		return
	}

	if !board.minesPlaced {
		board.placeMines(col, row)
	}

	board.revealCell(cell)

	if cell.state.isMine {
		board.gameOver = true
		board.revealAllMines()
		return
	}
	if cell.state.adjacent == 0 {
		board.floodReveal(cell)
	}
	board.checkWin()
}

// revealCell is the only place a cell turns revealed, keeping revealedCount
// equal to the number of revealed cells at all times.
func (board *Board) revealCell(cell *Cell) {
	if cell.state.isRevealed {
		return
	}
	cell.state.isRevealed = true
	board.revealedCount++
}

func (board *Board) revealAllMines() {
	for i := range board.cells {
		if board.cells[i].state.isMine {
			board.revealCell(&board.cells[i])
		}
	}
}

// checkWin flips the board into the terminal won state once every non-mine
// cell is revealed. The trailing sweep re-reveals anything the flood could
// have skipped, so a won board always shows all of its safe cells.
func (board *Board) checkWin() {
	if board.gameOver || board.win {
		return
	}
	if board.revealedCount != board.NumCells()-board.numMines {
		return
	}
	board.win = true
	for i := range board.cells {
		if !board.cells[i].state.isMine {
			board.revealCell(&board.cells[i])
		}
	}
}

// ToggleFlag inverts the flag on an unrevealed cell. Out-of-bounds
// coordinates and revealed cells are no-ops, as is any call once the game
// has ended. Flagging never changes the win predicate; the re-check keeps
// the mutator epilogue uniform.
func (board *Board) ToggleFlag(col, row int) {
	if board.gameOver || board.win {
		return
	}
	cell := board.CellAt(col, row)
	if cell == nil || cell.state.isRevealed {
		return
	}
	cell.state.isFlagged = !cell.state.isFlagged
	board.checkWin()
}

// FlaggedCount returns the number of currently flagged cells.
func (board *Board) FlaggedCount() int {
	count := 0
	for i := range board.cells {
		if board.cells[i].state.isFlagged {
			count++
		}
	}
	return count
}

// String renders the board one row per line: '#' hidden, '.' revealed blank,
// '1'..'8' revealed numbers, 'f' flag, 'O' hidden mine, 'F' flagged mine,
// '*' revealed mine.
func (board *Board) String() string {
	var out strings.Builder
	for row := 0; row < board.rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := 0; col < board.cols; col++ {
			out.WriteRune(board.cells[board.Index(col, row)].serialize())
		}
	}
	return out.String()
}
