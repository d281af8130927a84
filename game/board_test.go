package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaekwonkang/gomines/game"
)

func mustBoard(t *testing.T, config game.Config) *game.Board {
	t.Helper()
	board, err := game.NewBoard(config)
	require.NoError(t, err)
	return board
}

func countMines(board *game.Board) int {
	count := 0
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if board.CellAt(col, row).IsMine() {
				count++
			}
		}
	}
	return count
}

func countRevealed(board *game.Board) int {
	count := 0
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if board.CellAt(col, row).IsRevealed() {
				count++
			}
		}
	}
	return count
}

func TestNewBoardValidation(t *testing.T) {
	testCases := []struct {
		name   string
		config game.Config
		ok     bool
	}{
		{"zero cols", game.Config{Cols: 0, Rows: 5, Mines: 1}, false},
		{"zero rows", game.Config{Cols: 5, Rows: 0, Mines: 1}, false},
		{"negative mines", game.Config{Cols: 5, Rows: 5, Mines: -1}, false},
		{"no room for safe zone", game.Config{Cols: 3, Rows: 3, Mines: 1}, false},
		{"mine-free 3x3", game.Config{Cols: 3, Rows: 3, Mines: 0}, true},
		{"exactly full pool", game.Config{Cols: 5, Rows: 5, Mines: 16}, true},
		{"one over full pool", game.Config{Cols: 5, Rows: 5, Mines: 17}, false},
		{"tiny mine-free board", game.Config{Cols: 2, Rows: 2, Mines: 0}, true},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			board, err := game.NewBoard(test.config)
			if test.ok {
				require.NoError(t, err)
				require.NotNil(t, board)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFirstClickSafety(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 5, Rows: 5, Mines: 1, Seed: 1})
	board.Reveal(2, 2)

	assert.True(t, board.MinesPlaced())
	assert.False(t, board.CellAt(2, 2).IsMine())
	for _, coord := range board.Neighbors(2, 2) {
		assert.False(t, board.CellAt(coord.Col, coord.Row).IsMine(), "%v", coord)
	}
	assert.Equal(t, 1, countMines(board))
	assert.GreaterOrEqual(t, board.RevealedCount(), 1)
	assert.False(t, board.GameOver())
}

func TestPlacementAcrossSeeds(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		board := mustBoard(t, game.Config{Cols: 9, Rows: 9, Mines: 40, Seed: seed})
		board.Reveal(4, 4)

		require.Equal(t, 40, countMines(board), "seed %d", seed)
		require.False(t, board.CellAt(4, 4).IsMine(), "seed %d", seed)
		for _, coord := range board.Neighbors(4, 4) {
			require.False(t, board.CellAt(coord.Col, coord.Row).IsMine(), "seed %d %v", seed, coord)
		}
	}
}

func TestAdjacencyCounts(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 9, Rows: 9, Mines: 20, Seed: 3})
	board.Reveal(4, 4)

	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell := board.CellAt(col, row)
			if cell.IsMine() {
				continue
			}
			want := 0
			for _, coord := range board.Neighbors(col, row) {
				if board.CellAt(coord.Col, coord.Row).IsMine() {
					want++
				}
			}
			assert.Equal(t, want, cell.Adjacent(), "cell (%d, %d)", col, row)
		}
	}
}

func TestRevealOutOfBoundsIsNoop(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 5, Rows: 5, Mines: 3, Seed: 1})

	board.Reveal(-1, 0)
	board.Reveal(0, -1)
	board.Reveal(5, 0)
	board.Reveal(0, 5)

	assert.False(t, board.MinesPlaced())
	assert.Equal(t, 0, board.RevealedCount())
}

func TestRevealFlaggedCellIsNoop(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 5, Rows: 5, Mines: 3, Seed: 1})

	board.ToggleFlag(2, 2)
	board.Reveal(2, 2)

	assert.False(t, board.CellAt(2, 2).IsRevealed())
	assert.Equal(t, 0, board.RevealedCount())
	// Flags block placement too: the first effective reveal is still pending.
	assert.False(t, board.MinesPlaced())

	board.ToggleFlag(2, 2)
	board.Reveal(2, 2)
	assert.True(t, board.CellAt(2, 2).IsRevealed())
	assert.True(t, board.MinesPlaced())
}

func TestRevealRevealedCellIsNoop(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 6, Rows: 6, Mines: 8, Seed: 5})
	board.Reveal(3, 3)

	before := board.String()
	revealed := board.RevealedCount()

	board.Reveal(3, 3)

	assert.Equal(t, before, board.String())
	assert.Equal(t, revealed, board.RevealedCount())
}

func TestMineFreeBoardFloodsToWin(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 3, Rows: 3, Mines: 0, Seed: 1})
	board.Reveal(1, 0)

	assert.Equal(t, 9, board.RevealedCount())
	assert.Equal(t, 9, countRevealed(board))
	assert.True(t, board.Win())
	assert.False(t, board.GameOver())
	assert.Equal(t, game.Won, board.State())
}

// ongoingBoard reveals the first cell and returns a board that is neither won
// nor lost, retrying seeds so the test does not depend on one layout.
func ongoingBoard(t *testing.T, config game.Config, col, row int) *game.Board {
	t.Helper()
	for seed := int64(1); seed <= 100; seed++ {
		config.Seed = seed
		board := mustBoard(t, config)
		board.Reveal(col, row)
		if board.State() == game.Ongoing {
			return board
		}
	}
	t.Fatal("no seed produced an ongoing board")
	return nil
}

func TestLossRevealsEveryMine(t *testing.T) {
	board := ongoingBoard(t, game.Config{Cols: 8, Rows: 8, Mines: 10}, 0, 0)

	var mine *game.Cell
	for row := 0; row < board.Rows() && mine == nil; row++ {
		for col := 0; col < board.Cols() && mine == nil; col++ {
			if board.CellAt(col, row).IsMine() {
				mine = board.CellAt(col, row)
			}
		}
	}
	require.NotNil(t, mine)

	board.Reveal(mine.Col(), mine.Row())

	assert.True(t, board.GameOver())
	assert.False(t, board.Win())
	assert.Equal(t, game.Lost, board.State())
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell := board.CellAt(col, row)
			if cell.IsMine() {
				assert.True(t, cell.IsRevealed(), "mine (%d, %d)", col, row)
			}
		}
	}
	assert.Equal(t, countRevealed(board), board.RevealedCount())

	// Lost boards are terminal.
	before := board.String()
	board.Reveal(7, 7)
	board.ToggleFlag(7, 7)
	assert.Equal(t, before, board.String())
}

func TestTerminalBoardIgnoresMutations(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 3, Rows: 3, Mines: 0, Seed: 1})
	board.Reveal(0, 0)
	require.True(t, board.Win())

	before := board.String()
	flagged := board.FlaggedCount()

	board.Reveal(2, 2)
	board.ToggleFlag(2, 2)

	assert.Equal(t, before, board.String())
	assert.Equal(t, flagged, board.FlaggedCount())
}

func TestWinByRevealingEverySafeCell(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 6, Rows: 6, Mines: 5, Seed: 2})
	board.Reveal(3, 3)

	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			if !board.CellAt(col, row).IsMine() {
				board.Reveal(col, row)
			}
		}
	}

	assert.True(t, board.Win())
	assert.False(t, board.GameOver())
	assert.Equal(t, board.NumCells()-board.NumMines(), board.RevealedCount())
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell := board.CellAt(col, row)
			assert.Equal(t, !cell.IsMine(), cell.IsRevealed(), "cell (%d, %d)", col, row)
		}
	}
}

func TestFlagToggle(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 5, Rows: 5, Mines: 3, Seed: 9})
	target := board.CellAt(2, 2)

	board.ToggleFlag(2, 2)
	assert.True(t, target.IsFlagged())
	assert.Equal(t, 1, board.FlaggedCount())

	board.ToggleFlag(2, 2)
	assert.False(t, target.IsFlagged())
	assert.Equal(t, 0, board.FlaggedCount())
}

func TestFlagOnRevealedCellIsNoop(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 5, Rows: 5, Mines: 3, Seed: 9})
	board.Reveal(2, 2)
	require.True(t, board.CellAt(2, 2).IsRevealed())

	board.ToggleFlag(2, 2)

	assert.False(t, board.CellAt(2, 2).IsFlagged())
	assert.Equal(t, 0, board.FlaggedCount())
}

func TestFlagOutOfBoundsIsNoop(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 5, Rows: 5, Mines: 3, Seed: 9})
	board.ToggleFlag(-1, -1)
	board.ToggleFlag(5, 5)
	assert.Equal(t, 0, board.FlaggedCount())
}

func TestRevealedCountIsMonotonic(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 9, Rows: 9, Mines: 15, Seed: 4})

	ops := []func(){
		func() { board.Reveal(4, 4) },
		func() { board.ToggleFlag(0, 0) },
		func() { board.Reveal(0, 0) },
		func() { board.ToggleFlag(0, 0) },
		func() { board.Reveal(0, 0) },
		func() { board.Reveal(8, 8) },
		func() { board.ToggleFlag(8, 0) },
		func() { board.Reveal(0, 8) },
		func() { board.Reveal(8, 0) },
	}

	last := 0
	for i, op := range ops {
		op()
		assert.GreaterOrEqual(t, board.RevealedCount(), last, "op %d", i)
		assert.Equal(t, countRevealed(board), board.RevealedCount(), "op %d", i)
		last = board.RevealedCount()
	}
}

func TestNeighborsOrderAndBounds(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 3, Rows: 3, Mines: 0})

	assert.Equal(t, []game.Coord{
		{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0},
		{Col: 0, Row: 1}, {Col: 2, Row: 1},
		{Col: 0, Row: 2}, {Col: 1, Row: 2}, {Col: 2, Row: 2},
	}, board.Neighbors(1, 1))

	assert.Equal(t, []game.Coord{
		{Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1},
	}, board.Neighbors(0, 0))

	assert.Equal(t, []game.Coord{
		{Col: 0, Row: 0}, {Col: 2, Row: 0},
		{Col: 0, Row: 1}, {Col: 1, Row: 1}, {Col: 2, Row: 1},
	}, board.Neighbors(1, 0))
}

func TestIndexAndBounds(t *testing.T) {
	board := mustBoard(t, game.Config{Cols: 4, Rows: 3, Mines: 0})

	assert.Equal(t, 0, board.Index(0, 0))
	assert.Equal(t, 3, board.Index(3, 0))
	assert.Equal(t, 4, board.Index(0, 1))
	assert.Equal(t, 11, board.Index(3, 2))

	assert.True(t, board.InBounds(0, 0))
	assert.True(t, board.InBounds(3, 2))
	assert.False(t, board.InBounds(4, 0))
	assert.False(t, board.InBounds(0, 3))
	assert.False(t, board.InBounds(-1, 0))

	assert.Nil(t, board.CellAt(4, 0))
	assert.Nil(t, board.CellAt(-1, -1))
	require.NotNil(t, board.CellAt(3, 2))
	assert.Equal(t, 3, board.CellAt(3, 2).Col())
	assert.Equal(t, 2, board.CellAt(3, 2).Row())
}

func TestSeededBoardsAreDeterministic(t *testing.T) {
	config := game.Config{Cols: 9, Rows: 9, Mines: 20, Seed: 42}

	first := mustBoard(t, config)
	second := mustBoard(t, config)
	first.Reveal(4, 4)
	second.Reveal(4, 4)

	assert.Equal(t, first.String(), second.String())
}
