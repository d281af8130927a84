package ui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"

	"github.com/jaekwonkang/gomines/game"
)

// Options select what Run plays and how it looks.
type Options struct {
	Config   Config
	Game     game.Config
	Director game.Director
}

// Run opens the window and drives the game until the window closes. It must
// be called from the main thread, inside pixelgl.Run.
func Run(options Options) error {
	board, err := game.NewBoard(options.Game)
	if err != nil {
		return err
	}

	render := newRenderer(options.Config, board)

	win, err := pixelgl.NewWindow(pixelgl.WindowConfig{
		Title:  "gomines",
		Bounds: render.windowBounds(),
	})
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}

	if options.Director != nil {
		options.Director.Init(board)
	}

	var (
		clock     gameClock
		paused    bool
		endLogged bool

		hint      *game.Coord
		hintShown time.Time
	)

	resetBoard := func() error {
		// Boards are replaced wholesale; nothing carries over but the seed
		// offset implied by a fresh clock-based seed.
		board, err = game.NewBoard(options.Game)
		if err != nil {
			return err
		}
		render.board = board
		if options.Director != nil {
			options.Director.Init(board)
		}
		clock = gameClock{}
		paused = false
		endLogged = false
		hint = nil
		return nil
	}

	frameTick := time.Tick(time.Second / time.Duration(options.Config.FPS))
	directorTick := time.Tick(options.Config.directorInterval())

	for !win.Closed() {
		win.Update()
		win.Clear(options.Config.Background.Color())

		var hovered *game.Cell
		if win.MouseInsideWindow() {
			col, row := render.screenToGrid(win.MousePosition())
			hovered = board.CellAt(col, row)
		}

		if hint != nil && time.Since(hintShown) > options.Config.hintDuration() {
			hint = nil
		}

		playing := board.State() == game.Ongoing

		if win.JustPressed(pixelgl.KeySpace) && playing {
			paused = !paused
			if paused {
				clock.halt()
			} else if clock.started() {
				clock.resume()
			}
		}
		if win.JustPressed(pixelgl.KeyR) || (win.JustPressed(pixelgl.KeyEnter) && !playing) {
			if err := resetBoard(); err != nil {
				return err
			}
			playing = true
		}

		if playing && !paused {
			if win.JustPressed(pixelgl.KeyH) {
				hint = pickHint(board)
				hintShown = time.Now()
			}

			if hovered != nil {
				col, row := hovered.Col(), hovered.Row()
				if win.JustPressed(pixelgl.MouseButtonLeft) {
					board.Reveal(col, row)
				}
				if win.JustPressed(pixelgl.MouseButtonRight) {
					board.ToggleFlag(col, row)
				}
				if win.JustPressed(pixelgl.MouseButtonMiddle) {
					chord(board, col, row)
				}
			}

			if options.Director != nil {
				select {
				case <-directorTick:
					options.Director.Act()
				default:
				}
			}

			// The clock starts once the first reveal has placed the mines.
			if board.MinesPlaced() && !clock.started() {
				clock.resume()
			}
		}

		if board.State() != game.Ongoing {
			clock.halt()
			if !endLogged {
				endLogged = true
				logrus.WithFields(logrus.Fields{
					"result":   board.State(),
					"elapsed":  formatClock(clock.elapsed()),
					"revealed": board.RevealedCount(),
					"flagged":  board.FlaggedCount(),
				}).Info("game over")
				logrus.Debugf("final board:\n%s", board)
			}
		}

		remaining := board.NumMines() - board.FlaggedCount()
		render.drawBoard(win, hovered, hint)
		render.drawHeader(win, remaining, formatClock(clock.elapsed()), hovered)

		switch {
		case paused:
			render.drawBanner(win, "PAUSED")
		case board.Win():
			render.drawBanner(win, "YOU WIN")
		case board.GameOver():
			render.drawBanner(win, "GAME OVER")
		}

		<-frameTick
	}

	return nil
}

// chord reveals every unflagged neighbor of a revealed number cell once its
// flag count matches its adjacency, mirroring the classic middle-click.
// It is a pure composition of core reveals; flagged neighbors stay shut.
func chord(board *game.Board, col, row int) {
	cell := board.CellAt(col, row)
	if cell == nil || !cell.IsRevealed() || cell.IsMine() {
		return
	}

	flagged := 0
	for _, coord := range board.Neighbors(col, row) {
		if board.CellAt(coord.Col, coord.Row).IsFlagged() {
			flagged++
		}
	}
	if flagged != cell.Adjacent() {
		return
	}

	for _, coord := range board.Neighbors(col, row) {
		board.Reveal(coord.Col, coord.Row)
	}
}

// pickHint returns a random safe unrevealed cell, or nil when none is left.
func pickHint(board *game.Board) *game.Coord {
	var safe []game.Coord
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell := board.CellAt(col, row)
			if !cell.IsRevealed() && !cell.IsFlagged() && !cell.IsMine() {
				safe = append(safe, game.Coord{Col: col, Row: row})
			}
		}
	}
	if len(safe) == 0 {
		return nil
	}
	coord := safe[rand.Intn(len(safe))]
	return &coord
}
