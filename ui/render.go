package ui

import (
	"fmt"
	"math"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/font/basicfont"

	"github.com/jaekwonkang/gomines/game"
)

const (
	headerTextScale = 2
	cellTextScale   = 2
	bannerTextScale = 4
)

// renderer draws one board into a window. pixel's origin is the bottom-left
// corner while grid row 0 is the top row, so cellRect flips the row axis.
type renderer struct {
	config Config
	board  *game.Board

	headerText *text.Text
	cellText   *text.Text
	bannerText *text.Text
}

func newRenderer(config Config, board *game.Board) *renderer {
	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	return &renderer{
		config:     config,
		board:      board,
		headerText: text.New(pixel.ZV, atlas),
		cellText:   text.New(pixel.ZV, atlas),
		bannerText: text.New(pixel.ZV, atlas),
	}
}

func (rgb RGB) pixelColor() pixel.RGBA {
	return pixel.RGB(float64(rgb[0])/255, float64(rgb[1])/255, float64(rgb[2])/255)
}

func (render *renderer) windowBounds() pixel.Rect {
	width := render.config.MarginLeft + render.board.Cols()*render.config.CellSize + render.config.MarginRight
	height := render.config.MarginTop + render.board.Rows()*render.config.CellSize + render.config.MarginBottom
	return pixel.R(0, 0, float64(width), float64(height))
}

// cellRect returns the screen rectangle of the cell at (col, row).
func (render *renderer) cellRect(col, row int) pixel.Rect {
	size := float64(render.config.CellSize)
	left := float64(render.config.MarginLeft) + float64(col)*size
	top := render.windowBounds().H() - float64(render.config.MarginTop) - float64(row)*size
	return pixel.R(left, top-size, left+size, top)
}

// screenToGrid translates a mouse position to grid coordinates. The result
// may be out of bounds; the board treats those as no-ops.
func (render *renderer) screenToGrid(pos pixel.Vec) (int, int) {
	size := float64(render.config.CellSize)
	col := math.Floor((pos.X - float64(render.config.MarginLeft)) / size)
	row := math.Floor((render.windowBounds().H() - float64(render.config.MarginTop) - pos.Y) / size)
	return int(col), int(row)
}

func (render *renderer) drawBoard(win *pixelgl.Window, hovered *game.Cell, hint *game.Coord) {
	imd := imdraw.New(nil)

	for row := 0; row < render.board.Rows(); row++ {
		for col := 0; col < render.board.Cols(); col++ {
			cell := render.board.CellAt(col, row)
			rect := render.cellRect(col, row)

			fill := render.config.CellHidden
			switch {
			case cell.IsRevealed() && cell.IsMine():
				fill = render.config.CellMine
			case cell.IsRevealed():
				fill = render.config.CellRevealed
			case hint != nil && hint.Col == col && hint.Row == row:
				fill = render.config.Hint
			case cell == hovered:
				fill = render.config.Highlight
			}

			imd.Color = fill.pixelColor()
			imd.Push(rect.Min, rect.Max)
			imd.Rectangle(0)

			imd.Color = render.config.Grid.pixelColor()
			imd.Push(rect.Min, rect.Max)
			imd.Rectangle(1)

			switch {
			case cell.IsRevealed() && cell.IsMine():
				render.drawMine(imd, rect)
			case cell.IsFlagged():
				render.drawFlag(imd, rect)
			}
		}
	}
	imd.Draw(win)

	for row := 0; row < render.board.Rows(); row++ {
		for col := 0; col < render.board.Cols(); col++ {
			cell := render.board.CellAt(col, row)
			if !cell.IsRevealed() || cell.IsMine() || cell.Adjacent() == 0 {
				continue
			}

			render.cellText.Clear()
			render.cellText.Color = render.config.NumberColors[cell.Adjacent()].Color()
			fmt.Fprintf(render.cellText, "%d", cell.Adjacent())
			drawTextCentered(win, render.cellText, cellTextScale, render.cellRect(col, row).Center())
		}
	}
}

func (render *renderer) drawMine(imd *imdraw.IMDraw, rect pixel.Rect) {
	imd.Color = render.config.Text.pixelColor()
	imd.Push(rect.Center())
	imd.Circle(rect.W()*0.25, 0)
}

// drawFlag draws a pole with a pennant pointing right.
func (render *renderer) drawFlag(imd *imdraw.IMDraw, rect pixel.Rect) {
	center := rect.Center()
	size := rect.W()

	imd.Color = render.config.CellRevealed.pixelColor()
	imd.Push(pixel.V(center.X-size*0.15, center.Y-size*0.3), pixel.V(center.X-size*0.15, center.Y+size*0.3))
	imd.Line(2)

	imd.Color = render.config.flagColor().pixelColor()
	imd.Push(
		pixel.V(center.X-size*0.15, center.Y+size*0.3),
		pixel.V(center.X+size*0.3, center.Y+size*0.1),
		pixel.V(center.X-size*0.15, center.Y-size*0.1),
	)
	imd.Polygon(0)
}

// drawHeader draws the top bar: remaining-mine counter, game clock and,
// when the mouse is over a cell, that cell's coordinates.
func (render *renderer) drawHeader(win *pixelgl.Window, remaining int, clock string, hovered *game.Cell) {
	bounds := render.windowBounds()
	bar := pixel.R(0, bounds.H()-float64(render.config.MarginTop), bounds.W(), bounds.H())

	imd := imdraw.New(nil)
	imd.Color = render.config.Header.pixelColor()
	imd.Push(bar.Min, bar.Max)
	imd.Rectangle(0)
	imd.Draw(win)

	render.headerText.Clear()
	render.headerText.Color = render.config.HeaderText.Color()
	fmt.Fprintf(render.headerText, "%03d   %s", remaining, clock)

	switch render.board.State() {
	case game.Won:
		render.headerText.Color = render.config.Result.Color()
		fmt.Fprint(render.headerText, "   WIN!")
	case game.Lost:
		render.headerText.Color = render.config.CellMine.Color()
		fmt.Fprint(render.headerText, "   BOOM")
	}
	drawTextLeft(win, render.headerText, headerTextScale, pixel.V(float64(render.config.MarginLeft), bar.Center().Y))

	if hovered != nil {
		render.headerText.Clear()
		render.headerText.Color = render.config.HeaderText.Color()
		fmt.Fprintf(render.headerText, "(%d, %d)", hovered.Col(), hovered.Row())
		drawTextRight(win, render.headerText, headerTextScale, pixel.V(bounds.W()-float64(render.config.MarginRight), bar.Center().Y))
	}
}

// drawBanner dims the board and centers a message over it.
func (render *renderer) drawBanner(win *pixelgl.Window, message string) {
	bounds := render.windowBounds()
	alpha := float64(render.config.ResultOverlayAlpha) / 255

	imd := imdraw.New(nil)
	imd.Color = render.config.Background.pixelColor().Mul(pixel.Alpha(alpha))
	imd.Push(bounds.Min, bounds.Max)
	imd.Rectangle(0)
	imd.Draw(win)

	render.bannerText.Clear()
	render.bannerText.Color = render.config.Result.Color()
	fmt.Fprint(render.bannerText, message)
	drawTextCentered(win, render.bannerText, bannerTextScale, bounds.Center())
}

func drawTextCentered(win *pixelgl.Window, txt *text.Text, scale float64, at pixel.Vec) {
	offset := at.Sub(txt.Bounds().Center().Scaled(scale))
	txt.Draw(win, pixel.IM.Scaled(pixel.ZV, scale).Moved(offset))
}

func drawTextLeft(win *pixelgl.Window, txt *text.Text, scale float64, at pixel.Vec) {
	center := txt.Bounds().Center()
	offset := at.Sub(pixel.V(txt.Bounds().Min.X*scale, center.Y*scale))
	txt.Draw(win, pixel.IM.Scaled(pixel.ZV, scale).Moved(offset))
}

func drawTextRight(win *pixelgl.Window, txt *text.Text, scale float64, at pixel.Vec) {
	center := txt.Bounds().Center()
	offset := at.Sub(pixel.V(txt.Bounds().Max.X*scale, center.Y*scale))
	txt.Draw(win, pixel.IM.Scaled(pixel.ZV, scale).Moved(offset))
}
