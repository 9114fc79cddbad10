package commands

import (
	"errors"

	"github.com/battlesnakeio/termsnake/render"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/state"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	foodColor    = termbox.ColorRed
)

type termboxRenderer struct{}

func (termboxRenderer) Render(game *state.Game, frame *state.Frame) error {
	if frame == nil {
		return errors.New("received nil frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	for y, row := range render.Grid(game, frame) {
		for x, r := range row {
			termbox.SetCell(x, y, r, cellColor(r), bgColor)
		}
	}

	tbprint(0, game.Height, defaultColor, defaultColor, render.StatusLine(frame))
	footer := render.HelpLine()
	if rules.CheckForGameOver(frame) {
		footer = render.GameOverLine(frame)
	}
	tbprint(0, game.Height+1, defaultColor, defaultColor, footer)

	return termbox.Flush()
}

func cellColor(r rune) termbox.Attribute {
	switch r {
	case render.Head, render.Body:
		return snakeColor
	case render.Food:
		return foodColor
	}
	return defaultColor
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
