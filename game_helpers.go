package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tomoyk/go-life-game/model"
)

// handleResult tells the play loop what a key press asked for.
type handleResult int

const (
	// handleKeep stays on the current pattern.
	handleKeep handleResult = iota
	// handleNext skips to the next pattern.
	handleNext
	// handleStep forces an immediate tick.
	handleStep
	// handleQuit exits the player.
	handleQuit
)

// handleKeyEvent maps a key press onto a setting change or a loop action.
func handleKeyEvent(ev *tcell.EventKey, setting *model.Setting) handleResult {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return handleQuit
	case tcell.KeyRight:
		setting.MoveX(1)
	case tcell.KeyLeft:
		setting.MoveX(-1)
	case tcell.KeyDown:
		setting.MoveY(1)
	case tcell.KeyUp:
		setting.MoveY(-1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return handleQuit
		case 'n':
			return handleNext
		case '+':
			setting.AddSize(1)
		case '-':
			setting.AddSize(-1)
		case 'c':
			setting.NextColor()
		case 'l':
			setting.MoveX(1)
		case 'h':
			setting.MoveX(-1)
		case 'j':
			setting.MoveY(1)
		case 'k':
			setting.MoveY(-1)
		case ' ':
			return handleStep
		}
	}
	return handleKeep
}
