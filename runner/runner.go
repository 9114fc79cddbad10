// Package runner provides the game loop. It owns the current frame, applies
// player commands between ticks, advances the game through the rules package
// once per tick and hands every new frame to a Renderer.
package runner

import (
	"context"
	"time"

	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/state"
	log "github.com/sirupsen/logrus"
)

// Command is a player action.
type Command int

// Player actions.
const (
	CommandUp Command = iota + 1
	CommandDown
	CommandLeft
	CommandRight
	CommandQuit
)

var commandDirections = map[Command]state.Direction{
	CommandUp:    state.DirectionUp,
	CommandDown:  state.DirectionDown,
	CommandLeft:  state.DirectionLeft,
	CommandRight: state.DirectionRight,
}

// Renderer draws a frame.
type Renderer interface {
	Render(game *state.Game, frame *state.Frame) error
}

// Runner will run a game to completion.
type Runner struct {
	Game     *state.Game
	Renderer Renderer
	Commands <-chan Command

	// Ticks drives the loop when set. Otherwise a ticker firing every
	// Game.TickInterval is used.
	Ticks <-chan time.Time
}

// Run renders the initial frame and then loops until the game is over or ctx
// is done. It returns the last frame reached.
func (r *Runner) Run(ctx context.Context, frame *state.Frame) (*state.Frame, error) {
	if err := r.Renderer.Render(r.Game, frame); err != nil {
		return frame, err
	}

	ticks := r.Ticks
	if ticks == nil {
		t := time.NewTicker(r.Game.TickInterval)
		defer t.Stop()
		ticks = t.C
	}
	commands := r.Commands

	for !rules.CheckForGameOver(frame) {
		select {
		case <-ctx.Done():
			return frame, ctx.Err()

		case cmd, ok := <-commands:
			if !ok {
				// input is gone, keep ticking until the game ends on its own
				commands = nil
				continue
			}
			next := r.apply(frame, cmd)
			if next == frame {
				continue
			}
			frame = next
			if err := r.Renderer.Render(r.Game, frame); err != nil {
				return frame, err
			}

		case <-ticks:
			next, err := rules.GameTick(r.Game, frame)
			if err != nil {
				// This is a GameTick error, we can assume that this is a fatal
				// error and no more game processing can take place.
				log.WithError(err).
					WithField("GameID", r.Game.ID).
					Error("ending game due to fatal error")
				return frame, err
			}
			frame = next
			if err := r.Renderer.Render(r.Game, frame); err != nil {
				return frame, err
			}
		}
	}

	log.WithFields(log.Fields{
		"GameID": r.Game.ID,
		"Turn":   frame.Turn,
		"Score":  frame.Score,
	}).Info("game over")
	return frame, nil
}

// apply handles a single command. Only a quit produces a new frame, direction
// changes are buffered on the current one.
func (r *Runner) apply(frame *state.Frame, cmd Command) *state.Frame {
	if cmd == CommandQuit {
		log.WithFields(log.Fields{
			"GameID": r.Game.ID,
			"Turn":   frame.Turn,
		}).Info("player quit")
		return rules.Quit(frame)
	}

	d, ok := commandDirections[cmd]
	if !ok {
		return frame
	}
	if !rules.Steer(frame, d) {
		log.WithFields(log.Fields{
			"GameID":    r.Game.ID,
			"Turn":      frame.Turn,
			"Direction": d,
		}).Debug("ignored direction change")
	}
	return frame
}
