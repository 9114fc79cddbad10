package commands

import (
	"github.com/battlesnakeio/termsnake/runner"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
)

// commandQueue polls termbox for key presses and sends the ones that mean
// something to the game. It stops sending once done is closed.
func commandQueue(done <-chan struct{}) <-chan runner.Command {
	commands := make(chan runner.Command)
	go func() {
		for {
			ev := termbox.PollEvent()
			switch ev.Type {
			case termbox.EventInterrupt:
				return
			case termbox.EventError:
				log.WithError(ev.Err).Warn("terminal event error")
				continue
			}

			cmd, ok := toCommand(ev)
			if !ok {
				continue
			}
			select {
			case commands <- cmd:
			case <-done:
				return
			}
		}
	}()
	return commands
}

func toCommand(ev termbox.Event) (runner.Command, bool) {
	if ev.Type != termbox.EventKey {
		return 0, false
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return runner.CommandUp, true
	case termbox.KeyArrowDown:
		return runner.CommandDown, true
	case termbox.KeyArrowLeft:
		return runner.CommandLeft, true
	case termbox.KeyArrowRight:
		return runner.CommandRight, true
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return runner.CommandQuit, true
	}
	switch ev.Ch {
	case 'q', 'Q':
		return runner.CommandQuit, true
	}
	return 0, false
}
