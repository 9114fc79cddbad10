package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/battlesnakeio/termsnake/render"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/battlesnakeio/termsnake/runner"
	"github.com/battlesnakeio/termsnake/version"
	"github.com/davecgh/go-spew/spew"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "termsnake",
	Short:        "play snake in the terminal, arrow keys to steer and q to quit",
	Version:      version.Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(*cobra.Command, []string) error {
		return play(config.Load())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func play(cfg config.Config) error {
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	game, frame, err := rules.CreateInitialGame(cfg.CreateRequest())
	if err != nil {
		return errors.Wrap(err, "unable to create game")
	}
	log.WithFields(log.Fields{
		"GameID":       game.ID,
		"Width":        game.Width,
		"Height":       game.Height,
		"TickInterval": game.TickInterval,
	}).Info("starting game")

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialise terminal")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cancelOnSignal(ctx, cancel)

	done := make(chan struct{})
	r := &runner.Runner{
		Game:     game,
		Renderer: termboxRenderer{},
		Commands: commandQueue(done),
	}
	last, err := r.Run(ctx, frame)
	close(done)
	termbox.Close()

	if err != nil && err != context.Canceled {
		return errors.Wrap(err, "game stopped")
	}
	if log.GetLevel() >= log.DebugLevel {
		log.Debug(spew.Sdump(last))
	}

	fmt.Println(render.GameOverLine(last))
	return nil
}

func cancelOnSignal(ctx context.Context, cancel context.CancelFunc) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sig)

	select {
	case s := <-sig:
		log.WithField("signal", s).Info("stopping game")
		cancel()
	case <-ctx.Done():
	}
}
