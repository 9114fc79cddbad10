package commands

import (
	"io/ioutil"
	"os"

	"github.com/battlesnakeio/termsnake/config"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// setupLogging points logrus away from the terminal, which belongs to the
// game while it runs. Logs go to the configured file or nowhere.
func setupLogging(cfg config.Config) (func(), error) {
	log.SetLevel(cfg.LogLevel)
	if cfg.LogFile == "" {
		log.SetOutput(ioutil.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open log file %s", cfg.LogFile)
	}
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to close log file")
		}
	}, nil
}
