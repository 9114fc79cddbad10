// Package config reads the tuning knobs of the game from the environment. A
// .env file in the working directory is loaded first when present, values
// already set in the environment take precedence.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/battlesnakeio/termsnake/rules"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvWidth     = "SNAKE_WIDTH"
	EnvHeight    = "SNAKE_HEIGHT"
	EnvTickMS    = "SNAKE_TICK_MS"
	EnvFoodScore = "SNAKE_FOOD_SCORE"
	EnvLogFile   = "SNAKE_LOG_FILE"
	EnvLogLevel  = "SNAKE_LOG_LEVEL"
)

// Config holds everything the game needs to start. Board dimensions include
// the wall border.
type Config struct {
	Width        int
	Height       int
	TickInterval time.Duration
	FoodScore    int
	LogFile      string
	LogLevel     log.Level
}

// Load reads the optional env file and then the environment. Missing or
// invalid values fall back to the defaults.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.WithError(err).WithField("file", f).Warn("unable to load env file")
		}
	}

	return Config{
		Width:        getEnvInt(EnvWidth, rules.DefaultWidth),
		Height:       getEnvInt(EnvHeight, rules.DefaultHeight),
		TickInterval: time.Duration(getEnvInt(EnvTickMS, int(rules.DefaultTickInterval/time.Millisecond))) * time.Millisecond,
		FoodScore:    getEnvInt(EnvFoodScore, rules.DefaultFoodScore),
		LogFile:      os.Getenv(EnvLogFile),
		LogLevel:     getEnvLevel(EnvLogLevel, log.InfoLevel),
	}
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil || intVal <= 0 {
		return defaults
	}
	return int(intVal)
}

func getEnvLevel(varName string, defaults log.Level) log.Level {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	lvl, err := log.ParseLevel(val)
	if err != nil {
		return defaults
	}
	return lvl
}

// CreateRequest turns the config into the parameters of a new game.
func (c Config) CreateRequest() rules.CreateRequest {
	return rules.CreateRequest{
		Width:        c.Width,
		Height:       c.Height,
		TickInterval: c.TickInterval,
		FoodScore:    c.FoodScore,
	}
}
