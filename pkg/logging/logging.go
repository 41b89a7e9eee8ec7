// Package logging configures the process logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "DAYLIST_LOG_LEVEL"

// New returns a logger writing to w at the level named by DAYLIST_LOG_LEVEL
// (warn when unset or unknown).
func New(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "daylist",
		Level:  Level(os.Getenv(EnvLevel)),
	})
	return l
}

// Level parses a level name, defaulting to warn.
func Level(name string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(name))
	if err != nil || strings.TrimSpace(name) == "" {
		return log.WarnLevel
	}
	return lvl
}

// Discard is a logger that drops everything; handy in tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
