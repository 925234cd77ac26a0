// Package logging builds the logrus logger. The terminal belongs to the game
// screen, so records only ever go to a rotating log file.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// Options control where and how much is logged.
type Options struct {
	Level      string // logrus level name
	File       string // log file path; empty disables file output
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New returns a logger that writes nothing to the terminal. When opts.File is
// set, records at opts.Level and above are written there as JSON.
func New(opts Options) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(level)

	if opts.File == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("log file %s: %w", opts.File, err)
	}
	log.AddHook(hook)

	return log, nil
}
