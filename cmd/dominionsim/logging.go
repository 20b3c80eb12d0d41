package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// newLogger writes to stderr so stdout carries only the report.
func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}
