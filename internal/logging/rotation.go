package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

type RotationConfig struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultRotationConfig keeps five compressed 50MB files for at most 30 days.
func DefaultRotationConfig(filename string) RotationConfig {
	return RotationConfig{
		Filename:   filename,
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Compress:   true,
	}
}

// NewRotatingWriter returns a size-rotated log file writer.
func NewRotatingWriter(config RotationConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   config.Filename,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
		Compress:   config.Compress,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewOutput returns console alone when logFile is empty. Otherwise log lines go to both
// console and a rotating logFile, and the returned closer closes the file.
func NewOutput(console io.Writer, logFile string) (io.Writer, io.Closer) {
	if logFile == "" {
		return console, nopCloser{}
	}
	file := NewRotatingWriter(DefaultRotationConfig(logFile))
	return io.MultiWriter(console, file), file
}
