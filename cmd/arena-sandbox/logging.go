package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "arena.log"
	// maxLogSize triggers rotation on startup
	maxLogSize = 10 * 1024 * 1024
)

// setupLogging returns a logger that discards everything unless debug is set.
// With debug it appends to logs/arena.log, rotating a file over maxLogSize to a
// timestamped name first. The returned file is nil when nothing was opened.
// The terminal belongs to the renderer, so logs never go to stdout or stderr.
func setupLogging(debug bool) (*logrus.Logger, *os.File) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if !debug {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.InfoLevel)
		return logger, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger.SetOutput(io.Discard)
		return logger, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("arena-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger, nil
	}

	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	logger.WithField("pid", os.Getpid()).Info("logging started")
	return logger, f
}
