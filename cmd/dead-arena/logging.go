package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logFileName = "dead-arena.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging routes the global logger to dir/dead-arena.log when debug is set
// and discards everything otherwise; the terminal owns stdout and stderr
// Returns the open log file, nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.Logger = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Logger = zerolog.Nop()
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("dead-arena-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return nil
	}

	log.Logger = zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return f
}
