package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/colorsim/parameter"
)

// setupLogging returns a silent logger unless debug is set, in which case
// records go to logs/colorsim.log, rotating an oversized previous file
// The returned file is nil when logging is disabled
func setupLogging(debug bool) (*log.Logger, *os.File) {
	if !debug {
		logger := log.New(io.Discard)
		log.SetDefault(logger)
		return logger, nil
	}

	if err := os.MkdirAll(parameter.LogDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		return setupLogging(false)
	}

	logPath := filepath.Join(parameter.LogDir, parameter.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > parameter.MaxLogSize {
		rotated := filepath.Join(parameter.LogDir,
			fmt.Sprintf("colorsim_%s.log", time.Now().Format("20060102_150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return setupLogging(false)
	}

	logger := log.NewWithOptions(logFile, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
	})
	log.SetDefault(logger)
	logger.Info("logging started", "pid", os.Getpid())
	return logger, logFile
}
