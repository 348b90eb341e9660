package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/colorsim/parameter"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logger, logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if logger == nil {
		t.Fatal("Expected a usable logger when debug=false")
	}
	if logger.GetLevel() == log.DebugLevel {
		t.Error("Expected debug records to be suppressed when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	defer os.RemoveAll(parameter.LogDir)

	logger, logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("Expected debug level, got %v", logger.GetLevel())
	}

	logPath := filepath.Join(parameter.LogDir, parameter.LogFileName)
	logger.Debug("test log message", "key", "value")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	defer os.RemoveAll(parameter.LogDir)

	if err := os.MkdirAll(parameter.LogDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}

	logPath := filepath.Join(parameter.LogDir, parameter.LogFileName)

	// Write just over the size limit
	if err := os.WriteFile(logPath, make([]byte, parameter.MaxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	_, logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(parameter.LogDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != parameter.LogFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > parameter.MaxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", parameter.MaxLogSize, info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	defer os.RemoveAll(parameter.LogDir)

	_, logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	if logFile == os.Stdout || logFile == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}
