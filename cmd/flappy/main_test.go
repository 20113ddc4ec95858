package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestWarnReachesTerminalAndLog(t *testing.T) {
	var term, logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	warn(&term, logger, "sound disabled", errors.New("no audio device"))

	if got := term.String(); got != "Warning: sound disabled: no audio device\n" {
		t.Errorf("terminal output = %q", got)
	}
	if !strings.Contains(logs.String(), "sound disabled") || !strings.Contains(logs.String(), "no audio device") {
		t.Errorf("log output = %q, want message and error", logs.String())
	}
}

func TestNewLoggerLevel(t *testing.T) {
	defer func(level, file string) { flagLogLevel, flagLogFile = level, file }(flagLogLevel, flagLogFile)
	flagLogFile = ""

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"warn", false},
		{"loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			flagLogLevel = tt.level
			var buf bytes.Buffer
			logger, closer, err := newLogger(&buf)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for unknown level")
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger: %v", err)
			}
			defer closer.Close()

			logger.Warn("visible")
			if !strings.Contains(buf.String(), "visible") {
				t.Errorf("warning not written to fallback: %q", buf.String())
			}
		})
	}
}
