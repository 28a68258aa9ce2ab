package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestScreenLogger(t *testing.T) {
	tests := []struct {
		name    string
		logFile string
		visible bool
	}{
		{"stderr while the board is drawn", "", false},
		{"log file", "doodle.log", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := log.New(&buf)
			logger.SetLevel(log.DebugLevel)

			screenLogger(logger, tc.logFile).Info("run ended", "score", 3)

			if got := strings.Contains(buf.String(), "run ended"); got != tc.visible {
				t.Errorf("log written = %v, expected %v (output %q)", got, tc.visible, buf.String())
			}
		})
	}
}

func TestScreenLoggerKeepsParentOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	screenLogger(logger, "").Info("dropped")
	logger.Info("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "kept") {
		t.Errorf("parent logger output = %q, expected only the parent's line", out)
	}
}
