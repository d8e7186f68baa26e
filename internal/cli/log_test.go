package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("fetched golang/go") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("avatar discarded") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("avatar discarded") }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("style failed") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Rendered 6 cards")

	out := buf.String()
	if !strings.Contains(out, "Rendered 6 cards (") {
		t.Errorf("output %q should carry the message and elapsed time", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "s)") {
		t.Errorf("output %q should end with a duration", out)
	}
}
