package logrus

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "info")

	log.Info("search started", map[string]interface{}{
		"query":  "huile",
		"stores": 3,
	})

	out := buf.String()
	if !strings.Contains(out, "search started") {
		t.Errorf("Expected message in output, got %q", out)
	}
	if !strings.Contains(out, "query=huile") {
		t.Errorf("Expected query field in output, got %q", out)
	}
	if !strings.Contains(out, "stores=3") {
		t.Errorf("Expected stores field in output, got %q", out)
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "warn")

	log.Debug("should be dropped", nil)
	log.Info("also dropped", nil)
	log.Warn("kept", nil)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("Expected sub-warn messages filtered, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("Expected warn message in output, got %q", out)
	}
}

func TestLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "bogus")

	log.Info("visible", nil)
	log.Debug("hidden", nil)

	out := buf.String()
	if !strings.Contains(out, "visible") {
		t.Errorf("Expected info message at default level, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug filtered at default level, got %q", out)
	}
}
