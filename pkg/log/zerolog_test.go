package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf)).Component("loop")

	z.Info("new files",
		Strings("files", []string{"a.jpg", "b.png"}),
		Int("count", 2),
		Duration("took", 1500*time.Millisecond),
		Err(errors.New("boom")),
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if entry["message"] != "new files" {
		t.Errorf("message = %v, want new files", entry["message"])
	}
	if entry["component"] != "loop" {
		t.Errorf("component = %v, want loop", entry["component"])
	}
	if entry["count"] != float64(2) {
		t.Errorf("count = %v, want 2", entry["count"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want boom", entry["error"])
	}
	files, ok := entry["files"].([]interface{})
	if !ok || len(files) != 2 {
		t.Errorf("files = %v, want 2 entries", entry["files"])
	}
}

func TestZerologAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel))

	z.Debug("hidden")
	z.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn level, got %q", buf.String())
	}

	z.Warn("shown")
	if buf.Len() == 0 {
		t.Error("expected warn output")
	}
}
