package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitWritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir, "debug"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Debug("hello", "k", "v")
	Close()

	name := "courtside-" + time.Now().Format("2006-01-02") + ".log"
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("expected debug line in log, got:\n%s", data)
	}
	if !strings.Contains(string(data), "session="+SessionID[:8]) {
		t.Errorf("expected session id on every line, got:\n%s", data)
	}
}

func TestInitWriterLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWriter(&buf, "warn"); err != nil {
		t.Fatalf("InitWriter: %v", err)
	}
	Info("quiet")
	Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "loud") {
		t.Error("warn line missing")
	}
}

func TestInitWriterRejectsBadLevel(t *testing.T) {
	if err := InitWriter(&bytes.Buffer{}, "chatty"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestHelpersBeforeInit(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	Info("no logger")
	WithPrefix("x").Info("discarded")
}
