package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggingWritesLevelledLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := SetupLogging(path)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !IsDebugMode() {
		t.Fatal("expected debug mode with a log file")
	}
	Warnf("row %d rejected", 7)
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "WARN row 7 rejected") {
		t.Fatalf("log missing warn line: %q", data)
	}
	if IsDebugMode() {
		t.Fatal("cleanup should leave debug mode")
	}
}

func TestSetupLoggingWithoutFileDiscards(t *testing.T) {
	cleanup, err := SetupLogging("")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer cleanup()
	if IsDebugMode() {
		t.Fatal("no file should mean no debug mode")
	}
	Infof("dropped")
}
