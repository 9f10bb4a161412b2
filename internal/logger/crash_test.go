package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCrashContext_Setters(t *testing.T) {
	// Reset global context
	globalContext = &CrashContext{}

	SetBasePath("/tmp/test-jarvis")
	SetVersion("1.0.0-test")
	SetCommand("chat")
	SetLastUtterance("  schedule tea at 4 pm  ")

	if globalContext.basePath != "/tmp/test-jarvis" {
		t.Errorf("basePath = %q", globalContext.basePath)
	}
	if globalContext.lastUtterance != "schedule tea at 4 pm" {
		t.Errorf("lastUtterance = %q, want trimmed", globalContext.lastUtterance)
	}
}

func TestSetLastUtterance_Truncates(t *testing.T) {
	globalContext = &CrashContext{}

	SetLastUtterance(strings.Repeat("a", 600))
	if !strings.HasSuffix(globalContext.lastUtterance, "... [truncated]") {
		t.Error("long utterance not truncated")
	}
}

func TestWriteCrashLog(t *testing.T) {
	globalContext = &CrashContext{}
	SetBasePath(t.TempDir())
	SetVersion("test")
	SetCommand("say")

	log := createCrashLog("boom")
	if log.PanicValue != "boom" {
		t.Errorf("PanicValue = %q", log.PanicValue)
	}
	if err := writeCrashLog(log); err != nil {
		t.Fatalf("writeCrashLog: %v", err)
	}

	path := getCrashLogPath(log.Timestamp)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read crash log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "JARVIS CRASH LOG") || !strings.Contains(content, "boom") {
		t.Errorf("unexpected crash log content:\n%s", content)
	}
}

func TestCleanOldCrashLogs(t *testing.T) {
	globalContext = &CrashContext{}
	base := t.TempDir()
	SetBasePath(base)

	dir := filepath.Join(base, CrashLogDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	// Create more logs than the cap allows.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < MaxCrashLogs+3; i++ {
		name := "crash_" + start.Add(time.Duration(i)*time.Minute).Format("20060102_150405") + ".log"
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := cleanOldCrashLogs(dir); err != nil {
		t.Fatalf("cleanOldCrashLogs: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != MaxCrashLogs-1 {
		t.Errorf("kept %d logs, want %d", len(entries), MaxCrashLogs-1)
	}
}
