package app

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testAppName() string {
	return "pulsetimer-app-test-" + time.Now().Format("150405.000000")
}

func TestParseFlags(t *testing.T) {
	options, err := ParseFlags("pulsetimer", []string{"-config", "/tmp/c.yaml", "-log-level", "debug", "-log-file", "/tmp/p.log"}, nil)
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if options.ConfigPath != "/tmp/c.yaml" || options.LogLevel != "debug" || options.LogFile != "/tmp/p.log" {
		t.Fatalf("options = %+v", options)
	}

	if _, err := ParseFlags("pulsetimer", []string{"-unknown"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestParseFlagsHelpPrintsUsage(t *testing.T) {
	var usage bytes.Buffer
	_, err := ParseFlags("pulsetimer", []string{"-h"}, &usage)
	if !IsHelp(err) {
		t.Fatalf("err = %v want flag.ErrHelp", err)
	}
	for _, name := range []string{"-config", "-log-level", "-log-file"} {
		if !strings.Contains(usage.String(), name) {
			t.Errorf("usage missing %s: %q", name, usage.String())
		}
	}
}

func TestBootstrap(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	body := "work_duration_seconds: 30\nbreak_duration_seconds: 10\naudio_enabled: false\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var logs bytes.Buffer
	name := testAppName()
	runtime, err := Bootstrap(name, Options{ConfigPath: configPath, LogLevel: "debug"}, &logs)
	if err != nil {
		t.Skipf("bootstrap unavailable: %v", err)
	}

	session := runtime.Machine.Snapshot()
	if session.WorkDurationSeconds != 30 || session.BreakDurationSeconds != 10 || session.RemainingSeconds != 30 {
		t.Fatalf("session = %+v want 30/10", session)
	}
	if runtime.Settings.LogLevel != slog.LevelDebug {
		t.Fatalf("log level = %v want debug", runtime.Settings.LogLevel)
	}
	if !strings.Contains(logs.String(), "run_id=") || !strings.Contains(logs.String(), "timer ready") {
		t.Fatalf("logs missing run id: %q", logs.String())
	}

	if _, err := Bootstrap(name, Options{ConfigPath: configPath}, &logs); !IsAlreadyRunning(err) {
		t.Fatalf("second bootstrap error = %v want already running", err)
	}

	if err := runtime.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestBootstrapLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "pulse.log")

	runtime, err := Bootstrap(testAppName(), Options{
		ConfigPath: filepath.Join(dir, "missing.yaml"),
		LogFile:    logPath,
	}, nil)
	if err != nil {
		t.Skipf("bootstrap unavailable: %v", err)
	}
	if err := runtime.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "timer ready") {
		t.Fatalf("log file = %q", data)
	}
}

func TestBootstrapBadLogLevel(t *testing.T) {
	dir := t.TempDir()
	_, err := Bootstrap(testAppName(), Options{ConfigPath: filepath.Join(dir, "missing.yaml"), LogLevel: "chatty"}, &bytes.Buffer{})
	if err == nil {
		t.Fatalf("expected log level error")
	}
}
