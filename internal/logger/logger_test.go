package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestZapLoggerWritesStructuredField(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)

	log.InfoObj("fetched", "douban_request", map[string]any{"url": "http://x"})
	log.DebugObj("hidden", "k", "v")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line at info level, got %d: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "fetched" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("missing ts field: %v", entry)
	}
	field, ok := entry["douban_request"].(map[string]any)
	if !ok || field["url"] != "http://x" {
		t.Fatalf("douban_request = %#v", entry["douban_request"])
	}
}

func TestParseLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("WARNING", &buf)
	log.InfoObj("skip", "k", 1)
	log.WarnObj("keep", "k", 1)
	if strings.Contains(buf.String(), "skip") || !strings.Contains(buf.String(), "keep") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestPackageHelpersNoopBeforeInit(t *testing.T) {
	S = nil
	DebugObj("x", "k", 1)
	ErrorObj("x", "k", 1)
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestPackageHelpersWriteToS(t *testing.T) {
	var buf bytes.Buffer
	S = New("info", &buf).z.Sugar()
	defer func() { S = nil }()

	DebugObj("hidden", "k", 1)
	ErrorObj("command failed", "error", "boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry written at info level: %s", out)
	}
	if !strings.Contains(out, `"msg":"command failed"`) || !strings.Contains(out, `"error":"boom"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestNopLoggerSatisfiesInterface(t *testing.T) {
	var l Logger = NopLogger{}
	l.InfoObj("x", "k", nil)
}
