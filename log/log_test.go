package log

import (
	"os"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	// 测试初始化和基本日志功能
	os.Setenv(envLogName, "test.log")
	defer os.Remove("test.log")

	Load()

	l := New("test-module")
	l.Info("test info message")
	l.Error("test error message")
	l.Debug("test debug message")
	l.Warn("test warn message")
}

func TestSanitizePayload_Truncate(t *testing.T) {
	long := strings.Repeat("a", maxPayloadLen+100)
	got := SanitizePayload(long)
	if !strings.HasSuffix(got, "...(truncated)") {
		t.Errorf("long payload should be truncated")
	}
	if len(got) > maxPayloadLen+len("...(truncated)") {
		t.Errorf("truncated payload too long: %d", len(got))
	}
}

func TestSanitizePayload_ControlChars(t *testing.T) {
	got := SanitizePayload("a\x00b\x1bc\x7fd")
	if got != "abcd" {
		t.Errorf("control chars should be stripped, got %q", got)
	}

	// 可转义的空白字符保留，由写入链转义
	got = SanitizePayload("a\nb\tc")
	if got != "a\nb\tc" {
		t.Errorf("escapable whitespace should survive, got %q", got)
	}
}

func TestSanitizePayload_Empty(t *testing.T) {
	if got := SanitizePayload(""); got != "" {
		t.Errorf("empty payload should stay empty, got %q", got)
	}
}
