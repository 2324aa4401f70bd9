package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	SetVerbose(true)
	Info("shown")
	SetVerbose(false)
	Info("hidden")

	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestSetOutput(t *testing.T) {
	defer reset()

	var first, second bytes.Buffer
	SetVerbose(true)
	SetOutput(&first)
	Info("one")
	SetOutput(&second)
	Info("two")

	assert.Contains(t, first.String(), "one")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "test message arg")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("info")
	Infow("infow", "k", "v")
	Warn("warn")
	Warnw("warnw", "k", "v")
	Section("section")

	assert.Zero(t, buf.Len(), "expected no output when verbose is disabled")
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Test Section")

	assert.Contains(t, buf.String(), "=== Test Section ===")
}

func TestInfo(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("info message %d", 42)

	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "info message 42")
}

func TestInfow_IncludesFields(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Infow("note added", "date", "2025-01-01")

	assert.Contains(t, buf.String(), "note added")
	assert.Contains(t, buf.String(), "date")
	assert.Contains(t, buf.String(), "2025-01-01")
}

func TestWarn(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Warn("warning message")
	Warnw("oracle failed", "status", 503)

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "warning message")
	assert.Contains(t, buf.String(), "status")
	assert.Contains(t, buf.String(), "503")
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			Info("concurrent %d", i)
			SetVerbose(false)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
