package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerRoutesLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut)

	l.Info("found %d containers", 3)
	l.Warn("missing %s", "credentials")
	l.Error("fetch failed: %v", "timeout")

	if !strings.Contains(out.String(), "found 3 containers") {
		t.Errorf("info line missing from stdout: %q", out.String())
	}
	if !strings.Contains(out.String(), "missing credentials") {
		t.Errorf("warn line missing from stdout: %q", out.String())
	}
	if strings.Contains(out.String(), "fetch failed") {
		t.Error("error line should not be written to stdout")
	}
	if !strings.Contains(errOut.String(), "fetch failed: timeout") {
		t.Errorf("error line missing from stderr: %q", errOut.String())
	}
}

func TestLoggerDebugNeedsVerbose(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo(&out, &out)

	l.Debug("hidden")
	if out.Len() != 0 {
		t.Fatalf("debug output without verbose: %q", out.String())
	}

	l.SetVerbose(true)
	l.Debug("shown %d", 1)
	if !strings.Contains(out.String(), "shown 1") {
		t.Errorf("debug line missing: %q", out.String())
	}
}

func TestLoggerFormatsPercentInArgs(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo(&out, &out)

	l.Info("name: %s", "50% off")
	if !strings.Contains(out.String(), "name: 50% off") {
		t.Errorf("argument was reinterpreted as format: %q", out.String())
	}
}
