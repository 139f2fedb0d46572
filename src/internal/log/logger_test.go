package log

import (
	"bytes"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(nil, nil)
		SetVerbose(false)
		SetForceStdErr(false)
	})
	return &out, &errOut
}

func TestLevels_Routing(t *testing.T) {
	out, errOut := captureLogs(t)

	Infof("hello %s", "world")
	Warnf("careful")
	Errorf("broken: %d", 42)

	if !strings.Contains(out.String(), "[INF] hello world") {
		t.Errorf("Expected info on stdout, got %q", out.String())
	}
	if !strings.Contains(out.String(), "[WRN] careful") {
		t.Errorf("Expected warning on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[ERR] broken: 42") {
		t.Errorf("Expected error on stderr, got %q", errOut.String())
	}
	if strings.Contains(out.String(), "\033[") {
		t.Error("Expected no color codes with custom writer")
	}
}

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	out, _ := captureLogs(t)

	Debugf("hidden")
	if out.Len() != 0 {
		t.Errorf("Expected no debug output, got %q", out.String())
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("Expected verbose mode")
	}
	Debugf("shown")
	if !strings.Contains(out.String(), "[DBG] shown") {
		t.Errorf("Expected debug output, got %q", out.String())
	}
}

func TestForceStdErr(t *testing.T) {
	out, errOut := captureLogs(t)

	SetForceStdErr(true)
	Infof("diagnostic")

	if out.Len() != 0 {
		t.Errorf("Expected stdout to stay empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[INF] diagnostic") {
		t.Errorf("Expected info on stderr, got %q", errOut.String())
	}
}
