package main

import (
	"bytes"
	"strings"
	"testing"
)

// constantTrueAAG is a minimal ASCII AIGER circuit with no inputs, latches,
// or gates whose single output is the constant True (literal 1).
const constantTrueAAG = "aag 0 0 0 1 0\n1\n"

// constantFalseAAG is the same shape with the output tied to constant False.
const constantFalseAAG = "aag 0 0 0 1 0\n0\n"

func TestRunImmediateCounterexample(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-w"}, strings.NewReader(constantTrueAAG), &stdout, &stderr)

	if code != 10 {
		t.Fatalf("exit code = %d, want 10; stderr=%s", code, stderr.String())
	}
	lines := strings.Split(stdout.String(), "\n")
	if len(lines) == 0 || lines[0] != "1" {
		t.Errorf("stdout first line = %q, want \"1\"", stdout.String())
	}
}

func TestRunConstantSafe(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"5"}, strings.NewReader(constantFalseAAG), &stdout, &stderr)

	if code != 20 {
		t.Fatalf("exit code = %d, want 20; stderr=%s", code, stderr.String())
	}
	if got := strings.TrimRight(stdout.String(), "\n"); got != "0" {
		t.Errorf("stdout = %q, want \"0\"", got)
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-h"}, strings.NewReader(""), &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "usage: mcaiger") {
		t.Errorf("stdout = %q, want usage text", stdout.String())
	}
}

func TestRunBadFlagReportsUsageOnStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-z"}, strings.NewReader(""), &stdout, &stderr)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "usage: mcaiger") {
		t.Errorf("stderr = %q, want usage text", stderr.String())
	}
}

func TestRunMalformedInputReportsParseError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("not an aiger file\n"), &stdout, &stderr)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stderr.Len() == 0 {
		t.Error("expected a diagnostic on stderr")
	}
}

func TestRunMissingFileReportsError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"/nonexistent/path/to/circuit.aig"}, strings.NewReader(""), &stdout, &stderr)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if stderr.Len() == 0 {
		t.Error("expected a diagnostic on stderr")
	}
}
