package main

import (
	"bytes"
	"strings"
	"testing"

	"uk.ac.bris.cs/lifestep/gol"
)

func TestRunPattern(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-pattern", "0110,1001,1001,0110"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	want := "Updated grid:\n0 1 1 0\n1 0 0 1\n1 0 0 1\n0 1 1 0\n"
	if stdout.String() != want {
		t.Errorf("got %q, want %q", stdout.String(), want)
	}
}

func TestRunDefaultBoard(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-seed", "3"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 11 || lines[0] != "Updated grid:" {
		t.Fatalf("unexpected output %q", stdout.String())
	}
	for _, line := range lines[1:] {
		tokens := strings.Fields(line)
		if len(tokens) != 10 {
			t.Errorf("row %q has %d tokens", line, len(tokens))
		}
		for _, tok := range tokens {
			if tok != "0" && tok != "1" {
				t.Errorf("unexpected token %q", tok)
			}
		}
	}

	var again bytes.Buffer
	run([]string{"-seed", "3"}, &again, &stderr)
	if again.String() != stdout.String() {
		t.Error("same seed produced different output")
	}
}

func TestRunVerboseLogsPhases(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-pattern", "010,101,000", "-verbose"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	for _, phase := range []string{"Dispatching", "AwaitingCompletion", "Merged"} {
		if !strings.Contains(stderr.String(), phase) {
			t.Errorf("stderr %q missing %s", stderr.String(), phase)
		}
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero rows", []string{"-rows", "0"}, "acquire grid buffer"},
		{"bad pattern", []string{"-pattern", "01,2"}, "parse grid"},
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(test.args, &stdout, &stderr); code != 1 {
				t.Fatalf("exit code %d, want 1", code)
			}
			if stdout.Len() != 0 {
				t.Errorf("unexpected stdout %q", stdout.String())
			}
			if !strings.Contains(stderr.String(), test.want) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), test.want)
			}
		})
	}
}

func TestBoardSizeFollowsPattern(t *testing.T) {
	tests := []struct {
		name       string
		p          gol.Params
		rows, cols int
	}{
		{"flags", gol.Params{Rows: 10, Cols: 10}, 10, 10},
		{"wider pattern", gol.Params{Rows: 10, Cols: 10, Pattern: []string{"00000000001", "00000000000"}}, 2, 11},
		{"smaller pattern", gol.Params{Pattern: []string{"010", "101", "000"}}, 3, 3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rows, cols, err := boardSize(test.p)
			if err != nil {
				t.Fatal(err)
			}
			if rows != test.rows || cols != test.cols {
				t.Errorf("got %dx%d, want %dx%d", rows, cols, test.rows, test.cols)
			}
		})
	}
	if _, _, err := boardSize(gol.Params{Pattern: []string{"01", "2"}}); err == nil {
		t.Error("expected a parse error")
	}
}
