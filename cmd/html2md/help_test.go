package main

// Notes:
// - printUsage/printConvertUsage/printWatchUsage: we test that required content
//   strings are present in the output. We don't test exact formatting as that's
//   an implementation detail.
// - runHelp: we test routing to the correct help topic.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPrintUsage - Main usage output
// ---------------------------------------------------------------------------

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	output := buf.String()

	requiredStrings := []string{
		"Usage: html2md",
		"Commands:",
		"convert",
		"watch",
		"doctor",
		"version",
		"help",
		"html2md page.html",
	}

	for _, s := range requiredStrings {
		if !strings.Contains(output, s) {
			t.Errorf("printUsage output should contain %q", s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintConvertUsage - Convert command usage output
// ---------------------------------------------------------------------------

func TestPrintConvertUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printConvertUsage(&buf)
	output := buf.String()

	// Check for flag group headers
	flagGroups := []string{
		"Arguments:",
		"Input/Output:",
		"Fetching:",
		"Preview:",
		"Watch:",
		"Output Control:",
	}

	for _, group := range flagGroups {
		if !strings.Contains(output, group) {
			t.Errorf("printConvertUsage output should contain group header %q", group)
		}
	}

	// Check for flags (both short and long forms where applicable)
	flags := []string{
		"-o, --output",
		"-c, --config",
		"-w, --workers",
		"-t, --timeout",
		"--render-js",
		"--preview",
		"--preview-style",
		"--no-preview",
		"--debounce",
		"-q, --quiet",
		"-v, --verbose",
	}

	for _, f := range flags {
		if !strings.Contains(output, f) {
			t.Errorf("printConvertUsage output should contain %q", f)
		}
	}

	// Stdin must be documented as an input form
	if !strings.Contains(output, `"-" for stdin`) {
		t.Error("printConvertUsage output should document stdin input")
	}
}

// ---------------------------------------------------------------------------
// TestPrintWatchUsage - Watch command usage output
// ---------------------------------------------------------------------------

func TestPrintWatchUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printWatchUsage(&buf)
	output := buf.String()

	requiredStrings := []string{
		"Usage: html2md watch",
		"not URLs or stdin",
		"--debounce",
		"Ctrl-C",
	}

	for _, s := range requiredStrings {
		if !strings.Contains(output, s) {
			t.Errorf("printWatchUsage output should contain %q", s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunHelp - Help command routing
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows main usage",
			args:         []string{},
			wantInStdout: []string{"Usage: html2md", "Commands:"},
		},
		{
			name:         "convert shows convert help",
			args:         []string{"convert"},
			wantInStdout: []string{"Usage: html2md convert", "Fetching:", "Preview:"},
		},
		{
			name:         "watch shows watch help",
			args:         []string{"watch"},
			wantInStdout: []string{"Usage: html2md watch", "not URLs or stdin"},
		},
		{
			name:         "doctor shows doctor help",
			args:         []string{"doctor"},
			wantInStdout: []string{"Usage: html2md doctor", "--json"},
		},
		{
			name:         "version shows version help",
			args:         []string{"version"},
			wantInStdout: []string{"Usage: html2md version"},
		},
		{
			name:         "help shows help help",
			args:         []string{"help"},
			wantInStdout: []string{"Usage: html2md help"},
		},
		{
			name:         "unknown command shows error",
			args:         []string{"unknown"},
			wantInStderr: []string{"Unknown command: unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			env := &Environment{Stdout: &stdout, Stderr: &stderr}

			runHelp(tt.args, env)

			stdoutStr := stdout.String()
			stderrStr := stderr.String()

			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdoutStr, want) {
					t.Errorf("stdout should contain %q, got %q", want, stdoutStr)
				}
			}

			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderrStr, want) {
					t.Errorf("stderr should contain %q, got %q", want, stderrStr)
				}
			}
		})
	}
}
