package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_RendersScenes(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		args   []string
		out    string
		header string
	}{
		{"default diffuse ppm", []string{"-scene", "default", "-width", "16", "-samples", "1", "-depth", "3"}, "default.ppm", "P3\n16 9\n255\n"},
		{"ground normal png", []string{"-scene", "ground", "-width", "8", "-samples", "1", "-integrator", "normal"}, "ground.png", "\x89PNG"},
		{"wrapped channels", []string{"-width", "4", "-samples", "2", "-channels", "wrap", "-seed", "5"}, "wrap.ppm", "P3\n4 2\n255\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.out)
			var stdout bytes.Buffer
			if err := run(append(tt.args, "-out", path), &stdout); err != nil {
				t.Fatalf("run failed: %v\noutput:\n%s", err, stdout.String())
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Output file missing: %v", err)
			}
			if !strings.HasPrefix(string(data), tt.header) {
				t.Errorf("Expected output starting with %q, got %q", tt.header, string(data[:min(len(data), 16)]))
			}
			if !strings.Contains(stdout.String(), "Render saved as") {
				t.Errorf("Expected completion message, got:\n%s", stdout.String())
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.ppm")

	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"-scene", "nonexistent"}},
		{"unknown integrator", []string{"-integrator", "bdpt"}},
		{"unknown channel mode", []string{"-channels", "saturate"}},
		{"zero samples", []string{"-samples", "0"}},
		{"negative width", []string{"-width", "-5"}},
		{"unsupported output", []string{"-width", "4", "-samples", "1", "-out", "render.gif"}},
		{"bad flag", []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			args := append([]string{"-out", out}, tt.args...)
			if err := run(args, &stdout); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-help"}, &stdout); err != nil {
		t.Fatalf("run -help failed: %v", err)
	}
	for _, want := range []string{"Usage:", "-scene", "default", "ground"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("Help output missing %q:\n%s", want, stdout.String())
		}
	}
}

func TestOutputDirName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"default", "default"},
		{"Three Spheres", "three-spheres"},
		{"a/b", "a-b"},
		{"  ", "scene"},
	}
	for _, tt := range tests {
		if got := outputDirName(tt.in); got != tt.expected {
			t.Errorf("outputDirName(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
