package lottie

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleAnimation = `{
  "v": "5.7.4",
  "nm": "moktak_hit",
  "fr": 30,
  "ip": 0,
  "op": 45,
  "w": 512,
  "h": 512,
  "layers": [
    {"ind": 1, "nm": "stick", "ty": 4, "ip": 0, "op": 20},
    {"ind": 2, "nm": "body", "ty": 4, "ip": 0, "op": 45},
    {"ind": 3, "nm": "ripple", "ty": 4, "ip": 10, "op": 45}
  ]
}`

func TestParse(t *testing.T) {
	anim, err := Parse([]byte(sampleAnimation))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if anim.Version != "5.7.4" {
		t.Errorf("Version: got %q, want 5.7.4", anim.Version)
	}
	if anim.Name != "moktak_hit" {
		t.Errorf("Name: got %q, want moktak_hit", anim.Name)
	}
	if anim.Width != 512 || anim.Height != 512 {
		t.Errorf("Size: got %dx%d, want 512x512", anim.Width, anim.Height)
	}
	if len(anim.Layers) != 3 {
		t.Fatalf("Layers: got %d, want 3", len(anim.Layers))
	}
	if anim.Layers[1].Name != "body" || anim.Layers[1].Type != LayerShape {
		t.Errorf("Layer[1]: got %+v", anim.Layers[1])
	}
}

func TestAnimationTiming(t *testing.T) {
	anim, err := Parse([]byte(sampleAnimation))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := anim.FrameCount(); got != 45 {
		t.Errorf("FrameCount: got %v, want 45", got)
	}
	if got := anim.Duration(); got != 1500*time.Millisecond {
		t.Errorf("Duration: got %v, want 1.5s", got)
	}
	if got := anim.FrameAt(0.5); got != 22.5 {
		t.Errorf("FrameAt(0.5): got %v, want 22.5", got)
	}
	if got := anim.FrameAt(2); got != 45 {
		t.Errorf("FrameAt(2) should clamp: got %v, want 45", got)
	}
}

func TestVisibleLayers(t *testing.T) {
	anim, err := Parse([]byte(sampleAnimation))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tests := []struct {
		frame float64
		want  int
	}{
		{0, 2},
		{15, 3},
		{30, 2},
		{45, 0},
	}
	for _, tt := range tests {
		if got := len(anim.VisibleLayers(tt.frame)); got != tt.want {
			t.Errorf("VisibleLayers(%v): got %d layers, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTimed bool
	}{
		{"malformed", `{"fr": 30, "ip": 0,`, false},
		{"not an object", `[1, 2, 3]`, false},
		{"zero frame rate", `{"fr": 0, "ip": 0, "op": 10}`, true},
		{"empty range", `{"fr": 30, "ip": 10, "op": 10}`, true},
		{"reversed range", `{"fr": 30, "ip": 20, "op": 10}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.Is(err, ErrInvalidTiming); got != tt.wantTimed {
				t.Errorf("errors.Is(ErrInvalidTiming): got %v, want %v (err: %v)", got, tt.wantTimed, err)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "auto_ani.json")
	if err := os.WriteFile(path, []byte(sampleAnimation), 0o644); err != nil {
		t.Fatalf("failed to write sample: %v", err)
	}

	anim, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if anim.FrameRate != 30 {
		t.Errorf("FrameRate: got %v, want 30", anim.FrameRate)
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
