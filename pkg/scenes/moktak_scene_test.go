package scenes

import (
	"context"
	"errors"
	"testing"

	"github.com/decker502/moktak/internal/lottie"
	"github.com/decker502/moktak/pkg/config"
	"github.com/decker502/moktak/pkg/game"
	"github.com/decker502/moktak/pkg/moktak"
)

// stubLoader returns a 1s animation for every slot except the launch slot,
// which fails so the interactive area is shown immediately.
type stubLoader struct{}

func (stubLoader) LoadAnimation(ctx context.Context, url string) (*lottie.Animation, error) {
	if url == "/launch_ani.json" {
		return nil, &moktak.AssetLoadError{File: "launch_ani.json", StatusCode: 404}
	}
	return &lottie.Animation{FrameRate: 30, OutPoint: 30}, nil
}

func newTestScene(t *testing.T) (*MoktakScene, *[]string) {
	t.Helper()
	c := moktak.NewCoordinator(moktak.DefaultOptions(""), stubLoader{}, nil)
	c.Start(context.Background())
	c.WaitForLoads()
	c.Update(0)

	cfg := config.DefaultMoktakConfig()
	s := NewMoktakScene(c, moktak.NewLabels(nil), game.NewSettingsManager(1), cfg.Links)
	var opened []string
	s.openURL = func(url string) error {
		opened = append(opened, url)
		return nil
	}
	t.Cleanup(s.Close)
	return s, &opened
}

func TestDispatchManual(t *testing.T) {
	s, _ := newTestScene(t)
	c := s.coordinator

	s.dispatch(TargetAnimation, 0)
	if c.State() != moktak.StatePlaying {
		t.Fatalf("State = %v, want playing", c.State())
	}
	s.advance(1.0 / 60)
	if s.view.State != moktak.StatePlaying {
		t.Errorf("view not refreshed: %v", s.view.State)
	}

	s.dispatch(TargetReset, 0)
	if c.State() != moktak.StateReady || c.HitCount() != 0 {
		t.Errorf("after reset: state=%v hits=%d", c.State(), c.HitCount())
	}
}

func TestDispatchAuto(t *testing.T) {
	s, _ := newTestScene(t)
	c := s.coordinator

	s.dispatch(TargetModeAuto, 0)
	if c.Mode() != moktak.ModeAuto {
		t.Fatalf("Mode = %v, want auto", c.Mode())
	}
	s.dispatch(TargetAutoButton, 0)
	if c.State() != moktak.StatePlaying {
		t.Errorf("State = %v, want playing", c.State())
	}
	s.dispatch(TargetAutoButton, 0)
	if c.State() != moktak.StatePaused {
		t.Errorf("State = %v, want paused", c.State())
	}
	s.dispatch(TargetModeManual, 0)
	if c.Mode() != moktak.ModeManual || c.State() != moktak.StateReady {
		t.Errorf("after switching back: mode=%v state=%v", c.Mode(), c.State())
	}
}

func TestDispatchLinksAndMute(t *testing.T) {
	s, opened := newTestScene(t)

	s.dispatch(TargetLink, 1)
	s.dispatch(TargetLink, 5)
	if len(*opened) != 1 || (*opened)[0] != "https://smartstore.naver.com/ycmoktak" {
		t.Errorf("opened = %v", *opened)
	}

	s.openURL = func(string) error { return errors.New("no browser") }
	s.dispatch(TargetLink, 0)

	s.dispatch(TargetMute, 0)
	if !s.settings.GetSettings().Muted {
		t.Error("mute button should toggle mute")
	}
}

func TestSceneCycleCompletes(t *testing.T) {
	s, _ := newTestScene(t)
	s.dispatch(TargetAnimation, 0)
	for i := 0; i < 61; i++ {
		s.advance(1.0 / 60)
	}
	if s.coordinator.State() != moktak.StateReady {
		t.Errorf("State = %v, want ready after one cycle", s.coordinator.State())
	}
}

func TestStrikeFraction(t *testing.T) {
	anim := &lottie.Animation{
		FrameRate: 30,
		OutPoint:  40,
		Layers:    []lottie.Layer{{Name: "body"}, {Name: "strike", InPoint: 10}},
	}
	if got := strikeFraction(anim); got != 0.25 {
		t.Errorf("strikeFraction = %v, want 0.25", got)
	}
	if got := strikeFraction(nil); got != defaultStrikeAt {
		t.Errorf("nil animation = %v", got)
	}
	if got := strikeFraction(&lottie.Animation{FrameRate: 30, OutPoint: 40}); got != defaultStrikeAt {
		t.Errorf("no strike layer = %v", got)
	}
}
