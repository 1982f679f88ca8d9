package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene 记录调用情况的场景
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	closed       bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) Close() {
	m.closed = true
}

// plainScene 不实现 Closer
type plainScene struct{}

func (plainScene) Update(float64)      {}
func (plainScene) Draw(*ebiten.Image) {}

// TestSceneManagerNoScene 没有活动场景时 Update/Draw 不应 panic
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no scene initially")
	}
	sm.Update(1.0 / 60)
	sm.Draw(nil)
	sm.Close()
}

// TestSceneManagerUpdateAndDraw 验证调用转发到当前场景
func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}
	sm.SwitchTo(scene)

	sm.Update(1.0 / 60)
	sm.Draw(nil)

	if !scene.updateCalled || !scene.drawCalled {
		t.Errorf("update=%v draw=%v, want both true", scene.updateCalled, scene.drawCalled)
	}
	if scene.deltaTime != 1.0/60 {
		t.Errorf("deltaTime = %v", scene.deltaTime)
	}
}

// TestSceneManagerSwitchClosesPrevious 切换场景时关闭旧场景
func TestSceneManagerSwitchClosesPrevious(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first)
	if first.closed {
		t.Fatal("switching to the same scene must not close it")
	}

	sm.SwitchTo(second)
	if !first.closed {
		t.Error("previous scene should be closed")
	}
	if sm.GetCurrentScene() != second {
		t.Error("current scene should be the second scene")
	}

	sm.SwitchTo(plainScene{})
	if !second.closed {
		t.Error("second scene should be closed")
	}
	sm.Close()
	if sm.GetCurrentScene() != nil {
		t.Error("Close should clear the current scene")
	}
}
