package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 管理当前活动场景，同一时间只有一个场景被更新和绘制
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换到新场景；旧场景实现 Closer 时会被关闭
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene == scene {
		return
	}
	if c, ok := sm.currentScene.(Closer); ok {
		c.Close()
	}
	sm.currentScene = scene
	log.Printf("[SceneManager] Switched to %T", scene)
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Close 关闭当前场景（程序退出时调用）
func (sm *SceneManager) Close() {
	if c, ok := sm.currentScene.(Closer); ok {
		c.Close()
	}
	sm.currentScene = nil
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
