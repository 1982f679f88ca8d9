// Package utils 提供界面层共用的输入、几何、缓动与平台工具
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 当前帧的指针输入状态
// 统一处理鼠标和触摸
type InputState struct {
	// 是否有点击/触摸刚刚发生
	JustPressed bool
	// 指针位置
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
}

// GetInputState 获取当前帧的输入状态，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	if allTouchIDs := ebiten.AppendTouchIDs(nil); len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		state.JustPressed = true
	}
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

// KeyAction 键盘快捷键对应的操作
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeyTap
	KeyToggleMode
	KeyToggleAuto
	KeyReset
	KeyMute
)

// GetKeyAction 返回本帧刚按下的快捷键（桌面端）
// 空格=敲击，M=切换模式，P=自动播放/暂停，R=重置，S=静音
func GetKeyAction() KeyAction {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return KeyTap
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		return KeyToggleMode
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		return KeyToggleAuto
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return KeyReset
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		return KeyMute
	}
	return KeyNone
}
