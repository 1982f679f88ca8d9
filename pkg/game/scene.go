package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个完整的界面（木鱼播放界面等）
type Scene interface {
	// Update 推进场景逻辑，deltaTime 单位为秒
	Update(deltaTime float64)

	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
}

// Closer 可选接口：场景被替换或程序退出时释放资源（暂停音频、取消加载）
type Closer interface {
	Close()
}
