//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译（资源准备见 embed.go）：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.moktak -o build/android/moktak.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Moktak.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/moktak/pkg/app"
	"github.com/decker502/moktak/pkg/embedded"
)

func init() {
	// 初始化嵌入资源
	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	// 移动端资源随包嵌入，不使用部署前缀
	cfg := app.Config{
		Verbose:    true,
		Production: false,
	}

	moktakApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(moktakApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
