// Package app 提供木鱼应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端、浏览器（wasm）和移动端共用。
// 桌面端通过 internal/cli 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/moktak/pkg/config"
	"github.com/decker502/moktak/pkg/game"
	"github.com/decker502/moktak/pkg/moktak"
	"github.com/decker502/moktak/pkg/scenes"
	"github.com/decker502/moktak/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Production 使用生产部署前缀（如 /nfc-moktak）
	Production bool
	// AssetURL 非空时通过 HTTP 从该地址加载资源，否则使用嵌入资源
	AssetURL string
	// ConfigPath 非空时从文件系统读取配置，否则使用嵌入的 data/moktak.yaml
	ConfigPath string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	audioManager             *game.AudioManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 动画在后台并发加载，NewApp 不等待加载完成。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	moktakConfig, strs, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}

	prefix := config.RuntimeBasePath(cfg.Production, moktakConfig.ProductionBasePath)
	log.Printf("[App] Asset prefix: %q", prefix)

	var fetcher game.AssetFetcher
	if cfg.AssetURL != "" {
		fetcher = game.NewHTTPFetcher(cfg.AssetURL)
		log.Printf("[App] Loading assets from %s", cfg.AssetURL)
	} else {
		fetcher = game.NewEmbeddedFetcher(prefix)
	}

	audioContext := audio.NewContext(moktakConfig.Audio.SampleRate)
	resourceManager := game.NewResourceManager(fetcher, audioContext)
	settingsManager := game.NewSettingsManager(moktakConfig.Audio.Volume)
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized (%d Hz)", moktakConfig.Audio.SampleRate)

	coordinator := moktak.NewCoordinator(moktak.OptionsFromConfig(moktakConfig, prefix), resourceManager, audioManager)
	coordinator.Start(context.Background())

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewMoktakScene(coordinator, moktak.NewLabels(strs), settingsManager, moktakConfig.Links))

	return &App{
		sceneManager: sceneManager,
		audioManager: audioManager,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸（竖屏）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Close 关闭当前场景并停止所有音频
func (a *App) Close() {
	a.sceneManager.Close()
	a.audioManager.StopAll()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
