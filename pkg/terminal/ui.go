// Package terminal 提供基于 tcell 的终端界面
//
// 终端界面与 ebiten 场景共用 moktak.Coordinator 和 moktak.Labels，
// 只负责把按键转换为意图，并把 View 快照绘制为文本。
package terminal

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/moktak/pkg/config"
	"github.com/decker502/moktak/pkg/game"
	"github.com/decker502/moktak/pkg/moktak"
	"github.com/decker502/moktak/pkg/utils"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	volumeStep    = 0.1
	barWidth      = 32
)

// UI 终端界面
type UI struct {
	screen      tcell.Screen
	coordinator *moktak.Coordinator
	labels      *moktak.Labels
	settings    *game.SettingsManager
	links       []config.LinkConfig

	openURL func(string) error
}

// NewUI 创建终端界面，screen 需由调用方 Init
func NewUI(screen tcell.Screen, c *moktak.Coordinator, labels *moktak.Labels, settings *game.SettingsManager, links []config.LinkConfig) *UI {
	return &UI{
		screen:      screen,
		coordinator: c,
		labels:      labels,
		settings:    settings,
		links:       links,
		openURL:     utils.OpenURL,
	}
}

// Run 运行事件循环，直到按下退出键或 ctx 取消
func (u *UI) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	u.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				act, index := keyAction(ev.Key(), ev.Rune())
				if u.handle(act, index) {
					return nil
				}
			case *tcell.EventResize:
				u.screen.Sync()
			}

		case now := <-ticker.C:
			u.coordinator.Update(now.Sub(last))
			last = now
			u.draw()
		}
	}
}

// handle 执行操作，返回 true 表示退出
func (u *UI) handle(act action, index int) bool {
	switch act {
	case actQuit:
		return true
	case actTap:
		if u.coordinator.Mode() == moktak.ModeAuto {
			u.coordinator.ToggleAutoPlayback()
		} else {
			u.coordinator.Tap()
		}
	case actManual:
		u.coordinator.SetMode(moktak.ModeManual)
	case actAuto:
		u.coordinator.SetMode(moktak.ModeAuto)
	case actToggleAuto:
		u.coordinator.ToggleAutoPlayback()
	case actReset:
		u.coordinator.Reset()
	case actMute:
		u.settings.ToggleMuted()
	case actVolumeUp:
		u.settings.SetVolume(u.settings.GetSettings().Volume + volumeStep)
	case actVolumeDown:
		u.settings.SetVolume(u.settings.GetSettings().Volume - volumeStep)
	case actLink:
		if index < 0 || index >= len(u.links) {
			return false
		}
		link := u.links[index]
		if err := u.openURL(link.URL); err != nil {
			log.Printf("[Terminal] Warning: failed to open %s: %v", link.URL, err)
		}
	}
	return false
}

func (u *UI) draw() {
	u.screen.Clear()
	drawLines(u.screen, renderView(u.coordinator.View(), u.labels, u.settings.GetSettings(), u.links, barWidth))
	u.screen.Show()
}
