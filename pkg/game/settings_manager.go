package game

import (
	"log"
	"sync"
)

// Settings 播放设置（只保存在内存中）
type Settings struct {
	Volume float64 // 0.0 ~ 1.0
	Muted  bool
}

// DefaultSettings 返回默认设置
func DefaultSettings() Settings {
	return Settings{Volume: 1.0}
}

// EffectiveVolume 静音时为 0
func (s Settings) EffectiveVolume() float64 {
	if s.Muted {
		return 0
	}
	return s.Volume
}

// SettingsManager 设置管理器
// 设置变化时通知监听者（AudioManager 据此更新所有句柄的音量）
type SettingsManager struct {
	mu        sync.Mutex
	settings  Settings
	listeners []func(Settings)
}

// NewSettingsManager 以给定音量创建设置管理器
func NewSettingsManager(volume float64) *SettingsManager {
	s := DefaultSettings()
	s.Volume = clampVolume(volume)
	return &SettingsManager{settings: s}
}

// GetSettings 返回当前设置的副本
func (sm *SettingsManager) GetSettings() Settings {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.settings
}

// SetVolume 设置音量，超出范围的值被截断
func (sm *SettingsManager) SetVolume(volume float64) {
	sm.update(func(s *Settings) { s.Volume = clampVolume(volume) })
}

// SetMuted 设置静音
func (sm *SettingsManager) SetMuted(muted bool) {
	sm.update(func(s *Settings) { s.Muted = muted })
}

// ToggleMuted 切换静音，返回新状态
func (sm *SettingsManager) ToggleMuted() bool {
	var muted bool
	sm.update(func(s *Settings) {
		s.Muted = !s.Muted
		muted = s.Muted
	})
	return muted
}

// OnChange 注册设置变化回调
func (sm *SettingsManager) OnChange(fn func(Settings)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.listeners = append(sm.listeners, fn)
}

func (sm *SettingsManager) update(apply func(*Settings)) {
	sm.mu.Lock()
	apply(&sm.settings)
	s := sm.settings
	listeners := append([]func(Settings){}, sm.listeners...)
	sm.mu.Unlock()

	log.Printf("[SettingsManager] volume=%.2f muted=%v", s.Volume, s.Muted)
	for _, fn := range listeners {
		fn(s)
	}
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
