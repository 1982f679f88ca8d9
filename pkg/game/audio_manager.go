package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	internalaudio "github.com/decker502/moktak/internal/audio"
	"github.com/decker502/moktak/pkg/moktak"
)

// AudioManager 音频管理器，实现 moktak.AudioFactory
//
// 职责：
//   - 每个音频 URL 只解码一次，创建一个可复用的播放器
//   - 应用 SettingsManager 中的音量/静音设置，设置变化时立即更新所有播放器
//   - 将"音频上下文未就绪"转换为 moktak.ErrPlaybackRejected
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager
	sounds          map[string]*internalaudio.Sound
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（提供音频数据和音频上下文）
//   - sm: SettingsManager 实例（可为 nil，使用满音量）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		sounds:          make(map[string]*internalaudio.Sound),
	}
	if sm != nil {
		sm.OnChange(am.applySettings)
	}
	return am
}

// NewAudio 返回 URL 对应的播放句柄，已创建过的直接复用
func (am *AudioManager) NewAudio(url string) (moktak.AudioHandle, error) {
	if sound, ok := am.sounds[url]; ok {
		return &soundHandle{sound}, nil
	}
	if am.resourceManager.AudioContext() == nil {
		return nil, fmt.Errorf("no audio context for %s", url)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	data, err := am.resourceManager.LoadSoundData(ctx, url)
	if err != nil {
		return nil, err
	}
	sound, err := internalaudio.NewSound(am.resourceManager.AudioContext(), url, data)
	if err != nil {
		return nil, err
	}
	sound.SetVolume(am.volume())
	am.sounds[url] = sound

	log.Printf("[AudioManager] Loaded sound %s (%v)", url, sound.Duration())
	return &soundHandle{sound}, nil
}

// StopAll 暂停所有播放器
func (am *AudioManager) StopAll() {
	for _, s := range am.sounds {
		s.Pause()
	}
}

func (am *AudioManager) volume() float64 {
	if am.settingsManager == nil {
		return 1
	}
	return am.settingsManager.GetSettings().EffectiveVolume()
}

func (am *AudioManager) applySettings(s Settings) {
	for _, sound := range am.sounds {
		sound.SetVolume(s.EffectiveVolume())
	}
}

// soundHandle 适配 moktak.AudioHandle
type soundHandle struct {
	*internalaudio.Sound
}

func (h *soundHandle) Play() error {
	if err := h.Sound.Play(); err != nil {
		if errors.Is(err, internalaudio.ErrContextNotReady) {
			return fmt.Errorf("%w: %v", moktak.ErrPlaybackRejected, err)
		}
		return err
	}
	return nil
}
