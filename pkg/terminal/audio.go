package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	internalaudio "github.com/decker502/moktak/internal/audio"
	"github.com/decker502/moktak/pkg/game"
	"github.com/decker502/moktak/pkg/moktak"
)

// SoundLoader 提供音频原始字节（game.ResourceManager 实现了该接口）
type SoundLoader interface {
	LoadSoundData(ctx context.Context, url string) ([]byte, error)
}

// BeepAudioFactory 基于 beep speaker 的 moktak.AudioFactory
//
// speaker 未初始化成功时 NewAudio 返回错误，对应的槽只播放动画。
type BeepAudioFactory struct {
	loader     SoundLoader
	settings   *game.SettingsManager
	sampleRate beep.SampleRate
	ready      bool
	sounds     map[string]*internalaudio.BeepSound
}

// NewBeepAudioFactory 创建音频工厂并初始化 speaker
// 初始化失败不是致命错误，返回的工厂仍可使用（所有音频都会失败）
func NewBeepAudioFactory(loader SoundLoader, settings *game.SettingsManager, sampleRate int) (*BeepAudioFactory, error) {
	f := newBeepAudioFactory(loader, settings, sampleRate)
	sr := f.sampleRate
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		log.Printf("[BeepAudio] Warning: speaker init failed: %v", err)
		return f, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	f.ready = true
	return f, nil
}

func newBeepAudioFactory(loader SoundLoader, settings *game.SettingsManager, sampleRate int) *BeepAudioFactory {
	f := &BeepAudioFactory{
		loader:     loader,
		settings:   settings,
		sampleRate: beep.SampleRate(sampleRate),
		sounds:     make(map[string]*internalaudio.BeepSound),
	}
	if settings != nil {
		settings.OnChange(f.applySettings)
	}
	return f
}

// NewAudio 实现 moktak.AudioFactory
func (f *BeepAudioFactory) NewAudio(url string) (moktak.AudioHandle, error) {
	if sound, ok := f.sounds[url]; ok {
		return sound, nil
	}
	if !f.ready {
		return nil, fmt.Errorf("speaker not initialized for %s", url)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	data, err := f.loader.LoadSoundData(ctx, url)
	if err != nil {
		return nil, err
	}
	sound, err := internalaudio.NewBeepSound(url, data, f.sampleRate)
	if err != nil {
		return nil, err
	}
	sound.SetVolume(f.volume())
	f.sounds[url] = sound

	log.Printf("[BeepAudio] Loaded sound %s (%v)", url, sound.Duration())
	return sound, nil
}

// Close 暂停所有声音并关闭 speaker
func (f *BeepAudioFactory) Close() {
	for _, s := range f.sounds {
		s.Pause()
	}
	if f.ready {
		speaker.Close()
		f.ready = false
	}
}

func (f *BeepAudioFactory) volume() float64 {
	if f.settings == nil {
		return 1
	}
	return f.settings.GetSettings().EffectiveVolume()
}

func (f *BeepAudioFactory) applySettings(s game.Settings) {
	for _, sound := range f.sounds {
		sound.SetVolume(s.EffectiveVolume())
	}
}
