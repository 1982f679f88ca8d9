package moktak

// SilentAudioFactory 创建不发声的音频句柄，用于无音频设备的环境（check 命令、调试工具、测试）
type SilentAudioFactory struct{}

// NewAudio 实现 AudioFactory
func (SilentAudioFactory) NewAudio(url string) (AudioHandle, error) {
	return &silentAudio{}, nil
}

type silentAudio struct {
	playing bool
}

func (a *silentAudio) Play() error     { a.playing = true; return nil }
func (a *silentAudio) Pause()          { a.playing = false }
func (a *silentAudio) Rewind() error   { return nil }
func (a *silentAudio) IsPlaying() bool { return a.playing }
