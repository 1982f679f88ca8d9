package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ErrContextNotReady 音频上下文尚未就绪（浏览器中需要用户手势解锁）
var ErrContextNotReady = errors.New("audio context not ready")

// Sound 绑定到单个音频文件的 ebiten 播放器
// 播放器只创建一次，之后通过 Rewind 复用
type Sound struct {
	name     string
	context  *audio.Context
	player   *audio.Player
	duration time.Duration
}

// NewSound 解码音频数据并创建播放器
func NewSound(context *audio.Context, name string, data []byte) (*Sound, error) {
	stream, err := DecodeStream(name, data, context.SampleRate())
	if err != nil {
		return nil, err
	}
	player, err := context.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", name, err)
	}
	return &Sound{
		name:     name,
		context:  context,
		player:   player,
		duration: StreamDuration(stream, context.SampleRate()),
	}, nil
}

// Play 从当前位置播放
func (s *Sound) Play() error {
	if !s.context.IsReady() {
		return fmt.Errorf("%s: %w", s.name, ErrContextNotReady)
	}
	s.player.Play()
	return nil
}

// Pause 原地暂停
func (s *Sound) Pause() {
	s.player.Pause()
}

// Rewind 回到起点
func (s *Sound) Rewind() error {
	if err := s.player.Rewind(); err != nil {
		return fmt.Errorf("failed to rewind %s: %w", s.name, err)
	}
	return nil
}

// IsPlaying 是否正在播放
func (s *Sound) IsPlaying() bool {
	return s.player.IsPlaying()
}

// Duration 音频时长
func (s *Sound) Duration() time.Duration {
	return s.duration
}

// SetVolume 设置音量 0.0 ~ 1.0
func (s *Sound) SetVolume(volume float64) {
	s.player.SetVolume(volume)
}

// Close 释放播放器
func (s *Sound) Close() error {
	return s.player.Close()
}
