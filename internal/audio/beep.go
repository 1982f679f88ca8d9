package audio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// BeepSound 基于 beep speaker 的播放句柄（终端界面使用）
//
// 解码后的 PCM 缓存在内存中；Ctrl 在首次播放时挂到 speaker 上，之后只切换 Paused。
// 播放结束后输出静音而不是退出 mixer，这样 Rewind 之后还能继续使用同一个 Ctrl。
type BeepSound struct {
	name     string
	format   beep.Format
	output   beep.SampleRate
	buffer   *beep.Buffer
	seeker   beep.StreamSeeker
	ctrl     *beep.Ctrl
	attached bool
	volume   float64
}

// NewBeepSound 解码 WAV 数据；output 为 speaker 的采样率
func NewBeepSound(name string, data []byte, output beep.SampleRate) (*BeepSound, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV audio %s: %w", name, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read WAV audio %s: %w", name, err)
	}

	seeker := buffer.Streamer(0, buffer.Len())
	return &BeepSound{
		name:   name,
		format: format,
		output: output,
		buffer: buffer,
		seeker: seeker,
		ctrl:   &beep.Ctrl{Streamer: seeker, Paused: true},
		volume: 1,
	}, nil
}

// Play 从当前位置播放
func (s *BeepSound) Play() error {
	if !s.attached {
		var out beep.Streamer = holdStreamer{s: s.ctrl, volume: &s.volume}
		if s.format.SampleRate != s.output {
			out = beep.Resample(4, s.format.SampleRate, s.output, out)
		}
		speaker.Play(out)
		s.attached = true
	}
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause 原地暂停
func (s *BeepSound) Pause() {
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

// Rewind 回到起点
func (s *BeepSound) Rewind() error {
	speaker.Lock()
	defer speaker.Unlock()
	if err := s.seeker.Seek(0); err != nil {
		return fmt.Errorf("failed to rewind %s: %w", s.name, err)
	}
	return nil
}

// IsPlaying 未暂停且尚未播放到结尾
func (s *BeepSound) IsPlaying() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return !s.ctrl.Paused && s.seeker.Position() < s.seeker.Len()
}

// Duration 音频时长
func (s *BeepSound) Duration() time.Duration {
	return s.format.SampleRate.D(s.buffer.Len())
}

// SetVolume 设置音量 0.0 ~ 1.0
func (s *BeepSound) SetVolume(volume float64) {
	speaker.Lock()
	s.volume = volume
	speaker.Unlock()
}

// holdStreamer 底层流结束后持续输出静音，保持挂在 mixer 上
type holdStreamer struct {
	s      beep.Streamer
	volume *float64
}

func (h holdStreamer) Stream(samples [][2]float64) (int, bool) {
	n, _ := h.s.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= *h.volume
		samples[i][1] *= *h.volume
	}
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (h holdStreamer) Err() error {
	return h.s.Err()
}
