// Package audio 解码木鱼音效并封装可复用的播放句柄
//
// 两套后端：
//   - Sound: ebiten audio.Player，用于窗口/浏览器/移动端
//   - BeepSound: gopxl/beep speaker，用于终端界面
package audio

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// bytesPerFrame ebiten 解码结果为 16-bit 立体声
const bytesPerFrame = 4

// Stream 解码后的 PCM 流
type Stream interface {
	io.ReadSeeker
	Length() int64
}

// DecodeStream 按扩展名解码音频数据，并重采样到 sampleRate
// 支持 .wav / .mp3 / .ogg
func DecodeStream(name string, data []byte, sampleRate int) (Stream, error) {
	reader := bytes.NewReader(data)
	ext := strings.ToLower(filepath.Ext(name))

	switch ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", name, err)
		}
		return s, nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", name, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", name, err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
}

// StreamDuration 根据流长度计算时长
func StreamDuration(s Stream, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	frames := s.Length() / bytesPerFrame
	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}
