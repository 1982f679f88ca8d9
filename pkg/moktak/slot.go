package moktak

import (
	"context"
	"log"
	"time"

	"github.com/decker502/moktak/internal/lottie"
)

// AnimationLoader 根据 URL 加载并解析动画资源
// 实现可以在任意 goroutine 中被调用
type AnimationLoader interface {
	LoadAnimation(ctx context.Context, url string) (*lottie.Animation, error)
}

// AudioHandle 可复用的音频句柄，绑定到固定的音频文件
type AudioHandle interface {
	// Play 从当前位置开始播放，被平台拒绝时返回 ErrPlaybackRejected
	Play() error
	// Pause 原地暂停
	Pause()
	// Rewind 回到起点并重置解码器状态
	Rewind() error
	// IsPlaying 返回是否正在发声
	IsPlaying() bool
}

// AudioFactory 根据 URL 创建音频句柄
type AudioFactory interface {
	NewAudio(url string) (AudioHandle, error)
}

// durationer 可选接口：能报告音频时长的句柄
type durationer interface {
	Duration() time.Duration
}

// loadResult 异步加载结果，由加载 goroutine 发送，在 Update 中应用
type loadResult struct {
	kind  SlotKind
	asset *lottie.Animation
	err   error
}

// Slot 资源槽：一个动画资源 +（手动/自动槽）一个音频句柄
type Slot struct {
	kind        SlotKind
	animURL     string
	audioURL    string
	status      SlotStatus
	asset       *lottie.Animation
	errorDetail string

	audio        AudioHandle
	audioFactory AudioFactory
	audioFailed  bool

	playhead *Playhead
}

func newSlot(kind SlotKind, animURL, audioURL string, factory AudioFactory) *Slot {
	return &Slot{
		kind:         kind,
		animURL:      animURL,
		audioURL:     audioURL,
		status:       SlotLoading,
		audioFactory: factory,
	}
}

// Kind 返回槽类型
func (s *Slot) Kind() SlotKind { return s.kind }

// Status 返回加载状态
func (s *Slot) Status() SlotStatus { return s.status }

// Asset 返回已加载的动画，未就绪时为 nil
func (s *Slot) Asset() *lottie.Animation { return s.asset }

// ErrorDetail 返回加载失败提示，仅在 Status()==SlotFailed 时非空
func (s *Slot) ErrorDetail() string { return s.errorDetail }

// load 同步加载动画，供加载 goroutine 调用
func (s *Slot) load(ctx context.Context, loader AnimationLoader) loadResult {
	asset, err := loader.LoadAnimation(ctx, s.animURL)
	return loadResult{kind: s.kind, asset: asset, err: err}
}

// resolve 应用加载结果，只生效一次
func (s *Slot) resolve(res loadResult) bool {
	if s.status != SlotLoading {
		return false
	}
	if res.err != nil || res.asset == nil {
		s.status = SlotFailed
		s.errorDetail = errorDetail(fileName(s.animURL), res.err)
		log.Printf("[Slot] Warning: %s animation failed to load: %v", s.kind, res.err)
		return true
	}
	s.status = SlotReady
	s.asset = res.asset
	// 正在播放的降级播放头保持不变，下一轮才使用新动画
	if s.playhead == nil || !s.playhead.IsPlaying() {
		s.playhead = NewPlayhead(res.asset.Duration())
	}
	log.Printf("[Slot] %s animation ready (%v)", s.kind, res.asset.Duration())
	return true
}

// ensureAudio 首次调用时创建音频句柄，之后复用
// 创建失败只记录一次，该槽之后静音运行
func (s *Slot) ensureAudio() AudioHandle {
	if !s.kind.HasAudio() || s.audioFactory == nil {
		return nil
	}
	if s.audio != nil || s.audioFailed {
		return s.audio
	}
	handle, err := s.audioFactory.NewAudio(s.audioURL)
	if err != nil {
		s.audioFailed = true
		log.Printf("[Slot] Warning: failed to create %s audio from %s: %v", s.kind, s.audioURL, err)
		return nil
	}
	s.audio = handle
	return handle
}

// reset 暂停音频、回到起点，并停止动画
func (s *Slot) reset() {
	if s.audio != nil {
		s.audio.Pause()
		if err := s.audio.Rewind(); err != nil {
			log.Printf("[Slot] Warning: failed to rewind %s audio: %v", s.kind, err)
		}
	}
	if s.playhead != nil {
		s.playhead.Stop()
	}
}

// pause 原地暂停音频和动画
func (s *Slot) pause() {
	if s.audio != nil {
		s.audio.Pause()
	}
	if s.playhead != nil {
		s.playhead.Pause()
	}
}

// cyclePlayhead 返回本轮使用的播放头
//
// 动画就绪时使用动画时长；否则（加载中或失败）使用音频时长或 fallback，
// 保证降级模式下仍有周期完成信号。
func (s *Slot) cyclePlayhead(fallback time.Duration) *Playhead {
	if s.status == SlotReady && s.asset != nil {
		if s.playhead == nil || s.playhead.Duration() != s.asset.Duration() {
			s.playhead = NewPlayhead(s.asset.Duration())
		}
		return s.playhead
	}
	duration := fallback
	if d, ok := s.audio.(durationer); ok && d.Duration() > 0 {
		duration = d.Duration()
	}
	if s.playhead == nil || s.playhead.Duration() != duration {
		s.playhead = NewPlayhead(duration)
	}
	return s.playhead
}

// Animating 动画就绪且正在播放
func (s *Slot) Animating() bool {
	return s.status == SlotReady && s.playhead != nil && s.playhead.IsPlaying()
}

// Progress 返回当前播放头进度
func (s *Slot) Progress() float64 {
	if s.playhead == nil {
		return 0
	}
	return s.playhead.Progress()
}

func fileName(url string) string {
	for i := len(url) - 1; i >= 0; i-- {
		if url[i] == '/' {
			return url[i+1:]
		}
	}
	return url
}
