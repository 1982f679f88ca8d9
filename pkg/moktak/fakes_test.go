package moktak

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/decker502/moktak/internal/lottie"
)

// fakeLoader 按 URL 返回预设的动画或错误
type fakeLoader struct {
	mu     sync.Mutex
	assets map[string]*lottie.Animation
	errs   map[string]error
	calls  map[string]int
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		assets: make(map[string]*lottie.Animation),
		errs:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

func (f *fakeLoader) LoadAnimation(ctx context.Context, url string) (*lottie.Animation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[url]++
	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	if anim, ok := f.assets[url]; ok {
		return anim, nil
	}
	return nil, &AssetLoadError{File: fileName(url), StatusCode: 404}
}

// fakeAudio 记录调用的音频句柄
type fakeAudio struct {
	url      string
	playing  bool
	plays    int
	pauses   int
	rewinds  int
	position time.Duration
	playErr  error
	duration time.Duration
}

func (a *fakeAudio) Play() error {
	if a.playErr != nil {
		return a.playErr
	}
	a.plays++
	a.playing = true
	return nil
}

func (a *fakeAudio) Pause() {
	a.pauses++
	a.playing = false
}

func (a *fakeAudio) Rewind() error {
	a.rewinds++
	a.position = 0
	return nil
}

func (a *fakeAudio) IsPlaying() bool { return a.playing }

// timedAudio 能报告时长的句柄
type timedAudio struct {
	*fakeAudio
}

func (a timedAudio) Duration() time.Duration { return a.duration }

// fakeAudioFactory 每个 URL 只创建一个句柄并记录创建次数
type fakeAudioFactory struct {
	handles map[string]*fakeAudio
	created map[string]int
	failURL string
	timed   bool
	playErr error
}

func newFakeAudioFactory() *fakeAudioFactory {
	return &fakeAudioFactory{
		handles: make(map[string]*fakeAudio),
		created: make(map[string]int),
	}
}

func (f *fakeAudioFactory) NewAudio(url string) (AudioHandle, error) {
	if url == f.failURL {
		return nil, fmt.Errorf("decode %s: unsupported", url)
	}
	f.created[url]++
	a := &fakeAudio{url: url, playErr: f.playErr, duration: 700 * time.Millisecond}
	f.handles[url] = a
	if f.timed {
		return timedAudio{a}, nil
	}
	return a, nil
}

const (
	launchURL      = "/launch_ani.json"
	manualURL      = "/manual_ani.json"
	autoURL        = "/auto_ani.json"
	manualSoundURL = "/manual_sound.wav"
	autoSoundURL   = "/auto_sound.wav"
	frame          = 16 * time.Millisecond
)

func testAnimation(frames float64) *lottie.Animation {
	return &lottie.Animation{Version: "5.7.4", FrameRate: 30, InPoint: 0, OutPoint: frames, Width: 256, Height: 256}
}

// testHarness 组装协调器与假对象
type testHarness struct {
	c           *Coordinator
	loader      *fakeLoader
	audio       *fakeAudioFactory
	transitions []Transition
}

// newHarness 创建协调器；launch 1s，manual 1s，auto 2s
func newHarness(t *testing.T, setup func(h *testHarness)) *testHarness {
	t.Helper()
	h := &testHarness{
		loader: newFakeLoader(),
		audio:  newFakeAudioFactory(),
	}
	h.loader.assets[launchURL] = testAnimation(30)
	h.loader.assets[manualURL] = testAnimation(30)
	h.loader.assets[autoURL] = testAnimation(60)
	if setup != nil {
		setup(h)
	}

	opts := DefaultOptions("")
	h.c = NewCoordinator(opts, h.loader, h.audio)
	h.c.SetTransitionHook(func(tr Transition) {
		h.transitions = append(h.transitions, tr)
	})
	h.c.Start(context.Background())
	h.c.WaitForLoads()
	h.c.Update(0)
	t.Cleanup(h.c.Close)
	return h
}

func (h *testHarness) manualAudio() *fakeAudio { return h.audio.handles[manualSoundURL] }
func (h *testHarness) autoAudio() *fakeAudio   { return h.audio.handles[autoSoundURL] }

// run 以固定帧长推进 total 时长
func (h *testHarness) run(total time.Duration) {
	for total > 0 {
		dt := frame
		if total < dt {
			dt = total
		}
		h.c.Update(dt)
		total -= dt
	}
}

func (h *testHarness) states() []PlayState {
	var out []PlayState
	for i, tr := range h.transitions {
		if i == 0 {
			out = append(out, tr.From)
		}
		out = append(out, tr.To)
	}
	return out
}

func (h *testHarness) clearTransitions() {
	h.transitions = nil
}
