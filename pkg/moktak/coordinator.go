package moktak

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Coordinator 播放协调器
//
// 职责：
//   - 管理三个资源槽（launch/manual/auto）的异步加载结果
//   - 维护 mode/playState/hitCount 状态机
//   - 保证同一时间只有一个动画、同一模式下只有一个音频在播放
//
// 所有方法必须在同一个 goroutine（游戏循环）中调用；
// 只有动画加载在后台 goroutine 中进行，结果经由 channel 在 Update 中应用。
type Coordinator struct {
	opts      Options
	loader    AnimationLoader
	scheduler *Scheduler
	slots     map[SlotKind]*Slot

	mode     Mode
	state    PlayState
	hitCount int

	// epoch 在模式切换、重置、暂停时递增；延迟回调在调度时捕获，触发时比较
	epoch        uint64
	restartTimer TimerID
	loopTimer    TimerID

	toast  *toastController
	launch launchState

	results chan loadResult
	loads   sync.WaitGroup
	cancel  context.CancelFunc
	started bool
	closed  bool

	onTransition func(Transition)
}

// launchState 开场动画状态，独立于 manual/auto 状态机
type launchState struct {
	visible       bool
	playing       bool
	done          bool
	autoplayTimer TimerID
	hideTimer     TimerID
}

// NewCoordinator 创建协调器，初始状态为 manual + ready
//
// 参数：
//   - opts: 资源地址与时间参数
//   - loader: 动画加载器
//   - audio: 音频句柄工厂，可为 nil（静音运行）
func NewCoordinator(opts Options, loader AnimationLoader, audio AudioFactory) *Coordinator {
	if opts.ToastFormat == "" {
		opts.ToastFormat = "%d번째 울림을 마쳤습니다."
	}
	scheduler := NewScheduler()
	c := &Coordinator{
		opts:      opts,
		loader:    loader,
		scheduler: scheduler,
		slots:     make(map[SlotKind]*Slot, len(AllSlots)),
		mode:      ModeManual,
		state:     StateReady,
		toast:     newToastController(scheduler, opts.ToastDuration),
		launch:    launchState{visible: true},
		results:   make(chan loadResult, len(AllSlots)),
	}
	for _, kind := range AllSlots {
		c.slots[kind] = newSlot(kind, opts.AnimationURLs[kind], opts.AudioURLs[kind], audio)
	}
	return c
}

// SetTransitionHook 设置状态转换回调（用于日志、测试）
func (c *Coordinator) SetTransitionHook(fn func(Transition)) {
	c.onTransition = fn
}

// Start 并发加载三个槽的动画，并为当前模式准备音频
// 重复调用无效
func (c *Coordinator) Start(ctx context.Context) {
	if c.started {
		return
	}
	c.started = true

	ctx, c.cancel = context.WithCancel(ctx)
	for _, kind := range AllSlots {
		slot := c.slots[kind]
		c.loads.Add(1)
		go func() {
			defer c.loads.Done()
			// results 有足够缓冲，发送不会阻塞
			c.results <- slot.load(ctx, c.loader)
		}()
	}

	c.prepareReady()
	log.Printf("[Coordinator] Started: loading %d slots", len(AllSlots))
}

// WaitForLoads 阻塞直到所有加载 goroutine 返回（结果仍需 Update 应用）
func (c *Coordinator) WaitForLoads() {
	c.loads.Wait()
}

// Close 清理定时器并暂停所有音频，之后到达的加载结果被丢弃
func (c *Coordinator) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
	c.scheduler.Clear()
	for _, kind := range AllSlots {
		c.slots[kind].pause()
	}
}

// Update 推进协调器
// 每帧调用一次：应用加载结果 → 推进时钟 → 推进动画播放头 → 触发到期定时器
// 动画完成时调度的定时器以本帧结束时刻为起点；定时器中重新开始的动画从下一帧开始推进
func (c *Coordinator) Update(dt time.Duration) {
	if c.closed {
		return
	}

	c.drainResults()
	c.scheduler.Tick(dt)

	if c.launch.playing {
		if c.slots[SlotLaunch].playhead.Advance(dt) {
			c.onLaunchComplete()
		}
	}

	if c.state == StatePlaying {
		slot := c.activeSlot()
		if slot.playhead != nil && slot.playhead.Advance(dt) {
			c.onCycleComplete()
		}
	}

	c.scheduler.RunDue()
}

func (c *Coordinator) drainResults() {
	for {
		select {
		case res := <-c.results:
			slot := c.slots[res.kind]
			if slot.resolve(res) && res.kind == SlotLaunch {
				c.onLaunchResolved()
			}
		default:
			return
		}
	}
}

// ============================================================================
// 意图（由展示层调用）
// ============================================================================

// Tap 手动模式点击
// ready/preparing 时开始播放；playing 时强制重启（停止→重置→重新播放），不会叠加播放
func (c *Coordinator) Tap() {
	if c.mode != ModeManual {
		log.Printf("[Coordinator] Tap ignored in %s mode", c.mode)
		return
	}

	switch c.state {
	case StatePlaying:
		log.Printf("[Coordinator] Manual play requested while already playing. Restarting.")
		c.cancelPending()
		c.activeSlot().pause()
		c.setState(StatePaused, "restart")
		epoch := c.epoch
		c.restartTimer = c.scheduler.After(c.opts.RestartDelay, func() {
			c.restartTimer = 0
			if c.epoch != epoch || c.state != StatePaused || c.mode != ModeManual {
				return
			}
			c.enterPlaying("restart")
		})
	default:
		c.enterPlaying("tap")
	}
}

// Pause 自动模式暂停：音频和动画原地暂停
func (c *Coordinator) Pause() {
	if c.mode != ModeAuto {
		return
	}
	if !c.state.IsActive() {
		return
	}
	c.epoch++
	c.cancelPending()
	c.activeSlot().pause()
	c.setState(StatePaused, "pause")
}

// Resume 自动模式开始/继续播放，总是从头开始
func (c *Coordinator) Resume() {
	if c.mode != ModeAuto {
		return
	}
	if c.state.IsActive() {
		return
	}
	c.enterPlaying("resume")
}

// ToggleAutoPlayback 自动模式按钮：播放中暂停，否则开始
func (c *Coordinator) ToggleAutoPlayback() {
	if c.state.IsActive() {
		c.Pause()
	} else {
		c.Resume()
	}
}

// SetMode 切换模式，总是回到 ready；两个模式的音频都会被暂停
func (c *Coordinator) SetMode(mode Mode) {
	prev := c.mode
	c.epoch++
	c.cancelPending()
	for _, kind := range []SlotKind{SlotManual, SlotAuto} {
		c.slots[kind].pause()
	}
	c.mode = mode
	if prev != mode {
		log.Printf("[Coordinator] Mode: %s -> %s", prev, mode)
	}
	c.enterReady("mode")
}

// ToggleMode 在手动与自动之间切换
func (c *Coordinator) ToggleMode() {
	c.SetMode(c.mode.Other())
}

// Reset 清零计数并回到 ready；计数大于 0 时显示提示
func (c *Coordinator) Reset() {
	c.toast.clear()
	if c.hitCount > 0 {
		c.toast.show(fmt.Sprintf(c.opts.ToastFormat, c.hitCount))
		log.Printf("[Coordinator] Reset after %d hits", c.hitCount)
	}
	c.hitCount = 0
	c.epoch++
	c.cancelPending()
	c.enterReady("reset")
}

// ============================================================================
// 状态转换
// ============================================================================

func (c *Coordinator) activeSlot() *Slot {
	return c.slots[c.mode.Slot()]
}

func (c *Coordinator) setState(to PlayState, reason string) {
	from := c.state
	c.state = to
	log.Printf("[Coordinator] %s: %s -> %s (%s)", c.mode, from, to, reason)
	if c.onTransition != nil {
		c.onTransition(Transition{From: from, To: to, Mode: c.mode, Reason: reason})
	}
}

func (c *Coordinator) cancelPending() {
	if c.restartTimer != 0 {
		c.scheduler.Cancel(c.restartTimer)
		c.restartTimer = 0
	}
	if c.loopTimer != 0 {
		c.scheduler.Cancel(c.loopTimer)
		c.loopTimer = 0
	}
}

// prepareReady 准备当前模式的音频并回到起点
func (c *Coordinator) prepareReady() {
	slot := c.activeSlot()
	slot.ensureAudio()
	slot.reset()
}

func (c *Coordinator) enterReady(reason string) {
	c.cancelPending()
	c.prepareReady()
	c.setState(StateReady, reason)
}

// enterPlaying 从头播放当前模式的动画和音频
// 音频成功开始播放后计数加一；被拒绝时只记录日志
func (c *Coordinator) enterPlaying(reason string) {
	c.cancelPending()
	if c.launch.visible {
		c.dismissLaunch()
	}

	slot := c.activeSlot()
	audio := slot.ensureAudio()
	playhead := slot.cyclePlayhead(c.opts.FallbackCycle)
	playhead.Restart()

	c.setState(StatePlaying, reason)

	if audio == nil {
		return
	}
	audio.Pause()
	if err := audio.Rewind(); err != nil {
		log.Printf("[Coordinator] Warning: failed to rewind %s audio: %v", slot.kind, err)
	}
	if err := audio.Play(); err != nil {
		log.Printf("[Coordinator] Warning: audio play failed: %v", err)
		return
	}
	c.hitCount++
}

// onCycleComplete 动画完成是一轮结束的唯一信号（与音频长短无关）
func (c *Coordinator) onCycleComplete() {
	c.setState(StatePreparing, "complete")

	if c.mode == ModeManual {
		c.enterReady("complete")
		return
	}

	epoch := c.epoch
	c.loopTimer = c.scheduler.After(c.opts.LoopDelay, func() {
		c.loopTimer = 0
		if c.epoch != epoch || c.state != StatePreparing || c.mode != ModeAuto {
			return
		}
		c.enterPlaying("loop")
	})
}

// ============================================================================
// 开场动画
// ============================================================================

func (c *Coordinator) onLaunchResolved() {
	slot := c.slots[SlotLaunch]
	if slot.Status() != SlotReady {
		// 开场动画失败时保持休眠，直接显示交互区域
		c.launch.visible = false
		return
	}
	if !c.launch.visible || c.launch.done {
		return
	}
	c.launch.autoplayTimer = c.scheduler.After(c.opts.LaunchAutoplayDelay, func() {
		c.launch.autoplayTimer = 0
		if !c.launch.visible {
			return
		}
		c.launch.playing = true
		slot.playhead.Restart()
		log.Printf("[Coordinator] Launch animation started")
	})
}

func (c *Coordinator) onLaunchComplete() {
	c.launch.playing = false
	c.launch.done = true
	c.launch.hideTimer = c.scheduler.After(c.opts.LaunchHideDelay, func() {
		c.launch.hideTimer = 0
		c.launch.visible = false
		log.Printf("[Coordinator] Launch animation hidden")
	})
}

// dismissLaunch 用户开始播放时立即结束开场动画，保证只有一个动画在播放
func (c *Coordinator) dismissLaunch() {
	if c.launch.autoplayTimer != 0 {
		c.scheduler.Cancel(c.launch.autoplayTimer)
		c.launch.autoplayTimer = 0
	}
	if c.launch.hideTimer != 0 {
		c.scheduler.Cancel(c.launch.hideTimer)
		c.launch.hideTimer = 0
	}
	if ph := c.slots[SlotLaunch].playhead; ph != nil {
		ph.Stop()
	}
	c.launch.playing = false
	c.launch.done = true
	c.launch.visible = false
}

// ============================================================================
// 查询
// ============================================================================

// Mode 返回当前模式
func (c *Coordinator) Mode() Mode { return c.mode }

// State 返回当前播放状态
func (c *Coordinator) State() PlayState { return c.state }

// HitCount 返回当前计数
func (c *Coordinator) HitCount() int { return c.hitCount }

// Toast 返回当前提示
func (c *Coordinator) Toast() Toast { return c.toast.state() }

// Slot 返回指定资源槽
func (c *Coordinator) Slot(kind SlotKind) *Slot { return c.slots[kind] }

// LaunchVisible 开场动画区域是否可见
func (c *Coordinator) LaunchVisible() bool { return c.launch.visible }

// Scheduler 返回内部调度器（只读用途）
func (c *Coordinator) Scheduler() *Scheduler { return c.scheduler }
