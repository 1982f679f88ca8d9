// Package moktak 实现木鱼（목탁）播放器的核心状态机
//
// 该包不依赖任何渲染或音频后端：
//   - 动画资源通过 AnimationLoader 加载
//   - 音频通过 AudioFactory 创建的 AudioHandle 播放
//   - 所有延迟行为通过 Scheduler（按 deltaTime 推进）调度
//
// 展示层（ebiten 场景、终端 UI）只读取 View() 快照并发送意图（Tap/Pause/Resume/Reset/SetMode）。
package moktak

// SlotKind 资源槽类型
type SlotKind int

const (
	// SlotLaunch 开场动画槽（无音频，只播放一次）
	SlotLaunch SlotKind = iota
	// SlotManual 手动模式槽（点击播放）
	SlotManual
	// SlotAuto 自动模式槽（循环播放）
	SlotAuto
)

// AllSlots 所有资源槽，按加载顺序排列
var AllSlots = []SlotKind{SlotLaunch, SlotManual, SlotAuto}

func (k SlotKind) String() string {
	switch k {
	case SlotLaunch:
		return "launch"
	case SlotManual:
		return "manual"
	case SlotAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// HasAudio 返回该槽是否持有音频
func (k SlotKind) HasAudio() bool {
	return k == SlotManual || k == SlotAuto
}

// SlotStatus 资源槽加载状态
type SlotStatus int

const (
	SlotLoading SlotStatus = iota
	SlotReady
	SlotFailed
)

func (s SlotStatus) String() string {
	switch s {
	case SlotLoading:
		return "loading"
	case SlotReady:
		return "ready"
	case SlotFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Mode 播放模式
type Mode int

const (
	// ModeManual 手动模式：每次点击播放一个周期
	ModeManual Mode = iota
	// ModeAuto 自动模式：周期结束后自动重新进入播放
	ModeAuto
)

func (m Mode) String() string {
	if m == ModeAuto {
		return "auto"
	}
	return "manual"
}

// Slot 返回该模式对应的资源槽
func (m Mode) Slot() SlotKind {
	if m == ModeAuto {
		return SlotAuto
	}
	return SlotManual
}

// Other 返回另一种模式
func (m Mode) Other() Mode {
	if m == ModeAuto {
		return ModeManual
	}
	return ModeAuto
}

// PlayState 播放状态
//
// 状态转换：
//
//	ready --tap/resume--> playing --动画完成--> preparing --auto--> playing
//	                                                     \--manual--> ready
//	playing --重复点击(manual)--> paused --restartDelay--> playing
//	playing --pause(auto)--> paused --resume--> playing（从头开始）
type PlayState int

const (
	StateReady PlayState = iota
	StatePlaying
	StatePaused
	StatePreparing
)

func (s PlayState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StatePreparing:
		return "preparing"
	default:
		return "unknown"
	}
}

// IsActive 播放中或等待下一周期时返回 true
func (s PlayState) IsActive() bool {
	return s == StatePlaying || s == StatePreparing
}

// Transition 一次状态转换记录
type Transition struct {
	From   PlayState
	To     PlayState
	Mode   Mode
	Reason string
}
