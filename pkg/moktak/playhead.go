package moktak

import "time"

// Playhead 非循环动画的播放头
//
// 只负责时间推进与完成检测，不涉及渲染。展示层通过 Progress() 决定绘制哪一帧。
type Playhead struct {
	duration time.Duration
	position time.Duration
	playing  bool
	finished bool
}

// NewPlayhead 创建指定时长的播放头，时长 <= 0 时首次推进即完成
func NewPlayhead(duration time.Duration) *Playhead {
	return &Playhead{duration: duration}
}

// Duration 返回动画总时长
func (p *Playhead) Duration() time.Duration {
	return p.duration
}

// Position 返回当前位置
func (p *Playhead) Position() time.Duration {
	return p.position
}

// IsPlaying 返回是否正在推进
func (p *Playhead) IsPlaying() bool {
	return p.playing
}

// IsFinished 返回本轮是否已播放完成
func (p *Playhead) IsFinished() bool {
	return p.finished
}

// Restart 从头开始播放
func (p *Playhead) Restart() {
	p.position = 0
	p.playing = true
	p.finished = false
}

// Pause 原地暂停
func (p *Playhead) Pause() {
	p.playing = false
}

// Stop 停止并回到起点
func (p *Playhead) Stop() {
	p.position = 0
	p.playing = false
	p.finished = false
}

// Progress 返回 [0, 1] 的播放进度
func (p *Playhead) Progress() float64 {
	if p.duration <= 0 {
		if p.finished {
			return 1
		}
		return 0
	}
	progress := float64(p.position) / float64(p.duration)
	if progress > 1 {
		return 1
	}
	return progress
}

// Advance 推进 dt，本次推进到达终点时返回 true（每轮只返回一次）
func (p *Playhead) Advance(dt time.Duration) bool {
	if !p.playing {
		return false
	}
	p.position += dt
	if p.position >= p.duration {
		p.position = p.duration
		p.playing = false
		p.finished = true
		return true
	}
	return false
}
