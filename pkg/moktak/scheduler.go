package moktak

import (
	"sort"
	"time"
)

// TimerID 定时器标识，0 表示无效
type TimerID uint64

type timer struct {
	id  TimerID
	due time.Duration
	seq uint64
	fn  func()
}

// Scheduler 基于 deltaTime 推进的单线程定时器
//
// 与 time.AfterFunc 不同，回调只会在 Advance 中、调用方所在的 goroutine 上执行，
// 因此状态机无需加锁。回调中新调度的定时器（包括 0 延迟）最早在下一次 Advance 中触发。
type Scheduler struct {
	now    time.Duration
	nextID TimerID
	seq    uint64
	timers map[TimerID]*timer
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[TimerID]*timer),
	}
}

// Now 返回调度器内部时钟（从创建开始累计）
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After 在 delay 之后执行 fn，负延迟按 0 处理
func (s *Scheduler) After(delay time.Duration, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.seq++
	s.timers[s.nextID] = &timer{
		id:  s.nextID,
		due: s.now + delay,
		seq: s.seq,
		fn:  fn,
	}
	return s.nextID
}

// Cancel 取消定时器，已触发或不存在的 ID 返回 false
func (s *Scheduler) Cancel(id TimerID) bool {
	if _, ok := s.timers[id]; !ok {
		return false
	}
	delete(s.timers, id)
	return true
}

// Pending 返回是否仍在等待
func (s *Scheduler) Pending(id TimerID) bool {
	_, ok := s.timers[id]
	return ok
}

// Len 返回等待中的定时器数量
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Clear 取消所有定时器
func (s *Scheduler) Clear() {
	s.timers = make(map[TimerID]*timer)
}

// Advance 推进时钟并执行到期的定时器，返回本次执行的回调数量
func (s *Scheduler) Advance(dt time.Duration) int {
	s.Tick(dt)
	return s.RunDue()
}

// Tick 只推进时钟，不执行回调
func (s *Scheduler) Tick(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
}

// RunDue 按到期时间顺序执行所有已到期的定时器
// 回调中新调度的定时器不会在本次执行
func (s *Scheduler) RunDue() int {
	var due []*timer
	for _, t := range s.timers {
		if t.due <= s.now {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return 0
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	fired := 0
	for _, t := range due {
		// 前面的回调可能已取消后面的定时器
		if _, ok := s.timers[t.id]; !ok {
			continue
		}
		delete(s.timers, t.id)
		t.fn()
		fired++
	}
	return fired
}
