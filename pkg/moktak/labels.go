package moktak

import (
	"strconv"

	"github.com/decker502/moktak/pkg/config"
)

// Labels 根据快照选择界面文本，供各展示层共用
type Labels struct {
	strings *config.MoktakStrings
}

// NewLabels 创建文本选择器，strings 为 nil 时使用默认文本
func NewLabels(strings *config.MoktakStrings) *Labels {
	if strings == nil {
		strings = config.DefaultMoktakStrings()
	}
	return &Labels{strings: strings}
}

// Strings 返回底层文本配置
func (l *Labels) Strings() *config.MoktakStrings {
	return l.strings
}

// Heading 标题
func (l *Labels) Heading(v View) string {
	h := l.strings.Headings
	switch {
	case v.State == StateReady && v.Mode == ModeManual:
		return h.ReadyManual
	case v.State == StateReady:
		return h.ReadyAuto
	case v.State.IsActive():
		return h.Playing
	default:
		return h.Paused
	}
}

// Counter 手动模式显示计数，自动模式显示状态
func (l *Labels) Counter(v View) string {
	if v.Mode == ModeManual {
		return strconv.Itoa(v.HitCount)
	}
	s := l.strings.AutoStatus
	switch {
	case v.State.IsActive():
		return s.Playing
	case v.State == StatePaused:
		return s.Paused
	default:
		return s.Ready
	}
}

// AutoButton 自动模式按钮文本，以及按钮是否可用
// 自动动画仍在加载时按钮禁用
func (l *Labels) AutoButton(v View) (string, bool) {
	if v.Slots[SlotAuto].Status == SlotLoading {
		return l.strings.Loading, false
	}
	b := l.strings.AutoButton
	switch {
	case v.State.IsActive():
		return b.Pause, true
	case v.State == StatePaused:
		return b.Resume, true
	default:
		return b.Start, true
	}
}

// Encouragement 手动模式鼓励语，自动模式不显示
func (l *Labels) Encouragement(v View) []string {
	if v.Mode != ModeManual {
		return nil
	}
	return l.strings.EncouragementFor(v.HitCount)
}

// ModeLabel 模式按钮文本
func (l *Labels) ModeLabel(m Mode) string {
	if m == ModeAuto {
		return l.strings.ModeLabels.Auto
	}
	return l.strings.ModeLabels.Manual
}

// SlotMessage 动画区域的状态文本：加载中、错误提示或空
func (l *Labels) SlotMessage(s SlotView) string {
	switch s.Status {
	case SlotLoading:
		return l.strings.Loading
	case SlotFailed:
		return s.ErrorDetail
	default:
		return ""
	}
}
