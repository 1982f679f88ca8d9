package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/decker502/moktak/pkg/config"
	"github.com/decker502/moktak/pkg/game"
	"github.com/decker502/moktak/pkg/moktak"
)

const helpText = "space 치기 · m/a 모드 · p 자동재생 · r 초기화 · s 음소거 · +/- 음량 · q 종료"

var (
	styleNormal  = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHeading = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCounter = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleActive  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleToast   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleStrike  = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
)

// line 一行输出：文本与样式
type line struct {
	text  string
	style tcell.Style
}

// renderView 把快照渲染为行，width 为进度条可用宽度
func renderView(v moktak.View, labels *moktak.Labels, settings game.Settings, links []config.LinkConfig, width int) []line {
	if v.LaunchVisible {
		return []line{
			{text: "목 탁", style: styleHeading},
			{},
			{text: progressBar(v.LaunchProgress, width), style: styleDim},
		}
	}

	var out []line
	out = append(out, line{text: modeTabs(v.Mode, labels), style: styleNormal})
	out = append(out, line{})
	out = append(out, line{text: labels.Heading(v), style: styleHeading})
	out = append(out, line{text: labels.Counter(v), style: styleCounter})
	out = append(out, line{})

	active := v.Active()
	if msg := labels.SlotMessage(active); msg != "" {
		style := styleDim
		if active.Status == moktak.SlotFailed {
			style = styleError
		}
		out = append(out, line{text: msg, style: style})
	} else {
		style := styleDim
		if active.Animating {
			style = styleStrike
		}
		out = append(out, line{text: progressBar(active.Progress, width), style: style})
	}
	out = append(out, line{})

	if v.Mode == moktak.ModeAuto {
		label, enabled := labels.AutoButton(v)
		style := styleActive
		if !enabled {
			style = styleDim
		}
		out = append(out, line{text: "[p] " + label, style: style})
	} else {
		for _, msg := range labels.Encouragement(v) {
			out = append(out, line{text: msg, style: styleNormal})
		}
	}

	if v.Toast.Visible {
		out = append(out, line{})
		out = append(out, line{text: " " + v.Toast.Message + " ", style: styleToast})
	}

	out = append(out, line{})
	for i, l := range links {
		out = append(out, line{text: fmt.Sprintf("%d) %s", i+1, l.Title), style: styleDim})
	}
	out = append(out, line{text: volumeLine(settings), style: styleDim})
	out = append(out, line{text: helpText, style: styleDim})
	return out
}

func modeTabs(mode moktak.Mode, labels *moktak.Labels) string {
	manual := labels.ModeLabel(moktak.ModeManual)
	auto := labels.ModeLabel(moktak.ModeAuto)
	if mode == moktak.ModeAuto {
		return fmt.Sprintf("  %s  [%s]", manual, auto)
	}
	return fmt.Sprintf("[%s]  %s ", manual, auto)
}

func volumeLine(s game.Settings) string {
	if s.Muted {
		return "음량: 음소거"
	}
	return fmt.Sprintf("음량: %d%%", int(s.Volume*100+0.5))
}

// progressBar 用方块字符绘制进度条
func progressBar(progress float64, width int) string {
	if width < 2 {
		width = 2
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// drawLines 在屏幕上水平居中绘制各行
func drawLines(screen tcell.Screen, lines []line) {
	w, h := screen.Size()
	top := (h - len(lines)) / 2
	if top < 0 {
		top = 0
	}
	for i, l := range lines {
		y := top + i
		if y >= h {
			break
		}
		x := (w - runewidth.StringWidth(l.text)) / 2
		if x < 0 {
			x = 0
		}
		for _, r := range l.text {
			if x >= w {
				break
			}
			screen.SetContent(x, y, r, nil, l.style)
			x += runewidth.RuneWidth(r)
		}
	}
}
