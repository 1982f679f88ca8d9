package scenes

import (
	"github.com/decker502/moktak/pkg/moktak"
	"github.com/decker502/moktak/pkg/utils"
)

// Target identifies the control under a pointer press.
type Target int

const (
	TargetNone Target = iota
	TargetReset
	TargetMute
	TargetModeManual
	TargetModeAuto
	TargetAnimation
	TargetAutoButton
	TargetLink
)

// Layout holds the rectangles of every control in logical screen coordinates.
// It is recomputed only when the logical size or the number of links changes.
type Layout struct {
	Width, Height float64

	ResetButton   utils.Rect
	MuteButton    utils.Rect
	ModeManual    utils.Rect
	ModeAuto      utils.Rect
	Heading       utils.Rect
	Counter       utils.Rect
	AnimationArea utils.Rect
	AutoButton    utils.Rect
	Encouragement utils.Rect
	Toast         utils.Rect
	Links         []utils.Rect
}

const (
	layoutMargin    = 24.0
	layoutLinkGap   = 12.0
	layoutButtonH   = 36.0
	animationMaxDim = 300.0
)

// NewLayout arranges the controls top to bottom for a portrait screen.
func NewLayout(width, height float64, linkCount int) Layout {
	l := Layout{Width: width, Height: height}

	l.ResetButton = utils.Rect{X: 16, Y: 12, W: 120, H: 32}
	l.MuteButton = utils.Rect{X: width - 16 - 44, Y: 12, W: 44, H: 32}

	segW := 100.0
	segX := (width - 2*segW) / 2
	l.ModeManual = utils.Rect{X: segX, Y: 64, W: segW, H: layoutButtonH}
	l.ModeAuto = utils.Rect{X: segX + segW, Y: 64, W: segW, H: layoutButtonH}

	l.Heading = utils.Rect{X: layoutMargin, Y: 116, W: width - 2*layoutMargin, H: 36}
	l.Counter = utils.Rect{X: layoutMargin, Y: 156, W: width - 2*layoutMargin, H: 48}

	// 动画区域：正方形，宽度不超过屏幕
	dim := animationMaxDim
	if width-2*layoutMargin < dim {
		dim = width - 2*layoutMargin
	}
	l.AnimationArea = utils.Rect{X: (width - dim) / 2, Y: 216, W: dim, H: dim}
	below := l.AnimationArea.Y + dim

	l.AutoButton = utils.Rect{X: (width - 160) / 2, Y: below + 20, W: 160, H: 44}
	l.Encouragement = utils.Rect{X: layoutMargin, Y: below + 20, W: width - 2*layoutMargin, H: 72}

	linksY := height - 40 - 24
	if linkCount > 0 {
		w := (width - 2*layoutMargin - float64(linkCount-1)*layoutLinkGap) / float64(linkCount)
		for i := 0; i < linkCount; i++ {
			l.Links = append(l.Links, utils.Rect{
				X: layoutMargin + float64(i)*(w+layoutLinkGap),
				Y: linksY,
				W: w,
				H: 40,
			})
		}
	}

	l.Toast = utils.Rect{X: 40, Y: linksY - 56, W: width - 80, H: 44}
	return l
}

// HitTest returns the control at (x, y) for the given state.
// While the launch animation is visible the interactive area is hidden and nothing is hit.
// The animation area is a tap target only in manual mode; the auto button only in auto mode.
func (l Layout) HitTest(x, y int, v moktak.View) (Target, int) {
	if v.LaunchVisible {
		return TargetNone, 0
	}
	switch {
	case l.ResetButton.Contains(x, y):
		return TargetReset, 0
	case l.MuteButton.Contains(x, y):
		return TargetMute, 0
	case l.ModeManual.Contains(x, y):
		return TargetModeManual, 0
	case l.ModeAuto.Contains(x, y):
		return TargetModeAuto, 0
	}
	for i, r := range l.Links {
		if r.Contains(x, y) {
			return TargetLink, i
		}
	}
	if v.Mode == moktak.ModeManual && l.AnimationArea.Contains(x, y) {
		return TargetAnimation, 0
	}
	if v.Mode == moktak.ModeAuto && l.AutoButton.Contains(x, y) {
		return TargetAutoButton, 0
	}
	return TargetNone, 0
}
