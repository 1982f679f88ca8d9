package scenes

import (
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/moktak/internal/lottie"
	"github.com/decker502/moktak/pkg/config"
	"github.com/decker502/moktak/pkg/game"
	"github.com/decker502/moktak/pkg/moktak"
	"github.com/decker502/moktak/pkg/utils"
)

var (
	colorBackground = color.RGBA{R: 0xf7, G: 0xf1, B: 0xe6, A: 0xff}
	colorText       = color.RGBA{R: 0x3b, G: 0x2a, B: 0x1a, A: 0xff}
	colorMuted      = color.RGBA{R: 0x8a, G: 0x7a, B: 0x68, A: 0xff}
	colorWood       = color.RGBA{R: 0xb5, G: 0x6b, B: 0x2e, A: 0xff}
	colorWoodDark   = color.RGBA{R: 0x6e, G: 0x3b, B: 0x16, A: 0xff}
	colorButton     = color.RGBA{R: 0xe8, G: 0xdc, B: 0xc8, A: 0xff}
	colorSelected   = color.RGBA{R: 0x3b, G: 0x2a, B: 0x1a, A: 0xff}
	colorError      = color.RGBA{R: 0xb0, G: 0x30, B: 0x20, A: 0xff}
	colorToast      = color.RGBA{R: 0x20, G: 0x18, B: 0x10, A: 0xdd}
)

// defaultStrikeAt is the fraction of a cycle at which the mallet hits when the
// animation carries no "strike" layer.
const defaultStrikeAt = 0.3

// MoktakScene is the interactive moktak screen.
//
// It owns the coordinator: pointer and keyboard input become coordinator intents,
// and every frame advances the coordinator by the frame's deltaTime before drawing
// its View snapshot.
type MoktakScene struct {
	coordinator *moktak.Coordinator
	labels      *moktak.Labels
	settings    *game.SettingsManager
	links       []config.LinkConfig
	layout      Layout

	face    text.Face
	openURL func(string) error

	// 最近一次 View，Draw 使用
	view moktak.View
}

// NewMoktakScene creates the scene. settings may be nil (mute button hidden).
func NewMoktakScene(c *moktak.Coordinator, labels *moktak.Labels, settings *game.SettingsManager, links []config.LinkConfig) *MoktakScene {
	s := &MoktakScene{
		coordinator: c,
		labels:      labels,
		settings:    settings,
		links:       links,
		layout:      NewLayout(config.WindowWidth, config.WindowHeight, len(links)),
		face:        text.NewGoXFace(bitmapfont.Face),
		openURL:     utils.OpenURL,
	}
	s.view = c.View()
	return s
}

// Update handles input, then advances the coordinator.
func (s *MoktakScene) Update(deltaTime float64) {
	input := utils.GetInputState()
	if input.JustPressed {
		target, index := s.layout.HitTest(input.X, input.Y, s.coordinator.View())
		s.dispatch(target, index)
	}
	s.handleKey(utils.GetKeyAction())
	s.advance(deltaTime)
}

func (s *MoktakScene) advance(deltaTime float64) {
	s.coordinator.Update(time.Duration(deltaTime * float64(time.Second)))
	s.view = s.coordinator.View()
}

// dispatch turns a hit target into a coordinator intent.
func (s *MoktakScene) dispatch(target Target, index int) {
	switch target {
	case TargetReset:
		s.coordinator.Reset()
	case TargetMute:
		if s.settings != nil {
			s.settings.ToggleMuted()
		}
	case TargetModeManual:
		s.coordinator.SetMode(moktak.ModeManual)
	case TargetModeAuto:
		s.coordinator.SetMode(moktak.ModeAuto)
	case TargetAnimation:
		s.coordinator.Tap()
	case TargetAutoButton:
		if _, enabled := s.labels.AutoButton(s.coordinator.View()); enabled {
			s.coordinator.ToggleAutoPlayback()
		}
	case TargetLink:
		if index < 0 || index >= len(s.links) {
			return
		}
		link := s.links[index]
		if err := s.openURL(link.URL); err != nil {
			log.Printf("[MoktakScene] Warning: failed to open %s: %v", link.ID, err)
		}
	}
}

func (s *MoktakScene) handleKey(action utils.KeyAction) {
	if s.coordinator.LaunchVisible() {
		return
	}
	switch action {
	case utils.KeyTap:
		if s.coordinator.Mode() == moktak.ModeManual {
			s.dispatch(TargetAnimation, 0)
		} else {
			s.dispatch(TargetAutoButton, 0)
		}
	case utils.KeyToggleMode:
		s.coordinator.ToggleMode()
	case utils.KeyToggleAuto:
		s.dispatch(TargetAutoButton, 0)
	case utils.KeyReset:
		s.dispatch(TargetReset, 0)
	case utils.KeyMute:
		s.dispatch(TargetMute, 0)
	}
}

// Close releases the coordinator (pauses audio, cancels loads).
func (s *MoktakScene) Close() {
	s.coordinator.Close()
}

// Draw renders the current View.
func (s *MoktakScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	v := s.view

	if v.LaunchVisible {
		s.drawLaunch(screen, v)
		return
	}

	s.drawHeader(screen, v)
	s.drawLabel(screen, s.labels.Heading(v), s.layout.Heading, 2, colorText)
	s.drawLabel(screen, s.labels.Counter(v), s.layout.Counter, 3, colorText)
	s.drawAnimation(screen, v)

	if v.Mode == moktak.ModeAuto {
		s.drawAutoButton(screen, v)
	} else {
		s.drawEncouragement(screen, v)
	}
	s.drawLinks(screen)
	s.drawToast(screen, v.Toast)
}

func (s *MoktakScene) drawHeader(screen *ebiten.Image, v moktak.View) {
	strs := s.labels.Strings()
	s.drawButton(screen, s.layout.ResetButton, strs.ResetTitle, false)

	if s.settings != nil {
		label := "ON"
		if s.settings.GetSettings().Muted {
			label = "OFF"
		}
		s.drawButton(screen, s.layout.MuteButton, label, false)
	}

	s.drawButton(screen, s.layout.ModeManual, s.labels.ModeLabel(moktak.ModeManual), v.Mode == moktak.ModeManual)
	s.drawButton(screen, s.layout.ModeAuto, s.labels.ModeLabel(moktak.ModeAuto), v.Mode == moktak.ModeAuto)
}

func (s *MoktakScene) drawAutoButton(screen *ebiten.Image, v moktak.View) {
	label, enabled := s.labels.AutoButton(v)
	r := s.layout.AutoButton
	if !enabled {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorButton, true)
		s.drawLabel(screen, label, r, 1.5, colorMuted)
		return
	}
	s.drawButton(screen, r, label, v.State.IsActive())
}

func (s *MoktakScene) drawEncouragement(screen *ebiten.Image, v moktak.View) {
	r := s.layout.Encouragement
	lineH := r.H / 3
	y := r.Y
	for _, msg := range s.labels.Encouragement(v) {
		for _, line := range utils.WrapText(msg, s.face, r.W/1.5) {
			s.drawLabel(screen, line, utils.Rect{X: r.X, Y: y, W: r.W, H: lineH}, 1.5, colorMuted)
			y += lineH
			if y >= r.Y+r.H {
				return
			}
		}
	}
}

func (s *MoktakScene) drawLinks(screen *ebiten.Image) {
	for i, r := range s.layout.Links {
		s.drawButton(screen, r, s.links[i].Title, false)
	}
}

func (s *MoktakScene) drawToast(screen *ebiten.Image, t moktak.Toast) {
	if !t.Visible {
		return
	}
	r := s.layout.Toast
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorToast, true)
	s.drawLabel(screen, t.Message, r, 1.5, color.White)
}

// drawAnimation draws the active slot: loading/error text, or the moktak driven by progress.
func (s *MoktakScene) drawAnimation(screen *ebiten.Image, v moktak.View) {
	area := s.layout.AnimationArea
	slot := v.Active()

	if msg := s.labels.SlotMessage(slot); msg != "" {
		clr := colorMuted
		if slot.Status == moktak.SlotFailed {
			clr = colorError
		}
		lines := utils.WrapText(msg, s.face, area.W/1.5)
		lineH := 28.0
		y := area.Y + (area.H-lineH*float64(len(lines)))/2
		for _, line := range lines {
			s.drawLabel(screen, line, utils.Rect{X: area.X, Y: y, W: area.W, H: lineH}, 1.5, clr)
			y += lineH
		}
		return
	}

	progress := 0.0
	if slot.Animating {
		progress = slot.Progress
	}
	strikeAt := strikeFraction(s.coordinator.Slot(v.Mode.Slot()).Asset())
	drawMoktak(screen, area, progress, strikeAt)
}

// drawLaunch draws the launch animation: the moktak grows in, then the title fades in.
func (s *MoktakScene) drawLaunch(screen *ebiten.Image, v moktak.View) {
	area := s.layout.AnimationArea
	p := v.LaunchProgress

	scale := utils.EaseOutBack(utils.Clamp01(p * 1.5))
	cx, cy := area.Center()
	dim := area.W * scale
	drawMoktak(screen, utils.Rect{X: cx - dim/2, Y: cy - dim/2, W: dim, H: dim}, 0, defaultStrikeAt)

	alpha := utils.Clamp01((p - 0.5) * 2)
	s.drawLabel(screen, "MOKTAK", utils.Rect{X: 0, Y: area.Y + area.H + 24, W: s.layout.Width, H: 48}, 3, fade(colorText, alpha))
}

// drawMoktak draws the wooden body and the mallet. progress is the cycle progress;
// the mallet lifts and strikes before strikeAt, and ripples spread after it.
func drawMoktak(screen *ebiten.Image, area utils.Rect, progress, strikeAt float64) {
	cx, cy := area.Center()
	radius := area.W * 0.32
	bodyY := cy + area.H*0.1

	// 敲击后的回弹
	squash := 0.0
	if progress > strikeAt && progress < 1 {
		t := (progress - strikeAt) / (1 - strikeAt)
		squash = (1 - utils.EaseOutBack(t)) * 0.06
		for i := 0; i < 3; i++ {
			rp := utils.Clamp01(t*1.5 - float64(i)*0.2)
			if rp <= 0 || rp >= 1 {
				continue
			}
			ripple := fade(colorWood, 0.6*(1-rp))
			vector.StrokeCircle(screen, float32(cx), float32(bodyY), float32(radius*(1+rp*0.5)), 2, ripple, true)
		}
	}

	r := float32(radius * (1 - squash))
	vector.DrawFilledCircle(screen, float32(cx), float32(bodyY), r, colorWood, true)
	vector.StrokeCircle(screen, float32(cx), float32(bodyY), r, 3, colorWoodDark, true)
	// 木鱼开口
	vector.DrawFilledRect(screen, float32(cx-radius*0.6), float32(bodyY+radius*0.15), float32(radius*1.2), float32(radius*0.12), colorWoodDark, true)

	// 木槌：以右上方为支点旋转，lift=1 时抬到最高
	lift := utils.StrikeCurve(progress, strikeAt)
	pivotX := cx + radius*1.1
	pivotY := bodyY - radius*1.3
	angle := math.Pi*0.85 - lift*math.Pi*0.3
	length := radius * 1.05
	headX := pivotX + math.Cos(angle)*length
	headY := pivotY + math.Sin(angle)*length
	vector.StrokeLine(screen, float32(pivotX), float32(pivotY), float32(headX), float32(headY), 6, colorWoodDark, true)
	vector.DrawFilledCircle(screen, float32(headX), float32(headY), float32(radius*0.16), colorWoodDark, true)
}

// strikeFraction returns the strike point of an animation: the in-point of its
// "strike" layer relative to the composition, or the default when absent.
func strikeFraction(anim *lottie.Animation) float64 {
	if anim == nil || anim.FrameCount() <= 0 {
		return defaultStrikeAt
	}
	for _, layer := range anim.Layers {
		if layer.Name != "strike" {
			continue
		}
		f := (layer.InPoint - anim.InPoint) / anim.FrameCount()
		if f > 0 && f < 1 {
			return f
		}
	}
	return defaultStrikeAt
}

func (s *MoktakScene) drawButton(screen *ebiten.Image, r utils.Rect, label string, selected bool) {
	bg, fg := color.Color(colorButton), color.Color(colorText)
	if selected {
		bg, fg = colorSelected, color.White
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, true)
	s.drawLabel(screen, label, r, 1.5, fg)
}

// drawLabel draws text centered in r, scaled from the bitmap font's native size.
func (s *MoktakScene) drawLabel(screen *ebiten.Image, str string, r utils.Rect, scale float64, clr color.Color) {
	if str == "" {
		return
	}
	cx, cy := r.Center()
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}

// fade scales an opaque color to the given opacity (premultiplied).
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(255 * alpha),
	}
}
