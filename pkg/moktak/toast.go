package moktak

import "time"

// Toast 一次性提示消息
// 同一时间最多显示一条，新消息替换旧消息并重新计时
type Toast struct {
	Message string
	Visible bool
}

type toastController struct {
	scheduler *Scheduler
	duration  time.Duration
	current   Toast
	hideTimer TimerID
}

func newToastController(s *Scheduler, duration time.Duration) *toastController {
	return &toastController{scheduler: s, duration: duration}
}

func (tc *toastController) show(message string) {
	tc.clear()
	tc.current = Toast{Message: message, Visible: true}
	tc.hideTimer = tc.scheduler.After(tc.duration, func() {
		tc.hideTimer = 0
		tc.current.Visible = false
	})
}

func (tc *toastController) clear() {
	if tc.hideTimer != 0 {
		tc.scheduler.Cancel(tc.hideTimer)
		tc.hideTimer = 0
	}
	tc.current = Toast{}
}

func (tc *toastController) state() Toast {
	return tc.current
}
