package terminal

import "github.com/gdamore/tcell/v2"

// action 终端按键对应的操作
type action int

const (
	actNone action = iota
	actTap
	actManual
	actAuto
	actToggleAuto
	actReset
	actMute
	actVolumeUp
	actVolumeDown
	actLink
	actQuit
)

// keyAction 把按键映射为操作；actLink 时第二个返回值为链接下标
func keyAction(key tcell.Key, r rune) (action, int) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, 0
	case tcell.KeyEnter:
		return actTap, 0
	case tcell.KeyRune:
	default:
		return actNone, 0
	}

	switch r {
	case ' ':
		return actTap, 0
	case 'm', 'M':
		return actManual, 0
	case 'a', 'A':
		return actAuto, 0
	case 'p', 'P':
		return actToggleAuto, 0
	case 'r', 'R':
		return actReset, 0
	case 's', 'S':
		return actMute, 0
	case '+', '=':
		return actVolumeUp, 0
	case '-', '_':
		return actVolumeDown, 0
	case 'q', 'Q':
		return actQuit, 0
	}
	if r >= '1' && r <= '9' {
		return actLink, int(r - '1')
	}
	return actNone, 0
}
