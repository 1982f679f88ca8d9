//go:build js && !mobile

package utils

import "syscall/js"

// OpenURL 在新的浏览上下文中打开链接
// noopener 时 window.open 返回 null，无法判断是否被拦截
func OpenURL(url string) error {
	js.Global().Call("open", url, "_blank", "noopener,noreferrer")
	return nil
}
