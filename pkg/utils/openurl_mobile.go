//go:build mobile

package utils

import "errors"

// ErrOpenURLUnsupported 移动端绑定没有打开浏览器的通道
var ErrOpenURLUnsupported = errors.New("opening links is not supported in the mobile binding")

// OpenURL 移动端不支持
func OpenURL(url string) error {
	return ErrOpenURLUnsupported
}
