//go:build !mobile

package utils

import "os"

// IsMobile 是否在移动设备上运行
// 桌面端返回 false；设置 MOKTAK_MOBILE_EMULATE=1 可在本地模拟移动布局
func IsMobile() bool {
	return os.Getenv("MOKTAK_MOBILE_EMULATE") == "1"
}
