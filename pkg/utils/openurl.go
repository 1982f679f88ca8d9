//go:build !js && !mobile

package utils

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenURL 用系统浏览器打开外部链接
func OpenURL(url string) error {
	name, args := openCommand(runtime.GOOS, url)
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

func openCommand(goos, url string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default:
		return "xdg-open", []string{url}
	}
}
