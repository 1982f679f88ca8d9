//go:build js && wasm

package config

import "syscall/js"

// RuntimeBasePath 浏览器中根据 window.location.pathname 推断前缀
func RuntimeBasePath(production bool, productionBasePath string) string {
	location := js.Global().Get("location")
	if location.IsUndefined() {
		return BasePath(production, productionBasePath)
	}
	return DetectBasePath(location.Get("pathname").String(), productionBasePath)
}

// RuntimeOrigin 返回页面源（如 "https://example.github.io"），用于拼接资源 URL
func RuntimeOrigin() string {
	location := js.Global().Get("location")
	if location.IsUndefined() {
		return ""
	}
	return location.Get("origin").String()
}
