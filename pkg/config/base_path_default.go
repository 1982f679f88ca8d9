//go:build !(js && wasm)

package config

// RuntimeBasePath 桌面端由构建/命令行的生产标志决定前缀
func RuntimeBasePath(production bool, productionBasePath string) string {
	return BasePath(production, productionBasePath)
}

// RuntimeOrigin 桌面端没有页面源
func RuntimeOrigin() string {
	return ""
}
