package config

import "strings"

// BasePath 返回部署子路径前缀
// 生产构建部署在子路径下（如 GitHub Pages 的 /nfc-moktak），开发环境为空
func BasePath(production bool, productionBasePath string) string {
	if !production {
		return ""
	}
	return normalizePrefix(productionBasePath)
}

// DetectBasePath 从当前页面路径推断部署前缀
// 页面路径以生产前缀开头时使用该前缀，否则为空
func DetectBasePath(pathname, productionBasePath string) string {
	prefix := normalizePrefix(productionBasePath)
	if prefix == "" {
		return ""
	}
	if pathname == prefix || strings.HasPrefix(pathname, prefix+"/") {
		return prefix
	}
	return ""
}

// ResolveAssetPath 拼接资源路径：<prefix>/<name>
//
// 示例：
//
//	ResolveAssetPath("/nfc-moktak", "manual_ani.json") // "/nfc-moktak/manual_ani.json"
//	ResolveAssetPath("", "manual_ani.json")            // "/manual_ani.json"
func ResolveAssetPath(prefix, name string) string {
	return normalizePrefix(prefix) + "/" + strings.TrimPrefix(name, "/")
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}
