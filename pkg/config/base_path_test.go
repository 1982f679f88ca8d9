package config

import "testing"

// TestBasePath 测试部署前缀选择
func TestBasePath(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		prodPath   string
		want       string
	}{
		{"开发环境", false, "/nfc-moktak", ""},
		{"生产环境", true, "/nfc-moktak", "/nfc-moktak"},
		{"缺少前导斜杠", true, "nfc-moktak/", "/nfc-moktak"},
		{"根路径部署", true, "/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BasePath(tt.production, tt.prodPath); got != tt.want {
				t.Errorf("BasePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDetectBasePath 测试从页面路径推断前缀
func TestDetectBasePath(t *testing.T) {
	tests := []struct {
		pathname string
		want     string
	}{
		{"/nfc-moktak", "/nfc-moktak"},
		{"/nfc-moktak/", "/nfc-moktak"},
		{"/nfc-moktak/index.html", "/nfc-moktak"},
		{"/", ""},
		{"/nfc-moktak-preview/", ""},
	}
	for _, tt := range tests {
		if got := DetectBasePath(tt.pathname, "/nfc-moktak"); got != tt.want {
			t.Errorf("DetectBasePath(%q) = %q, want %q", tt.pathname, got, tt.want)
		}
	}
	if got := DetectBasePath("/nfc-moktak/", ""); got != "" {
		t.Errorf("未配置前缀时应为空, got %q", got)
	}
}

// TestResolveAssetPath 测试资源路径拼接
func TestResolveAssetPath(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"/nfc-moktak", "manual_ani.json", "/nfc-moktak/manual_ani.json"},
		{"", "manual_ani.json", "/manual_ani.json"},
		{"/nfc-moktak/", "/auto_sound.wav", "/nfc-moktak/auto_sound.wav"},
	}
	for _, tt := range tests {
		if got := ResolveAssetPath(tt.prefix, tt.name); got != tt.want {
			t.Errorf("ResolveAssetPath(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}
