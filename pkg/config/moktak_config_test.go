package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultMoktakConfig 测试默认配置的时间参数与资源文件名
func TestDefaultMoktakConfig(t *testing.T) {
	cfg := DefaultMoktakConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("默认配置应通过校验: %v", err)
	}

	timings := []struct {
		name string
		got  time.Duration
		want time.Duration
	}{
		{"重启间隔", cfg.Timings.RestartDelay(), 10 * time.Millisecond},
		{"循环间隔", cfg.Timings.LoopDelay(), 10 * time.Millisecond},
		{"开场自动播放延迟", cfg.Timings.LaunchAutoplayDelay(), 500 * time.Millisecond},
		{"开场隐藏延迟", cfg.Timings.LaunchHideDelay(), time.Second},
		{"提示时长", cfg.Timings.ToastDuration(), 3 * time.Second},
		{"降级周期", cfg.Timings.FallbackCycle(), time.Second},
	}
	for _, tt := range timings {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if cfg.Assets.ManualAnimation != "manual_ani.json" || cfg.Assets.AutoSound != "auto_sound.wav" {
		t.Errorf("资源文件名不正确: %+v", cfg.Assets)
	}
	if cfg.ProductionBasePath != "/nfc-moktak" {
		t.Errorf("ProductionBasePath = %q", cfg.ProductionBasePath)
	}
}

// TestParseMoktakConfigOverrides 测试部分覆盖：未出现的字段保持默认值
func TestParseMoktakConfigOverrides(t *testing.T) {
	data := []byte(`
timings:
  toast_duration_ms: 1500
assets:
  auto_sound: auto_sound.ogg
audio:
  volume: 0.5
`)
	cfg, err := ParseMoktakConfig(data)
	if err != nil {
		t.Fatalf("ParseMoktakConfig() error = %v", err)
	}
	if cfg.Timings.ToastDuration() != 1500*time.Millisecond {
		t.Errorf("ToastDuration = %v, want 1.5s", cfg.Timings.ToastDuration())
	}
	if cfg.Timings.RestartDelayMs != 10 {
		t.Errorf("未覆盖字段应保持默认: RestartDelayMs = %d", cfg.Timings.RestartDelayMs)
	}
	if cfg.Assets.AutoSound != "auto_sound.ogg" || cfg.Assets.ManualSound != "manual_sound.wav" {
		t.Errorf("Assets = %+v", cfg.Assets)
	}
	if cfg.Audio.Volume != 0.5 || cfg.Audio.SampleRate != 48000 {
		t.Errorf("Audio = %+v", cfg.Audio)
	}
}

// TestMoktakConfigValidate 测试配置校验
func TestMoktakConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"负延迟", "timings:\n  loop_delay_ms: -1\n", "loop_delay_ms"},
		{"降级周期为0", "timings:\n  fallback_cycle_ms: 0\n", "fallback_cycle_ms"},
		{"资源为空", "assets:\n  manual_animation: \"\"\n", "manual_animation"},
		{"音量超出范围", "audio:\n  volume: 1.5\n", "audio.volume"},
		{"采样率为0", "audio:\n  sample_rate: 0\n", "sample_rate"},
		{"YAML语法错误", "timings: [\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMoktakConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("期望返回错误")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("错误信息 %q 应包含 %q", err.Error(), tt.wantErr)
			}
		})
	}
}

// TestValidateJoinsErrors 测试多个错误同时报告
func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultMoktakConfig()
	cfg.Timings.RestartDelayMs = -5
	cfg.Audio.Volume = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("期望返回错误")
	}
	for _, want := range []string{"restart_delay_ms", "audio.volume"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("错误信息缺少 %q: %v", want, err)
		}
	}
}

// TestLoadMoktakConfig 测试从文件加载
func TestLoadMoktakConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "moktak.yaml")
	if err := os.WriteFile(path, []byte("production_base_path: /temple\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMoktakConfig(path)
	if err != nil {
		t.Fatalf("LoadMoktakConfig() error = %v", err)
	}
	if cfg.ProductionBasePath != "/temple" {
		t.Errorf("ProductionBasePath = %q", cfg.ProductionBasePath)
	}

	if _, err := LoadMoktakConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("文件不存在时应返回错误")
	}
}

// TestMoktakConfigLink 测试外部链接查找
func TestMoktakConfigLink(t *testing.T) {
	cfg := DefaultMoktakConfig()

	link, ok := cfg.Link("instagram")
	if !ok || link.URL != "https://www.instagram.com/moktak_yc/" {
		t.Errorf("instagram = %+v, %v", link, ok)
	}
	link, ok = cfg.Link("naver")
	if !ok || link.URL != "https://smartstore.naver.com/ycmoktak" {
		t.Errorf("naver = %+v, %v", link, ok)
	}
	if _, ok := cfg.Link("kakao"); ok {
		t.Error("未知链接应返回 false")
	}
}
