package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// 窗口尺寸（逻辑分辨率，竖屏手机比例）
const (
	WindowWidth  = 390
	WindowHeight = 780
)

// MoktakConfig 木鱼播放器配置
// 对应 data/moktak.yaml
//
// 结构：
//
//	production_base_path: /nfc-moktak
//	timings:
//	  restart_delay_ms: 10
//	  ...
//	assets:
//	  launch_animation: launch_ani.json
//	  ...
type MoktakConfig struct {
	ProductionBasePath string        `yaml:"production_base_path"` // 生产环境部署子路径
	Timings            TimingsConfig `yaml:"timings"`
	Assets             AssetsConfig  `yaml:"assets"`
	Links              []LinkConfig  `yaml:"links"`
	Audio              AudioConfig   `yaml:"audio"`
	ToastFormat        string        `yaml:"toast_format"` // 重置提示格式，%d 为次数
}

// TimingsConfig 延迟参数（毫秒）
type TimingsConfig struct {
	RestartDelayMs        int `yaml:"restart_delay_ms"`
	LoopDelayMs           int `yaml:"loop_delay_ms"`
	LaunchAutoplayDelayMs int `yaml:"launch_autoplay_delay_ms"`
	LaunchHideDelayMs     int `yaml:"launch_hide_delay_ms"`
	ToastDurationMs       int `yaml:"toast_duration_ms"`
	FallbackCycleMs       int `yaml:"fallback_cycle_ms"`
}

// AssetsConfig 静态资源文件名（相对于部署前缀）
type AssetsConfig struct {
	LaunchAnimation string `yaml:"launch_animation"`
	ManualAnimation string `yaml:"manual_animation"`
	AutoAnimation   string `yaml:"auto_animation"`
	ManualSound     string `yaml:"manual_sound"`
	AutoSound       string `yaml:"auto_sound"`
}

// LinkConfig 外部链接
type LinkConfig struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// AudioConfig 音频参数
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0.0 ~ 1.0
}

// DefaultMoktakConfig 返回默认配置
func DefaultMoktakConfig() *MoktakConfig {
	return &MoktakConfig{
		ProductionBasePath: "/nfc-moktak",
		Timings: TimingsConfig{
			RestartDelayMs:        10,
			LoopDelayMs:           10,
			LaunchAutoplayDelayMs: 500,
			LaunchHideDelayMs:     1000,
			ToastDurationMs:       3000,
			FallbackCycleMs:       1000,
		},
		Assets: AssetsConfig{
			LaunchAnimation: "launch_ani.json",
			ManualAnimation: "manual_ani.json",
			AutoAnimation:   "auto_ani.json",
			ManualSound:     "manual_sound.wav",
			AutoSound:       "auto_sound.wav",
		},
		Links: []LinkConfig{
			{ID: "instagram", Title: "인스타그램", URL: "https://www.instagram.com/moktak_yc/"},
			{ID: "naver", Title: "네이버 스마트스토어", URL: "https://smartstore.naver.com/ycmoktak"},
		},
		Audio: AudioConfig{
			SampleRate: 48000,
			Volume:     1.0,
		},
		ToastFormat: "%d번째 울림을 마쳤습니다.",
	}
}

// ParseMoktakConfig 解析 YAML 配置，缺失字段使用默认值
func ParseMoktakConfig(data []byte) (*MoktakConfig, error) {
	cfg := DefaultMoktakConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse moktak config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadMoktakConfig 从文件系统加载配置
func LoadMoktakConfig(path string) (*MoktakConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read moktak config %s: %w", path, err)
	}
	cfg, err := ParseMoktakConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate 校验配置
func (c *MoktakConfig) Validate() error {
	var errs []error

	t := c.Timings
	for name, v := range map[string]int{
		"restart_delay_ms":         t.RestartDelayMs,
		"loop_delay_ms":            t.LoopDelayMs,
		"launch_autoplay_delay_ms": t.LaunchAutoplayDelayMs,
		"launch_hide_delay_ms":     t.LaunchHideDelayMs,
		"toast_duration_ms":        t.ToastDurationMs,
		"fallback_cycle_ms":        t.FallbackCycleMs,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("timings.%s must not be negative (got %d)", name, v))
		}
	}
	if t.FallbackCycleMs == 0 {
		errs = append(errs, errors.New("timings.fallback_cycle_ms must be positive"))
	}

	a := c.Assets
	for name, v := range map[string]string{
		"launch_animation": a.LaunchAnimation,
		"manual_animation": a.ManualAnimation,
		"auto_animation":   a.AutoAnimation,
		"manual_sound":     a.ManualSound,
		"auto_sound":       a.AutoSound,
	} {
		if v == "" {
			errs = append(errs, fmt.Errorf("assets.%s must not be empty", name))
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1] (got %.2f)", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive (got %d)", c.Audio.SampleRate))
	}

	return errors.Join(errs...)
}

// Link 根据 ID 查找外部链接
func (c *MoktakConfig) Link(id string) (LinkConfig, bool) {
	for _, l := range c.Links {
		if l.ID == id {
			return l, true
		}
	}
	return LinkConfig{}, false
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

func (t TimingsConfig) RestartDelay() time.Duration        { return ms(t.RestartDelayMs) }
func (t TimingsConfig) LoopDelay() time.Duration           { return ms(t.LoopDelayMs) }
func (t TimingsConfig) LaunchAutoplayDelay() time.Duration { return ms(t.LaunchAutoplayDelayMs) }
func (t TimingsConfig) LaunchHideDelay() time.Duration     { return ms(t.LaunchHideDelayMs) }
func (t TimingsConfig) ToastDuration() time.Duration       { return ms(t.ToastDurationMs) }
func (t TimingsConfig) FallbackCycle() time.Duration       { return ms(t.FallbackCycleMs) }
