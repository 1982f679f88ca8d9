package moktak

import (
	"time"

	"github.com/decker502/moktak/pkg/config"
)

// Options 协调器参数
type Options struct {
	// AnimationURLs 每个槽的动画资源地址
	AnimationURLs map[SlotKind]string
	// AudioURLs 手动/自动槽的音频地址
	AudioURLs map[SlotKind]string

	RestartDelay        time.Duration // 播放中再次点击时的重启间隔
	LoopDelay           time.Duration // 自动模式 preparing -> playing 的间隔
	LaunchAutoplayDelay time.Duration // 开场动画就绪后的自动播放延迟
	LaunchHideDelay     time.Duration // 开场动画结束后的隐藏延迟
	ToastDuration       time.Duration // 提示消息显示时长
	FallbackCycle       time.Duration // 没有动画且无法获知音频时长时的周期

	// ToastFormat 重置提示格式，%d 为重置前的次数
	ToastFormat string
}

// OptionsFromConfig 根据配置和部署前缀生成协调器参数
//
// 参数：
//   - cfg: 已加载的配置
//   - prefix: 部署子路径前缀（如 "/nfc-moktak"，开发环境为 ""）
func OptionsFromConfig(cfg *config.MoktakConfig, prefix string) Options {
	t := cfg.Timings
	return Options{
		AnimationURLs: map[SlotKind]string{
			SlotLaunch: config.ResolveAssetPath(prefix, cfg.Assets.LaunchAnimation),
			SlotManual: config.ResolveAssetPath(prefix, cfg.Assets.ManualAnimation),
			SlotAuto:   config.ResolveAssetPath(prefix, cfg.Assets.AutoAnimation),
		},
		AudioURLs: map[SlotKind]string{
			SlotManual: config.ResolveAssetPath(prefix, cfg.Assets.ManualSound),
			SlotAuto:   config.ResolveAssetPath(prefix, cfg.Assets.AutoSound),
		},
		RestartDelay:        t.RestartDelay(),
		LoopDelay:           t.LoopDelay(),
		LaunchAutoplayDelay: t.LaunchAutoplayDelay(),
		LaunchHideDelay:     t.LaunchHideDelay(),
		ToastDuration:       t.ToastDuration(),
		FallbackCycle:       t.FallbackCycle(),
		ToastFormat:         cfg.ToastFormat,
	}
}

// DefaultOptions 返回默认配置下的参数
func DefaultOptions(prefix string) Options {
	return OptionsFromConfig(config.DefaultMoktakConfig(), prefix)
}
