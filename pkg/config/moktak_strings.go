package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MoktakStrings 界面文本
// 对应 data/strings.yaml
type MoktakStrings struct {
	Headings      HeadingStrings      `yaml:"headings"`
	AutoStatus    AutoStatusStrings   `yaml:"auto_status"`
	AutoButton    AutoButtonStrings   `yaml:"auto_button"`
	ModeLabels    ModeLabelStrings    `yaml:"mode_labels"`
	Loading       string              `yaml:"loading"`
	ResetTitle    string              `yaml:"reset_title"`
	Encouragement []EncouragementTier `yaml:"encouragement"`
}

// HeadingStrings 标题文本（按播放状态）
type HeadingStrings struct {
	ReadyManual string `yaml:"ready_manual"`
	ReadyAuto   string `yaml:"ready_auto"`
	Playing     string `yaml:"playing"` // playing 和 preparing 共用
	Paused      string `yaml:"paused"`
}

// AutoStatusStrings 自动模式状态文本（替代计数显示）
type AutoStatusStrings struct {
	Playing string `yaml:"playing"`
	Paused  string `yaml:"paused"`
	Ready   string `yaml:"ready"`
}

// AutoButtonStrings 自动模式按钮文本
type AutoButtonStrings struct {
	Pause  string `yaml:"pause"`
	Resume string `yaml:"resume"`
	Start  string `yaml:"start"`
}

// ModeLabelStrings 模式切换按钮文本
type ModeLabelStrings struct {
	Manual string `yaml:"manual"`
	Auto   string `yaml:"auto"`
}

// EncouragementTier 手动模式鼓励语区间 [Min, Max)，Max 为 0 表示无上限
type EncouragementTier struct {
	Min      int      `yaml:"min"`
	Max      int      `yaml:"max"`
	Messages []string `yaml:"messages"`
}

// DefaultMoktakStrings 返回默认文本
func DefaultMoktakStrings() *MoktakStrings {
	return &MoktakStrings{
		Headings: HeadingStrings{
			ReadyManual: "목 탁! 치기",
			ReadyAuto:   "울림 자동재생",
			Playing:     "마음이 편안해지는 중",
			Paused:      "명상중.. 방해금지",
		},
		AutoStatus: AutoStatusStrings{
			Playing: "Playing",
			Paused:  "Pause",
			Ready:   "Ready",
		},
		AutoButton: AutoButtonStrings{
			Pause:  "일시정지",
			Resume: "다시재생",
			Start:  "자동재생",
		},
		ModeLabels: ModeLabelStrings{
			Manual: "수동",
			Auto:   "자동",
		},
		Loading:    "로딩 중...",
		ResetTitle: "횟수 초기화",
		Encouragement: []EncouragementTier{
			{Min: 10, Max: 20, Messages: []string{"잘하고 있어요.", "지금 이 순간에 머물러 보세요."}},
			{Min: 20, Max: 30, Messages: []string{"조금 더 마음을 모아봐요.", "소리에 집중해요."}},
			{Min: 30, Max: 50, Messages: []string{"어허, 고수시네요?", "이쯤 되면 도 닦는 중..."}},
			{Min: 50, Max: 100, Messages: []string{"나를 내려놓아 보입니다."}},
			{Min: 100, Max: 108, Messages: []string{"와우...", "아주 잘하고 있습니다."}},
			{Min: 108, Max: 0, Messages: []string{"108번의 마음 내려놓기.", "평안하세요."}},
		},
	}
}

// ParseMoktakStrings 解析文本配置，缺失字段使用默认值
func ParseMoktakStrings(data []byte) (*MoktakStrings, error) {
	s := DefaultMoktakStrings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse moktak strings: %w", err)
	}
	for i, tier := range s.Encouragement {
		if tier.Max != 0 && tier.Max <= tier.Min {
			return nil, fmt.Errorf("encouragement[%d]: max %d must be greater than min %d", i, tier.Max, tier.Min)
		}
	}
	return s, nil
}

// EncouragementFor 返回计数对应的鼓励语，未达到最低区间时返回 nil
func (s *MoktakStrings) EncouragementFor(hitCount int) []string {
	for _, tier := range s.Encouragement {
		if hitCount < tier.Min {
			continue
		}
		if tier.Max != 0 && hitCount >= tier.Max {
			continue
		}
		return tier.Messages
	}
	return nil
}
