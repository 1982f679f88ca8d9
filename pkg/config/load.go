package config

import (
	"fmt"
	"log"

	"github.com/decker502/moktak/pkg/embedded"
)

// 嵌入配置文件路径
const (
	EmbeddedConfigPath  = "data/moktak.yaml"
	EmbeddedStringsPath = "data/strings.yaml"
)

// Load 加载播放器配置与界面文本
//
// configPath 为空时读取嵌入的 data/moktak.yaml，否则读取文件系统中的文件。
// 界面文本总是来自嵌入的 data/strings.yaml；嵌入资源不可用时使用默认文本。
func Load(configPath string) (*MoktakConfig, *MoktakStrings, error) {
	var (
		cfg *MoktakConfig
		err error
	)
	if configPath != "" {
		cfg, err = LoadMoktakConfig(configPath)
	} else {
		cfg, err = loadEmbeddedConfig()
	}
	if err != nil {
		return nil, nil, err
	}

	strs := DefaultMoktakStrings()
	if embedded.Exists(EmbeddedStringsPath) {
		data, err := embedded.ReadFile(EmbeddedStringsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", EmbeddedStringsPath, err)
		}
		if strs, err = ParseMoktakStrings(data); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", EmbeddedStringsPath, err)
		}
	} else {
		log.Printf("[Config] %s not embedded, using default strings", EmbeddedStringsPath)
	}

	log.Printf("[Config] Loaded config (base path %q, %d links)", cfg.ProductionBasePath, len(cfg.Links))
	return cfg, strs, nil
}

func loadEmbeddedConfig() (*MoktakConfig, error) {
	if !embedded.Exists(EmbeddedConfigPath) {
		log.Printf("[Config] %s not embedded, using defaults", EmbeddedConfigPath)
		return DefaultMoktakConfig(), nil
	}
	data, err := embedded.ReadFile(EmbeddedConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", EmbeddedConfigPath, err)
	}
	cfg, err := ParseMoktakConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EmbeddedConfigPath, err)
	}
	return cfg, nil
}
