package game

import (
	"context"
	"fmt"
	"log"
	"path"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/moktak/internal/lottie"
	"github.com/decker502/moktak/pkg/moktak"
)

// ResourceManager 资源加载与缓存
//
// 职责：
//   - 通过 AssetFetcher 读取动画和音频数据
//   - 解析 Lottie 动画（实现 moktak.AnimationLoader）
//   - 缓存已解析的动画，同一 URL 只解析一次
//
// LoadAnimation 会在加载 goroutine 中被并发调用，缓存由互斥锁保护。
type ResourceManager struct {
	fetcher      AssetFetcher
	audioContext *audio.Context

	mu         sync.Mutex
	animations map[string]*lottie.Animation
}

// NewResourceManager 创建资源管理器
//
// 参数：
//   - fetcher: 资源读取器（嵌入资源或 HTTP）
//   - audioContext: 全局音频上下文，可为 nil（只加载动画）
func NewResourceManager(fetcher AssetFetcher, audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		fetcher:      fetcher,
		audioContext: audioContext,
		animations:   make(map[string]*lottie.Animation),
	}
}

// Fetcher 返回资源读取器
func (rm *ResourceManager) Fetcher() AssetFetcher {
	return rm.fetcher
}

// AudioContext 返回音频上下文
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// LoadAnimation 读取并解析 Lottie 动画
// 解析失败包装为 AssetLoadError，界面上显示为 "<file> 로드에 실패했습니다"
func (rm *ResourceManager) LoadAnimation(ctx context.Context, url string) (*lottie.Animation, error) {
	rm.mu.Lock()
	if anim, ok := rm.animations[url]; ok {
		rm.mu.Unlock()
		return anim, nil
	}
	rm.mu.Unlock()

	data, err := rm.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	anim, err := lottie.Parse(data)
	if err != nil {
		return nil, &moktak.AssetLoadError{File: path.Base(url), Err: err}
	}

	rm.mu.Lock()
	rm.animations[url] = anim
	rm.mu.Unlock()

	log.Printf("[ResourceManager] Loaded animation %s (%d layers, %v)", url, len(anim.Layers), anim.Duration())
	return anim, nil
}

// GetAnimation 返回已缓存的动画，未加载时返回 nil
func (rm *ResourceManager) GetAnimation(url string) *lottie.Animation {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	return rm.animations[url]
}

// LoadSoundData 读取音频文件的原始字节
func (rm *ResourceManager) LoadSoundData(ctx context.Context, url string) ([]byte, error) {
	data, err := rm.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to load sound %s: %w", url, err)
	}
	return data, nil
}
