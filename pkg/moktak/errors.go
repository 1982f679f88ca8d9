package moktak

import (
	"errors"
	"fmt"
)

// ErrPlaybackRejected 音频播放被平台拒绝（例如浏览器自动播放策略、音频上下文未就绪）
// 该错误只记录日志，不改变播放状态
var ErrPlaybackRejected = errors.New("audio playback rejected")

// AssetLoadError 资源加载失败（非 2xx 响应或解析失败）
//
// Error() 返回面向用户的简短提示，显示在动画区域；原始错误通过 Unwrap 获取。
type AssetLoadError struct {
	File       string // 资源文件名（如 "manual_ani.json"）
	StatusCode int    // HTTP 状态码，非 HTTP 错误时为 0
	Err        error  // 原始错误
}

func (e *AssetLoadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s 파일을 불러올 수 없습니다 (%d)", e.File, e.StatusCode)
	}
	return fmt.Sprintf("%s 로드에 실패했습니다", e.File)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// errorDetail 将任意加载错误转换为用户可读的提示
func errorDetail(file string, err error) string {
	var loadErr *AssetLoadError
	if errors.As(err, &loadErr) {
		return loadErr.Error()
	}
	return (&AssetLoadError{File: file, Err: err}).Error()
}
