// Package embedded 提供嵌入资源的统一访问接口
//
// //go:embed 只能嵌入声明所在目录及其子目录，因此 embed.FS 声明在项目根目录（embed.go），
// 启动时通过 Init 注入。assets/ 下是动画与音频，data/ 下是 YAML 配置。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotInitialized Init 之前访问资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	mu       sync.RWMutex
	assetsFS fs.FS
	dataFS   fs.FS
)

// Init 注入资源文件系统，必须在任何资源加载之前调用
// 参数通常是 embed.FS，测试中可以传入 fstest.MapFS
func Init(assets, data fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	assetsFS = assets
	dataFS = data
}

// IsInitialized 返回是否已初始化
func IsInitialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return assetsFS != nil && dataFS != nil
}

// reset 仅供测试使用
func reset() {
	Init(nil, nil)
}

// resolve 根据路径前缀选择文件系统，返回标准化后的路径
func resolve(name string) (fs.FS, string, error) {
	mu.RLock()
	assets, data := assetsFS, dataFS
	mu.RUnlock()
	if assets == nil || data == nil {
		return nil, "", ErrNotInitialized
	}

	name = filepath.ToSlash(name)
	name = strings.TrimPrefix(name, "./")
	name = path.Clean(name)

	switch {
	case strings.HasPrefix(name, "assets/") || name == "assets":
		return assets, name, nil
	case strings.HasPrefix(name, "data/") || name == "data":
		return data, name, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", name)
}

// Open 打开资源文件，路径必须以 "assets/" 或 "data/" 开头
func Open(name string) (fs.File, error) {
	fsys, p, err := resolve(name)
	if err != nil {
		return nil, err
	}
	return fsys.Open(p)
}

// ReadFile 读取资源文件内容
func ReadFile(name string) ([]byte, error) {
	fsys, p, err := resolve(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, p)
}

// Exists 检查文件是否存在
func Exists(name string) bool {
	file, err := Open(name)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// ReadDir 读取目录内容
func ReadDir(name string) ([]fs.DirEntry, error) {
	fsys, p, err := resolve(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(fsys, p)
}

// Stat 获取文件信息
func Stat(name string) (fs.FileInfo, error) {
	fsys, p, err := resolve(name)
	if err != nil {
		return nil, err
	}
	return fs.Stat(fsys, p)
}
