package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/decker502/moktak/pkg/embedded"
	"github.com/decker502/moktak/pkg/moktak"
)

// AssetFetcher 按资源 URL（如 "/nfc-moktak/manual_ani.json"）读取原始字节
// 实现必须可以在多个 goroutine 中并发调用
type AssetFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// EmbeddedFetcher 从嵌入资源读取：去掉部署前缀后映射到 assets/<file>
type EmbeddedFetcher struct {
	Prefix string
}

// NewEmbeddedFetcher 创建嵌入资源读取器
func NewEmbeddedFetcher(prefix string) *EmbeddedFetcher {
	return &EmbeddedFetcher{Prefix: strings.TrimRight(prefix, "/")}
}

// Fetch 读取嵌入资源，文件不存在时返回带 404 的 AssetLoadError
func (f *EmbeddedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rel := strings.TrimPrefix(url, f.Prefix)
	rel = strings.TrimPrefix(rel, "/")
	file := path.Base(rel)

	data, err := embedded.ReadFile(path.Join("assets", rel))
	if err != nil {
		loadErr := &moktak.AssetLoadError{File: file, Err: err}
		if errors.Is(err, fs.ErrNotExist) {
			loadErr.StatusCode = http.StatusNotFound
		}
		return nil, loadErr
	}
	return data, nil
}

// HTTPFetcher 通过 HTTP 读取资源（浏览器部署或远程资源服务器）
type HTTPFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPFetcher 创建 HTTP 读取器；baseURL 为空时使用相对 URL
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch 发起 GET 请求，非 2xx 响应返回带状态码的 AssetLoadError
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	file := path.Base(url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+url, nil)
	if err != nil {
		return nil, &moktak.AssetLoadError{File: file, Err: err}
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &moktak.AssetLoadError{File: file, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &moktak.AssetLoadError{
			File:       file,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("GET %s: %s", req.URL, resp.Status),
		}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &moktak.AssetLoadError{File: file, Err: fmt.Errorf("read body: %w", err)}
	}
	return data, nil
}
