package game

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/decker502/moktak/pkg/embedded"
	"github.com/decker502/moktak/pkg/moktak"
)

const testLottie = `{"v":"5.7.4","nm":"manual","fr":30,"ip":0,"op":45,"w":256,"h":256,"layers":[]}`

// mapFetcher 内存中的资源读取器
type mapFetcher struct {
	mu    sync.Mutex
	files map[string]string
	calls int
}

func (f *mapFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	data, ok := f.files[url]
	if !ok {
		return nil, &moktak.AssetLoadError{File: path.Base(url), StatusCode: http.StatusNotFound}
	}
	return []byte(data), nil
}

// TestLoadAnimationCaches 同一 URL 只读取一次
func TestLoadAnimationCaches(t *testing.T) {
	f := &mapFetcher{files: map[string]string{"/manual_ani.json": testLottie}}
	rm := NewResourceManager(f, nil)

	for i := 0; i < 3; i++ {
		anim, err := rm.LoadAnimation(context.Background(), "/manual_ani.json")
		if err != nil {
			t.Fatalf("LoadAnimation() error = %v", err)
		}
		if anim.Name != "manual" || anim.FrameCount() != 45 {
			t.Errorf("anim = %+v", anim)
		}
	}
	if f.calls != 1 {
		t.Errorf("fetch calls = %d, want 1", f.calls)
	}
	if rm.GetAnimation("/manual_ani.json") == nil {
		t.Error("GetAnimation should return the cached animation")
	}
}

// TestLoadAnimationParseError 解析失败转换为 AssetLoadError
func TestLoadAnimationParseError(t *testing.T) {
	f := &mapFetcher{files: map[string]string{"/nfc-moktak/auto_ani.json": `{"fr":0}`}}
	rm := NewResourceManager(f, nil)

	_, err := rm.LoadAnimation(context.Background(), "/nfc-moktak/auto_ani.json")
	var loadErr *moktak.AssetLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error = %v, want AssetLoadError", err)
	}
	if got := loadErr.Error(); got != "auto_ani.json 로드에 실패했습니다" {
		t.Errorf("Error() = %q", got)
	}
}

// TestEmbeddedFetcher 部署前缀映射到 assets/
func TestEmbeddedFetcher(t *testing.T) {
	embedded.Init(
		fstest.MapFS{"assets/manual_ani.json": {Data: []byte(testLottie)}},
		fstest.MapFS{},
	)
	t.Cleanup(func() { embedded.Init(nil, nil) })

	f := NewEmbeddedFetcher("/nfc-moktak/")
	data, err := f.Fetch(context.Background(), "/nfc-moktak/manual_ani.json")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != testLottie {
		t.Errorf("Fetch() = %q", data)
	}

	_, err = f.Fetch(context.Background(), "/nfc-moktak/auto_ani.json")
	var loadErr *moktak.AssetLoadError
	if !errors.As(err, &loadErr) || loadErr.StatusCode != http.StatusNotFound {
		t.Fatalf("missing file error = %v, want 404 AssetLoadError", err)
	}
	if got := loadErr.Error(); got != "auto_ani.json 파일을 불러올 수 없습니다 (404)" {
		t.Errorf("Error() = %q", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Fetch(ctx, "/nfc-moktak/manual_ani.json"); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled fetch error = %v", err)
	}
}

// TestHTTPFetcher 非 2xx 响应带状态码
func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/nfc-moktak/manual_ani.json":
			fmt.Fprint(w, testLottie)
		case "/nfc-moktak/broken.json":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL + "/")
	data, err := f.Fetch(context.Background(), "/nfc-moktak/manual_ani.json")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != testLottie {
		t.Errorf("Fetch() = %q", data)
	}

	tests := []struct {
		url  string
		code int
	}{
		{"/nfc-moktak/auto_ani.json", http.StatusNotFound},
		{"/nfc-moktak/broken.json", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		_, err := f.Fetch(context.Background(), tt.url)
		var loadErr *moktak.AssetLoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("%s: error = %v, want AssetLoadError", tt.url, err)
		}
		if loadErr.StatusCode != tt.code {
			t.Errorf("%s: StatusCode = %d, want %d", tt.url, loadErr.StatusCode, tt.code)
		}
	}
}

// TestResourceManagerWithCoordinator 资源管理器作为协调器的加载器
func TestResourceManagerWithCoordinator(t *testing.T) {
	f := &mapFetcher{files: map[string]string{
		"/launch_ani.json": testLottie,
		"/manual_ani.json": testLottie,
	}}
	rm := NewResourceManager(f, nil)
	c := moktak.NewCoordinator(moktak.DefaultOptions(""), rm, nil)
	c.Start(context.Background())
	c.WaitForLoads()
	c.Update(0)
	defer c.Close()

	v := c.View()
	if v.Slots[moktak.SlotManual].Status != moktak.SlotReady {
		t.Errorf("manual slot = %+v", v.Slots[moktak.SlotManual])
	}
	if v.Slots[moktak.SlotAuto].ErrorDetail != "auto_ani.json 파일을 불러올 수 없습니다 (404)" {
		t.Errorf("auto slot detail = %q", v.Slots[moktak.SlotAuto].ErrorDetail)
	}
}
