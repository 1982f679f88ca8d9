package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/decker502/moktak/internal/exitcode"
	"github.com/decker502/moktak/pkg/config"
	"github.com/decker502/moktak/pkg/game"
)

// environment 各命令共用的配置、部署前缀和资源来源
type environment struct {
	cfg     *config.MoktakConfig
	strings *config.MoktakStrings
	prefix  string
	fetcher game.AssetFetcher
}

func loadEnvironment(app *AppContext) (*environment, error) {
	cfg, strs, err := config.Load(strings.TrimSpace(app.Opts.ConfigPath))
	if err != nil {
		return nil, withExitCode(exitcode.InvalidConfig, err)
	}

	env := &environment{
		cfg:     cfg,
		strings: strs,
		prefix:  config.RuntimeBasePath(app.Opts.Production, cfg.ProductionBasePath),
	}
	if url := strings.TrimSpace(app.Opts.AssetURL); url != "" {
		env.fetcher = game.NewHTTPFetcher(url)
	} else {
		env.fetcher = game.NewEmbeddedFetcher(env.prefix)
	}
	return env, nil
}

// configureLogging 设置全局日志输出：--log-file 优先，其次 --verbose 时写到 fallback
// 返回的函数用于关闭日志文件
func configureLogging(app *AppContext, fallback io.Writer) (func(), error) {
	if app.Opts.LogFile != "" {
		f, err := os.OpenFile(app.Opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return func() {}, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return func() {
			log.SetOutput(io.Discard)
			f.Close()
		}, nil
	}
	if app.Opts.Verbose {
		log.SetOutput(fallback)
	} else {
		log.SetOutput(io.Discard)
	}
	return func() {}, nil
}
