package cli

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/moktak/internal/exitcode"
	"github.com/decker502/moktak/pkg/app"
	"github.com/decker502/moktak/pkg/config"
)

const windowTitle = "목탁"

func runWindow(ctx *AppContext) error {
	closeLog, err := configureLogging(ctx, ctx.IO.ErrOut)
	if err != nil {
		return err
	}
	defer closeLog()

	moktakApp, err := app.NewApp(app.Config{
		Verbose:    ctx.Opts.Verbose || ctx.Opts.LogFile != "",
		Production: ctx.Opts.Production,
		AssetURL:   ctx.Opts.AssetURL,
		ConfigPath: ctx.Opts.ConfigPath,
	})
	if err != nil {
		return withExitCode(exitcode.InvalidConfig, err)
	}
	defer moktakApp.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(moktakApp)
}
