package cli

import (
	"context"
	"io"
	"log"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/moktak/pkg/game"
	"github.com/decker502/moktak/pkg/moktak"
	"github.com/decker502/moktak/pkg/terminal"
)

func newTermCommand(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Run the player in the terminal",
		Long:  "Run the player in the terminal with keyboard controls. Use --log-file to keep logs, the screen is owned by the UI.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), interruptSignals()...)
			defer stop()
			return runTerm(ctx, app)
		},
	}
}

func runTerm(ctx context.Context, app *AppContext) error {
	// 终端由 UI 独占，--verbose 不写到 stderr
	closeLog, err := configureLogging(app, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	env, err := loadEnvironment(app)
	if err != nil {
		return err
	}

	rm := game.NewResourceManager(env.fetcher, nil)
	settings := game.NewSettingsManager(env.cfg.Audio.Volume)
	audioFactory, err := terminal.NewBeepAudioFactory(rm, settings, env.cfg.Audio.SampleRate)
	if err != nil {
		log.Printf("[Term] Warning: running without sound: %v", err)
	}
	defer audioFactory.Close()

	coordinator := moktak.NewCoordinator(moktak.OptionsFromConfig(env.cfg, env.prefix), rm, audioFactory)
	coordinator.Start(ctx)
	defer coordinator.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ui := terminal.NewUI(screen, coordinator, moktak.NewLabels(env.strings), settings, env.cfg.Links)
	return ui.Run(ctx)
}
