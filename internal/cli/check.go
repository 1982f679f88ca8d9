package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	internalaudio "github.com/decker502/moktak/internal/audio"
	"github.com/decker502/moktak/internal/exitcode"
	"github.com/decker502/moktak/pkg/game"
	"github.com/decker502/moktak/pkg/moktak"
)

// assetReport 一个资源的检查结果
type assetReport struct {
	Slot     string        `json:"slot"`
	Kind     string        `json:"kind"`
	URL      string        `json:"url"`
	OK       bool          `json:"ok"`
	Duration time.Duration `json:"duration_ns,omitempty"`
	Error    string        `json:"error,omitempty"`
}

func newCheckCommand(app *AppContext) *cobra.Command {
	asJSON := false
	timeout := 30 * time.Second

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load every animation and sound and report their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := configureLogging(app, app.IO.ErrOut)
			if err != nil {
				return err
			}
			defer closeLog()

			env, err := loadEnvironment(app)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			opts := moktak.OptionsFromConfig(env.cfg, env.prefix)
			reports := checkAssets(ctx, env.fetcher, opts, env.cfg.Audio.SampleRate)
			if asJSON {
				if err := json.NewEncoder(app.IO.Out).Encode(reports); err != nil {
					return err
				}
			} else {
				printReports(app.IO.Out, reports)
			}

			failed := 0
			for _, r := range reports {
				if !r.OK {
					failed++
				}
			}
			if failed > 0 {
				return withExitCode(exitcode.AssetFailure, fmt.Errorf("%d of %d assets failed to load", failed, len(reports)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	cmd.Flags().DurationVar(&timeout, "timeout", timeout, "Overall load timeout")
	return cmd
}

// checkAssets 通过协调器加载所有动画，再逐个解码音频
func checkAssets(ctx context.Context, fetcher game.AssetFetcher, opts moktak.Options, sampleRate int) []assetReport {
	rm := game.NewResourceManager(fetcher, nil)
	c := moktak.NewCoordinator(opts, rm, moktak.SilentAudioFactory{})
	c.Start(ctx)
	c.WaitForLoads()
	c.Update(0)
	defer c.Close()

	var reports []assetReport
	for _, kind := range moktak.AllSlots {
		slot := c.Slot(kind)
		r := assetReport{Slot: kind.String(), Kind: "animation", URL: opts.AnimationURLs[kind]}
		if slot.Status() == moktak.SlotReady {
			r.OK = true
			r.Duration = slot.Asset().Duration()
		} else {
			r.Error = slot.ErrorDetail()
		}
		reports = append(reports, r)
	}

	for _, kind := range moktak.AllSlots {
		if !kind.HasAudio() {
			continue
		}
		url := opts.AudioURLs[kind]
		r := assetReport{Slot: kind.String(), Kind: "audio", URL: url}
		if d, err := soundDuration(ctx, rm, url, sampleRate); err != nil {
			r.Error = err.Error()
		} else {
			r.OK = true
			r.Duration = d
		}
		reports = append(reports, r)
	}
	return reports
}

func soundDuration(ctx context.Context, rm *game.ResourceManager, url string, sampleRate int) (time.Duration, error) {
	data, err := rm.LoadSoundData(ctx, url)
	if err != nil {
		return 0, err
	}
	stream, err := internalaudio.DecodeStream(url, data, sampleRate)
	if err != nil {
		return 0, err
	}
	return internalaudio.StreamDuration(stream, sampleRate), nil
}

func printReports(w io.Writer, reports []assetReport) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tKIND\tSTATUS\tDURATION\tURL")
	for _, r := range reports {
		status := "ok"
		duration := r.Duration.String()
		if !r.OK {
			status = "FAILED: " + r.Error
			duration = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Slot, r.Kind, status, duration, r.URL)
	}
	tw.Flush()
}
