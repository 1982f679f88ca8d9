// Package main provides a headless playback verification tool for the moktak coordinator.
//
// Usage:
//
//	go run cmd/verify_playback/main.go [flags]
//
// Flags:
//
//	--root <dir>          Project root containing assets/ and data/ (default: ".")
//	--mode <mode>         Playback mode: manual or auto (default: "manual")
//	--taps <n>            Number of taps in manual mode (default: 3)
//	--tap-interval <dur>  Time between taps (default: 400ms)
//	--duration <dur>      Total simulated time (default: 5s)
//	--reset               Reset the counter at the end of the run
//	--verbose             Enable verbose logging
//
// Purpose:
//   - Print every state transition with its simulated timestamp
//   - Verify restart, loop and toast timings without opening a window
//   - Check that broken assets degrade to the fallback cycle
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/moktak/pkg/config"
	"github.com/decker502/moktak/pkg/embedded"
	"github.com/decker502/moktak/pkg/game"
	"github.com/decker502/moktak/pkg/moktak"
)

const frame = time.Second / 60

var (
	rootFlag        = flag.String("root", ".", "Project root containing assets/ and data/")
	modeFlag        = flag.String("mode", "manual", "Playback mode: manual or auto")
	tapsFlag        = flag.Int("taps", 3, "Number of taps in manual mode")
	tapIntervalFlag = flag.Duration("tap-interval", 400*time.Millisecond, "Time between taps")
	durationFlag    = flag.Duration("duration", 5*time.Second, "Total simulated time")
	resetFlag       = flag.Bool("reset", false, "Reset the counter at the end of the run")
	verboseFlag     = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	root := os.DirFS(*rootFlag)
	embedded.Init(root, root)

	cfg, _, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	c := moktak.NewCoordinator(
		moktak.OptionsFromConfig(cfg, ""),
		game.NewResourceManager(game.NewEmbeddedFetcher(""), nil),
		moktak.SilentAudioFactory{},
	)
	c.SetTransitionHook(func(tr moktak.Transition) {
		fmt.Printf("%8v  %-9s -> %-9s  mode=%-6s hits=%d  (%s)\n",
			c.Scheduler().Now().Round(time.Millisecond), tr.From, tr.To, tr.Mode, c.HitCount(), tr.Reason)
	})
	c.Start(context.Background())
	c.WaitForLoads()
	c.Update(0)
	defer c.Close()

	fmt.Println("=== Slots ===")
	for _, kind := range moktak.AllSlots {
		slot := c.Slot(kind)
		detail := ""
		if slot.Status() == moktak.SlotFailed {
			detail = "  " + slot.ErrorDetail()
		} else if slot.Asset() != nil {
			detail = fmt.Sprintf("  %v", slot.Asset().Duration())
		}
		fmt.Printf("%-7s %-8s%s\n", kind, slot.Status(), detail)
	}
	fmt.Println()
	fmt.Println("=== Transitions ===")

	switch *modeFlag {
	case "manual":
		runManual(c)
	case "auto":
		c.SetMode(moktak.ModeAuto)
		c.Resume()
		advance(c, *durationFlag)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (want manual or auto)\n", *modeFlag)
		os.Exit(2)
	}

	if *resetFlag {
		c.Reset()
		if t := c.Toast(); t.Visible {
			fmt.Printf("toast: %s\n", t.Message)
		}
	}
	fmt.Printf("\nfinal: state=%s hits=%d\n", c.State(), c.HitCount())
}

func runManual(c *moktak.Coordinator) {
	elapsed := time.Duration(0)
	for i := 0; i < *tapsFlag && elapsed < *durationFlag; i++ {
		c.Tap()
		advance(c, *tapIntervalFlag)
		elapsed += *tapIntervalFlag
	}
	if elapsed < *durationFlag {
		advance(c, *durationFlag-elapsed)
	}
}

func advance(c *moktak.Coordinator, d time.Duration) {
	for d > 0 {
		step := frame
		if d < step {
			step = d
		}
		c.Update(step)
		d -= step
	}
}
