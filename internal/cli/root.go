package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/moktak/internal/exitcode"
)

// Execute 运行命令行，返回进程退出码
// 调用前需完成 embedded.Init
func Execute(build BuildInfo, streams IOStreams, args []string) int {
	app := &AppContext{Build: build, IO: streams}
	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetOut(streams.Out)
	root.SetErr(streams.ErrOut)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(streams.ErrOut, "ERROR:", err)
		return mapExitCode(err)
	}
	return exitcode.Success
}

func newRootCommand(app *AppContext) *cobra.Command {
	showVersion := false

	root := &cobra.Command{
		Use:   "moktak",
		Short: "Virtual wooden percussion player",
		Long:  "moktak plays a wooden percussion animation with synchronized sound, in a window or in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion(app)
				return nil
			}
			return runWindow(app)
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.PersistentFlags().StringVarP(&app.Opts.ConfigPath, "config", "c", os.Getenv("MOKTAK_CONFIG"), "Path to config file (default: embedded data/moktak.yaml)")
	root.PersistentFlags().StringVar(&app.Opts.AssetURL, "asset-url", "", "Load assets over HTTP from this base URL instead of the embedded copy")
	root.PersistentFlags().StringVar(&app.Opts.LogFile, "log-file", "", "Append log output to this file")
	root.PersistentFlags().BoolVarP(&app.Opts.Verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().BoolVar(&app.Opts.Production, "production", false, "Serve assets under the production base path")
	root.Flags().BoolVar(&showVersion, "version", false, "Print version info")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(exitcode.InvalidUsage, err)
	})

	root.AddCommand(newTermCommand(app))
	root.AddCommand(newCheckCommand(app))
	root.AddCommand(newVersionCommand(app))

	return root
}

func printVersion(app *AppContext) {
	version := app.Build.Version
	if version == "" {
		version = "dev"
	}
	commit := app.Build.Commit
	if commit == "" {
		commit = "unknown"
	}
	date := app.Build.Date
	if date == "" {
		date = "unknown"
	}

	fmt.Fprintf(app.IO.Out, "moktak version %s\ncommit: %s\nbuild_date: %s\n", version, commit, date)
}
