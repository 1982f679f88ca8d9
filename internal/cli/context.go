package cli

import "io"

type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

type GlobalOptions struct {
	ConfigPath string
	AssetURL   string
	LogFile    string
	Verbose    bool
	Production bool
}

type AppContext struct {
	Build BuildInfo
	IO    IOStreams
	Opts  GlobalOptions
}
