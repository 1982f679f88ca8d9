package exitcode

const (
	Success        = 0
	RuntimeFailure = 1
	InvalidUsage   = 2
	InvalidConfig  = 3
	AssetFailure   = 4
	Interrupted    = 130
)
