package exitcode

const (
	Success        = 0
	UsageError     = 1
	ConfigError    = 2
	InputError     = 3
	RenderError    = 4
	PartialSuccess = 5
)
