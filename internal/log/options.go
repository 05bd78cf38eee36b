package log

import (
	"fmt"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// Options holds the logger settings exposed as command-line flags.
type Options struct {
	// Name is added to every entry when set.
	Name string

	// Level is the minimum level to output: debug, info, warn or error.
	Level string

	// Format is either json or console.
	Format string

	// EnableColor colors levels in the console format.
	EnableColor bool

	// DisableCaller drops the file:line annotation.
	DisableCaller bool

	// CallerSkip is the number of extra frames skipped by caller
	// annotation.
	CallerSkip int

	// OutputPaths lists the log sinks. "stdout" and "stderr" are
	// recognized.
	OutputPaths []string
}

// NewOptions returns Options with the defaults used by the tools. Logs go to
// stderr so that tool output on stdout stays clean.
func NewOptions() *Options {
	return &Options{
		Level:       "info",
		Format:      "console",
		EnableColor: true,
		CallerSkip:  1, // skip the package-level helpers
		OutputPaths: []string{"stderr"},
	}
}

// Validate checks the options.
func (o *Options) Validate() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(o.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.Level, err)
	}
	if o.Format != "console" && o.Format != "json" {
		return fmt.Errorf("invalid log format %q: expected console or json", o.Format)
	}
	if len(o.OutputPaths) == 0 {
		return fmt.Errorf("at least one log output path is required")
	}
	return nil
}

// AddFlags binds the options to fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Name, "log.name", o.Name, "An optional name for the logger.")
	fs.StringVar(&o.Format, "log.format", o.Format, "The log output format ('json' or 'console').")
	fs.BoolVar(&o.EnableColor, "log.enable-color", o.EnableColor, "Enable colorized output for the console format.")
	fs.IntVar(&o.CallerSkip, "log.caller-skip", o.CallerSkip, "The number of caller frames to skip.")

	usage := "The minimum log level to output (e.g., 'debug', 'info', 'warn', 'error')."
	fs.StringVar(&o.Level, "log.level", o.Level, usage)

	usage = "Disable the caller field in logs (file and line number)."
	fs.BoolVar(&o.DisableCaller, "log.disable-caller", o.DisableCaller, usage)

	usage = "A list of log output paths (e.g., 'stderr', '/tmp/platcheck.log')."
	fs.StringSliceVar(&o.OutputPaths, "log.output-paths", o.OutputPaths, usage)
}
