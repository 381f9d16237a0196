package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spacemeshos/bin2bit"
	"github.com/spacemeshos/bin2bit/config"
	"github.com/spacemeshos/bin2bit/persistence"
	"github.com/spacemeshos/bin2bit/shared"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"

	// Commit is the commit hash of the binary.
	Commit = ""
)

const usage = "usage: %s infile [outfile]\n"

// usageError is a bad command line; err is nil for a wrong argument count.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	if e.err == nil {
		return shared.ErrUsage.Error()
	}
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return shared.ErrUsage
}

// Execute runs the command line and exits with its status.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run runs the command line with the given streams and returns the exit
// status: 0 on success, 1 for usage and system errors, 255 for malformed
// bit text.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := shared.ExitOK
	rootCmd := newRootCmd(viper.New(), stdin, stdout, stderr, &code)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	var uerr *usageError
	switch {
	case err == nil:
		return code
	case errors.As(err, &uerr):
		if uerr.err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", rootCmd.Name(), uerr.err)
		}
		fmt.Fprintf(stderr, usage, rootCmd.Name())
	default:
		fmt.Fprintf(stderr, "%s: %v\n", rootCmd.Name(), err)
	}
	return shared.ExitDeath
}

func newRootCmd(vip *viper.Viper, stdin io.Reader, stdout, stderr io.Writer, code *int) *cobra.Command {
	var (
		configFile  string
		printConfig bool
	)

	rootCmd := &cobra.Command{
		Use:   "bin2bit infile [outfile]",
		Short: "Assemble bit text into a binary object",
		Long: `bin2bit is a trivial machine code writer. It reads lines of 0 and 1 digits
and writes them out as packed octets, most-significant bit first.

Blanks, tabs, '.' and '_' separate digits; ';' and '#' start a comment that
runs to the end of the line. Every 16-bit word must be separated from the
previous one. With a single argument the output goes to infile with its
suffix replaced by .obj; '-' stands for stdin or stdout. Paths starting with
'-' must follow '--', as in: bin2bit -- -prog.bin`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if printConfig {
				return nil
			}
			if len(args) < 1 || len(args) > 2 {
				return &usageError{}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(vip, configFile)
			if err != nil {
				return err
			}

			if printConfig {
				spew.Fdump(stdout, cfg)
				return nil
			}

			logger, err := newLogger(cfg, stderr)
			if err != nil {
				return err
			}
			defer logger.Sync()

			opts := []bin2bit.OptionFunc{
				bin2bit.WithInput(args[0]),
				bin2bit.WithOutput(outputPath(args)),
				bin2bit.WithStdio(stdin, stdout),
				bin2bit.WithChunkSize(cfg.ChunkSize),
				bin2bit.WithLogger(logger),
			}
			var table *bin2bit.TraceTable
			if cfg.Trace {
				table = &bin2bit.TraceTable{}
				opts = append(opts, bin2bit.WithTracer(table.Trace))
			}

			res, err := bin2bit.Encode(opts...)
			if table != nil {
				table.Render(stderr)
			}
			bin2bit.Report(stderr, res, err, cfg.Width)

			*code = shared.ExitCode(err)
			return nil
		},
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to configuration file (default "+config.DefaultConfigFile+")")
	flags.BoolVar(&printConfig, "print-config", false, "print the used config and exit")
	flags.Int("width", config.DefaultWidth, "width of the diagnostic line")
	flags.Int("chunk-size", config.DefaultChunkSize, "number of bytes read at a time")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.Bool("trace", false, "print a table of every character examined to stderr")

	if err := vip.BindPFlags(flags); err != nil {
		panic(err)
	}

	return rootCmd
}

// outputPath derives the output for a single argument: stdout for stdin,
// infile with a .obj suffix otherwise.
func outputPath(args []string) string {
	if len(args) == 2 {
		return args[1]
	}
	if persistence.IsStd(args[0]) {
		return shared.StdStream
	}
	return persistence.ObjectPath(args[0])
}
