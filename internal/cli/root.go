package cli

import (
	"github.com/arthur-debert/ssmuse/internal/commands"
	"github.com/arthur-debert/ssmuse/internal/version"
	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/logging"
	"github.com/arthur-debert/ssmuse/pkg/shell"
	"github.com/arthur-debert/ssmuse/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the running process.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWith(DefaultRuntime())
}

// NewRootCmdWith creates the root command bound to rt.
func NewRootCmdWith(rt *Runtime) *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "ssmuse",
		Short:   commands.MsgRootShort,
		Long:    commands.MsgRootLong,
		Version: version.Version,
		// The first argument is the shell type; anything that is not a
		// subcommand is reported as a bad one.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(rt.Stderr, verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrMissingArgument, commands.MsgErrMissingShell)
			}
			return errors.Newf(errors.ErrShellType, commands.MsgErrBadShell, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", commands.MsgFlagVerbose)

	rootCmd.AddCommand(newEmitCmd(rt, shell.DialectSh, commands.MsgShShort))
	rootCmd.AddCommand(newEmitCmd(rt, shell.DialectCsh, commands.MsgCshShort))
	rootCmd.AddCommand(newPlatformsCmd(rt))
	rootCmd.AddCommand(newCleanPathCmd(rt))
	rootCmd.AddCommand(newRulesCmd(rt))
	rootCmd.AddCommand(newWrappersCmd(rt))
	rootCmd.AddCommand(newVersionCmd(rt))

	return rootCmd
}

// Execute runs the command line args against rt and returns the exit code.
// Failures are reported on rt.Stderr; a panic aborts without output.
func Execute(rt *Runtime, args []string) (code int) {
	printer := style.NewPrinter(rt.Stderr)
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Interface("panic", r).Msg("recovered")
			printer.Error(commands.MsgAbort)
			code = 1
		}
	}()

	rootCmd := NewRootCmdWith(rt)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(rt.Stdout)
	rootCmd.SetErr(rt.Stderr)

	if err := rootCmd.Execute(); err != nil {
		log.Debug().Err(err).
			Str("code", string(errors.GetErrorCode(err))).
			Interface("details", errors.GetErrorDetails(err)).
			Msg("Command failed")
		printer.Error(FormatError(err))
		return 1
	}
	return 0
}

// FormatError renders err the way ssmuse reports failures: path errors
// carry their own operation prefix, everything else is fatal.
func FormatError(err error) string {
	if errors.IsErrorCode(err, errors.ErrInvalidPath) {
		return errors.Diagnostic(err)
	}
	return commands.MsgFatalPrefix + errors.Diagnostic(err)
}
