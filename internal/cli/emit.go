package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/ssmuse/internal/commands"
	"github.com/arthur-debert/ssmuse/pkg/config"
	"github.com/arthur-debert/ssmuse/pkg/core"
	"github.com/arthur-debert/ssmuse/pkg/logging"
	"github.com/arthur-debert/ssmuse/pkg/paths"
	"github.com/arthur-debert/ssmuse/pkg/rules"
	"github.com/arthur-debert/ssmuse/pkg/shell"
	"github.com/arthur-debert/ssmuse/pkg/style"
	"github.com/spf13/cobra"
)

func newEmitCmd(rt *Runtime, dialect, short string) *cobra.Command {
	return &cobra.Command{
		Use:     dialect + " [--tmp] [--noeval] [options]",
		Short:   short,
		Long:    commands.MsgEmitHelp,
		Example: commands.MsgEmitExample,
		// Tokens such as -d and +p belong to the request stream, not cobra.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(rt, dialect, args)
		},
	}
}

type emitFlags struct {
	help   bool
	tmp    bool
	noeval bool
}

// splitEmitFlags consumes the leading output options.
func splitEmitFlags(args []string) (emitFlags, []string) {
	var f emitFlags
	for len(args) > 0 {
		switch args[0] {
		case "-h", "--help":
			f.help = true
		case "--tmp":
			f.tmp = true
		case "--noeval":
			f.noeval = true
		default:
			return f, args
		}
		args = args[1:]
	}
	return f, args
}

func runEmit(rt *Runtime, dialect string, args []string) error {
	logger := logging.GetLogger("cli.emit")

	flags, tokens := splitEmitFlags(args)
	if flags.help {
		// stdout is sourced by the caller
		fmt.Fprintln(rt.Stderr, commands.MsgEmitHelp)
		return nil
	}

	cfg, err := rt.config(nil)
	if err != nil {
		return err
	}
	table := rules.FromConfig(cfg)
	chain := rt.platformSource(cfg).Chain(rt.Env)

	usage := rt.openUsageLog()
	defer func() { _ = usage.Close() }()

	session, err := core.NewSession(core.Options{
		FS:        rt.FS,
		Env:       rt.Env,
		Dialect:   dialect,
		Chain:     chain,
		Table:     table,
		Entry:     entryFor(cfg, dialect),
		CleanPath: []string{rt.Self, "cleanpath"},
		Verbose:   rt.Env.Get(paths.EnvVerbose) != "",
		PID:       rt.PID,
		Hostname:  rt.Hostname,
		Now:       rt.now(),
		Usage:     usage,
		Realpath:  rt.Realpath,
	})
	if err != nil {
		return err
	}

	res, err := session.Run(tokens)
	if err != nil {
		return err
	}
	logger.Debug().Int("steps", len(res.Steps)).Strs("chain", chain).Msg("script generated")

	script := res.Script
	if flags.noeval {
		script = shell.NoEval(script)
	}

	if flags.tmp {
		path, err := core.WriteTempScript(rt.FS, dialect, rt.TempDir, script)
		if err != nil {
			return err
		}
		fmt.Fprintln(rt.Stdout, path)
		return nil
	}

	if style.IsTerminal(rt.Stdout) {
		style.NewPrinter(rt.Stderr).Hint(commands.MsgTerminalHint)
	}
	_, err = io.WriteString(rt.Stdout, script)
	return err
}

func entryFor(cfg *config.Config, dialect string) string {
	if dialect == shell.DialectCsh {
		return cfg.Entry.Csh
	}
	return cfg.Entry.Sh
}
