package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/ssmuse/internal/commands"
	"github.com/arthur-debert/ssmuse/internal/version"
	"github.com/arthur-debert/ssmuse/pkg/compose"
	"github.com/arthur-debert/ssmuse/pkg/config"
	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/paths"
	"github.com/arthur-debert/ssmuse/pkg/rules"
	"github.com/arthur-debert/ssmuse/pkg/shell"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCleanPathCmd(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanpath VALUE",
		Short: commands.MsgCleanPathShort,
		// csh passes the value unquoted; rejoin what it split.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(rt.Stdout, compose.Dedup(strings.Join(args, " ")))
			return nil
		},
	}
}

// ruleDocument is the printed form of the rule table.
type ruleDocument struct {
	LibrarySuffixes []string      `toml:"library_suffixes" yaml:"library_suffixes"`
	Rules           []config.Rule `toml:"rules" yaml:"rules"`
}

func newRulesCmd(rt *Runtime) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: commands.MsgRulesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rt.config(nil)
			if err != nil {
				return err
			}
			table := rules.FromConfig(cfg)
			doc := ruleDocument{LibrarySuffixes: table.LibrarySuffixes, Rules: table.Config()}

			var out []byte
			switch format {
			case "toml":
				out, err = toml.Marshal(doc)
			case "yaml":
				out, err = yaml.Marshal(doc)
			default:
				return errors.Newf(errors.ErrUnknownArgument, commands.MsgErrRulesFormat, format)
			}
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, commands.MsgErrMarshalRules)
			}

			for _, src := range cfg.Sources {
				fmt.Fprintf(rt.Stdout, "# source (%s)\n", src)
			}
			_, err = rt.Stdout.Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", commands.MsgFlagFormat)
	return cmd
}

func newWrappersCmd(rt *Runtime) *cobra.Command {
	var installDir, binary string

	cmd := &cobra.Command{
		Use:   "wrappers [sh|csh]",
		Short: commands.MsgWrappersShort,
		Long:  commands.MsgWrappersLong,
		Example: `  # Install ssmuse-sh and ssmuse-csh next to the binary
  ssmuse wrappers --install /usr/local/bin

  # Show the sh entry script
  ssmuse wrappers sh`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := binary
			if target == "" {
				target = rt.Self
			}

			if installDir != "" {
				installed, err := shell.InstallWrappers(rt.FS, paths.ExpandHome(installDir), target)
				if err != nil {
					return err
				}
				for _, p := range installed {
					fmt.Fprintf(rt.Stdout, commands.MsgInstalledFormat, p)
				}
				return nil
			}

			if len(args) == 0 {
				return errors.New(errors.ErrMissingArgument, commands.MsgErrWrapperArgs)
			}
			content, err := shell.Wrapper(args[0], target)
			if err != nil {
				return err
			}
			_, err = io.WriteString(rt.Stdout, content)
			return err
		},
	}

	cmd.Flags().StringVar(&installDir, "install", "", commands.MsgFlagInstall)
	cmd.Flags().StringVar(&binary, "binary", "", commands.MsgFlagBinary)
	return cmd
}

func newVersionCmd(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: commands.MsgVersionShort,
		Long:  commands.MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(rt.Stdout, commands.MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(rt.Stdout, commands.MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(rt.Stdout, commands.MsgBuiltFormat, version.Date)
			}
		},
	}
}
