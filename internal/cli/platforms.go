package cli

import (
	"fmt"

	"github.com/arthur-debert/ssmuse/internal/commands"
	"github.com/arthur-debert/ssmuse/pkg/platform"
	"github.com/spf13/cobra"
)

func newPlatformsCmd(rt *Runtime) *cobra.Command {
	var base, records, file string

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: commands.MsgPlatformsShort,
		Example: `  # Chain of this host
  ssmuse platforms

  # Chain of another platform, from a given record directory
  ssmuse platforms --base ubuntu-22.04-amd64-64 --records /ssm/etc/ssm.d/platforms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if records != "" {
				overrides["platforms_dir"] = records
			}
			if file != "" {
				overrides["platforms_file"] = file
			}
			cfg, err := rt.config(overrides)
			if err != nil {
				return err
			}
			src := rt.platformSource(cfg)

			var chain platform.Chain
			if base != "" {
				chain = platform.NewResolver(rt.FS, src.RecordsDir).Resolve(base)
			} else {
				chain = src.Chain(rt.Env)
			}
			fmt.Fprintln(rt.Stdout, chain.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", "", commands.MsgFlagBase)
	cmd.Flags().StringVar(&records, "records", "", commands.MsgFlagRecords)
	cmd.Flags().StringVar(&file, "platforms-file", "", commands.MsgFlagPlatformsFile)
	return cmd
}
