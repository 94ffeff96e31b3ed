package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newConfigCommand(root *rootOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := root.setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()
			cfg, path := e.cfg, e.configSvc.Path()

			if write {
				if err := e.configSvc.Save(cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			}

			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "save the effective configuration to the config file")
	return cmd
}
