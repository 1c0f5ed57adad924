package main

import (
	"catalog/internal/config"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

// 実際に使われる設定をyamlで表示（秘密情報は伏せる）
func newConfigCommand() *cobra.Command {
	flags := newConfigFlags()
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets redacted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags[envFileFlag].GetString(), flags[configFileFlag].GetString())
			if err != nil {
				return err
			}

			out, err := cfg.RedactedYAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
