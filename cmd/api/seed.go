package main

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	flags := newConfigFlags()
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Delete every product and insert the fixture catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags[envFileFlag].GetString(), flags[configFileFlag].GetString())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.migrate(); err != nil {
				return err
			}

			msg, err := a.seed.RunSeed(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
