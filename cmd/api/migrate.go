package main

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	flags := newConfigFlags()
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the products and product_images tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags[envFileFlag].GetString(), flags[configFileFlag].GetString())
			if err != nil {
				return err
			}
			defer a.Close()

			return a.migrate()
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
