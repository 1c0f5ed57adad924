package main

import (
	"fmt"
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

const (
	envFileFlag    = "env-file"
	configFileFlag = "config"
)

// サブコマンドごとに作る（フラグ値を共有しない）
func newConfigFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		envFileFlag: &cobraflags.StringFlag{
			Name:  envFileFlag,
			Value: ".env",
			Usage: "Path to an optional .env file loaded before reading the environment",
		},
		configFileFlag: &cobraflags.StringFlag{
			Name:  configFileFlag,
			Value: "",
			Usage: "Optional config file (yaml/json/toml) with env-style keys; the environment wins",
		},
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Product catalog REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newSeedCommand())
	root.AddCommand(newConfigCommand())
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
