package main

import (
	"os"
	"os/signal"
	"syscall"

	"catalog/internal/config"
	"catalog/internal/handler"
	"catalog/internal/logger"
	"catalog/internal/server"

	"github.com/go-extras/cobraflags"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	flags := newConfigFlags()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags[envFileFlag].GetString(), flags[configFileFlag].GetString())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.migrate(); err != nil {
				return err
			}

			//設定ファイルがあればLOG_LEVELだけ再起動なしで反映
			if configFile := flags[configFileFlag].GetString(); configFile != "" {
				err := config.Watch(configFile, func(c config.Config) {
					zerolog.SetGlobalLevel(logger.ParseLevel(c.LogLevel))
					a.logger.Info().Str("log_level", c.LogLevel).Msg("config reloaded")
				}, func(err error) {
					a.logger.Warn().Err(err).Msg("config reload rejected")
				})
				if err != nil {
					return err
				}
			}

			//Handler生成
			e := server.New(a.cfg, a.logger, server.Handlers{
				Product: handler.NewProductHandler(a.products),
				Seed:    handler.NewSeedHandler(a.seed),
				Health:  handler.NewHealthHandler(a.products),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			//Server起動
			return server.Start(ctx, e, ":"+a.cfg.Port, a.logger)
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
