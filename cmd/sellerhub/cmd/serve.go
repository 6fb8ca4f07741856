package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/artisanbay/sellerhub/internal/config"
	"github.com/artisanbay/sellerhub/internal/database"
	"github.com/artisanbay/sellerhub/internal/logging"
	"github.com/artisanbay/sellerhub/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/surrealdb/surrealdb.go"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the seller API server",
	Run: func(cmd *cobra.Command, args []string) {
		logging.New()

		injector := do.New()
		do.Provide(injector, func(i do.Injector) (*config.Config, error) {
			return config.New(), nil
		})
		do.Provide(injector, func(i do.Injector) (*surrealdb.DB, error) {
			cfg := do.MustInvoke[*config.Config](i)
			return database.NewDB(context.Background(), cfg)
		})
		do.Provide(injector, func(i do.Injector) (*server.Server, error) {
			cfg := do.MustInvoke[*config.Config](i)
			db := do.MustInvoke[*surrealdb.DB](i)
			return server.NewWithDeps(cfg, db), nil
		})

		s, err := do.Invoke[*server.Server](injector)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to build server: %v\n", err)
			os.Exit(1)
		}

		s.RegisterRoutes()
		s.Start(s.Cfg.HTTPAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
