package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mongodoc "github.com/retailatlas/store-locator/api/internal/infrastructure/mongo"
	"github.com/retailatlas/store-locator/api/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		provider := mongodoc.NewClientProvider(cfg.Mongo.URI)
		connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Mongo.TimeoutSecs)*time.Second)
		defer cancel()
		client, err := provider.Client(connectCtx)
		if err != nil {
			return err
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := provider.Disconnect(disconnectCtx); err != nil {
				zap.L().Warn("mongo disconnect failed", zap.Error(err))
			}
		}()

		return server.New(cfg, client).Run(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
