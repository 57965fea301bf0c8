package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/retailatlas/store-locator/api/internal/application"
	mongodoc "github.com/retailatlas/store-locator/api/internal/infrastructure/mongo"
)

var importSource string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-load the store collection from the CSV feed",
	Long:  "One-shot import: refuses to run when the collection already holds stores.",
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

		database := client.Database(cfg.Mongo.Database)
		if err := mongodoc.EnsureIndexes(ctx, database, cfg.Mongo.StoreCollection); err != nil {
			return err
		}

		repo := mongodoc.NewStoreRepository(database, cfg.Mongo.StoreCollection)
		feedClient := &http.Client{Timeout: time.Duration(cfg.Feed.FetchTimeoutSecs) * time.Second}
		importer := application.NewImportService(repo, feedClient, cfg.Feed.SourceURL)

		count, err := importer.ImportFromCSV(ctx, importSource)
		if err != nil {
			return err
		}

		cmd.Printf("imported %d stores\n", count)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importSource, "source", "", "feed URI (defaults to feed.source_url from config)")
	rootCmd.AddCommand(importCmd)
}
