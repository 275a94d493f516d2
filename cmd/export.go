package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"article-stream/core/config"
	"article-stream/core/database"
	"article-stream/core/logger"
	"article-stream/core/sources"
	"article-stream/core/storage"
	"article-stream/core/stream"
	"article-stream/feature/articles"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the export command
	exportBatchSize  int
	exportMaxBatches int
	exportOutput     string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export reconciled records as JSON lines",
	Long: `Runs the pipeline over the configured sources and writes the
reconciled records as one JSON object per line, in batch order.

Examples:
  # All records to stdout in batches of 10
  article-stream export

  # First 3 batches of 25 records into a file
  article-stream export --batch-size 25 --max-batches 3 --output records.ndjson`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().IntVar(&exportBatchSize, "batch-size", 10, "Records per batch")
	exportCmd.Flags().IntVar(&exportMaxBatches, "max-batches", 0, "Stop after this many batches (0 = all)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Write to a file instead of stdout")
	RootCmd.AddCommand(exportCmd)
}

// newArticlesService boots the pipeline backends for the one-shot
// commands: config, logger, optional database, optional storage.
func newArticlesService() (*articles.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if !cfg.Sources.IsValidBackend() {
		return nil, nil, fmt.Errorf("unknown reference backend %q", cfg.Sources.ReferenceBackend)
	}

	var db *gorm.DB
	if cfg.Sources.ReferenceBackend == sources.BackendDatabase {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Database connection failed, reference data falls back to the workbook", zap.Error(err))
		} else {
			db = conn
		}
	}

	var store storage.Client
	if cfg.Sources.UseStorage {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		store = client
	}

	return articles.NewService(store, cfg.Storage.Bucket, logg, db, cfg.Sources), logg, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, logg, err := newArticlesService()
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	seq, err := svc.Stream(exportBatchSize)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if exportMaxBatches > 0 {
		seq = stream.Take(seq, exportMaxBatches)
	}

	// Records are written as each batch arrives, so large collections
	// never sit fully in memory.
	enc := json.NewEncoder(out)
	batches, records := 0, 0
	for batch, err := range seq {
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		for _, rec := range batch {
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("failed to encode record: %w", err)
			}
		}
		batches++
		records += len(batch)
	}

	logg.Info("Export completed",
		zap.Int("batches", batches),
		zap.Int("records", records),
		zap.Int("batch_size", exportBatchSize))
	return nil
}
