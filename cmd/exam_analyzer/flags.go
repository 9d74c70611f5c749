package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/kurochkinivan/exam_analyzer/internal/app"
	"github.com/kurochkinivan/exam_analyzer/internal/config"
	"github.com/kurochkinivan/exam_analyzer/internal/infrastructure/report_generator"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "exam_analyzer",
		Usage:   "CBCT exam upload and analysis service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var configFile string

	// environment first, then the yaml file
	sources := func(env, key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(cli.EnvVar(env), yaml.YAML(key, altsrc.NewStringPtrSourcer(&configFile)))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:      "store-driver",
			Usage:     "Set exam record store (postgres or memory)",
			Value:     "postgres",
			Sources:   sources("STORE_DRIVER", "app.store_driver"),
			Validator: oneOf(storeDrivers...),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: sources("PG_HOST", "postgresql.host"),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: sources("PG_PORT", "postgresql.port"),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Value:   "postgres",
			Sources: sources("PG_USERNAME", "postgresql.username"),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: sources("PG_PASSWORD", "postgresql.password"),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "exam_analyzer",
			Sources: sources("PG_DBNAME", "postgresql.dbname"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: sources("HTTP_HOST", "http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: sources("HTTP_PORT", "http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: sources("HTTP_IDLE_TIMEOUT", "http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: sources("HTTP_READ_TIMEOUT", "http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   1 * time.Minute,
			Sources: sources("HTTP_WRITE_TIMEOUT", "http.write_timeout"),
		},
		&cli.IntFlag{
			Name:      "http-max-upload-mb",
			Usage:     "Set maximum upload request size in megabytes (0 disables the limit)",
			Value:     1024,
			Sources:   sources("HTTP_MAX_UPLOAD_MB", "http.max_upload_mb"),
			Validator: nonNegative,
		},
		&cli.StringFlag{
			Name:      "blob-driver",
			Usage:     "Set blob store (azure or local)",
			Value:     config.BlobDriverAzure,
			Sources:   sources("BLOB_DRIVER", "blob.driver"),
			Validator: oneOf(config.BlobDriverAzure, config.BlobDriverLocal),
		},
		&cli.StringFlag{
			Name:    "blob-upload-bucket",
			Usage:   "Set container for uploaded files",
			Value:   "uploads",
			Sources: sources("BLOB_UPLOAD_BUCKET", "blob.upload_bucket"),
		},
		&cli.StringFlag{
			Name:    "blob-output-bucket",
			Usage:   "Set container for analysis outputs",
			Value:   "outputs",
			Sources: sources("BLOB_OUTPUT_BUCKET", "blob.output_bucket"),
		},
		&cli.StringFlag{
			Name:    "azure-account-url",
			Usage:   "Set Azure storage account URL (DefaultAzureCredential)",
			Sources: sources("AZURE_STORAGE_ACCOUNT_URL", "blob.azure.account_url"),
		},
		&cli.StringFlag{
			Name:    "azure-connection-string",
			Usage:   "Set Azure storage connection string, takes precedence over the account URL",
			Sources: sources("AZURE_STORAGE_CONNECTION_STRING", "blob.azure.connection_string"),
		},
		&cli.StringFlag{
			Name:    "blob-local-root",
			Usage:   "Set root directory of the local blob store",
			Value:   "data/blobs",
			Sources: sources("BLOB_LOCAL_ROOT", "blob.local.root"),
		},
		&cli.IntFlag{
			Name:      "analysis-workers",
			Usage:     "Set number of concurrent analysis workers",
			Value:     2,
			Sources:   sources("ANALYSIS_WORKERS", "analysis.workers"),
			Validator: positive,
		},
		&cli.IntFlag{
			Name:      "analysis-queue-size",
			Usage:     "Set number of analyses waiting for a worker before requests are rejected",
			Value:     32,
			Sources:   sources("ANALYSIS_QUEUE_SIZE", "analysis.queue_size"),
			Validator: positive,
		},
		&cli.BoolFlag{
			Name:    "analysis-reconcile-on-start",
			Usage:   "Finalize exams left processing by a previous run",
			Sources: sources("ANALYSIS_RECONCILE_ON_START", "analysis.reconcile_on_start"),
		},
		&cli.StringFlag{
			Name:    "report-font-path",
			Usage:   "Set TTF font used in PDF reports",
			Value:   report_generator.DefaultFontPath,
			Sources: sources("REPORT_FONT_PATH", "report.font_path"),
		},
	}
}

var storeDrivers = []string{config.StoreDriverPostgres, config.StoreDriverMemory}

func oneOf(allowed ...string) func(string) error {
	return func(value string) error {
		if !slices.Contains(allowed, value) {
			return fmt.Errorf("%q must be one of %q", value, allowed)
		}

		return nil
	}
}

func positive(value int) error {
	if value <= 0 {
		return fmt.Errorf("%d must be positive", value)
	}

	return nil
}

func nonNegative(value int) error {
	if value < 0 {
		return fmt.Errorf("%d must not be negative", value)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
