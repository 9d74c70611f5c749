package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	BlobDriverAzure = "azure"
	BlobDriverLocal = "local"
)

type Config struct {
	App
	PostgreSQL
	HTTP
	Blob
	Analysis
	Report
}

type App struct {
	StoreDriver string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type HTTP struct {
	Host          string
	Port          string
	IdleTimeout   time.Duration
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	MaxUploadSize int64
}

type Blob struct {
	Driver                string
	UploadBucket          string
	OutputBucket          string
	AzureAccountURL       string
	AzureConnectionString string
	LocalRoot             string
}

type Analysis struct {
	Workers          int
	QueueSize        int
	ReconcileOnStart bool
}

type Report struct {
	FontPath string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			StoreDriver: cmd.String("store-driver"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:          cmd.String("http-host"),
			Port:          cmd.String("http-port"),
			IdleTimeout:   cmd.Duration("http-idle-timeout"),
			ReadTimeout:   cmd.Duration("http-read-timeout"),
			WriteTimeout:  cmd.Duration("http-write-timeout"),
			MaxUploadSize: int64(cmd.Int("http-max-upload-mb")) << 20,
		},
		Blob: Blob{
			Driver:                cmd.String("blob-driver"),
			UploadBucket:          cmd.String("blob-upload-bucket"),
			OutputBucket:          cmd.String("blob-output-bucket"),
			AzureAccountURL:       cmd.String("azure-account-url"),
			AzureConnectionString: cmd.String("azure-connection-string"),
			LocalRoot:             cmd.String("blob-local-root"),
		},
		Analysis: Analysis{
			Workers:          cmd.Int("analysis-workers"),
			QueueSize:        cmd.Int("analysis-queue-size"),
			ReconcileOnStart: cmd.Bool("analysis-reconcile-on-start"),
		},
		Report: Report{
			FontPath: cmd.String("report-font-path"),
		},
	}
}
