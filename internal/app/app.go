package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/exam_analyzer/internal/analysis"
	"github.com/kurochkinivan/exam_analyzer/internal/config"
	v1 "github.com/kurochkinivan/exam_analyzer/internal/controller/http/v1"
	"github.com/kurochkinivan/exam_analyzer/internal/infrastructure/blobstore"
	"github.com/kurochkinivan/exam_analyzer/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/exam_analyzer/internal/lifecycle"
	"github.com/kurochkinivan/exam_analyzer/internal/pipeline"
	"github.com/kurochkinivan/exam_analyzer/internal/repository/memory"
	"github.com/kurochkinivan/exam_analyzer/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const (
	analysisMode    = "in_process"
	pingTimeout     = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

// recordStore bundles the repositories of one storage driver.
type recordStore struct {
	exams  lifecycle.ExamRepository
	events lifecycle.EventRepository
	tx     lifecycle.Transactor
	ready  bool
	close  func()
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("store_driver", a.cfg.App.StoreDriver),
		slog.String("blob_driver", a.cfg.Blob.Driver),
		slog.Int("analysis_workers", a.cfg.Analysis.Workers),
		slog.Int("analysis_queue_size", a.cfg.Analysis.QueueSize),
	)

	store, err := a.openRecordStore(ctx)
	if err != nil {
		return err
	}
	defer store.close()

	blobs, err := blobstore.New(a.cfg.Blob)
	if err != nil {
		return fmt.Errorf("failed to create blob store: %w", err)
	}

	readiness := v1.Readiness{
		Database:  store.ready,
		BlobStore: a.pingBlobStore(ctx, blobs),
		Analysis:  analysisMode,
	}

	dispatcher := pipeline.NewDispatcher(a.log, a.cfg.Analysis.Workers, a.cfg.Analysis.QueueSize)

	controller := lifecycle.NewController(
		a.log,
		store.exams,
		store.events,
		store.tx,
		blobs,
		dispatcher,
		analysis.NewRunner(a.log, blobs, a.cfg.Blob.OutputBucket),
		report_generator.New(a.log, a.cfg.Report.FontPath),
		a.cfg.Blob.UploadBucket,
	)

	if a.cfg.Analysis.ReconcileOnStart && store.ready {
		n, err := controller.Reconcile(ctx)
		if err != nil {
			return err
		}
		a.log.InfoContext(ctx, "interrupted exams finalized", slog.Int("count", n))
	}

	server := v1.NewServer(a.log, a.cfg.HTTP, controller, readiness)

	return a.serve(ctx, dispatcher, server, readiness)
}

func (a *App) openRecordStore(ctx context.Context) (*recordStore, error) {
	switch a.cfg.App.StoreDriver {
	case config.StoreDriverMemory:
		a.log.WarnContext(ctx, "using in-memory record store, exams are lost on restart")

		store := memory.NewStore()

		return &recordStore{
			exams:  store,
			events: store,
			tx:     store,
			ready:  store.Ping(ctx) == nil,
			close:  func() {},
		}, nil

	case config.StoreDriverPostgres:
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
		)

		pool, err := postgresql.NewPool(ctx, a.cfg.PostgreSQL)
		if err != nil {
			return nil, fmt.Errorf("failed to create db connection: %w", err)
		}

		ready := true
		if err := postgresql.Ping(ctx, a.log, pool); err != nil {
			a.log.ErrorContext(ctx, "database is unreachable, starting degraded", slog.String("err", err.Error()))
			ready = false
		}

		return &recordStore{
			exams:  postgresql.NewExamsRepository(pool),
			events: postgresql.NewEventsRepository(pool),
			tx:     postgresql.NewTxManager(pool),
			ready:  ready,
			close:  pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", a.cfg.App.StoreDriver)
	}
}

func (a *App) pingBlobStore(ctx context.Context, blobs blobstore.Store) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := blobs.Ping(ctx); err != nil {
		a.log.ErrorContext(ctx, "blob store is unreachable, starting degraded", slog.String("err", err.Error()))
		return false
	}

	return true
}

func (a *App) serve(ctx context.Context, dispatcher *pipeline.Dispatcher, server *v1.Server, readiness v1.Readiness) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "analysis workers started")
		return dispatcher.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
			slog.Bool("ready", readiness.Ready()),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
