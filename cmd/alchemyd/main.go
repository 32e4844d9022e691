package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	datasetspb "github.com/data-alchemy/backend/gen/proto/datasets/v1"
	"github.com/data-alchemy/backend/internal/common"
	"github.com/data-alchemy/backend/internal/core"
	queue "github.com/data-alchemy/backend/internal/core/async"
	"github.com/data-alchemy/backend/internal/core/convert"
	"github.com/data-alchemy/backend/internal/export"
	"github.com/data-alchemy/backend/internal/jobs"
	"github.com/data-alchemy/backend/internal/progress"
	repo "github.com/data-alchemy/backend/internal/repository"
	svc "github.com/data-alchemy/backend/internal/server"
	columnssvc "github.com/data-alchemy/backend/internal/services/columns"
	datasetssvc "github.com/data-alchemy/backend/internal/services/datasets"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	datasetsRepo := repo.NewDatasetRepository(entc, logger)
	columnsRepo := repo.NewColumnRepository(entc, logger)
	rowsRepo := repo.NewRowRepository(entc, logger)
	valuesRepo := repo.NewValueRepository(entc, logger)
	jobsRepo := repo.NewJobRepository(entc, logger)

	var sink progress.Sink
	if cfg.Redis.Addr != "" {
		redisSink, err := progress.NewRedisSink(cfg.Redis.Addr, cfg.Redis.ProgressTTL, logger)
		if err != nil {
			logger.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		defer redisSink.Close()
		sink = redisSink
	} else {
		sink = progress.NewMemorySink()
	}

	processor := core.NewProcessor(logger, datasetsRepo, columnsRepo, rowsRepo, valuesRepo).
		WithChunkSize(cfg.Processing.ChunkSize)
	converter := convert.NewConverter(valuesRepo, logger)
	exporter := export.NewService(columnsRepo, rowsRepo, cfg.Processing.ExportDir, logger)

	runner := jobs.NewRunner(logger, jobsRepo, datasetsRepo, columnsRepo, valuesRepo,
		processor, converter, exporter, sink)
	jobQueue := queue.NewJobQueue(runner, logger,
		queue.WithWorkers(cfg.Processing.Workers),
		queue.WithQueueSize(cfg.Processing.QueueSize),
		queue.WithProcessTimeout(cfg.Processing.ProcessTimeout),
	)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	datasetService := datasetssvc.NewService(
		datasetsRepo, columnsRepo, rowsRepo, jobsRepo, jobQueue, sink, cfg.Processing, logger)
	datasetspb.RegisterDatasetsServiceServer(grpcServer, svc.NewDatasetServer(datasetService, logger))

	columnService := columnssvc.NewService(columnsRepo, valuesRepo, jobsRepo, jobQueue, logger)
	datasetspb.RegisterColumnsServiceServer(grpcServer, svc.NewColumnServer(columnService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("data-alchemy listening", "addr", addr, "workers", cfg.Processing.Workers)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	jobQueue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
