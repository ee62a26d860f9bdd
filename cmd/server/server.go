package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	v1 "github.com/KirkDiggler/monster-maker/internal/handlers/http/v1"
	"github.com/KirkDiggler/monster-maker/internal/orchestrators/bestiary"
	redisclient "github.com/KirkDiggler/monster-maker/internal/redis"
)

// storageService is the health service name that tracks the backing store
const storageService = "monster-maker.storage"

var seedOnStart bool

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API and the ops health listener",
	Long: `Start the Monster Maker JSON API, plus a gRPC listener exposing the
standard health service. Pass --static-dir to also serve a front end at /.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().String("http-addr", ":3232", "HTTP listen address")
	serverCmd.Flags().String("ops-addr", ":50051", "gRPC health listen address")
	serverCmd.Flags().String("static-dir", "", "front end directory served at / (API only when empty)")
	serverCmd.Flags().BoolVar(&seedOnStart, "seed", false, "seed creatures from the asset tree before serving")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := buildServices(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build services: %w", err)
	}
	defer svc.close()

	if seedOnStart {
		out, err := svc.bestiary.Seed(ctx, &bestiary.SeedInput{})
		if err != nil {
			return fmt.Errorf("failed to seed: %w", err)
		}
		slog.InfoContext(ctx, "seeded creatures", "added", len(out.Added), "skipped", len(out.Skipped))
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		BestiaryService: svc.bestiary,
		GalleryService:  svc.gallery,
		EditorService:   svc.editor,
	})
	if err != nil {
		return fmt.Errorf("failed to create http handler: %w", err)
	}

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	httpSrv := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: v1.NewEngine(&v1.EngineConfig{
			Handler:      handler,
			StaticDir:    cfg.Static.Dir,
			AllowOrigins: cfg.HTTP.AllowOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.Ops.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	opsSrv := newOpsServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(opsSrv, healthServer)
	reflection.Register(opsSrv)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	go watchStorage(ctx, healthServer, svc.redis, cfg.Ops.HealthInterval)

	errChan := make(chan error, 2)
	go func() {
		slog.Info("http server starting", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()
	go func() {
		slog.Info("ops server starting", "addr", cfg.Ops.Addr)
		if err := opsSrv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errChan:
		opsSrv.Stop()
		_ = httpSrv.Close()
		return err
	}

	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http shutdown incomplete", "error", err.Error())
	}

	stopped := make(chan struct{})
	go func() {
		opsSrv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		opsSrv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
	return nil
}

func newOpsServer() *grpc.Server {
	recovery := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		slog.ErrorContext(ctx, "panic in grpc handler", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(recovery),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(recovery),
		),
	)
}

// logFunc routes interceptor logs into slog; the level values line up
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}

// watchStorage keeps the storage health status in step with Redis. The
// in-memory store is always serving.
func watchStorage(ctx context.Context, hs *health.Server, client redisclient.Client, every time.Duration) {
	if client == nil {
		hs.SetServingStatus(storageService, grpc_health_v1.HealthCheckResponse_SERVING)
		return
	}

	check := func() {
		st := grpc_health_v1.HealthCheckResponse_SERVING
		if err := redisclient.Ping(ctx, client, 2*time.Second); err != nil {
			st = grpc_health_v1.HealthCheckResponse_NOT_SERVING
			slog.WarnContext(ctx, "storage unhealthy", "error", err.Error())
		}
		hs.SetServingStatus(storageService, st)
	}

	check()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
