package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/staff-chat-service/internal/client/centrifugo"
	"github.com/s21platform/staff-chat-service/internal/client/identity"
	"github.com/s21platform/staff-chat-service/internal/client/media"
	"github.com/s21platform/staff-chat-service/internal/client/records"
	"github.com/s21platform/staff-chat-service/internal/client/redisbus"
	"github.com/s21platform/staff-chat-service/internal/config"
	api "github.com/s21platform/staff-chat-service/internal/generated"
	"github.com/s21platform/staff-chat-service/internal/infra"
	"github.com/s21platform/staff-chat-service/internal/pkg/jwt"
	"github.com/s21platform/staff-chat-service/internal/pkg/mention"
	"github.com/s21platform/staff-chat-service/internal/pkg/validator"
	db "github.com/s21platform/staff-chat-service/internal/repository/postgres"
	"github.com/s21platform/staff-chat-service/internal/rest"
	"github.com/s21platform/staff-chat-service/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	if err := dbRepo.ApplyMigrations(ctx); err != nil {
		logger.Error(fmt.Sprintf("failed to apply migrations: %v", err))
		return
	}

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse redis url: %v", err))
		return
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close() //nolint:errcheck // .

	identityClient, err := identity.New(cfg, rdb)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create identity client: %v", err))
		return
	}
	defer identityClient.Close()

	recordsClient := records.New(cfg)

	mediaClient, err := media.New(cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create media client: %v", err))
		return
	}
	if err := mediaClient.EnsureBucket(ctx); err != nil {
		logger.Warn(fmt.Sprintf("attachment bucket is not ready: %v", err))
	}

	var publisher service.Publisher
	switch cfg.Realtime.Transport {
	case config.RealtimeRedis:
		publisher = redisbus.New(rdb)
	default:
		centrifugeClient := centrifugo.New(cfg)
		defer centrifugeClient.Close()
		publisher = centrifugeClient
	}

	chatService := service.New(cfg, dbRepo, identityClient, mention.New(recordsClient), recordsClient, mediaClient, publisher)

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret)

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	handler := rest.New(chatService, vldtr, jwtGenerator, cfg.Realtime.Topic)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})

	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		_ = httpServer.Shutdown(context.Background())
		m.Close()
		return nil
	})

	logger.Info(fmt.Sprintf("staff chat listening on :%s", cfg.Service.Port))

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
