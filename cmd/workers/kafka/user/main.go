package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/staff-chat-service/internal/client/identity"
	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/databus/avatar"
	"github.com/s21platform/staff-chat-service/internal/databus/user"
	"github.com/s21platform/staff-chat-service/internal/repository/postgres"
)

const (
	userUpdatesConsumerGroupID   = "staff-chat-profile-updater"
	avatarUpdatesConsumerGroupID = "staff-chat-avatar-updater"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := postgres.New(cfg)
	defer dbRepo.Close()

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

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = context.WithValue(ctx, config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.UserTopic,
		userUpdatesConsumerGroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
		return
	}

	userHandler := user.New(dbRepo, identityClient)
	consumer.RegisterHandler(ctx, userHandler.Handler)

	avatarConsumer, err := kafkalib.NewConsumer(kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.AvatarTopic,
		avatarUpdatesConsumerGroupID,
	), metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create avatar consumer: %v", err))
		return
	}

	avatarHandler := avatar.New(dbRepo, identityClient)
	avatarConsumer.RegisterHandler(ctx, avatarHandler.Handler)

	<-ctx.Done()
}
