package main

import (
	"context"

	"github.com/kelseyhightower/envconfig"

	"github.com/crosslane/bridgewatch/internal/bridgeproc"
	"github.com/crosslane/bridgewatch/internal/chainadapter"
	"github.com/crosslane/bridgewatch/internal/handlers/cli"
	"github.com/crosslane/bridgewatch/internal/infra/blockchain/ethereum"
	redisstorage "github.com/crosslane/bridgewatch/internal/infra/storage/redis"
	"github.com/crosslane/bridgewatch/internal/pkg/logger"
	"github.com/crosslane/bridgewatch/internal/pkg/telemetry"
	xhttp "github.com/crosslane/bridgewatch/internal/pkg/transport/http"
	"github.com/crosslane/bridgewatch/internal/pkg/transport/jsonrpc"
	"github.com/crosslane/bridgewatch/internal/txstore"
	"github.com/crosslane/bridgewatch/internal/txtracker"
	"github.com/crosslane/bridgewatch/internal/xreserve"
)

// config holds every environment-provided setting of the application.
type config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	RedisAddr     string `envconfig:"REDIS_ADDR" required:"true"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB"`

	EthereumRPCEndpoint string `envconfig:"ETHEREUM_RPC_ENDPOINT" required:"true"`

	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED"`
}

func main() {
	ctx := context.Background()

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		panic(err)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, "bridgewatch")
		if err != nil {
			logger.Fatal(ctx, "initializing telemetry", "error", err)
		}
		defer shutdown(ctx)
	}

	redisClient, err := redisstorage.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal(ctx, "connecting to redis", "error", err, "redis.addr", cfg.RedisAddr)
	}
	defer redisClient.Close()

	store := txstore.New(redisClient)

	tracker := txtracker.New(redisClient, store)
	if err := tracker.Start(ctx); err != nil {
		logger.Fatal(ctx, "starting transaction tracker", "error", err)
	}
	defer tracker.Close()

	ethClient := ethereum.NewClient(jsonrpc.NewClient(
		xhttp.NewClient().StandardClient(),
		cfg.EthereumRPCEndpoint,
	))

	factory := chainadapter.NewFactory(
		chainadapter.NewEVMCreator(),
		chainadapter.NewSolanaCreator(),
	)

	orchestrator := bridgeproc.New(
		store,
		tracker,
		factory,
		bridgeproc.NewTrackingOnlyEngine(),
		xreserve.New(ethClient),
	)

	if err := cli.Run(ctx, store, orchestrator); err != nil {
		logger.Fatal(ctx, "running bridgewatch", "error", err)
	}
}
