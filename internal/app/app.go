package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/velenyx/sporthub/config"
	statsctrl "github.com/velenyx/sporthub/internal/controller/kafka"
	"github.com/velenyx/sporthub/internal/controller/restapi"
	"github.com/velenyx/sporthub/internal/controller/worker/outbox"
	infrakafka "github.com/velenyx/sporthub/internal/infrastructure/kafka"
	"github.com/velenyx/sporthub/internal/infrastructure/processor"
	"github.com/velenyx/sporthub/internal/repo/persistent"
	"github.com/velenyx/sporthub/internal/session"
	"github.com/velenyx/sporthub/internal/usecase/cropper"
	"github.com/velenyx/sporthub/internal/usecase/editor"
	"github.com/velenyx/sporthub/internal/usecase/events"
	"github.com/velenyx/sporthub/internal/usecase/match"
	"github.com/velenyx/sporthub/internal/usecase/picture"
	"github.com/velenyx/sporthub/internal/usecase/profile"
	"github.com/velenyx/sporthub/internal/usecase/stats"
	"github.com/velenyx/sporthub/pkg/httpserver"
	"github.com/velenyx/sporthub/pkg/kafka/consumer"
	"github.com/velenyx/sporthub/pkg/kafka/producer"
	"github.com/velenyx/sporthub/pkg/logger"
	"github.com/velenyx/sporthub/pkg/postgres"
	"github.com/velenyx/sporthub/pkg/s3client"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// s3
	s3Ctx, s3Cancel := context.WithTimeout(ctx, cfg.S3.CfgLoadTimeout)
	defer s3Cancel()
	s3c, err := s3client.New(s3Ctx, cfg.S3.Endpoint, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - s3client.New: %w", err))
	}

	// postgres
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	objectRepo := persistent.NewObjectRepo(s3c)
	profileRepo := persistent.NewProfileRepo(pg)
	hubProfileRepo := persistent.NewHubProfileRepo(pg)
	playerProfileRepo := persistent.NewPlayerProfileRepo(pg)
	matchRepo := persistent.NewMatchRepo(pg)
	outboxRepo := persistent.NewOutboxRepo(pg)

	// Session
	sessions := session.NewHolder()

	// Use-Case
	pictureUseCase := picture.New(objectRepo, l)
	cropperUseCase := cropper.New(processor.New())
	profileUseCase := profile.New(profileRepo, hubProfileRepo, playerProfileRepo, outboxRepo, pg, l)
	matchUseCase := match.New(matchRepo, outboxRepo, pg, l)
	eventsUseCase := events.New(outboxRepo, l)
	statsUseCase := stats.New(hubProfileRepo, l)

	// Picture editors
	editors := editor.NewManager(
		cropperUseCase,
		pictureUseCase,
		profileUseCase,
		sessions,
		editor.Buckets{
			ProfilePictures: cfg.S3.ProfilePicturesBucket,
			PlayerCards:     cfg.S3.PlayerCardsBucket,
		},
		cfg.Media.MaxFileSize,
		cfg.Media.StoreTimeout,
		l,
	)

	// Kafka Producer
	kafkaProducer, err := producer.New(ctx, cfg.Kafka.Brokers)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - producer.New: %w", err))
	}

	// Outbox Relay Worker
	outboxRelayWorker := outbox.New(
		eventsUseCase,
		infrakafka.NewEventProducer(kafkaProducer, cfg.OutboxRelay.MaxRetries, cfg.Kafka.Topic),
		l,
		cfg.OutboxRelay.PollInterval,
		cfg.OutboxRelay.CleanupInterval,
		cfg.OutboxRelay.MarkFailedInterval,
		cfg.OutboxRelay.ProcessBatchTimeout,
		cfg.OutboxRelay.BatchSize,
		cfg.OutboxRelay.MaxRetries,
	)

	// Kafka Consumer
	kafkaConsumer, err := consumer.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - consumer.New: %w", err))
	}

	// Stats Projector
	statsProjector := statsctrl.New(
		statsUseCase,
		infrakafka.NewEventConsumer(kafkaConsumer),
		l,
		cfg.StatsProjector.CommitTimeout,
		cfg.StatsProjector.ProcessTimeout,
		cfg.StatsProjector.Workers,
	)

	// HTTP Server
	httpServer := httpserver.New(l, httpserver.Port(cfg.HTTP.Port), httpserver.Prefork(cfg.HTTP.UsePreforkMode))
	restapi.NewRouter(httpServer.App, cfg, editors, profileUseCase, matchUseCase, pictureUseCase, cropperUseCase, sessions, l)

	// Start Components
	err = outboxRelayWorker.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - outboxRelayWorker.Start: %w", err))
	}
	err = statsProjector.Start(ctx)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - statsProjector.Start: %w", err))
	}
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	orlShutdownCtx, orlShutdownCancel := context.WithTimeout(ctx, cfg.OutboxRelay.ShutdownTimeout)
	defer orlShutdownCancel()
	err = outboxRelayWorker.Shutdown(orlShutdownCtx)
	if err != nil {
		l.Error(fmt.Errorf("app - Run - outboxRelayWorker.Shutdown: %w", err))
	}

	spShutdownCtx, spShutdownCancel := context.WithTimeout(ctx, cfg.StatsProjector.ShutdownTimeout)
	defer spShutdownCancel()
	err = statsProjector.Shutdown(spShutdownCtx)
	if err != nil {
		l.Error(fmt.Errorf("app - Run - statsProjector.Shutdown: %w", err))
	}
}
