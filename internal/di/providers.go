package di

import (
	"context"
	"fmt"
	"time"

	"InsiderPull/internal/domain/models"
	drepo "InsiderPull/internal/domain/repository"
	"InsiderPull/internal/handler/api"
	internalrepo "InsiderPull/internal/repository"
	"InsiderPull/internal/service/cache"
	"InsiderPull/internal/service/dart"
	"InsiderPull/internal/service/ratelimit"
	"InsiderPull/internal/service/registry"
	"InsiderPull/internal/usecase"
	pkgch "InsiderPull/pkg/clickhouse"
	"InsiderPull/pkg/config"
	xhttp "InsiderPull/pkg/http"
	pkgkafka "InsiderPull/pkg/kafka"
	"InsiderPull/pkg/logger"
	"InsiderPull/pkg/metrics"
	"InsiderPull/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
)

// ProvideLogger builds the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder on the default registry.
func ProvideMetrics() drepo.Metrics {
	return metrics.New(prometheus.DefaultRegisterer)
}

func ProvidePushConfig(cfg *config.Config) server.PushConfig {
	return server.PushConfig{
		URL:      cfg.Metrics.PushgatewayURL,
		Job:      cfg.Metrics.Job,
		Gatherer: prometheus.DefaultGatherer,
	}
}

func ProvideRegistry(cfg *config.Config) (*models.Registry, error) {
	return registry.Load(cfg.Collect.RegistryPath)
}

// ProvidePriceSource uses the registry's static prices.
func ProvidePriceSource(reg *models.Registry) drepo.PriceSource {
	return reg
}

// ProvideBytesCache selects the identifier cache backend. An unreachable Redis
// degrades to no caching.
func ProvideBytesCache(cfg *config.Config, log *logger.Logger) (cache.BytesCache, func(), error) {
	noop := func() {}
	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewTTLCache(), noop, nil
	case "file":
		return cache.NewFileCache(cfg.Cache.Dir), noop, nil
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			log.Warn("redis cache unavailable, caching disabled", logger.Error(err))
			return cache.Nop{}, noop, nil
		}
		return rc, func() { _ = rc.Close() }, nil
	default:
		return cache.Nop{}, noop, nil
	}
}

func ProvideDARTClient(cfg *config.Config) *dart.Client {
	return dart.New(cfg.DART.APIKey, cfg.DART.BaseURL,
		dart.WithTimeouts(cfg.DART.RequestTimeout, cfg.DART.DirectoryTimeout),
	)
}

func ProvideCorpDirectory(client *dart.Client, c cache.BytesCache, cfg *config.Config, log *logger.Logger) drepo.CorpDirectory {
	return dart.NewDirectory(client, c, cfg.Cache.TTL, log)
}

func ProvideDisclosureSource(client *dart.Client) drepo.DisclosureSource {
	return client
}

func ProvidePacer(cfg *config.Config) drepo.Pacer {
	return ratelimit.NewPacer(cfg.DART.RequestDelay)
}

func ProvideCollector(
	cfg *config.Config,
	reg *models.Registry,
	directory drepo.CorpDirectory,
	source drepo.DisclosureSource,
	prices drepo.PriceSource,
	pacer drepo.Pacer,
	m drepo.Metrics,
	log *logger.Logger,
) *usecase.Collector {
	return usecase.NewCollector(reg, directory, source, prices, pacer, m, log, cfg.Collect.WindowDays)
}

func ProvideReportBuilder(cfg *config.Config) *usecase.ReportBuilder {
	return usecase.NewReportBuilder(cfg.Collect.Period, usecase.ReportLimits{
		Trades:     cfg.Output.TradesLimit,
		HotStocks:  cfg.Output.HotStocksLimit,
		BigPlayers: cfg.Output.BigPlayersLimit,
	})
}

func ProvideReportFile(cfg *config.Config) *internalrepo.ReportFile {
	return internalrepo.NewReportFile(cfg.Output.Path)
}

func ProvideReportReader(f *internalrepo.ReportFile) drepo.ReportReader {
	return f
}

// ProvideSecondarySinks connects the optional ClickHouse and Kafka sinks.
// A sink that cannot be set up is logged and left out of the run.
func ProvideSecondarySinks(cfg *config.Config, log *logger.Logger) ([]drepo.SnapshotSink, func(), error) {
	var sinks []drepo.SnapshotSink
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.ClickHouse.Enabled {
		store, closeFn, err := provideClickHouseStore(cfg)
		if err != nil {
			log.Error("clickhouse sink disabled", logger.Error(err))
		} else {
			sinks = append(sinks, store)
			closers = append(closers, closeFn)
		}
	}

	if cfg.Kafka.Enabled {
		producer, err := pkgkafka.NewProducer(
			pkgkafka.WithBrokers(cfg.Kafka.Brokers),
			pkgkafka.WithCompression(cfg.Kafka.Compression),
			pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
			pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
			pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		)
		if err != nil {
			log.Error("kafka sink disabled", logger.Error(err))
		} else {
			sinks = append(sinks, internalrepo.NewKafkaSnapshotPublisher(producer, cfg.Kafka.ReportTopic, cfg.Kafka.RecordsTopic))
			closers = append(closers, func() { _ = producer.Close() })
		}
	}

	return sinks, cleanup, nil
}

func provideClickHouseStore(cfg *config.Config) (*internalrepo.ClickHouseSnapshotStore, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := pkgch.NewClient(ctx,
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("clickhouse client: %w", err)
	}

	store := internalrepo.NewClickHouseSnapshotStore(client, cfg.ClickHouse.Database, cfg.ClickHouse.Table)
	if err := store.Init(ctx); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	return store, func() { _ = client.Close() }, nil
}

func ProvideReportPipeline(
	collector *usecase.Collector,
	builder *usecase.ReportBuilder,
	file *internalrepo.ReportFile,
	secondary []drepo.SnapshotSink,
	m drepo.Metrics,
	log *logger.Logger,
) *usecase.ReportPipeline {
	return usecase.NewReportPipeline(collector, builder, file, secondary, m, log)
}

func ProvideHTTPHandler(log *logger.Logger, reader drepo.ReportReader) xhttp.Handler {
	return api.NewReportEchoHandler(log, reader)
}

func ProvideHTTPServer(cfg *config.Config, handler xhttp.Handler, log *logger.Logger) *xhttp.Server {
	return xhttp.NewServer(handler, log,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(true),
	)
}
