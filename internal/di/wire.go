//go:build wireinject
// +build wireinject

package di

import (
	"InsiderPull/pkg/config"
	"InsiderPull/pkg/server"

	"github.com/google/wire"
)

// InitializeRunner wires a single collection run. Wire will generate the
// implementation of this function.
func InitializeRunner(cfg *config.Config) (*server.Runner, func(), error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvidePushConfig,

		// Collection
		ProvideRegistry,
		ProvidePriceSource,
		ProvideBytesCache,
		ProvideDARTClient,
		ProvideCorpDirectory,
		ProvideDisclosureSource,
		ProvidePacer,
		ProvideCollector,
		ProvideReportBuilder,

		// Sinks
		ProvideReportFile,
		ProvideSecondarySinks,

		ProvideReportPipeline,
		server.NewRunner,
	)
	return nil, nil, nil
}

// InitializeApp wires the report API server.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideReportFile,
		ProvideReportReader,
		ProvideHTTPHandler,
		ProvideHTTPServer,
		server.New,
	)
	return nil, nil
}
