package fx

import (
	"ringbook/internal/ai"
	"ringbook/internal/config"
	"ringbook/internal/logger"
	"ringbook/internal/server"
	"ringbook/internal/service"
	"ringbook/internal/storage"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// stores
	fx.Provide(storage.ProvideWrestlerStore),
	fx.Provide(storage.ProvideTagTeamStore),
	fx.Provide(storage.ProvideBeltStore),
	fx.Provide(storage.ProvideEventStore),
	fx.Provide(storage.ProvideSegmentStore),
	fx.Provide(storage.ProvideDivisionStore),
	fx.Provide(storage.ProvidePrefsStore),
	// ai client
	fx.Provide(ai.NewClient),
	// svc
	fx.Provide(service.NewRosterService),
	fx.Provide(service.NewTagTeamService),
	fx.Provide(service.NewBeltService),
	fx.Provide(service.NewEventService),
	fx.Provide(service.NewSegmentService),
	fx.Provide(service.NewFinalizeService),
	fx.Provide(service.NewNarrativeService),
	fx.Provide(service.NewExportService),
	// server
	fx.Provide(server.NewServer),
)
