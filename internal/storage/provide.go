package storage

import (
	"github.com/rs/zerolog"

	"ringbook/internal/config"
)

// fx constructors. Stores themselves take a plain data directory so tests
// can point them at a temp dir without a Config.

func ProvideWrestlerStore(cfg *config.Config, logger zerolog.Logger) *WrestlerStore {
	return NewWrestlerStore(cfg.DataDir, logger)
}

func ProvideTagTeamStore(cfg *config.Config, logger zerolog.Logger) *TagTeamStore {
	return NewTagTeamStore(cfg.DataDir, logger)
}

func ProvideBeltStore(cfg *config.Config, logger zerolog.Logger) *BeltStore {
	return NewBeltStore(cfg.DataDir, logger)
}

func ProvideEventStore(cfg *config.Config, logger zerolog.Logger) *EventStore {
	return NewEventStore(cfg.DataDir, logger)
}

func ProvideSegmentStore(cfg *config.Config, logger zerolog.Logger) *SegmentStore {
	return NewSegmentStore(cfg.DataDir, logger)
}

func ProvideDivisionStore(cfg *config.Config, logger zerolog.Logger) *DivisionStore {
	return NewDivisionStore(cfg.DataDir, logger)
}

func ProvidePrefsStore(cfg *config.Config, logger zerolog.Logger) *PrefsStore {
	return NewPrefsStore(cfg.DataDir, logger)
}
