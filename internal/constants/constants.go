package constants

import "time"

const (
	AIGenerationTimeout = 90 * time.Second
	RequestTimeout      = 30 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	TagTeamMinMembers = 2
	TagTeamMaxMembers = 3
)

const (
	BattleRoyalMinSides = 10
)

const (
	ExportWorkerLimit = 4
)
