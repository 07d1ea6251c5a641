package server

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"ringbook/internal/service"
	"ringbook/internal/storage"
)

// Server binds the HTTP surface to the service layer. Handlers translate
// between JSON payloads and domain types; all rules live in the services.
type Server struct {
	roster    *service.RosterService
	tagteams  *service.TagTeamService
	belts     *service.BeltService
	events    *service.EventService
	segments  *service.SegmentService
	finalize  *service.FinalizeService
	narrative *service.NarrativeService
	export    *service.ExportService
	divisions *storage.DivisionStore
	prefs     *storage.PrefsStore
	logger    zerolog.Logger
}

func NewServer(
	roster *service.RosterService,
	tagteams *service.TagTeamService,
	belts *service.BeltService,
	events *service.EventService,
	segments *service.SegmentService,
	finalize *service.FinalizeService,
	narrative *service.NarrativeService,
	export *service.ExportService,
	divisions *storage.DivisionStore,
	prefs *storage.PrefsStore,
	logger zerolog.Logger,
) *Server {
	return &Server{
		roster:    roster,
		tagteams:  tagteams,
		belts:     belts,
		events:    events,
		segments:  segments,
		finalize:  finalize,
		narrative: narrative,
		export:    export,
		divisions: divisions,
		prefs:     prefs,
		logger:    logger,
	}
}

func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.health)

	api := e.Group("/api")

	api.GET("/wrestlers", s.listWrestlers)
	api.POST("/wrestlers", s.createWrestler)
	api.GET("/wrestlers/:name", s.getWrestler)
	api.PUT("/wrestlers/:name", s.updateWrestler)
	api.DELETE("/wrestlers/:name", s.deleteWrestler)
	api.POST("/wrestlers/reset-records", s.resetWrestlerRecords)

	api.GET("/tagteams", s.listTagTeams)
	api.POST("/tagteams", s.createTagTeam)
	api.GET("/tagteams/:name", s.getTagTeam)
	api.PUT("/tagteams/:name", s.updateTagTeam)
	api.DELETE("/tagteams/:name", s.deleteTagTeam)
	api.POST("/tagteams/reset-records", s.resetTagTeamRecords)

	api.GET("/belts", s.listBelts)
	api.POST("/belts", s.createBelt)
	api.GET("/belts/:id", s.getBelt)
	api.PUT("/belts/:id", s.updateBelt)
	api.DELETE("/belts/:id", s.deleteBelt)
	api.GET("/belts/:id/history", s.beltHistory)
	api.PUT("/belts/:id/holder", s.setBeltHolder)

	api.GET("/divisions", s.listDivisions)

	api.GET("/events", s.listEvents)
	api.POST("/events", s.createEvent)
	api.GET("/events/:slug", s.getEvent)
	api.PUT("/events/:slug", s.updateEvent)
	api.DELETE("/events/:slug", s.deleteEvent)
	api.POST("/events/:slug/finalize", s.finalizeEvent)

	api.GET("/events/:slug/segments", s.listSegments)
	api.POST("/events/:slug/segments", s.createSegment)
	api.GET("/events/:slug/segments/:position", s.getSegment)
	api.PUT("/events/:slug/segments/:position", s.updateSegment)
	api.DELETE("/events/:slug/segments/:position", s.deleteSegment)
	api.POST("/events/:slug/segments/:position/ai-generate", s.generateNarrative)

	api.GET("/prefs", s.getPrefs)
	api.PUT("/prefs", s.updatePrefs)

	api.POST("/tools/export", s.exportSite)
	api.POST("/tools/backup", s.backupData)
	api.POST("/tools/restore", s.restoreData)
	api.POST("/tools/reset", s.resetData)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(200, map[string]string{"status": "ok"})
}
