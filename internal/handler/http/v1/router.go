package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// События (активации протокола массивной трансфузии)
	events := api.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listActiveEvents)
		events.GET("/active", h.getActiveEvent)
		events.GET("/audit", h.listEventsForAudit)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id/assignment", h.assignParticipant)
		events.PUT("/:id/location", h.updateEventLocation)
		events.POST("/:id/deactivate", h.deactivateEvent)
		events.DELETE("/:id", h.deleteEvent)
		events.POST("/:id/packs", h.createPack)
		events.GET("/:id/packs", h.listPacks)
	}

	packs := api.Group("/packs")
	{
		packs.GET("/:id", h.getPack)
		packs.PUT("/:id/stage", h.setPackStage)
		packs.PUT("/:id/estimate", h.setPackEstimate)
		packs.POST("/:id/runner-eta", h.refreshRunnerETA)
		packs.DELETE("/:id", h.deletePack)
	}

	// Позиции бегунов и клиницистов
	locations := api.Group("/locations")
	{
		locations.PUT("/:participantId", h.upsertLocation)
		locations.GET("/:participantId", h.getLocation)
		locations.GET("/:participantId/eta", h.estimateArrival)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
