package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Activate a new event
// @Description Activate a new mass-transfusion event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event activation request"
// @Success 201 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [post]
func (h *Handler) createEvent(c *gin.Context) {
	var input CreateEventRequest
	log := h.logger.WithField("method", "createEvent")

	if !h.bindJSON(c, log, &input) {
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input.LabType, input.Location, input.PatientMRN)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToEventResponse(event))
}

// @Summary List active events
// @Description List all active events with their packs, oldest activation first
// @Tags Events
// @Produce json
// @Success 200 {array} EventResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [get]
func (h *Handler) listActiveEvents(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveEvents")

	events, err := h.eventService.ListActiveEvents(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEventResponses(events))
}

// @Summary Get the current active event
// @Description Get the most recently activated event that is still active
// @Tags Events
// @Produce json
// @Success 200 {object} EventResponse
// @Success 204 "No active event"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/active [get]
func (h *Handler) getActiveEvent(c *gin.Context) {
	log := h.logger.WithField("method", "getActiveEvent")

	event, err := h.eventService.GetActiveEvent(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	if event == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ModelToEventResponse(event))
}

// @Summary List all events for audit
// @Description List every event including deactivated ones
// @Tags Events
// @Produce json
// @Success 200 {array} EventResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/audit [get]
func (h *Handler) listEventsForAudit(c *gin.Context) {
	log := h.logger.WithField("method", "listEventsForAudit")

	events, err := h.eventService.ListEventsForAudit(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEventResponses(events))
}

// @Summary Get event by ID
// @Description Get a single active event by its ID
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 404 {object} map[string]string "Event not found or inactive"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id} [get]
func (h *Handler) getEvent(c *gin.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getEvent").WithField("id", id)

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToEventResponse(event))
}

// @Summary Assign a participant
// @Description Assign a runner or clinician to the event, replacing the previous one
// @Tags Events
// @Accept json
// @Param id path string true "Event ID"
// @Param assignment body AssignParticipantRequest true "Assignment request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid event ID or request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/assignment [put]
func (h *Handler) assignParticipant(c *gin.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "assignParticipant").WithField("id", id)

	var input AssignParticipantRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	if err := h.eventService.AssignParticipant(c.Request.Context(), id, input.Role, input.ParticipantID); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Move an event
// @Description Change the event location and record the move in its history
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param location body UpdateEventLocationRequest true "New location"
// @Success 200 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid event ID or request body"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/location [put]
func (h *Handler) updateEventLocation(c *gin.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateEventLocation").WithField("id", id)

	var input UpdateEventLocationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	event, err := h.eventService.UpdateEventLocation(c.Request.Context(), id, input.Location)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToEventResponse(event))
}

// @Summary Deactivate an event
// @Description Mark the event inactive. Unknown IDs are ignored.
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/deactivate [post]
func (h *Handler) deactivateEvent(c *gin.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deactivateEvent").WithField("id", id)

	if err := h.eventService.DeactivateEvent(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete an event
// @Description Permanently delete the event and all of its packs. Unknown IDs are ignored.
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id} [delete]
func (h *Handler) deleteEvent(c *gin.Context) {
	id, ok := parseID(c, "event")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteEvent").WithField("id", id)

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
