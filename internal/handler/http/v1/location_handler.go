package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Update participant location
// @Description Store the latest position of a runner or clinician
// @Tags Locations
// @Accept json
// @Produce json
// @Param participantId path string true "Participant ID"
// @Param location body UpsertLocationRequest true "Current position"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{participantId} [put]
func (h *Handler) upsertLocation(c *gin.Context) {
	participantID := c.Param("participantId")
	log := h.logger.WithField("method", "upsertLocation").WithField("participant_id", participantID)

	var input UpsertLocationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	location, err := h.locationService.UpsertLocation(c.Request.Context(), DTOToLocationInput(participantID, input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(location))
}

// @Summary Get participant location
// @Tags Locations
// @Produce json
// @Param participantId path string true "Participant ID"
// @Success 200 {object} LocationResponse
// @Failure 404 {object} map[string]string "Location unknown"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{participantId} [get]
func (h *Handler) getLocation(c *gin.Context) {
	participantID := c.Param("participantId")
	log := h.logger.WithField("method", "getLocation").WithField("participant_id", participantID)

	location, err := h.locationService.GetLocation(c.Request.Context(), participantID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	if location == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "participant location not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(location))
}

// @Summary Estimate arrival time
// @Description Walking-time estimate in minutes from the participant's last position to the given point
// @Tags Locations
// @Produce json
// @Param participantId path string true "Participant ID"
// @Param lat query number true "Destination latitude"
// @Param lng query number true "Destination longitude"
// @Success 200 {object} ETAResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{participantId}/eta [get]
func (h *Handler) estimateArrival(c *gin.Context) {
	participantID := c.Param("participantId")
	log := h.logger.WithField("method", "estimateArrival").WithField("participant_id", participantID)

	var input CoordinatesRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	minutes, err := h.locationService.EstimateArrival(c.Request.Context(), participantID, *input.Latitude, *input.Longitude)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ETAResponse{Minutes: minutes})
}
