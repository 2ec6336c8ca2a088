package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Create a pack
// @Description Create a pack for the event at stage 1 (order received)
// @Tags Packs
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param pack body CreatePackRequest true "Pack creation request"
// @Success 201 {object} PackResponse
// @Failure 400 {object} map[string]string "Invalid event ID or request body"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/packs [post]
func (h *Handler) createPack(c *gin.Context) {
	eventID, ok := parseID(c, "event")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "createPack").WithField("event_id", eventID)

	var input CreatePackRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	pack, err := h.packService.CreatePack(c.Request.Context(), eventID, DTOToPackInput(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToPackResponse(pack))
}

// @Summary List packs of an event
// @Tags Packs
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} PackResponse
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/packs [get]
func (h *Handler) listPacks(c *gin.Context) {
	eventID, ok := parseID(c, "event")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listPacks").WithField("event_id", eventID)

	packs, err := h.packService.ListPacks(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToPackResponses(packs))
}

// @Summary Get pack by ID
// @Tags Packs
// @Produce json
// @Param id path string true "Pack ID"
// @Success 200 {object} PackResponse
// @Failure 400 {object} map[string]string "Invalid pack ID"
// @Failure 404 {object} map[string]string "Pack not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /packs/{id} [get]
func (h *Handler) getPack(c *gin.Context) {
	id, ok := parseID(c, "pack")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getPack").WithField("id", id)

	pack, err := h.packService.GetPack(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToPackResponse(pack))
}

// @Summary Set pack stage
// @Description Move the pack to any stage 1..6 and stamp that stage's time
// @Tags Packs
// @Accept json
// @Produce json
// @Param id path string true "Pack ID"
// @Param stage body SetPackStageRequest true "Target stage"
// @Success 200 {object} PackResponse
// @Failure 400 {object} map[string]string "Invalid pack ID or request body"
// @Failure 404 {object} map[string]string "Pack not found"
// @Failure 422 {object} map[string]string "Stage out of range"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /packs/{id}/stage [put]
func (h *Handler) setPackStage(c *gin.Context) {
	id, ok := parseID(c, "pack")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setPackStage").WithField("id", id)

	var input SetPackStageRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	pack, err := h.packService.SetPackStage(c.Request.Context(), id, *input.Stage)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToPackResponse(pack))
}

// @Summary Set pack ready estimate
// @Description Set the estimated ready time in minutes from now (1..120); null clears it
// @Tags Packs
// @Accept json
// @Produce json
// @Param id path string true "Pack ID"
// @Param estimate body SetPackEstimateRequest true "Estimate in minutes"
// @Success 200 {object} PackResponse
// @Failure 400 {object} map[string]string "Invalid pack ID or request body"
// @Failure 404 {object} map[string]string "Pack not found"
// @Failure 422 {object} map[string]string "Minutes out of range"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /packs/{id}/estimate [put]
func (h *Handler) setPackEstimate(c *gin.Context) {
	id, ok := parseID(c, "pack")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setPackEstimate").WithField("id", id)

	var input SetPackEstimateRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	pack, err := h.packService.SetPackEstimate(c.Request.Context(), id, input.Minutes)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToPackResponse(pack))
}

// @Summary Refresh runner ETA
// @Description Recompute the assigned runner's arrival time to the given point while the pack is en route
// @Tags Packs
// @Accept json
// @Produce json
// @Param id path string true "Pack ID"
// @Param target body CoordinatesRequest true "Destination coordinates"
// @Success 200 {object} RunnerETAResponse
// @Failure 400 {object} map[string]string "Invalid pack ID or request body"
// @Failure 404 {object} map[string]string "Pack not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /packs/{id}/runner-eta [post]
func (h *Handler) refreshRunnerETA(c *gin.Context) {
	id, ok := parseID(c, "pack")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "refreshRunnerETA").WithField("id", id)

	var input CoordinatesRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	pack, minutes, err := h.packService.RefreshRunnerETA(c.Request.Context(), id, *input.Latitude, *input.Longitude)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RunnerETAResponse{Minutes: minutes, Pack: ModelToPackResponse(pack)})
}

// @Summary Delete a pack
// @Tags Packs
// @Param id path string true "Pack ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid pack ID"
// @Failure 404 {object} map[string]string "Pack not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /packs/{id} [delete]
func (h *Handler) deletePack(c *gin.Context) {
	id, ok := parseID(c, "pack")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deletePack").WithField("id", id)

	if err := h.packService.DeletePack(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
