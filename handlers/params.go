package handlers

import (
	"strconv"

	"foodgram-api/helper"
	"foodgram-api/models"

	"github.com/gin-gonic/gin"
)

// paramID parses a positive uint path parameter, sending a 404 when it is malformed.
func paramID(c *gin.Context, h *helper.HTTPHelper, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		h.SendError(c, &models.ErrorNotFound{Message: "Not found."})
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes and validates a request body, sending the error response itself on failure.
func bindJSON(c *gin.Context, h *helper.HTTPHelper, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.SendBadRequest(c, "Invalid request body: "+err.Error(), h.EmptyJsonMap())
		return false
	}
	if err := h.ValidateStruct(req); err != nil {
		h.SendError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, h *helper.HTTPHelper, params interface{}) bool {
	if err := c.ShouldBindQuery(params); err != nil {
		h.SendBadRequest(c, "Invalid query parameters: "+err.Error(), h.EmptyJsonMap())
		return false
	}
	return true
}
