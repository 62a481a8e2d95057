package handlers

import (
	"foodgram-api/helper"
	"foodgram-api/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	catalogService services.CatalogService
	Helper         *helper.HTTPHelper
}

func NewTagHandler(catalogService services.CatalogService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{catalogService: catalogService, Helper: h}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.catalogService.ListTags(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", tags)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id")
	if !ok {
		return
	}

	tag, err := h.catalogService.GetTag(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", tag)
}
