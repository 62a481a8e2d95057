package handlers

import (
	"foodgram-api/helper"
	"foodgram-api/services"

	"github.com/gin-gonic/gin"
)

type IngredientHandler struct {
	catalogService services.CatalogService
	Helper         *helper.HTTPHelper
}

func NewIngredientHandler(catalogService services.CatalogService, h *helper.HTTPHelper) *IngredientHandler {
	return &IngredientHandler{catalogService: catalogService, Helper: h}
}

// GetIngredients lists ingredients, optionally narrowed by a case-insensitive ?name= prefix.
func (h *IngredientHandler) GetIngredients(c *gin.Context) {
	ingredients, err := h.catalogService.SearchIngredients(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", ingredients)
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id")
	if !ok {
		return
	}

	ingredient, err := h.catalogService.GetIngredient(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", ingredient)
}
