package handlers

import (
	"net/http"

	"foodgram-api/helper"
	"foodgram-api/middleware"
	"foodgram-api/models"
	"foodgram-api/services"

	"github.com/gin-gonic/gin"
)

const shoppingListFilename = "shopping_list.txt"

type RecipeHandler struct {
	recipeService       services.RecipeService
	favoriteService     services.RelationService
	basketService       services.RelationService
	shoppingListService services.ShoppingListService
	Helper              *helper.HTTPHelper
}

func NewRecipeHandler(
	recipeService services.RecipeService,
	favoriteService services.RelationService,
	basketService services.RelationService,
	shoppingListService services.ShoppingListService,
	h *helper.HTTPHelper,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService:       recipeService,
		favoriteService:     favoriteService,
		basketService:       basketService,
		shoppingListService: shoppingListService,
		Helper:              h,
	}
}

func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	var params models.RecipeListParams
	if !bindQuery(c, h.Helper, &params) {
		return
	}

	page, err := h.recipeService.List(c.Request.Context(), middleware.ActorFromContext(c), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendPage(c, page.Items, page.Total, page.Page, page.Limit)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req models.RecipeRequest
	if !bindJSON(c, h.Helper, &req) {
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Recipe created successfully", recipe)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id")
	if !ok {
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id")
	if !ok {
		return
	}

	var req models.RecipeRequest
	if !bindJSON(c, h.Helper, &req) {
		return
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), middleware.ActorFromContext(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recipe updated successfully", recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id")
	if !ok {
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}

func (h *RecipeHandler) AddFavorite(c *gin.Context) {
	h.addRelation(c, h.favoriteService)
}

func (h *RecipeHandler) RemoveFavorite(c *gin.Context) {
	h.removeRelation(c, h.favoriteService)
}

func (h *RecipeHandler) AddToShoppingCart(c *gin.Context) {
	h.addRelation(c, h.basketService)
}

func (h *RecipeHandler) RemoveFromShoppingCart(c *gin.Context) {
	h.removeRelation(c, h.basketService)
}

func (h *RecipeHandler) addRelation(c *gin.Context, service services.RelationService) {
	id, ok := paramID(c, h.Helper, "id")
	if !ok {
		return
	}

	recipe, err := service.Add(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Success", recipe)
}

func (h *RecipeHandler) removeRelation(c *gin.Context, service services.RelationService) {
	id, ok := paramID(c, h.Helper, "id")
	if !ok {
		return
	}

	if err := service.Remove(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}

// DownloadShoppingCart sends the aggregated shopping list as a text attachment.
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	items, err := h.shoppingListService.Compute(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+shoppingListFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.shoppingListService.Render(items)))
}
