package handlers

import (
	"foodgram-api/helper"
	"foodgram-api/middleware"
	"foodgram-api/models"
	"foodgram-api/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService   services.UserService
	followService services.FollowService
	Helper        *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, followService services.FollowService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, followService: followService, Helper: h}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, h.Helper, &req) {
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "User registered successfully", user)
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	var params models.PageParams
	if !bindQuery(c, h.Helper, &params) {
		return
	}

	page, err := h.userService.List(c.Request.Context(), middleware.ActorFromContext(c), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendPage(c, page.Items, page.Total, page.Page, page.Limit)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", user)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userService.Me(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", user)
}

func (h *UserHandler) GetSubscriptions(c *gin.Context) {
	var params models.SubscriptionParams
	if !bindQuery(c, h.Helper, &params) {
		return
	}

	page, err := h.followService.Subscriptions(c.Request.Context(), middleware.ActorFromContext(c), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendPage(c, page.Items, page.Total, page.Page, page.Limit)
}

func (h *UserHandler) Subscribe(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id")
	if !ok {
		return
	}

	var params models.SubscriptionParams
	if !bindQuery(c, h.Helper, &params) {
		return
	}

	author, err := h.followService.Subscribe(c.Request.Context(), middleware.ActorFromContext(c), id, params.RecipesLimit)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Subscribed successfully", author)
}

func (h *UserHandler) Unsubscribe(c *gin.Context) {
	id, ok := paramID(c, h.Helper, "id")
	if !ok {
		return
	}

	if err := h.followService.Unsubscribe(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}
