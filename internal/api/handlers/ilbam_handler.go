package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentnavigator/talentnavigator/internal/cache"
	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/services"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type IlbamHandler struct {
	svc   services.IlbamService
	cache cache.Cache
}

func NewIlbamHandler(svc services.IlbamService, cc cache.Cache) *IlbamHandler {
	return &IlbamHandler{svc: svc, cache: cc}
}

func (h *IlbamHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.IlbamMatrix
	if hit, err := h.cache.GetJSON(ctx, cache.KeyMatrices, &cached); err == nil && hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	out, err := h.svc.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.SetJSON(ctx, cache.KeyMatrices, out, listCacheTTL)
	c.JSON(http.StatusOK, out)
}

func (h *IlbamHandler) GetByEmployee(c *gin.Context) {
	m, err := h.svc.GetByEmployee(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *IlbamHandler) Upload(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var m models.IlbamMatrix
	if err := c.ShouldBindJSON(&m); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "IlbamHandler.Upload", "invalid request body", err))
		return
	}

	out, err := h.svc.Upload(c.Request.Context(), &m, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.DelPrefix(c.Request.Context(), cache.KeyMatrices)
	c.JSON(http.StatusCreated, out)
}

func (h *IlbamHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.DelPrefix(c.Request.Context(), cache.KeyMatrices)
	c.Status(http.StatusNoContent)
}
