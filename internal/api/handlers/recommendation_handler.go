package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentnavigator/talentnavigator/internal/cache"
	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/services"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type RecommendationHandler struct {
	svc   services.RecommendationService
	cache cache.Cache
}

func NewRecommendationHandler(svc services.RecommendationService, cc cache.Cache) *RecommendationHandler {
	return &RecommendationHandler{svc: svc, cache: cc}
}

func (h *RecommendationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.TeamRecommendation
	if hit, err := h.cache.GetJSON(ctx, cache.KeyRecommendations, &cached); err == nil && hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	out, err := h.svc.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.SetJSON(ctx, cache.KeyRecommendations, out, listCacheTTL)
	c.JSON(http.StatusOK, out)
}

func (h *RecommendationHandler) ListByProject(c *gin.Context) {
	out, err := h.svc.ListByProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *RecommendationHandler) Create(c *gin.Context) {
	var rec models.TeamRecommendation
	if err := c.ShouldBindJSON(&rec); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "RecommendationHandler.Create", "invalid request body", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), &rec)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.DelPrefix(c.Request.Context(), cache.KeyRecommendations)
	c.JSON(http.StatusCreated, out)
}

func (h *RecommendationHandler) Generate(c *gin.Context) {
	out, err := h.svc.Generate(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.DelPrefix(c.Request.Context(), cache.KeyRecommendations)
	c.JSON(http.StatusCreated, out)
}

func (h *RecommendationHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.DelPrefix(c.Request.Context(), cache.KeyRecommendations)
	c.Status(http.StatusNoContent)
}
