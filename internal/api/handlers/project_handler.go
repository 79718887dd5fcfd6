package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentnavigator/talentnavigator/internal/cache"
	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/services"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type ProjectHandler struct {
	svc   services.ProjectService
	cache cache.Cache
}

func NewProjectHandler(svc services.ProjectService, cc cache.Cache) *ProjectHandler {
	return &ProjectHandler{svc: svc, cache: cc}
}

func (h *ProjectHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Project
	if hit, err := h.cache.GetJSON(ctx, cache.KeyProjects, &cached); err == nil && hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	out, err := h.svc.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.SetJSON(ctx, cache.KeyProjects, out, listCacheTTL)
	c.JSON(http.StatusOK, out)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProjectHandler.Create", "invalid request body", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), &p)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.DelPrefix(c.Request.Context(), cache.KeyProjects)
	c.JSON(http.StatusCreated, out)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var p models.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProjectHandler.Update", "invalid request body", err))
		return
	}
	p.ID = c.Param("id")

	if err := h.svc.Update(c.Request.Context(), &p); err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.DelPrefix(c.Request.Context(), cache.KeyProjects)
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.DelPrefix(c.Request.Context(), cache.KeyProjects)
	c.Status(http.StatusNoContent)
}
