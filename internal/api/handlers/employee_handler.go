package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talentnavigator/talentnavigator/internal/cache"
	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/services"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

const listCacheTTL = 30 * time.Second

type EmployeeHandler struct {
	svc   services.EmployeeService
	cache cache.Cache
}

func NewEmployeeHandler(svc services.EmployeeService, cc cache.Cache) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, cache: cc}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Employee
	if hit, err := h.cache.GetJSON(ctx, cache.KeyEmployees, &cached); err == nil && hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	out, err := h.svc.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.SetJSON(ctx, cache.KeyEmployees, out, listCacheTTL)
	c.JSON(http.StatusOK, out)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	e, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) ListMentees(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	out, err := h.svc.ListByMentor(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var e models.Employee
	if err := c.ShouldBindJSON(&e); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployeeHandler.Create", "invalid request body", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), &e)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.DelPrefix(c.Request.Context(), cache.KeyEmployees)
	c.JSON(http.StatusCreated, out)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	var e models.Employee
	if err := c.ShouldBindJSON(&e); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "EmployeeHandler.Update", "invalid request body", err))
		return
	}
	e.ID = c.Param("id")

	if err := h.svc.Update(c.Request.Context(), &e); err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.DelPrefix(c.Request.Context(), cache.KeyEmployees)
	c.JSON(http.StatusOK, e)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	_ = h.cache.DelPrefix(c.Request.Context(), cache.KeyEmployees)
	c.Status(http.StatusNoContent)
}
