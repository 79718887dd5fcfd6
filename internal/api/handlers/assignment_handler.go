package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/services"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

type AssignmentHandler struct {
	svc services.AssignmentService
}

func NewAssignmentHandler(svc services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

func (h *AssignmentHandler) ListByProject(c *gin.Context) {
	out, err := h.svc.ListByProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AssignmentHandler) ListByEmployee(c *gin.Context) {
	out, err := h.svc.ListByEmployee(c.Request.Context(), c.Param("employee_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AssignmentHandler) Create(c *gin.Context) {
	var a models.ProjectAssignment
	if err := c.ShouldBindJSON(&a); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AssignmentHandler.Create", "invalid request body", err))
		return
	}

	out, err := h.svc.Create(c.Request.Context(), &a)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *AssignmentHandler) Update(c *gin.Context) {
	var a models.ProjectAssignment
	if err := c.ShouldBindJSON(&a); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AssignmentHandler.Update", "invalid request body", err))
		return
	}
	a.ID = c.Param("id")

	if err := h.svc.Update(c.Request.Context(), &a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
