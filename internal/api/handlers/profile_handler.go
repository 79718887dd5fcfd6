package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentnavigator/talentnavigator/internal/services"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

const maxAvatarBytes = 2 << 20

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.UploadAvatar", "avatar file is required", err))
		return
	}
	if fh.Size > maxAvatarBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.UploadAvatar", "avatar exceeds 2MB", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "ProfileHandler.UploadAvatar", "failed to read avatar", err))
		return
	}
	defer f.Close()

	u, err := h.svc.SetAvatar(c.Request.Context(), userID, fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
