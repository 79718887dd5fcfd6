package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/storage"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

// ProfileService covers the pieces of a user profile the account owner can
// change themselves. Today that is the avatar.
type ProfileService interface {
	SetAvatar(ctx context.Context, userID, filename, contentType string, r io.Reader) (*models.User, error)
}

type profileService struct {
	users    UserService
	uploader storage.Uploader
}

func NewProfileService(users UserService, uploader storage.Uploader) ProfileService {
	return &profileService{users: users, uploader: uploader}
}

func (s *profileService) SetAvatar(ctx context.Context, userID, filename, contentType string, r io.Reader) (*models.User, error) {
	const op = "ProfileService.SetAvatar"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "avatar storage is not configured", nil)
	}

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("avatars/%s%s", userID, path.Ext(filename))
	url, err := s.uploader.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upload avatar", err)
	}

	u.AvatarURL = url
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
