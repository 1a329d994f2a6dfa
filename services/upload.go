package services

import (
	"context"
	"io"

	apperrors "nexustech/errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

type AvatarService struct {
	uploader Uploader
	users    *UserService
}

func NewAvatarService(up Uploader, users *UserService) *AvatarService {
	return &AvatarService{uploader: up, users: users}
}

// SetAvatar uploads file and stores its URL as the user's photo.
func (s *AvatarService) SetAvatar(ctx context.Context, email string, file io.Reader) (string, error) {
	if s.uploader == nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeUnavailable, "Uploads are not configured", nil)
	}

	url, err := s.uploader.Upload(ctx, file, "avatars")
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeUpstream, "Upload failed", err)
	}
	if err := s.users.SetPhoto(ctx, email, url); err != nil {
		return "", err
	}
	return url, nil
}
