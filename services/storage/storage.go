package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	client    *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new Cloudinary-backed StorageService.
func NewStorageService(client *cloudinary.Cloudinary, cloudName string) StorageService {
	return &CloudinaryStorageService{client: client, cloudName: cloudName}
}

// UploadFile uploads a local file into destFolder under a random public ID and
// returns its secure URL.
func (s *CloudinaryStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(localFilePath), filepath.Ext(localFilePath))
	publicID := fmt.Sprintf("%s_%s", base, uuid.New().String())

	resp, err := s.client.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder:   destFolder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", localFilePath, err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("upload of %s returned no URL: %s", localFilePath, resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// DeleteFile removes an uploaded asset by its public ID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", publicID, err)
	}
	return nil
}

// PublicIDFromURL recovers an asset's public ID from its delivery URL, so a
// caller holding only the stored URL can issue a delete. Returns "" when the
// URL does not look like a delivery URL.
func PublicIDFromURL(rawURL string) string {
	parts := strings.SplitN(rawURL, "/upload/", 2)
	if len(parts) != 2 {
		return ""
	}
	path := parts[1]
	// Strip the version segment, e.g. "v1712345678/".
	if i := strings.Index(path, "/"); i > 1 && path[0] == 'v' {
		if _, err := strconv.Atoi(path[1:i]); err == nil {
			path = path[i+1:]
		}
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}
