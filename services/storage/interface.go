package storage

import "context"

// StorageService defines the interface for image storage operations. Uploads
// return a stable secure URL that is persisted on the owning document.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
}
