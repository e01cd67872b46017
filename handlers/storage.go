package handlers

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"coolq/services/storage"
	"coolq/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageHandler exposes the technician document upload endpoint.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// Multipart fields and their storage folders for registration documents.
const (
	idCardField       = "id_card"
	verifyPhotoField  = "verify_photo"
	idCardFolder      = "technicians/documents"
	verifyPhotoFolder = "technicians/selfies"
)

// stageUpload copies a multipart file to a collision-free temp path. The
// client-supplied filename is only consulted for its extension.
func stageUpload(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	tempFilePath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		return "", err
	}
	return tempFilePath, nil
}

// UploadTechnicianDocumentsHandler handles POST /api/technicians/register/documents.
// Registrants upload their identity document and verification selfie here and
// pass the returned URLs to the register call.
func (h *StorageHandler) UploadTechnicianDocumentsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	idCardURL, err := h.uploadFormFile(c, idCardField, idCardFolder)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	verifyPhotoURL, err := h.uploadFormFile(c, verifyPhotoField, verifyPhotoFolder)
	if err != nil {
		// Don't keep an orphaned half of the document pair.
		if delErr := h.StorageSvc.DeleteFile(c, storage.PublicIDFromURL(idCardURL)); delErr != nil {
			logger.Warn("failed to delete orphaned identity document",
				zap.String("url", idCardURL), zap.Error(delErr))
		}
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"idCardUrl":      idCardURL,
		"verifyPhotoUrl": verifyPhotoURL,
	})
}

func (h *StorageHandler) uploadFormFile(c *gin.Context, field, destFolder string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", utils.Validationf("missing %q file", field)
	}

	tempFilePath, err := stageUpload(c, fileHeader)
	if err != nil {
		return "", err
	}
	defer os.Remove(tempFilePath)

	url, err := h.StorageSvc.UploadFile(c, tempFilePath, destFolder)
	if err != nil {
		utils.GetLogger().Error("document upload failed",
			zap.String("field", field), zap.Error(err))
		return "", err
	}
	return url, nil
}
