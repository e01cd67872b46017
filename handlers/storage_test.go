package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeStorageService struct {
	uploadedPaths   []string
	uploadedFolders []string
	deleted         []string
	failOnFolder    string
}

func (f *fakeStorageService) UploadFile(_ context.Context, localFilePath, destFolder string) (string, error) {
	if destFolder == f.failOnFolder {
		return "", errors.New("upstream unavailable")
	}
	f.uploadedPaths = append(f.uploadedPaths, localFilePath)
	f.uploadedFolders = append(f.uploadedFolders, destFolder)
	url := fmt.Sprintf("https://res.cloudinary.com/demo/image/upload/v1712345678/%s/asset_%d.jpg",
		destFolder, len(f.uploadedPaths))
	return url, nil
}

func (f *fakeStorageService) DeleteFile(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

func documentsRouter(svc *fakeStorageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStorageHandler(svc)
	r.POST("/api/technicians/register/documents", h.UploadTechnicianDocumentsHandler)
	return r
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for field, filename := range files {
		part, err := w.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("failed to build form file %s: %v", field, err)
		}
		if _, err := io.WriteString(part, "fake image bytes"); err != nil {
			t.Fatalf("failed to write form file %s: %v", field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestUploadTechnicianDocuments(t *testing.T) {
	svc := &fakeStorageService{}
	r := documentsRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		idCardField:      "card.jpg",
		verifyPhotoField: "card.jpg", // same client filename must not collide
	})
	req := httptest.NewRequest(http.MethodPost, "/api/technicians/register/documents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		IDCardURL      string `json:"idCardUrl"`
		VerifyPhotoURL string `json:"verifyPhotoUrl"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.IDCardURL == "" || resp.VerifyPhotoURL == "" {
		t.Fatalf("expected both document URLs, got %+v", resp)
	}

	if len(svc.uploadedFolders) != 2 ||
		svc.uploadedFolders[0] != idCardFolder ||
		svc.uploadedFolders[1] != verifyPhotoFolder {
		t.Fatalf("unexpected upload folders: %v", svc.uploadedFolders)
	}
	if svc.uploadedPaths[0] == svc.uploadedPaths[1] {
		t.Fatal("identical client filenames must stage to distinct temp paths")
	}
	if len(svc.deleted) != 0 {
		t.Fatalf("nothing should be deleted on success, got %v", svc.deleted)
	}
}

func TestUploadTechnicianDocumentsStagesSafeTempNames(t *testing.T) {
	svc := &fakeStorageService{}
	r := documentsRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		idCardField:      "../../escape.jpg",
		verifyPhotoField: "selfie.png",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/technicians/register/documents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	for _, staged := range svc.uploadedPaths {
		if strings.Contains(staged, "..") || strings.Contains(staged, "escape") {
			t.Fatalf("client filename leaked into the temp path: %s", staged)
		}
		if filepath.Dir(staged) != filepath.Clean(os.TempDir()) {
			t.Fatalf("staged file left the temp dir: %s", staged)
		}
	}
}

func TestUploadTechnicianDocumentsMissingFile(t *testing.T) {
	svc := &fakeStorageService{}
	r := documentsRouter(svc)

	body, contentType := multipartBody(t, map[string]string{idCardField: "card.jpg"})
	req := httptest.NewRequest(http.MethodPost, "/api/technicians/register/documents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a verification photo, got %d", w.Code)
	}
	// The already-uploaded identity document must not be left orphaned.
	if len(svc.deleted) != 1 || !strings.HasPrefix(svc.deleted[0], idCardFolder+"/") {
		t.Fatalf("expected the identity document to be deleted, got %v", svc.deleted)
	}
}

func TestUploadTechnicianDocumentsCleansUpOnUploadFailure(t *testing.T) {
	svc := &fakeStorageService{failOnFolder: verifyPhotoFolder}
	r := documentsRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		idCardField:      "card.jpg",
		verifyPhotoField: "selfie.png",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/technicians/register/documents", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the second upload fails, got %d", w.Code)
	}
	if len(svc.deleted) != 1 {
		t.Fatalf("expected the identity document to be deleted, got %v", svc.deleted)
	}
}
