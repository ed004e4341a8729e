package handler

import (
	"net/http"
	"os"
	"strings"
	"testing"

	"catalog-service/pkg/upload"
)

func TestUploadMissingFile(t *testing.T) {
	setup(t)

	body, contentType := multipartBody(t, "attachment", "photo.png", "image/png", []byte("png"))
	c, rec := newContext(http.MethodPost, "/api/upload", body, contentType)
	if err := UploadImage(c); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUploadRejectsExecutable(t *testing.T) {
	setup(t)

	// declared MIME does not matter when the extension is wrong
	body, contentType := multipartBody(t, "image", "photo.exe", "image/png", []byte("MZ"))
	c, rec := newContext(http.MethodPost, "/api/upload", body, contentType)
	if err := UploadImage(c); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	cfg := setup(t)
	cfg.Upload.MaxBytes = 8
	if err := upload.Init(cfg); err != nil {
		t.Fatalf("upload init: %v", err)
	}

	body, contentType := multipartBody(t, "image", "photo.png", "image/png", make([]byte, 100))
	c, rec := newContext(http.MethodPost, "/api/upload", body, contentType)
	if err := UploadImage(c); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

func TestUploadStoresImageAndReturnsURL(t *testing.T) {
	cfg := setup(t)

	body, contentType := multipartBody(t, "image", "photo.png", "image/png", []byte("png-bytes"))
	c, rec := newContext(http.MethodPost, "/api/upload", body, contentType)
	if err := UploadImage(c); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		URL string `json:"url"`
	}
	decode(t, rec, &resp)
	if !strings.HasPrefix(resp.URL, "/uploads/") || !strings.HasSuffix(resp.URL, ".png") {
		t.Fatalf("unexpected url %q", resp.URL)
	}

	name := strings.TrimPrefix(resp.URL, "/uploads/")
	if _, err := os.Stat(cfg.Upload.Dir + "/" + name); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}
