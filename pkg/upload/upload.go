package upload

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"catalog-service/pkg/config"
)

var (
	// ErrRejectedType is returned when extension or declared content
	// type is not in the image allowlist.
	ErrRejectedType = errors.New("only image files are allowed")
	// ErrTooLarge is returned when the payload exceeds the size cap.
	ErrTooLarge = errors.New("file exceeds the upload size limit")
)

// allowedTypes are the accepted image formats. Both the file extension
// and the declared content type must match one of them; the body is not
// sniffed, so this is not a security boundary.
var allowedTypes = []string{"jpeg", "jpg", "png", "webp", "gif", "avif"}

// Service writes uploaded images into a directory served under
// /uploads. Files are never deleted, even when no product references
// them anymore.
type Service struct {
	dir      string
	maxBytes int64
}

var instance *Service

// Init sets up the global upload service and ensures the uploads
// directory exists
func Init(cfg *config.Config) error {
	instance = New(cfg.Upload.Dir, cfg.Upload.MaxBytes)
	return os.MkdirAll(cfg.Upload.Dir, 0o755)
}

// Get returns the upload service instance
func Get() *Service {
	return instance
}

// New creates an upload service writing into dir with the given size cap
func New(dir string, maxBytes int64) *Service {
	return &Service{dir: dir, maxBytes: maxBytes}
}

// Store validates the upload and persists it under a generated name,
// returning the public URL path. Nothing is written when validation
// fails.
func (s *Service) Store(r io.Reader, originalName, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !extAllowed(ext) || !mimeAllowed(contentType) {
		return "", ErrRejectedType
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrTooLarge
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads directory: %w", err)
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSuffix(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + name, nil
}

func extAllowed(ext string) bool {
	trimmed := strings.TrimPrefix(ext, ".")
	for _, t := range allowedTypes {
		if trimmed == t {
			return true
		}
	}
	return false
}

func mimeAllowed(contentType string) bool {
	ct := strings.ToLower(contentType)
	for _, t := range allowedTypes {
		if strings.Contains(ct, t) {
			return true
		}
	}
	return false
}

func randomSuffix() string {
	return strconv.FormatUint(rand.Uint64(), 36)
}
