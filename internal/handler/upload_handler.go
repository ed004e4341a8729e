package handler

import (
	"errors"
	"net/http"

	"catalog-service/pkg/logger"
	"catalog-service/pkg/upload"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UploadImage accepts a multipart file field named "image" and stores it
// through the upload service
func UploadImage(c echo.Context) error {
	log := logger.FromContext(c)

	file, err := c.FormFile("image")
	if err != nil {
		log.Warn("Upload without file field", zap.Error(err))
		prometheus.RecordUploadRejected("missing_file")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no file"})
	}

	src, err := file.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read upload"})
	}
	defer src.Close()

	url, err := upload.Get().Store(src, file.Filename, file.Header.Get("Content-Type"))
	if errors.Is(err, upload.ErrRejectedType) {
		log.Warn("Rejected upload type",
			zap.String("filename", file.Filename),
			zap.String("content_type", file.Header.Get("Content-Type")))
		prometheus.RecordUploadRejected("type")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "only image files are allowed"})
	}
	if errors.Is(err, upload.ErrTooLarge) {
		log.Warn("Rejected oversized upload",
			zap.String("filename", file.Filename),
			zap.Int64("size", file.Size))
		prometheus.RecordUploadRejected("size")
		return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "file exceeds the upload size limit"})
	}
	if err != nil {
		log.Error("Failed to store upload", zap.String("filename", file.Filename), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store upload"})
	}

	prometheus.UploadAcceptedCounter.Inc()
	log.Info("Image uploaded",
		zap.String("filename", file.Filename),
		zap.String("url", url))
	return c.JSON(http.StatusOK, echo.Map{"url": url})
}
