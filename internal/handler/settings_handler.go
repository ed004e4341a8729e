package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"catalog-service/internal/model"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/store"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GetSettings returns the store settings, defaulted if absent
func GetSettings(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackStoreOperation("load")(time.Now())
	doc, err := store.Get().Load()
	if err != nil {
		log.Error("Failed to load settings", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve settings"})
	}

	settings := doc.Settings
	if settings == (model.Settings{}) {
		settings = model.DefaultSettings()
	}

	prometheus.RecordCatalogOperation("settings_get")
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings replaces the settings record. The result is the
// defaults overlaid with the posted fields, so anything missing from
// the payload reverts to its default rather than the prior saved value.
func UpdateSettings(c echo.Context) error {
	log := logger.FromContext(c)

	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		log.Error("Failed to read request body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	settings := model.DefaultSettings()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &settings); err != nil {
			log.Error("Invalid settings payload", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
		}
	}

	defer prometheus.TrackStoreOperation("update")(time.Now())
	_, err = store.Get().Update(func(doc *store.Document) error {
		doc.Settings = settings
		return nil
	})
	if err != nil {
		log.Error("Failed to save settings", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save settings"})
	}

	prometheus.RecordCatalogOperation("settings_update")
	log.Info("Settings saved", zap.String("store_name", settings.StoreName))
	return c.JSON(http.StatusOK, settings)
}
