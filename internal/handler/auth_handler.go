package handler

import (
	"net/http"

	"catalog-service/pkg/config"
	"catalog-service/pkg/jwtutil"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	adminUsername     string
	adminPasswordHash []byte
)

// InitAuth hashes the configured admin password once at boot. The plain
// password never leaves the config after this.
func InitAuth(cfg *config.Config) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminUsername = cfg.Admin.Username
	adminPasswordHash = hash
	return nil
}

// Login verifies the admin credential pair and issues a session token
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Username != adminUsername ||
		bcrypt.CompareHashAndPassword(adminPasswordHash, []byte(req.Password)) != nil {
		log.Warn("Invalid admin credentials", zap.String("username", req.Username))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(req.Username)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.AuthErrorsCounter.Inc()
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.AuthSuccessCounter.Inc()
	log.Info("Admin logged in", zap.String("username", req.Username))
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
