package handler

import (
	"errors"
	"net/http"

	"codex-service/internal/core/logger"
	"codex-service/internal/features/version/domain"
	"codex-service/internal/features/version/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VersionHandler handles HTTP requests for the app version check.
type VersionHandler struct {
	service ports.VersionService
}

// NewVersionHandler creates a new VersionHandler.
func NewVersionHandler(service ports.VersionService) *VersionHandler {
	return &VersionHandler{
		service: service,
	}
}

// SetVersionRequest represents the request body for overriding the version payload.
type SetVersionRequest struct {
	LatestVersion string            `json:"latest_version"`
	UpdateType    domain.UpdateType `json:"update_type"`
	AppStoreLink  string            `json:"app_store_link"`
}

// Root handles GET / by redirecting to the version check.
func (h *VersionHandler) Root(c *fiber.Ctx) error {
	return c.Redirect("/version", http.StatusFound)
}

// GetVersion handles GET /version.
// @Summary Get the latest app version
// @Description Returns the version the driver app should be running and whether updating is forced.
// @Tags Version
// @Produce json
// @Success 200 {object} domain.VersionInfo
// @Failure 500 {object} map[string]string
// @Router /version [get]
func (h *VersionHandler) GetVersion(c *fiber.Ctx) error {
	info, err := h.service.GetVersion(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to get version", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(info)
}

// SetVersion handles PUT /version.
// @Summary Override the version payload
// @Description Stores a version payload that replaces the configured one until removed.
// @Tags Version
// @Accept json
// @Produce json
// @Param version body SetVersionRequest true "Version details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /version [put]
func (h *VersionHandler) SetVersion(c *fiber.Ctx) error {
	var req SetVersionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.SetVersion(c.UserContext(), req.LatestVersion, req.UpdateType, req.AppStoreLink); err != nil {
		if errors.Is(err, domain.ErrInvalidVersionInfo) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid version info. latest_version and a valid app_store_link are required, update_type must be optional or force",
			})
		}
		logger.Get().Error("Failed to set version", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Version set successfully",
	})
}

// ResetVersion handles DELETE /version.
// @Summary Remove the version override
// @Description Removes the stored override so the configured payload is served again.
// @Tags Version
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /version [delete]
func (h *VersionHandler) ResetVersion(c *fiber.Ctx) error {
	if err := h.service.ResetVersion(c.UserContext()); err != nil {
		logger.Get().Error("Failed to reset version", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Version override removed",
	})
}
