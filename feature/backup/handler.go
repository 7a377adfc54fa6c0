package backup

import (
	"blocks-generator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for backups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the backup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/backups")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleExport)
}

// HandleList returns the stored backups.
// @Summary List Backups
// @Tags backups
// @Produce json
// @Success 200 {array} string "Object names, oldest first"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backups [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	names, err := h.service.List(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing backups failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(names)
}

// HandleExport writes a new backup.
// @Summary Export Backup
// @Tags backups
// @Produce json
// @Success 201 {object} backup.Info "Backup"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backups [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	info, err := h.service.Export(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Backup export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}
