package backup

import (
	"blocks-generator/core/generator"
	"blocks-generator/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the backup feature. It is disabled without a storage
// client or a durable store.
func NewFeature(store *generator.Store, client storage.Client, cfg storage.Config, logger *zap.Logger) *Feature {
	svc := NewService(store, client, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "backup"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil && f.service.store != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
