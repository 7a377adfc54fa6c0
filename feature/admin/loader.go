package admin

import (
	"blocks-generator/core/generator"
	"blocks-generator/core/world"
	"blocks-generator/feature/command"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the admin feature.
func NewFeature(engine *generator.Engine, mem *world.Memory, players *command.MemoryPlayers, logger *zap.Logger) (*Feature, error) {
	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}
	svc := NewService(engine, mem, players, logger)
	return &Feature{service: svc, handler: NewHandler(svc, validator, logger)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "admin"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
