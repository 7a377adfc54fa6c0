package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is a module that contributes routes to the application.
type Feature interface {
	// Name returns the unique name of the feature.
	Name() string
	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool
	// Load registers the feature's routes on app.
	Load(app fiber.Router) error
}

// Manager keeps the registered features in registration order.
type Manager struct {
	features []Feature
	logger   *zap.Logger
}

// NewManager creates an empty manager.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// Register adds a feature. Registering a name twice replaces the earlier one.
func (m *Manager) Register(f Feature) {
	for i, existing := range m.features {
		if existing.Name() == f.Name() {
			m.features[i] = f
			return
		}
	}
	m.features = append(m.features, f)
}

// Features returns the registered features.
func (m *Manager) Features() []Feature {
	return m.features
}

// LoadAll loads every enabled feature, stopping at the first failure.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.logger.Info("Feature disabled", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
		m.logger.Info("Feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}
