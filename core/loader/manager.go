package loader

import "github.com/gofiber/fiber/v2"

// Feature is implemented by every application feature that exposes routes.
type Feature interface {
	// Name returns the feature name used in logs.
	Name() string
	// Load registers the feature's routes on the app.
	Load(app fiber.Router) error
}

// Manager collects features and loads them into the Fiber app.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to the manager.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every registered feature. The first failure aborts loading.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if err := f.Load(app); err != nil {
			return err
		}
	}
	return nil
}
