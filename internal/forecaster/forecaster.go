// Package forecaster provides the built-in reference models that conform to
// the evaluation engine's model contract. Models register under a name; the
// CLI and the HTTP service look them up by that name.
package forecaster

import (
	"context"
	"fmt"
	"sort"

	"github.com/rollcv/rollcv/internal/crossval"
)

// Forecaster is a named forecasting model conforming to the engine contract.
type Forecaster interface {
	// Name returns the registry name.
	Name() string
	// Forecast returns exactly input.Horizon point forecasts.
	Forecast(ctx context.Context, input crossval.Input) ([]float64, error)
}

var registry = make(map[string]Forecaster)

// Register adds a forecaster to the registry.
func Register(f Forecaster) {
	registry[f.Name()] = f
}

// Get returns a forecaster by name.
func Get(name string) (Forecaster, error) {
	if f, ok := registry[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown forecaster: %s", name)
}

// List returns the registered forecaster names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Model adapts a forecaster to the engine's model function type.
func Model(f Forecaster) crossval.Model {
	return f.Forecast
}
