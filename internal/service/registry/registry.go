package registry

import (
	"fmt"
	"os"

	"InsiderPull/internal/domain/models"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads the tracked-entity registry and its price table from a YAML file.
// Entity order in the file is the collection order.
func Load(path string) (*models.Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (*models.Registry, error) {
	var r models.Registry
	if err := defaults.Set(&r); err != nil {
		return nil, fmt.Errorf("registry defaults: %w", err)
	}
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	if err := validator.New().Struct(&r); err != nil {
		return nil, fmt.Errorf("validate registry: %w", err)
	}

	seen := make(map[string]struct{}, len(r.Entities))
	for _, e := range r.Entities {
		if _, dup := seen[e.StockCode]; dup {
			return nil, fmt.Errorf("validate registry: duplicate stock_code %s", e.StockCode)
		}
		seen[e.StockCode] = struct{}{}
	}
	return &r, nil
}
