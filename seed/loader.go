package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	"gopkg.in/yaml.v3"
)

/* Loader reads declarative endpoint definitions from a YAML file and
 * registers the ones the registry does not know yet. Lets a deployment
 * ship with its destinations preconfigured instead of POSTing them one by
 * one after boot.
 */

// File represents the structure of the seed YAML file
type File struct {
	Endpoints []EndpointConfig `yaml:"endpoints"`
}

// EndpointConfig represents a single endpoint in the YAML file
type EndpointConfig struct {
	URL       string            `yaml:"url"`
	IsPrimary bool              `yaml:"is_primary"`
	IsActive  *bool             `yaml:"is_active"` // Optional: default true
	Headers   map[string]string `yaml:"headers"`
}

// Validate checks if the endpoint definition is usable
func (e *EndpointConfig) Validate() error {
	if e.URL == "" {
		return fmt.Errorf("url cannot be empty")
	}
	return nil
}

// Loader holds the loaded endpoint definitions
type Loader struct {
	endpoints []EndpointConfig
}

// NewLoader creates a new seed loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the seed YAML file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing seed YAML: %w", err)
	}

	for _, ec := range file.Endpoints {
		if err := ec.Validate(); err != nil {
			return fmt.Errorf("validating seed endpoint: %w", err)
		}
	}

	l.endpoints = file.Endpoints
	return nil
}

// List returns all loaded endpoint definitions
func (l *Loader) List() []EndpointConfig {
	return l.endpoints
}

/* Apply registers seed endpoints that are not in the registry yet, matched
 * by URL. Existing endpoints are left untouched so operator edits survive
 * restarts. Returns the number of endpoints created.
 */
func (l *Loader) Apply(ctx context.Context, registry endpoint.UseCase) (int, error) {
	existing, err := registry.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing registered endpoints: %w", err)
	}

	known := make(map[string]bool, len(existing))
	for _, e := range existing {
		known[e.URL] = true
	}

	created := 0
	for _, ec := range l.endpoints {
		if known[ec.URL] {
			continue
		}

		e, err := registry.Create(ctx, ec.URL, ec.Headers, ec.IsPrimary)
		if err != nil {
			return created, fmt.Errorf("seeding endpoint %s: %w", ec.URL, err)
		}
		created++

		if ec.IsActive != nil && !*ec.IsActive {
			if _, err := registry.Update(ctx, e.ID, endpoint.Changes{IsActive: ec.IsActive}); err != nil {
				return created, fmt.Errorf("deactivating seeded endpoint %s: %w", ec.URL, err)
			}
		}
	}

	return created, nil
}
