// Package content holds the static reference data served by the API:
// the service catalogue and the company profile.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/VETechnologiesCo/VPCO/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var embedded []byte

// Site is the parsed content document.
type Site struct {
	Services []model.ServiceOffering `yaml:"services"`
	About    model.CompanyInfo       `yaml:"about"`
}

// Default returns the content compiled into the binary.
func Default() (*Site, error) {
	return Parse(embedded)
}

// Load reads a content document from path.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("content: parse: %w", err)
	}
	if err := site.validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *Site) validate() error {
	if len(s.Services) == 0 {
		return errors.New("content: at least one service is required")
	}
	seen := make(map[int]bool, len(s.Services))
	for _, svc := range s.Services {
		if svc.ID <= 0 {
			return fmt.Errorf("content: service %q has non-positive id %d", svc.Name, svc.ID)
		}
		if svc.Name == "" {
			return fmt.Errorf("content: service %d has no name", svc.ID)
		}
		if seen[svc.ID] {
			return fmt.Errorf("content: duplicate service id %d", svc.ID)
		}
		seen[svc.ID] = true
	}
	if s.About.Company == "" {
		return errors.New("content: about.company is required")
	}
	return nil
}
