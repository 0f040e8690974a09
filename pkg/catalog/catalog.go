// Package catalog loads the venue catalog used to seed the venues collection
// and the list of amenities a search can ask for.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"venuehub/pkg/model"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seed []byte

type Catalog struct {
	Amenities []string       `yaml:"amenities"`
	Venues    []*model.Venue `yaml:"venues"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(seed)
}

// Load reads and parses a catalog file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]struct{}, len(c.Venues))
	for i, v := range c.Venues {
		if v == nil || v.ID == "" {
			return fmt.Errorf("venue %d: id is required", i)
		}
		if _, dup := seen[v.ID]; dup {
			return fmt.Errorf("venue %s: duplicate id", v.ID)
		}
		seen[v.ID] = struct{}{}

		if v.Name == "" || v.City == "" {
			return fmt.Errorf("venue %s: name and city are required", v.ID)
		}
		for _, d := range v.Availability {
			if _, err := time.Parse(time.DateOnly, d); err != nil {
				return fmt.Errorf("venue %s: invalid availability date %q", v.ID, d)
			}
		}
		for _, a := range v.Amenities {
			if len(c.Amenities) > 0 && !slices.Contains(c.Amenities, a) {
				return fmt.Errorf("venue %s: unknown amenity %q", v.ID, a)
			}
		}
		for j := range v.Reviews {
			v.Reviews[j].VenueID = v.ID
		}
	}
	return nil
}

func (c *Catalog) Venue(id string) (*model.Venue, bool) {
	for _, v := range c.Venues {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}

func (c *Catalog) IsKnownAmenity(amenity string) bool {
	return slices.Contains(c.Amenities, amenity)
}
