package mongo

import (
	"context"
	"fmt"
	"time"

	"venuehub/internal/venues/repository"
	"venuehub/pkg/catalog"
	"venuehub/pkg/logger"
)

// SeedCatalog upserts every catalog venue. Creation times are spaced one
// millisecond apart from base so the stored order matches the catalog order.
// Venues already present keep their creation time.
func SeedCatalog(ctx context.Context, repo repository.VenueRepository, c *catalog.Catalog, base time.Time, log *logger.Logger) (int, error) {
	base = base.UTC().Truncate(time.Millisecond)

	for i, v := range c.Venues {
		v.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		if err := repo.Upsert(ctx, v); err != nil {
			return i, fmt.Errorf("failed to seed venue %s: %w", v.ID, err)
		}
		log.Debug("Seeded venue", "venue_id", v.ID)
	}

	log.Info("Venue catalog seeded", "venues", len(c.Venues), "amenities", len(c.Amenities))
	return len(c.Venues), nil
}
