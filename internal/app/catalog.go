package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"valk_landing/internal/domain"
)

// LoadCatalog builds the page catalog once at startup. With a nil repo, or an
// empty one, the built-in content is used. Contact details always come from
// builtin.
func LoadCatalog(ctx context.Context, repo domain.CatalogRepository, builtin domain.Catalog) (domain.Catalog, error) {
	if repo == nil {
		return builtin, nil
	}
	c, err := repo.LoadCatalog(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	if len(c.Rooms) == 0 && len(c.Amenities) == 0 && len(c.Features) == 0 {
		log.Warn().Msg("catalog tables are empty, using built-in content")
		return builtin, nil
	}
	c.Contact = builtin.Contact
	return c, nil
}
