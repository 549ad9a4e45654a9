package app

import (
	"context"
	"fmt"

	"valk_landing/internal/domain"
)

// SeedJob writes one catalog entry.
type SeedJob struct {
	Kind     string // room|amenity|feature
	Position int
	Name     string
	Run      func(ctx context.Context) error
}

type CatalogSeeder struct {
	repo domain.CatalogRepository
}

func NewCatalogSeeder(r domain.CatalogRepository) *CatalogSeeder {
	return &CatalogSeeder{repo: r}
}

// Jobs returns one upsert per catalog entry. Entries are keyed by kind and
// position, so rerunning the seeder is idempotent.
func (s *CatalogSeeder) Jobs(c domain.Catalog) []SeedJob {
	jobs := make([]SeedJob, 0, len(c.Rooms)+len(c.Amenities)+len(c.Features))
	for i, r := range c.Rooms {
		i, r := i, r
		jobs = append(jobs, SeedJob{Kind: "room", Position: i, Name: r.Name, Run: func(ctx context.Context) error {
			if err := s.repo.UpsertRoom(ctx, i, r); err != nil {
				return fmt.Errorf("upsert room %q: %w", r.Name, err)
			}
			return nil
		}})
	}
	for i, a := range c.Amenities {
		i, a := i, a
		jobs = append(jobs, SeedJob{Kind: "amenity", Position: i, Name: a.Name, Run: func(ctx context.Context) error {
			if err := s.repo.UpsertAmenity(ctx, i, a); err != nil {
				return fmt.Errorf("upsert amenity %q: %w", a.Name, err)
			}
			return nil
		}})
	}
	for i, f := range c.Features {
		i, f := i, f
		jobs = append(jobs, SeedJob{Kind: "feature", Position: i, Name: f.Title, Run: func(ctx context.Context) error {
			if err := s.repo.UpsertFeature(ctx, i, f); err != nil {
				return fmt.Errorf("upsert feature %q: %w", f.Title, err)
			}
			return nil
		}})
	}
	return jobs
}
