package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"valk_landing/internal/app"
	"valk_landing/internal/content"
	"valk_landing/internal/domain"
)

type fakeRepo struct {
	mu   sync.Mutex
	cat  domain.Catalog
	err  error
	puts []string
}

func (f *fakeRepo) UpsertRoom(ctx context.Context, pos int, r domain.RoomOffering) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, "room:"+r.Name)
	return f.err
}
func (f *fakeRepo) UpsertAmenity(ctx context.Context, pos int, a domain.AmenityEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, "amenity:"+a.Name)
	return f.err
}
func (f *fakeRepo) UpsertFeature(ctx context.Context, pos int, ft domain.FeatureHighlight) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, "feature:"+ft.Title)
	return f.err
}
func (f *fakeRepo) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	return f.cat, f.err
}

func TestLoadCatalog_NilRepoUsesBuiltin(t *testing.T) {
	c, err := app.LoadCatalog(context.Background(), nil, content.Catalog())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(c.Rooms) != 4 || len(c.Amenities) != 6 || len(c.Features) != 5 {
		t.Fatalf("unexpected builtin sizes: %d/%d/%d", len(c.Rooms), len(c.Amenities), len(c.Features))
	}
}

func TestLoadCatalog_FromRepoKeepsContact(t *testing.T) {
	repo := &fakeRepo{cat: domain.Catalog{
		Rooms: []domain.RoomOffering{{Name: "Attic Room", NightlyPrice: "€79"}},
	}}
	c, err := app.LoadCatalog(context.Background(), repo, content.Catalog())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(c.Rooms) != 1 || c.Rooms[0].Name != "Attic Room" {
		t.Fatalf("rooms not from repo: %+v", c.Rooms)
	}
	if len(c.Contact.Address) == 0 {
		t.Fatalf("contact details missing")
	}
}

func TestLoadCatalog_EmptyRepoFallsBack(t *testing.T) {
	c, err := app.LoadCatalog(context.Background(), &fakeRepo{}, content.Catalog())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(c.Rooms) != 4 {
		t.Fatalf("expected builtin rooms, got %d", len(c.Rooms))
	}
}

func TestLoadCatalog_RepoError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := app.LoadCatalog(context.Background(), &fakeRepo{err: boom}, content.Catalog()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestSeederJobs(t *testing.T) {
	repo := &fakeRepo{}
	jobs := app.NewCatalogSeeder(repo).Jobs(content.Catalog())
	if len(jobs) != 4+6+5 {
		t.Fatalf("jobs: %d", len(jobs))
	}
	for _, j := range jobs {
		if err := j.Run(context.Background()); err != nil {
			t.Fatalf("%s %d: %v", j.Kind, j.Position, err)
		}
	}
	if repo.puts[0] != "room:Standard Room" || repo.puts[len(repo.puts)-1] != "feature:Rooftop Bar" {
		t.Fatalf("unexpected order: %v", repo.puts)
	}
}

func TestSeederJobs_WrapsError(t *testing.T) {
	boom := errors.New("boom")
	jobs := app.NewCatalogSeeder(&fakeRepo{err: boom}).Jobs(content.Catalog())
	if err := jobs[0].Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
