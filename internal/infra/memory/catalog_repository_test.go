package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"maturity-assessment-service/internal/catalog"
	"maturity-assessment-service/internal/domain"
)

func TestCatalogRepositoryCaches(t *testing.T) {
	loader := &countingLoader{CatalogLoader: catalog.NewStaticLoader(catalog.Default())}
	repo := NewCatalogRepository(loader, time.Minute)

	c, err := repo.GetCatalog(context.Background())
	if err != nil {
		t.Fatalf("get catalog: %v", err)
	}
	if c.Version != catalog.DefaultVersion {
		t.Fatalf("unexpected version %q", c.Version)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetCatalog(context.Background()); err != nil {
		t.Fatalf("get catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestCatalogRepositoryReloadsAfterExpiry(t *testing.T) {
	loader := &countingLoader{CatalogLoader: catalog.NewStaticLoader(catalog.Default())}
	repo := NewCatalogRepository(loader, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.clock = func() time.Time { return now }

	_, _ = repo.GetCatalog(context.Background())
	now = now.Add(2 * time.Minute)
	_, _ = repo.GetCatalog(context.Background())

	if loader.calls != 2 {
		t.Fatalf("expected reload after ttl, loader calls %d", loader.calls)
	}
}

func TestCatalogRepositoryDoesNotCacheErrors(t *testing.T) {
	loader := &countingLoader{CatalogLoader: catalog.NewStaticLoader(domain.Catalog{})}
	repo := NewCatalogRepository(loader, 0)

	for i := 0; i < 2; i++ {
		if _, err := repo.GetCatalog(context.Background()); !errors.Is(err, domain.ErrCatalogNotFound) {
			t.Fatalf("expected catalog not found, got %v", err)
		}
	}
	if loader.calls != 2 {
		t.Fatalf("expected every failed call to hit loader, got %d", loader.calls)
	}
}

type countingLoader struct {
	CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx)
}
