package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Seirafashion/sui-backend/internal/models"
	"github.com/Seirafashion/sui-backend/internal/service"

	"go.uber.org/zap"
)

func productNames(list []models.Product) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Name
	}
	return out
}

func TestListCategories_WithProducts(t *testing.T) {
	f := setupCatalog(t)
	svc := service.NewCatalogService(f.repo, nil, time.Minute, zap.NewNop())

	list, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(list))
	}
	// по имени: Denim, Dresses, Tops
	if list[0].Name != "Denim" || list[1].Name != "Dresses" || list[2].Name != "Tops" {
		t.Fatalf("unexpected order: %s, %s, %s", list[0].Name, list[1].Name, list[2].Name)
	}
	if len(list[0].Products) != 0 || len(list[1].Products) != 1 || len(list[2].Products) != 2 {
		t.Fatalf("unexpected product counts")
	}
}

func TestListProducts_Filters(t *testing.T) {
	f := setupCatalog(t)
	svc := service.NewCatalogService(f.repo, nil, time.Minute, zap.NewNop())
	ctx := context.Background()

	all, err := svc.ListProducts(ctx, service.ProductFilter{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	names := productNames(all)
	if len(names) != 3 || names[0] != "Classic Crewneck Tee" || names[1] != "Essential V-Neck" || names[2] != "Striped Long Sleeve" {
		t.Fatalf("unexpected list: %v", names)
	}
	if all[0].Category.Slug != "tops" {
		t.Fatalf("category not loaded: %+v", all[0].Category)
	}

	dresses, err := svc.ListProducts(ctx, service.ProductFilter{CategorySlug: "DRESSES"})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(dresses) != 1 || dresses[0].ID != f.striped.ID {
		t.Fatalf("unexpected dresses: %v", productNames(dresses))
	}

	tees, err := svc.ListProducts(ctx, service.ProductFilter{Search: "TEE"})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(tees) != 1 || tees[0].ID != f.tee.ID {
		t.Fatalf("unexpected search result: %v", productNames(tees))
	}

	both, err := svc.ListProducts(ctx, service.ProductFilter{CategorySlug: "tops", Search: "neck"})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(both) != 2 {
		t.Fatalf("expected 2 tops matching neck, got %v", productNames(both))
	}

	all, err = svc.ListProducts(ctx, service.ProductFilter{CategorySlug: "", Search: ""})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("empty filters should be ignored, got %v", productNames(all))
	}

	// whitespace is applied verbatim
	for _, flt := range []service.ProductFilter{
		{CategorySlug: "   "},
		{CategorySlug: " tops "},
		{Search: " tee "},
		{CategorySlug: "tops", Search: " tee "},
	} {
		got, err := svc.ListProducts(ctx, flt)
		if err != nil {
			t.Fatalf("ListProducts(%+v): %v", flt, err)
		}
		if len(got) != 0 {
			t.Fatalf("filter %+v should match nothing, got %v", flt, productNames(got))
		}
	}

	spaced, err := svc.ListProducts(ctx, service.ProductFilter{Search: "crewneck tee"})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(spaced) != 1 || spaced[0].ID != f.tee.ID {
		t.Fatalf("inner whitespace should match, got %v", productNames(spaced))
	}

	none, err := svc.ListProducts(ctx, service.ProductFilter{CategorySlug: "unknown"})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", none)
	}
}

func TestCatalog_EmptyStore(t *testing.T) {
	repo := setupRepo(t)
	svc := service.NewCatalogService(repo, nil, time.Minute, zap.NewNop())
	ctx := context.Background()

	cats, err := svc.ListCategories(ctx)
	if err != nil || len(cats) != 0 {
		t.Fatalf("ListCategories: %v %v", cats, err)
	}
	prods, err := svc.ListProducts(ctx, service.ProductFilter{})
	if err != nil || len(prods) != 0 {
		t.Fatalf("ListProducts: %v %v", prods, err)
	}
}

func TestGetProduct(t *testing.T) {
	f := setupCatalog(t)
	svc := service.NewCatalogService(f.repo, nil, time.Minute, zap.NewNop())
	ctx := context.Background()

	p, err := svc.GetProduct(ctx, f.striped.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if p.Name != "Striped Long Sleeve" || p.Category.Name != "Dresses" {
		t.Fatalf("unexpected product: %+v", p)
	}

	if _, err := svc.GetProduct(ctx, 9999); !errors.Is(err, service.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestGetProduct_CacheHitSkipsStore(t *testing.T) {
	repo := setupRepo(t)
	cached := &models.Product{ID: 7, Name: "Cached Tee"}
	cache := &MockCatalogCache{
		GetProductFunc: func(ctx context.Context, id uint) (*models.Product, bool, error) {
			if id == 7 {
				return cached, true, nil
			}
			return nil, false, nil
		},
	}
	svc := service.NewCatalogService(repo, cache, time.Minute, zap.NewNop())

	p, err := svc.GetProduct(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if p != cached {
		t.Fatalf("expected cached product, got %+v", p)
	}
}

func TestListProducts_CacheMissFillsCache(t *testing.T) {
	f := setupCatalog(t)

	var (
		setKey service.ProductFilter
		setTTL time.Duration
		setLen int
	)
	cache := &MockCatalogCache{
		SetProductsFunc: func(ctx context.Context, flt service.ProductFilter, list []models.Product, ttl time.Duration) error {
			setKey, setTTL, setLen = flt, ttl, len(list)
			return nil
		},
	}
	svc := service.NewCatalogService(f.repo, cache, 30*time.Second, zap.NewNop())

	if _, err := svc.ListProducts(context.Background(), service.ProductFilter{CategorySlug: "Tops"}); err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if setKey.CategorySlug != "tops" || setKey.Search != "" {
		t.Fatalf("filter not normalized: %+v", setKey)
	}
	if setTTL != 30*time.Second || setLen != 2 {
		t.Fatalf("unexpected cache write: ttl=%v len=%d", setTTL, setLen)
	}
}

func TestListCategories_CacheErrorFallsThrough(t *testing.T) {
	f := setupCatalog(t)
	cache := &MockCatalogCache{
		GetCategoriesFunc: func(ctx context.Context) ([]models.Category, bool, error) {
			return nil, false, errors.New("connection refused")
		},
		SetCategoriesFunc: func(ctx context.Context, list []models.Category, ttl time.Duration) error {
			return errors.New("connection refused")
		},
	}
	svc := service.NewCatalogService(f.repo, cache, time.Minute, zap.NewNop())

	list, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected store result, got %d categories", len(list))
	}
}
