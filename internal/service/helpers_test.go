package service_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/Seirafashion/sui-backend/internal/migrate"
	"github.com/Seirafashion/sui-backend/internal/models"
	"github.com/Seirafashion/sui-backend/internal/repository"
	"github.com/Seirafashion/sui-backend/internal/service"
	"github.com/Seirafashion/sui-backend/pkg/testutil"

	"go.uber.org/zap"
)

type fixture struct {
	repo     *repository.Repository
	tee      models.Product
	vneck    models.Product
	striped  models.Product
	tops     models.Category
	dresses  models.Category
	emptyCat models.Category
}

func setupRepo(t *testing.T) *repository.Repository {
	t.Helper()
	db := testutil.SetupTestSQLite(t)
	if err := migrate.MigrateStoreDB(context.Background(), db, zap.NewNop(), migrate.PortableMigrateOptions()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.New(db)
}

func setupCatalog(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{repo: setupRepo(t)}

	f.tops = models.Category{Name: "Tops", Slug: "tops"}
	f.dresses = models.Category{Name: "Dresses", Slug: "dresses"}
	f.emptyCat = models.Category{Name: "Denim", Slug: "denim"}
	for _, c := range []*models.Category{&f.tops, &f.dresses, &f.emptyCat} {
		if err := f.repo.Categories.Create(ctx, c); err != nil {
			t.Fatalf("create category: %v", err)
		}
	}

	f.tee = models.Product{Name: "Classic Crewneck Tee", Price: 29.99, CategoryID: f.tops.ID}
	f.vneck = models.Product{Name: "Essential V-Neck", Price: 24.50, CategoryID: f.tops.ID}
	f.striped = models.Product{Name: "Striped Long Sleeve", Price: 35.00, CategoryID: f.dresses.ID}
	for _, p := range []*models.Product{&f.tee, &f.vneck, &f.striped} {
		if err := f.repo.Products.Create(ctx, p); err != nil {
			t.Fatalf("create product: %v", err)
		}
	}
	return f
}

func idOf(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func validCustomer() service.Customer {
	return service.Customer{
		Name:     "Ada",
		Email:    "ada@example.com",
		Address1: "1 Loop St",
		City:     "Springfield",
	}
}

// MockCatalogCache
type MockCatalogCache struct {
	GetCategoriesFunc func(ctx context.Context) ([]models.Category, bool, error)
	SetCategoriesFunc func(ctx context.Context, list []models.Category, ttl time.Duration) error
	GetProductsFunc   func(ctx context.Context, f service.ProductFilter) ([]models.Product, bool, error)
	SetProductsFunc   func(ctx context.Context, f service.ProductFilter, list []models.Product, ttl time.Duration) error
	GetProductFunc    func(ctx context.Context, id uint) (*models.Product, bool, error)
	SetProductFunc    func(ctx context.Context, p *models.Product, ttl time.Duration) error
}

func (m *MockCatalogCache) GetCategories(ctx context.Context) ([]models.Category, bool, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx)
	}
	return nil, false, nil
}

func (m *MockCatalogCache) SetCategories(ctx context.Context, list []models.Category, ttl time.Duration) error {
	if m.SetCategoriesFunc != nil {
		return m.SetCategoriesFunc(ctx, list, ttl)
	}
	return nil
}

func (m *MockCatalogCache) GetProducts(ctx context.Context, f service.ProductFilter) ([]models.Product, bool, error) {
	if m.GetProductsFunc != nil {
		return m.GetProductsFunc(ctx, f)
	}
	return nil, false, nil
}

func (m *MockCatalogCache) SetProducts(ctx context.Context, f service.ProductFilter, list []models.Product, ttl time.Duration) error {
	if m.SetProductsFunc != nil {
		return m.SetProductsFunc(ctx, f, list, ttl)
	}
	return nil
}

func (m *MockCatalogCache) GetProduct(ctx context.Context, id uint) (*models.Product, bool, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, id)
	}
	return nil, false, nil
}

func (m *MockCatalogCache) SetProduct(ctx context.Context, p *models.Product, ttl time.Duration) error {
	if m.SetProductFunc != nil {
		return m.SetProductFunc(ctx, p, ttl)
	}
	return nil
}

// MockEventBus
type MockEventBus struct {
	PublishOrderCreatedFunc func(ctx context.Context, e service.OrderCreatedEvent) error
}

func (m *MockEventBus) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	if m.PublishOrderCreatedFunc != nil {
		return m.PublishOrderCreatedFunc(ctx, e)
	}
	return nil
}
