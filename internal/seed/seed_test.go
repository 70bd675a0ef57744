package seed_test

import (
	"context"
	"testing"

	"github.com/Seirafashion/sui-backend/internal/migrate"
	"github.com/Seirafashion/sui-backend/internal/models"
	"github.com/Seirafashion/sui-backend/internal/repository"
	"github.com/Seirafashion/sui-backend/internal/seed"
	"github.com/Seirafashion/sui-backend/pkg/testutil"

	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	db := testutil.SetupTestSQLite(t)
	ctx := context.Background()
	if err := migrate.MigrateStoreDB(ctx, db, zap.NewNop(), migrate.PortableMigrateOptions()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := repository.New(db)

	res, err := seed.Load(ctx, repo, zap.NewNop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Categories != 5 || res.Products != 6 || res.OrderID == 0 {
		t.Fatalf("unexpected result: %+v", res)
	}

	cats, err := repo.Categories.ListWithProducts(ctx)
	if err != nil {
		t.Fatalf("ListWithProducts: %v", err)
	}
	counts := map[string]int{}
	for _, c := range cats {
		counts[c.Slug] = len(c.Products)
	}
	want := map[string]int{"denim": 0, "dresses": 1, "essentials": 2, "new-arrivals": 1, "tops": 2}
	for slug, n := range want {
		if counts[slug] != n {
			t.Fatalf("category %s: %d products, want %d", slug, counts[slug], n)
		}
	}

	ord, err := repo.Orders.GetByID(ctx, res.OrderID)
	if err != nil || ord == nil {
		t.Fatalf("GetByID: %v %v", ord, err)
	}
	if ord.CustomerName != "Alex Morgan" || len(ord.Items) != 3 {
		t.Fatalf("unexpected sample order: %+v", ord)
	}
	for _, it := range ord.Items {
		if it.Quantity < 1 || it.Quantity > 3 {
			t.Fatalf("quantity out of range: %d", it.Quantity)
		}
		if it.UnitPrice != it.Product.Price {
			t.Fatalf("unit price %v not snapshotted from %v", it.UnitPrice, it.Product.Price)
		}
		if it.Product.ImageURL == "" {
			t.Fatalf("product %q seeded without image", it.Product.Name)
		}
	}
}

func TestResetAndReload(t *testing.T) {
	db := testutil.SetupTestSQLite(t)
	ctx := context.Background()
	log := zap.NewNop()
	repo := repository.New(db)

	for i := 0; i < 2; i++ {
		if err := migrate.Reset(ctx, db, log); err != nil {
			t.Fatalf("Reset: %v", err)
		}
		if err := migrate.MigrateStoreDB(ctx, db, log, migrate.PortableMigrateOptions()); err != nil {
			t.Fatalf("migrate: %v", err)
		}
		if _, err := seed.Load(ctx, repo, log); err != nil {
			t.Fatalf("Load #%d: %v", i, err)
		}
	}

	if n := testutil.CountRows(t, db, &models.Order{}); n != 1 {
		t.Fatalf("expected exactly one order after reseed, got %d", n)
	}
}
