package service

import (
	"context"

	"github.com/Seirafashion/sui-backend/internal/models"
)

type ProductFilter struct {
	CategorySlug string
	Search       string
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
}
