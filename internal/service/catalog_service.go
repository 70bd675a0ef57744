package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Seirafashion/sui-backend/internal/models"
	"github.com/Seirafashion/sui-backend/internal/repository"

	"go.uber.org/zap"
)

type catalogService struct {
	uow   UnitOfWork
	cache CatalogCache
	ttl   time.Duration
	log   *zap.Logger
}

// NewCatalogService builds the catalog reader. cache may be nil.
func NewCatalogService(uow UnitOfWork, cache CatalogCache, ttl time.Duration, log *zap.Logger) CatalogService {
	return &catalogService{
		uow:   uow,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

// normalizeFilter lowercases both fields. Whitespace is significant, only "" means no filter.
func normalizeFilter(f ProductFilter) ProductFilter {
	return ProductFilter{
		CategorySlug: strings.ToLower(f.CategorySlug),
		Search:       strings.ToLower(f.Search),
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	if s.cache != nil {
		list, ok, err := s.cache.GetCategories(ctx)
		if err != nil {
			s.log.Warn("catalog cache read failed", zap.String("key", "categories"), zap.Error(err))
		} else if ok {
			return list, nil
		}
	}

	var list []models.Category
	err := s.uow.WithTx(ctx, func(tx *repository.Repository) error {
		var err error
		list, err = tx.Categories.ListWithProducts(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetCategories(ctx, list, s.ttl); err != nil {
			s.log.Warn("catalog cache write failed", zap.String("key", "categories"), zap.Error(err))
		}
	}
	return list, nil
}

func (s *catalogService) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	f = normalizeFilter(f)

	if s.cache != nil {
		list, ok, err := s.cache.GetProducts(ctx, f)
		if err != nil {
			s.log.Warn("catalog cache read failed", zap.String("key", "products"), zap.Error(err))
		} else if ok {
			return list, nil
		}
	}

	var list []models.Product
	err := s.uow.WithTx(ctx, func(tx *repository.Repository) error {
		var err error
		list, err = tx.Products.List(ctx, repository.ProductListFilter{
			CategorySlug: f.CategorySlug,
			Query:        f.Search,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, f, list, s.ttl); err != nil {
			s.log.Warn("catalog cache write failed", zap.String("key", "products"), zap.Error(err))
		}
	}
	return list, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	if s.cache != nil {
		p, ok, err := s.cache.GetProduct(ctx, id)
		if err != nil {
			s.log.Warn("catalog cache read failed", zap.Uint("product_id", id), zap.Error(err))
		} else if ok {
			return p, nil
		}
	}

	var p *models.Product
	err := s.uow.WithTx(ctx, func(tx *repository.Repository) error {
		var err error
		p, err = tx.Products.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetProduct(ctx, p, s.ttl); err != nil {
			s.log.Warn("catalog cache write failed", zap.Uint("product_id", id), zap.Error(err))
		}
	}
	return p, nil
}
