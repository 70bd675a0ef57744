package repository

import (
	"context"

	"github.com/Seirafashion/sui-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *models.Category) error
	// ListWithProducts returns categories ordered by name with Products loaded.
	ListWithProducts(ctx context.Context) ([]models.Category, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) CategoryRepo { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *categoryRepo) ListWithProducts(ctx context.Context) ([]models.Category, error) {
	list := []models.Category{}
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("products.name ASC") }).
		Order("categories.name ASC").
		Find(&list).Error
	return list, err
}
