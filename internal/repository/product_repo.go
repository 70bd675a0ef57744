package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Seirafashion/sui-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductListFilter struct {
	CategorySlug string // по slug категории, без учёта регистра
	Query        string // подстрока в name, без учёта регистра
}

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	// GetByID loads the product with its Category. Returns nil, nil when absent.
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	// List loads matching products with their Category, ordered by name.
	List(ctx context.Context, f ProductListFilter) ([]models.Product, error)
	BatchGetByIDs(ctx context.Context, ids []uint) ([]models.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Joins("Category").First(&p, "products.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, f ProductListFilter) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{}).Joins("Category")

	if s := f.CategorySlug; s != "" {
		q = q.Where(`lower("Category"."slug") = ?`, strings.ToLower(s))
	}

	if s := f.Query; s != "" {
		q = q.Where("lower(products.name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	list := []models.Product{}
	if err := q.Order("products.name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepo) BatchGetByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}

	var list []models.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}
