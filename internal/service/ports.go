package service

import (
	"context"
	"time"

	"github.com/Seirafashion/sui-backend/internal/models"
	"github.com/Seirafashion/sui-backend/internal/repository"
)

// UnitOfWork opens one transactional scope over the repository set.
// *repository.Repository satisfies it.
type UnitOfWork interface {
	WithTx(ctx context.Context, fn func(tx *repository.Repository) error) error
}

// CatalogCache is a read-through cache for catalog queries. A miss returns ok=false.
type CatalogCache interface {
	GetCategories(ctx context.Context) ([]models.Category, bool, error)
	SetCategories(ctx context.Context, list []models.Category, ttl time.Duration) error
	GetProducts(ctx context.Context, f ProductFilter) ([]models.Product, bool, error)
	SetProducts(ctx context.Context, f ProductFilter, list []models.Product, ttl time.Duration) error
	GetProduct(ctx context.Context, id uint) (*models.Product, bool, error)
	SetProduct(ctx context.Context, p *models.Product, ttl time.Duration) error
}

type OrderItemEvent struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderCreatedEvent struct {
	OrderID       uint             `json:"order_id"`
	CustomerEmail string           `json:"customer_email"`
	Status        string           `json:"status"`
	Items         []OrderItemEvent `json:"items"`
	Total         float64          `json:"total"`
	CreatedAt     time.Time        `json:"created_at"`
}

type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
}
