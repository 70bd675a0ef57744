package models

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
)

type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:120;not null;uniqueIndex;check:chk_categories_name_not_empty,name <> ''"`
	Slug string `gorm:"size:120;not null;uniqueIndex"`

	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"` // каскад на товары
}

func (Category) TableName() string { return "categories" }

// Slugify derives the URL identifier of a display name.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:200;not null;index"`
	Price       float64 `gorm:"not null;check:chk_products_price_non_negative,price >= 0"`
	Description string  `gorm:"type:text;not null;default:''"`
	ImageURL    string  `gorm:"column:image_url;type:text;not null;default:''"`
	CategoryID  uint    `gorm:"not null;index"`

	Category Category
}

func (Product) TableName() string { return "products" }

type Order struct {
	ID              uint        `gorm:"primaryKey"`
	CustomerName    string      `gorm:"size:200;not null"`
	CustomerEmail   string      `gorm:"size:200;not null"`
	ShippingAddress string      `gorm:"type:text;not null"`
	Status          OrderStatus `gorm:"size:50;not null;default:'processing'"`

	CreatedAt time.Time `gorm:"not null;index;<-:create"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // каскад на позиции
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null;index"`
	Quantity  int     `gorm:"not null;check:chk_order_items_quantity_gt_zero,quantity > 0"`
	UnitPrice float64 `gorm:"not null;check:chk_order_items_unit_price_non_negative,unit_price >= 0"`

	Product Product `gorm:"constraint:OnDelete:CASCADE"`
}

func (OrderItem) TableName() string { return "order_items" }
