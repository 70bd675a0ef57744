package dto

import "github.com/Seirafashion/sui-backend/internal/models"

type CategoryRef struct {
	ID   uint   `json:"id" example:"3"`
	Name string `json:"name" example:"Tops"`
	Slug string `json:"slug" example:"tops"`
}

type Category struct {
	ID           uint   `json:"id" example:"3"`
	Name         string `json:"name" example:"Tops"`
	Slug         string `json:"slug" example:"tops"`
	ProductCount int    `json:"product_count" example:"2"`
}

type Product struct {
	ID          uint        `json:"id" example:"1"`
	Name        string      `json:"name" example:"Classic Crewneck Tee"`
	Price       float64     `json:"price" example:"29.99"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
	Category    CategoryRef `json:"category"`
}

// NewCategory expects Products to be loaded.
func NewCategory(c models.Category) Category {
	return Category{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		ProductCount: len(c.Products),
	}
}

func NewCategories(list []models.Category) []Category {
	out := make([]Category, 0, len(list))
	for _, c := range list {
		out = append(out, NewCategory(c))
	}
	return out
}

// NewProduct expects Category to be loaded.
func NewProduct(p models.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Category: CategoryRef{
			ID:   p.Category.ID,
			Name: p.Category.Name,
			Slug: p.Category.Slug,
		},
	}
}

func NewProducts(list []models.Product) []Product {
	out := make([]Product, 0, len(list))
	for _, p := range list {
		out = append(out, NewProduct(p))
	}
	return out
}
