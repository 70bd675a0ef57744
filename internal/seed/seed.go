package seed

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/Seirafashion/sui-backend/internal/models"
	"github.com/Seirafashion/sui-backend/internal/repository"

	"go.uber.org/zap"
)

var Categories = []string{
	"New Arrivals",
	"Dresses",
	"Tops",
	"Denim",
	"Essentials",
}

type ProductSeed struct {
	Name        string
	Price       float64
	Description string
	ImageURL    string
	Category    string
}

const imageBase = "https://lh3.googleusercontent.com/aida-public/"

var Products = []ProductSeed{
	{
		Name:        "Classic Crewneck Tee",
		Price:       29.99,
		Description: "Soft cotton tee with a relaxed silhouette for everyday wear.",
		ImageURL:    imageBase + "AB6AXuDouwwcGryi6Ng2NOTr52ufBBUVhzWwv5GkDdeV_EH9__KQKTfiZjKA2r2AGY0JPaHujYXe6sxNZmDsWKOp47cUnaSAjuESC2hH1eLM3Pfu-tpO1on_SP5C51cQlAOCaEESEgL4Dmbk646lTB_uBT_OOOuzNWoirz-1UZvNNRSML5iYcpdAkVrXEYDYIWCBW9Scm9pofIxALJ1p6MCL3RlD0MTMItSCYTHvnu3tNLlm_j5H7jqwsFbGR9XQyA8SKiIwMsWmHE4d0u2p",
		Category:    "Tops",
	},
	{
		Name:        "Essential V-Neck",
		Price:       24.50,
		Description: "Lightweight v-neck that layers perfectly under blazers or cardigans.",
		ImageURL:    imageBase + "AB6AXuDRchNKvGweusLod13nxnNizmAM0CKVPIMljkaECqK2xA4GxlAJFcMfZnIH4V9ZzMfkkLZpDnDwyg7soGb-cijqUxP305Yc_zO1QG-bBkkIwRcC1GMGJfHg4W83te7-WBd4B2RzpOmDmmDaW0hyacmePGQwZ7eZyRLCg0pXiTlsvdlOZgAH6vqw0erROWZvl8Ytpej0lHsxMA3rG7o71JH1HBtka8QRCIg0e9t3Y40ABhdDoNsPwHzABZ5CQ1VA6hpV9969Kqgfsiw3",
		Category:    "Tops",
	},
	{
		Name:        "Striped Long Sleeve",
		Price:       35.00,
		Description: "Breton-inspired stripes on breathable organic cotton.",
		ImageURL:    imageBase + "AB6AXuBhiyIVMK6BcYKWPCRalf41PwD2gET3c2RwTPmpepRsSamZ5i0CH-mmpoFVohE_asCUxyhY-ofT9cBJ8cchj9EpuE47TUVzUF_kL9bIoLmlh-xQXElyO2yKm6kn4sYMZww6bK4d6NNl4O9T3_6b_GO6467r7iShCD0Nr07fMk9ppu3WiiKqGyKSlT6XTvwa5MPj9uwiamdPBvFgaP__R0qFPsGJ3Scivc2rT8htktrUTaKagVJiw3rVB4m5K2pKXOj3Yf0WcIEAIEvY",
		Category:    "Dresses",
	},
	{
		Name:        "Heather Grey Basic Tee",
		Price:       19.99,
		Description: "Premium jersey knit with a tailored unisex fit.",
		ImageURL:    imageBase + "AB6AXuBV-57Jc_tljg1V3GWq9_6_ThATY28MnLV0O5ELHEmyh10ofcMJhi3287Bv5KMfZUKASp1WGXtXhSKnKV5WfZ-lXQYPD64k0H2jBBijg0AshVlYSFsdUTGBk3mk0cgbkCqKaZuyRqEFNqbbO1RO6EQkLxSnQYCpzCcZGaMG1NrEFYYNKFRp0_RGM_7pOcsX_DQ1GxTV5wF8hqSYd2MqxOD3xEyaKHShjtn4gK74Jw9F8dfBxTJhUgqioVVRQfL6sunDV28HbhgWNia4",
		Category:    "Essentials",
	},
	{
		Name:        "Vintage Graphic Tee",
		Price:       42.00,
		Description: "Limited-edition artwork printed with water-based inks.",
		ImageURL:    imageBase + "AB6AXuDzjGJRgvwREQjSMQ66YFbnP1XVewQmhZOVveCdMVMEO9-gxkGcgitvnntNe40x2yz8Uh-OKcKc5roSYYtGQN7OoVDTWZQJPd9qQFj7VEfLOTvJe_yCFEno_Egjbvhwls4PuKS2Qk1iV19f0HqvQHaVdseyDhIO0T57HE0OWTCD4CYUW_E5B__IsDoAPWh8wg-yhjnJ2yeypPa4ANuVj87D89Dd1CpS8SCIp9iHaJr51nMq6Rv8yo8cbpv4S0t_xaEa5tEzyyh0k86C",
		Category:    "New Arrivals",
	},
	{
		Name:        "Slub Cotton Pocket Tee",
		Price:       32.99,
		Description: "Texture-rich cotton with a single utility pocket.",
		ImageURL:    imageBase + "AB6AXuBkVdj8BHwwxW1m5ahPAdm1yaRvswlGGarFDTx9sZsvGvMNEBdpJuz_33qUq64XLA6nQdxNM3UNW3upTeokt5Z_6vYAMgTDvzWZinSClLi9_uWIjPqCxoyTk25qkqEaMvkAl0En-Px4DrCovMFNfwfJh2MU3J5-xYGM0cADha9TpyjQX4yRgTXmIFTzvhDkkw7FYk_qZi7pn-o0htPnufzCb3IMDGSgUE_0WObt0PGHS22lOFzqIjTR2kK5EyGYaoVWnJVX7R_sy0PH",
		Category:    "Essentials",
	},
}

type Result struct {
	Categories int
	Products   int
	OrderID    uint
}

// Load inserts the demo catalog and one sample order in a single transaction.
// The schema must already exist and be empty.
func Load(ctx context.Context, repo *repository.Repository, log *zap.Logger) (Result, error) {
	var res Result

	err := repo.WithTx(ctx, func(tx *repository.Repository) error {
		byName := make(map[string]uint, len(Categories))
		for _, name := range Categories {
			c := &models.Category{Name: name, Slug: models.Slugify(name)}
			if err := tx.Categories.Create(ctx, c); err != nil {
				return fmt.Errorf("create category %q: %w", name, err)
			}
			byName[name] = c.ID
		}
		res.Categories = len(byName)

		created := make([]models.Product, 0, len(Products))
		for _, ps := range Products {
			catID, ok := byName[ps.Category]
			if !ok {
				return fmt.Errorf("product %q: unknown category %q", ps.Name, ps.Category)
			}
			p := &models.Product{
				Name:        ps.Name,
				Price:       ps.Price,
				Description: ps.Description,
				ImageURL:    ps.ImageURL,
				CategoryID:  catID,
			}
			if err := tx.Products.Create(ctx, p); err != nil {
				return fmt.Errorf("create product %q: %w", ps.Name, err)
			}
			created = append(created, *p)
		}
		res.Products = len(created)

		order := &models.Order{
			CustomerName:    "Alex Morgan",
			CustomerEmail:   "alex.morgan@example.com",
			ShippingAddress: "123 Market Street, San Francisco, CA",
			Status:          models.OrderStatusProcessing,
		}
		if err := tx.Orders.Create(ctx, order); err != nil {
			return fmt.Errorf("create sample order: %w", err)
		}
		res.OrderID = order.ID

		items := make([]models.OrderItem, 0, 3)
		for _, p := range created[:min(3, len(created))] {
			items = append(items, models.OrderItem{
				OrderID:   order.ID,
				ProductID: p.ID,
				Quantity:  rand.IntN(3) + 1,
				UnitPrice: p.Price,
			})
		}
		return tx.OrderItems.BulkCreate(ctx, items)
	})
	if err != nil {
		return Result{}, err
	}

	log.Info("Database seeded with demo data",
		zap.Int("categories", res.Categories),
		zap.Int("products", res.Products),
		zap.Uint("sample_order_id", res.OrderID),
	)
	return res, nil
}
