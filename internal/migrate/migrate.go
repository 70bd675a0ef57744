package migrate

import (
	"context"

	"github.com/Seirafashion/sui-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions bool // pg_trgm
	CreateIndexes    bool // trigram и функциональные индексы
	CreateFKsViaSQL  bool // FK через SQL (поверх GORM-constraint)
}

// DefaultMigrateOptions enables the Postgres-only extras.
func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions: true,
		CreateIndexes:    true,
		CreateFKsViaSQL:  true,
	}
}

// PortableMigrateOptions runs AutoMigrate only, for SQLite.
func PortableMigrateOptions() MigrateOptions {
	return MigrateOptions{}
}

func MigrateStoreDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	db = db.WithContext(ctx)
	log.Info("Начало миграции базы данных магазина")

	if opt.CreateExtensions {
		log.Info("Создание расширений PostgreSQL")
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`).Error; err != nil {
			log.Error("Не удалось включить расширение pg_trgm", zap.Error(err))
			return err
		}
	}

	log.Info("Создание таблиц categories, products, orders и order_items")
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		log.Error("Не удалось создать таблицы", zap.Error(err))
		return err
	}
	log.Info("Таблицы успешно созданы")

	if opt.CreateIndexes {
		log.Info("Создание индексов")

		// Поиск по подстроке: lower(name) LIKE '%term%'
		if err := db.Exec(`
CREATE INDEX IF NOT EXISTS ix_products_name_trgm
ON products USING gin (lower(name) gin_trgm_ops);
`).Error; err != nil {
			log.Error("Не удалось создать индекс ix_products_name_trgm", zap.Error(err))
			return err
		}

		// Фильтр по категории без учёта регистра
		if err := db.Exec(`
CREATE INDEX IF NOT EXISTS ix_categories_lower_slug
ON categories (lower(slug));
`).Error; err != nil {
			log.Error("Не удалось создать индекс ix_categories_lower_slug", zap.Error(err))
			return err
		}

		log.Info("Индексы успешно созданы")
	}

	if opt.CreateFKsViaSQL {
		log.Info("Создание внешних ключей")

		if err := db.Exec(`
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS fk_categories_products,
  ADD CONSTRAINT fk_categories_products
    FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("Не удалось создать FK products.category_id -> categories.id", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_orders_items,
  ADD CONSTRAINT fk_orders_items
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("Не удалось создать FK order_items.order_id -> orders.id", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_product,
  ADD CONSTRAINT fk_order_items_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("Не удалось создать FK order_items.product_id -> products.id", zap.Error(err))
			return err
		}

		log.Info("Внешние ключи успешно созданы")
	}

	log.Info("Миграция базы данных магазина успешно завершена")
	return nil
}

// Reset drops all store tables. Used by the seeder before re-creating demo data.
func Reset(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	log.Warn("Удаление таблиц магазина")
	return db.WithContext(ctx).Migrator().DropTable(&models.OrderItem{}, &models.Order{}, &models.Product{}, &models.Category{})
}
