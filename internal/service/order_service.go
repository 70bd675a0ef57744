package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Seirafashion/sui-backend/internal/models"
	"github.com/Seirafashion/sui-backend/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type orderService struct {
	uow    UnitOfWork
	events EventBus
	log    *zap.Logger
	now    func() time.Time
}

// NewOrderService builds the checkout service. events may be nil (publishing disabled).
func NewOrderService(uow UnitOfWork, events EventBus, log *zap.Logger) OrderService {
	return &orderService{
		uow:    uow,
		events: events,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// ShippingAddress joins the non-empty address parts with ", ".
func ShippingAddress(c Customer) string {
	parts := make([]string, 0, 6)
	for _, p := range []string{c.Address1, c.Address2, c.City, c.State, c.PostalCode, c.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// parseQuantity reads an integer quantity. An absent quantity counts as zero.
func parseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errQuantityNotInt
	}
	return n, nil
}

// productKey is a requested product id. Tokens that are not integers keep
// their text so they can be reported back as unknown.
type productKey struct {
	id    int64
	token string
	isInt bool
}

func parseProductKey(raw string) productKey {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return productKey{id: n, isInt: true}
	}
	return productKey{token: raw}
}

func validateCustomer(c Customer) (name, email, address string, err error) {
	name = strings.TrimSpace(c.Name)
	email = strings.TrimSpace(c.Email)
	address = ShippingAddress(c)
	if name == "" || email == "" || address == "" {
		return "", "", "", errCustomerRequired
	}
	return name, email, address, nil
}

// collectProductIDs returns the key of every item plus the de-duplicated set.
func collectProductIDs(items []CreateOrderItem) (keys, distinct []productKey, err error) {
	if len(items) == 0 {
		return nil, nil, errItemsRequired
	}
	keys = make([]productKey, 0, len(items))
	seen := make(map[productKey]struct{}, len(items))
	for _, it := range items {
		if it.ProductID == "" {
			return nil, nil, errProductIDMissing
		}
		k := parseProductKey(it.ProductID)
		keys = append(keys, k)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		distinct = append(distinct, k)
	}
	return keys, distinct, nil
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderConfirmation, error) {
	name, email, address, err := validateCustomer(in.Customer)
	if err != nil {
		return nil, err
	}

	keys, distinct, err := collectProductIDs(in.Items)
	if err != nil {
		return nil, err
	}

	var (
		order   *models.Order
		itemsDB []models.OrderItem
		total   = decimal.Zero
	)

	err = s.uow.WithTx(ctx, func(tx *repository.Repository) error {
		lookup := make([]uint, 0, len(distinct))
		for _, k := range distinct {
			if k.isInt && k.id > 0 {
				lookup = append(lookup, uint(k.id))
			}
		}
		products, err := tx.Products.BatchGetByIDs(ctx, lookup)
		if err != nil {
			return fmt.Errorf("load products: %w", err)
		}

		byID := make(map[int64]models.Product, len(products))
		for _, p := range products {
			byID[int64(p.ID)] = p
		}

		var (
			missingIDs    []int64
			missingTokens []string
		)
		for _, k := range distinct {
			if !k.isInt {
				missingTokens = append(missingTokens, k.token)
				continue
			}
			if _, ok := byID[k.id]; !ok {
				missingIDs = append(missingIDs, k.id)
			}
		}
		if len(missingIDs) > 0 || len(missingTokens) > 0 {
			return unknownProducts(missingIDs, missingTokens)
		}

		order = &models.Order{
			CustomerName:    name,
			CustomerEmail:   email,
			ShippingAddress: address,
			Status:          models.OrderStatusProcessing,
			CreatedAt:       s.now(),
		}
		if err := tx.Orders.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		itemsDB = make([]models.OrderItem, 0, len(in.Items))
		for i, it := range in.Items {
			qty, err := parseQuantity(it.Quantity)
			if err != nil {
				return err
			}
			if qty <= 0 {
				return errQuantityInvalid
			}

			// цена фиксируется на момент заказа
			product := byID[keys[i].id]
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  qty,
				UnitPrice: product.Price,
			}
			if err := tx.OrderItems.Create(ctx, &item); err != nil {
				return fmt.Errorf("create order item: %w", err)
			}

			total = total.Add(item.Subtotal())
			itemsDB = append(itemsDB, item)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	conf := &OrderConfirmation{
		OrderID: order.ID,
		Status:  order.Status,
		Total:   total.InexactFloat64(),
		Items:   make([]ConfirmedItem, 0, len(itemsDB)),
	}
	for _, it := range itemsDB {
		conf.Items = append(conf.Items, ConfirmedItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	s.log.Info("order created",
		zap.Uint("order_id", conf.OrderID),
		zap.Int("items", len(conf.Items)),
		zap.Float64("total", conf.Total),
	)

	if s.events != nil {
		s.publishCreated(ctx, order, conf)
	}

	return conf, nil
}

func (s *orderService) publishCreated(ctx context.Context, order *models.Order, conf *OrderConfirmation) {
	evItems := make([]OrderItemEvent, 0, len(conf.Items))
	for _, it := range conf.Items {
		evItems = append(evItems, OrderItemEvent{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	err := s.events.PublishOrderCreated(ctx, OrderCreatedEvent{
		OrderID:       order.ID,
		CustomerEmail: order.CustomerEmail,
		Status:        string(order.Status),
		Items:         evItems,
		Total:         conf.Total,
		CreatedAt:     order.CreatedAt,
	})
	if err != nil {
		s.log.Warn("publish order created failed", zap.Uint("order_id", order.ID), zap.Error(err))
	}
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var ord *models.Order
	err := s.uow.WithTx(ctx, func(tx *repository.Repository) error {
		var err error
		ord, err = tx.Orders.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}
