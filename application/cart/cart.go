package cart

import (
	"context"
	"sync"

	"github.com/Sanushoffl/toteebags/constant"
	"github.com/Sanushoffl/toteebags/model"
	productRepo "github.com/Sanushoffl/toteebags/repository/product"
	"github.com/Sanushoffl/toteebags/utils/errors"
	"github.com/Sanushoffl/toteebags/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartApp holds one ephemeral cart context per session. State lives in
// memory only and is cleared on a confirmed order.
type CartApp interface {
	AddToCart(ctx context.Context, sessionID string, req *model.CartAddRequest) error
	UpdateQuantity(ctx context.Context, sessionID string, req *model.CartUpdateRequest) error
	GetCart(ctx context.Context, sessionID string) model.CartItems
	Amount(ctx context.Context, sessionID string) (decimal.Decimal, error)
	Count(ctx context.Context, sessionID string) (int64, error)
	OrderItems(ctx context.Context, sessionID string) ([]model.OrderItem, error)
	Clear(sessionID string)
}

type cartAppImpl struct {
	mu          sync.Mutex
	sessions    map[string]model.CartItems
	productRepo productRepo.ProductRepository
}

func NewCartApp(productRepo productRepo.ProductRepository) CartApp {
	return &cartAppImpl{
		sessions:    make(map[string]model.CartItems),
		productRepo: productRepo,
	}
}

// AddToCart increments the entry for (product, size), inserting it when
// absent. Products with size variants require a size.
func (s *cartAppImpl) AddToCart(ctx context.Context, sessionID string, req *model.CartAddRequest) error {
	p, err := s.productRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		logger.Error("[AddToCart] error productRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if p == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if len(p.Sizes) > 0 && req.Size == "" {
		return errors.SetCustomError(constant.ErrSizeRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sessions[sessionID]
	if items == nil {
		items = make(model.CartItems)
		s.sessions[sessionID] = items
	}
	if items[req.ItemID] == nil {
		items[req.ItemID] = make(map[string]int64)
	}
	items[req.ItemID][req.Size]++
	return nil
}

// UpdateQuantity sets the quantity for (product, size); zero removes the
// entry entirely.
func (s *cartAppImpl) UpdateQuantity(ctx context.Context, sessionID string, req *model.CartUpdateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sessions[sessionID]
	if req.Quantity == 0 {
		if items == nil {
			return nil
		}
		if sizes, ok := items[req.ItemID]; ok {
			delete(sizes, req.Size)
			if len(sizes) == 0 {
				delete(items, req.ItemID)
			}
		}
		return nil
	}

	if items == nil {
		items = make(model.CartItems)
		s.sessions[sessionID] = items
	}
	if items[req.ItemID] == nil {
		items[req.ItemID] = make(map[string]int64)
	}
	items[req.ItemID][req.Size] = req.Quantity
	return nil
}

func (s *cartAppImpl) GetCart(ctx context.Context, sessionID string) model.CartItems {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.sessions[sessionID]
	if items == nil {
		return make(model.CartItems)
	}
	return items.Clone()
}

// Amount sums current price x quantity over entries whose product still
// exists; entries referencing a removed product contribute zero.
func (s *cartAppImpl) Amount(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	items := s.GetCart(ctx, sessionID)

	prices, err := s.priceIndex(ctx, items)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for productID, sizes := range items {
		price, ok := prices[productID]
		if !ok {
			continue // stale entry, product removed
		}
		for _, qty := range sizes {
			total = total.Add(price.Mul(decimal.NewFromInt(qty)))
		}
	}
	return total, nil
}

// Count sums quantities the same way Amount does, skipping stale entries.
func (s *cartAppImpl) Count(ctx context.Context, sessionID string) (int64, error) {
	items := s.GetCart(ctx, sessionID)

	prices, err := s.priceIndex(ctx, items)
	if err != nil {
		return 0, err
	}

	var count int64
	for productID, sizes := range items {
		if _, ok := prices[productID]; !ok {
			continue
		}
		for _, qty := range sizes {
			count += qty
		}
	}
	return count, nil
}

// OrderItems builds denormalized line-item snapshots for checkout, skipping
// entries whose product no longer exists.
func (s *cartAppImpl) OrderItems(ctx context.Context, sessionID string) ([]model.OrderItem, error) {
	items := s.GetCart(ctx, sessionID)

	ids := make([]string, 0, len(items))
	for productID := range items {
		ids = append(ids, productID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Error("[OrderItems] error productRepo.GetByIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]model.OrderItem, 0)
	for productID, sizes := range items {
		p, ok := byID[productID]
		if !ok {
			continue
		}
		for size, qty := range sizes {
			if qty <= 0 {
				continue
			}
			out = append(out, model.OrderItem{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Image:     p.Image,
				Size:      size,
				Quantity:  qty,
			})
		}
	}
	return out, nil
}

func (s *cartAppImpl) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *cartAppImpl) priceIndex(ctx context.Context, items model.CartItems) (map[string]decimal.Decimal, error) {
	ids := make([]string, 0, len(items))
	for productID := range items {
		ids = append(ids, productID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Error("[priceIndex] error productRepo.GetByIDs", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	prices := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		prices[p.ID] = decimal.NewFromFloat(p.Price)
	}
	return prices, nil
}
