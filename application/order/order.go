package order

import (
	"context"
	"time"

	"github.com/Sanushoffl/toteebags/cmd/config"
	"github.com/Sanushoffl/toteebags/constant"
	"github.com/Sanushoffl/toteebags/model"
	orderrepo "github.com/Sanushoffl/toteebags/repository/order"
	productrepo "github.com/Sanushoffl/toteebags/repository/product"
	"github.com/Sanushoffl/toteebags/thirdparty/rabbitmq"
	"github.com/Sanushoffl/toteebags/thirdparty/razorpay"
	"github.com/Sanushoffl/toteebags/utils/errors"
	"github.com/Sanushoffl/toteebags/utils/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderApp interface {
	PlaceRazorpayOrder(ctx context.Context, userID string, req *model.PlaceOrderRequest) (*model.GatewayOrder, error)
	VerifyRazorpayPayment(ctx context.Context, req *model.VerifyPaymentRequest) error
	UserOrders(ctx context.Context, userID string) ([]model.Order, error)
	ExpireOrder(ctx context.Context, orderID string) error
}

type orderAppImpl struct {
	config      *config.Config
	orderRepo   orderrepo.OrderRepository
	productRepo productrepo.ProductRepository
	gateway     razorpay.Gateway
	publisher   *rabbitmq.Publisher
}

func NewOrderApp(config *config.Config, orderRepo orderrepo.OrderRepository, productRepo productrepo.ProductRepository, gateway razorpay.Gateway, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{config: config, orderRepo: orderRepo, productRepo: productRepo, gateway: gateway, publisher: publisher}
}

// PlaceRazorpayOrder creates a pending order and its gateway-side
// counterpart. The charge is recomputed here from current product prices
// plus the delivery fee; the client-supplied amount is never trusted.
func (s *orderAppImpl) PlaceRazorpayOrder(ctx context.Context, userID string, req *model.PlaceOrderRequest) (*model.GatewayOrder, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrCartEmpty)
	}

	items, total, err := s.repriceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.SetCustomError(constant.ErrCartEmpty)
	}

	total = total.Add(decimal.NewFromFloat(s.config.Order.DeliveryFee))
	amount := total.Mul(decimal.NewFromInt(100)).IntPart() // minor units

	receipt := uuid.NewString()
	gwOrder, err := s.gateway.CreateOrder(ctx, amount, s.config.Order.Currency, receipt)
	if err != nil {
		logger.Error("[PlaceRazorpayOrder] error gateway.CreateOrder", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now()
	expiresAt := now.Add(s.config.Order.PaymentWindow)
	orderID, err := s.orderRepo.Insert(ctx, &model.Order{
		UserID:         userID,
		Items:          items,
		Address:        req.Address,
		Amount:         amount,
		Currency:       s.config.Order.Currency,
		GatewayOrderID: gwOrder.ID,
		Receipt:        receipt,
		PaymentStatus:  constant.PaymentStatusPending,
		Date:           now,
		ExpiresAt:      expiresAt,
	})
	if err != nil {
		logger.Error("[PlaceRazorpayOrder] error orderRepo.Insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Note: publisher may be nil in tests; events are best-effort
	if s.publisher != nil {
		if err := s.publisher.PublishOrderEvent(rabbitmq.OrderEventMessage{
			OrderID: orderID,
			UserID:  userID,
			Amount:  amount,
			Event:   "placed",
		}); err != nil {
			logger.Error("[PlaceRazorpayOrder] publish order placed", zap.String("error", err.Error()))
		}
		if err := s.publisher.PublishPaymentExpiration(rabbitmq.PaymentExpirationMessage{
			OrderID:   orderID,
			ExpiresAt: expiresAt,
		}); err != nil {
			logger.Error("[PlaceRazorpayOrder] publish payment expiration", zap.String("error", err.Error()))
		}
	}

	return &model.GatewayOrder{
		ID:       gwOrder.ID,
		Amount:   amount,
		Currency: s.config.Order.Currency,
		Receipt:  receipt,
	}, nil
}

// VerifyRazorpayPayment confirms the widget callback against the gateway:
// signature first, then the gateway's own payment record. Only a captured
// payment matching the stored order marks it paid.
func (s *orderAppImpl) VerifyRazorpayPayment(ctx context.Context, req *model.VerifyPaymentRequest) error {
	order, err := s.orderRepo.GetByGatewayOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		logger.Error("[VerifyRazorpayPayment] error orderRepo.GetByGatewayOrderID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if order.PaymentStatus == constant.PaymentStatusPaid {
		// already verified, keep the callback idempotent
		return nil
	}

	if !s.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		logger.Warn("[VerifyRazorpayPayment] signature mismatch", zap.String("gateway_order_id", req.RazorpayOrderID))
		s.markFailed(ctx, order.ID)
		return errors.SetCustomError(constant.ErrVerificationFailed)
	}

	payment, err := s.gateway.FetchPayment(ctx, req.RazorpayPaymentID)
	if err != nil {
		logger.Error("[VerifyRazorpayPayment] error gateway.FetchPayment", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrVerificationFailed)
	}
	if payment.Status != razorpay.PaymentStatusCaptured || payment.OrderID != req.RazorpayOrderID || payment.Amount != order.Amount {
		logger.Warn("[VerifyRazorpayPayment] payment record mismatch",
			zap.String("status", payment.Status),
			zap.Int64("amount", payment.Amount),
			zap.Int64("expected_amount", order.Amount),
		)
		s.markFailed(ctx, order.ID)
		return errors.SetCustomError(constant.ErrVerificationFailed)
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, order.ID, constant.PaymentStatusPaid); err != nil {
		logger.Error("[VerifyRazorpayPayment] error orderRepo.UpdatePaymentStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderEvent(rabbitmq.OrderEventMessage{
			OrderID: order.ID,
			UserID:  order.UserID,
			Amount:  order.Amount,
			Event:   "paid",
		}); err != nil {
			logger.Error("[VerifyRazorpayPayment] publish order paid", zap.String("error", err.Error()))
		}
	}

	return nil
}

func (s *orderAppImpl) UserOrders(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[UserOrders] error orderRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return orders, nil
}

// ExpireOrder fails an order whose payment window elapsed while still
// pending. Settled orders are left untouched.
func (s *orderAppImpl) ExpireOrder(ctx context.Context, orderID string) error {
	expired, err := s.orderRepo.ExpirePending(ctx, orderID)
	if err != nil {
		logger.Error("[ExpireOrder] error orderRepo.ExpirePending", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !expired {
		return nil
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrderEvent(rabbitmq.OrderEventMessage{
			OrderID: orderID,
			Event:   "expired",
		}); err != nil {
			logger.Error("[ExpireOrder] publish order expired", zap.String("error", err.Error()))
		}
	}
	return nil
}

// repriceItems looks up every referenced product and rebuilds the line items
// with current prices. Items whose product no longer exists are dropped.
func (s *orderAppImpl) repriceItems(ctx context.Context, reqItems []model.OrderItem) ([]model.OrderItem, decimal.Decimal, error) {
	ids := make([]string, 0, len(reqItems))
	for _, it := range reqItems {
		ids = append(ids, it.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Error("[repriceItems] error productRepo.GetByIDs", zap.String("error", err.Error()))
		return nil, decimal.Zero, errors.SetCustomError(constant.ErrInternal)
	}

	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]model.OrderItem, 0, len(reqItems))
	total := decimal.Zero
	for _, it := range reqItems {
		p, ok := byID[it.ProductID]
		if !ok || it.Quantity <= 0 {
			continue
		}
		items = append(items, model.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Size:      it.Size,
			Quantity:  it.Quantity,
		})
		total = total.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(it.Quantity)))
	}
	return items, total, nil
}

func (s *orderAppImpl) markFailed(ctx context.Context, orderID string) {
	if err := s.orderRepo.UpdatePaymentStatus(ctx, orderID, constant.PaymentStatusFailed); err != nil {
		logger.Error("[markFailed] error orderRepo.UpdatePaymentStatus", zap.String("error", err.Error()))
	}
}
