package order

import (
	"context"
	"strings"
	"time"

	"ordernest-be/internal/auth"
	"ordernest-be/internal/idempotency"
	"ordernest-be/internal/inventory"
	"ordernest-be/internal/logger"
	"ordernest-be/internal/metrics"
	"ordernest-be/internal/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest, authorization, idempotencyKey string) (*CreateOrderResponse, error)
	PayOrder(ctx context.Context, orderID uuid.UUID, authorization string) (*PayOrderResponse, error)
	GetOrderByID(ctx context.Context, orderID uuid.UUID, authorization string) (*OrderResponse, error)
	GetOrdersByUser(ctx context.Context, userID uuid.UUID, authorization string) ([]*OrderResponse, error)
}

type service struct {
	store         Store
	inventoryGate inventory.Gateway
	paymentGate   payment.Gateway
	verifier      auth.Verifier
	pricingCache  *PricingCache
	publisher     Publisher
	guard         idempotency.Guard
	metrics       *metrics.Metrics
}

func NewService(
	store Store,
	inventoryGate inventory.Gateway,
	paymentGate payment.Gateway,
	verifier auth.Verifier,
	pricingCache *PricingCache,
	publisher Publisher,
	guard idempotency.Guard,
	m *metrics.Metrics,
) Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if guard == nil {
		guard = idempotency.NopGuard{}
	}

	return &service{
		store:         store,
		inventoryGate: inventoryGate,
		paymentGate:   paymentGate,
		verifier:      verifier,
		pricingCache:  pricingCache,
		publisher:     publisher,
		guard:         guard,
		metrics:       m,
	}
}

// CreateOrder authorizes the caller, reserves stock via a conditional
// decrement, resolves pricing and persists a new pending order. No step is
// retried and no completed reservation is compensated on later failure; the
// caller re-issues the whole request.
func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest, authorization, idempotencyKey string) (*CreateOrderResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.String("product_id", req.Item.ProductID.String()),
		zap.Int("quantity", req.Item.Quantity),
	)

	userID, err := s.verifier.ResolveUserID(authorization)
	if err != nil {
		log.Warn("caller identity not resolved", zap.Error(err))
		return nil, err
	}

	if req.Item.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if idempotencyKey != "" {
		fresh, err := s.guard.Register(ctx, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if !fresh {
			log.Warn("duplicate idempotency key", zap.String("key", idempotencyKey))
			return nil, ErrDuplicateRequest
		}
	}

	product, err := s.inventoryGate.GetProduct(ctx, req.Item.ProductID, authorization)
	if err != nil {
		s.metrics.GatewayFailure("inventory")
		return nil, err
	}

	available := 0
	if product.AvailableQuantity != nil {
		available = *product.AvailableQuantity
	}
	requested := req.Item.Quantity

	if requested > available {
		log.Warn("insufficient inventory",
			zap.Int("available", available),
			zap.Int("requested", requested),
		)
		return nil, &InsufficientInventoryError{Available: available, Requested: requested}
	}

	if err := s.inventoryGate.ReserveStock(ctx, product.ID, available, available-requested, authorization); err != nil {
		s.metrics.GatewayFailure("inventory")
		return nil, err
	}

	pricing, err := resolvePricing(product)
	if err != nil {
		return nil, err
	}
	s.pricingCache.Put(product.ID, pricing)

	now := time.Now().UTC()
	o := &Order{
		ID:            uuid.New(),
		UserID:        userID,
		ProductID:     product.ID,
		ProductName:   product.Name,
		Quantity:      requested,
		UnitPrice:     &pricing.UnitPrice,
		Currency:      pricing.Currency,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Create(ctx, o); err != nil {
		return nil, err
	}

	s.metrics.OrderCreated()
	s.publish(ctx, EventOrderCreated, o)

	log.Info("order created", zap.String("order_id", o.ID.String()))

	return &CreateOrderResponse{OrderID: o.ID}, nil
}

// PayOrder initiates payment for an owned, not-yet-paid order. Payment
// completion is never observed here, so the order stays PENDING after a
// successful initiation.
func (s *service) PayOrder(ctx context.Context, orderID uuid.UUID, authorization string) (*PayOrderResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PayOrder"),
		zap.String("order_id", orderID.String()),
	)

	userID, err := s.verifier.ResolveUserID(authorization)
	if err != nil {
		log.Warn("caller identity not resolved", zap.Error(err))
		return nil, err
	}

	o, err := s.store.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.UserID != userID {
		log.Warn("payment attempt by non-owner", zap.String("caller_id", userID.String()))
		return nil, ErrForbidden
	}

	if o.PaymentStatus == PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	if err := s.ensurePricing(ctx, o, authorization); err != nil {
		return nil, err
	}

	if err := s.paymentGate.InitiatePayment(ctx, o.ID, authorization); err != nil {
		s.metrics.GatewayFailure("payment")
		return nil, err
	}

	o.Status = StatusPending
	o.PaymentStatus = PaymentPending
	if err := s.store.UpdatePaymentState(ctx, o.ID, o.Status, o.PaymentStatus); err != nil {
		return nil, err
	}

	s.metrics.PaymentInitiated()
	s.publish(ctx, EventPaymentInitiated, o)

	log.Info("payment initiated")

	return &PayOrderResponse{
		OrderID:       o.ID,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Reason:        "Payment initiated",
	}, nil
}

func (s *service) GetOrderByID(ctx context.Context, orderID uuid.UUID, authorization string) (*OrderResponse, error) {
	o, err := s.store.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.ensurePricing(ctx, o, authorization); err != nil {
		return nil, err
	}

	return MapToResponse(o), nil
}

func (s *service) GetOrdersByUser(ctx context.Context, userID uuid.UUID, authorization string) ([]*OrderResponse, error) {
	orders, err := s.store.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		if err := s.ensurePricing(ctx, o, authorization); err != nil {
			return nil, err
		}
		responses = append(responses, MapToResponse(o))
	}

	return responses, nil
}

// ensurePricing lazily resolves and persists pricing on orders that predate
// it. Reads can therefore trigger a write; the persist happens only after the
// price fully resolves, so a failed fetch never leaves partial state behind.
func (s *service) ensurePricing(ctx context.Context, o *Order, authorization string) error {
	if o.PricingResolved() {
		return nil
	}

	pricing, cached := s.pricingCache.Get(o.ProductID)
	if !cached {
		product, err := s.inventoryGate.GetProduct(ctx, o.ProductID, authorization)
		if err != nil {
			s.metrics.GatewayFailure("inventory")
			return err
		}

		pricing, err = resolvePricing(product)
		if err != nil {
			return err
		}
		s.pricingCache.Put(o.ProductID, pricing)
	}

	if err := s.store.UpdatePricing(ctx, o.ID, pricing.UnitPrice, pricing.Currency); err != nil {
		return err
	}

	o.UnitPrice = &pricing.UnitPrice
	o.Currency = pricing.Currency
	s.metrics.PricingBackfilled()

	logger.FromCtx(ctx).Info("pricing backfilled",
		zap.String("order_id", o.ID.String()),
		zap.String("product_id", o.ProductID.String()),
		zap.Bool("from_cache", cached),
	)

	return nil
}

func (s *service) publish(ctx context.Context, eventType string, o *Order) {
	event := Event{
		Type:       eventType,
		OrderID:    o.ID,
		UserID:     o.UserID,
		ProductID:  o.ProductID,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.FromCtx(ctx).Warn("failed to publish order event",
			zap.String("event", eventType),
			zap.String("order_id", o.ID.String()),
			zap.Error(err),
		)
	}
}

func resolvePricing(product *inventory.Product) (Pricing, error) {
	if product.Price == nil || *product.Price < 0 {
		return Pricing{}, ErrInvalidPrice
	}

	currency := strings.ToUpper(strings.TrimSpace(product.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	return Pricing{UnitPrice: *product.Price, Currency: currency}, nil
}
