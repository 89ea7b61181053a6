package order

import (
	"context"
	"strings"

	"github.com/ItaloOlivier/shopcrypto/internal/logger"
	"github.com/ItaloOlivier/shopcrypto/internal/mailer"
	"github.com/ItaloOlivier/shopcrypto/internal/metrics"
	"github.com/ItaloOlivier/shopcrypto/internal/user"
	"github.com/ItaloOlivier/shopcrypto/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
	GetByOrderNumber(ctx context.Context, orderNumber, requesterID string, isAdmin bool) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}

type service struct {
	repo    Repository
	users   user.Repository
	mail    mailer.Mailer
	metrics *metrics.Registry
}

func NewService(repo Repository, users user.Repository, mail mailer.Mailer, reg *metrics.Registry) Service {
	if mail == nil {
		mail = mailer.Noop{}
	}
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &service{
		repo:    repo,
		users:   users,
		mail:    mail,
		metrics: reg,
	}
}

// Checkout turns a submission into a durable order: fail-fast validation,
// identity resolution, then a single-transaction persist of the order and its
// item snapshots. Item prices are copied verbatim from the request rather than
// re-read from the catalog; the cart locked them in when the items were added.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	timer := metrics.StartTimer()
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Int("item_count", len(input.Items)),
	)

	// 1. Validate before any write
	if err := validateCheckout(input); err != nil {
		log.Warn("checkout rejected", zap.Error(err))
		return nil, err
	}

	// 2. Resolve identity: session user, else account matching the email,
	// else a new guest account with a random, never-communicated credential.
	userID, err := s.resolveUser(ctx, input)
	if err != nil {
		log.Error("failed to resolve user", zap.Error(err))
		s.metrics.Counter("orders_failed").Inc()
		return nil, err
	}

	// 3. Build the order with item snapshots
	o := &Order{
		ID:                 uuid.NewString(),
		OrderNumber:        utils.GenerateOrderNumber(),
		UserID:             userID,
		Status:             StatusPending,
		Subtotal:           input.Subtotal,
		Total:              input.Subtotal,
		ShippingAddress:    input.Address,
		ShippingCity:       input.City,
		ShippingProvince:   input.Province,
		ShippingPostalCode: input.PostalCode,
	}
	if input.PaymentMethod != "" {
		o.PaymentMethod = utils.StrPtr(input.PaymentMethod)
	}
	if input.Notes != "" {
		o.Notes = utils.StrPtr(input.Notes)
	}
	for _, item := range input.Items {
		o.Items = append(o.Items, OrderItem{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	// 4. Persist; on an order-number collision regenerate once and retry
	err = s.repo.CreateOrderTx(ctx, o)
	if IsOrderNumberConflict(err) {
		log.Warn("order number collision, regenerating", zap.String("order_number", o.OrderNumber))
		o.OrderNumber = utils.GenerateOrderNumber()
		err = s.repo.CreateOrderTx(ctx, o)
	}
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		s.metrics.Counter("orders_failed").Inc()
		return nil, err
	}

	s.metrics.Counter("orders_created").Inc()
	s.metrics.Counter("checkout_duration_ms").Add(uint64(timer.Duration().Milliseconds()))
	log.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("order_number", o.OrderNumber),
		zap.Float64("total", o.Total),
		zap.Duration("duration", timer.Duration()),
	)

	// 5. Best-effort confirmation mail; never fails the order
	s.sendConfirmation(ctx, input, o)

	return &CheckoutResult{OrderNumber: o.OrderNumber, OrderID: o.ID}, nil
}

func validateCheckout(input CheckoutInput) error {
	required := []string{
		input.Email, input.Name, input.Address,
		input.City, input.Province, input.PostalCode,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrMissingFields
		}
	}

	if len(input.Items) == 0 {
		return ErrEmptyCart
	}

	for _, item := range input.Items {
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}

	return nil
}

func (s *service) resolveUser(ctx context.Context, input CheckoutInput) (string, error) {
	sessionUserID, _ := utils.GetUserIDFromContext(ctx)

	var existing *user.User
	if sessionUserID == "" {
		var err error
		existing, err = s.users.FindByEmail(ctx, input.Email)
		if err != nil {
			return "", err
		}
	}

	res := user.ResolveIdentity(sessionUserID, existing, user.Contact{
		Email:      input.Email,
		Name:       input.Name,
		Phone:      optional(input.Phone),
		Address:    optional(input.Address),
		City:       optional(input.City),
		Province:   optional(input.Province),
		PostalCode: optional(input.PostalCode),
	})

	if res.Create == nil {
		return res.UserID, nil
	}

	hashed, err := user.HashPassword(user.RandomPassword(12))
	if err != nil {
		return "", err
	}
	res.Create.Password = hashed

	created, err := s.users.Create(ctx, *res.Create)
	if err != nil {
		return "", err
	}

	return created.ID, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *service) sendConfirmation(ctx context.Context, input CheckoutInput, o *Order) {
	items := make([]mailer.ConfirmationItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, mailer.ConfirmationItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	body := mailer.BuildConfirmationBody(mailer.ConfirmationData{
		OrderNumber:   o.OrderNumber,
		Name:          input.Name,
		Total:         o.Total,
		PaymentMethod: input.PaymentMethod,
		Items:         items,
	})

	if err := s.mail.Send(ctx, input.Email, mailer.ConfirmationSubject(o.OrderNumber), body); err != nil {
		logger.FromCtx(ctx).Warn("failed to send confirmation mail",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
	}
}

// GetByOrderNumber returns the order to its owner or an admin.
func (s *service) GetByOrderNumber(ctx context.Context, orderNumber, requesterID string, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.UserID != requesterID {
		return nil, ErrUnauthorized
	}

	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus is the admin transition; it only checks enum membership, there
// is no transition graph beyond the initial PENDING.
func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	return s.repo.UpdateStatus(ctx, orderID, status)
}
