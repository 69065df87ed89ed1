package checkout

import (
	"context"
	"strings"
	"sync"
	"unicode"

	cartapp "github.com/Sanushoffl/toteebags/application/cart"
	orderapp "github.com/Sanushoffl/toteebags/application/order"
	"github.com/Sanushoffl/toteebags/constant"
	"github.com/Sanushoffl/toteebags/model"
	"github.com/Sanushoffl/toteebags/utils/errors"
	validatorx "github.com/Sanushoffl/toteebags/utils/validator"
)

// State is the per-session checkout attempt state.
type State int

const (
	StateDraft State = iota
	StateSubmitting
	StateAwaitingGateway
	StateVerifying
	StateConfirmed
	StateFailed
)

var stateNames = map[State]string{
	StateDraft:           "draft",
	StateSubmitting:      "submitting",
	StateAwaitingGateway: "awaiting_gateway",
	StateVerifying:       "verifying",
	StateConfirmed:       "confirmed",
	StateFailed:          "failed",
}

func (s State) String() string {
	return stateNames[s]
}

// CheckoutApp drives one checkout attempt per session:
// draft -> submitting -> awaiting_gateway -> verifying -> confirmed|failed.
// A failed attempt restarts from draft with the cart intact; the cart is
// cleared only on confirmation.
type CheckoutApp interface {
	Submit(ctx context.Context, sessionID string, req *model.PlaceOrderRequest) (*model.GatewayOrder, error)
	CompletePayment(ctx context.Context, sessionID string, req *model.VerifyPaymentRequest) error
	ReportFailure(sessionID string)
	State(sessionID string) State
}

type checkoutAppImpl struct {
	mu       sync.Mutex
	states   map[string]State
	cartApp  cartapp.CartApp
	orderApp orderapp.OrderApp
}

func NewCheckoutApp(cartApp cartapp.CartApp, orderApp orderapp.OrderApp) CheckoutApp {
	return &checkoutAppImpl{
		states:   make(map[string]State),
		cartApp:  cartApp,
		orderApp: orderApp,
	}
}

// Submit validates the address, assembles line items from the session cart
// (falling back to the request items when the session cart is empty) and
// requests a gateway order. Validation failures keep the attempt in draft
// and make no network call.
func (s *checkoutAppImpl) Submit(ctx context.Context, sessionID string, req *model.PlaceOrderRequest) (*model.GatewayOrder, error) {
	if err := validatorx.ValidateStruct(&req.Address); err != nil {
		s.setState(sessionID, StateDraft)
		return nil, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, fieldMessage(validatorx.FirstInvalidField(err)))
	}

	s.setState(sessionID, StateSubmitting)

	items, err := s.cartApp.OrderItems(ctx, sessionID)
	if err != nil {
		s.setState(sessionID, StateDraft)
		return nil, err
	}
	if len(items) == 0 {
		items = req.Items
	}
	if len(items) == 0 {
		s.setState(sessionID, StateDraft)
		return nil, errors.SetCustomError(constant.ErrCartEmpty)
	}

	gwOrder, err := s.orderApp.PlaceRazorpayOrder(ctx, sessionID, &model.PlaceOrderRequest{
		Address: req.Address,
		Items:   items,
		Amount:  req.Amount,
	})
	if err != nil {
		s.setState(sessionID, StateDraft)
		return nil, err
	}

	s.setState(sessionID, StateAwaitingGateway)
	return gwOrder, nil
}

// CompletePayment runs the verification step. The cart is cleared only on a
// confirmed success; every failure lands in the failed state and the user
// retries from draft.
func (s *checkoutAppImpl) CompletePayment(ctx context.Context, sessionID string, req *model.VerifyPaymentRequest) error {
	s.setState(sessionID, StateVerifying)

	if err := s.orderApp.VerifyRazorpayPayment(ctx, req); err != nil {
		s.setState(sessionID, StateFailed)
		return err
	}

	s.setState(sessionID, StateConfirmed)
	s.cartApp.Clear(sessionID)
	return nil
}

// ReportFailure records a widget-reported payment failure.
func (s *checkoutAppImpl) ReportFailure(sessionID string) {
	s.setState(sessionID, StateFailed)
}

func (s *checkoutAppImpl) State(sessionID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[sessionID]
}

func (s *checkoutAppImpl) setState(sessionID string, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == StateDraft {
		delete(s.states, sessionID)
		return
	}
	s.states[sessionID] = state
}

// fieldMessage builds the field-specific validation feedback shown inline.
func fieldMessage(field string) string {
	switch field {
	case "Email":
		return "please enter a valid email address"
	case "Phone":
		return "please enter a valid 10-digit phone number"
	case "":
		return constant.ErrorTypeMessage[constant.ErrInvalidRequest]
	default:
		return "please fill in your " + humanize(field)
	}
}

func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
