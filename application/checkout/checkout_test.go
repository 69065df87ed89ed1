package checkout_test

import (
	"context"
	"errors"
	"testing"

	appcheckout "github.com/Sanushoffl/toteebags/application/checkout"
	"github.com/Sanushoffl/toteebags/constant"
	cartmocks "github.com/Sanushoffl/toteebags/mocks/application/cart"
	ordermocks "github.com/Sanushoffl/toteebags/mocks/application/order"
	"github.com/Sanushoffl/toteebags/model"
	cerr "github.com/Sanushoffl/toteebags/utils/errors"
	"github.com/stretchr/testify/mock"
)

const sessionID = "sess-1"

func validAddress() model.Address {
	return model.Address{
		FirstName: "Asha",
		LastName:  "Nair",
		Email:     "asha@example.com",
		Street:    "12 MG Road",
		City:      "Kochi",
		Zipcode:   "682001",
		Country:   "IN",
		Phone:     "9876543210",
	}
}

func TestCheckoutApp_Submit_InvalidAddress(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(a *model.Address)
		wantMessage string
	}{
		{
			name:        "missing phone",
			mutate:      func(a *model.Address) { a.Phone = "" },
			wantMessage: "please enter a valid 10-digit phone number",
		},
		{
			name:        "phone too short",
			mutate:      func(a *model.Address) { a.Phone = "98765" },
			wantMessage: "please enter a valid 10-digit phone number",
		},
		{
			name:        "invalid email",
			mutate:      func(a *model.Address) { a.Email = "not-an-email" },
			wantMessage: "please enter a valid email address",
		},
		{
			name:        "missing first name",
			mutate:      func(a *model.Address) { a.FirstName = "" },
			wantMessage: "please fill in your first name",
		},
		{
			name:        "missing zipcode",
			mutate:      func(a *model.Address) { a.Zipcode = "" },
			wantMessage: "please fill in your zipcode",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			// no expectations registered: a validation failure must make no
			// cart or gateway calls at all
			cartApp := cartmocks.NewCartApp(t)
			orderApp := ordermocks.NewOrderApp(t)
			app := appcheckout.NewCheckoutApp(cartApp, orderApp)

			addr := validAddress()
			tt.mutate(&addr)

			_, err := app.Submit(context.Background(), sessionID, &model.PlaceOrderRequest{Address: addr})
			if err == nil {
				t.Fatalf("Submit() expected error")
			}

			var ce cerr.CustomError
			if !errors.As(err, &ce) {
				t.Fatalf("error type = %T, want CustomError", err)
			}
			if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInvalidRequest] {
				t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInvalidRequest])
			}
			if ce.Error() != tt.wantMessage {
				t.Fatalf("message = %q, want %q", ce.Error(), tt.wantMessage)
			}
			if got := app.State(sessionID); got != appcheckout.StateDraft {
				t.Fatalf("state = %s, want draft", got)
			}
		})
	}
}

func TestCheckoutApp_Submit(t *testing.T) {
	items := []model.OrderItem{{ProductID: "p1", Name: "Canvas Tote", Price: 250, Size: "M", Quantity: 2}}
	gwOrder := &model.GatewayOrder{ID: "order_rzp1", Amount: 51000, Currency: "INR"}

	t.Run("success: session cart items reach the gateway order", func(t *testing.T) {
		cartApp := cartmocks.NewCartApp(t)
		orderApp := ordermocks.NewOrderApp(t)

		cartApp.
			On("OrderItems", mock.Anything, sessionID).
			Return(items, nil).
			Once()
		orderApp.
			On("PlaceRazorpayOrder", mock.Anything, sessionID, mock.MatchedBy(func(req *model.PlaceOrderRequest) bool {
				return len(req.Items) == 1 && req.Items[0].ProductID == "p1"
			})).
			Return(gwOrder, nil).
			Once()

		app := appcheckout.NewCheckoutApp(cartApp, orderApp)
		got, err := app.Submit(context.Background(), sessionID, &model.PlaceOrderRequest{Address: validAddress()})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if got.ID != "order_rzp1" {
			t.Fatalf("Submit() = %+v, want %+v", got, gwOrder)
		}
		if state := app.State(sessionID); state != appcheckout.StateAwaitingGateway {
			t.Fatalf("state = %s, want awaiting_gateway", state)
		}
	})

	t.Run("success: request items used when the session cart is empty", func(t *testing.T) {
		cartApp := cartmocks.NewCartApp(t)
		orderApp := ordermocks.NewOrderApp(t)

		cartApp.
			On("OrderItems", mock.Anything, sessionID).
			Return([]model.OrderItem{}, nil).
			Once()
		orderApp.
			On("PlaceRazorpayOrder", mock.Anything, sessionID, mock.MatchedBy(func(req *model.PlaceOrderRequest) bool {
				return len(req.Items) == 1 && req.Items[0].ProductID == "p9"
			})).
			Return(gwOrder, nil).
			Once()

		app := appcheckout.NewCheckoutApp(cartApp, orderApp)
		_, err := app.Submit(context.Background(), sessionID, &model.PlaceOrderRequest{
			Address: validAddress(),
			Items:   []model.OrderItem{{ProductID: "p9", Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	})

	t.Run("error: empty cart and empty request", func(t *testing.T) {
		cartApp := cartmocks.NewCartApp(t)
		orderApp := ordermocks.NewOrderApp(t)

		cartApp.
			On("OrderItems", mock.Anything, sessionID).
			Return([]model.OrderItem{}, nil).
			Once()

		app := appcheckout.NewCheckoutApp(cartApp, orderApp)
		_, err := app.Submit(context.Background(), sessionID, &model.PlaceOrderRequest{Address: validAddress()})

		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrCartEmpty] {
			t.Fatalf("Submit() error = %v, want cart empty", err)
		}
		if state := app.State(sessionID); state != appcheckout.StateDraft {
			t.Fatalf("state = %s, want draft", state)
		}
	})

	t.Run("error: gateway failure returns the attempt to draft", func(t *testing.T) {
		cartApp := cartmocks.NewCartApp(t)
		orderApp := ordermocks.NewOrderApp(t)

		cartApp.
			On("OrderItems", mock.Anything, sessionID).
			Return(items, nil).
			Once()
		orderApp.
			On("PlaceRazorpayOrder", mock.Anything, sessionID, mock.Anything).
			Return(nil, cerr.SetCustomError(constant.ErrInternal)).
			Once()

		app := appcheckout.NewCheckoutApp(cartApp, orderApp)
		if _, err := app.Submit(context.Background(), sessionID, &model.PlaceOrderRequest{Address: validAddress()}); err == nil {
			t.Fatalf("Submit() expected error")
		}
		if state := app.State(sessionID); state != appcheckout.StateDraft {
			t.Fatalf("state = %s, want draft", state)
		}
	})
}

func TestCheckoutApp_CompletePayment(t *testing.T) {
	req := &model.VerifyPaymentRequest{
		RazorpayOrderID:   "order_rzp1",
		RazorpayPaymentID: "pay_1",
		RazorpaySignature: "sig",
	}

	t.Run("success: verification confirms and clears the cart", func(t *testing.T) {
		cartApp := cartmocks.NewCartApp(t)
		orderApp := ordermocks.NewOrderApp(t)

		orderApp.
			On("VerifyRazorpayPayment", mock.Anything, req).
			Return(nil).
			Once()
		cartApp.
			On("Clear", sessionID).
			Once()

		app := appcheckout.NewCheckoutApp(cartApp, orderApp)
		if err := app.CompletePayment(context.Background(), sessionID, req); err != nil {
			t.Fatalf("CompletePayment() error = %v", err)
		}
		if state := app.State(sessionID); state != appcheckout.StateConfirmed {
			t.Fatalf("state = %s, want confirmed", state)
		}
	})

	t.Run("error: verification failure keeps the cart", func(t *testing.T) {
		cartApp := cartmocks.NewCartApp(t)
		orderApp := ordermocks.NewOrderApp(t)

		// Clear is never expected here
		orderApp.
			On("VerifyRazorpayPayment", mock.Anything, req).
			Return(cerr.SetCustomError(constant.ErrVerificationFailed)).
			Once()

		app := appcheckout.NewCheckoutApp(cartApp, orderApp)
		if err := app.CompletePayment(context.Background(), sessionID, req); err == nil {
			t.Fatalf("CompletePayment() expected error")
		}
		if state := app.State(sessionID); state != appcheckout.StateFailed {
			t.Fatalf("state = %s, want failed", state)
		}
	})
}

func TestCheckoutApp_ReportFailure(t *testing.T) {
	app := appcheckout.NewCheckoutApp(cartmocks.NewCartApp(t), ordermocks.NewOrderApp(t))

	if state := app.State(sessionID); state != appcheckout.StateDraft {
		t.Fatalf("initial state = %s, want draft", state)
	}

	app.ReportFailure(sessionID)
	if state := app.State(sessionID); state != appcheckout.StateFailed {
		t.Fatalf("state = %s, want failed", state)
	}
}
