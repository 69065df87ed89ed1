package model

import (
	"time"

	"github.com/Sanushoffl/toteebags/constant"
)

// Address holds the delivery form fields. State is the only optional field;
// phone must be exactly 10 digits.
type Address struct {
	FirstName string `bson:"firstName" json:"firstName" validate:"required"`
	LastName  string `bson:"lastName" json:"lastName" validate:"required"`
	Email     string `bson:"email" json:"email" validate:"required,email"`
	Street    string `bson:"street" json:"street" validate:"required"`
	City      string `bson:"city" json:"city" validate:"required"`
	State     string `bson:"state" json:"state"`
	Zipcode   string `bson:"zipcode" json:"zipcode" validate:"required"`
	Country   string `bson:"country" json:"country" validate:"required"`
	Phone     string `bson:"phone" json:"phone" validate:"required,len=10,numeric"`
}

// OrderItem is a denormalized snapshot of a product at checkout time.
type OrderItem struct {
	ProductID string   `bson:"productId" json:"productId"`
	Name      string   `bson:"name" json:"name"`
	Price     float64  `bson:"price" json:"price"`
	Image     []string `bson:"image" json:"image"`
	Size      string   `bson:"size" json:"size"`
	Quantity  int64    `bson:"quantity" json:"quantity"`
}

// Order is a document in the order collection. Amount is in minor currency
// units. PaymentStatus moves pending -> paid only after gateway verification.
type Order struct {
	ID             string                 `bson:"_id,omitempty" json:"_id"`
	UserID         string                 `bson:"userId" json:"userId"`
	Items          []OrderItem            `bson:"items" json:"items"`
	Address        Address                `bson:"address" json:"address"`
	Amount         int64                  `bson:"amount" json:"amount"`
	Currency       string                 `bson:"currency" json:"currency"`
	GatewayOrderID string                 `bson:"gatewayOrderId" json:"gatewayOrderId,omitempty"`
	Receipt        string                 `bson:"receipt" json:"receipt,omitempty"`
	PaymentStatus  constant.PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	Date           time.Time              `bson:"date" json:"date"`
	ExpiresAt      time.Time              `bson:"expiresAt" json:"expiresAt"`
}

// PlaceOrderRequest is the checkout submission. Amount is advisory; the
// backend recomputes the charge from Items plus the delivery fee.
type PlaceOrderRequest struct {
	Address Address     `json:"address"`
	Items   []OrderItem `json:"items" validate:"required,min=1,dive"`
	Amount  int64       `json:"amount"`
}

// GatewayOrder is the payment-provider-side order handed to the hosted
// checkout widget.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type PlaceOrderResponse struct {
	Success bool         `json:"success"`
	Order   GatewayOrder `json:"order"`
}

// VerifyPaymentRequest is the widget callback payload forwarded verbatim.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type UserOrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

type ExpireOrderRequest struct {
	OrderID string `json:"orderId" validate:"required"`
}
