package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrSizeRequired
	ErrCartEmpty
	ErrPaymentFailed
	ErrVerificationFailed
	ErrInvalidOrderStatus
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrCredentialExists:   "email already exists",
	ErrInvalidPassword:    "password invalid",
	ErrSizeRequired:       "please select a product size",
	ErrCartEmpty:          "cart is empty",
	ErrPaymentFailed:      "payment failed",
	ErrVerificationFailed: "payment verification failed",
	ErrInvalidOrderStatus: "invalid order status",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusBadRequest,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrCredentialExists:   http.StatusBadRequest,
	ErrInvalidPassword:    http.StatusBadRequest,
	ErrSizeRequired:       http.StatusBadRequest,
	ErrCartEmpty:          http.StatusBadRequest,
	ErrPaymentFailed:      http.StatusBadRequest,
	ErrVerificationFailed: http.StatusBadRequest,
	ErrInvalidOrderStatus: http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrCredentialExists:   "0005",
	ErrInvalidPassword:    "0006",
	ErrSizeRequired:       "0007",
	ErrCartEmpty:          "0008",
	ErrPaymentFailed:      "0009",
	ErrVerificationFailed: "0010",
	ErrInvalidOrderStatus: "0011",
}
