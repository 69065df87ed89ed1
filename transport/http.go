package transport

import (
	"encoding/json"
	"net/http"

	cartapp "github.com/Sanushoffl/toteebags/application/cart"
	checkoutapp "github.com/Sanushoffl/toteebags/application/checkout"
	orderapp "github.com/Sanushoffl/toteebags/application/order"
	productapp "github.com/Sanushoffl/toteebags/application/product"
	userapp "github.com/Sanushoffl/toteebags/application/user"
	"github.com/Sanushoffl/toteebags/constant"
	"github.com/Sanushoffl/toteebags/model"
	utilsContext "github.com/Sanushoffl/toteebags/utils/context"
	"github.com/Sanushoffl/toteebags/utils/errors"
	validatorx "github.com/Sanushoffl/toteebags/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp     userapp.UserApp
	ProductApp  productapp.ProductApp
	CartApp     cartapp.CartApp
	CheckoutApp checkoutapp.CheckoutApp
	OrderApp    orderapp.OrderApp
}

func NewTransport(userApp userapp.UserApp, productApp productapp.ProductApp, cartApp cartapp.CartApp, checkoutApp checkoutapp.CheckoutApp, orderApp orderapp.OrderApp, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		UserApp:     userApp,
		ProductApp:  productApp,
		CartApp:     cartApp,
		CheckoutApp: checkoutApp,
		OrderApp:    orderApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/api/user/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/user/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/user/admin", rh.AdminLogin).Methods(http.MethodPost)
	router.HandleFunc("/api/product/list", rh.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/api/product/{id}", rh.GetProduct).Methods(http.MethodGet)

	// Admin routes
	router.HandleFunc("/api/product/add", rh.AddProduct).Methods(http.MethodPost)
	router.HandleFunc("/api/product/remove", rh.RemoveProduct).Methods(http.MethodPost)
	router.HandleFunc("/api/product/update", rh.UpdateProduct).Methods(http.MethodPut)

	// Cart routes (per-session context)
	router.HandleFunc("/api/cart/add", rh.AddToCart).Methods(http.MethodPost)
	router.HandleFunc("/api/cart/update", rh.UpdateCart).Methods(http.MethodPost)
	router.HandleFunc("/api/cart/get", rh.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/api/cart/total", rh.CartTotal).Methods(http.MethodGet)

	// Checkout / order routes
	router.HandleFunc("/api/order/razorpay", rh.PlaceRazorpayOrder).Methods(http.MethodPost)
	router.HandleFunc("/api/order/verifyRazorpay", rh.VerifyRazorpay).Methods(http.MethodPost)
	router.HandleFunc("/api/order/userorders", rh.UserOrders).Methods(http.MethodPost)
	router.HandleFunc("/api/checkout/state", rh.CheckoutState).Methods(http.MethodGet)
	router.HandleFunc("/api/checkout/failed", rh.CheckoutFailed).Methods(http.MethodPost)

	// Internal routes (service key, used by the expiration consumer)
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/order/expire", rh.ExpireOrder).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(userApp))

	return router
}

// Register handler
// @Summary Register user
// @Description Register a new shop account and receive a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/user/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/user/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminLogin handler
// @Summary Admin login
// @Description Login to the admin panel
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.AuthResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/user/admin [post]
func (s *RestHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.AdminLogin(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListProducts handler
// @Summary List products
// @Description All products, most recently created first
// @Tags Product
// @Produce json
// @Success 200 {object} model.ProductListResponse
// @Router /api/product/list [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.ProductApp.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.ProductListResponse{
		Success:  true,
		Products: products,
	})
}

func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.ProductResponse{
		Success: true,
		Product: *product,
	})
}

// AddProduct handler
// @Summary Add product
// @Description Create a product; the in-stock flag is derived server-side
// @Tags Product
// @Accept json
// @Produce json
// @Param token header string true "Admin token"
// @Param request body model.ProductAddRequest true "Product"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/product/add [post]
func (s *RestHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !utilsContext.IsAdmin(ctx) {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ProductAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if _, err := s.ProductApp.AddProduct(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Product Added")
}

// UpdateProduct handler
// @Summary Update product price and stock
// @Tags Product
// @Accept json
// @Produce json
// @Param token header string true "Admin token"
// @Param request body model.ProductUpdateRequest true "Update"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/product/update [put]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !utilsContext.IsAdmin(ctx) {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ProductApp.UpdateProduct(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Product Updated")
}

// RemoveProduct handler
// @Summary Remove product
// @Tags Product
// @Accept json
// @Produce json
// @Param token header string true "Admin token"
// @Param request body model.ProductRemoveRequest true "Remove"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/product/remove [post]
func (s *RestHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !utilsContext.IsAdmin(ctx) {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ProductRemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ProductApp.RemoveProduct(ctx, req.ID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Product Removed")
}

func (s *RestHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSubject(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CartApp.AddToCart(ctx, sessionID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Added To Cart")
}

func (s *RestHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSubject(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CartUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CartApp.UpdateQuantity(ctx, sessionID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Cart Updated")
}

func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSubject(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	writeSuccess(w, model.CartResponse{
		Success:  true,
		CartData: s.CartApp.GetCart(ctx, sessionID),
	})
}

func (s *RestHandler) CartTotal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSubject(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	amount, err := s.CartApp.Amount(ctx, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	count, err := s.CartApp.Count(ctx, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.CartTotalResponse{
		Success: true,
		Amount:  amount.InexactFloat64(),
		Count:   count,
	})
}

// PlaceRazorpayOrder handler
// @Summary Create a gateway order for checkout
// @Description Validates the address, recomputes the charge server-side and
// @Description returns the gateway order for the hosted widget
// @Tags Order
// @Accept json
// @Produce json
// @Param token header string true "Session token"
// @Param request body model.PlaceOrderRequest true "Order Request"
// @Success 200 {object} model.PlaceOrderResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/order/razorpay [post]
func (s *RestHandler) PlaceRazorpayOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSubject(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	order, err := s.CheckoutApp.Submit(ctx, sessionID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.PlaceOrderResponse{
		Success: true,
		Order:   *order,
	})
}

// VerifyRazorpay handler
// @Summary Verify a gateway payment callback
// @Description Confirms the payment against the gateway before marking the order paid
// @Tags Order
// @Accept json
// @Produce json
// @Param token header string true "Session token"
// @Param request body model.VerifyPaymentRequest true "Gateway callback payload"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/order/verifyRazorpay [post]
func (s *RestHandler) VerifyRazorpay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSubject(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CheckoutApp.CompletePayment(ctx, sessionID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Payment Successful")
}

func (s *RestHandler) UserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSubject(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	orders, err := s.OrderApp.UserOrders(ctx, sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.UserOrdersResponse{
		Success: true,
		Orders:  orders,
	})
}

func (s *RestHandler) CheckoutState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSubject(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res := struct {
		Success bool   `json:"success"`
		State   string `json:"state"`
	}{
		Success: true,
		State:   s.CheckoutApp.State(sessionID).String(),
	}

	writeSuccess(w, res)
}

// CheckoutFailed records a widget-reported payment failure so the attempt
// restarts from draft with the cart intact.
func (s *RestHandler) CheckoutFailed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, ok := utilsContext.GetSubject(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	s.CheckoutApp.ReportFailure(sessionID)
	writeMessage(w, "Payment Failure Recorded")
}

func (s *RestHandler) ExpireOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ExpireOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.ExpireOrder(ctx, req.OrderID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Order Expired")
}
