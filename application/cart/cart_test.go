package cart_test

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	appcart "github.com/Sanushoffl/toteebags/application/cart"
	"github.com/Sanushoffl/toteebags/constant"
	productmocks "github.com/Sanushoffl/toteebags/mocks/repository/product"
	"github.com/Sanushoffl/toteebags/model"
	cerr "github.com/Sanushoffl/toteebags/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const sessionID = "sess-1"

func TestCartApp_AddToCart(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx context.Context
		req *model.CartAddRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantCode constant.ErrorType
		wantErr  bool
	}{
		{
			name: "success: add sized product",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CartAddRequest{ItemID: "p1", Size: "M"},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, "p1").
					Return(&model.Product{ID: "p1", Name: "Canvas Tote", Price: 250, Sizes: []string{"S", "M"}}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: product without size variants needs no size",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CartAddRequest{ItemID: "p2"},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, "p2").
					Return(&model.Product{ID: "p2", Name: "Pouch", Price: 80}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: sized product without a size selection",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CartAddRequest{ItemID: "p1"},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, "p1").
					Return(&model.Product{ID: "p1", Name: "Canvas Tote", Price: 250, Sizes: []string{"S", "M"}}, nil).
					Once()
			},
			wantCode: constant.ErrSizeRequired,
			wantErr:  true,
		},
		{
			name: "error: unknown product",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CartAddRequest{ItemID: "missing", Size: "M"},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, "missing").
					Return(nil, nil).
					Once()
			},
			wantCode: constant.ErrNotFound,
			wantErr:  true,
		},
		{
			name: "error: repository GetByID returns error",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.CartAddRequest{ItemID: "p1", Size: "M"},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, "p1").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantCode: constant.ErrInternal,
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcart.NewCartApp(tt.fields.productRepo)

			err := app.AddToCart(tt.args.ctx, sessionID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddToCart() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.wantCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.wantCode])
				}
				return
			}

			items := app.GetCart(tt.args.ctx, sessionID)
			if items[tt.args.req.ItemID][tt.args.req.Size] != 1 {
				t.Fatalf("cart = %+v, want quantity 1 for %s/%s", items, tt.args.req.ItemID, tt.args.req.Size)
			}
		})
	}
}

func TestCartApp_AddToCart_Increments(t *testing.T) {
	ctx := context.Background()
	productRepo := productmocks.NewProductRepository(t)
	productRepo.
		On("GetByID", mock.Anything, "p1").
		Return(&model.Product{ID: "p1", Name: "Canvas Tote", Price: 250, Sizes: []string{"S", "M"}}, nil).
		Times(3)

	app := appcart.NewCartApp(productRepo)
	for i := 0; i < 2; i++ {
		if err := app.AddToCart(ctx, sessionID, &model.CartAddRequest{ItemID: "p1", Size: "M"}); err != nil {
			t.Fatalf("AddToCart() error = %v", err)
		}
	}
	if err := app.AddToCart(ctx, sessionID, &model.CartAddRequest{ItemID: "p1", Size: "S"}); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}

	items := app.GetCart(ctx, sessionID)
	if items["p1"]["M"] != 2 || items["p1"]["S"] != 1 {
		t.Fatalf("cart = %+v, want p1/M=2 p1/S=1", items)
	}
}

func TestCartApp_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	app := appcart.NewCartApp(productmocks.NewProductRepository(t))

	if err := app.UpdateQuantity(ctx, sessionID, &model.CartUpdateRequest{ItemID: "p1", Size: "M", Quantity: 4}); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}
	if got := app.GetCart(ctx, sessionID)["p1"]["M"]; got != 4 {
		t.Fatalf("quantity = %d, want 4", got)
	}

	// zero removes the entry entirely, not just sets it to 0
	if err := app.UpdateQuantity(ctx, sessionID, &model.CartUpdateRequest{ItemID: "p1", Size: "M", Quantity: 0}); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}
	items := app.GetCart(ctx, sessionID)
	if _, ok := items["p1"]; ok {
		t.Fatalf("cart = %+v, want p1 removed", items)
	}

	// zeroing an absent entry is a no-op
	if err := app.UpdateQuantity(ctx, "other-session", &model.CartUpdateRequest{ItemID: "p9", Size: "L", Quantity: 0}); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}
}

func TestCartApp_AmountAndCount(t *testing.T) {
	ctx := context.Background()
	productRepo := productmocks.NewProductRepository(t)

	app := appcart.NewCartApp(productRepo)
	if err := app.UpdateQuantity(ctx, sessionID, &model.CartUpdateRequest{ItemID: "p1", Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}
	if err := app.UpdateQuantity(ctx, sessionID, &model.CartUpdateRequest{ItemID: "gone", Size: "L", Quantity: 5}); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}

	// the repository only knows p1; "gone" was removed from the catalog
	productRepo.
		On("GetByIDs", mock.Anything, mock.Anything).
		Return([]model.Product{{ID: "p1", Name: "Canvas Tote", Price: 250}}, nil)

	amount, err := app.Amount(ctx, sessionID)
	if err != nil {
		t.Fatalf("Amount() error = %v", err)
	}
	if !amount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("Amount() = %s, want 500", amount)
	}

	count, err := app.Count(ctx, sessionID)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 2 {
		t.Fatalf("Count() = %d, want 2 (stale entries skipped)", count)
	}
}

func TestCartApp_OrderItems(t *testing.T) {
	ctx := context.Background()
	productRepo := productmocks.NewProductRepository(t)

	app := appcart.NewCartApp(productRepo)
	if err := app.UpdateQuantity(ctx, sessionID, &model.CartUpdateRequest{ItemID: "p1", Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}
	if err := app.UpdateQuantity(ctx, sessionID, &model.CartUpdateRequest{ItemID: "p2", Size: "", Quantity: 1}); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}
	if err := app.UpdateQuantity(ctx, sessionID, &model.CartUpdateRequest{ItemID: "gone", Size: "L", Quantity: 3}); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}

	productRepo.
		On("GetByIDs", mock.Anything, mock.Anything).
		Return([]model.Product{
			{ID: "p1", Name: "Canvas Tote", Price: 250, Image: []string{"p1.jpg"}},
			{ID: "p2", Name: "Pouch", Price: 80},
		}, nil).
		Once()

	got, err := app.OrderItems(ctx, sessionID)
	if err != nil {
		t.Fatalf("OrderItems() error = %v", err)
	}

	sort.Slice(got, func(i, j int) bool { return got[i].ProductID < got[j].ProductID })
	want := []model.OrderItem{
		{ProductID: "p1", Name: "Canvas Tote", Price: 250, Image: []string{"p1.jpg"}, Size: "M", Quantity: 2},
		{ProductID: "p2", Name: "Pouch", Price: 80, Size: "", Quantity: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("OrderItems() = %+v, want %+v", got, want)
	}
}

func TestCartApp_Clear(t *testing.T) {
	ctx := context.Background()
	app := appcart.NewCartApp(productmocks.NewProductRepository(t))

	if err := app.UpdateQuantity(ctx, sessionID, &model.CartUpdateRequest{ItemID: "p1", Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}
	app.Clear(sessionID)

	if items := app.GetCart(ctx, sessionID); len(items) != 0 {
		t.Fatalf("cart after Clear = %+v, want empty", items)
	}
}

func TestCartApp_GetCart_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	app := appcart.NewCartApp(productmocks.NewProductRepository(t))

	if err := app.UpdateQuantity(ctx, sessionID, &model.CartUpdateRequest{ItemID: "p1", Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("UpdateQuantity() error = %v", err)
	}

	items := app.GetCart(ctx, sessionID)
	items["p1"]["M"] = 99

	if got := app.GetCart(ctx, sessionID)["p1"]["M"]; got != 2 {
		t.Fatalf("quantity = %d, want 2 (GetCart must return a copy)", got)
	}
}
