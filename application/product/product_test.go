package product_test

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	appproduct "github.com/Sanushoffl/toteebags/application/product"
	"github.com/Sanushoffl/toteebags/cmd/config"
	"github.com/Sanushoffl/toteebags/constant"
	productmocks "github.com/Sanushoffl/toteebags/mocks/repository/product"
	redismocks "github.com/Sanushoffl/toteebags/mocks/repository/redis"
	"github.com/Sanushoffl/toteebags/model"
	cerr "github.com/Sanushoffl/toteebags/utils/errors"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
)

func testConfig() *config.Config {
	return &config.Config{
		Order: config.OrderConfig{
			Currency:        "INR",
			DeliveryFee:     10,
			PaymentWindow:   30 * time.Minute,
			ProductCacheTTL: 5 * time.Minute,
		},
	}
}

func TestProductApp_ListProducts(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx context.Context
	}
	products := []model.Product{
		{
			ID:            "68b1a2c3d4e5f60718293a4b",
			Name:          "Canvas Tote",
			Price:         250,
			StockQuantity: 12,
			InStock:       true,
		},
		{
			ID:            "68b1a2c3d4e5f60718293a4c",
			Name:          "Leather Tote",
			Price:         950,
			StockQuantity: 3,
			InStock:       true,
		},
	}
	cachedJSON, _ := json.Marshal(products)

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     []model.Product
		wantErr  bool
	}{
		{
			name: "success: cache miss falls through to repository and caches",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background()},
			mockCall: func(f fields) {
				f.redisRepo.
					On("Get", mock.Anything, "product:list").
					Return("", nil).
					Once()
				f.productRepo.
					On("List", mock.Anything).
					Return(products, nil).
					Once()
				f.redisRepo.
					On("SetWithTTL", mock.Anything, "product:list", mock.Anything, 5*time.Minute).
					Return(nil).
					Once()
			},
			want:    products,
			wantErr: false,
		},
		{
			name: "success: cache hit skips the repository",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background()},
			mockCall: func(f fields) {
				f.redisRepo.
					On("Get", mock.Anything, "product:list").
					Return(string(cachedJSON), nil).
					Once()
			},
			want:    products,
			wantErr: false,
		},
		{
			name: "error: repository List returns error",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background()},
			mockCall: func(f fields) {
				f.redisRepo.
					On("Get", mock.Anything, "product:list").
					Return("", nil).
					Once()
				f.productRepo.
					On("List", mock.Anything).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(testConfig(), tt.fields.productRepo, tt.fields.redisRepo)

			got, err := app.ListProducts(tt.args.ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInternal])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_GetProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		id  string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.Product
		wantCode constant.ErrorType
		wantErr  bool
	}{
		{
			name: "success: get product by id",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), id: "68b1a2c3d4e5f60718293a4b"},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, "68b1a2c3d4e5f60718293a4b").
					Return(&model.Product{
						ID:            "68b1a2c3d4e5f60718293a4b",
						Name:          "Canvas Tote",
						Price:         250,
						StockQuantity: 12,
						InStock:       true,
					}, nil).
					Once()
			},
			want: &model.Product{
				ID:            "68b1a2c3d4e5f60718293a4b",
				Name:          "Canvas Tote",
				Price:         250,
				StockQuantity: 12,
				InStock:       true,
			},
			wantErr: false,
		},
		{
			name: "error: unknown id returns not found",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), id: "missing"},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, "missing").
					Return(nil, nil).
					Once()
			},
			want:     nil,
			wantCode: constant.ErrNotFound,
			wantErr:  true,
		},
		{
			name: "error: repository GetByID returns error",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{ctx: context.Background(), id: "68b1a2c3d4e5f60718293a4b"},
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByID", mock.Anything, "68b1a2c3d4e5f60718293a4b").
					Return(nil, errors.New("db error")).
					Once()
			},
			want:     nil,
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
			app := appproduct.NewProductApp(testConfig(), tt.fields.productRepo, tt.fields.redisRepo)

			got, err := app.GetProduct(tt.args.ctx, tt.args.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProduct() error = %v, wantErr %v", err, tt.wantErr)
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

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetProduct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_AddProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.ProductAddRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     string
		wantErr  bool
	}{
		{
			name: "success: positive stock persists in-stock true regardless of payload",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ProductAddRequest{
					Name:          "Canvas Tote",
					Price:         250,
					StockQuantity: 3,
					InStock:       false, // client value is discarded
					Sizes:         []string{"S", "M"},
				},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("Insert", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
						return p.InStock && p.StockQuantity == 3
					})).
					Return("68b1a2c3d4e5f60718293a4b", nil).
					Once()
				f.redisRepo.
					On("Delete", mock.Anything, "product:list").
					Return(nil).
					Once()
			},
			want:    "68b1a2c3d4e5f60718293a4b",
			wantErr: false,
		},
		{
			name: "success: zero stock persists in-stock false regardless of payload",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ProductAddRequest{
					Name:          "Leather Tote",
					Price:         950,
					StockQuantity: 0,
					InStock:       true, // client value is discarded
				},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("Insert", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
						return !p.InStock && p.StockQuantity == 0
					})).
					Return("68b1a2c3d4e5f60718293a4c", nil).
					Once()
				f.redisRepo.
					On("Delete", mock.Anything, "product:list").
					Return(nil).
					Once()
			},
			want:    "68b1a2c3d4e5f60718293a4c",
			wantErr: false,
		},
		{
			name: "error: repository Insert returns error",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ProductAddRequest{Name: "Canvas Tote", Price: 250, StockQuantity: 3},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("Insert", mock.Anything, mock.Anything).
					Return("", errors.New("db error")).
					Once()
			},
			want:    "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(testConfig(), tt.fields.productRepo, tt.fields.redisRepo)

			got, err := app.AddProduct(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("AddProduct() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestProductApp_UpdateProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.ProductUpdateRequest
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
			name: "success: price and stock forwarded to repository",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ProductUpdateRequest{ID: "68b1a2c3d4e5f60718293a4b", Price: 275, StockQuantity: 3},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("UpdatePriceStock", mock.Anything, "68b1a2c3d4e5f60718293a4b", 275.0, int64(3)).
					Return(nil).
					Once()
				f.redisRepo.
					On("Delete", mock.Anything, "product:list").
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown id returns not found",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ProductUpdateRequest{ID: "missing", Price: 275, StockQuantity: 3},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("UpdatePriceStock", mock.Anything, "missing", 275.0, int64(3)).
					Return(mongo.ErrNoDocuments).
					Once()
			},
			wantCode: constant.ErrNotFound,
			wantErr:  true,
		},
		{
			name: "error: repository UpdatePriceStock returns error",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ProductUpdateRequest{ID: "68b1a2c3d4e5f60718293a4b", Price: 275, StockQuantity: 3},
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("UpdatePriceStock", mock.Anything, "68b1a2c3d4e5f60718293a4b", 275.0, int64(3)).
					Return(errors.New("db error")).
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
			app := appproduct.NewProductApp(testConfig(), tt.fields.productRepo, tt.fields.redisRepo)

			err := app.UpdateProduct(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.wantCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.wantCode])
				}
			}
		})
	}
}

func TestProductApp_RemoveProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		id       string
		mockCall func(f fields)
		wantCode constant.ErrorType
		wantErr  bool
	}{
		{
			name: "success: remove product",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			id: "68b1a2c3d4e5f60718293a4b",
			mockCall: func(f fields) {
				f.productRepo.
					On("Delete", mock.Anything, "68b1a2c3d4e5f60718293a4b").
					Return(nil).
					Once()
				f.redisRepo.
					On("Delete", mock.Anything, "product:list").
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown id returns not found",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
			},
			id: "missing",
			mockCall: func(f fields) {
				f.productRepo.
					On("Delete", mock.Anything, "missing").
					Return(mongo.ErrNoDocuments).
					Once()
			},
			wantCode: constant.ErrNotFound,
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(testConfig(), tt.fields.productRepo, tt.fields.redisRepo)

			err := app.RemoveProduct(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RemoveProduct() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.wantCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.wantCode])
				}
			}
		})
	}
}
