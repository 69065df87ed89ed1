package product

import (
	"context"
	"encoding/json"

	"github.com/Sanushoffl/toteebags/cmd/config"
	"github.com/Sanushoffl/toteebags/constant"
	"github.com/Sanushoffl/toteebags/model"
	productRepo "github.com/Sanushoffl/toteebags/repository/product"
	redisrepo "github.com/Sanushoffl/toteebags/repository/redis"
	"github.com/Sanushoffl/toteebags/utils/errors"
	"github.com/Sanushoffl/toteebags/utils/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const productListCacheKey = "product:list"

type ProductApp interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	AddProduct(ctx context.Context, req *model.ProductAddRequest) (string, error)
	UpdateProduct(ctx context.Context, req *model.ProductUpdateRequest) error
	RemoveProduct(ctx context.Context, id string) error
}

type productAppImpl struct {
	config      *config.Config
	productRepo productRepo.ProductRepository
	redisRepo   redisrepo.Repository
}

func NewProductApp(config *config.Config, productRepo productRepo.ProductRepository, redisRepo redisrepo.Repository) ProductApp {
	return &productAppImpl{config: config, productRepo: productRepo, redisRepo: redisRepo}
}

// ListProducts returns all products newest-first, cache-aside through redis.
func (s *productAppImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	if cached, err := s.redisRepo.Get(ctx, productListCacheKey); err == nil && cached != "" {
		var products []model.Product
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			return products, nil
		}
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if raw, err := json.Marshal(products); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, productListCacheKey, string(raw), s.config.Order.ProductCacheTTL); err != nil {
			logger.Warn("[ListProducts] error caching list", zap.String("error", err.Error()))
		}
	}

	return products, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	result, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return result, nil
}

// AddProduct persists a new product. The in-stock flag supplied by the
// client is discarded; it is derived from the stock quantity.
func (s *productAppImpl) AddProduct(ctx context.Context, req *model.ProductAddRequest) (string, error) {
	p := &model.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Image:         req.Image,
		StockQuantity: req.StockQuantity,
		InStock:       model.InStockFor(req.StockQuantity),
		Bestseller:    req.Bestseller,
		Sizes:         req.Sizes,
		Category:      req.Category,
		SubCategory:   req.SubCategory,
	}

	id, err := s.productRepo.Insert(ctx, p)
	if err != nil {
		logger.Error("[AddProduct] error productRepo.Insert", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidateListCache(ctx)
	return id, nil
}

// UpdateProduct writes price and stock only; the repository derives the
// in-stock flag in the same document write.
func (s *productAppImpl) UpdateProduct(ctx context.Context, req *model.ProductUpdateRequest) error {
	err := s.productRepo.UpdatePriceStock(ctx, req.ID, req.Price, req.StockQuantity)
	if err == mongo.ErrNoDocuments {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err != nil {
		logger.Error("[UpdateProduct] error productRepo.UpdatePriceStock", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *productAppImpl) RemoveProduct(ctx context.Context, id string) error {
	err := s.productRepo.Delete(ctx, id)
	if err == mongo.ErrNoDocuments {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err != nil {
		logger.Error("[RemoveProduct] error productRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.invalidateListCache(ctx)
	return nil
}

func (s *productAppImpl) invalidateListCache(ctx context.Context) {
	if err := s.redisRepo.Delete(ctx, productListCacheKey); err != nil {
		logger.Warn("[invalidateListCache] error redisRepo.Delete", zap.String("error", err.Error()))
	}
}
