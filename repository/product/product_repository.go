package product

import (
	"context"
	"time"

	"github.com/Sanushoffl/toteebags/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Mongo struct {
	col *mongo.Collection
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)
	Insert(ctx context.Context, p *model.Product) (string, error)
	UpdatePriceStock(ctx context.Context, id string, price float64, stockQuantity int64) error
	Delete(ctx context.Context, id string) error
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &Mongo{col: db.Collection("products")}
}

// List returns every product, most-recently-created first.
func (r *Mongo) List(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := make([]model.Product, 0)
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Mongo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Mongo) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	products := make([]model.Product, 0, len(ids))
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Insert persists a new product. The derived in-stock flag is recomputed
// here so no caller can store it out of sync with the quantity.
func (r *Mongo) Insert(ctx context.Context, p *model.Product) (string, error) {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.RecomputeInStock()

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// UpdatePriceStock writes price and stockQuantity together with the derived
// in-stock flag in one document update, relying on the store's
// single-document atomicity.
func (r *Mongo) UpdatePriceStock(ctx context.Context, id string, price float64, stockQuantity int64) error {
	update := bson.M{"$set": bson.M{
		"price":         price,
		"stockQuantity": stockQuantity,
		"inStock":       model.InStockFor(stockQuantity),
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *Mongo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
