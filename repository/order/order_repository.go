package order

import (
	"context"

	"github.com/Sanushoffl/toteebags/constant"
	"github.com/Sanushoffl/toteebags/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Mongo struct {
	col *mongo.Collection
}

type OrderRepository interface {
	Insert(ctx context.Context, o *model.Order) (string, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*model.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, status constant.PaymentStatus) error
	ExpirePending(ctx context.Context, id string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &Mongo{col: db.Collection("orders")}
}

func (r *Mongo) Insert(ctx context.Context, o *model.Order) (string, error) {
	if o.ID == "" {
		o.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, o); err != nil {
		return "", err
	}
	return o.ID, nil
}

func (r *Mongo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Mongo) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*model.Order, error) {
	var o model.Order
	err := r.col.FindOne(ctx, bson.M{"gatewayOrderId": gatewayOrderID}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Mongo) UpdatePaymentStatus(ctx context.Context, id string, status constant.PaymentStatus) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"paymentStatus": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ExpirePending marks a still-pending order failed. Returns false when the
// order was already settled (paid or failed) and nothing changed.
func (r *Mongo) ExpirePending(ctx context.Context, id string) (bool, error) {
	filter := bson.M{"_id": id, "paymentStatus": constant.PaymentStatusPending}
	update := bson.M{"$set": bson.M{"paymentStatus": constant.PaymentStatusFailed}}
	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *Mongo) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	orders := make([]model.Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
