package user

import (
	"context"
	"time"

	"github.com/Sanushoffl/toteebags/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Mongo struct {
	col *mongo.Collection
}

type UserRepository interface {
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Insert(ctx context.Context, u *model.UserEntity) (string, error)
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &Mongo{col: db.Collection("users")}
}

// Get returns the first matching user, or nil when none exists.
func (r *Mongo) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := bson.M{}
	if filter.ID != "" {
		query["_id"] = filter.ID
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}

	var u model.UserEntity
	err := r.col.FindOne(ctx, query).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Mongo) Insert(ctx context.Context, u *model.UserEntity) (string, error) {
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return "", err
	}
	return u.ID, nil
}
