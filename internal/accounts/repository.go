package accounts

import (
	"context"
	"time"

	"folio-backend/internal/auth"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	Create(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	UpdatePassword(ctx context.Context, id, hash string, updatedAt time.Time) (bool, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, user User) error {
	_, err := r.col.InsertOne(ctx, user)
	return err
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (r *MongoRepository) UpdatePassword(ctx context.Context, id, hash string, updatedAt time.Time) (bool, error) {
	update := bson.M{
		"$set": bson.M{
			"password_hash": hash,
			"updated_at":    updatedAt,
		},
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id, "role": auth.RoleAdmin}, update)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
