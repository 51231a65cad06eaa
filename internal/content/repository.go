package content

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Get(ctx context.Context) (SiteContent, bool, error)
	Upsert(ctx context.Context, item SiteContent) error
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

// Get returns the singleton row and whether it exists; a missing row is not
// an error.
func (r *MongoRepository) Get(ctx context.Context) (SiteContent, bool, error) {
	var item SiteContent
	err := r.col.FindOne(ctx, bson.M{"key": singletonKey}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return SiteContent{}, false, nil
	}
	if err != nil {
		return SiteContent{}, false, err
	}
	return item, true, nil
}

// Upsert writes the whole row in one atomic operation keyed on the fixed
// singleton key; no existence check precedes it.
func (r *MongoRepository) Upsert(ctx context.Context, item SiteContent) error {
	item.Key = singletonKey
	update := bson.M{"$set": item}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"key": singletonKey}, update, opts)
	return err
}
