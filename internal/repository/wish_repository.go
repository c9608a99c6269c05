package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Dias221467/Birthday_Wall/internal/database"
	"github.com/Dias221467/Birthday_Wall/internal/models"
	"github.com/Dias221467/Birthday_Wall/pkg/apperrors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const wishesCollection = "wishes"

type WishRepository struct {
	db database.Provider
}

func NewWishRepository(db database.Provider) *WishRepository {
	return &WishRepository{db: db}
}

func (r *WishRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(wishesCollection), nil
}

// ListWishes returns every wish, newest first.
func (r *WishRepository) ListWishes(ctx context.Context) ([]models.Wish, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Store("failed to fetch wishes", err)
	}
	defer cursor.Close(ctx)

	wishes := []models.Wish{}
	if err := cursor.All(ctx, &wishes); err != nil {
		return nil, apperrors.Store("failed to decode wishes", err)
	}
	if wishes == nil {
		wishes = []models.Wish{}
	}
	return wishes, nil
}

// CreateWish inserts the wish and fills in its generated ID.
func (r *WishRepository) CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	result, err := coll.InsertOne(ctx, wish)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert wish")
		return nil, apperrors.Store("failed to create wish", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		wish.ID = id
	}
	return wish, nil
}

// IncrementLikes adds one like with a single $inc so concurrent likes are never lost.
// It never upserts.
func (r *WishRepository) IncrementLikes(ctx context.Context, id primitive.ObjectID) (*models.Wish, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$inc": bson.M{"likes": 1},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Wish
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("Wish", err)
	}
	if err != nil {
		logrus.WithError(err).WithField("wishID", id.Hex()).Error("Failed to increment likes")
		return nil, apperrors.Store("failed to like wish", err)
	}
	return &updated, nil
}

func (r *WishRepository) CountWishes(ctx context.Context) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	n, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, apperrors.Store("failed to count wishes", err)
	}
	return n, nil
}

// SumLikes totals the likes across all wishes.
func (r *WishRepository) SumLikes(ctx context.Context) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$likes"}}},
		}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, apperrors.Store("failed to sum likes", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, apperrors.Store("failed to decode like total", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
