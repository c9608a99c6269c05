package repository

import (
	"context"

	"github.com/Dias221467/Birthday_Wall/internal/database"
	"github.com/Dias221467/Birthday_Wall/internal/models"
	"github.com/Dias221467/Birthday_Wall/pkg/apperrors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const slidesCollection = "slides"

type SlideRepository struct {
	db database.Provider
}

func NewSlideRepository(db database.Provider) *SlideRepository {
	return &SlideRepository{db: db}
}

func (r *SlideRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(slidesCollection), nil
}

// ListSlides returns slides in carousel order, oldest first.
func (r *SlideRepository) ListSlides(ctx context.Context) ([]models.Slide, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Store("failed to fetch slides", err)
	}
	defer cursor.Close(ctx)

	slides := []models.Slide{}
	if err := cursor.All(ctx, &slides); err != nil {
		return nil, apperrors.Store("failed to decode slides", err)
	}
	if slides == nil {
		slides = []models.Slide{}
	}
	return slides, nil
}

func (r *SlideRepository) CreateSlide(ctx context.Context, slide *models.Slide) (*models.Slide, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	result, err := coll.InsertOne(ctx, slide)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert slide")
		return nil, apperrors.Store("failed to create slide", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		slide.ID = id
	}
	return slide, nil
}

func (r *SlideRepository) CountSlides(ctx context.Context) (int64, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	n, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, apperrors.Store("failed to count slides", err)
	}
	return n, nil
}
