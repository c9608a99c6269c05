package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Dias221467/Birthday_Wall/internal/models"
	"github.com/Dias221467/Birthday_Wall/pkg/apperrors"
	"github.com/Dias221467/Birthday_Wall/pkg/validator"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishStore persists wishes.
type WishStore interface {
	ListWishes(ctx context.Context) ([]models.Wish, error)
	CreateWish(ctx context.Context, wish *models.Wish) (*models.Wish, error)
	IncrementLikes(ctx context.Context, id primitive.ObjectID) (*models.Wish, error)
}

// WishNotifier is told about wishes after they are stored.
type WishNotifier interface {
	WishCreated(wish models.Wish)
	WishLiked(wish models.Wish)
}

type WishService struct {
	store    WishStore
	val      *validator.Validator
	notifier WishNotifier
	now      func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewWishService creates a WishService. rng picks card colours; notifier may be nil.
func NewWishService(store WishStore, val *validator.Validator, rng *rand.Rand, notifier WishNotifier) *WishService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &WishService{
		store:    store,
		val:      val,
		notifier: notifier,
		now:      time.Now,
		rng:      rng,
	}
}

func (s *WishService) ListWishes(ctx context.Context) ([]models.Wish, error) {
	return s.store.ListWishes(ctx)
}

// CreateWish validates the request and stores a new wish with zero likes and a palette colour.
func (s *WishService) CreateWish(ctx context.Context, req models.CreateWishRequest) (*models.Wish, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Message = strings.TrimSpace(req.Message)
	if errs := s.val.ValidateStruct(&req); len(errs) > 0 {
		logrus.WithField("fields", errs).Warn("Rejected wish with missing fields")
		return nil, apperrors.Validation("Name and message are required")
	}

	now := s.now().UTC()
	wish := &models.Wish{
		Name:      req.Name,
		Message:   req.Message,
		Color:     s.pickColor(),
		Likes:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.store.CreateWish(ctx, wish)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"wishID": created.ID.Hex(),
		"color":  created.Color,
	}).Info("Wish created")
	if s.notifier != nil {
		s.notifier.WishCreated(*created)
	}
	return created, nil
}

// LikeWish adds one like. An id that is not a valid ObjectID cannot exist, so it is not found.
func (s *WishService) LikeWish(ctx context.Context, id string) (*models.Wish, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NotFound("Wish", err)
	}

	wish, err := s.store.IncrementLikes(ctx, objID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.WishLiked(*wish)
	}
	return wish, nil
}

func (s *WishService) pickColor() string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return PickColor(s.rng)
}
