package services

import (
	"context"
	"strings"
	"time"

	"github.com/Dias221467/Birthday_Wall/internal/models"
	"github.com/Dias221467/Birthday_Wall/pkg/apperrors"
	"github.com/Dias221467/Birthday_Wall/pkg/validator"
	"github.com/sirupsen/logrus"
)

type SlideStore interface {
	ListSlides(ctx context.Context) ([]models.Slide, error)
	CreateSlide(ctx context.Context, slide *models.Slide) (*models.Slide, error)
}

type SlideService struct {
	store SlideStore
	val   *validator.Validator
	now   func() time.Time
}

func NewSlideService(store SlideStore, val *validator.Validator) *SlideService {
	return &SlideService{store: store, val: val, now: time.Now}
}

func (s *SlideService) ListSlides(ctx context.Context) ([]models.Slide, error) {
	return s.store.ListSlides(ctx)
}

// CreateSlide stores a carousel entry. Image, title and description are all required.
func (s *SlideService) CreateSlide(ctx context.Context, req models.CreateSlideRequest) (*models.Slide, error) {
	req.Image = strings.TrimSpace(req.Image)
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if errs := s.val.ValidateStruct(&req); len(errs) > 0 {
		logrus.WithField("fields", errs).Warn("Rejected slide with missing fields")
		return nil, apperrors.Validation("Image, title and description are required")
	}

	now := s.now().UTC()
	slide, err := s.store.CreateSlide(ctx, &models.Slide{
		Image:       req.Image,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("slideID", slide.ID.Hex()).Info("Slide created")
	return slide, nil
}
