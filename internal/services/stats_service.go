package services

import (
	"context"

	"github.com/Dias221467/Birthday_Wall/internal/models"
)

type WishCounter interface {
	CountWishes(ctx context.Context) (int64, error)
	SumLikes(ctx context.Context) (int64, error)
}

type SlideCounter interface {
	CountSlides(ctx context.Context) (int64, error)
}

type StatsService struct {
	wishes WishCounter
	slides SlideCounter
}

func NewStatsService(wishes WishCounter, slides SlideCounter) *StatsService {
	return &StatsService{wishes: wishes, slides: slides}
}

// Collect gathers the current wish, like and slide totals.
func (s *StatsService) Collect(ctx context.Context) (*models.Stats, error) {
	wishes, err := s.wishes.CountWishes(ctx)
	if err != nil {
		return nil, err
	}
	likes, err := s.wishes.SumLikes(ctx)
	if err != nil {
		return nil, err
	}
	slides, err := s.slides.CountSlides(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Stats{Wishes: wishes, Likes: likes, Slides: slides}, nil
}
