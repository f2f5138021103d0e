package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/catcoat/backend/internal/domain"
	"github.com/catcoat/backend/pkg/utils"
)

// maxItemErrorLen caps the error text embedded in dashboard entries.
const maxItemErrorLen = 120

// AdvisorService joins stored cats with live weather readings and coat
// recommendations.
type AdvisorService struct {
	weatherSvc *WeatherService
	repo       CatRepository
}

// NewAdvisorService creates a new advisor service
func NewAdvisorService(weatherSvc *WeatherService, repo CatRepository) *AdvisorService {
	return &AdvisorService{
		weatherSvc: weatherSvc,
		repo:       repo,
	}
}

// AdviceForCat resolves one stored cat, fetches its current weather and
// derives the day/night recommendation pair. Store and provider failures
// propagate to the caller.
func (s *AdvisorService) AdviceForCat(ctx context.Context, id uuid.UUID) (domain.CatAdvice, error) {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.CatAdvice{}, err
	}

	reading, err := s.weatherSvc.FetchCurrent(ctx, cat.Latitude, cat.Longitude)
	if err != nil {
		return domain.CatAdvice{}, err
	}

	return domain.CatAdvice{
		Cat:             cat.Summary(),
		Weather:         reading,
		Recommendations: RecommendBoth(reading),
	}, nil
}

// Dashboard aggregates every stored cat in store order. Weather is
// fetched sequentially, one cat at a time; a provider failure for one cat
// degrades that entry to its identity plus a capped error string and the
// loop moves on to the next cat.
func (s *AdvisorService) Dashboard(ctx context.Context) ([]domain.DashboardItem, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.DashboardItem, 0, len(cats))
	for _, cat := range cats {
		reading, err := s.weatherSvc.FetchCurrent(ctx, cat.Latitude, cat.Longitude)
		if err != nil {
			log.Printf("Dashboard weather fetch failed for cat %s: %v", cat.ID, err)
			items = append(items, domain.DashboardItem{
				Cat:   cat.Identity(),
				Error: utils.Truncate(err.Error(), maxItemErrorLen),
			})
			continue
		}

		pair := RecommendBoth(reading)
		items = append(items, domain.DashboardItem{
			Cat:             cat.Summary(),
			Weather:         &reading,
			Recommendations: &pair,
		})
	}

	return items, nil
}
