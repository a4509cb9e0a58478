package inventory

import (
	"context"
	"time"

	"fieldbooking/internal/domain"
	"fieldbooking/internal/repository"
)

type Service struct {
	repo InventoryRepository
}

func NewService(repo InventoryRepository) *Service {
	return &Service{repo: repo}
}

// Create records a check attributed to userID.
func (s *Service) Create(ctx context.Context, userID int64, req CreateInventoryRequest) (*domain.Inventory, error) {
	day, err := time.Parse(dateLayout, req.CheckDate)
	if err != nil {
		return nil, ErrValidation
	}

	counts := []*int{req.Balls, req.Shoes, req.Jerseys, req.Gloves}
	for _, c := range counts {
		if c == nil || *c < 0 {
			return nil, ErrValidation
		}
	}

	inv := &domain.Inventory{
		Balls:     *req.Balls,
		Shoes:     *req.Shoes,
		Jerseys:   *req.Jerseys,
		Gloves:    *req.Gloves,
		CheckDate: day,
		UpdatedBy: userID,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) Latest(ctx context.Context) (*domain.Inventory, error) {
	inv, err := s.repo.Latest(ctx)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNoInventoryFound
		}
		return nil, err
	}
	return inv, nil
}
