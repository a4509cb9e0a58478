package catalog

import (
	"context"

	"fieldbooking/internal/domain"
)

type TimeSlotRepository interface {
	List(ctx context.Context) ([]domain.TimeSlot, error)
}

type Service struct {
	slots TimeSlotRepository
}

func NewService(slots TimeSlotRepository) *Service {
	return &Service{slots: slots}
}

func (s *Service) ListTimeSlots(ctx context.Context) ([]domain.TimeSlot, error) {
	slots, err := s.slots.List(ctx)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []domain.TimeSlot{}
	}
	return slots, nil
}
