package inventory

import (
	"context"

	"fieldbooking/internal/domain"
)

type InventoryRepository interface {
	Create(ctx context.Context, inv *domain.Inventory) error
	Latest(ctx context.Context) (*domain.Inventory, error)
}
