package repository

import (
	"context"
	"time"

	"fieldbooking/internal/domain"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

type inventoryModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	Balls     int        `gorm:"column:balls;not null;default:0"`
	Shoes     int        `gorm:"column:shoes;not null;default:0"`
	Jerseys   int        `gorm:"column:jerseys;not null;default:0"`
	Gloves    int        `gorm:"column:gloves;not null;default:0"`
	CheckDate time.Time  `gorm:"column:check_date;type:date;index;not null"`
	UpdatedBy int64      `gorm:"column:updated_by;not null"`
	User      *userModel `gorm:"foreignKey:UpdatedBy;references:ID;constraint:OnDelete:RESTRICT"`
}

func (inventoryModel) TableName() string { return "inventory" }

func toDomainInventory(m inventoryModel) *domain.Inventory {
	return &domain.Inventory{
		ID:        m.ID,
		Balls:     m.Balls,
		Shoes:     m.Shoes,
		Jerseys:   m.Jerseys,
		Gloves:    m.Gloves,
		CheckDate: DateOnly(m.CheckDate),
		UpdatedBy: m.UpdatedBy,
	}
}

func toInventoryModel(i *domain.Inventory) inventoryModel {
	return inventoryModel{
		ID:        i.ID,
		Balls:     i.Balls,
		Shoes:     i.Shoes,
		Jerseys:   i.Jerseys,
		Gloves:    i.Gloves,
		CheckDate: DateOnly(i.CheckDate),
		UpdatedBy: i.UpdatedBy,
	}
}

func (r *InventoryRepository) Create(ctx context.Context, inv *domain.Inventory) error {
	m := toInventoryModel(inv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*inv = *toDomainInventory(m)
	return nil
}

// Latest returns the check with the greatest check date; among checks on the
// same date the most recently inserted wins.
func (r *InventoryRepository) Latest(ctx context.Context) (*domain.Inventory, error) {
	var m inventoryModel
	tx := r.db.WithContext(ctx).
		Order("check_date DESC").
		Order("id DESC").
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainInventory(m), nil
}
