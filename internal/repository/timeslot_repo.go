package repository

import (
	"context"

	"fieldbooking/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimeSlotRepository struct {
	db *gorm.DB
}

func NewTimeSlotRepository(db *gorm.DB) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

type timeSlotModel struct {
	ID        int64   `gorm:"column:id;primaryKey"`
	ShiftName string  `gorm:"column:shift_name;size:64;uniqueIndex;not null"`
	StartTime string  `gorm:"column:start_time;size:5;not null"`
	EndTime   string  `gorm:"column:end_time;size:5;not null"`
	Price     float64 `gorm:"column:price;not null"`
}

func (timeSlotModel) TableName() string { return "time_slots" }

func toDomainTimeSlot(m timeSlotModel) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:        m.ID,
		ShiftName: m.ShiftName,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Price:     m.Price,
	}
}

func toTimeSlotModel(s *domain.TimeSlot) timeSlotModel {
	return timeSlotModel{
		ID:        s.ID,
		ShiftName: s.ShiftName,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Price:     s.Price,
	}
}

func (r *TimeSlotRepository) List(ctx context.Context) ([]domain.TimeSlot, error) {
	var rows []timeSlotModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.TimeSlot, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainTimeSlot(m))
	}
	return out, nil
}

func (r *TimeSlotRepository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	var m timeSlotModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainTimeSlot(m), nil
}

// CreateIfAbsent inserts slot unless its shift name already exists. It
// reports whether a row was written.
func (r *TimeSlotRepository) CreateIfAbsent(ctx context.Context, slot *domain.TimeSlot) (bool, error) {
	m := toTimeSlotModel(slot)
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shift_name"}},
			DoNothing: true,
		}).
		Create(&m)
	if tx.Error != nil {
		return false, tx.Error
	}
	if tx.RowsAffected == 0 {
		return false, nil
	}
	*slot = *toDomainTimeSlot(m)
	return true, nil
}

func (r *TimeSlotRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&timeSlotModel{}).Count(&n).Error
	return n, err
}
