package db

import (
	"context"

	"github.com/terraincognita07/habitual/internal/models"
	"gorm.io/gorm"
)

type CheckInRepository struct {
	database *gorm.DB
}

func NewCheckInRepository(database *gorm.DB) *CheckInRepository {
	return &CheckInRepository{database: database}
}

func (repo *CheckInRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.CheckIn, error) {
	checkIns := make([]models.CheckIn, 0)
	if err := repo.database.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date ASC, created_at ASC").
		Find(&checkIns).Error; err != nil {
		return nil, translateError(err)
	}
	return checkIns, nil
}

func (repo *CheckInRepository) FindByHabitAndDate(ctx context.Context, habitID string, date string) (models.CheckIn, bool, error) {
	checkIn := models.CheckIn{}
	result := repo.database.WithContext(ctx).
		Where("habit_id = ? AND date = ?", habitID, date).
		Limit(1).
		Find(&checkIn)
	if result.Error != nil {
		return models.CheckIn{}, false, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.CheckIn{}, false, nil
	}
	return checkIn, true, nil
}

// Create inserts a check-in. A second check-in for the same habit and date fails with
// models.ErrDuplicateRecord because of uidx_checkins_habit_date.
func (repo *CheckInRepository) Create(ctx context.Context, checkIn *models.CheckIn) error {
	return translateError(repo.database.WithContext(ctx).Create(checkIn).Error)
}
