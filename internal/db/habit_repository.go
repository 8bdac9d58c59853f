package db

import (
	"context"

	"github.com/terraincognita07/habitual/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("is_active DESC, start_date DESC, created_at DESC").
		Find(&habits).Error; err != nil {
		return nil, translateError(err)
	}
	return habits, nil
}

func (repo *HabitRepository) FindActive(ctx context.Context, ownerID string) (models.Habit, bool, error) {
	return repo.findOne(ctx, "owner_id = ? AND is_active = ?", ownerID, true)
}

func (repo *HabitRepository) FindByOwnerAndID(ctx context.Context, ownerID string, habitID string) (models.Habit, bool, error) {
	return repo.findOne(ctx, "owner_id = ? AND id = ?", ownerID, habitID)
}

func (repo *HabitRepository) findOne(ctx context.Context, query string, args ...any) (models.Habit, bool, error) {
	habit := models.Habit{}
	result := repo.database.WithContext(ctx).Where(query, args...).Limit(1).Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

// ReplaceActive deactivates the owner's current habit and inserts habit as the new active one
// in a single transaction.
func (repo *HabitRepository) ReplaceActive(ctx context.Context, habit *models.Habit) error {
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Habit{}).
			Where("owner_id = ? AND is_active = ?", habit.OwnerID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		habit.IsActive = true
		return tx.Create(habit).Error
	})
	return translateError(err)
}

func (repo *HabitRepository) Update(ctx context.Context, habitID string, patch map[string]any) (models.Habit, error) {
	database := repo.database.WithContext(ctx)
	result := database.Model(&models.Habit{}).Where("id = ?", habitID).Updates(patch)
	if result.Error != nil {
		return models.Habit{}, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, models.ErrRecordNotFound
	}

	var habit models.Habit
	if err := database.Where("id = ?", habitID).First(&habit).Error; err != nil {
		return models.Habit{}, translateError(err)
	}
	return habit, nil
}

// DeleteWithCheckIns removes the habit and every check-in recorded against it.
func (repo *HabitRepository) DeleteWithCheckIns(ctx context.Context, ownerID string, habitID string) error {
	err := repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.CheckIn{}).Error; err != nil {
			return err
		}
		result := tx.Where("owner_id = ? AND id = ?", ownerID, habitID).Delete(&models.Habit{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translateError(err)
}
