package db

import (
	"context"

	"github.com/terraincognita07/habitual/internal/models"
	"gorm.io/gorm"
)

type QuoteRepository struct {
	database *gorm.DB
}

func NewQuoteRepository(database *gorm.DB) *QuoteRepository {
	return &QuoteRepository{database: database}
}

func (repo *QuoteRepository) FindByOwnerAndDate(ctx context.Context, ownerID string, date string) (models.DailyQuote, bool, error) {
	quote := models.DailyQuote{}
	result := repo.database.WithContext(ctx).
		Where("owner_id = ? AND date = ?", ownerID, date).
		Limit(1).
		Find(&quote)
	if result.Error != nil {
		return models.DailyQuote{}, false, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.DailyQuote{}, false, nil
	}
	return quote, true, nil
}

func (repo *QuoteRepository) Create(ctx context.Context, quote *models.DailyQuote) error {
	return translateError(repo.database.WithContext(ctx).Create(quote).Error)
}

// DeleteBefore prunes quotes dated strictly before the ISO date cutoff.
func (repo *QuoteRepository) DeleteBefore(ctx context.Context, cutoff string) (int64, error) {
	result := repo.database.WithContext(ctx).Where("date < ?", cutoff).Delete(&models.DailyQuote{})
	if result.Error != nil {
		return 0, translateError(result.Error)
	}
	return result.RowsAffected, nil
}
