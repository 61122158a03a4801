package repositories

import (
	"context"

	"atlas/configs/databaseconfig"
	"atlas/configs/logconfig"
	"atlas/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ICityRepository interface {
	Create(ctx context.Context, city *models.City) error
	CountByState(ctx context.Context, stateID uint) (int64, error)
}

type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository() ICityRepository {
	return &CityRepository{db: databaseconfig.GetDB()}
}

func (r *CityRepository) Create(ctx context.Context, city *models.City) error {
	result := r.db.WithContext(ctx).Create(city)

	if result.Error != nil {
		logconfig.Log.Error("Şehir oluşturma hatası",
			zap.String("name", city.Name),
			zap.Uint("state_id", city.StateID),
			zap.Error(result.Error))
		return result.Error
	}

	return nil
}

func (r *CityRepository) CountByState(ctx context.Context, stateID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.City{}).
		Where("state_id = ?", stateID).
		Count(&count).Error
	if err != nil {
		logconfig.Log.Error("Şehir sayım hatası",
			zap.Uint("state_id", stateID),
			zap.Error(err))
		return 0, err
	}
	return count, nil
}

var _ ICityRepository = (*CityRepository)(nil)
