package repositories

import (
	"context"

	"atlas/configs/databaseconfig"
	"atlas/configs/logconfig"
	"atlas/models"
	"atlas/requests"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IStateRepository interface {
	CountByCountry(ctx context.Context) ([]requests.StateCountRow, error)
	Create(ctx context.Context, state *models.State) error
}

type StateRepository struct {
	db *gorm.DB
}

func NewStateRepository() IStateRepository {
	return &StateRepository{db: databaseconfig.GetDB()}
}

// CountByCountry — eyaletleri country_id üzerinden gruplayıp
// ülke başına eyalet sayısını döner.
func (r *StateRepository) CountByCountry(ctx context.Context) ([]requests.StateCountRow, error) {
	countQuery := func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.State{}).
			Select("country_id, COUNT(id) AS state_count").
			Group("country_id").
			Order("country_id ASC")
	}

	// Üretilen SQL tanılama amacıyla loglanır.
	sql := r.db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []requests.StateCountRow
		return countQuery(tx).Find(&rows)
	})
	logconfig.SLog.Debugw("Eyalet sayım sorgusu", "sql", sql)

	var rows []requests.StateCountRow
	if err := countQuery(r.db.WithContext(ctx)).Scan(&rows).Error; err != nil {
		logconfig.Log.Error("Eyalet sayım sorgusu hatası", zap.Error(err))
		return nil, err
	}

	return rows, nil
}

func (r *StateRepository) Create(ctx context.Context, state *models.State) error {
	result := r.db.WithContext(ctx).Create(state)

	if result.Error != nil {
		logconfig.Log.Error("Eyalet oluşturma hatası",
			zap.String("name", state.Name),
			zap.Uint("country_id", state.CountryID),
			zap.Error(result.Error))
		return result.Error
	}

	return nil
}

var _ IStateRepository = (*StateRepository)(nil)
