package repositories

import (
	"context"

	"atlas/configs/databaseconfig"
	"atlas/configs/logconfig"
	"atlas/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ICountryRepository interface {
	ListBySortnameAsc(ctx context.Context, limit int) ([]models.Country, error)
	ListByPhonecodeDesc(ctx context.Context, limit int) ([]models.Country, error)
	ListFirst(ctx context.Context, limit int) ([]models.Country, error)
	ListDistinct(ctx context.Context, limit int) ([]models.Country, error)
	ListByIDRange(ctx context.Context, lo, hi uint, limit int) ([]models.Country, error)
	ListNames(ctx context.Context, limit int) ([]string, error)
	Create(ctx context.Context, country *models.Country) error
	DeleteByID(ctx context.Context, id uint) error
}

type CountryRepository struct {
	db *gorm.DB
}

func NewCountryRepository() ICountryRepository {
	return &CountryRepository{db: databaseconfig.GetDB()}
}

func (r *CountryRepository) listCountries(query *gorm.DB, operation string, fields ...zap.Field) ([]models.Country, error) {
	var countries []models.Country
	if err := query.Find(&countries).Error; err != nil {
		fields = append(fields, zap.Error(err))
		logconfig.Log.Error(operation+" hatası", fields...)
		return nil, err
	}
	return countries, nil
}

func (r *CountryRepository) ListBySortnameAsc(ctx context.Context, limit int) ([]models.Country, error) {
	return r.listCountries(
		r.db.WithContext(ctx).Order("sortname ASC").Limit(limit),
		"Ülke listeleme (sortname artan)",
		zap.Int("limit", limit),
	)
}

func (r *CountryRepository) ListByPhonecodeDesc(ctx context.Context, limit int) ([]models.Country, error) {
	return r.listCountries(
		r.db.WithContext(ctx).Order("phonecode DESC").Limit(limit),
		"Ülke listeleme (phonecode azalan)",
		zap.Int("limit", limit),
	)
}

func (r *CountryRepository) ListFirst(ctx context.Context, limit int) ([]models.Country, error) {
	return r.listCountries(
		r.db.WithContext(ctx).Limit(limit),
		"Ülke listeleme (sırasız)",
		zap.Int("limit", limit),
	)
}

func (r *CountryRepository) ListDistinct(ctx context.Context, limit int) ([]models.Country, error) {
	return r.listCountries(
		r.db.WithContext(ctx).Distinct().Limit(limit),
		"Ülke listeleme (distinct)",
		zap.Int("limit", limit),
	)
}

func (r *CountryRepository) ListByIDRange(ctx context.Context, lo, hi uint, limit int) ([]models.Country, error) {
	return r.listCountries(
		r.db.WithContext(ctx).Where("id BETWEEN ? AND ?", lo, hi).Limit(limit),
		"Ülke listeleme (id aralığı)",
		zap.Uint("lo", lo),
		zap.Uint("hi", hi),
	)
}

func (r *CountryRepository) ListNames(ctx context.Context, limit int) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Country{}).
		Limit(limit).
		Pluck("name", &names).Error
	if err != nil {
		logconfig.Log.Error("Ülke adı projeksiyonu hatası", zap.Error(err))
		return nil, err
	}
	return names, nil
}

func (r *CountryRepository) Create(ctx context.Context, country *models.Country) error {
	result := r.db.WithContext(ctx).Create(country)

	if result.Error != nil {
		logconfig.Log.Error("Ülke oluşturma hatası",
			zap.String("name", country.Name),
			zap.String("sortname", country.Sortname),
			zap.Error(result.Error))
		return result.Error
	}

	logconfig.Log.Info("Ülke kaydı oluşturuldu",
		zap.Uint("country_id", country.ID),
		zap.String("name", country.Name))

	return nil
}

// DeleteByID — ülkeyi siler; bağlı eyalet ve şehirler
// foreign key cascade ile depolama katmanında düşer.
func (r *CountryRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Country{}, id)

	if result.Error != nil {
		logconfig.Log.Error("Ülke silme hatası",
			zap.Uint("country_id", id),
			zap.Error(result.Error))
		return result.Error
	}

	if result.RowsAffected == 0 {
		logconfig.Log.Warn("Ülke silinemedi - kayıt bulunamadı",
			zap.Uint("country_id", id))
		return gorm.ErrRecordNotFound
	}

	return nil
}

var _ ICountryRepository = (*CountryRepository)(nil)
