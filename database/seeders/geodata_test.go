package seeders

import (
	"testing"

	"atlas/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(models.All()...))

	return db
}

func TestSeedGeoData(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedGeoData(db))

	var countries, states, cities int64
	require.NoError(t, db.Model(&models.Country{}).Count(&countries).Error)
	require.NoError(t, db.Model(&models.State{}).Count(&states).Error)
	require.NoError(t, db.Model(&models.City{}).Count(&cities).Error)

	assert.Equal(t, int64(len(geoData)), countries)
	assert.NotZero(t, states)
	assert.NotZero(t, cities)
}

func TestSeedGeoDataIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedGeoData(db))
	require.NoError(t, SeedGeoData(db))

	var countries int64
	require.NoError(t, db.Model(&models.Country{}).Count(&countries).Error)
	assert.Equal(t, int64(len(geoData)), countries)
}
