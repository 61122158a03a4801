package repositories

import (
	"testing"

	"atlas/configs/databaseconfig"
	"atlas/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB — bellek içi sqlite üzerinde temiz bir şema kurar ve
// paket genelindeki bağlantıyı test süresince değiştirir.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(models.All()...))

	databaseconfig.SetDB(db)
	t.Cleanup(func() {
		databaseconfig.SetDB(nil)
		_ = sqlDB.Close()
	})

	return db
}
