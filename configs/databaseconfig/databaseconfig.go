package databaseconfig

import (
	"fmt"
	"time"

	"atlas/configs/envconfig"
	"atlas/configs/logconfig"
	"atlas/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

func InitDB() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		envconfig.String("DB_HOST", "127.0.0.1"),
		envconfig.String("DB_USER", "atlas"),
		envconfig.String("DB_PASSWORD", ""),
		envconfig.String("DB_NAME", "atlas"),
		envconfig.Int("DB_PORT", 5432),
		envconfig.String("DB_SSLMODE", "disable"),
		envconfig.String("DB_TIMEZONE", "Europe/Istanbul"),
	)

	logLevel := gormlogger.Warn
	if !envconfig.IsProd() {
		logLevel = gormlogger.Info
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(gormLogWriter{}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		logconfig.Log.Fatal("Veritabanı bağlantısı kurulamadı", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		logconfig.Log.Fatal("Veritabanı havuzu alınamadı", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(envconfig.Int("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(envconfig.Int("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(time.Duration(envconfig.Int("DB_CONN_MAX_LIFETIME_MIN", 30)) * time.Minute)

	if err := conn.AutoMigrate(models.All()...); err != nil {
		logconfig.Log.Fatal("Migrasyon başarısız", zap.Error(err))
	}

	db = conn
	logconfig.SLog.Infow("Veritabanı hazır",
		"host", envconfig.String("DB_HOST", "127.0.0.1"),
		"name", envconfig.String("DB_NAME", "atlas"),
	)
}

func GetDB() *gorm.DB {
	return db
}

// SetDB — testlerin sqlite tabanlı bağlantı enjekte etmesi için.
func SetDB(conn *gorm.DB) {
	db = conn
}

func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		logconfig.Log.Error("Veritabanı kapatılırken hata", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logconfig.Log.Error("Veritabanı kapatılamadı", zap.Error(err))
	}
}

type gormLogWriter struct{}

func (gormLogWriter) Printf(format string, args ...interface{}) {
	logconfig.SLog.Infof(format, args...)
}
