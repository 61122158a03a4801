package logconfig

import (
	"atlas/configs/envconfig"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log ve SLog InitLogger çağrılana kadar no-op'tur;
// testler logger kurulumu yapmadan da çalışabilir.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

func InitLogger() {
	var cfg zap.Config

	if envconfig.IsProd() {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level := envconfig.String("LOG_LEVEL", "")
	if level != "" {
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(parsed)
		}
	}

	logger, err := cfg.Build()
	if err != nil {
		panic("logger oluşturulamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

func SyncLogger() {
	_ = Log.Sync()
}
