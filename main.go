package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"atlas/configs/databaseconfig"
	"atlas/configs/envconfig"
	"atlas/configs/logconfig"
	"atlas/database/seeders"
	"atlas/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	envconfig.LoadIfDev()

	logconfig.InitLogger()
	defer logconfig.SyncLogger()

	appEnv := envconfig.String("APP_ENV", "development")
	logconfig.SLog.Infow("Runtime",
		"env", appEnv,
		"num_cpu", runtime.NumCPU(),
		"gomaxprocs", runtime.GOMAXPROCS(0),
	)

	databaseconfig.InitDB()
	defer databaseconfig.CloseDB()

	if envconfig.Bool("DB_SEED", true) {
		if err := seeders.SeedGeoData(databaseconfig.GetDB()); err != nil {
			logconfig.Log.Fatal("Başlangıç verisi yüklenemedi", zap.Error(err))
		}
	}

	engine := html.New("./views", ".html")
	if !envconfig.IsProd() {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		Views:       engine,
		Prefork:     false,
		IdleTimeout: 60 * time.Second,
		ReadTimeout: 30 * time.Second, WriteTimeout: 30 * time.Second,

		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				if !envconfig.IsProd() {
					message = e.Message
				}
			}

			logconfig.Log.Error("Fiber request error",
				zap.Error(err),
				zap.Int("status_code", code),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			return c.Status(code).SendString(message)
		},
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		db, _ := databaseconfig.GetDB().DB()
		dbOk := db.Ping() == nil

		status := 200
		if !dbOk {
			status = 503
		}

		return c.Status(status).JSON(fiber.Map{
			"ok":        dbOk,
			"database":  dbOk,
			"timestamp": time.Now().Unix(),
		})
	})

	app.Use(recover.New())

	routes.SetupRoutes(app)

	startServer(app)
}

func startServer(app *fiber.App) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := envconfig.Int("APP_PORT", 3000)
	host := envconfig.String("APP_HOST", "127.0.0.1")
	address := host + ":" + strconv.Itoa(port)

	go func() {
		logconfig.SLog.Infow("Uygulama dinleniyor",
			"env", envconfig.String("APP_ENV", "development"),
			"listen", address,
		)
		if err := app.Listen(address); err != nil {
			logconfig.Log.Fatal("Sunucu dinlenemedi", zap.String("address", address), zap.Error(err))
		}
	}()

	<-ctx.Done()
	logconfig.Log.Info("Kapatma sinyali alındı, uygulama kapatılıyor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logconfig.Log.Error("Sunucu kapatılırken hata oluştu", zap.Error(err))
	} else {
		logconfig.Log.Info("Sunucu başarıyla kapatıldı")
	}

	logconfig.Log.Info("Uygulama başarıyla sonlandırıldı.")
}
