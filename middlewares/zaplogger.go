package middlewares

import (
	"strings"
	"time"

	"atlas/configs/logconfig"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ZapLogger — istek loglarını status koduna göre seviyelendirir.
func ZapLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if shouldSkipLog(path) {
			return c.Next()
		}

		start := time.Now()

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()
		method := c.Method()

		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.IP()),
		}

		if ua := c.Get("User-Agent"); ua != "" && len(ua) < 200 {
			fields = append(fields, zap.String("user_agent", ua))
		}

		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		logByStatus(fields, status, latency, method)

		return err
	}
}

func shouldSkipLog(path string) bool {
	if strings.HasPrefix(path, "/health") || path == "/favicon.ico" {
		return true
	}

	if strings.HasPrefix(path, "/.well-known/") {
		return true
	}

	return false
}

// logByStatus — status koduna göre log seviyesi seçer.
func logByStatus(fields []zap.Field, status int, latency time.Duration, method string) {
	msg := "request"

	if status >= 500 {
		msg = "server_error"
	} else if status >= 400 && status != 404 {
		msg = "client_error"
	} else if latency > time.Second {
		msg = "slow_request"
		fields = append(fields, zap.Bool("slow", true))
	}

	switch {
	case status >= 500:
		logconfig.Log.Error(msg, fields...)

	case status >= 400:
		if status == 404 {
			// 404 spam'i info seviyesinde kalsın
			logconfig.Log.Info(msg, fields...)
		} else {
			logconfig.Log.Warn(msg, fields...)
		}

	default:
		if method != "GET" || latency > 500*time.Millisecond {
			logconfig.Log.Info(msg, fields...)
		} else {
			logconfig.Log.Debug(msg, fields...)
		}
	}
}
