// Package logger contains the shared logger for the server and the CLI
// client.
//
// It provides a zap logger writing to a rotated file (lumberjack) and a
// convenience method for logging HTTP requests.
package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// HTTPLogger wraps zap.Logger for HTTP event logging.
//
// Embedding *zap.Logger keeps all zap methods available directly.
type HTTPLogger struct {
	*zap.Logger
}

// NewHTTPLogger creates a file-backed zap logger with the default
// level ("info") and format ("console").
func NewHTTPLogger() *HTTPLogger {
	return NewHTTPLoggerWith("info", "console")
}

// NewHTTPLoggerWith creates a file-backed zap logger for HTTP logs.
//
// level is a zap level name ("debug", "info", "warn", "error");
// format selects the encoder, "json" or "console". Unknown values
// fall back to info/console.
//
// Logs go to runtime/logs/http.log with rotation
// (MaxSize/MaxBackups/MaxAge) and compressed archives.
// Time format: "HH:MM:SS DD.MM.YYYY".
func NewHTTPLoggerWith(level, format string) *HTTPLogger {
	logDir := filepath.Join("runtime", "logs")
	_ = os.MkdirAll(logDir, 0755)

	logFile := filepath.Join(logDir, "http.log")

	// lumberjack handles file rotation
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB
		MaxBackups: 10,
		MaxAge:     30, // days
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zap.InfoLevel
	}

	var encoder zapcore.Encoder
	if format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, lvl)

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &HTTPLogger{Logger: logger}
}

// LogRequest writes a structured log line about an HTTP request.
//
// method and uri describe the request,
// status is the response HTTP status,
// responseSize is the response size in bytes,
// duration is the handling time in milliseconds.
func (logger *HTTPLogger) LogRequest(method, uri string, status, responseSize int, duration float64) {
	logger.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	)
}

// customTimeEncoder formats log timestamps as "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
