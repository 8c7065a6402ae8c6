package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/SlotReveal_Go/internal/config"
	"github.com/osse101/SlotReveal_Go/internal/logger"
)

// SetupLogger initializes the application logger with stdout and a session log file.
// Old session files beyond the retention count are removed first.
// Returns the log file handle (caller must close).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(loggerConfig(cfg), io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port)

	slog.Debug(LogMsgConfigurationLoaded,
		"catalog_path", cfg.CatalogPath,
		"draw_mode", cfg.DrawMode,
		"auth_enabled", cfg.APIKey != "",
		"cors_origins", cfg.CORSAllowedOrigins)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}

	return logFile, nil
}

func loggerConfig(cfg *config.Config) logger.Config {
	return logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == config.EnvironmentDev,
	)
}

// cleanupLogs removes the oldest session logs so that at most keep remain
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	// Timestamped names sort chronologically
	sort.Strings(logFiles)

	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i], "error", err)
		}
	}
}
