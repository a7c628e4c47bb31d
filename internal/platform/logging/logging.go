package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/lumberjack.v2"

	"onboardhub/internal/platform/config"
)

// Setup installs a JSON slog logger writing to stdout and, when LOG_FILE is
// set, to a size-rotated file. The returned closer releases the file.
func Setup(cfg config.Config) io.Closer {
	writers := []io.Writer{os.Stdout}
	var file *lumberjack.Logger
	if cfg.LogFile != "" {
		file = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			LocalTime:  true,
		}
		writers = append(writers, file)
	}

	slog.SetDefault(New(io.MultiWriter(writers...), cfg.LogLevel))
	slog.Info("logger initialized", "level", cfg.LogLevel, "file", cfg.LogFile)
	if file == nil {
		return nopCloser{}
	}
	return file
}

func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
