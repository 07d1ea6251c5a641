package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DataDir    string
	ExportDir  string
	ServerPort string
	LogLevel   string
	AIAPIKey   string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DataDir:    getEnv("DATA_DIR", "data"),
		ExportDir:  getEnv("EXPORT_DIR", "export"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		AIAPIKey:   getEnv("AI_API_KEY", ""),
	}

	logger.Info().
		Str("data_dir", cfg.DataDir).
		Str("export_dir", cfg.ExportDir).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
