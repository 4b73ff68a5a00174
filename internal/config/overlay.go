package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// OverlayEnv lets a .env file or process env override the file config.
// Missing .env is not an error; the file is purely a dev convenience.
func OverlayEnv(cfg *Config, dotenvPath string) {
	if dotenvPath != "" {
		_ = godotenv.Load(dotenvPath)
	}

	if v := strings.TrimSpace(os.Getenv("INTERNLINK_API_URL")); v != "" {
		cfg.Remote.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("INTERNLINK_ADDR")); v != "" {
		cfg.App.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("INTERNLINK_DATA_DIR")); v != "" {
		cfg.App.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("INTERNLINK_IMAP_USERNAME")); v != "" {
		cfg.Mailwatch.Username = v
	}
}
