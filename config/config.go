package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultTelegramAPIBase is the production Bot API host. Overridable so
// tests can point the client at a local server.
const DefaultTelegramAPIBase = "https://api.telegram.org"

type Config struct {
	Port string
	// Telegram delivery target
	BotToken        string
	ChatID          string
	TelegramAPIBase string
	// CORS: comma-separated allow-list, "*" allows any origin
	AllowedOrigins []string
	// Directory served for the landing page / lead form
	StaticDir string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	port := getEnv("PORT", "3000")

	cfg := &Config{
		Port:            port,
		BotToken:        getEnv("BOT_TOKEN", ""),
		ChatID:          getEnv("CHAT_ID", ""),
		TelegramAPIBase: strings.TrimRight(getEnv("TELEGRAM_API_BASE", DefaultTelegramAPIBase), "/"),
		AllowedOrigins:  splitOrigins(getEnv("ORIGIN", "http://localhost:"+port)),
		StaticDir:       getEnv("STATIC_DIR", "./web"),
	}

	// The server keeps running without credentials, but /api/lead answers
	// with a configuration error until both are provided.
	if cfg.BotToken == "" || cfg.ChatID == "" {
		log.Println("WARNING: BOT_TOKEN or CHAT_ID not set. /api/lead will fail until provided.")
	}

	return cfg, nil
}

// splitOrigins parses a comma-separated origin list, dropping empty entries.
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
