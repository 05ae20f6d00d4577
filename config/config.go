package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	Timezone      string
	DBPath        string
	ReportsDir    string
	QueuerBaseURL string
	JWTSecret     string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		Timezone:      get("TZ", "America/New_York"),
		DBPath:        get("DB_PATH", "newsnexus.db"),
		ReportsDir:    get("PATH_REPORTS", "./resources/reports"),
		QueuerBaseURL: get("URL_QUEUER_BASE", ""),
		JWTSecret:     get("JWT_SECRET", ""),
	}
	log.Printf("[cfg] port=%s tz=%s db=%s reports=%s", cfg.Port, cfg.Timezone, cfg.DBPath, cfg.ReportsDir)
	return cfg
}
