package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DBPath       string
	UploadDir    string
	PublicBase   string
	KoboAPIURL   string
	KoboAssetID  string
	KoboAPIToken string
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
		Port:         get("PORT", "8080"),
		DBPath:       get("DB_PATH", "harvesta.db"),
		UploadDir:    get("UPLOAD_DIR", "uploads"),
		PublicBase:   get("PUBLIC_BASE", "/uploads"),
		KoboAPIURL:   get("KOBO_API_URL", "https://kf.kobotoolbox.org"),
		KoboAssetID:  get("KOBO_ASSET_ID", ""),
		KoboAPIToken: get("KOBO_API_TOKEN", ""),
	}
	log.Printf("[cfg] port=%s db=%s uploads=%s", cfg.Port, cfg.DBPath, cfg.UploadDir)
	return cfg
}
