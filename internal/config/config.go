package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultPointImageURL is the placeholder image assigned to every point at
// creation time. Points do not accept a caller-supplied image.
const DefaultPointImageURL = "https://images.unsplash.com/photo-1568835679605-ba674a4d12e1?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=300&q=50"

type Config struct {
	ListenAddr    string
	DBPath        string
	AssetBaseURL  string
	UploadsDir    string
	PointImageURL string
	LogLevel      string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":3333"),
		DBPath:        getEnv("DB_PATH", "./data/ecopontos.db"),
		AssetBaseURL:  getEnv("ASSET_BASE_URL", "http://localhost:3333/uploads"),
		UploadsDir:    getEnv("UPLOADS_DIR", "./uploads"),
		PointImageURL: getEnv("POINT_IMAGE_URL", DefaultPointImageURL),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
