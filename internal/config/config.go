package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppLang           string
	TranslationFolder string
	DateFormat        string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppLang:           getEnv("APP_LANG", "en"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		DateFormat:        getEnv("DATE_FORMAT", "02/01/2006"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
