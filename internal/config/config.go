package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config структура конфигурации
type Config struct {
	Port        string
	JWTSecret   string
	SessionFile string
	AppEnv      string
}

// LoadConfig загружает переменные из .env
func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ .env файл не найден, используем переменные окружения")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		SessionFile: getEnv("SESSION_FILE", "rewear_session.json"),
		AppEnv:      getEnv("APP_ENV", "production"),
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv == "production" {
			log.Fatal("❌ Ошибка: Не задана переменная окружения JWT_SECRET")
		}
		cfg.JWTSecret = "rewear-dev-secret"
		log.Println("⚠️ JWT_SECRET не задан, используем ключ для разработки")
	}

	return cfg
}

// getEnv получает переменную окружения или использует дефолтное значение
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
