package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Поддерживаемые движки хранилища.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	// Движок: sqlite (локальный файл, по умолчанию) или postgres.
	Driver string

	// Путь к файлу базы для sqlite.
	SQLitePath string

	// Параметры подключения для postgres.
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // минут

	LogLevel string
}

// LoadConfig читает конфигурацию из окружения; .env подхватывается,
// если лежит рядом.
func LoadConfig() (*Config, error) {
	// Отсутствие .env — штатная ситуация.
	_ = godotenv.Load()

	cfg := &Config{
		Driver:          getEnv("DB_DRIVER", DriverSQLite),
		SQLitePath:      getEnv("DB_PATH", defaultSQLitePath()),
		Host:            getEnv("DB_HOST", "localhost"),
		User:            getEnv("DB_USER", "remindcal"),
		Password:        getEnv("DB_PASSWORD", "remindcal"),
		Name:            getEnv("DB_NAME", "remindcal_db"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
		Port:            getEnvInt("DB_PORT", 5432),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	// минимальная валидация
	switch cfg.Driver {
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("invalid config: DB_PATH must not be empty")
		}
	case DriverPostgres:
		if cfg.Host == "" || cfg.User == "" || cfg.Name == "" {
			return nil, fmt.Errorf("invalid config: host/user/name must not be empty")
		}
	default:
		return nil, fmt.Errorf("invalid config: unknown DB_DRIVER %q", cfg.Driver)
	}

	return cfg, nil
}

// defaultSQLitePath кладёт базу в ~/.remindcal/calendar.db; без домашнего
// каталога — в рабочий каталог.
func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "calendar.db"
	}
	return filepath.Join(home, ".remindcal", "calendar.db")
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
