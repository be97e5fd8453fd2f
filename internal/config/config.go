package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	DBDSN         string
	Environment   string

	// Telegram ID администраторов, им доступен /allbookings
	AdminTelegramIDs []int64

	BusinessStartHour   int
	BusinessEndHour     int
	SlotDurationMinutes int
	WindowDays          int
	Location            *time.Location
	GenerationInterval  time.Duration

	OpsAddr              string
	BookingRatePerMinute int

	// LogLevel уровень zap (debug, info, warn, error); пусто означает уровень по ENV
	LogLevel   string
	// LogOutputs пути вывода логов, по умолчанию stdout
	LogOutputs []string

	// EnvFileLoaded true, если переменные подгружены из .env
	EnvFileLoaded bool
}

func Load() (*Config, error) {
	// .env необязателен, переменные окружения имеют приоритет
	loaded := godotenv.Load(".env") == nil

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Environment:   getEnvString("ENV", "development"),
		OpsAddr:       getEnvString("OPS_ADDR", ":9090"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogOutputs:    parseList(getEnvString("LOG_OUTPUT", "stdout")),
		EnvFileLoaded: loaded,
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	var err error
	if cfg.AdminTelegramIDs, err = parseIDList(os.Getenv("ADMIN_TELEGRAM_IDS")); err != nil {
		return nil, fmt.Errorf("parse ADMIN_TELEGRAM_IDS: %w", err)
	}
	if cfg.BusinessStartHour, err = getEnvInt("BUSINESS_START_HOUR", 9); err != nil {
		return nil, err
	}
	if cfg.BusinessEndHour, err = getEnvInt("BUSINESS_END_HOUR", 17); err != nil {
		return nil, err
	}
	if cfg.SlotDurationMinutes, err = getEnvInt("SLOT_DURATION_MINUTES", 30); err != nil {
		return nil, err
	}
	if cfg.WindowDays, err = getEnvInt("WINDOW_DAYS", 7); err != nil {
		return nil, err
	}
	if cfg.BookingRatePerMinute, err = getEnvInt("BOOKING_RATE_PER_MINUTE", 20); err != nil {
		return nil, err
	}
	if cfg.GenerationInterval, err = getEnvDuration("GENERATION_INTERVAL", 24*time.Hour); err != nil {
		return nil, err
	}

	tz := getEnvString("CALENDAR_TIMEZONE", "UTC")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("load CALENDAR_TIMEZONE %q: %w", tz, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// IsAdmin проверяет, входит ли Telegram ID в список администраторов
func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminTelegramIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

// BotEnabled true, если задан токен бота
func (c *Config) BotEnabled() bool {
	return c.TelegramToken != ""
}

func (c *Config) validate() error {
	if c.BusinessStartHour < 0 || c.BusinessEndHour > 24 || c.BusinessStartHour >= c.BusinessEndHour {
		return fmt.Errorf("invalid business hours %d-%d", c.BusinessStartHour, c.BusinessEndHour)
	}
	if c.SlotDurationMinutes <= 0 {
		return fmt.Errorf("SLOT_DURATION_MINUTES must be positive, got %d", c.SlotDurationMinutes)
	}
	if c.WindowDays <= 0 {
		return fmt.Errorf("WINDOW_DAYS must be positive, got %d", c.WindowDays)
	}
	if c.GenerationInterval <= 0 {
		return fmt.Errorf("GENERATION_INTERVAL must be positive, got %s", c.GenerationInterval)
	}
	if c.BookingRatePerMinute <= 0 {
		return fmt.Errorf("BOOKING_RATE_PER_MINUTE must be positive, got %d", c.BookingRatePerMinute)
	}
	return nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", key, v, err)
	}
	return i, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", key, v, err)
	}
	return d, nil
}

func parseList(raw string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

func parseIDList(raw string) ([]int64, error) {
	ids := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
