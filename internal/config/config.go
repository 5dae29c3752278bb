package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/nvbit/SLN-SlotService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig настройки расписания салона и процесса бронирования
//
// OpenHour/CloseHour задают рабочие часы [open, close), SlotIntervalMinutes - шаг
// сетки слотов, ClosedWeekdays - выходные дни (0 = воскресенье).
// HoldTTLSeconds и SweepIntervalSeconds управляют временными холдами,
// NextSlotHorizonDays ограничивает поиск ближайшего свободного слота.
type BookingConfig struct {
	OpenHour             int   `toml:"open_hour"`
	CloseHour            int   `toml:"close_hour"`
	SlotIntervalMinutes  int   `toml:"slot_interval_minutes"`
	ClosedWeekdays       []int `toml:"closed_weekdays"`
	HoldTTLSeconds       int   `toml:"hold_ttl_seconds"`
	SweepIntervalSeconds int   `toml:"sweep_interval_seconds"`
	NextSlotHorizonDays  int   `toml:"next_slot_horizon_days"`
	SessionTTLMinutes    int   `toml:"session_ttl_minutes"`
}

// Load загружает конфигурацию из TOML файла и применяет дефолтные значения
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию с дефолтными значениями
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "sln-slot-service",
		},
		Booking: BookingConfig{
			OpenHour:             9,
			CloseHour:            18,
			SlotIntervalMinutes:  30,
			ClosedWeekdays:       []int{0}, // воскресенье
			HoldTTLSeconds:       300,
			SweepIntervalSeconds: 60,
			NextSlotHorizonDays:  30,
			SessionTTLMinutes:    30,
		},
	}
}

// validate проверяет обязательные поля конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	for _, wd := range c.Booking.ClosedWeekdays {
		if wd < 0 || wd > 6 {
			return fmt.Errorf("config: invalid closed weekday %d", wd)
		}
	}
	if c.Booking.SlotIntervalMinutes < domain.MinSlotIntervalMinutes ||
		c.Booking.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("config: slot_interval_minutes must be between %d and %d",
			domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}
	if c.Booking.HoldTTLSeconds <= 0 {
		return fmt.Errorf("config: booking.hold_ttl_seconds must be positive")
	}
	if c.Booking.SweepIntervalSeconds <= 0 {
		return fmt.Errorf("config: booking.sweep_interval_seconds must be positive")
	}
	if c.Booking.NextSlotHorizonDays <= 0 {
		return fmt.Errorf("config: booking.next_slot_horizon_days must be positive")
	}
	return nil
}
