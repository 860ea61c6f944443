package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBDriver          string
	DBHost            string
	DBPort            int
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBLogSQL          bool

	LogLevel slog.Level

	PixKey                string
	NearbyRadiusKm        float64
	MonitorSchedule       string
	MonitorStaleAfter     time.Duration
	RealtimeBufferSize    int
	ShutdownTimeout       time.Duration
	CreateSchemaOnStartup bool
}

// LoadConfig reads an optional .env file and then the environment. Variables already set
// in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "fooddelivery")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("DB_LOG_SQL", false)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PIX_KEY", "pix@fooddelivery.local")
	v.SetDefault("NEARBY_RADIUS_KM", 20)
	v.SetDefault("MONITOR_SCHEDULE", "0 * * * * *")
	v.SetDefault("MONITOR_STALE_AFTER", "10m")
	v.SetDefault("REALTIME_BUFFER_SIZE", 16)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	connMaxLifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return Config{}, fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err)
	}
	staleAfter, err := time.ParseDuration(v.GetString("MONITOR_STALE_AFTER"))
	if err != nil {
		return Config{}, fmt.Errorf("MONITOR_STALE_AFTER: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	var level slog.Level
	if err = level.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return Config{
		HTTPPort:              v.GetString("HTTP_PORT"),
		DBDriver:              strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:                v.GetString("DB_HOST"),
		DBPort:                v.GetInt("DB_PORT"),
		DBUser:                v.GetString("DB_USER"),
		DBPassword:            v.GetString("DB_PASSWORD"),
		DBName:                v.GetString("DB_NAME"),
		DBSslMode:             v.GetString("DB_SSLMODE"),
		DBMaxOpenConns:        v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:        v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:     connMaxLifetime,
		DBLogSQL:              v.GetBool("DB_LOG_SQL"),
		LogLevel:              level,
		PixKey:                v.GetString("PIX_KEY"),
		NearbyRadiusKm:        v.GetFloat64("NEARBY_RADIUS_KM"),
		MonitorSchedule:       v.GetString("MONITOR_SCHEDULE"),
		MonitorStaleAfter:     staleAfter,
		RealtimeBufferSize:    v.GetInt("REALTIME_BUFFER_SIZE"),
		ShutdownTimeout:       shutdownTimeout,
		CreateSchemaOnStartup: v.GetBool("DB_AUTO_MIGRATE"),
	}, nil
}

// DSN renders the connection string understood by both pgx and lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
