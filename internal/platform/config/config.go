package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool

	StorageDriver string
	DatabaseURL   string
	SQLiteDSN     string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Office clock and booking rules
	OfficeLocation *time.Location
	OfficeOpen     string
	OfficeClose    string
	SlotMinutes    int
	LeadTime       time.Duration
	OfficeNetworks []string
	SweepInterval  time.Duration

	LoginRateLimit     string
	APIRateLimit       string
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string

	BootstrapAdminEmail    string
	BootstrapAdminPassword string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_DSN", "file:deskbook.db?_foreign_keys=on")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "desk-booking-app")
	viper.SetDefault("OFFICE_TIMEZONE", "UTC")
	viper.SetDefault("OFFICE_OPEN", "08:00")
	viper.SetDefault("OFFICE_CLOSE", "18:00")
	viper.SetDefault("SLOT_MINUTES", 30)
	viper.SetDefault("LEAD_TIME", "2h")
	viper.SetDefault("OFFICE_NETWORKS", "")
	viper.SetDefault("SWEEP_INTERVAL", "1h")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("API_RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("BOOTSTRAP_ADMIN_EMAIL", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                   viper.GetString("PORT"),
		IsProduction:           viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:          viper.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:          viper.GetBool("RUN_MIGRATIONS"),
		StorageDriver:          strings.ToLower(viper.GetString("STORAGE_DRIVER")),
		DatabaseURL:            viper.GetString("PGSQL_URL"),
		SQLiteDSN:              viper.GetString("SQLITE_DSN"),
		JWTSecret:              viper.GetString("JWT_SECRET"),
		JWTIssuer:              viper.GetString("JWT_ISSUER"),
		OfficeOpen:             viper.GetString("OFFICE_OPEN"),
		OfficeClose:            viper.GetString("OFFICE_CLOSE"),
		SlotMinutes:            viper.GetInt("SLOT_MINUTES"),
		OfficeNetworks:         splitList(viper.GetString("OFFICE_NETWORKS")),
		LoginRateLimit:         viper.GetString("LOGIN_RATE_LIMIT"),
		APIRateLimit:           viper.GetString("API_RATE_LIMIT"),
		CORSAllowedOrigins:     splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:          viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:        viper.GetString("POSTHOG_ENDPOINT"),
		BootstrapAdminEmail:    viper.GetString("BOOTSTRAP_ADMIN_EMAIL"),
		BootstrapAdminPassword: viper.GetString("BOOTSTRAP_ADMIN_PASSWORD"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StorageDriverSQLite:
		if cfg.SQLiteDSN == "" {
			return nil, fmt.Errorf("SQLITE_DSN must be set when STORAGE_DRIVER is %s", StorageDriverSQLite)
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", time.Hour)
	cfg.LeadTime = durationOrDefault("LEAD_TIME", 2*time.Hour)
	cfg.SweepInterval = durationOrDefault("SWEEP_INTERVAL", time.Hour)

	tz := viper.GetString("OFFICE_TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_TIMEZONE %q: %w", tz, err)
	}
	cfg.OfficeLocation = loc

	if cfg.SlotMinutes <= 0 || cfg.SlotMinutes > 24*60 {
		log.Printf("Warning: Invalid value for SLOT_MINUTES (%d). Defaulting to 30.\n", cfg.SlotMinutes)
		cfg.SlotMinutes = 30
	}

	if len(cfg.OfficeNetworks) == 0 {
		log.Println("Warning: OFFICE_NETWORKS not set. Check-in will be refused for everyone.")
	}

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
