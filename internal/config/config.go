package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database    DatabaseConfig
	App         AppConfig
	Office      OfficeConfig
	PunchWindow PunchWindowConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	CORSOrigins []string
}

// OfficeConfig holds the fixed office coordinate and geofence policy.
// When GeofenceEnabled is false the check-in flow skips the location
// checks entirely, matching deployments without geolocation.
type OfficeConfig struct {
	Latitude        float64
	Longitude       float64
	RadiusMeters    float64
	GeofenceEnabled bool
}

// PunchWindowConfig holds the punch-in window boundaries as local
// wall-clock times and the fixed UTC offset they are evaluated in.
type PunchWindowConfig struct {
	Start     string
	End       string
	UTCOffset string
	ZoneLabel string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendly_checkin"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Office geofence configuration
	officeLat, err := strconv.ParseFloat(getEnv("OFFICE_LATITUDE", "12.990461"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LATITUDE: %w", err)
	}
	officeLon, err := strconv.ParseFloat(getEnv("OFFICE_LONGITUDE", "80.220037"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LONGITUDE: %w", err)
	}
	radius, err := strconv.ParseFloat(getEnv("GEOFENCE_RADIUS_METERS", "200"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_RADIUS_METERS: %w", err)
	}
	geofenceEnabled, err := strconv.ParseBool(getEnv("GEOFENCE_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_ENABLED: %w", err)
	}

	config.Office = OfficeConfig{
		Latitude:        officeLat,
		Longitude:       officeLon,
		RadiusMeters:    radius,
		GeofenceEnabled: geofenceEnabled,
	}

	// Punch-in window configuration
	config.PunchWindow = PunchWindowConfig{
		Start:     getEnv("PUNCH_WINDOW_START", "09:00"),
		End:       getEnv("PUNCH_WINDOW_END", "09:45"),
		UTCOffset: getEnv("TIME_OFFSET", "+05:30"),
		ZoneLabel: getEnv("TIME_ZONE_LABEL", "IST"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Office.Latitude < -90 || c.Office.Latitude > 90 {
		return fmt.Errorf("OFFICE_LATITUDE must be within [-90, 90]")
	}
	if c.Office.Longitude < -180 || c.Office.Longitude > 180 {
		return fmt.Errorf("OFFICE_LONGITUDE must be within [-180, 180]")
	}
	if c.Office.RadiusMeters <= 0 {
		return fmt.Errorf("GEOFENCE_RADIUS_METERS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
