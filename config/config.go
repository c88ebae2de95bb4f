package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Google Calendar service account credentials.
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	CalendarPageSize      int64  `mapstructure:"CALENDAR_PAGE_SIZE"`

	// Scheduling parameters. All durations are hours unless noted.
	OperatingStartHour  int     `mapstructure:"OPERATING_START_HOUR"`
	OperatingEndHour    int     `mapstructure:"OPERATING_END_HOUR"`
	SlotIntervalMinutes int     `mapstructure:"SLOT_INTERVAL_MINUTES"`
	TravelSpeedKmh      float64 `mapstructure:"TRAVEL_SPEED_KMH"`
	JobBufferHours      float64 `mapstructure:"JOB_BUFFER_HOURS"`

	// Business timezone: a fixed offset from UTC plus the IANA name written
	// onto created events.
	UTCOffsetHours   int    `mapstructure:"UTC_OFFSET_HOURS"`
	BusinessTimeZone string `mapstructure:"BUSINESS_TIMEZONE"`

	// Redis configuration (fleet roster cache).
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisFleetDB         int    `mapstructure:"REDIS_FLEET_DB"`
	FleetCacheTTLSeconds int    `mapstructure:"FLEET_CACHE_TTL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "10000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("CALENDAR_PAGE_SIZE", 250)
	viper.SetDefault("OPERATING_START_HOUR", 6)
	viper.SetDefault("OPERATING_END_HOUR", 20)
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	viper.SetDefault("TRAVEL_SPEED_KMH", 35.0)
	viper.SetDefault("JOB_BUFFER_HOURS", 1.0)
	viper.SetDefault("UTC_OFFSET_HOURS", -5)
	viper.SetDefault("BUSINESS_TIMEZONE", "America/Bogota")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_FLEET_DB", 0)
	viper.SetDefault("FLEET_CACHE_TTL", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// BusinessLocation returns the fixed-offset location all scheduling math is
// anchored to. The offset never observes DST.
func BusinessLocation() *time.Location {
	offset := AppConfig.UTCOffsetHours
	if offset == 0 {
		offset = -5
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", offset), offset*3600)
}
