package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Settings holds the runtime configuration read once at startup.
// Everything comes from the environment (godotenv loads .env in main).
type Settings struct {
	Port     string
	Timezone *time.Location

	PollInterval time.Duration // how often the reminder poller ticks
	Tolerance    time.Duration // symmetric due window around a scheduled time

	TwilioPhoneNumber string
}

func LoadSettings() (*Settings, error) {
	tzName := os.Getenv("TIMEZONE")
	if tzName == "" {
		tzName = "Asia/Tashkent"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tzName, err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Settings{
		Port:              port,
		Timezone:          loc,
		PollInterval:      envSeconds("POLL_INTERVAL_SECONDS", 15),
		Tolerance:         envSeconds("REMINDER_TOLERANCE_SECONDS", 120),
		TwilioPhoneNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
	}, nil
}

func envSeconds(key string, def int) time.Duration {
	if env := os.Getenv(key); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(def) * time.Second
}
