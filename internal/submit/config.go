package submit

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for quote request delivery.
type Config struct {
	// WebhookURL enables real delivery when set; empty means the
	// simulated submitter is used.
	WebhookURL       string
	BookingURL       string
	SubmitDelayMs    int
	SuccessHoldMs    int
	WebhookTimeoutMs int
	MaxRetries       int
	LogDeliveries    bool
}

// DefaultConfig returns a Config with sensible defaults. Delivery is
// simulated by default.
func DefaultConfig() Config {
	return Config{
		WebhookURL:       "",
		BookingURL:       "https://cal.com/jxingtech/book-a-free-consult",
		SubmitDelayMs:    1500,
		SuccessHoldMs:    2000,
		WebhookTimeoutMs: 10000,
		MaxRetries:       2,
		LogDeliveries:    false,
	}
}

// LoadConfig reads delivery configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("JXING_WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("JXING_BOOKING_URL"); v != "" {
		cfg.BookingURL = v
	}
	if v := os.Getenv("JXING_SUBMIT_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.SubmitDelayMs = n
		}
	}
	if v := os.Getenv("JXING_SUCCESS_HOLD_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.SuccessHoldMs = n
		}
	}
	if v := os.Getenv("JXING_WEBHOOK_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WebhookTimeoutMs = n
		}
	}
	if v := os.Getenv("JXING_WEBHOOK_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("JXING_LOG_DELIVERIES"); v != "" {
		cfg.LogDeliveries, _ = strconv.ParseBool(v)
	}

	return cfg
}

// SubmitDelay returns the simulated submit phase duration.
func (c Config) SubmitDelay() time.Duration {
	return time.Duration(c.SubmitDelayMs) * time.Millisecond
}

// SuccessHold returns how long the success phase stays on screen before
// the booking hand-off.
func (c Config) SuccessHold() time.Duration {
	return time.Duration(c.SuccessHoldMs) * time.Millisecond
}
