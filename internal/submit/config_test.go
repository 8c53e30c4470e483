package submit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.WebhookURL)
	assert.Equal(t, "https://cal.com/jxingtech/book-a-free-consult", cfg.BookingURL)
	assert.Equal(t, 1500, cfg.SubmitDelayMs)
	assert.Equal(t, 2000, cfg.SuccessHoldMs)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.False(t, cfg.LogDeliveries)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JXING_WEBHOOK_URL", "https://hooks.example.com/quotes")
	t.Setenv("JXING_BOOKING_URL", "https://cal.com/other/slot")
	t.Setenv("JXING_SUBMIT_DELAY_MS", "100")
	t.Setenv("JXING_SUCCESS_HOLD_MS", "0")
	t.Setenv("JXING_WEBHOOK_MAX_RETRIES", "5")
	t.Setenv("JXING_LOG_DELIVERIES", "true")

	cfg := LoadConfig()
	assert.Equal(t, "https://hooks.example.com/quotes", cfg.WebhookURL)
	assert.Equal(t, "https://cal.com/other/slot", cfg.BookingURL)
	assert.Equal(t, 100, cfg.SubmitDelayMs)
	assert.Equal(t, 0, cfg.SuccessHoldMs)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.True(t, cfg.LogDeliveries)
}

func TestLoadConfig_IgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("JXING_SUBMIT_DELAY_MS", "soon")
	t.Setenv("JXING_WEBHOOK_TIMEOUT_MS", "-1")

	cfg := LoadConfig()
	assert.Equal(t, 1500, cfg.SubmitDelayMs)
	assert.Equal(t, 10000, cfg.WebhookTimeoutMs)
}

func TestConfig_Durations(t *testing.T) {
	cfg := Config{SubmitDelayMs: 1500, SuccessHoldMs: 2000}
	assert.Equal(t, 1500*time.Millisecond, cfg.SubmitDelay())
	assert.Equal(t, 2*time.Second, cfg.SuccessHold())
}
