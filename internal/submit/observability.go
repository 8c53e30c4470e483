package submit

import (
	"fmt"
	"io"
	"time"
)

// DeliveryEvent records metadata about one delivery attempt outcome.
type DeliveryEvent struct {
	RequestID string
	Target    string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about request deliveries for logging.
type Observer interface {
	OnDelivery(event DeliveryEvent)
}

// LogObserver writes delivery events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnDelivery(event DeliveryEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] quote_delivery request=%s target=%s latency_ms=%d status=%s\n",
		ts, event.RequestID, event.Target, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnDelivery(DeliveryEvent) {}
