package submit

import (
	"context"
	"time"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

// Submitter delivers a completed quote request to the agency.
type Submitter interface {
	Submit(ctx context.Context, req *domain.QuoteRequest) error
}

// Simulated is the default submitter: it waits for the configured delay
// and reports success without sending anything anywhere. Matches the
// no-backend deployment where requests only live in the local log.
type Simulated struct {
	Delay    time.Duration
	Observer Observer
}

func (s *Simulated) Submit(ctx context.Context, req *domain.QuoteRequest) error {
	start := time.Now()
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			s.observe(req, start, ctx.Err())
			return ctx.Err()
		}
	}
	s.observe(req, start, nil)
	return nil
}

func (s *Simulated) observe(req *domain.QuoteRequest, start time.Time, err error) {
	obs := s.Observer
	if obs == nil {
		obs = NoopObserver{}
	}
	event := DeliveryEvent{
		RequestID: req.ID,
		Target:    "simulated",
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		event.ErrorCode = "canceled"
	}
	obs.OnDelivery(event)
}
