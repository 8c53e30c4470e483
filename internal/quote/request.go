package quote

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jxt-gindran/jxingwebsite/internal/domain"
)

// FlowState is the quote request lifecycle position.
type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowSubmitting FlowState = "submitting"
	FlowSuccess    FlowState = "success"
)

// RequestFlow drives a single quote request from contact entry through
// delivery to the success hand-off. The flow is timing-agnostic: the UI
// decides how long the submitting and success phases are displayed and
// calls MarkDelivered and Finalize when they elapse.
type RequestFlow struct {
	state     FlowState
	items     []domain.QuoteLineItem
	onSuccess func()
	payload   *domain.QuoteRequest
	dismissed bool
}

// NewRequestFlow snapshots the selection for one request attempt. The
// onSuccess callback fires at most once, when the flow finalizes without
// having been dismissed.
func NewRequestFlow(items []domain.QuoteLineItem, onSuccess func()) *RequestFlow {
	snapshot := make([]domain.QuoteLineItem, len(items))
	copy(snapshot, items)
	return &RequestFlow{
		state:     FlowIdle,
		items:     snapshot,
		onSuccess: onSuccess,
	}
}

// State returns the current flow state.
func (f *RequestFlow) State() FlowState {
	return f.state
}

// Items returns the selection snapshot the request was opened with.
func (f *RequestFlow) Items() []domain.QuoteLineItem {
	return f.items
}

// Submit validates the contact details and moves the flow to submitting.
// Reports whether a submission actually started: repeated submits while
// one is in flight are ignored, not errors.
func (f *RequestFlow) Submit(contact domain.ContactDetails) (bool, error) {
	if f.state != FlowIdle {
		return false, nil
	}
	if err := contact.Validate(); err != nil {
		return false, fmt.Errorf("invalid contact details: %w", err)
	}
	f.payload = &domain.QuoteRequest{
		ID:        uuid.New().String(),
		Contact:   contact,
		Items:     f.items,
		Totals:    ComputeTotals(f.items),
		CreatedAt: time.Now().UTC(),
	}
	f.state = FlowSubmitting
	return true, nil
}

// Payload returns the request built by Submit, or nil before submission.
func (f *RequestFlow) Payload() *domain.QuoteRequest {
	return f.payload
}

// MarkDelivered records that the submission completed and enters the
// success phase. Ignored unless a submission is in flight.
func (f *RequestFlow) MarkDelivered() {
	if f.state == FlowSubmitting {
		f.state = FlowSuccess
	}
}

// Finalize ends the success phase and fires the onSuccess hand-off,
// unless the flow was dismissed first. Reports whether the callback ran.
func (f *RequestFlow) Finalize() bool {
	if f.state != FlowSuccess {
		return false
	}
	f.state = FlowIdle
	if f.dismissed {
		return false
	}
	f.dismissed = true
	if f.onSuccess != nil {
		f.onSuccess()
	}
	return true
}

// Dismiss abandons the flow. A dismissed flow never fires onSuccess,
// even if the success phase had already been reached.
func (f *RequestFlow) Dismiss() {
	f.state = FlowIdle
	f.dismissed = true
}
