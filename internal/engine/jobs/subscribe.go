package jobs

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"sync"
	"time"
)

var (
	ErrEmptyEmail   = errors.New("email is required")
	ErrInvalidEmail = errors.New("email address is invalid")
)

// subscribeLatency simulates the registration round trip of the alerts
// backend that does not exist yet.
const subscribeLatency = 1500 * time.Millisecond

// Subscription is the confirmed alert registration returned to the caller.
type Subscription struct {
	Email    string `json:"email"`
	Query    string `json:"query,omitempty"`
	Location string `json:"location,omitempty"`
	Active   bool   `json:"active"`
}

// AlertFlow tracks the job-alert subscription for the current search context.
type AlertFlow struct {
	mu     sync.Mutex
	active bool
	email  string
	delay  time.Duration
}

// NewAlertFlow returns an inactive flow with the stock confirmation latency.
func NewAlertFlow() *AlertFlow {
	return &AlertFlow{delay: subscribeLatency}
}

// Subscribe validates email, waits out the simulated backend latency, then
// marks the flow active. An invalid address fails immediately with no delay.
func (f *AlertFlow) Subscribe(ctx context.Context, email, query, location string) (Subscription, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Subscription{}, ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Subscription{}, ErrInvalidEmail
	}

	f.mu.Lock()
	delay := f.delay
	f.mu.Unlock()

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Subscription{}, ctx.Err()
	case <-timer.C:
	}

	f.mu.Lock()
	f.active = true
	f.email = email
	f.mu.Unlock()

	return Subscription{Email: email, Query: query, Location: location, Active: true}, nil
}

// Reset clears the subscription. A new search starts a fresh alert context.
func (f *AlertFlow) Reset() {
	f.mu.Lock()
	f.active = false
	f.email = ""
	f.mu.Unlock()
}

// Active reports whether a subscription is confirmed for the current context.
func (f *AlertFlow) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// setDelayForTest overrides the confirmation latency.
func (f *AlertFlow) setDelayForTest(d time.Duration) {
	f.mu.Lock()
	f.delay = d
	f.mu.Unlock()
}
