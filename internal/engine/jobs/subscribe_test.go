package jobs

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSubscribeValidation(t *testing.T) {
	f := NewAlertFlow()

	tests := []struct {
		name  string
		email string
		want  error
	}{
		{"empty", "", ErrEmptyEmail},
		{"blank", "   ", ErrEmptyEmail},
		{"no at sign", "not-an-email", ErrInvalidEmail},
		{"missing domain", "user@", ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			_, err := f.Subscribe(context.Background(), tt.email, "go developer", "")
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			// Validation failures return before the confirmation delay.
			if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
				t.Errorf("rejection took %v, should be immediate", elapsed)
			}
			if f.Active() {
				t.Error("flow active after rejected subscribe")
			}
		})
	}
}

func TestSubscribeConfirms(t *testing.T) {
	f := NewAlertFlow()
	f.setDelayForTest(time.Millisecond)

	sub, err := f.Subscribe(context.Background(), "dev@example.com", "go developer", "Berlin")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if !sub.Active || sub.Email != "dev@example.com" || sub.Query != "go developer" || sub.Location != "Berlin" {
		t.Errorf("unexpected subscription: %+v", sub)
	}
	if !f.Active() {
		t.Error("flow not active after subscribe")
	}

	f.Reset()
	if f.Active() {
		t.Error("flow active after reset")
	}
}

func TestSubscribeCancelled(t *testing.T) {
	f := NewAlertFlow()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Subscribe(ctx, "dev@example.com", "", "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if f.Active() {
		t.Error("flow active after cancelled subscribe")
	}
}
