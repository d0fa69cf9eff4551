package httpclient

import (
	"context"
	"time"
)

// Observer receives executor events. Implementations must be safe for
// concurrent use and must not block.
type Observer interface {
	OnRequest(ctx context.Context, event RequestEvent)
	OnThrottled(ctx context.Context, event ThrottleEvent)
}

type RequestEvent struct {
	Method     string
	URL        string
	StatusCode int // 0 on transport failure
	Duration   time.Duration
}

type ThrottleEvent struct {
	Method    string
	URL       string
	RequestID string
	Message   string
	Attempt   int
	Wait      time.Duration
}

type nopObserver struct{}

func (nopObserver) OnRequest(context.Context, RequestEvent) {}

func (nopObserver) OnThrottled(context.Context, ThrottleEvent) {}
