package llm

import (
	"context"
	"time"
)

// timeoutProvider bounds the duration of every Generate call.
type timeoutProvider struct {
	next Provider
	d    time.Duration
}

// WithDeadline wraps a provider so each Generate call is cancelled after
// the configured timeout. It sits outermost in the middleware chain, so
// the budget covers retries too.
func WithDeadline(next Provider, d time.Duration) Provider {
	if d <= 0 {
		return next
	}
	return &timeoutProvider{next: next, d: d}
}

func (p *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, p.d)
	defer cancel()
	return p.next.Generate(ctx, req)
}

func (p *timeoutProvider) ModelID() string {
	return p.next.ModelID()
}
