package mocks

import (
	"context"
	"sync"

	"lodgehub/infras/otel"
)

// Otel hands out recording scopes and keeps them for inspection.
type Otel struct {
	mu     sync.Mutex
	Scopes []*Scope
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := &Scope{Name: spanName}

	o.mu.Lock()
	o.Scopes = append(o.Scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

// Find returns the first scope opened with spanName.
func (o *Otel) Find(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, scope := range o.Scopes {
		if scope.Name == spanName {
			return scope
		}
	}

	return nil
}

func NewOtel() otel.Otel {
	return &Otel{}
}
