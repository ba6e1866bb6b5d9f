// Package middleware provides interceptors wrapped around event dispatch.
package middleware

import (
	"log/slog"
	"time"

	"github.com/mmynk/eatnsplit/internal/selection"
)

// DispatchFunc handles one event and reports whether it changed anything.
type DispatchFunc func(ev selection.Event) bool

// Interceptor wraps a DispatchFunc.
type Interceptor func(next DispatchFunc) DispatchFunc

// Chain applies interceptors so the first one listed runs outermost.
func Chain(next DispatchFunc, interceptors ...Interceptor) DispatchFunc {
	for i := len(interceptors) - 1; i >= 0; i-- {
		next = interceptors[i](next)
	}
	return next
}

// Logging returns an interceptor that logs every dispatched event.
// It logs the event name, whether it applied, and the duration.
func Logging() Interceptor {
	return func(next DispatchFunc) DispatchFunc {
		return func(ev selection.Event) bool {
			start := time.Now()

			applied := next(ev)

			duration := time.Since(start)
			if applied {
				slog.Debug("Event applied",
					"event", ev.Name(),
					"duration", duration,
				)
			} else {
				slog.Debug("Event ignored",
					"event", ev.Name(),
					"duration", duration,
				)
			}

			return applied
		}
	}
}
