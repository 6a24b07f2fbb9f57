// Package retry implementa una política de reintentos reutilizable: número
// máximo de intentos, función de espera entre intentos y predicado que decide
// si un error amerita reintento. Independiente del transporte para poder
// probarla sin red.
package retry

import (
	"context"
	"time"
)

type Policy struct {
	// MaxAttempts es el total de intentos (1 = sin reintentos).
	MaxAttempts int
	// Backoff devuelve la espera después del intento n (1-indexado).
	Backoff func(attempt int) time.Duration
	// Retryable decide si el error admite otro intento. Nil reintenta todo.
	Retryable func(err error) bool
}

// ExponentialBackoff produce la curva min(base × 2^(n-1), max).
func ExponentialBackoff(base, max time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		d := base << (attempt - 1)
		if d > max || d <= 0 {
			return max
		}
		return d
	}
}

// Do ejecuta fn hasta que tenga éxito, el error sea terminal, se agoten los
// intentos o el contexto se cancele. Devuelve el último error observado.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context, attempt int) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn(ctx, attempt)
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
		if attempt == attempts {
			break
		}
		if p.Backoff != nil {
			if err := sleep(ctx, p.Backoff(attempt)); err != nil {
				return err
			}
		}
	}
	return lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
