package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransitorio = errors.New("transitorio")

func sinEspera(int) time.Duration { return 0 }

func TestDo_ExitoAlPrimerIntento(t *testing.T) {
	p := Policy{MaxAttempts: 3, Backoff: sinEspera}

	llamadas := 0
	err := p.Do(context.Background(), func(ctx context.Context, attempt int) error {
		llamadas++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, llamadas)
}

func TestDo_ReintentaHastaAgotar(t *testing.T) {
	p := Policy{MaxAttempts: 3, Backoff: sinEspera}

	llamadas := 0
	err := p.Do(context.Background(), func(ctx context.Context, attempt int) error {
		llamadas++
		assert.Equal(t, llamadas, attempt)
		return errTransitorio
	})

	assert.ErrorIs(t, err, errTransitorio)
	assert.Equal(t, 3, llamadas)
}

func TestDo_ErrorTerminalCorta(t *testing.T) {
	errTerminal := errors.New("terminal")
	p := Policy{
		MaxAttempts: 5,
		Backoff:     sinEspera,
		Retryable:   func(err error) bool { return !errors.Is(err, errTerminal) },
	}

	llamadas := 0
	err := p.Do(context.Background(), func(ctx context.Context, attempt int) error {
		llamadas++
		return errTerminal
	})

	assert.ErrorIs(t, err, errTerminal)
	assert.Equal(t, 1, llamadas)
}

func TestDo_ExitoDespuesDeFallo(t *testing.T) {
	p := Policy{MaxAttempts: 3, Backoff: sinEspera}

	llamadas := 0
	err := p.Do(context.Background(), func(ctx context.Context, attempt int) error {
		llamadas++
		if llamadas < 3 {
			return errTransitorio
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, llamadas)
}

func TestDo_ContextoCanceladoDuranteEspera(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := Policy{
		MaxAttempts: 3,
		Backoff:     func(int) time.Duration { return time.Minute },
	}

	llamadas := 0
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	err := p.Do(ctx, func(ctx context.Context, attempt int) error {
		llamadas++
		return errTransitorio
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, llamadas)
}

func TestDo_SinMaxAttemptsEjecutaUnaVez(t *testing.T) {
	var p Policy

	llamadas := 0
	err := p.Do(context.Background(), func(ctx context.Context, attempt int) error {
		llamadas++
		return errTransitorio
	})

	assert.ErrorIs(t, err, errTransitorio)
	assert.Equal(t, 1, llamadas)
}

func TestExponentialBackoff_CurvaAcotada(t *testing.T) {
	backoff := ExponentialBackoff(time.Second, 5*time.Second)

	assert.Equal(t, 1*time.Second, backoff(1))
	assert.Equal(t, 2*time.Second, backoff(2))
	assert.Equal(t, 4*time.Second, backoff(3))
	assert.Equal(t, 5*time.Second, backoff(4))
	assert.Equal(t, 5*time.Second, backoff(10))
}
