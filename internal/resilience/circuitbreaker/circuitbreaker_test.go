package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteSuccess(t *testing.T) {
	cb := New(DefaultConfig("test"))

	v, err := cb.Execute(func() (any, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestExecutePropagatesError(t *testing.T) {
	cb := New(DefaultConfig("test"))
	boom := errors.New("upstream broke")

	_, err := cb.Execute(func() (any, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestTripsAfterRepeatedFailures(t *testing.T) {
	cfg := Config{
		Name:             "trippy",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 0.5,
		MinRequests:      3,
	}
	cb := New(cfg)

	for i := 0; i < 3; i++ {
		_, _ = cb.Execute(func() (any, error) {
			return nil, errors.New("fail")
		})
	}

	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := cb.Execute(func() (any, error) {
		t.Fatal("fn must not run while the circuit is open")
		return nil, nil
	})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestDoesNotTripBelowMinRequests(t *testing.T) {
	cb := New(DefaultConfig("patient"))

	for i := 0; i < 3; i++ {
		_, _ = cb.Execute(func() (any, error) {
			return nil, errors.New("fail")
		})
	}

	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestName(t *testing.T) {
	assert.Equal(t, "document-fetch", New(DocumentFetchConfig()).Name())
}
