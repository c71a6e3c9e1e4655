package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ashokan1984/CorporatePassBookingReactApp/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RecordsUp(t *testing.T) {
	p := mocks.NewMockProber(t)
	s := New(p, 50*time.Millisecond, newTestLogger(t))

	p.EXPECT().Probe(mock.Anything).Return(nil)

	s.tick(context.Background())

	st := s.Status()
	assert.True(t, st.Checked)
	assert.True(t, st.Up)
	assert.Empty(t, st.LastError)
}

func TestScheduler_Tick_RecordsDown(t *testing.T) {
	p := mocks.NewMockProber(t)
	s := New(p, 50*time.Millisecond, newTestLogger(t))

	p.EXPECT().Probe(mock.Anything).Return(errors.New("connection refused")).Once()
	s.tick(context.Background())

	st := s.Status()
	assert.False(t, st.Up)
	assert.Equal(t, "connection refused", st.LastError)

	p.EXPECT().Probe(mock.Anything).Return(nil).Once()
	s.tick(context.Background())
	assert.True(t, s.Status().Up)
}

func TestScheduler_Start_ProbesPeriodically(t *testing.T) {
	p := mocks.NewMockProber(t)
	s := New(p, 20*time.Millisecond, newTestLogger(t))

	p.EXPECT().Probe(mock.Anything).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(p.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	p := mocks.NewMockProber(t)
	s := New(p, time.Second, newTestLogger(t))

	p.EXPECT().Probe(mock.Anything).Return(nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
