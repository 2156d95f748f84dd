package waitgroup_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/a2y-d5l/go-conc/waitgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWaitReturnsImmediatelyAtZero(t *testing.T) {
	wg := waitgroup.New(0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked with a zero counter")
	}
}

func TestAddDoneReturnCounts(t *testing.T) {
	wg := waitgroup.New(0)
	assert.EqualValues(t, 1, wg.Add())
	assert.EqualValues(t, 2, wg.Add())
	assert.EqualValues(t, 5, wg.AddN(3))
	assert.EqualValues(t, 4, wg.Done())
	assert.EqualValues(t, 4, wg.Count())
}

func TestInitialCount(t *testing.T) {
	wg := waitgroup.New(2)

	released := make(chan struct{})
	go func() {
		defer close(released)
		wg.Wait()
	}()

	wg.Done()
	select {
	case <-released:
		t.Fatal("Wait returned before the counter reached zero")
	case <-time.After(50 * time.Millisecond):
	}

	wg.Done()
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return at zero")
	}
}

func TestConcurrentAddDone(t *testing.T) {
	const workers = 50
	wg := waitgroup.New(0)

	var completed atomic.Int64
	for range workers {
		wg.Add()
		go func() {
			defer wg.Done()
			completed.Add(1)
		}()
	}

	wg.Wait()
	require.EqualValues(t, workers, completed.Load())
}

func TestManyWaiters(t *testing.T) {
	wg := waitgroup.New(1)

	const waiters = 8
	done := make(chan struct{}, waiters)
	for range waiters {
		go func() {
			wg.Wait()
			done <- struct{}{}
		}()
	}

	wg.Done()
	for range waiters {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("a waiter stayed blocked after the counter hit zero")
		}
	}
}

func TestWaitFunc(t *testing.T) {
	wg := waitgroup.New(1)

	ran := make(chan struct{})
	go wg.WaitFunc(func() { close(ran) })

	select {
	case <-ran:
		t.Fatal("callback ran before the counter reached zero")
	case <-time.After(50 * time.Millisecond):
	}

	wg.Done()
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("callback did not run after the wait was satisfied")
	}
}

func TestUnderflowPanics(t *testing.T) {
	wg := waitgroup.New(0)
	require.Panics(t, func() { wg.Done() })

	wg = waitgroup.New(1)
	wg.Done()
	require.Panics(t, func() { wg.Done() })
}
