package pool_test

import (
	"context"
	"testing"

	"github.com/a2y-d5l/go-conc/pool"
)

func BenchmarkSubmitAndWait(b *testing.B) {
	p, err := pool.New[int](pool.WithWorkers(4), pool.WithQueueDepth(64))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := range b.N {
		fut, err := p.Submit(func() (int, error) { return i, nil })
		if err != nil {
			b.Fatal(err)
		}
		if _, err := fut.Result(); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	_ = p.Stop(context.Background())
}

func BenchmarkSubmitBurst(b *testing.B) {
	p, err := pool.New[int](pool.WithWorkers(4), pool.WithUnboundedQueue())
	if err != nil {
		b.Fatal(err)
	}
	futs := make([]*pool.Future[int], 0, b.N)
	b.ResetTimer()
	for i := range b.N {
		fut, err := p.Submit(func() (int, error) { return i, nil })
		if err != nil {
			b.Fatal(err)
		}
		futs = append(futs, fut)
	}
	for _, fut := range futs {
		_, _ = fut.Result()
	}
	b.StopTimer()
	_ = p.Stop(context.Background())
}

func BenchmarkNewStop(b *testing.B) {
	ctx := context.Background()
	for range b.N {
		p, err := pool.New[int](pool.WithWorkers(2))
		if err != nil {
			b.Fatal(err)
		}
		_ = p.Stop(ctx)
	}
}
