package channel_test

import (
	"testing"

	"github.com/a2y-d5l/go-conc/channel"
)

func BenchmarkAddGet(b *testing.B) {
	ch, err := channel.New[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := range b.N {
		_ = ch.Add(i)
		_, _ = ch.Get()
	}
}

func BenchmarkAddGetUnbounded(b *testing.B) {
	ch := channel.NewUnbounded[int]()
	b.ResetTimer()
	for i := range b.N {
		_ = ch.Add(i)
		_, _ = ch.Get()
	}
}

func BenchmarkPingPong(b *testing.B) {
	ch, err := channel.New[int](1)
	if err != nil {
		b.Fatal(err)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range ch.All() {
		}
	}()
	b.ResetTimer()
	for i := range b.N {
		_ = ch.Add(i)
	}
	b.StopTimer()
	ch.Close()
	<-done
}
