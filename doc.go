// Package conc provides small in-process concurrency primitives: a closeable
// blocking queue, a fixed-size worker pool, and a counted completion barrier.
//
// The package is a façade over focused subpackages:
//
//   - github.com/a2y-d5l/go-conc/channel       - blocking queue + storage strategies
//   - github.com/a2y-d5l/go-conc/pool          - worker pool + futures
//   - github.com/a2y-d5l/go-conc/waitgroup     - counted completion barrier
//   - github.com/a2y-d5l/go-conc/observability - slog logging + prometheus metrics
//
// Example usage:
//
//	ch, err := conc.NewChannel[int](8)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	go func() {
//		for i := range 100 {
//			if err := ch.Add(i); err != nil {
//				return // channel closed
//			}
//		}
//		ch.Close()
//	}()
//
//	for v := range ch.All() {
//		fmt.Println(v)
//	}
//
//	// Worker pool
//	p, err := conc.NewPool[string](conc.WithWorkers(4))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Stop(context.Background())
//
//	fut, err := p.Submit(func() (string, error) {
//		return expensiveLookup()
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	v, err := fut.Result()
package conc
