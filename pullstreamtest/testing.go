package pullstreamtest

import (
	pullstream "github.com/hoangvvo/pullstream-go"
)

// Produce sends values on tx from a separate goroutine without closing it.
// The returned channel closes once every value has been accepted, which on a
// bounded channel may require the consumer to keep advancing.
func Produce[X any](tx chan<- X, values ...X) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, v := range values {
			tx <- v
		}
	}()
	return done
}

// ProduceThenClose behaves like Produce but closes tx after the last value,
// so advancing past the produced values fails fatally.
func ProduceThenClose[X any](tx chan<- X, values ...X) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, v := range values {
			tx <- v
		}
		close(tx)
	}()
	return done
}

// Advance pulls n values from s and returns the advanced stream together
// with the heads observed after each advance, in order.
func Advance[X any](s pullstream.Stream[X], n int) (pullstream.Stream[X], []X) {
	heads := make([]X, 0, n)
	for i := 0; i < n; i++ {
		s = s.Tail()
		heads = append(heads, s.Head())
	}
	return s, heads
}

// CatchExhaustion runs fn and returns the error carried by an exhausted
// advance, nil if fn returns normally. Panics other than exhaustion are
// resumed.
func CatchExhaustion(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if pullstream.IsExhausted(r) {
			err = r.(error)
			return
		}
		panic(r)
	}()
	fn()
	return nil
}
