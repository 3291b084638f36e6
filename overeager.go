package pullstream

import (
	"fmt"

	"github.com/hoangvvo/pullstream-go/internal/channel"
)

// OvereagerReceiver is the receiving half of a stream channel. It is
// overeager in the sense that it always holds one received value ahead of
// what ordinary channel receiving would require, which is what lets Head
// answer without waiting on the producer.
type OvereagerReceiver[X any] struct {
	msg  X
	recv <-chan X
}

// Channel creates a stream channel and returns its sending half together
// with an OvereagerReceiver wrapping the receiving half. The receiver starts
// out holding placeholder, which stands in for data yet to be received until
// the first advance.
//
// A capacity of zero makes the channel unbounded: sends complete regardless
// of how many values the consumer has not pulled yet. A positive capacity
// bounds the number of unreceived values, and a send that would exceed it
// blocks until the consumer advances. Channel panics with a *StreamError of
// kind InvalidInput if capacity is negative.
func Channel[X any](capacity int, placeholder X) (chan<- X, *OvereagerReceiver[X]) {
	if capacity < 0 {
		panic(NewInvalidInputError(fmt.Sprintf("capacity must be non-negative, got %d", capacity)))
	}
	tx, rx := channel.Pair[X](capacity)
	return tx, &OvereagerReceiver[X]{msg: placeholder, recv: rx}
}

// Head returns the buffered value without blocking.
func (s *OvereagerReceiver[X]) Head() X {
	return s.msg
}

// Tail receives the next value, buffers it in place of the current one, and
// returns the advanced receiver. The update happens in place, so the handle
// Tail was called on must not be reused afterwards. Tail panics with a
// *StreamError of kind Exhausted when the sending half has been closed and
// no undelivered values remain.
func (s *OvereagerReceiver[X]) Tail() Stream[X] {
	msg, ok := <-s.recv
	if !ok {
		panic(NewExhaustedError("the sending half was closed and all sent values were already delivered"))
	}
	s.msg = msg
	return s
}
