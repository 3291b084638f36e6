package pullstream

// Stream is a pull-based stream of values of type X. A stream always holds
// one buffered value: Head returns it without waiting, and Tail advances the
// stream by one value, blocking until the producer supplies it.
//
// Tail consumes the stream it is called on and hands back the advanced
// stream. Implementations may update the receiver in place, so callers must
// keep the returned stream and drop the handle they advanced from.
type Stream[X any] interface {
	// Head returns the value the stream is currently holding. It never
	// blocks and never fails; calling it repeatedly without advancing
	// returns the same value.
	Head() X

	// Tail advances the stream to the next produced value and returns the
	// advanced stream, blocking until that value is available. Once the
	// producer has closed the sending half and every produced value has
	// been delivered, Tail panics with a *StreamError of kind Exhausted;
	// see IsExhausted.
	Tail() Stream[X]
}
