package channel

// inboxHeadroom is the buffer of the inbox feeding an unbounded pump. It only
// spares senders a context switch while the pump is busy; correctness does
// not depend on it.
const inboxHeadroom = 32

// Pair returns the connected sending and receiving halves of a FIFO channel.
// A positive capacity yields a plain buffered channel, so sends block once
// capacity values are waiting to be received. A capacity of zero yields an
// unbounded channel: sends always complete, and values queue in memory until
// the receiving half drains them.
//
// Closing the sending half closes the receiving half once every queued value
// has been delivered.
func Pair[X any](capacity int) (chan<- X, <-chan X) {
	if capacity > 0 {
		ch := make(chan X, capacity)
		return ch, ch
	}
	in := make(chan X, inboxHeadroom)
	out := make(chan X)
	go pump(in, out)
	return in, out
}

// pump shuttles values from in to out through a growable queue so that a
// slow receiver never backpressures the sender. It drains the queue before
// propagating the close of in to out.
func pump[X any](in <-chan X, out chan<- X) {
	defer close(out)
	var queue []X
	for in != nil || len(queue) > 0 {
		var (
			outc chan<- X
			next X
		)
		if len(queue) > 0 {
			outc = out
			next = queue[0]
		}
		select {
		case v, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, v)
		case outc <- next:
			// Zero the slot so the queue does not pin delivered values.
			var zero X
			queue[0] = zero
			queue = queue[1:]
		}
	}
}
