package core

// Frame is a raw encoded event, ready to be written to the wire.
type Frame []byte

// SignalConnection abstracts for a system messaging transport
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	// TrySend queues f without blocking. It fails when the connection is
	// closed or its outbound queue is full.
	TrySend(f Frame) error
	Close()
}
