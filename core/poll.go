package core

// WaitStrategy decides how long to keep polling a conversion's done flag.
type WaitStrategy interface {
	// Wait polls done until it reports true. It returns
	// ErrConversionTimeout if it gives up first.
	Wait(done func() bool) error
}

// BusyWait polls with no timeout. A converter that never finishes hangs
// the caller.
type BusyWait struct{}

func (BusyWait) Wait(done func() bool) error {
	for !done() {
	}
	return nil
}

// PollLimit gives up after the given number of polls.
type PollLimit uint32

func (n PollLimit) Wait(done func() bool) error {
	for i := uint32(0); i < uint32(n); i++ {
		if done() {
			return nil
		}
	}
	return ErrConversionTimeout
}
