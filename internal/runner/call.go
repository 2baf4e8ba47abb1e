package runner

// Call is an invocation running in the background.
type Call struct {
	done chan struct{}
	err  error
}

// Go runs fn on its own goroutine and returns a Call that completes with fn's error.
func Go(fn func() error) *Call {
	c := &Call{done: make(chan struct{})}
	go func() {
		defer close(c.done)
		c.err = fn()
	}()
	return c
}

// Done is closed once the call has finished.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the call finishes and returns its error.
func (c *Call) Wait() error {
	<-c.done
	return c.err
}
