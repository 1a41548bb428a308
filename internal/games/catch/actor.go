package catch

import (
	"context"
)

// Actor is a single-consumer command queue. Every function posted to it runs
// on the goroutine that called Run, one at a time, which makes it the only
// mutation path for a Controller shared between goroutines.
type Actor struct {
	inbox chan func()
	done  chan struct{}
}

// NewActor creates an actor with the given inbox capacity.
func NewActor(buffer int) *Actor {
	return &Actor{
		inbox: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Run processes posted functions until ctx is cancelled.
func (a *Actor) Run(ctx context.Context) error {
	defer close(a.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-a.inbox:
			fn()
		}
	}
}

// Post enqueues fn. It blocks while the inbox is full and returns false
// once the actor has stopped.
func (a *Actor) Post(fn func()) bool {
	select {
	case <-a.done:
		return false
	default:
	}
	select {
	case a.inbox <- fn:
		return true
	case <-a.done:
		return false
	}
}

// Do runs fn on the actor and waits for it to finish.
func (a *Actor) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !a.Post(func() {
		defer close(finished)
		fn()
	}) {
		return context.Canceled
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-a.done:
		select {
		case <-finished:
			return nil
		default:
			return context.Canceled
		}
	}
}

// Done is closed when Run returns.
func (a *Actor) Done() <-chan struct{} {
	return a.done
}
