package commands

import (
	"context"
)

// Work is the deferred part of an asynchronous command.
type Work func(ctx context.Context) (any, error)

// Pending is returned by an operation whose result arrives later. The session
// runs the work in the background and reports its completion.
type Pending struct {
	work Work
}

// Async wraps work so an operation can return it as its result.
func Async(work Work) *Pending {
	return &Pending{work: work}
}

// Run executes the deferred work.
func (p *Pending) Run(ctx context.Context) (any, error) {
	return p.work(ctx)
}
