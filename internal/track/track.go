// Package track provides progress callbacks for the SGD trainer.
//
// A Tracker is invoked synchronously after every mini-batch update. The
// trainer waits for it to return, so an expensive tracker slows training;
// wrap it with Periodic to run it less often.
package track

import (
	"fmt"
	"io"
)

// Model is the read-only view of a network handed to trackers.
type Model interface {
	Sizes() []int
	FeedForward(x []float64) ([]float64, error)
}

// Tracker receives a notification after each mini-batch update.
//
// epoch and batch are zero-based.
type Tracker interface {
	MiniBatchDone(m Model, epoch, batch int)
}

// Func adapts an ordinary function to the Tracker interface.
type Func func(m Model, epoch, batch int)

// MiniBatchDone calls f(m, epoch, batch).
func (f Func) MiniBatchDone(m Model, epoch, batch int) {
	f(m, epoch, batch)
}

type nop struct{}

func (nop) MiniBatchDone(Model, int, int) {}

// Nop returns a tracker that does nothing. It is the trainer default.
func Nop() Tracker {
	return nop{}
}

// periodic forwards every n-th call to next.
type periodic struct {
	next  Tracker
	every int
	calls int
}

// Periodic returns a tracker that forwards the 1st, (n+1)-th, (2n+1)-th,
// ... call to t and drops the rest. n < 1 is treated as 1.
//
// The returned tracker keeps a call counter and must not be shared between
// concurrent training runs.
func Periodic(t Tracker, n int) Tracker {
	return &periodic{next: t, every: max(n, 1)}
}

func (p *periodic) MiniBatchDone(m Model, epoch, batch int) {
	fire := p.calls%p.every == 0
	p.calls++
	if fire {
		p.next.MiniBatchDone(m, epoch, batch)
	}
}

// Evaluator computes a scalar diagnostic for a model.
type Evaluator func(m Model) (float64, error)

// Logger returns a tracker that evaluates the model and writes one line per
// call to w:
//
//	003.0041: 0.0213
//
// The first field is the epoch, the second the mini-batch index.
func Logger(w io.Writer, eval Evaluator) Tracker {
	return Func(func(m Model, epoch, batch int) {
		v, err := eval(m)
		if err != nil {
			fmt.Fprintf(w, "%03d.%04d: error: %v\n", epoch, batch, err)
			return
		}
		fmt.Fprintf(w, "%03d.%04d: %.4f\n", epoch, batch, v)
	})
}
