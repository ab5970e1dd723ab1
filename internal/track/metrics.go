package track

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/born-ml/mlp/internal/network"
	"github.com/born-ml/mlp/internal/parallel"
)

// RMSE returns the root mean squared Euclidean distance between the model
// output and the target over data.
//
// Samples are evaluated concurrently, like ErrorRate.
func RMSE(m Model, data []network.Sample) (float64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	sq := make([]float64, len(data))
	errs := make([]error, len(data))
	parallel.For(len(data), func(i int) {
		out, err := m.FeedForward(data[i].X)
		switch {
		case err != nil:
			errs[i] = err
		case len(out) != len(data[i].Y):
			errs[i] = fmt.Errorf("%w: target has %d values, output %d",
				network.ErrDimensionMismatch, len(data[i].Y), len(out))
		default:
			d := floats.Distance(data[i].Y, out, 2)
			sq[i] = d * d
		}
	}, parallel.DefaultConfig())

	for i, err := range errs {
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return math.Sqrt(stat.Mean(sq, nil)), nil
}

// misses counts misclassified samples for ErrorRate.
type misses struct {
	n   int
	err error
}

// ErrorRate returns the fraction of samples whose largest output is not at
// the index of the largest target value.
//
// Samples are evaluated concurrently; m.FeedForward must be safe for
// concurrent use, which holds for *network.Network.
func ErrorRate(m Model, data []network.Sample) (float64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	res := parallel.MapReduce(len(data),
		func() misses { return misses{} },
		func(acc misses, i int) misses {
			if acc.err != nil {
				return acc
			}
			out, err := m.FeedForward(data[i].X)
			switch {
			case err != nil:
				acc.err = fmt.Errorf("sample %d: %w", i, err)
			case len(out) == 0 || len(data[i].Y) == 0:
				acc.err = fmt.Errorf("sample %d: %w: empty output or target", i, network.ErrDimensionMismatch)
			case floats.MaxIdx(out) != floats.MaxIdx(data[i].Y):
				acc.n++
			}
			return acc
		},
		func(dst, src misses) misses {
			dst.n += src.n
			if dst.err == nil {
				dst.err = src.err
			}
			return dst
		},
		parallel.DefaultConfig())
	if res.err != nil {
		return 0, res.err
	}
	return float64(res.n) / float64(len(data)), nil
}

// RMSEOf returns an Evaluator computing RMSE over data.
func RMSEOf(data []network.Sample) Evaluator {
	return func(m Model) (float64, error) { return RMSE(m, data) }
}

// ErrorRateOf returns an Evaluator computing ErrorRate over data.
func ErrorRateOf(data []network.Sample) Evaluator {
	return func(m Model) (float64, error) { return ErrorRate(m, data) }
}

// LogRMSE logs the RMSE over data to w every period mini-batches.
func LogRMSE(w io.Writer, data []network.Sample, period int) Tracker {
	return Periodic(Logger(w, RMSEOf(data)), period)
}

// LogErrorRate logs the classification error rate over data to w every
// period mini-batches.
func LogErrorRate(w io.Writer, data []network.Sample, period int) Tracker {
	return Periodic(Logger(w, ErrorRateOf(data)), period)
}
