package optim

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/born-ml/mlp/internal/network"
	"github.com/born-ml/mlp/internal/parallel"
	"github.com/born-ml/mlp/internal/track"
)

// minSamplesPerWorker keeps tiny batches on one goroutine.
const minSamplesPerWorker = 4

// SGD implements mini-batch Stochastic Gradient Descent.
//
// Update rule for a mini-batch of m samples:
//
//	W = W - (eta/m) * Σ ∂C/∂W
//	b = b - (eta/m) * Σ ∂C/∂b
//
// The per-sample gradients of one mini-batch are computed concurrently
// against the parameters as they were at the start of the batch. Each
// worker sums into its own accumulator and the partial sums are merged in
// a fixed order, so no locking is needed. Floating point addition is not
// associative: runs with a different Workers setting may differ in the
// low-order bits.
//
// SGD is not safe for concurrent use, and the network must not be modified
// by anything else while Train or Step runs.
type SGD struct {
	net      *network.Network
	cfg      SGDConfig
	rng      *rand.Rand
	parallel parallel.Config
}

// SGDConfig holds configuration for the SGD trainer.
type SGDConfig struct {
	Epochs        int           // Number of full passes over the data
	MiniBatchSize int           // Samples per update; must divide the dataset size
	Eta           float64       // Learning rate
	Tracker       track.Tracker // Called after every mini-batch (default: no-op)
	Source        rand.Source   // Shuffle randomness (default: randomly seeded)
	Workers       int           // Goroutines per mini-batch (default: CPU count, 1: sequential)
}

// NewSGD creates a new SGD trainer for net.
//
// Example:
//
//	sgd := optim.NewSGD(net, optim.SGDConfig{
//	    Epochs:        30,
//	    MiniBatchSize: 10,
//	    Eta:           3.0,
//	})
func NewSGD(net *network.Network, config SGDConfig) *SGD {
	if config.Tracker == nil {
		config.Tracker = track.Nop()
	}
	if config.Source == nil {
		config.Source = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if config.Workers <= 0 {
		config.Workers = parallel.Workers()
	}

	return &SGD{
		net: net,
		cfg: config,
		rng: rand.New(config.Source),
		parallel: parallel.Config{
			Enabled:      config.Workers > 1,
			NumWorkers:   config.Workers,
			MinChunkSize: minSamplesPerWorker,
		},
	}
}

// Network returns the network being trained.
func (s *SGD) Network() *network.Network {
	return s.net
}

// Train runs Epochs passes over data. Each pass shuffles a private copy of
// data, cuts it into consecutive mini-batches of MiniBatchSize samples and
// applies one update per mini-batch, notifying the Tracker after each.
//
// The dataset and hyperparameters are validated before any update, so on
// error the network is unchanged:
//   - ErrInvalidBatchSize if MiniBatchSize is not positive or does not
//     divide len(data)
//   - ErrInvalidEpochs if Epochs is negative
//   - network.ErrDimensionMismatch if a sample does not fit the topology
func (s *SGD) Train(data []network.Sample) error {
	m := s.cfg.MiniBatchSize
	if m <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBatchSize, m)
	}
	if len(data)%m != 0 {
		return fmt.Errorf("%w: %d samples do not split into batches of %d", ErrInvalidBatchSize, len(data), m)
	}
	if s.cfg.Epochs < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidEpochs, s.cfg.Epochs)
	}
	if err := s.checkSamples(data); err != nil {
		return err
	}

	shuffled := slices.Clone(data)
	for epoch := range s.cfg.Epochs {
		s.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		for batch := range len(shuffled) / m {
			if err := s.step(shuffled[batch*m : (batch+1)*m]); err != nil {
				return fmt.Errorf("epoch %d batch %d: %w", epoch, batch, err)
			}
			s.cfg.Tracker.MiniBatchDone(s.net, epoch, batch)
		}
	}
	return nil
}

// Step applies a single update computed from batch, whatever its size.
// The tracker is not called.
func (s *SGD) Step(batch []network.Sample) error {
	if len(batch) == 0 {
		return fmt.Errorf("%w: empty batch", ErrInvalidBatchSize)
	}
	if err := s.checkSamples(batch); err != nil {
		return err
	}
	return s.step(batch)
}

func (s *SGD) checkSamples(data []network.Sample) error {
	for i, sample := range data {
		if err := s.net.CheckSample(sample); err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}
	}
	return nil
}

// step assumes every sample in batch has been checked.
func (s *SGD) step(batch []network.Sample) error {
	sum, err := s.gradient(batch)
	if err != nil {
		return err
	}
	return s.net.ApplyGradient(sum, s.cfg.Eta/float64(len(batch)))
}

// partial is one worker's share of a mini-batch gradient.
type partial struct {
	grad *network.Gradient
	err  error
}

// gradient sums the per-sample gradients of batch.
func (s *SGD) gradient(batch []network.Sample) (*network.Gradient, error) {
	res := parallel.MapReduce(len(batch),
		func() partial {
			return partial{grad: s.net.ZeroGradient()}
		},
		func(acc partial, i int) partial {
			if acc.err != nil {
				return acc
			}
			g, err := s.net.Backprop(batch[i])
			if err != nil {
				acc.err = err
				return acc
			}
			acc.grad.Add(g)
			return acc
		},
		func(dst, src partial) partial {
			if dst.err == nil && src.err == nil {
				dst.grad.Add(src.grad)
			} else if dst.err == nil {
				dst.err = src.err
			}
			return dst
		},
		s.parallel)
	return res.grad, res.err
}

// Train is a shorthand for NewSGD(net, SGDConfig{...}).Train(data).
// tracker may be nil.
func Train(net *network.Network, data []network.Sample, epochs, miniBatchSize int, eta float64, tracker track.Tracker) error {
	return NewSGD(net, SGDConfig{
		Epochs:        epochs,
		MiniBatchSize: miniBatchSize,
		Eta:           eta,
		Tracker:       tracker,
	}).Train(data)
}
