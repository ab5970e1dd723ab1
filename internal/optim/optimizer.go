// Package optim implements mini-batch stochastic gradient descent for
// network.Network.
//
// Example usage:
//
//	net, _ := network.New([]int{1, 4, 1})
//	sgd := optim.NewSGD(net, optim.SGDConfig{
//	    Epochs:        1000,
//	    MiniBatchSize: 20,
//	    Eta:           10,
//	    Tracker:       track.LogRMSE(os.Stdout, data, 100),
//	})
//	if err := sgd.Train(data); err != nil {
//	    return err
//	}
package optim

import (
	"errors"

	"github.com/born-ml/mlp/internal/network"
)

// Common errors.
var (
	ErrInvalidBatchSize = errors.New("invalid mini-batch size")
	ErrInvalidEpochs    = errors.New("invalid epoch count")
)

// Optimizer trains a network on a dataset.
type Optimizer interface {
	// Step applies one parameter update computed from batch.
	Step(batch []network.Sample) error

	// Train runs the full training loop over data.
	Train(data []network.Sample) error
}

var _ Optimizer = (*SGD)(nil)
