// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/mlp/internal/optim"
	"github.com/born-ml/mlp/network"
	"github.com/born-ml/mlp/track"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Errors.
var (
	ErrInvalidBatchSize = optim.ErrInvalidBatchSize
	ErrInvalidEpochs    = optim.ErrInvalidEpochs
)

// SGD (Stochastic Gradient Descent)

// SGD represents the mini-batch SGD trainer.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD trainer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD trainer for net.
//
// Example:
//
//	net, _ := network.New([]int{1, 4, 1})
//	sgd := optim.NewSGD(net, optim.SGDConfig{
//	    Epochs:        1000,
//	    MiniBatchSize: 20,
//	    Eta:           10,
//	})
func NewSGD(net *network.Network, config SGDConfig) *SGD {
	return optim.NewSGD(net, config)
}

// Train runs mini-batch SGD on net with default workers and a randomly
// seeded shuffle. tracker may be nil.
//
// Example:
//
//	err := optim.Train(net, data, 30, 10, 3.0, track.LogRMSE(os.Stdout, data, 100))
func Train(net *network.Network, data []network.Sample, epochs, miniBatchSize int, eta float64, tracker track.Tracker) error {
	return optim.Train(net, data, epochs, miniBatchSize, eta, tracker)
}
